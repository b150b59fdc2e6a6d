package shell

const historyCapacity = 32

// History is a bounded ring of submitted lines with a recall cursor.
// Entries are never mutated in place; recall hands out copies.
type History struct {
	entries []string
	nav     int // offset back from the newest entry; -1 when not browsing
}

func NewHistory() *History {
	return &History{entries: make([]string, 0, historyCapacity), nav: -1}
}

// Record appends line unless it repeats the newest entry, evicting the
// oldest entry at capacity. Recording marks a submit, so it also drops the
// recall cursor.
func (h *History) Record(line string) {
	h.nav = -1
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) == historyCapacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:historyCapacity-1]
	}
	h.entries = append(h.entries, line)
}

// Older steps one entry further into the past and returns it. ok is false
// when the ring is empty or the cursor already sits on the oldest entry;
// the cursor is left unchanged in that case.
func (h *History) Older() (string, bool) {
	next := h.nav + 1
	if next >= len(h.entries) {
		return "", false
	}
	h.nav = next
	return h.entries[len(h.entries)-1-next], true
}

// Newer steps the cursor toward the present. Stepping past the newest entry
// clears the selection: the call returns ("", true) and Browsing turns
// false, signalling the caller to empty its buffer. ok is false when no
// entry is selected.
func (h *History) Newer() (string, bool) {
	switch {
	case h.nav < 0:
		return "", false
	case h.nav == 0:
		h.nav = -1
		return "", true
	default:
		h.nav--
		return h.entries[len(h.entries)-1-h.nav], true
	}
}

// Reset drops the recall cursor without touching the entries.
func (h *History) Reset() { h.nav = -1 }

// Browsing reports whether a history entry is currently selected.
func (h *History) Browsing() bool { return h.nav >= 0 }

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }
