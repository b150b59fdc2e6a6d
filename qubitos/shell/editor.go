package shell

import (
	"strings"
	"time"

	"github.com/Thoq-jar/qubit/qubitos/console"
)

const (
	lineCapacity = 256

	// Backoff for the non-blocking key poll: absence of input is normal
	// and cheap, a device error gets a longer pause before the retry.
	pollDelay  = time.Millisecond
	retryDelay = 2 * time.Millisecond
)

// editor owns the live edit buffer for one line. Every mutation leaves the
// displayed line identical to the buffer: erase exactly what was removed,
// write exactly what was inserted.
type editor struct {
	con    console.Console
	hist   *History
	prompt string
	// complete resolves the current buffer on Tab; nil disables completion.
	complete func(line string) Completion

	buf []rune
}

func newEditor(con console.Console, hist *History, prompt string, complete func(string) Completion) *editor {
	return &editor{
		con:      con,
		hist:     hist,
		prompt:   prompt,
		complete: complete,
		buf:      make([]rune, 0, lineCapacity),
	}
}

// ReadLine reads one line with echo and backspace only: no history, no
// completion. Sub-programs use it for their nested sessions.
func ReadLine(con console.Console) string {
	return newEditor(con, nil, "", nil).readLine()
}

// readLine consumes key events until Enter and returns the finished line.
func (e *editor) readLine() string {
	e.buf = e.buf[:0]
	for {
		key, ok, err := e.con.ReadKey()
		if err != nil {
			time.Sleep(retryDelay)
			continue
		}
		if !ok {
			time.Sleep(pollDelay)
			continue
		}
		if e.handleKey(key) {
			return string(e.buf)
		}
	}
}

func (e *editor) handleKey(key console.Key) (done bool) {
	if !key.Printable() {
		switch key.Scan {
		case console.ScanUp:
			e.recallOlder()
		case console.ScanDown:
			e.recallNewer()
		default:
			// Escape, Left, Right: reserved.
		}
		return false
	}

	switch key.Rune {
	case '\r', '\n':
		e.con.WriteString("\n")
		return true
	case '\b', 0x7f:
		e.backspace()
	case '\t':
		e.tab()
	default:
		e.insert(key.Rune)
	}
	return false
}

func (e *editor) insert(r rune) {
	if r < 0x20 {
		return
	}
	if e.hist != nil {
		e.hist.Reset()
	}
	if len(e.buf) >= lineCapacity {
		// Full buffer drops the keystroke; existing content is kept.
		return
	}
	e.buf = append(e.buf, r)
	e.con.WriteString(string(r))
}

func (e *editor) backspace() {
	if e.hist != nil {
		e.hist.Reset()
	}
	if len(e.buf) == 0 {
		return
	}
	e.buf = e.buf[:len(e.buf)-1]
	e.con.WriteString("\b \b")
}

func (e *editor) recallOlder() {
	if e.hist == nil {
		return
	}
	if line, ok := e.hist.Older(); ok {
		e.replace(line)
	}
}

func (e *editor) recallNewer() {
	if e.hist == nil {
		return
	}
	if line, ok := e.hist.Newer(); ok {
		e.replace(line)
	}
}

// replace erases exactly the displayed characters and writes line in their
// place.
func (e *editor) replace(line string) {
	for range e.buf {
		e.con.WriteString("\b \b")
	}
	e.buf = append(e.buf[:0], []rune(line)...)
	if len(e.buf) > lineCapacity {
		e.buf = e.buf[:lineCapacity]
	}
	e.con.WriteString(string(e.buf))
}

func (e *editor) tab() {
	if e.complete == nil {
		return
	}
	out := e.complete(string(e.buf))
	switch out.Kind {
	case Unique:
		e.replace(out.Replacement)
	case Ambiguous:
		// List the matches on a fresh line, then reprint the prompt and
		// the unchanged buffer below them.
		e.con.WriteString("\n")
		e.con.WriteString(strings.Join(out.Matches, " "))
		e.con.WriteString("\n")
		e.con.WriteString(e.prompt)
		e.con.WriteString(string(e.buf))
	}
}
