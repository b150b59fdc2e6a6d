package shell

import (
	"fmt"
	"testing"
)

func TestHistoryRecordAndRecall(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Older(); ok {
		t.Fatalf("Older on empty history reported ok")
	}
	if _, ok := h.Newer(); ok {
		t.Fatalf("Newer without a selection reported ok")
	}

	h.Record("first")
	h.Record("second")

	got, ok := h.Older()
	if !ok || got != "second" {
		t.Fatalf("Older = %q, %v; want %q, true", got, ok, "second")
	}
	got, ok = h.Older()
	if !ok || got != "first" {
		t.Fatalf("Older = %q, %v; want %q, true", got, ok, "first")
	}
	if _, ok = h.Older(); ok {
		t.Fatalf("Older past the oldest entry reported ok")
	}

	got, ok = h.Newer()
	if !ok || got != "second" {
		t.Fatalf("Newer = %q, %v; want %q, true", got, ok, "second")
	}
	got, ok = h.Newer()
	if !ok || got != "" {
		t.Fatalf("Newer past the newest entry = %q, %v; want clear signal", got, ok)
	}
	if h.Browsing() {
		t.Fatalf("still browsing after the cursor cleared")
	}
}

func TestHistoryDedupesConsecutive(t *testing.T) {
	h := NewHistory()
	h.Record("ls")
	h.Record("ls")
	h.Record("pwd")
	h.Record("ls")
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	got, _ := h.Older()
	if got != "ls" {
		t.Fatalf("newest entry = %q, want %q", got, "ls")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory()
	for i := 0; i < historyCapacity+2; i++ {
		h.Record(fmt.Sprintf("cmd-%d", i))
	}
	if h.Len() != historyCapacity {
		t.Fatalf("Len = %d, want %d", h.Len(), historyCapacity)
	}

	var oldest string
	for {
		got, ok := h.Older()
		if !ok {
			break
		}
		oldest = got
	}
	if oldest != "cmd-2" {
		t.Fatalf("oldest surviving entry = %q, want %q", oldest, "cmd-2")
	}
}

func TestHistoryResetKeepsEntries(t *testing.T) {
	h := NewHistory()
	h.Record("one")
	if _, ok := h.Older(); !ok {
		t.Fatalf("Older failed")
	}
	h.Reset()
	if h.Browsing() {
		t.Fatalf("browsing after Reset")
	}
	got, ok := h.Older()
	if !ok || got != "one" {
		t.Fatalf("Older after Reset = %q, %v; want %q, true", got, ok, "one")
	}
}
