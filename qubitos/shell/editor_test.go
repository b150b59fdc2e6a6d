package shell

import (
	"strings"
	"testing"

	"github.com/Thoq-jar/qubit/qubitos/console"
)

func TestEditorEchoesTypedLine(t *testing.T) {
	con := &fakeConsole{}
	con.feed(typed("hi\r"))

	got := newEditor(con, nil, "", nil).readLine()
	if got != "hi" {
		t.Fatalf("readLine = %q, want %q", got, "hi")
	}
	if want := "hi\n"; con.output() != want {
		t.Fatalf("display = %q, want %q", con.output(), want)
	}
}

func TestEditorBackspaceErasesCell(t *testing.T) {
	con := &fakeConsole{}
	con.feed(typed("ab\bc\r"))

	got := newEditor(con, nil, "", nil).readLine()
	if got != "ac" {
		t.Fatalf("readLine = %q, want %q", got, "ac")
	}
	if want := "ac\n"; con.output() != want {
		t.Fatalf("display = %q, want %q", con.output(), want)
	}
}

func TestEditorBackspaceOnEmptyBuffer(t *testing.T) {
	con := &fakeConsole{}
	con.feed(typed("\b\bok\r"))

	got := newEditor(con, nil, "", nil).readLine()
	if got != "ok" {
		t.Fatalf("readLine = %q, want %q", got, "ok")
	}
}

func TestEditorDropsKeystrokesAtCapacity(t *testing.T) {
	con := &fakeConsole{}
	con.feed(typed(strings.Repeat("a", lineCapacity+40) + "\r"))

	got := newEditor(con, nil, "", nil).readLine()
	if len(got) != lineCapacity {
		t.Fatalf("len = %d, want %d", len(got), lineCapacity)
	}
	if got != strings.Repeat("a", lineCapacity) {
		t.Fatalf("buffer content corrupted at capacity")
	}
}

func TestEditorIgnoresControlRunes(t *testing.T) {
	con := &fakeConsole{}
	con.feed([]fakeEvent{
		{key: console.Key{Rune: 'o'}},
		{key: console.Key{Rune: 0x07}},
		{key: console.Key{Rune: 'k'}},
		{key: console.Key{Rune: '\r'}},
	})

	got := newEditor(con, nil, "", nil).readLine()
	if got != "ok" {
		t.Fatalf("readLine = %q, want %q", got, "ok")
	}
}

func TestEditorHistoryRecall(t *testing.T) {
	hist := NewHistory()
	hist.Record("one")
	hist.Record("two")

	con := &fakeConsole{}
	con.feed(
		[]fakeEvent{scan(console.ScanUp)},   // -> two
		[]fakeEvent{scan(console.ScanUp)},   // -> one
		[]fakeEvent{scan(console.ScanUp)},   // past the oldest, no-op
		[]fakeEvent{scan(console.ScanDown)}, // -> two
		typed("\r"),
	)

	got := newEditor(con, hist, "", nil).readLine()
	if got != "two" {
		t.Fatalf("readLine = %q, want %q", got, "two")
	}
	if want := "two\n"; con.output() != want {
		t.Fatalf("display = %q, want %q", con.output(), want)
	}
}

func TestEditorHistoryDownClearsBuffer(t *testing.T) {
	hist := NewHistory()
	hist.Record("only")

	con := &fakeConsole{}
	con.feed(
		[]fakeEvent{scan(console.ScanUp)},
		[]fakeEvent{scan(console.ScanDown)},
		typed("\r"),
	)

	got := newEditor(con, hist, "", nil).readLine()
	if got != "" {
		t.Fatalf("readLine = %q, want empty line", got)
	}
	if hist.Browsing() {
		t.Fatalf("cursor still set after stepping past the newest entry")
	}
}

func TestEditorEditResetsRecallCursor(t *testing.T) {
	hist := NewHistory()
	hist.Record("one")
	hist.Record("two")

	con := &fakeConsole{}
	con.feed(
		[]fakeEvent{scan(console.ScanUp)}, // -> two
		typed("x"),                        // edit drops the cursor
		[]fakeEvent{scan(console.ScanUp)}, // recall restarts at the newest
		typed("\r"),
	)

	got := newEditor(con, hist, "", nil).readLine()
	if got != "two" {
		t.Fatalf("readLine = %q, want %q", got, "two")
	}
}

func TestEditorTabUniqueRewritesLine(t *testing.T) {
	complete := func(line string) Completion {
		return Complete(line, []string{"help", "programs"}, nil)
	}

	con := &fakeConsole{}
	con.feed(typed("pr\t\r"))

	got := newEditor(con, nil, "", complete).readLine()
	if got != "programs" {
		t.Fatalf("readLine = %q, want %q", got, "programs")
	}
	if want := "programs\n"; con.output() != want {
		t.Fatalf("display = %q, want %q", con.output(), want)
	}
}

func TestEditorTabUniqueRunArgument(t *testing.T) {
	complete := func(line string) Completion {
		return Complete(line, []string{"run"}, []string{"echo", "keys"})
	}

	con := &fakeConsole{}
	con.feed(typed("run e\t\r"))

	got := newEditor(con, nil, "", complete).readLine()
	if got != "run echo" {
		t.Fatalf("readLine = %q, want %q", got, "run echo")
	}
}

func TestEditorTabAmbiguousListsAndReprints(t *testing.T) {
	complete := func(line string) Completion {
		return Complete(line, []string{"help", "clear"}, []string{"echo"})
	}

	con := &fakeConsole{}
	con.feed(typed("\t\r"))

	got := newEditor(con, nil, "q> ", complete).readLine()
	if got != "" {
		t.Fatalf("readLine = %q, ambiguous completion must not change the buffer", got)
	}
	out := con.output()
	if !strings.Contains(out, "help clear echo\n") {
		t.Fatalf("candidate list missing from display:\n%s", out)
	}
	if !strings.Contains(out, "q>") {
		t.Fatalf("prompt not reprinted after the candidate list:\n%s", out)
	}
}

func TestEditorTabNoMatchKeepsBuffer(t *testing.T) {
	complete := func(line string) Completion {
		return Complete(line, []string{"help"}, nil)
	}

	con := &fakeConsole{}
	con.feed(typed("zz\t\r"))

	got := newEditor(con, nil, "", complete).readLine()
	if got != "zz" {
		t.Fatalf("readLine = %q, want %q", got, "zz")
	}
}

func TestEditorRecoversFromPollErrors(t *testing.T) {
	con := &fakeConsole{}
	con.feed(
		[]fakeEvent{{err: errDevice}, {none: true}, {err: errDevice}},
		typed("x\r"),
	)

	got := newEditor(con, nil, "", nil).readLine()
	if got != "x" {
		t.Fatalf("readLine = %q, want %q", got, "x")
	}
}

func TestEditorIgnoresReservedScanCodes(t *testing.T) {
	con := &fakeConsole{}
	con.feed(
		[]fakeEvent{scan(console.ScanEscape), scan(console.ScanLeft), scan(console.ScanRight), scan(console.ScanOther)},
		typed("ok\r"),
	)

	got := newEditor(con, nil, "", nil).readLine()
	if got != "ok" {
		t.Fatalf("readLine = %q, want %q", got, "ok")
	}
}
