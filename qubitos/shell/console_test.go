package shell

import (
	"errors"
	"strings"

	"github.com/Thoq-jar/qubit/qubitos/console"
)

// fakeConsole feeds a scripted key sequence to the code under test and
// simulates a character-cell display so the "\b \b" erase discipline can be
// asserted on, not just the final buffer.
type fakeConsole struct {
	script []fakeEvent
	pos    int

	lines   []string
	cur     []rune
	col     int
	cleared int
}

type fakeEvent struct {
	key  console.Key
	none bool
	err  error
}

var errDevice = errors.New("device glitch")

func typed(s string) []fakeEvent {
	evs := make([]fakeEvent, 0, len(s))
	for _, r := range s {
		evs = append(evs, fakeEvent{key: console.Key{Rune: r}})
	}
	return evs
}

func scan(c console.ScanCode) fakeEvent {
	return fakeEvent{key: console.Key{Scan: c}}
}

func (f *fakeConsole) feed(evs ...[]fakeEvent) {
	for _, e := range evs {
		f.script = append(f.script, e...)
	}
}

func (f *fakeConsole) ReadKey() (console.Key, bool, error) {
	if f.pos >= len(f.script) {
		panic("fakeConsole: script exhausted")
	}
	ev := f.script[f.pos]
	f.pos++
	if ev.err != nil {
		return console.Key{}, false, ev.err
	}
	if ev.none {
		return console.Key{}, false, nil
	}
	return ev.key, true, nil
}

func (f *fakeConsole) WriteString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			f.lines = append(f.lines, strings.TrimRight(string(f.cur), " "))
			f.cur = f.cur[:0]
			f.col = 0
		case '\r':
			f.col = 0
		case '\b':
			if f.col > 0 {
				f.col--
			}
		default:
			for len(f.cur) <= f.col {
				f.cur = append(f.cur, ' ')
			}
			f.cur[f.col] = r
			f.col++
		}
	}
}

func (f *fakeConsole) SetCursor(row, col int) {}

func (f *fakeConsole) Clear() {
	f.cleared++
	f.lines = nil
	f.cur = f.cur[:0]
	f.col = 0
}

// line returns the content of the current unterminated display line.
func (f *fakeConsole) line() string {
	return strings.TrimRight(string(f.cur), " ")
}

func (f *fakeConsole) output() string {
	out := strings.Join(f.lines, "\n")
	if len(f.lines) > 0 {
		out += "\n"
	}
	return out + f.line()
}
