// Package console defines the character-cell console the shell talks to.
//
// A Console delivers one key event at a time and accepts plain text plus a
// few cursor primitives. Implementations live in qubitos/term.
package console

// ScanCode identifies a non-printable key.
type ScanCode uint8

const (
	ScanNone ScanCode = iota
	ScanEscape
	ScanUp
	ScanDown
	ScanLeft
	ScanRight
	ScanOther
)

func (c ScanCode) String() string {
	switch c {
	case ScanNone:
		return "none"
	case ScanEscape:
		return "escape"
	case ScanUp:
		return "up"
	case ScanDown:
		return "down"
	case ScanLeft:
		return "left"
	case ScanRight:
		return "right"
	default:
		return "other"
	}
}

// Key is a single key event: either a printable rune or a scan code.
// Enter, Backspace and Tab arrive as the printable control runes '\r',
// '\b' and '\t', the way the firmware input protocol delivers them.
type Key struct {
	Rune rune
	Scan ScanCode
}

// Printable reports whether the key carries a rune.
func (k Key) Printable() bool { return k.Scan == ScanNone }

// Console is the boundary the shell engine drives. ReadKey is a
// non-blocking poll: ok is false when no key is pending, err reports a
// transient device failure; in both cases the caller backs off and retries.
// The write-side calls never fail: display glitches are tolerated, not
// propagated.
type Console interface {
	ReadKey() (key Key, ok bool, err error)
	WriteString(s string)
	SetCursor(row, col int)
	Clear()
}
