package term

import (
	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/console"
)

// keyFromHAL translates a pressed keyboard event into a console key. Enter,
// Backspace and Tab become their control runes; unmapped codes become
// ScanOther so sub-programs can still observe them.
func keyFromHAL(ev hal.KeyEvent) (console.Key, bool) {
	if ev.Rune != 0 {
		return console.Key{Rune: ev.Rune}, true
	}
	switch ev.Code {
	case hal.KeyEnter:
		return console.Key{Rune: '\r'}, true
	case hal.KeyBackspace:
		return console.Key{Rune: '\b'}, true
	case hal.KeyTab:
		return console.Key{Rune: '\t'}, true
	case hal.KeyEscape:
		return console.Key{Scan: console.ScanEscape}, true
	case hal.KeyUp:
		return console.Key{Scan: console.ScanUp}, true
	case hal.KeyDown:
		return console.Key{Scan: console.ScanDown}, true
	case hal.KeyLeft:
		return console.Key{Scan: console.ScanLeft}, true
	case hal.KeyRight:
		return console.Key{Scan: console.ScanRight}, true
	case hal.KeyUnknown:
		return console.Key{}, false
	default:
		return console.Key{Scan: console.ScanOther}, true
	}
}
