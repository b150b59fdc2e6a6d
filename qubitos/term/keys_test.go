package term

import (
	"testing"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/console"
)

func TestKeyFromHAL(t *testing.T) {
	tests := []struct {
		name string
		ev   hal.KeyEvent
		want console.Key
		ok   bool
	}{
		{"printable", hal.KeyEvent{Rune: 'a'}, console.Key{Rune: 'a'}, true},
		{"rune wins over code", hal.KeyEvent{Code: hal.KeyEnter, Rune: 'x'}, console.Key{Rune: 'x'}, true},
		{"enter", hal.KeyEvent{Code: hal.KeyEnter}, console.Key{Rune: '\r'}, true},
		{"backspace", hal.KeyEvent{Code: hal.KeyBackspace}, console.Key{Rune: '\b'}, true},
		{"tab", hal.KeyEvent{Code: hal.KeyTab}, console.Key{Rune: '\t'}, true},
		{"escape", hal.KeyEvent{Code: hal.KeyEscape}, console.Key{Scan: console.ScanEscape}, true},
		{"up", hal.KeyEvent{Code: hal.KeyUp}, console.Key{Scan: console.ScanUp}, true},
		{"down", hal.KeyEvent{Code: hal.KeyDown}, console.Key{Scan: console.ScanDown}, true},
		{"left", hal.KeyEvent{Code: hal.KeyLeft}, console.Key{Scan: console.ScanLeft}, true},
		{"right", hal.KeyEvent{Code: hal.KeyRight}, console.Key{Scan: console.ScanRight}, true},
		{"delete maps to other", hal.KeyEvent{Code: hal.KeyDelete}, console.Key{Scan: console.ScanOther}, true},
		{"unknown is dropped", hal.KeyEvent{Code: hal.KeyUnknown}, console.Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFromHAL(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("keyFromHAL(%+v) = %+v, %v; want %+v, %v", tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestControlRunesArePrintableKeys(t *testing.T) {
	for _, r := range []rune{'\r', '\b', '\t'} {
		key, ok := keyFromHAL(hal.KeyEvent{Rune: r})
		if !ok || !key.Printable() {
			t.Fatalf("rune %q: key = %+v, ok = %v; want printable", r, key, ok)
		}
	}
}
