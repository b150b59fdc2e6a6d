// Package term provides the console implementations the shell runs on: a
// framebuffer cell console drawn with tinyfont, and a host terminal console
// backed by tcell.
package term

import (
	"errors"
	"image/color"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/console"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	cellFG = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	cellBG = color.RGBA{A: 0xFF}
)

// Term is a character-cell console on top of a framebuffer. It keeps a
// cursor in a fixed glyph grid, scrolls by full text rows and presents the
// framebuffer after every write.
type Term struct {
	d    *FBDisplay
	fb   hal.Framebuffer
	keys <-chan hal.KeyEvent

	font     tinyfont.Fonter
	fontW    int16
	fontH    int16
	fontOff  int16
	cols     int
	rows     int
	row, col int
}

// NewConsole builds a cell console over the framebuffer and keyboard of h.
func NewConsole(h hal.HAL) (*Term, error) {
	disp := h.Display()
	if disp == nil {
		return nil, errors.New("term: no display")
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, errors.New("term: no framebuffer")
	}

	t := &Term{
		d:       NewDisplay(fb),
		fb:      fb,
		font:    &proggy.TinySZ8pt7b,
		fontH:   10,
		fontOff: 7,
	}
	_, outboxWidth := tinyfont.LineWidth(t.font, "0")
	t.fontW = int16(outboxWidth)
	if t.fontW <= 0 {
		return nil, errors.New("term: unusable font metrics")
	}
	t.cols = fb.Width() / int(t.fontW)
	t.rows = fb.Height() / int(t.fontH)
	if t.cols <= 0 || t.rows <= 0 {
		return nil, errors.New("term: framebuffer too small")
	}

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			t.keys = kbd.Events()
		}
	}

	t.Clear()
	return t, nil
}

// ReadKey drains at most one pending keyboard event. Releases and unmapped
// keys count as "nothing pending".
func (t *Term) ReadKey() (console.Key, bool, error) {
	if t.keys == nil {
		return console.Key{}, false, errors.New("term: no keyboard")
	}
	select {
	case ev := <-t.keys:
		if !ev.Press {
			return console.Key{}, false, nil
		}
		key, ok := keyFromHAL(ev)
		return key, ok, nil
	default:
		return console.Key{}, false, nil
	}
}

func (t *Term) WriteString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			t.col = 0
			t.lineFeed()
		case '\r':
			t.col = 0
		case '\b':
			if t.col > 0 {
				t.col--
			}
		default:
			if r < 0x20 {
				continue
			}
			t.drawCell(t.row, t.col, r)
			t.col++
			if t.col >= t.cols {
				t.col = 0
				t.lineFeed()
			}
		}
	}
	_ = t.d.Display()
}

func (t *Term) SetCursor(row, col int) {
	t.row = clampInt(row, 0, t.rows-1)
	t.col = clampInt(col, 0, t.cols-1)
}

func (t *Term) Clear() {
	t.fb.ClearRGB(cellBG.R, cellBG.G, cellBG.B)
	t.row = 0
	t.col = 0
	_ = t.fb.Present()
}

func (t *Term) lineFeed() {
	if t.row < t.rows-1 {
		t.row++
		return
	}
	_ = t.d.ScrollUp(t.fontH, cellBG)
}

// drawCell paints the cell background and the glyph on top, so overwriting a
// cell never leaves the previous glyph behind.
func (t *Term) drawCell(row, col int, r rune) {
	x := int16(col) * t.fontW
	y := int16(row) * t.fontH
	_ = t.d.FillRectangle(x, y, t.fontW, t.fontH, cellBG)
	tinyfont.DrawChar(t.d, t.font, x, y+t.fontOff, r, cellFG)
}
