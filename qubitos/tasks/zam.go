package tasks

import (
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/console"
	"github.com/Thoq-jar/qubit/qubitos/shell"
	"github.com/Thoq-jar/qubit/qubitos/term"
)

var (
	zamDesktop = color.RGBA{R: 48, G: 25, B: 52, A: 255}
	zamWindow  = color.RGBA{R: 30, G: 20, B: 32, A: 255}
	zamTitle   = color.RGBA{R: 40, G: 30, B: 42, A: 255}
	zamText    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// runZam draws a toy windowed terminal straight on the framebuffer: typed
// runes land inside the window, Escape hands the console back to the shell.
func runZam(env shell.Env) {
	con := env.Console
	if env.Display == nil {
		con.WriteString("zam needs a framebuffer display.\n")
		return
	}
	fb := env.Display.Framebuffer()
	if fb == nil {
		con.WriteString("zam needs a framebuffer display.\n")
		return
	}

	z := &zam{
		con:     con,
		d:       term.NewDisplay(fb),
		fb:      fb,
		font:    &proggy.TinySZ8pt7b,
		fontH:   10,
		fontOff: 7,
	}
	_, outboxWidth := tinyfont.LineWidth(z.font, "0")
	z.fontW = int16(outboxWidth)
	if z.fontW <= 0 {
		con.WriteString("zam: unusable font metrics.\n")
		return
	}
	z.run()
	con.Clear()
}

type zam struct {
	con console.Console
	d   *term.FBDisplay
	fb  hal.Framebuffer

	font    tinyfont.Fonter
	fontW   int16
	fontH   int16
	fontOff int16

	winX, winY int16
	winW, winH int16
	row, col   int
	cols, rows int
}

func (z *zam) run() {
	z.layout()
	z.redraw()
	for {
		key, ok, err := z.con.ReadKey()
		if err != nil {
			time.Sleep(2 * time.Millisecond)
			continue
		}
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		if !key.Printable() {
			if key.Scan == console.ScanEscape {
				return
			}
			continue
		}
		z.handleRune(key.Rune)
	}
}

func (z *zam) layout() {
	w := int16(z.fb.Width())
	h := int16(z.fb.Height())
	z.winW = w * 3 / 4
	z.winH = h * 3 / 4
	z.winX = (w - z.winW) / 2
	z.winY = (h - z.winH) / 2
	z.cols = int((z.winW - 8) / z.fontW)
	z.rows = int((z.winH - z.fontH - 8) / z.fontH)
}

func (z *zam) redraw() {
	w := int16(z.fb.Width())
	h := int16(z.fb.Height())
	_ = z.d.FillRectangle(0, 0, w, h, zamDesktop)
	_ = z.d.FillRectangle(z.winX, z.winY, z.winW, z.winH, zamWindow)
	_ = z.d.FillRectangle(z.winX, z.winY, z.winW, z.fontH+2, zamTitle)
	tinyfont.WriteLine(z.d, z.font, z.winX+4, z.winY+z.fontOff, "zam terminal", zamText)
	z.row = 0
	z.col = 0
	_ = z.d.Display()
}

func (z *zam) handleRune(r rune) {
	switch r {
	case '\r', '\n':
		z.col = 0
		z.row++
	case '\b':
		if z.col > 0 {
			z.col--
			z.drawCell(z.row, z.col, ' ')
		}
	default:
		if r < 0x20 {
			return
		}
		z.drawCell(z.row, z.col, r)
		z.col++
		if z.col >= z.cols {
			z.col = 0
			z.row++
		}
	}
	if z.row >= z.rows {
		z.redraw()
		return
	}
	_ = z.d.Display()
}

func (z *zam) drawCell(row, col int, r rune) {
	x := z.winX + 4 + int16(col)*z.fontW
	y := z.winY + z.fontH + 4 + int16(row)*z.fontH
	_ = z.d.FillRectangle(x, y, z.fontW, z.fontH, zamWindow)
	tinyfont.DrawChar(z.d, z.font, x, y+z.fontOff, r, zamText)
}
