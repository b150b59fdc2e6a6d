package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/term"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// renderPanic logs the panic and paints it over the framebuffer. The caller
// parks afterwards; there is no recovery past this point.
func renderPanic(h hal.HAL, v any, stack []byte) {
	logLine(h, fmt.Sprintf("qubit panic: %v", v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			logLine(h, line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(140, 0, 0)

	font := &proggy.TinySZ8pt7b
	fontH, fontOff := int16(10), int16(7)
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontW := int16(outboxWidth)
	if fontW <= 0 {
		_ = fb.Present()
		return
	}
	cols := fb.Width() / int(fontW)
	rows := fb.Height() / int(fontH)
	if cols <= 0 || rows <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{"qubit panic", fmt.Sprintf("panic: %v", v), ""}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	d := term.NewDisplay(fb)
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	row := 0
	for _, line := range lines {
		for _, chunk := range wrapASCII(line, cols) {
			if row >= rows {
				_ = fb.Present()
				return
			}
			tinyfont.WriteLine(d, font, 0, int16(row)*fontH+fontOff, chunk, fg)
			row++
		}
	}
	_ = fb.Present()
}

// wrapASCII splits line into display chunks of at most width bytes. Stack
// traces are ASCII, so byte slicing is rune safe here.
func wrapASCII(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	var chunks []string
	for len(line) > width {
		chunks = append(chunks, line[:width])
		line = line[width:]
	}
	return append(chunks, line)
}
