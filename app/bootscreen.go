package app

import (
	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/internal/buildinfo"
	"github.com/Thoq-jar/qubit/qubitos/term"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// bootScreen paints the firmware banner through tinyterm before the cell
// console takes the framebuffer over.
func bootScreen(h hal.HAL) {
	logLine(h, "qubit "+buildinfo.Short()+" booting")

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)
	t := tinyterm.NewTerminal(term.NewDisplay(fb))
	t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 7,
	})
	_, _ = t.Write([]byte(">>> qubit " + buildinfo.Short() + " - firmware initialization <<<\r\n"))
	t.Display()
	_ = fb.Present()
}
