//go:build !tinygo

package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Thoq-jar/qubit/qubitos/console"
)

// TCellConsole runs the shell inside the hosting terminal via tcell. The
// blocking tcell event loop is pumped into a channel so ReadKey keeps the
// non-blocking poll contract of console.Console.
type TCellConsole struct {
	screen tcell.Screen
	events chan tcell.Event
	style  tcell.Style

	cols, rows int
	row, col   int
}

func NewTCell() (*TCellConsole, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}

	c := &TCellConsole{
		screen: screen,
		events: make(chan tcell.Event, 64),
		style:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	c.screen.SetStyle(c.style)
	c.cols, c.rows = screen.Size()
	c.screen.Clear()
	c.screen.Show()

	// PollEvent blocks, so it runs on its own goroutine. It returns nil
	// once Fini has been called, which ends the pump.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(c.events)
				return
			}
			c.events <- ev
		}
	}()

	return c, nil
}

func (c *TCellConsole) ReadKey() (console.Key, bool, error) {
	select {
	case ev, ok := <-c.events:
		if !ok {
			return console.Key{}, false, fmt.Errorf("term: screen closed")
		}
		return c.handleEvent(ev)
	default:
		return console.Key{}, false, nil
	}
}

func (c *TCellConsole) handleEvent(ev tcell.Event) (console.Key, bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ok := keyFromTCell(ev)
		return key, ok, nil
	case *tcell.EventResize:
		c.cols, c.rows = ev.Size()
		c.screen.Sync()
		return console.Key{}, false, nil
	case *tcell.EventError:
		return console.Key{}, false, fmt.Errorf("term: %s", ev.Error())
	default:
		return console.Key{}, false, nil
	}
}

func keyFromTCell(ev *tcell.EventKey) (console.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return console.Key{Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return console.Key{Rune: '\r'}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return console.Key{Rune: '\b'}, true
	case tcell.KeyTab:
		return console.Key{Rune: '\t'}, true
	case tcell.KeyEscape:
		return console.Key{Scan: console.ScanEscape}, true
	case tcell.KeyUp:
		return console.Key{Scan: console.ScanUp}, true
	case tcell.KeyDown:
		return console.Key{Scan: console.ScanDown}, true
	case tcell.KeyLeft:
		return console.Key{Scan: console.ScanLeft}, true
	case tcell.KeyRight:
		return console.Key{Scan: console.ScanRight}, true
	default:
		return console.Key{Scan: console.ScanOther}, true
	}
}

func (c *TCellConsole) WriteString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			c.col = 0
			c.lineFeed()
		case '\r':
			c.col = 0
		case '\b':
			if c.col > 0 {
				c.col--
			}
		default:
			if r < 0x20 {
				continue
			}
			c.screen.SetContent(c.col, c.row, r, nil, c.style)
			c.col++
			if c.col >= c.cols {
				c.col = 0
				c.lineFeed()
			}
		}
	}
	c.screen.ShowCursor(c.col, c.row)
	c.screen.Show()
}

// lineFeed wraps back to the top row once the screen is full. tcell has no
// cheap scroll primitive, so the bottom row clears and reuse starts over.
func (c *TCellConsole) lineFeed() {
	c.row++
	if c.row >= c.rows {
		c.row = 0
	}
	for x := 0; x < c.cols; x++ {
		c.screen.SetContent(x, c.row, ' ', nil, c.style)
	}
}

func (c *TCellConsole) SetCursor(row, col int) {
	if row >= 0 && row < c.rows {
		c.row = row
	}
	if col >= 0 && col < c.cols {
		c.col = col
	}
	c.screen.ShowCursor(c.col, c.row)
	c.screen.Show()
}

func (c *TCellConsole) Clear() {
	c.screen.Clear()
	c.row = 0
	c.col = 0
	c.screen.ShowCursor(0, 0)
	c.screen.Show()
}

// Fini releases the terminal. Call it before process exit.
func (c *TCellConsole) Fini() {
	c.screen.Fini()
}
