//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	flash  *hostFlash
}

// New returns a host HAL implementation.
func New() HAL {
	return &hostHAL{
		logger: newHostLogger(),
		fb:     newHostFramebuffer(480, 320),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		flash:  newHostFlash(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Flash() Flash     { return h.flash }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func newHostLogger() *hostLogger {
	file := &lumberjack.Logger{
		Filename:   "qubit.log",
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
	return &hostLogger{w: io.MultiWriter(os.Stdout, file)}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, "\n")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
