// Package app assembles the firmware: it boots the console, mounts the
// stores and hands control to the shell.
package app

import (
	"runtime"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/shell"
	"github.com/Thoq-jar/qubit/qubitos/store"
	"github.com/Thoq-jar/qubit/qubitos/tasks"
	"github.com/Thoq-jar/qubit/qubitos/term"
)

type Config struct {
	// ExtraStores are mounted after the flash store. The first mounted
	// store backs the filesystem commands.
	ExtraStores []store.Store
}

// New initializes and starts the firmware with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run starts the firmware and blocks forever (native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

// NewWithConfig boots the framebuffer console and starts the shell on its
// own goroutine. The returned step hook reports a boot failure, if any.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	bootScreen(h)

	con, err := term.NewConsole(h)
	if err != nil {
		logLine(h, "app: console: "+err.Error())
		return func() error { return err }
	}

	sh, err := shell.New(shell.Config{
		Console:  con,
		Stores:   mountStores(h, cfg),
		Programs: tasks.All(),
		Display:  h.Display(),
		Logger:   h.Logger(),
		Ticks:    tickStream(h),
	})
	if err != nil {
		logLine(h, "app: shell: "+err.Error())
		return func() error { return err }
	}

	go runShell(h, sh)
	return func() error { return nil }
}

// runShell keeps the shell alive. A panic anywhere under the shell lands on
// the panic screen and parks the goroutine there.
func runShell(h hal.HAL, sh *shell.Shell) {
	defer func() {
		if v := recover(); v != nil {
			buf := make([]byte, 16*1024)
			n := runtime.Stack(buf, false)
			renderPanic(h, v, buf[:n])
			select {}
		}
	}()
	sh.Run()
}

// mountStores mounts flash first, then the configured extras. A store that
// fails to mount is logged and skipped; the shell runs fine without one.
func mountStores(h hal.HAL, cfg Config) []store.Store {
	var stores []store.Store
	if fl := h.Flash(); fl != nil {
		fs, err := store.MountFlash(fl)
		if err != nil {
			logLine(h, "app: flash store: "+err.Error())
		} else {
			stores = append(stores, fs)
		}
	}
	stores = append(stores, cfg.ExtraStores...)
	return stores
}

func tickStream(h hal.HAL) <-chan uint64 {
	if t := h.Time(); t != nil {
		return t.Ticks()
	}
	return nil
}

func logLine(h hal.HAL, s string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
