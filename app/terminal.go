//go:build !tinygo

package app

import (
	"fmt"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/qubitos/shell"
	"github.com/Thoq-jar/qubit/qubitos/tasks"
	"github.com/Thoq-jar/qubit/qubitos/term"
)

// RunTerminal runs the shell inside the hosting terminal instead of the
// simulator window. It blocks until the shell panics; the panic comes back
// as an error after the terminal is restored.
func RunTerminal(h hal.HAL, cfg Config) (err error) {
	con, err := term.NewTCell()
	if err != nil {
		return err
	}
	defer con.Fini()
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("shell panic: %v", v)
		}
	}()

	sh, err := shell.New(shell.Config{
		Console:  con,
		Stores:   mountStores(h, cfg),
		Programs: tasks.All(),
		Logger:   h.Logger(),
		Ticks:    tickStream(h),
	})
	if err != nil {
		return err
	}
	sh.Run()
	return nil
}
