// Package tasks holds the launchable sub-programs shipped with the shell.
package tasks

import "github.com/Thoq-jar/qubit/qubitos/shell"

// All returns the stock program table in launch-menu order.
func All() []shell.Program {
	return []shell.Program{
		{Name: "echo", Run: runEcho},
		{Name: "keys", Run: runKeys},
		{Name: "glow", Run: runGlow},
		{Name: "zam", Run: runZam},
	}
}
