package tasks

import (
	"fmt"
	"time"

	"github.com/Thoq-jar/qubit/qubitos/console"
	"github.com/Thoq-jar/qubit/qubitos/shell"
)

// runKeys dumps raw key events until Escape, stamped with the platform tick
// they were observed at. Useful for checking what a keyboard actually
// delivers.
func runKeys(env shell.Env) {
	con := env.Console
	con.Clear()
	con.WriteString("Key dump. Press Escape to return.\n")
	var tick uint64
	for {
		select {
		case n := <-env.Ticks:
			tick = n
			continue
		default:
		}

		key, ok, err := con.ReadKey()
		if err != nil {
			time.Sleep(2 * time.Millisecond)
			continue
		}
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		if key.Printable() {
			con.WriteString(fmt.Sprintf("[%8d] rune %q (0x%02x)\n", tick, key.Rune, key.Rune))
			continue
		}
		if key.Scan == console.ScanEscape {
			return
		}
		con.WriteString(fmt.Sprintf("[%8d] scan %s\n", tick, key.Scan))
	}
}
