package tasks

import "github.com/Thoq-jar/qubit/qubitos/shell"

// runGlow is a stub pager with a colon command line. Only quitting is
// implemented; everything else reports the unknown command.
func runGlow(env shell.Env) {
	con := env.Console
	con.Clear()
	con.WriteString("glow - type :q or :quit to return.\n")
	for {
		con.WriteString(": ")
		line := shell.ReadLine(con)
		switch line {
		case "q", "quit":
			return
		case "":
		default:
			con.WriteString("Unknown command: :" + line + "\n")
		}
	}
}
