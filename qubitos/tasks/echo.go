package tasks

import "github.com/Thoq-jar/qubit/qubitos/shell"

func runEcho(env shell.Env) {
	con := env.Console
	con.Clear()
	con.WriteString("Echo program. Type 'exit' to return.\n")
	for {
		con.WriteString("echo > ")
		line := shell.ReadLine(con)
		if line == "exit" {
			return
		}
		con.WriteString(line + "\n")
	}
}
