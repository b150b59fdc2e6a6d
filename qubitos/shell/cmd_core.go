package shell

import (
	"errors"
	"fmt"
	"strings"
)

func coreCommands() []Command {
	return []Command{
		{Name: "help", Help: "Show this help", Run: func(*Shell, string) error { return nil }},
		{Name: "clear", Help: "Clear screen", Run: cmdClear},
		{Name: "programs", Help: "List programs", Run: cmdPrograms},
		{Name: "run", Help: "Run a program: run <name>", Run: cmdRun},
		{Name: "ls", Help: "List root directory", Run: cmdLs},
		{Name: "pwd", Help: "Print current directory", Run: cmdPwd},
		{Name: "fs-handles", Help: "Count available filesystems", Run: cmdFsHandles},
		{Name: "cat", Help: "Show file contents: cat <name>", Run: cmdCat},
		{Name: "x:debug-panic", Help: "For debugging: test panics", Run: cmdDebugPanic},
	}
}

func cmdClear(s *Shell, _ string) error {
	s.con.Clear()
	return nil
}

func cmdPrograms(s *Shell, _ string) error {
	s.con.WriteString("Programs: " + strings.Join(s.programNames(), ", ") + "\n")
	return nil
}

func cmdRun(s *Shell, args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: run <name>")
	}
	p, ok := s.findProgram(name)
	if !ok {
		return fmt.Errorf("no such program: %s", name)
	}
	s.con.WriteString("Launching '" + p.Name + "'...\n")
	p.Run(Env{Console: s.con, Display: s.display, Logger: s.logger, Ticks: s.ticks})
	s.con.WriteString("Program '" + p.Name + "' exited.\n")
	return nil
}

func cmdDebugPanic(*Shell, string) error {
	panic("test panic")
}
