// Package shell implements the qubit command shell: a line editor with
// history recall and prefix completion in front of a fixed command table.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Thoq-jar/qubit/hal"
	"github.com/Thoq-jar/qubit/internal/buildinfo"
	"github.com/Thoq-jar/qubit/qubitos/console"
	"github.com/Thoq-jar/qubit/qubitos/store"
)

const promptSuffix = "> "

// Program is a launchable sub-program. Run takes over the console until it
// returns; the shell prints a completion notice afterwards.
type Program struct {
	Name string
	Run  func(env Env)
}

// Env is what a sub-program gets to work with.
type Env struct {
	Console console.Console
	Display hal.Display // nil when the platform has no framebuffer
	Logger  hal.Logger
	Ticks   <-chan uint64 // platform tick stream, nil when the clock is absent
}

// Config wires a Shell to its collaborators. Console is required;
// everything else degrades gracefully when absent.
type Config struct {
	Console  console.Console
	Stores   []store.Store
	Programs []Program
	Display  hal.Display
	Logger   hal.Logger
	Ticks    <-chan uint64
	WorkDir  string // prompt marker, "~" by default
}

// Shell owns the session state: edit buffer, history ring and the command
// table. All of it is driven from a single control flow.
type Shell struct {
	con      console.Console
	stores   []store.Store
	programs []Program
	display  hal.Display
	logger   hal.Logger
	ticks    <-chan uint64
	reg      *registry
	hist     *History
	cwd      string
}

func New(cfg Config) (*Shell, error) {
	if cfg.Console == nil {
		return nil, errors.New("shell: no console")
	}
	s := &Shell{
		con:      cfg.Console,
		stores:   cfg.Stores,
		programs: cfg.Programs,
		display:  cfg.Display,
		logger:   cfg.Logger,
		ticks:    cfg.Ticks,
		hist:     NewHistory(),
		cwd:      cfg.WorkDir,
	}
	if s.cwd == "" {
		s.cwd = "~"
	}
	reg, err := newRegistry(coreCommands())
	if err != nil {
		return nil, err
	}
	s.reg = reg
	return s, nil
}

// Run prints the banner and serves the prompt forever. The shell has no
// exit notion; only sub-programs return control.
func (s *Shell) Run() {
	s.con.Clear()
	s.con.WriteString("qubit " + buildinfo.Short() + " tty0\n")
	s.con.WriteString("Run 'help' to get started!\n")
	for {
		s.serveOnce()
	}
}

func (s *Shell) prompt() string {
	return "root@qubit:" + s.cwd + promptSuffix
}

// serveOnce runs one prompt/read/dispatch cycle.
func (s *Shell) serveOnce() {
	s.con.WriteString(s.prompt())
	ed := newEditor(s.con, s.hist, s.prompt(), s.completeLine)
	line := strings.TrimSpace(ed.readLine())
	if line == "" {
		return
	}

	name, args, _ := strings.Cut(line, " ")

	// help is a listing, not a dispatch: it never reaches the registry
	// and is not recorded.
	if name == "help" {
		s.printHelp()
		return
	}

	if cmd, ok := s.reg.resolve(name); ok {
		if err := cmd.Run(s, args); err != nil {
			s.con.WriteString(err.Error() + "\n")
		}
	} else {
		s.con.WriteString("unknown command: " + name + " (try 'help')\n")
	}

	s.hist.Record(line)
}

func (s *Shell) printHelp() {
	s.con.WriteString("Commands:\n")
	for _, c := range s.reg.cmds {
		s.con.WriteString(fmt.Sprintf("  %-12s %s\n", c.Name, c.Help))
	}
}

func (s *Shell) completeLine(line string) Completion {
	return Complete(line, s.reg.names(), s.programNames())
}

func (s *Shell) programNames() []string {
	names := make([]string, 0, len(s.programs))
	for _, p := range s.programs {
		names = append(names, p.Name)
	}
	return names
}

func (s *Shell) findProgram(name string) (Program, bool) {
	for _, p := range s.programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

func (s *Shell) firstStore() (store.Store, bool) {
	if len(s.stores) == 0 {
		return nil, false
	}
	return s.stores[0], true
}
