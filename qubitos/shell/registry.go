package shell

import (
	"fmt"
	"strings"
)

// Command is one entry of the dispatch table. Run receives the raw argument
// string: everything after the first space, untokenized.
type Command struct {
	Name string
	Help string
	Run  func(s *Shell, args string) error
}

// registry is a fixed, registration-ordered command table built once at
// startup. Lookup is a linear scan: the table is small and the order feeds
// both the help listing and the completion candidate set.
type registry struct {
	cmds []Command
}

func newRegistry(cmds []Command) (*registry, error) {
	r := &registry{cmds: make([]Command, 0, len(cmds))}
	for _, c := range cmds {
		if err := r.register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) register(cmd Command) error {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return fmt.Errorf("shell registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("shell registry: %q has no handler", cmd.Name)
	}
	for _, have := range r.cmds {
		if have.Name == cmd.Name {
			return fmt.Errorf("shell registry: duplicate command %q", cmd.Name)
		}
	}
	r.cmds = append(r.cmds, cmd)
	return nil
}

func (r *registry) resolve(name string) (Command, bool) {
	for _, c := range r.cmds {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

func (r *registry) names() []string {
	out := make([]string, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c.Name)
	}
	return out
}
