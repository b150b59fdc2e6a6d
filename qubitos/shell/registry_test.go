package shell

import (
	"reflect"
	"testing"
)

func noopRun(*Shell, string) error { return nil }

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	r, err := newRegistry([]Command{
		{Name: "bravo", Run: noopRun},
		{Name: "alpha", Run: noopRun},
		{Name: "charlie", Run: noopRun},
	})
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}
	want := []string{"bravo", "alpha", "charlie"}
	if got := r.names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

func TestRegistryResolve(t *testing.T) {
	r, err := newRegistry(coreCommands())
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}
	cmd, ok := r.resolve("fs-handles")
	if !ok || cmd.Name != "fs-handles" {
		t.Fatalf("resolve(fs-handles) = %+v, %v", cmd, ok)
	}
	if _, ok := r.resolve("fs"); ok {
		t.Fatalf("resolve matched a prefix instead of the full name")
	}
}

func TestRegistryRejectsBadCommands(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
	}{
		{"empty name", []Command{{Name: "  ", Run: noopRun}}},
		{"nil handler", []Command{{Name: "x"}}},
		{"duplicate", []Command{{Name: "x", Run: noopRun}, {Name: "x", Run: noopRun}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newRegistry(tt.cmds); err == nil {
				t.Fatalf("newRegistry accepted %v", tt.cmds)
			}
		})
	}
}
