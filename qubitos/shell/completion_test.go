package shell

import (
	"reflect"
	"testing"
)

func TestComplete(t *testing.T) {
	commands := []string{"help", "clear", "programs", "run", "ls", "pwd", "fs-handles", "cat", "x:debug-panic"}
	programs := []string{"echo", "keys", "glow", "zam"}

	tests := []struct {
		name string
		line string
		want Completion
	}{
		{
			name: "unique command",
			line: "pr",
			want: Completion{Kind: Unique, Replacement: "programs"},
		},
		{
			name: "unique command single letter",
			line: "h",
			want: Completion{Kind: Unique, Replacement: "help"},
		},
		{
			name: "empty line lists everything",
			line: "",
			want: Completion{Kind: Ambiguous, Matches: []string{
				"help", "clear", "programs", "run", "ls", "pwd", "fs-handles", "cat", "x:debug-panic",
				"echo", "keys", "glow", "zam",
			}},
		},
		{
			name: "run argument",
			line: "run e",
			want: Completion{Kind: Unique, Replacement: "run echo"},
		},
		{
			name: "run with empty argument",
			line: "run ",
			want: Completion{Kind: Ambiguous, Matches: []string{"echo", "keys", "glow", "zam"}},
		},
		{
			name: "argument of another command",
			line: "cat f",
			want: Completion{Kind: NoMatch},
		},
		{
			name: "no candidate",
			line: "zzz",
			want: Completion{Kind: NoMatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complete(tt.line, commands, programs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Complete(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
