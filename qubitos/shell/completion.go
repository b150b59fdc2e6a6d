package shell

import "strings"

// CompletionKind classifies the outcome of a tab-completion request.
type CompletionKind uint8

const (
	// NoMatch leaves the buffer untouched.
	NoMatch CompletionKind = iota
	// Unique rewrites the whole buffer with Replacement.
	Unique
	// Ambiguous lists Matches and leaves the buffer untouched.
	Ambiguous
)

// Completion is what the editor does with a tab press.
type Completion struct {
	Kind        CompletionKind
	Replacement string   // set for Unique
	Matches     []string // set for Ambiguous, in registration order
}

// Complete resolves line against the command and program name sets.
//
// The line is split once on the first space. Without a tail the fragment is
// the head and the candidates are all command names followed by all program
// names. With a tail, only `run` defines a completion context: the fragment
// is the tail, the candidates are the program names, and a unique match
// rewrites the line as "run " + match. Matching is a case-sensitive byte
// prefix test.
func Complete(line string, commands, programs []string) Completion {
	head, tail, hasTail := strings.Cut(line, " ")

	var fragment, prefix string
	var candidates []string
	switch {
	case !hasTail:
		candidates = make([]string, 0, len(commands)+len(programs))
		candidates = append(candidates, commands...)
		candidates = append(candidates, programs...)
		fragment = head
	case head == "run":
		candidates = programs
		fragment = tail
		prefix = "run "
	default:
		return Completion{Kind: NoMatch}
	}

	var matches []string
	for _, name := range candidates {
		if strings.HasPrefix(name, fragment) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return Completion{Kind: NoMatch}
	case 1:
		return Completion{Kind: Unique, Replacement: prefix + matches[0]}
	default:
		return Completion{Kind: Ambiguous, Matches: matches}
	}
}
