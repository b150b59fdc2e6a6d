package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Thoq-jar/qubit/qubitos/store"
)

func cmdLs(s *Shell, _ string) error {
	st, ok := s.firstStore()
	if !ok {
		return errors.New("no filesystem available")
	}
	names, err := st.List()
	if err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	for _, n := range names {
		s.con.WriteString(n + "\n")
	}
	return nil
}

func cmdPwd(s *Shell, _ string) error {
	s.con.WriteString("/\n")
	return nil
}

func cmdFsHandles(s *Shell, _ string) error {
	s.con.WriteString(fmt.Sprintf("Filesystems found: %d\n", len(s.stores)))
	return nil
}

func cmdCat(s *Shell, args string) error {
	name := strings.TrimSpace(args)
	if name == "" {
		return errors.New("usage: cat <filename>")
	}
	st, ok := s.firstStore()
	if !ok {
		return errors.New("no filesystem available")
	}

	data, err := st.Read(name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("cannot open: %s", name)
	case errors.Is(err, store.ErrIsDirectory):
		return fmt.Errorf("%s: is a directory", name)
	case err != nil:
		return fmt.Errorf("read error: %w", err)
	}

	s.writePrintable(data)
	return nil
}

// writePrintable renders file bytes on the cell console: CR is dropped and
// anything outside graphic ASCII is skipped.
func (s *Shell) writePrintable(data []byte) {
	var b strings.Builder
	for _, c := range data {
		switch {
		case c == '\r':
		case c == '\n':
			b.WriteByte('\n')
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		}
	}
	s.con.WriteString(b.String())
	s.con.WriteString("\n")
}
