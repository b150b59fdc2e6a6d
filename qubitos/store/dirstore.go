//go:build !tinygo

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirStore serves a single host directory as a flat namespace. It exists so
// the simulator can expose real files without building a flash image first.
type DirStore struct {
	root string
}

// OpenDir validates that root is a directory and returns a store over it.
func OpenDir(root string) (*DirStore, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("store: %s: not a directory", root)
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) List() ([]string, error) {
	ents, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names, nil
}

func (s *DirStore) Read(name string) ([]byte, error) {
	// The namespace is flat: path separators never resolve outside root.
	if name == "" || name != filepath.Base(name) {
		return nil, ErrNotFound
	}
	path := filepath.Join(s.root, name)
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: %w", err)
	}
	if st.IsDir() {
		return nil, ErrIsDirectory
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return b, nil
}
