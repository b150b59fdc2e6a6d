//go:build !tinygo

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	ds, err := OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	names, err := ds.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("List = %v, want 2 entries", names)
	}

	data, err := ds.Read("readme.txt")
	if err != nil || string(data) != "hi" {
		t.Fatalf("Read = %q, %v", data, err)
	}

	if _, err := ds.Read("sub"); !errors.Is(err, ErrIsDirectory) {
		t.Fatalf("Read(sub) err = %v, want ErrIsDirectory", err)
	}
	if _, err := ds.Read("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read(missing) err = %v, want ErrNotFound", err)
	}
	if _, err := ds.Read("../readme.txt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read escaped the root, err = %v", err)
	}
}

func TestOpenDirRejectsFiles(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "plain")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenDir(path); err == nil {
		t.Fatalf("OpenDir accepted a plain file")
	}
}
