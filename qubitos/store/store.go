// Package store provides the flat file stores the shell inspects.
package store

import "errors"

var (
	// ErrNotFound indicates that a name does not exist in the store.
	ErrNotFound = errors.New("store: not found")
	// ErrIsDirectory indicates that a name refers to a directory entry.
	ErrIsDirectory = errors.New("store: is a directory")
)

// Store is a flat, read-only namespace of named byte blobs.
type Store interface {
	// List returns every entry name in store order.
	List() ([]string, error)
	// Read returns the contents of a regular entry. It returns ErrNotFound
	// for unknown names and ErrIsDirectory for directory entries; other
	// errors are device read failures.
	Read(name string) ([]byte, error)
}
