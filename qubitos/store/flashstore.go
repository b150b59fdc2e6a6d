package store

import (
	"fmt"

	"github.com/Thoq-jar/qubit/hal"
)

// FlashStore serves a store image that lives at offset 0 of a flash device.
type FlashStore struct {
	flash hal.Flash
	idx   []indexEntry
}

// MountFlash parses the image index from flash. It fails when the flash is
// absent or does not carry a valid image.
func MountFlash(flash hal.Flash) (*FlashStore, error) {
	if flash == nil {
		return nil, fmt.Errorf("store: no flash device")
	}
	idx, err := parseImageIndex(flashReader(flash))
	if err != nil {
		return nil, err
	}
	return &FlashStore{flash: flash, idx: idx}, nil
}

func flashReader(flash hal.Flash) imageReader {
	return func(p []byte, off uint32) error {
		n, err := flash.ReadAt(p, off)
		if err != nil {
			return fmt.Errorf("store: flash read at %d: %w", off, err)
		}
		if n < len(p) {
			return fmt.Errorf("store: short flash read at %d", off)
		}
		return nil
	}
}

// ImageStore serves a store image held in memory, for images loaded from a
// host file instead of flash.
type ImageStore struct {
	b   []byte
	idx []indexEntry
}

// MountBytes parses b as a store image and serves it from memory.
func MountBytes(b []byte) (*ImageStore, error) {
	idx, err := parseImageIndex(imageReaderFromBytes(b))
	if err != nil {
		return nil, err
	}
	return &ImageStore{b: b, idx: idx}, nil
}

func (s *ImageStore) List() ([]string, error) {
	names := make([]string, 0, len(s.idx))
	for _, e := range s.idx {
		names = append(names, e.name)
	}
	return names, nil
}

func (s *ImageStore) Read(name string) ([]byte, error) {
	for _, e := range s.idx {
		if e.name != name {
			continue
		}
		if e.kind == EntryDir {
			return nil, ErrIsDirectory
		}
		if int(e.off)+int(e.size) > len(s.b) {
			return nil, fmt.Errorf("store image: %q truncated", name)
		}
		return append([]byte(nil), s.b[e.off:e.off+e.size]...), nil
	}
	return nil, ErrNotFound
}

func (s *FlashStore) List() ([]string, error) {
	names := make([]string, 0, len(s.idx))
	for _, e := range s.idx {
		names = append(names, e.name)
	}
	return names, nil
}

func (s *FlashStore) Read(name string) ([]byte, error) {
	for _, e := range s.idx {
		if e.name != name {
			continue
		}
		if e.kind == EntryDir {
			return nil, ErrIsDirectory
		}
		buf := make([]byte, e.size)
		if err := flashReader(s.flash)(buf, e.off); err != nil {
			return nil, err
		}
		return buf, nil
	}
	return nil, ErrNotFound
}
