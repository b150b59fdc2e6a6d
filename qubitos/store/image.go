package store

import (
	"encoding/binary"
	"fmt"
)

// Store image layout, all integers little-endian:
//
//	[4]byte magic "QSI1"
//	uint32  entry count
//	entries, each:
//	    uint8  kind (0 = file, 1 = directory)
//	    uint8  name length (1..64)
//	    uint32 data size (0 for directories)
//	    name bytes
//	    data bytes
//
// The format is sequential on purpose: mounting walks the table once and
// keeps only name/offset/size, so memory stays bounded by the entry count.

const (
	imageMagic = "QSI1"

	// EntryFile marks a regular entry in a store image.
	EntryFile uint8 = 0
	// EntryDir marks a directory entry in a store image.
	EntryDir uint8 = 1

	maxImageNameLen = 64
	maxImageEntries = 1024

	imageHeaderLen = 8
	entryHeaderLen = 6
)

// ImageEntry is one entry of a store image.
type ImageEntry struct {
	Name string
	Kind uint8
	Data []byte
}

// EncodeImage serializes entries into a store image.
func EncodeImage(entries []ImageEntry) ([]byte, error) {
	if len(entries) > maxImageEntries {
		return nil, fmt.Errorf("store image: %d entries exceeds limit %d", len(entries), maxImageEntries)
	}

	out := make([]byte, 0, imageHeaderLen)
	out = append(out, imageMagic...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(entries)))

	for _, e := range entries {
		if e.Name == "" || len(e.Name) > maxImageNameLen {
			return nil, fmt.Errorf("store image: invalid name %q", e.Name)
		}
		if e.Kind != EntryFile && e.Kind != EntryDir {
			return nil, fmt.Errorf("store image: %q has invalid kind %d", e.Name, e.Kind)
		}
		data := e.Data
		if e.Kind == EntryDir {
			data = nil
		}

		out = append(out, e.Kind, uint8(len(e.Name)))
		out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
		out = append(out, e.Name...)
		out = append(out, data...)
	}
	return out, nil
}

// DecodeImage parses a store image back into its entries.
func DecodeImage(b []byte) ([]ImageEntry, error) {
	idx, err := parseImageIndex(imageReaderFromBytes(b))
	if err != nil {
		return nil, err
	}

	entries := make([]ImageEntry, 0, len(idx))
	for _, e := range idx {
		ent := ImageEntry{Name: e.name, Kind: e.kind}
		if e.kind == EntryFile {
			if int(e.off)+int(e.size) > len(b) {
				return nil, fmt.Errorf("store image: %q truncated", e.name)
			}
			ent.Data = append([]byte(nil), b[e.off:e.off+e.size]...)
		}
		entries = append(entries, ent)
	}
	return entries, nil
}

// imageReader abstracts the backing medium for index parsing: a byte slice
// for tools and tests, flash for the mounted store.
type imageReader func(p []byte, off uint32) error

func imageReaderFromBytes(b []byte) imageReader {
	return func(p []byte, off uint32) error {
		if int(off)+len(p) > len(b) {
			return fmt.Errorf("store image: truncated at %d", off)
		}
		copy(p, b[off:])
		return nil
	}
}

type indexEntry struct {
	name string
	kind uint8
	off  uint32
	size uint32
}

func parseImageIndex(read imageReader) ([]indexEntry, error) {
	var hdr [imageHeaderLen]byte
	if err := read(hdr[:], 0); err != nil {
		return nil, err
	}
	if string(hdr[:4]) != imageMagic {
		return nil, fmt.Errorf("store image: bad magic %q", hdr[:4])
	}
	count := binary.LittleEndian.Uint32(hdr[4:])
	if count > maxImageEntries {
		return nil, fmt.Errorf("store image: entry count %d exceeds limit %d", count, maxImageEntries)
	}

	idx := make([]indexEntry, 0, count)
	off := uint32(imageHeaderLen)
	var eh [entryHeaderLen]byte
	var nameBuf [maxImageNameLen]byte
	for i := uint32(0); i < count; i++ {
		if err := read(eh[:], off); err != nil {
			return nil, err
		}
		kind := eh[0]
		nameLen := eh[1]
		size := binary.LittleEndian.Uint32(eh[2:])
		if kind != EntryFile && kind != EntryDir {
			return nil, fmt.Errorf("store image: entry %d has invalid kind %d", i, kind)
		}
		if nameLen == 0 || nameLen > maxImageNameLen {
			return nil, fmt.Errorf("store image: entry %d has invalid name length %d", i, nameLen)
		}
		off += entryHeaderLen

		name := nameBuf[:nameLen]
		if err := read(name, off); err != nil {
			return nil, err
		}
		off += uint32(nameLen)

		idx = append(idx, indexEntry{name: string(name), kind: kind, off: off, size: size})
		off += size
	}
	return idx, nil
}
