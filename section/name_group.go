package section

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JARVIS-AI/n2b/endian"
	"github.com/JARVIS-AI/n2b/errs"
)

// NameGroup is one entry of the COL name-group table.
//
// The header stores StartOffset as a fixed 4-byte field; the blob stores Name
// followed by a single NameTerminator.
type NameGroup struct {
	// Name is both the lookup key and the serialized payload.
	Name string
	// StartOffset is the absolute file offset where Name's bytes begin.
	StartOffset uint32
}

// EncodedSize returns the number of blob bytes the entry occupies, terminator included.
func (g NameGroup) EncodedSize() int {
	return len(g.Name) + 1
}

// EndOffset returns the absolute offset just past the entry's terminator.
func (g NameGroup) EndOffset() uint64 {
	return uint64(g.StartOffset) + uint64(g.EncodedSize())
}

// AppendOffset appends the entry's header field to dst.
func (g NameGroup) AppendOffset(dst []byte, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(dst, g.StartOffset)
}

// AppendName appends the entry's blob bytes to dst.
func (g NameGroup) AppendName(dst []byte) []byte {
	dst = append(dst, g.Name...)
	return append(dst, NameTerminator)
}

// ParseNameOffset reads one header field from data.
func ParseNameOffset(data []byte, engine endian.EndianEngine) (uint32, error) {
	if len(data) < NameOffsetSize {
		return 0, fmt.Errorf("%w: need %d bytes for offset, have %d", errs.ErrTruncated, NameOffsetSize, len(data))
	}

	return engine.Uint32(data[:NameOffsetSize]), nil
}

// ReadName returns the NUL-terminated name that starts at pos in blob.
func ReadName(blob []byte, pos int) (string, error) {
	if pos < 0 || pos >= len(blob) {
		return "", fmt.Errorf("%w: position %d, blob size %d", errs.ErrInvalidOffset, pos, len(blob))
	}

	end := bytes.IndexByte(blob[pos:], NameTerminator)
	if end < 0 {
		return "", fmt.Errorf("%w: name at position %d", errs.ErrMissingTerminator, pos)
	}

	return string(blob[pos : pos+end]), nil
}

// ValidateName reports whether name can be stored as a NUL-terminated string.
func ValidateName(name string) error {
	if i := strings.IndexByte(name, NameTerminator); i >= 0 {
		return fmt.Errorf("%w: %w: %q at byte %d", errs.ErrEncoding, errs.ErrEmbeddedNUL, name, i)
	}

	return nil
}
