package namegroup

import (
	"github.com/JARVIS-AI/n2b/endian"
	"github.com/JARVIS-AI/n2b/internal/nameindex"
	"github.com/JARVIS-AI/n2b/section"
)

// NameTable is an immutable, deduplicated name-group table with precomputed
// absolute offsets.
//
// A NameTable is created by Build (or Parse) and never changes afterwards, so
// it is safe for concurrent reads.
type NameTable struct {
	baseOffset uint32
	structSize uint32
	entries    []section.NameGroup
	index      *nameindex.Index
}

// BaseOffset returns the absolute offset the table was built for.
func (t *NameTable) BaseOffset() uint32 {
	return t.baseOffset
}

// StructSize returns the serialized size of the table, header and names included.
func (t *NameTable) StructSize() uint32 {
	return t.structSize
}

// HeaderSize returns the size of the offset header.
func (t *NameTable) HeaderSize() uint32 {
	return uint32(len(t.entries) * section.NameOffsetSize) //nolint: gosec
}

// Len returns the number of unique names.
func (t *NameTable) Len() int {
	return len(t.entries)
}

// Entry returns the entry at position i in table order.
func (t *NameTable) Entry(i int) (section.NameGroup, bool) {
	if i < 0 || i >= len(t.entries) {
		return section.NameGroup{}, false
	}

	return t.entries[i], true
}

// Entries returns a copy of the entries in table order.
func (t *NameTable) Entries() []section.NameGroup {
	out := make([]section.NameGroup, len(t.entries))
	copy(out, t.entries)

	return out
}

// Names returns the unique names in table order.
func (t *NameTable) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}

	return out
}

// IndexOf returns the zero-based position of name in table order.
func (t *NameTable) IndexOf(name string) (int, bool) {
	if t.index == nil {
		return -1, false
	}

	return t.index.Lookup(name)
}

// OffsetOf returns the absolute offset of name's bytes.
func (t *NameTable) OffsetOf(name string) (uint32, bool) {
	i, ok := t.IndexOf(name)
	if !ok {
		return 0, false
	}

	return t.entries[i].StartOffset, true
}

// HasHashCollision reports whether two distinct names share an xxHash64 key
// in the lookup index. Lookups stay exact either way.
func (t *NameTable) HasHashCollision() bool {
	return t.index != nil && t.index.HasCollision()
}

// AppendTo appends the serialized table to dst: first every header offset,
// then every name with its terminator, both in table order.
func (t *NameTable) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	for _, e := range t.entries {
		dst = e.AppendOffset(dst, engine)
	}
	for _, e := range t.entries {
		dst = e.AppendName(dst)
	}

	return dst
}

// MarshalBinary returns the table in the little-endian COL layout.
func (t *NameTable) MarshalBinary() ([]byte, error) {
	return t.AppendTo(make([]byte, 0, t.structSize), endian.GetLittleEndianEngine()), nil
}
