// Package section defines the byte layout of the COL name-group table.
//
// The table is one section of a larger COL file. It starts at an absolute
// base offset chosen by the exporter and holds N unique names:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (N × 4 bytes)                                      │
//	│  - absolute file offset of name i, in table order         │
//	│  - fixed byte order (little-endian for COL)               │
//	├──────────────────────────────────────────────────────────┤
//	│ Blob (Σ len(name)+1 bytes)                                │
//	│  - name_0 bytes, 0x00, name_1 bytes, 0x00, ...            │
//	│  - no padding or alignment between names                  │
//	└──────────────────────────────────────────────────────────┘
//
// The first offset is always base + 4N; every following offset advances by
// the previous name's length plus its terminator.
//
// Example with base 0 and names "foo", "bar":
//
//	00: 08 00 00 00   offset of "foo"
//	04: 0C 00 00 00   offset of "bar"
//	08: 66 6F 6F 00   "foo\0"
//	0C: 62 61 72 00   "bar\0"
//
// Offsets are absolute file positions, not positions within the section, so
// the base offset used to build a table must match the one used to write it.
package section
