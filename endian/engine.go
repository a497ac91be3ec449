// Package endian provides the byte order engines used to encode COL fields.
//
// An EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so
// encoders can either patch fixed-width fields in place or append them to a
// growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, offset)
//
// COL files are little-endian; the big-endian engine exists for targets that
// declare the opposite order.
//
// All engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"

	"github.com/JARVIS-AI/n2b/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the engine for the given byte order.
// Unknown values fall back to little-endian, the COL default.
func GetEngine(e format.Endianness) EndianEngine {
	if e == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
