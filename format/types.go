// Package format holds the small enumerations shared by the name-group packages.
package format

// Endianness selects the byte order of the fixed-width fields in a COL file.
type Endianness uint8

const (
	LittleEndian Endianness = 0x1 // LittleEndian is the byte order used by PC COL files.
	BigEndian    Endianness = 0x2 // BigEndian is provided for console-era targets.
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is one of the defined byte orders.
func (e Endianness) IsValid() bool {
	return e == LittleEndian || e == BigEndian
}
