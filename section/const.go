package section

import "math"

const (
	NameOffsetSize = 4              // fixed size of one header offset in bytes
	NameTerminator = byte(0x00)     // terminator appended to every name in the blob
	MaxOffset      = math.MaxUint32 // largest absolute file offset a header entry can hold
)
