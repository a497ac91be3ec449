package hash

import "github.com/cespare/xxhash/v2"

// NameID computes the xxHash64 of a name-group name.
func NameID(name string) uint64 {
	return xxhash.Sum64String(name)
}
