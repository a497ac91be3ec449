// Package nameindex keeps an insertion-ordered set of names with O(1)
// name→position lookup.
//
// Names are keyed by their xxHash64. Names that share a hash are chained in the
// same bucket and told apart by string comparison, so a collision never merges
// two distinct names.
package nameindex

import "github.com/JARVIS-AI/n2b/internal/hash"

// Index tracks unique names in first-seen order.
type Index struct {
	buckets      map[uint64][]int // hash → positions in names
	names        []string         // first-seen order
	hashFunc     func(string) uint64
	hasCollision bool
}

// New creates an Index sized for capacity names.
func New(capacity int) *Index {
	return NewWithHash(capacity, hash.NameID)
}

// NewWithHash creates an Index that keys names with hashFunc.
func NewWithHash(capacity int, hashFunc func(string) uint64) *Index {
	if capacity < 0 {
		capacity = 0
	}

	return &Index{
		buckets:  make(map[uint64][]int, capacity),
		names:    make([]string, 0, capacity),
		hashFunc: hashFunc,
	}
}

// Add registers name and returns its position.
// added is false when name was already present; its position is unchanged.
func (x *Index) Add(name string) (pos int, added bool) {
	h := x.hashFunc(name)

	bucket := x.buckets[h]
	for _, p := range bucket {
		if x.names[p] == name {
			return p, false
		}
	}

	if len(bucket) > 0 {
		x.hasCollision = true
	}

	pos = len(x.names)
	x.names = append(x.names, name)
	x.buckets[h] = append(bucket, pos)

	return pos, true
}

// Lookup returns the position of name.
func (x *Index) Lookup(name string) (int, bool) {
	for _, p := range x.buckets[x.hashFunc(name)] {
		if x.names[p] == name {
			return p, true
		}
	}

	return -1, false
}

// Names returns the unique names in first-seen order.
// The returned slice is owned by the Index and must not be modified.
func (x *Index) Names() []string {
	return x.names
}

// Len returns the number of unique names.
func (x *Index) Len() int {
	return len(x.names)
}

// HasCollision reports whether two distinct names ever shared a hash.
func (x *Index) HasCollision() bool {
	return x.hasCollision
}
