package node

import "fmt"

// Path is an ordered sequence of nibbles (4-bit values in [0,15]) used as
// the partial key stored in a leaf or branch. Its logical length is the
// nibble count, not a byte count: one nibble serializes as one byte, high
// nibble zero. Packing two nibbles per byte is a known future optimization
// and is not implemented here (spec §9).
type Path []byte

// PathFromNibbles builds a Path from an ordered list of nibble values.
// It panics if any value is outside [0,15]; producing an invalid nibble is
// a programmer error in the caller, not a runtime condition.
func PathFromNibbles(nibbles []byte) Path {
	p := make(Path, len(nibbles))
	for i, n := range nibbles {
		if n > 0x0f {
			panic(fmt.Sprintf("node: nibble %d out of range", n))
		}
		p[i] = n
	}
	return p
}

// PathFromKey splits a byte key into its nibbles, high nibble first,
// giving the full-length Path a trie walk would consume one key.
func PathFromKey(key []byte) Path {
	p := make(Path, 0, len(key)*2)
	for _, b := range key {
		p = append(p, b>>4, b&0x0f)
	}
	return p
}

// Len returns the nibble count of the path.
func (p Path) Len() int {
	return len(p)
}

// Bytes returns the path as its one-nibble-per-byte wire representation.
// The codec treats this as opaque; callers must not mutate the result.
func (p Path) Bytes() []byte {
	return []byte(p)
}

// Equal reports whether two paths contain the same nibbles in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
