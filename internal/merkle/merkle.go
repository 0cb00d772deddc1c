// Package merkle computes the Merkle digest of a node from its children's
// digests, the kind of hash a node.Child carries. It is the external
// hasher collaborator internal/node itself never calls (spec §4.6, §5).
// internal/db holds a Hasher, but has no insertion path that attaches its
// digests to children; only internal/db's tests call it.
package merkle

import (
	"github.com/KushnerykPavel/firewood/internal/node"
)

// Hasher computes the digest of a trie node given the already-computed
// hashes of its children, mirroring the bottom-up order a Merkle trie is
// always hashed in: a node's digest depends on its children's digests,
// never the reverse.
type Hasher interface {
	// Hash returns n's digest. childHashes must be in the same order as
	// n's children appear on disk (position 0..ChildrenCapacity-1,
	// skipping empty slots); a Leaf is passed no child hashes.
	Hash(n *node.Node, childHashes []node.HashType) (node.HashType, error)

	// Empty returns the well-known digest of the empty trie, used as the
	// root hash before any key has ever been inserted.
	Empty() node.HashType
}

// canonicalBytes lays out n's content the same way for every Hasher
// implementation: the node's Kind byte, then the length-prefixed partial
// path, then the value behind a presence tag byte (0 for absent, 1 and a
// length prefix for present, so absent differs from present-and-empty),
// then each child hash's raw bytes in order. This is not the on-disk wire format — it exists
// only to feed a hash function, and never touches a node.Sink/node.Source.
func canonicalBytes(n *node.Node, childHashes []node.HashType) []byte {
	path := n.PartialPath()
	value, hasValue := n.Value()

	size := 1 + len(path.Bytes()) + 2 + len(value)
	for _, h := range childHashes {
		size += len(h.Bytes())
	}
	buf := make([]byte, 0, size)

	buf = append(buf, byte(n.Kind()))
	buf = appendLenPrefixed(buf, path.Bytes())

	if hasValue {
		buf = append(buf, 1)
		buf = appendLenPrefixed(buf, value)
	} else {
		buf = append(buf, 0)
	}

	for _, h := range childHashes {
		buf = append(buf, h.Bytes()...)
	}
	return buf
}

func appendLenPrefixed(buf, data []byte) []byte {
	n := len(data)
	buf = append(buf, byte(n), byte(n>>8))
	return append(buf, data...)
}
