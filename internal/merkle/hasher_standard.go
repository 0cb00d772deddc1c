//go:build !ethhash

package merkle

import (
	"github.com/minio/blake2b-simd"
	"lukechampine.com/blake3"

	"github.com/KushnerykPavel/firewood/internal/node"
)

// standardHasher computes node.StandardHash digests with Blake2b-256,
// matching Substrate-style state-trie hashing (the teacher's own domain).
type standardHasher struct{}

// New returns the Hasher for the build's active hash mode.
func New() Hasher {
	return standardHasher{}
}

func (standardHasher) Hash(n *node.Node, childHashes []node.HashType) (node.HashType, error) {
	sum := blake2b.Sum256(canonicalBytes(n, childHashes))
	return node.NewStandardHash(sum[:])
}

// emptyHash is computed once at init from blake3's digest of zero bytes
// truncated to the standard hash length, giving a fixed, well-known
// constant distinct from any real node's digest without tying the empty
// root to the same algorithm every node body uses — mirroring how the
// teacher's trie package carries its own EmptyHash separate from node
// hashing (trie/genesis.go).
var emptyHash = func() node.StandardHash {
	sum := blake3.Sum256(nil)
	h, err := node.NewStandardHash(sum[:node.StandardHashLen])
	if err != nil {
		panic(err)
	}
	return h
}()

func (standardHasher) Empty() node.HashType {
	return emptyHash
}
