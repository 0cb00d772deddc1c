//go:build ethhash

package merkle

import (
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/KushnerykPavel/firewood/internal/node"
)

// digestLen is Keccak-256's output length. Not node.StandardHashLen: that
// constant only exists in the non-ethhash build.
const digestLen = 32

// ethHasher computes node.EthHash digests with Keccak-256, matching
// Ethereum's hash function (spec §4.2's "ethhash" build).
type ethHasher struct{}

// New returns the Hasher for the build's active hash mode.
func New() Hasher {
	return ethHasher{}
}

func (ethHasher) Hash(n *node.Node, childHashes []node.HashType) (node.HashType, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(canonicalBytes(n, childHashes))
	return node.NewEthHash(h.Sum(nil)), nil
}

var emptyHash = func() node.HashType {
	sum := blake3.Sum256(nil)
	return node.NewEthHash(sum[:digestLen])
}()

func (ethHasher) Empty() node.HashType {
	return emptyHash
}
