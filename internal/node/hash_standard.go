//go:build !ethhash

package node

import "fmt"

// StandardHashLen is the fixed digest length of the standard hash mode
// (spec §4.2): Blake2b-256, matching Substrate-style state-trie hashing
// (see internal/merkle, the external hasher that produces these bytes).
const StandardHashLen = 32

// StandardHash is the standard (non-ethhash) HashType: a fixed 32-byte
// digest written and read as a raw block, with no length framing needed
// because the length never varies.
type StandardHash [StandardHashLen]byte

// NewStandardHash wraps an existing 32-byte digest.
func NewStandardHash(digest []byte) (StandardHash, error) {
	var h StandardHash
	if len(digest) != StandardHashLen {
		return h, fmt.Errorf("node: standard hash must be %d bytes, got %d", StandardHashLen, len(digest))
	}
	copy(h[:], digest)
	return h, nil
}

// WriteTo appends the 32 raw digest bytes to sink.
func (h StandardHash) WriteTo(sink Sink) error {
	_, err := sink.Write(h[:])
	return err
}

// Equal reports whether other is a StandardHash with the same bytes.
func (h StandardHash) Equal(other HashType) bool {
	o, ok := other.(StandardHash)
	if !ok {
		return false
	}
	return h == o
}

// Bytes returns the digest bytes.
func (h StandardHash) Bytes() []byte {
	return h[:]
}

// ReadHashType reads a fixed 32-byte hash from src.
func ReadHashType(src Source) (HashType, error) {
	buf, err := ReadFull(src, StandardHashLen)
	if err != nil {
		return nil, err
	}
	var h StandardHash
	copy(h[:], buf)
	return h, nil
}
