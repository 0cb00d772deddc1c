//go:build ethhash

package node

// EthHash is the Ethereum-compatible HashType: a self-describing blob of
// any length, varint-prefixed on the wire (spec §4.2: "self-describing").
// internal/merkle's ethhash hasher always produces a 32-byte Keccak-256
// digest; it does not inline a short node's own encoding in place of a
// digest.
type EthHash []byte

// NewEthHash wraps an existing digest-or-inlined-encoding blob.
func NewEthHash(raw []byte) EthHash {
	h := make(EthHash, len(raw))
	copy(h, raw)
	return h
}

// WriteTo appends a varint length followed by the raw bytes to sink.
func (h EthHash) WriteTo(sink Sink) error {
	if err := writeVarint(sink, uint64(len(h))); err != nil {
		return err
	}
	if len(h) == 0 {
		return nil
	}
	_, err := sink.Write(h)
	return err
}

// Equal reports whether other is an EthHash with the same bytes.
func (h EthHash) Equal(other HashType) bool {
	o, ok := other.(EthHash)
	if !ok {
		return false
	}
	return bytesEqual(h, o)
}

// Bytes returns the underlying blob.
func (h EthHash) Bytes() []byte {
	return h
}

// ReadHashType reads a varint length followed by that many bytes from src.
func ReadHashType(src Source) (HashType, error) {
	n, err := readVarint(src)
	if err != nil {
		return nil, err
	}
	buf, err := ReadFull(src, int(n))
	if err != nil {
		return nil, err
	}
	return EthHash(buf), nil
}
