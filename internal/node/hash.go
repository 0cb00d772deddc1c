package node

// HashType is the Merkle hash blob a Child carries. The node codec only
// reads and writes these bytes; it never computes them (spec §4.2, §4.6 —
// hashing is the external Merkle hasher's job). Two concrete
// implementations exist, selected at compile time by the ethhash build
// tag: StandardHash (fixed 32 bytes) and EthHash (self-describing,
// Ethereum-compatible). Both satisfy this interface so the rest of the
// codec never branches on which mode is active.
type HashType interface {
	// WriteTo appends this hash's wire representation to sink.
	WriteTo(sink Sink) error
	// Equal reports whether two hashes carry the same bytes.
	Equal(other HashType) bool
	// Bytes returns the hash's raw digest bytes.
	Bytes() []byte
}
