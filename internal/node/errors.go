package node

import (
	"errors"
	"fmt"
)

// Decode error kinds (spec §7). All of them propagate to the caller
// untouched: the codec never retries, never logs, never recovers.
var (
	// ErrFreedArea is returned when the first content byte is 0xFF, the
	// arena's marker for a reclaimed region.
	ErrFreedArea = errors.New("node: attempt to read freed area")

	// ErrZeroAddress is returned when a child's 8-byte address field
	// decodes to zero. Zero is reserved and never a valid on-disk pointer.
	ErrZeroAddress = errors.New("node: zero address in child")

	// ErrInvalidVarint is returned when a varint-length field does not
	// terminate within the bounds integer-encoding allows (malformed input).
	ErrInvalidVarint = errors.New("node: invalid varint")

	// ErrShortRead is returned when the underlying reader runs out of
	// bytes before a fixed-length field is fully read. Wraps io.EOF /
	// io.ErrUnexpectedEOF from the caller's reader.
	ErrShortRead = errors.New("node: unexpected eof")
)

// errChildNotAddressable is a Programmer error (spec §7 kind 5): a Child
// that is not AddressWithHash was handed to the codec. Serialization
// preconditions are violated by a bug in the caller, not by corrupt input,
// so this is surfaced as a panic rather than a returned error.
func errChildNotAddressable(c Child) string {
	return fmt.Sprintf("node: cannot serialize a Child with Kind %v, want AddressWithHash", c.Kind)
}
