package node

import "encoding/binary"

// maxVarintLen is the longest a LEB128-style uvarint can be for a 64-bit
// value, matching the stack buffer size the original implementation
// mandates (spec §4.3): "the encoder MUST use a fixed 10-byte stack buffer
// and copy the used prefix — no heap intermediate."
const maxVarintLen = 10

// writeVarint appends the varint encoding of v to sink without any heap
// allocation in the common case: buf lives on the caller's stack, and only
// the used prefix is copied into sink.
func writeVarint(sink Sink, v uint64) error {
	var buf [maxVarintLen]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := sink.Write(buf[:n])
	return err
}

// readVarint reads one LEB128-style uvarint from src, one byte at a time
// (matching the Readable byte source contract of spec §4.4). A malformed
// varint — one that overflows 64 bits or exceeds maxVarintLen bytes without
// terminating — is reported as ErrInvalidVarint.
func readVarint(src Source) (uint64, error) {
	var result uint64
	var shift uint
	for {
		if shift >= 64 {
			return 0, ErrInvalidVarint
		}
		b, err := src.ReadByte()
		if err != nil {
			return 0, wrapShortRead(err)
		}
		if b < 0x80 {
			if shift == 63 && b > 1 {
				return 0, ErrInvalidVarint
			}
			return result | uint64(b)<<shift, nil
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
	}
}
