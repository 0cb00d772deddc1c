package node

import (
	"encoding/binary"
	"fmt"
)

// leafPPOverflow is the inline partial-path-length sentinel for leaves
// (spec §4.5.1): lengths 0..125 are stored directly in the first byte's
// upper 7 bits; 126 means "the true length follows as a varint". 127
// (first byte 0xFF) is never produced — it is the arena's freed-area mark.
const leafPPOverflow = 126

// reserveBranch / reserveLeaf are advisory capacity hints passed to
// Sink.Grow before encoding, matching the original's OPTIMIZE_BRANCHES_
// FOR_SIZE / OPTIMIZE_LEAVES_FOR_SIZE constants (spec §9).
const (
	reserveBranch = 1024
	reserveLeaf   = 128
)

// Codec is the serialize/deserialize protocol of spec §4.5. It holds no
// state across calls and performs no I/O beyond the caller-supplied
// Sink/Source: Codec is an empty struct, and Encode and Decode are
// methods on it only to group them; there is no state to instantiate.
type Codec struct{}

// Encode writes prefix, then n's on-disk representation, to sink. prefix
// is the caller's size-class byte and is not interpreted by the codec.
//
// Encoding an invalid Node — a Branch with no children (with or without a
// value), or a Child that is not ChildAddressWithHash — is a programmer error in the
// caller and panics rather than returning an error (spec §7).
func (Codec) Encode(prefix byte, n *Node, sink Sink) error {
	if err := sink.WriteByte(prefix); err != nil {
		return err
	}
	switch n.kind {
	case Leaf:
		return encodeLeaf(n.leaf, sink)
	default:
		return encodeBranch(n.branch, sink)
	}
}

func encodeLeaf(l *LeafNode, sink Sink) error {
	ppLen := l.PartialPath.Len()
	ppField := ppLen
	overflow := ppLen >= leafPPOverflow
	if overflow {
		ppField = leafPPOverflow
	}

	sink.Grow(reserveLeaf)
	if err := sink.WriteByte(byte(ppField<<1) | 1); err != nil {
		return err
	}
	if overflow {
		if err := writeVarint(sink, uint64(ppLen)); err != nil {
			return err
		}
	}
	if _, err := sink.Write(l.PartialPath.Bytes()); err != nil {
		return err
	}
	if err := writeVarint(sink, uint64(len(l.Value))); err != nil {
		return err
	}
	_, err := sink.Write(l.Value)
	return err
}

func encodeBranch(b *BranchNode, sink Sink) error {
	type present struct {
		position int
		child    *Child
	}
	var children []present
	for i, c := range b.Children {
		if c != nil {
			children = append(children, present{i, c})
		}
	}
	childCount := len(children)
	if childCount == 0 {
		// The wire format has no way to distinguish "zero children" from
		// "full" (childcount is stored mod ChildrenCapacity, and 0 means
		// full either way) — a branch with zero children is therefore
		// never representable, regardless of whether it carries a value
		// (spec §4.5.5, §9).
		panic("node: cannot encode a branch with zero children")
	}

	ppLen := b.PartialPath.Len()
	ppField := ppLen
	ppOverflow := ppLen >= branchPPOverflowSentinel
	if ppOverflow {
		ppField = branchPPOverflowSentinel
	}

	firstByte := packBranchFirstByte(b.HasValue, childCount%ChildrenCapacity, ppField)

	sink.Grow(reserveBranch)
	if err := sink.WriteByte(firstByte); err != nil {
		return err
	}
	if hasSeparateChildCountByte {
		if err := sink.WriteByte(byte(childCount % ChildrenCapacity)); err != nil {
			return err
		}
	}
	if ppOverflow {
		if err := writeVarint(sink, uint64(ppLen)); err != nil {
			return err
		}
	}
	if _, err := sink.Write(b.PartialPath.Bytes()); err != nil {
		return err
	}
	if b.HasValue {
		if err := writeVarint(sink, uint64(len(b.Value))); err != nil {
			return err
		}
		if _, err := sink.Write(b.Value); err != nil {
			return err
		}
	}

	full := childCount == ChildrenCapacity
	for _, p := range children {
		if p.child.Kind != ChildAddressWithHash {
			panic(errChildNotAddressable(*p.child))
		}
		if !full {
			if err := writeVarint(sink, uint64(p.position)); err != nil {
				return err
			}
		}
		var addrBuf [8]byte
		binary.NativeEndian.PutUint64(addrBuf[:], p.child.Address)
		if _, err := sink.Write(addrBuf[:]); err != nil {
			return err
		}
		if err := p.child.Hash.WriteTo(sink); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one node region from src, whose first byte is the node's
// own first content byte — the caller is expected to have already
// consumed the 1-byte size-class prefix before positioning src here
// (spec §8's "prefix transparency" property).
func (Codec) Decode(src Source) (*Node, error) {
	first, err := src.ReadByte()
	if err != nil {
		return nil, wrapShortRead(err)
	}
	if first == 0xFF {
		return nil, ErrFreedArea
	}
	if first&1 == 1 {
		return decodeLeaf(first, src)
	}
	return decodeBranch(first, src)
}

func decodeLeaf(first byte, src Source) (*Node, error) {
	pp, err := readPathOverflow(src, first>>1, leafPPOverflow)
	if err != nil {
		return nil, err
	}
	valueLen, err := readVarint(src)
	if err != nil {
		return nil, err
	}
	value, err := ReadFull(src, int(valueLen))
	if err != nil {
		return nil, err
	}
	return NewLeaf(pp, value), nil
}

func decodeBranch(first byte, src Source) (*Node, error) {
	hasValue, childCountMod, ppField := unpackBranchFirstByte(first)

	if hasSeparateChildCountByte {
		b, err := src.ReadByte()
		if err != nil {
			return nil, wrapShortRead(err)
		}
		childCountMod = int(b)
	}

	pp, err := readPathOverflow(src, byte(ppField), branchPPOverflowSentinel)
	if err != nil {
		return nil, err
	}

	var value []byte
	if hasValue {
		valueLen, err := readVarint(src)
		if err != nil {
			return nil, err
		}
		value, err = ReadFull(src, int(valueLen))
		if err != nil {
			return nil, err
		}
	}

	var children [ChildrenCapacity]*Child
	if childCountMod == 0 {
		// "0" denotes a full branch: every slot is populated in order,
		// with no position prefix (spec §4.5.3).
		for i := 0; i < ChildrenCapacity; i++ {
			child, err := readChild(src)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
	} else {
		for i := 0; i < childCountMod; i++ {
			pos, err := readVarint(src)
			if err != nil {
				return nil, err
			}
			if pos >= uint64(ChildrenCapacity) {
				return nil, fmt.Errorf("node: child position %d out of range [0,%d)", pos, ChildrenCapacity)
			}
			child, err := readChild(src)
			if err != nil {
				return nil, err
			}
			children[pos] = child
		}
	}

	return NewBranch(&BranchNode{
		PartialPath: pp,
		Value:       value,
		HasValue:    hasValue,
		Children:    children,
	}), nil
}

func readChild(src Source) (*Child, error) {
	addrBuf, err := ReadFull(src, 8)
	if err != nil {
		return nil, err
	}
	address := binary.NativeEndian.Uint64(addrBuf)
	if address == 0 {
		return nil, ErrZeroAddress
	}
	hash, err := ReadHashType(src)
	if err != nil {
		return nil, err
	}
	return &Child{Kind: ChildAddressWithHash, Address: address, Hash: hash}, nil
}

// readPathOverflow reads a partial path whose length is either the literal
// value of field, or — if field equals overflow — a varint-encoded true
// length that follows immediately.
func readPathOverflow(src Source, field byte, overflow int) (Path, error) {
	var length int
	if int(field) < overflow {
		length = int(field)
	} else {
		n, err := readVarint(src)
		if err != nil {
			return nil, err
		}
		length = int(n)
	}
	buf, err := ReadFull(src, length)
	if err != nil {
		return nil, err
	}
	return Path(buf), nil
}
