//go:build branch_factor_256

package node

// ChildrenCapacity is the branch factor F for this build: 256, byte-indexed
// children. See branch_f16.go for the default 16-ary build.
const ChildrenCapacity = 256

// branchPPOverflowSentinel is the value of the 6-bit partial-path-length
// field in the first byte that means "the true length follows as a
// varint" (spec §4.5.1, F=256 layout).
const branchPPOverflowSentinel = 63

// hasSeparateChildCountByte is true for F=256: childcount mod 256 is
// stored in a dedicated byte immediately after the first byte, so a "full
// branch of 256" and an "empty branch" both encode as 0 there. A branch
// with no children is therefore not representable (spec §4.5.5, §9):
// encodeBranch panics on one, whether or not it carries a value.
const hasSeparateChildCountByte = true

// BranchNode is an interior trie node: a partial path, an optional value,
// and up to ChildrenCapacity children.
type BranchNode struct {
	PartialPath Path
	Value       []byte
	HasValue    bool
	Children    [ChildrenCapacity]*Child
}

// packBranchFirstByte encodes the F=256 first byte:
//
//	bit 0: 0 (branch tag)
//	bit 1: has_value
//	bits 2-7: partial_path_length, sentinel 63 means "varint follows"
//
// childCountMod is ignored here: F=256 stores it in a dedicated byte
// immediately after the first byte (see hasSeparateChildCountByte).
func packBranchFirstByte(hasValue bool, childCountMod, ppLenField int) byte {
	var b byte
	if hasValue {
		b |= 1 << 1
	}
	b |= byte(ppLenField&0x3f) << 2
	return b
}

// unpackBranchFirstByte decodes the F=256 first byte. childCountMod is
// always returned as 0: the real value is read from the dedicated byte
// that follows (codec.go handles this via hasSeparateChildCountByte).
func unpackBranchFirstByte(b byte) (hasValue bool, childCountMod, ppLenField int) {
	hasValue = (b>>1)&0x01 == 1
	ppLenField = int((b >> 2) & 0x3f)
	return hasValue, 0, ppLenField
}
