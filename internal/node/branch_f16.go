//go:build !branch_factor_256

package node

// ChildrenCapacity is the branch factor F: the number of child slots a
// BranchNode carries. This build is the default 16-ary trie; build with
// -tags branch_factor_256 to switch to a byte-indexed 256-ary trie
// (branch_f256.go). Both flags are sticky per store and MUST match
// between writer and reader (spec §6).
const ChildrenCapacity = 16

// branchPPOverflowSentinel is the value of the 2-bit partial-path-length
// field in the first byte that means "the true length follows as a
// varint" (spec §4.5.1, F=16 layout).
const branchPPOverflowSentinel = 3

// hasSeparateChildCountByte is false for F=16: childcount mod 16 lives in
// bits 2-5 of the first byte, there is no dedicated byte after it.
const hasSeparateChildCountByte = false

// BranchNode is an interior trie node: a partial path, an optional value,
// and up to ChildrenCapacity children.
type BranchNode struct {
	PartialPath Path
	Value       []byte
	HasValue    bool
	Children    [ChildrenCapacity]*Child
}

// packBranchFirstByte encodes the F=16 first byte:
//
//	bit 0: 0 (branch tag)
//	bit 1: has_value
//	bits 2-5: childcount mod 16 (0 denotes "full branch")
//	bits 6-7: partial_path_length, sentinel 3 means "varint follows"
func packBranchFirstByte(hasValue bool, childCountMod, ppLenField int) byte {
	var b byte
	if hasValue {
		b |= 1 << 1
	}
	b |= byte(childCountMod&0x0f) << 2
	b |= byte(ppLenField&0x03) << 6
	return b
}

// unpackBranchFirstByte decodes the F=16 first byte. childCountMod is read
// directly from bits 2-5; there is no separate childcount byte for F=16.
func unpackBranchFirstByte(b byte) (hasValue bool, childCountMod, ppLenField int) {
	hasValue = (b>>1)&0x01 == 1
	childCountMod = int((b >> 2) & 0x0f)
	ppLenField = int((b >> 6) & 0x03)
	return hasValue, childCountMod, ppLenField
}
