package node

import "fmt"

// Kind discriminates the two variants a Node can hold. It is encoded in
// the low bit of a node's first content byte on disk (spec §4.5.1).
type Kind byte

const (
	// Leaf nodes are terminal: a partial path plus an always-present value.
	Leaf Kind = iota
	// Branch nodes are interior: a partial path, an optional value, and
	// up to ChildrenCapacity children.
	Branch
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		panic(fmt.Sprintf("node: invalid kind %d", byte(k)))
	}
}

// LeafNode is a terminal trie node. Value is always present and may be
// empty.
type LeafNode struct {
	PartialPath Path
	Value       []byte
}

// Equal reports deep equality between two leaves.
func (l *LeafNode) Equal(other *LeafNode) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.PartialPath.Equal(other.PartialPath) && bytesEqual(l.Value, other.Value)
}

// Equal reports deep equality between two branches, including children.
func (b *BranchNode) Equal(other *BranchNode) bool {
	if b == nil || other == nil {
		return b == other
	}
	if !b.PartialPath.Equal(other.PartialPath) {
		return false
	}
	if b.HasValue != other.HasValue || !bytesEqual(b.Value, other.Value) {
		return false
	}
	for i := range b.Children {
		if !b.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// ChildKind discriminates the variants a Child can hold in memory. Only
// ChildAddressWithHash is ever persisted; any other kind reaching the
// codec is a programmer error (spec §3, §7).
type ChildKind byte

const (
	// ChildAddressWithHash is an on-disk pointer plus the Merkle hash of
	// the referenced subtree — the only variant this core serializes.
	ChildAddressWithHash ChildKind = iota
	// ChildInMemory represents any other in-memory-only child variant the
	// broader system may define (e.g. an unpersisted subtree reference).
	// It exists so callers have somewhere to park such a value without
	// the type system forcing an address before one is allocated; the
	// codec rejects it outright if asked to serialize it.
	ChildInMemory
)

func (k ChildKind) String() string {
	switch k {
	case ChildAddressWithHash:
		return "address-with-hash"
	case ChildInMemory:
		return "in-memory"
	default:
		return fmt.Sprintf("unknown(%d)", byte(k))
	}
}

// Child is a trie branch's slot: either an on-disk address plus hash, or
// (in memory only) some other representation this core never writes.
type Child struct {
	Kind    ChildKind
	Address uint64
	Hash    HashType
}

// NewAddressWithHash builds the only Child variant this core persists. It
// rejects a zero address: zero is reserved and never a valid pointer.
func NewAddressWithHash(address uint64, hash HashType) (*Child, error) {
	if address == 0 {
		return nil, ErrZeroAddress
	}
	return &Child{Kind: ChildAddressWithHash, Address: address, Hash: hash}, nil
}

// Equal reports deep equality between two children, including nil.
func (c *Child) Equal(other *Child) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Kind != other.Kind || c.Address != other.Address {
		return false
	}
	if c.Hash == nil || other.Hash == nil {
		return c.Hash == nil && other.Hash == nil
	}
	return c.Hash.Equal(other.Hash)
}

// Node is the tagged union {Branch, Leaf} every on-disk node region
// decodes to. The Branch case is held behind a pointer indirection because
// branches are substantially larger than leaves (spec §9): a plain value
// union would force every Leaf to pay for the widest variant.
type Node struct {
	kind   Kind
	leaf   *LeafNode
	branch *BranchNode
}

// NewLeaf constructs a Node wrapping a LeafNode.
func NewLeaf(partialPath Path, value []byte) *Node {
	return &Node{kind: Leaf, leaf: &LeafNode{PartialPath: partialPath, Value: value}}
}

// NewBranch constructs a Node wrapping a BranchNode.
func NewBranch(b *BranchNode) *Node {
	return &Node{kind: Branch, branch: b}
}

// DefaultNode returns the empty-path, empty-value Leaf that is this
// system's zero value (spec §3).
func DefaultNode() *Node {
	return NewLeaf(nil, nil)
}

// Kind reports which variant n holds.
func (n *Node) Kind() Kind {
	return n.kind
}

// AsLeaf returns n's LeafNode and true if n is a Leaf, following the
// comma-ok idiom in place of the original's EnumAsInner-derived accessor.
func (n *Node) AsLeaf() (*LeafNode, bool) {
	if n.kind != Leaf {
		return nil, false
	}
	return n.leaf, true
}

// AsBranch returns n's BranchNode and true if n is a Branch.
func (n *Node) AsBranch() (*BranchNode, bool) {
	if n.kind != Branch {
		return nil, false
	}
	return n.branch, true
}

// PartialPath returns the partial path common to both variants.
func (n *Node) PartialPath() Path {
	switch n.kind {
	case Branch:
		return n.branch.PartialPath
	default:
		return n.leaf.PartialPath
	}
}

// UpdatePartialPath replaces the partial path in place.
func (n *Node) UpdatePartialPath(p Path) {
	switch n.kind {
	case Branch:
		n.branch.PartialPath = p
	default:
		n.leaf.PartialPath = p
	}
}

// Value returns the node's value and whether one is present. A Leaf
// always reports true; a Branch reports its HasValue flag.
func (n *Node) Value() ([]byte, bool) {
	switch n.kind {
	case Branch:
		if !n.branch.HasValue {
			return nil, false
		}
		return n.branch.Value, true
	default:
		return n.leaf.Value, true
	}
}

// UpdateValue replaces the node's value in place.
func (n *Node) UpdateValue(value []byte) {
	switch n.kind {
	case Branch:
		n.branch.Value = value
		n.branch.HasValue = true
	default:
		n.leaf.Value = value
	}
}

// Equal reports deep equality between two nodes, used by the round-trip
// property tests (spec §8).
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case Branch:
		return n.branch.Equal(other.branch)
	default:
		return n.leaf.Equal(other.leaf)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
