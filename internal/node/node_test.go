package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultNode_IsEmptyLeaf(t *testing.T) {
	t.Parallel()

	n := DefaultNode()
	leaf, ok := n.AsLeaf()
	require.True(t, ok)
	assert.Equal(t, 0, leaf.PartialPath.Len())
	assert.Empty(t, leaf.Value)
}

func Test_Node_Accessors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		node          *Node
		expectedKind  Kind
		expectedValue []byte
		hasValue      bool
	}{
		"leaf": {
			node:          NewLeaf(Path{1, 2}, []byte("v")),
			expectedKind:  Leaf,
			expectedValue: []byte("v"),
			hasValue:      true,
		},
		"branch without value": {
			node: NewBranch(&BranchNode{
				PartialPath: Path{3},
				Children:    [ChildrenCapacity]*Child{},
			}),
			expectedKind: Branch,
			hasValue:     false,
		},
		"branch with value": {
			node: NewBranch(&BranchNode{
				PartialPath: Path{3},
				HasValue:    true,
				Value:       []byte("bv"),
			}),
			expectedKind:  Branch,
			expectedValue: []byte("bv"),
			hasValue:      true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expectedKind, testCase.node.Kind())

			value, ok := testCase.node.Value()
			assert.Equal(t, testCase.hasValue, ok)
			if testCase.hasValue {
				assert.Equal(t, testCase.expectedValue, value)
			}
		})
	}
}

func Test_Node_UpdatePartialPathAndValue(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf(Path{1}, []byte("a"))
	leaf.UpdatePartialPath(Path{9, 9})
	leaf.UpdateValue([]byte("b"))
	assert.Equal(t, Path{9, 9}, leaf.PartialPath())
	value, ok := leaf.Value()
	require.True(t, ok)
	assert.Equal(t, []byte("b"), value)

	branch := NewBranch(&BranchNode{PartialPath: Path{1}})
	branch.UpdateValue([]byte("c"))
	value, ok = branch.Value()
	require.True(t, ok)
	assert.Equal(t, []byte("c"), value)
	b, _ := branch.AsBranch()
	assert.True(t, b.HasValue)
}

func Test_Child_NewAddressWithHash_RejectsZero(t *testing.T) {
	t.Parallel()

	h := sampleHash(0)

	_, err := NewAddressWithHash(0, h)
	assert.ErrorIs(t, err, ErrZeroAddress)
}

func Test_Kind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "leaf", Leaf.String())
	assert.Equal(t, "branch", Branch.String())
	assert.Panics(t, func() { _ = Kind(99).String() })
}
