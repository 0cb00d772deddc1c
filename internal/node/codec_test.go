package node

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullChildren(t *testing.T, address uint64, hash HashType) [ChildrenCapacity]*Child {
	t.Helper()
	var children [ChildrenCapacity]*Child
	for i := range children {
		c, err := NewAddressWithHash(address, hash)
		require.NoError(t, err)
		children[i] = c
	}
	return children
}

// encodeLen encodes n with prefix 0 and returns the resulting byte count,
// including the 1-byte prefix, exactly as spec §8's scenarios measure it.
func encodeLen(t *testing.T, n *Node) int {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Codec{}.Encode(0, n, &buf))
	return buf.Len()
}

// Test_Codec_RoundTrip checks the round-trip property from spec §8 for a
// representative set of leaves and branches.
func Test_Codec_RoundTrip(t *testing.T) {
	t.Parallel()

	hash := sampleHash(1)

	testCases := map[string]*Node{
		"empty leaf": NewLeaf(nil, nil),
		"leaf with value": NewLeaf(Path{1, 2, 3}, []byte("hello")),
		"leaf with empty value": NewLeaf(Path{1}, []byte{}),
		"branch with one child": func() *Node {
			var children [ChildrenCapacity]*Child
			c, err := NewAddressWithHash(42, hash)
			if err != nil {
				panic(err)
			}
			children[3] = c
			return NewBranch(&BranchNode{PartialPath: Path{7, 7}, Children: children})
		}(),
		"full branch": NewBranch(&BranchNode{
			PartialPath: Path{},
			HasValue:    true,
			Value:       []byte("full"),
			Children:    fullChildren(t, 7, hash),
		}),
	}

	for name, original := range testCases {
		original := original
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Codec{}.Encode(0x07, original, &buf))

			reader := bytes.NewReader(buf.Bytes())
			_, err := reader.ReadByte() // skip the caller-supplied prefix
			require.NoError(t, err)

			decoded, err := Codec{}.Decode(reader)
			require.NoError(t, err)
			assert.True(t, original.Equal(decoded), "round trip mismatch for %s", name)
		})
	}
}

// Test_Codec_PrefixTransparency checks that decoding depends only on the
// bytes after the caller-supplied prefix (spec §8).
func Test_Codec_PrefixTransparency(t *testing.T) {
	t.Parallel()

	n := NewLeaf(Path{1, 2}, []byte("x"))

	var a, b bytes.Buffer
	require.NoError(t, Codec{}.Encode(0x00, n, &a))
	require.NoError(t, Codec{}.Encode(0xAB, n, &b))

	readerA := bytes.NewReader(a.Bytes()[1:])
	readerB := bytes.NewReader(b.Bytes()[1:])

	decodedA, err := Codec{}.Decode(readerA)
	require.NoError(t, err)
	decodedB, err := Codec{}.Decode(readerB)
	require.NoError(t, err)

	assert.True(t, decodedA.Equal(decodedB))
}

// Test_Codec_FreedAreaRejection checks the freed-area rejection property
// (spec §8): any input whose first content byte is 0xFF yields
// ErrFreedArea.
func Test_Codec_FreedAreaRejection(t *testing.T) {
	t.Parallel()

	reader := bytes.NewReader([]byte{0xFF, 0x00, 0x00})
	_, err := Codec{}.Decode(reader)
	assert.ErrorIs(t, err, ErrFreedArea)
}

// Test_Codec_ZeroAddressRejection checks the zero-address rejection
// property (spec §8): an otherwise-valid branch encoding with a zeroed
// address field yields ErrZeroAddress.
func Test_Codec_ZeroAddressRejection(t *testing.T) {
	t.Parallel()

	hash := sampleHash(2)
	var children [ChildrenCapacity]*Child
	c, err := NewAddressWithHash(1, hash)
	require.NoError(t, err)
	children[0] = c
	n := NewBranch(&BranchNode{PartialPath: Path{0}, Children: children})

	var buf bytes.Buffer
	require.NoError(t, Codec{}.Encode(0, n, &buf))

	encoded := buf.Bytes()
	// locate the 8-byte address field: prefix(1) + firstByte(1) +
	// path(1) + position-varint(1, value 0) = offset 4, and zero it.
	addressOffset := 4
	for i := 0; i < 8; i++ {
		encoded[addressOffset+i] = 0
	}

	reader := bytes.NewReader(encoded[1:])
	_, err = Codec{}.Decode(reader)
	assert.ErrorIs(t, err, ErrZeroAddress)
}

// Test_Codec_LengthOverflowRoundTrip checks the length-overflow round-trip
// property (spec §8) across the specified nibble and byte-length grids.
func Test_Codec_LengthOverflowRoundTrip(t *testing.T) {
	t.Parallel()

	nibbleLengths := []int{0, 1, 2, 3, 62, 63, 64, 125, 126, 127, 1000}
	valueLengths := []int{0, 1, 126, 127, 255, 256, 4096}

	for _, pl := range nibbleLengths {
		for _, vl := range valueLengths {
			pl, vl := pl, vl
			t.Run("", func(t *testing.T) {
				t.Parallel()

				path := make(Path, pl)
				for i := range path {
					path[i] = byte(i % 16)
				}
				value := bytes.Repeat([]byte{0x5a}, vl)
				original := NewLeaf(path, value)

				var buf bytes.Buffer
				require.NoError(t, Codec{}.Encode(0, original, &buf))

				reader := bytes.NewReader(buf.Bytes()[1:])
				decoded, err := Codec{}.Decode(reader)
				require.NoError(t, err)
				assert.True(t, original.Equal(decoded))
			})
		}
	}
}

// Test_Codec_EncodeBranch_PanicsOnZeroChildren checks that a branch with
// no children is rejected at encode time regardless of whether it carries
// a value: the wire format cannot distinguish "zero children" from "full"
// (childcount is stored mod ChildrenCapacity), so such a node is never
// representable (spec §4.5.5, §9).
func Test_Codec_EncodeBranch_PanicsOnZeroChildren(t *testing.T) {
	t.Parallel()

	testCases := map[string]*Node{
		"no value": NewBranch(&BranchNode{PartialPath: Path{5}}),
		"with value": NewBranch(&BranchNode{
			PartialPath: Path{5},
			HasValue:    true,
			Value:       []byte("branch value"),
		}),
	}

	for name, n := range testCases {
		n := n
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			assert.Panics(t, func() { _ = Codec{}.Encode(0, n, &buf) })
		})
	}
}

// Test_Codec_FullBranchShortcut checks the full-branch shortcut property
// (spec §8): a full branch omits per-child position bytes and is shorter
// than an F-1 branch by exactly one child record minus (F-1) position
// varints.
func Test_Codec_FullBranchShortcut(t *testing.T) {
	t.Parallel()

	hash := sampleHash(3)

	full := NewBranch(&BranchNode{
		PartialPath: Path{1},
		Children:    fullChildren(t, 9, hash),
	})

	var missingLast [ChildrenCapacity]*Child
	for i := 0; i < ChildrenCapacity-1; i++ {
		c, err := NewAddressWithHash(9, hash)
		require.NoError(t, err)
		missingLast[i] = c
	}
	almostFull := NewBranch(&BranchNode{PartialPath: Path{1}, Children: missingLast})

	fullLen := encodeLen(t, full)
	almostFullLen := encodeLen(t, almostFull)

	// Measure the hash's actual wire length rather than assuming
	// StandardHashLen: under the ethhash build a hash is varint-length
	// prefixed, so its wire length isn't a fixed constant.
	var hashBuf bytes.Buffer
	require.NoError(t, hash.WriteTo(&hashBuf))
	childRecordLen := 8 + hashBuf.Len()

	// Sum the real varint length of each position 0..ChildrenCapacity-2
	// rather than assuming 1 byte each: under branch_factor_256, positions
	// 128 and above need a 2-byte varint.
	totalPositionVarintLen := 0
	for i := 0; i < ChildrenCapacity-1; i++ {
		var posBuf bytes.Buffer
		require.NoError(t, writeVarint(&posBuf, uint64(i)))
		totalPositionVarintLen += posBuf.Len()
	}
	expectedDelta := childRecordLen - totalPositionVarintLen

	assert.Equal(t, expectedDelta, fullLen-almostFullLen)
}
