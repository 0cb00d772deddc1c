package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Path_FromNibbles(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		nibbles     []byte
		expectedLen int
		panics      bool
	}{
		"empty": {
			nibbles:     nil,
			expectedLen: 0,
		},
		"valid nibbles": {
			nibbles:     []byte{0, 1, 0x0f},
			expectedLen: 3,
		},
		"nibble out of range panics": {
			nibbles: []byte{0, 0x10},
			panics:  true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if testCase.panics {
				assert.Panics(t, func() { PathFromNibbles(testCase.nibbles) })
				return
			}

			p := PathFromNibbles(testCase.nibbles)
			assert.Equal(t, testCase.expectedLen, p.Len())
		})
	}
}

func Test_Path_FromKey(t *testing.T) {
	t.Parallel()

	p := PathFromKey([]byte{0xab, 0x01})
	assert.Equal(t, Path{0x0a, 0x0b, 0x00, 0x01}, p)
}

func Test_Path_Equal(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		a, b  Path
		equal bool
	}{
		"both nil":        {equal: true},
		"nil and empty":   {a: nil, b: Path{}, equal: true},
		"equal nibbles":   {a: Path{1, 2, 3}, b: Path{1, 2, 3}, equal: true},
		"different length": {a: Path{1, 2}, b: Path{1, 2, 3}, equal: false},
		"different value":  {a: Path{1, 2, 3}, b: Path{1, 2, 4}, equal: false},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.equal, testCase.a.Equal(testCase.b))
		})
	}
}
