package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListIndex(t *testing.T) {
	cases := []struct {
		raw    string
		length int
		idx    int
		ok     bool
	}{
		{"0", 3, 0, true},
		{"2", 3, 2, true},
		{"3", 3, 0, false},
		{"-1", 3, 0, false},
		{"3x", 5, 0, false},
		{"1.0", 5, 0, false},
		{"", 3, 0, false},
	}
	for _, tc := range cases {
		idx, ok := parseListIndex(tc.raw, tc.length)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			assert.Equal(t, tc.idx, idx, "raw=%q", tc.raw)
		}
	}
}
