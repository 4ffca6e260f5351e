package ffuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"kitten", "sitting", 5},
		{"kiss", "miss", 2},
		{"2034", "234", 1},
		{"123", "1234", 1},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
	}

	for _, tc := range tests {
		t.Run(tc.s1+"/"+tc.s2, func(t *testing.T) {
			require.Equal(t, tc.expected, editDistance([]byte(tc.s1), []byte(tc.s2)))
		})
	}
}

func TestEditDistanceProperties(t *testing.T) {
	samples := []string{"", "a", "abc", "abcdefg", "The quick brown fox", "aaaaaaaaaaaaaaaaaaaa"}

	for _, s := range samples {
		require.Zero(t, editDistance([]byte(s), []byte(s)), "edit_distn(s,s) must be 0 for %q", s)
		require.Equal(t, len(s), editDistance([]byte(s), nil), "edit_distn(s,\"\") must equal |s| for %q", s)
	}

	for _, s1 := range samples {
		for _, s2 := range samples {
			d12 := editDistance([]byte(s1), []byte(s2))
			d21 := editDistance([]byte(s2), []byte(s1))
			require.Equal(t, d12, d21, "edit distance must be symmetric for %q/%q", s1, s2)
			require.LessOrEqual(t, d12, len(s1)+len(s2))
		}
	}
}
