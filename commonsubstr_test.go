package ffuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasCommonSubstring(t *testing.T) {
	tests := []struct {
		name     string
		s1, s2   string
		expected bool
	}{
		{"shared seven byte window", "abcdefghijklmn", "hijklmnopqrstu", true},
		{"no overlap", "commonstring", "differentstring", false},
		{"identical seven byte strings", "abcdefg", "abcdefg", true},
		{"too short to match", "abc", "abc", false},
		{"one side too short", "abcdefg", "abcdef", false},
		{"empty operands", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := hasCommonSubstring([]byte(tc.s1), []byte(tc.s2))
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestHasCommonSubstringNoFalsePositiveOnNearMiss(t *testing.T) {
	require.True(t, hasCommonSubstring([]byte("aaaaaaa"), []byte("aaaaaaa")))
	require.False(t, hasCommonSubstring([]byte("aaaaaab"), []byte("baaaaaa")))
}
