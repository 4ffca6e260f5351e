package ffuzzy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidBlockSize(t *testing.T) {
	require.True(t, IsValidBlockSize(0))
	require.True(t, IsValidBlockSize(math.MaxUint64/2))
	require.False(t, IsValidBlockSize(math.MaxUint64))
}

func TestIsNaturalBlockSize(t *testing.T) {
	tests := []struct {
		b        BlockSize
		expected bool
	}{
		{3, true},
		{6, true},
		{12, true},
		{9, false},
		{0, false},
		{1, false},
		{3 * 1024, true},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, IsNaturalBlockSize(tc.b), "block size %d", tc.b)
	}
}

func TestIsNearBlockSize(t *testing.T) {
	require.True(t, IsNearBlockSize(3, 6))
	require.False(t, IsNearBlockSize(3, 12))
	require.True(t, IsNearBlockSize(12, 6))
	require.True(t, IsNearBlockSize(5, 5))
	require.False(t, IsNearBlockSize(math.MaxUint64, math.MaxUint64-1))
}

func TestIsNearBlockSizeOverflowSafety(t *testing.T) {
	// b1 so large that doubling it would overflow: the doubling branch
	// must be treated as false, not wrap around into a false positive.
	big := BlockSize(math.MaxUint64)
	require.False(t, IsNearBlockSize(big, 2))
}

func TestIsFarBlockSize(t *testing.T) {
	require.False(t, IsFarBlockSize(3, 6))
	require.True(t, IsFarBlockSize(3, 7))
	require.False(t, IsFarBlockSize(3, 3))
}

func TestCompareBlockSize(t *testing.T) {
	require.Equal(t, 0, CompareBlockSize(5, 5))
	require.Equal(t, -1, CompareBlockSize(3, 5))
	require.Equal(t, 1, CompareBlockSize(5, 3))
}
