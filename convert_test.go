package ffuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertDigestToUDigestIsPureCopy(t *testing.T) {
	d, err := ParseDigest("3:AAABBB:CCCDDD")
	require.NoError(t, err)
	u := ToUDigest(&d)
	require.Equal(t, d.BlockSize, u.BlockSize)
	require.Equal(t, d.Len1, u.Len1)
	require.Equal(t, d.Len2, u.Len2)
	require.Equal(t, string(d.Block1()), string(u.Block1()))
	require.Equal(t, string(d.Block2()), string(u.Block2()))
}

func TestConvertUDigestToDigestCollapsesRuns(t *testing.T) {
	u, err := ParseUDigest("3:AAAAAAAA:BBBB")
	require.NoError(t, err)
	d, ok := ToDigest(&u)
	require.True(t, ok)
	require.Equal(t, "AAA", string(d.Block1()))
	require.Equal(t, "BBB", string(d.Block2()))
}

func TestNormalizationIsIdempotent(t *testing.T) {
	d, err := ParseDigest("3072:ABCDEFGHIJKLMNOP:QRSTUVWXYZ012345")
	require.NoError(t, err)

	u := ToUDigest(&d)
	d2, ok := ToDigest(&u)
	require.True(t, ok)

	require.Equal(t, d.BlockSize, d2.BlockSize)
	require.Equal(t, d.Len1, d2.Len1)
	require.Equal(t, d.Len2, d2.Len2)
	require.Equal(t, string(d.Block1()), string(d2.Block1()))
	require.Equal(t, string(d.Block2()), string(d2.Block2()))
}
