package ffuzzy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDigestCollapsesRuns(t *testing.T) {
	d, err := ParseDigest("3:AAAAAAAA:BB")
	require.NoError(t, err)
	require.Equal(t, BlockSize(3), d.BlockSize)
	require.Equal(t, "AAA", string(d.Block1()))
	require.Equal(t, "BB", string(d.Block2()))
}

func TestParseDigestIgnoresTag(t *testing.T) {
	d, err := ParseDigest("6:abc:def,filename.bin")
	require.NoError(t, err)
	require.Equal(t, BlockSize(6), d.BlockSize)
	require.Equal(t, "abc", string(d.Block1()))
	require.Equal(t, "def", string(d.Block2()))
}

func TestParseDigestNoBlockSize(t *testing.T) {
	_, err := ParseDigest(":abc:def")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseDigestMissingSecondColon(t *testing.T) {
	_, err := ParseDigest("3:abc")
	require.Error(t, err)
}

func TestParseDigestMissingFirstColon(t *testing.T) {
	_, err := ParseDigest("3abc:def")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseDigestRejectsLeadingSign(t *testing.T) {
	_, err := ParseDigest("+3:abc:def")
	require.Error(t, err)
	_, err = ParseDigest("-3:abc:def")
	require.Error(t, err)
}

func TestParseDigestRejectsOverflow(t *testing.T) {
	huge := strings.Repeat("9", 40)
	_, err := ParseDigest(huge + ":abc:def")
	require.ErrorIs(t, err, ErrBlockSizeOverflow)
}

func TestParseDigestRejectsOversizedBlock(t *testing.T) {
	over := strings.Repeat("ABCD", 20) // far more than spamSumLength after collapse
	_, err := ParseDigest("3:" + over + ":x")
	require.ErrorIs(t, err, ErrBlockTooLong)
}

func TestParseDigestEmptyBlocksAreValid(t *testing.T) {
	d, err := ParseDigest("3::")
	require.NoError(t, err)
	require.Equal(t, 0, d.Len1)
	require.Equal(t, 0, d.Len2)
}

func TestParseUDigestKeepsRuns(t *testing.T) {
	u, err := ParseUDigest("3:AAAAAAAA:BB")
	require.NoError(t, err)
	require.Equal(t, "AAAAAAAA", string(u.Block1()))
}

func TestParseDigestRunCollapseWithinBlockOnly(t *testing.T) {
	// A run straddling the block separator must not collapse: the last
	// character of block one and the first of block two are different
	// blocks, so "AAA" + ":" + "AAA" each independently stay untouched.
	d, err := ParseDigest("3:AAA:AAA")
	require.NoError(t, err)
	require.Equal(t, "AAA", string(d.Block1()))
	require.Equal(t, "AAA", string(d.Block2()))
}
