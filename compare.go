package ffuzzy

import "strings"

// compareOptions holds the rarely-needed knobs for CompareDigest, following
// the functional-options idiom used elsewhere in this package.
type compareOptions struct {
	skipIdenticalFastPath bool
}

// Option configures CompareDigest.
type Option interface {
	apply(*compareOptions)
}

type skipIdenticalFastPathOption bool

func (o skipIdenticalFastPathOption) apply(c *compareOptions) {
	c.skipIdenticalFastPath = bool(o)
}

// WithoutIdenticalFastPath forces CompareDigest through the general
// block-size-pairing path even when both digests are byte-identical. This
// exists for tests and benchmarks that want to exercise the general path in
// isolation; ordinary callers never need it.
func WithoutIdenticalFastPath() Option {
	return skipIdenticalFastPathOption(true)
}

// ScoreStrings computes the partial similarity score for one pair of block
// strings at a given block size: 0 if either string is too long or if they
// share no common substring of length minMatch, otherwise an edit-distance
// derived score in [0,100], capped for small block sizes so that short
// blocks can't produce misleadingly high similarity.
func ScoreStrings(s1, s2 []byte, blockSize BlockSize) int {
	if len(s1) > spamSumLength || len(s2) > spamSumLength {
		return 0
	}
	if !hasCommonSubstring(s1, s2) {
		return 0
	}
	d := editDistance(s1, s2)
	score := d * spamSumLength / (len(s1) + len(s2))
	score = 100 - (100*score)/spamSumLength
	return min(score, ScoreCap(len(s1), len(s2), blockSize))
}

// ScoreCap1 computes the upper bound a partial score may reach given the
// shorter of the two block lengths and the block size they were scored at.
// Block sizes at or above minBlockSize*100 are considered large enough that
// no cap is needed.
func ScoreCap1(minLen int, blockSize BlockSize) int {
	if minLen == 0 {
		return 0
	}
	if blockSize >= minBlockSize*100 {
		return 100
	}
	return int(blockSize/minBlockSize) * minLen
}

// ScoreCap mirrors ScoreCap1 but is phrased in terms of both block lengths,
// for callers that have not already reduced to the minimum.
func ScoreCap(len1, len2 int, blockSize BlockSize) int {
	return ScoreCap1(min(len1, len2), blockSize)
}

// CompareDigest compares two valid digests and returns a similarity score
// in [0,100], or 0 if their block sizes are not near.
func CompareDigest(d1, d2 *Digest, opts ...Option) int {
	if !IsNearBlockSize(d1.BlockSize, d2.BlockSize) {
		return 0
	}

	var o compareOptions
	for _, opt := range opts {
		opt.apply(&o)
	}
	if !o.skipIdenticalFastPath && identicalDigest(d1, d2) {
		return identicalDigestScore(d1)
	}

	switch {
	case d1.BlockSize == d2.BlockSize:
		return CompareDigestNearEq(d1, d2)
	case IsValidBlockSize(d1.BlockSize) && d1.BlockSize*2 == d2.BlockSize:
		return CompareDigestNearLt(d1, d2)
	case IsValidBlockSize(d2.BlockSize) && d2.BlockSize*2 == d1.BlockSize:
		return ScoreStrings(d1.Block1(), d2.Block2(), d1.BlockSize)
	default:
		// Unreachable under the IsNearBlockSize precondition above.
		return 0
	}
}

func identicalDigest(d1, d2 *Digest) bool {
	return d1.BlockSize == d2.BlockSize &&
		d1.Len1 == d2.Len1 && d1.Len2 == d2.Len2 &&
		string(d1.Block1()) == string(d2.Block1()) &&
		string(d1.Block2()) == string(d2.Block2())
}

func identicalDigestScore(d *Digest) int {
	cap1 := 0
	if d.Len1 >= minMatch {
		cap1 = ScoreCap1(d.Len1, d.BlockSize)
	}
	cap2 := 0
	if d.Len2 >= minMatch && IsValidBlockSize(d.BlockSize) {
		cap2 = ScoreCap1(d.Len2, d.BlockSize*2)
	}
	return min(100, max(cap1, cap2))
}

// CompareDigestNear compares two digests whose block sizes the caller has
// already established are near (IsNearBlockSize). It skips the nearness
// check CompareDigest performs and is otherwise identical.
func CompareDigestNear(d1, d2 *Digest) int {
	if identicalDigest(d1, d2) {
		return identicalDigestScore(d1)
	}
	switch {
	case d1.BlockSize == d2.BlockSize:
		return CompareDigestNearEq(d1, d2)
	case IsValidBlockSize(d1.BlockSize) && d1.BlockSize*2 == d2.BlockSize:
		return CompareDigestNearLt(d1, d2)
	default:
		// Remaining case under the near precondition: d2.BlockSize*2 == d1.BlockSize.
		return ScoreStrings(d1.Block1(), d2.Block2(), d1.BlockSize)
	}
}

// CompareDigestNearEq compares two digests under the precondition that
// their block sizes are equal.
func CompareDigestNearEq(d1, d2 *Digest) int {
	score1 := ScoreStrings(d1.Block1(), d2.Block1(), d1.BlockSize)
	if !IsValidBlockSize(d1.BlockSize) {
		return score1
	}
	score2 := ScoreStrings(d1.Block2(), d2.Block2(), d1.BlockSize*2)
	return max(score1, score2)
}

// CompareDigestNearLt compares two digests under the precondition that
// d2's block size is exactly double d1's.
func CompareDigestNearLt(d1, d2 *Digest) int {
	return ScoreStrings(d1.Block2(), d2.Block1(), d2.BlockSize)
}

// Compare parses both digest strings and compares them, returning a
// negative value if either fails to parse, and 0 without fully validating
// buffers if their block sizes turn out not to be near.
func Compare(s1, s2 string) int {
	b1, _, err := parseBlockSize(s1)
	if err != nil {
		return -1
	}
	b2, _, err := parseBlockSize(s2)
	if err != nil {
		return -1
	}
	if !IsNearBlockSize(b1, b2) {
		return 0
	}
	d1, err := ParseDigest(s1)
	if err != nil {
		return -1
	}
	d2, err := ParseDigest(s2)
	if err != nil {
		return -1
	}
	return CompareDigest(&d1, &d2)
}

// splitDigestFields pulls the raw block-size/S1/S2 fields out of a digest
// string without fully parsing it, e.g. for diagnostics. It only looks at the first three colon-delimited
// fields, ignoring any trailing comma tag.
func splitDigestFields(s string) (blockSize, s1, s2 string, ok bool) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	tail := parts[2]
	if i := strings.IndexByte(tail, ','); i >= 0 {
		tail = tail[:i]
	}
	return parts[0], parts[1], tail, true
}
