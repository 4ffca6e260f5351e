package ffuzzy

import "math"

// BlockSize is the rolling-hash trigger threshold that determined where a
// digest's two block strings were cut. It appears as the leading decimal
// field of a digest's text form.
type BlockSize = uint64

const maxBlockSize = math.MaxUint64

// IsValidBlockSize reports whether b is safe to use: doubling it must not
// overflow BlockSize's range.
func IsValidBlockSize(b BlockSize) bool {
	return b <= maxBlockSize/2
}

// IsNaturalBlockSize reports whether b is a "natural" block size, i.e.
// minBlockSize * 2^k for some k >= 0. Only natural block sizes can be
// produced by a reference ssdeep-compatible hasher.
func IsNaturalBlockSize(b BlockSize) bool {
	if b < minBlockSize {
		return false
	}
	for b != minBlockSize && b&1 == 0 {
		b >>= 1
	}
	return b == minBlockSize
}

// IsNearBlockSize reports whether b1 and b2 are "near": equal, or one is
// exactly twice the other. The doubling is computed safely — if it would
// overflow, that branch is simply false rather than wrapping into a false
// positive.
func IsNearBlockSize(b1, b2 BlockSize) bool {
	if b1 == b2 {
		return true
	}
	if IsValidBlockSize(b1) && b1*2 == b2 {
		return true
	}
	if IsValidBlockSize(b2) && b2*2 == b1 {
		return true
	}
	return false
}

// IsFarBlockSize reports whether two ascending-sorted block sizes are far
// enough apart that no later entry in a block-size-sorted list can be near
// b1. Precondition: b1 <= b2.
func IsFarBlockSize(b1, b2 BlockSize) bool {
	return b2 > 2*b1
}

// CompareBlockSize gives the standard 3-way ordering over block sizes.
func CompareBlockSize(b1, b2 BlockSize) int {
	switch {
	case b1 < b2:
		return -1
	case b1 > b2:
		return +1
	default:
		return 0
	}
}
