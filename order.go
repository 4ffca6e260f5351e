package ffuzzy

import "bytes"

// DigestCompare gives the total order over digests: block size ascending,
// then len1, then len2, then raw buffer bytes.
func DigestCompare(d1, d2 *Digest) int {
	if c := CompareBlockSize(d1.BlockSize, d2.BlockSize); c != 0 {
		return c
	}
	if d1.Len1 != d2.Len1 {
		return CompareBlockSize(BlockSize(d1.Len1), BlockSize(d2.Len1))
	}
	if d1.Len2 != d2.Len2 {
		return CompareBlockSize(BlockSize(d1.Len2), BlockSize(d2.Len2))
	}
	return bytes.Compare(d1.buf[:d1.Len1+d1.Len2], d2.buf[:d2.Len1+d2.Len2])
}

// DigestCompareBlockSize orders digests purely by block size, ignoring
// buffer content; useful as a fast first pass before DigestCompare.
func DigestCompareBlockSize(d1, d2 *Digest) int {
	return CompareBlockSize(d1.BlockSize, d2.BlockSize)
}

// DigestCompareBlockSizeNatural ranks digests with a natural block size
// before those without one, then orders by block size.
func DigestCompareBlockSizeNatural(d1, d2 *Digest) int {
	n1, n2 := IsNaturalBlockSize(d1.BlockSize), IsNaturalBlockSize(d2.BlockSize)
	if n1 != n2 {
		if n1 {
			return -1
		}
		return +1
	}
	return CompareBlockSize(d1.BlockSize, d2.BlockSize)
}

// UDigestCompare is the UDigest analog of DigestCompare.
func UDigestCompare(u1, u2 *UDigest) int {
	if c := CompareBlockSize(u1.BlockSize, u2.BlockSize); c != 0 {
		return c
	}
	if u1.Len1 != u2.Len1 {
		return CompareBlockSize(BlockSize(u1.Len1), BlockSize(u2.Len1))
	}
	if u1.Len2 != u2.Len2 {
		return CompareBlockSize(BlockSize(u1.Len2), BlockSize(u2.Len2))
	}
	return bytes.Compare(u1.buf[:u1.Len1+u1.Len2], u2.buf[:u2.Len1+u2.Len2])
}

// UDigestCompareBlockSize is the UDigest analog of DigestCompareBlockSize.
func UDigestCompareBlockSize(u1, u2 *UDigest) int {
	return CompareBlockSize(u1.BlockSize, u2.BlockSize)
}

// UDigestCompareBlockSizeNatural is the UDigest analog of
// DigestCompareBlockSizeNatural.
func UDigestCompareBlockSizeNatural(u1, u2 *UDigest) int {
	n1, n2 := IsNaturalBlockSize(u1.BlockSize), IsNaturalBlockSize(u2.BlockSize)
	if n1 != n2 {
		if n1 {
			return -1
		}
		return +1
	}
	return CompareBlockSize(u1.BlockSize, u2.BlockSize)
}

// ByDigest implements sort.Interface, ordering by DigestCompare.
type ByDigest []Digest

func (s ByDigest) Len() int           { return len(s) }
func (s ByDigest) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ByDigest) Less(i, j int) bool { return DigestCompare(&s[i], &s[j]) < 0 }

// ByBlockSize implements sort.Interface, ordering by block size only.
type ByBlockSize []Digest

func (s ByBlockSize) Len() int      { return len(s) }
func (s ByBlockSize) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s ByBlockSize) Less(i, j int) bool {
	return DigestCompareBlockSize(&s[i], &s[j]) < 0
}

// ByBlockSizeNatural implements sort.Interface, ranking natural block sizes
// before un-natural ones, then ordering by block size.
type ByBlockSizeNatural []Digest

func (s ByBlockSizeNatural) Len() int      { return len(s) }
func (s ByBlockSizeNatural) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s ByBlockSizeNatural) Less(i, j int) bool {
	return DigestCompareBlockSizeNatural(&s[i], &s[j]) < 0
}

// PruneFarBlockSizes scans a slice of digests already sorted by ascending
// block size (ByBlockSize) and returns the index of the first entry that is
// "far" from ref's block size — i.e. the point after which IsFarBlockSize
// guarantees no further entry can be near ref. Callers scanning a sorted
// collection for near matches can stop at this index instead of scanning
// to the end, mirroring the pruning the original library's
// ffuzzy_blocksize_is_far_le was written for.
func PruneFarBlockSizes(sorted []Digest, ref BlockSize) int {
	for i, d := range sorted {
		// Entries below ref may be far from it while later ones are still
		// near, so only an entry above ref can end the scan.
		if d.BlockSize > ref && IsFarBlockSize(ref, d.BlockSize) {
			return i
		}
	}
	return len(sorted)
}
