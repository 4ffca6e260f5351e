package ffuzzy

// Digest is a normalized ssdeep fuzzy hash: no position within either
// block begins a run of four or more identical bytes. It is an owned,
// fixed-size value — read-only from the comparator's point of view once
// parsed, with no aliasing of its internal buffer.
type Digest struct {
	BlockSize BlockSize
	Len1      int
	Len2      int
	buf       [2 * spamSumLength]byte
}

// UDigest is the unnormalized counterpart of Digest: the run-collapse
// invariant is lifted, everything else (length bounds, base64 naturalness)
// is identical. It is a distinct nominal type so the two forms can never be
// silently aliased or compared against the wrong invariant.
type UDigest struct {
	BlockSize BlockSize
	Len1      int
	Len2      int
	buf       [2 * spamSumLength]byte
}

// Block1 returns the first block string (block size BlockSize).
func (d *Digest) Block1() []byte { return d.buf[:d.Len1] }

// Block2 returns the second block string (block size BlockSize*2).
func (d *Digest) Block2() []byte { return d.buf[d.Len1 : d.Len1+d.Len2] }

// Block1 returns the first block string (block size BlockSize).
func (u *UDigest) Block1() []byte { return u.buf[:u.Len1] }

// Block2 returns the second block string (block size BlockSize*2).
func (u *UDigest) Block2() []byte { return u.buf[u.Len1 : u.Len1+u.Len2] }

// IsValidLengths reports whether len1/len2 are each within
// [0, spamSumLength] and their sum within [0, 2*spamSumLength].
func IsValidLengths(len1, len2 int) bool {
	return len1 >= 0 && len1 <= spamSumLength &&
		len2 >= 0 && len2 <= spamSumLength &&
		len1+len2 <= 2*spamSumLength
}

// hasRun4 reports whether block contains a position that starts a run of
// four identical bytes.
func hasRun4(block []byte) bool {
	for i := 0; i+3 < len(block); i++ {
		if block[i] == block[i+1] && block[i] == block[i+2] && block[i] == block[i+3] {
			return true
		}
	}
	return false
}

func isBase64Byte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c == '+' || c == '/':
		return true
	default:
		return false
	}
}

func isBase64Block(block []byte) bool {
	for _, c := range block {
		if !isBase64Byte(c) {
			return false
		}
	}
	return true
}

// IsValidBuffer reports whether d's two blocks each satisfy the normalized
// no-4-run invariant.
func (d *Digest) IsValidBuffer() bool {
	return !hasRun4(d.Block1()) && !hasRun4(d.Block2())
}

// IsNaturalBuffer reports whether every byte of both of d's blocks belongs
// to the base64 alphabet used by ssdeep digests.
func (d *Digest) IsNaturalBuffer() bool {
	return isBase64Block(d.Block1()) && isBase64Block(d.Block2())
}

// IsValid reports whether d has a valid block size and valid lengths and
// buffer (i.e. is a well-formed normalized digest).
func (d *Digest) IsValid() bool {
	return IsValidBlockSize(d.BlockSize) && IsValidLengths(d.Len1, d.Len2) && d.IsValidBuffer()
}

// IsNatural reports whether d is valid, has a natural block size, and its
// buffer bytes are all base64.
func (d *Digest) IsNatural() bool {
	return d.IsValid() && IsNaturalBlockSize(d.BlockSize) && d.IsNaturalBuffer()
}

// IsValidBuffer reports whether every byte of u's two blocks is a valid
// buffer byte. Unnormalized digests lift the no-4-run invariant, so this
// always holds for any byte content; it exists for API symmetry with
// Digest and to make the lifted invariant explicit at call sites.
func (u *UDigest) IsValidBuffer() bool { return true }

// IsNaturalBuffer reports whether every byte of both of u's blocks belongs
// to the base64 alphabet used by ssdeep digests.
func (u *UDigest) IsNaturalBuffer() bool {
	return isBase64Block(u.Block1()) && isBase64Block(u.Block2())
}

// IsValid reports whether u has a valid block size and valid lengths.
func (u *UDigest) IsValid() bool {
	return IsValidBlockSize(u.BlockSize) && IsValidLengths(u.Len1, u.Len2)
}

// IsNatural reports whether u is valid, has a natural block size, and its
// buffer bytes are all base64.
func (u *UDigest) IsNatural() bool {
	return u.IsValid() && IsNaturalBlockSize(u.BlockSize) && u.IsNaturalBuffer()
}
