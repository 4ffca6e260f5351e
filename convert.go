package ffuzzy

// ToUDigest converts a normalized digest to its unnormalized counterpart.
// This is a pure copy: lifting the no-4-run invariant never changes the
// buffer contents.
func ToUDigest(d *Digest) UDigest {
	var u UDigest
	u.BlockSize = d.BlockSize
	u.Len1 = d.Len1
	u.Len2 = d.Len2
	copy(u.buf[:], d.buf[:d.Len1+d.Len2])
	return u
}

// collapseBlock run-collapses src into dst (which must have spare capacity
// for at least len(src) bytes) and returns the number of bytes written.
func collapseBlock(dst []byte, src []byte) int {
	block := dst[len(dst):]
	for _, c := range src {
		block = collapseAppend(block, c, true)
	}
	return len(block)
}

// ToDigest converts an unnormalized digest to normalized form by
// run-collapsing each block independently, the same rule ParseDigest
// applies while scanning text. The bool result always reports true: a
// UDigest's blocks are already bounded by spamSumLength, and collapsing can
// only shrink a block, so the result is always representable as a Digest.
// The signature keeps that guarantee explicit rather than leaving it
// implicit in the type system.
func ToDigest(u *UDigest) (Digest, bool) {
	var d Digest
	d.BlockSize = u.BlockSize
	d.Len1 = collapseBlock(d.buf[:0], u.Block1())
	d.Len2 = collapseBlock(d.buf[:d.Len1], u.Block2())
	return d, true
}
