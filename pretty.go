package ffuzzy

import "strconv"

// AppendDigest appends d's "blocksize:S1:S2" text form to buf and returns
// the extended slice, growing buf as needed the way strconv.AppendInt and
// friends do. Unlike PrettyDigest it never fails.
func AppendDigest(buf []byte, d *Digest) []byte {
	return appendDigest(buf, d.BlockSize, d.Block1(), d.Block2())
}

// AppendUDigest is the unnormalized analog of AppendDigest.
func AppendUDigest(buf []byte, u *UDigest) []byte {
	return appendDigest(buf, u.BlockSize, u.Block1(), u.Block2())
}

func appendDigest(buf []byte, blockSize BlockSize, b1, b2 []byte) []byte {
	buf = strconv.AppendUint(buf, blockSize, 10)
	buf = append(buf, ':')
	buf = append(buf, b1...)
	buf = append(buf, ':')
	buf = append(buf, b2...)
	return buf
}

// PrettyDigest formats d as "blocksize:S1:S2" into buf, returning the
// number of bytes written and true on success. It fails (returning 0,
// false) without writing anything if buf is too small to hold the block
// size, the two block strings, and the two colons between them — the
// caller-supplied-buffer contract this fixed-size entry point guarantees,
// as opposed to AppendDigest's growable one. Unlike one historical variant
// of this routine, the block-size prefix advances the output position by
// the number of digits actually written, not by a fixed buffer length.
func PrettyDigest(buf []byte, d *Digest) (int, bool) {
	return prettyDigest(buf, d.BlockSize, d.Block1(), d.Block2())
}

// PrettyUDigest is the unnormalized analog of PrettyDigest.
func PrettyUDigest(buf []byte, u *UDigest) (int, bool) {
	return prettyDigest(buf, u.BlockSize, u.Block1(), u.Block2())
}

func prettyDigest(buf []byte, blockSize BlockSize, b1, b2 []byte) (int, bool) {
	need := len(b1) + len(b2) + 2 // two colons; block-size digits counted below
	var bsDigits [20]byte
	bsLen := len(strconv.AppendUint(bsDigits[:0], blockSize, 10))
	if len(buf) < need+bsLen {
		return 0, false
	}
	n := copy(buf, bsDigits[:bsLen])
	buf[n] = ':'
	n++
	n += copy(buf[n:], b1)
	buf[n] = ':'
	n++
	n += copy(buf[n:], b2)
	return n, true
}

// String renders d in "blocksize:S1:S2" form.
func (d *Digest) String() string {
	return string(AppendDigest(nil, d))
}

// String renders u in "blocksize:S1:S2" form.
func (u *UDigest) String() string {
	return string(AppendUDigest(nil, u))
}
