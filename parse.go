package ffuzzy

import "fmt"

// parseBlockSize reads an unsigned decimal block size from the start of s.
// It rejects a missing leading digit, a leading sign, whitespace, overflow,
// and any value that would be invalid to double, matching the stricter of
// the observed strtoul-style behaviors rather than silently accepting a
// partial or signed prefix. It returns the parsed value and the number of
// bytes consumed.
func parseBlockSize(s string) (BlockSize, int, error) {
	if len(s) == 0 || s[0] < '0' || s[0] > '9' {
		return 0, 0, fmt.Errorf("%w: missing block size", ErrMalformed)
	}
	var v BlockSize
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := BlockSize(s[i] - '0')
		if v > (maxBlockSize-d)/10 {
			return 0, 0, fmt.Errorf("%w: decimal overflow", ErrBlockSizeOverflow)
		}
		v = v*10 + d
		i++
	}
	if !IsValidBlockSize(v) {
		return 0, 0, fmt.Errorf("%w: block size %d would overflow when doubled", ErrBlockSizeOverflow, v)
	}
	return v, i, nil
}

// collapseAppend appends c to buf. When normalize is true and the last three
// bytes of buf already equal c, the append is suppressed, so any run of
// identical bytes is collapsed down to three.
func collapseAppend(buf []byte, c byte, normalize bool) []byte {
	if normalize {
		n := len(buf)
		if n >= 3 && c == buf[n-1] && c == buf[n-2] && c == buf[n-3] {
			return buf
		}
	}
	return append(buf, c)
}

// readBlock consumes bytes from s into dst (collapsing runs if normalize is
// true) until it hits terminator. If requireTerminator is true, reaching
// the end of s without seeing terminator is a parse failure (used for the
// first block, which must be followed by a second ':'); otherwise the end
// of s is an accepted stop (used for the second block, whose ',' tag
// separator is optional). It fails if dst would grow past spamSumLength.
func readBlock(dst []byte, s string, normalize bool, terminator byte, requireTerminator bool) ([]byte, int, error) {
	i := 0
	for {
		if i >= len(s) {
			if requireTerminator {
				return nil, 0, fmt.Errorf("%w: unexpected end of digest", ErrMalformed)
			}
			return dst, i, nil
		}
		c := s[i]
		if c == terminator {
			return dst, i, nil
		}
		dst = collapseAppend(dst, c, normalize)
		if len(dst) > spamSumLength {
			return nil, 0, ErrBlockTooLong
		}
		i++
	}
}

// ParseDigest parses the textual form "blocksize:S1:S2[,tag]" into a
// normalized Digest, collapsing runs of four or more identical bytes in S1
// and S2 down to three as it goes. Any optional ",tag" suffix is consumed
// and discarded. Parsing is all-or-nothing: on error the returned Digest is
// the zero value.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	bs, n, err := parseBlockSize(s)
	if err != nil {
		return Digest{}, err
	}
	rest := s[n:]
	if len(rest) == 0 || rest[0] != ':' {
		return Digest{}, fmt.Errorf("%w: expected ':' after block size", ErrMalformed)
	}
	rest = rest[1:]

	b1, c1, err := readBlock(d.buf[:0], rest, true, ':', true)
	if err != nil {
		return Digest{}, err
	}
	d.Len1 = len(b1)
	rest = rest[c1+1:]

	b2, _, err := readBlock(d.buf[d.Len1:d.Len1], rest, true, ',', false)
	if err != nil {
		return Digest{}, err
	}
	d.Len2 = len(b2)

	d.BlockSize = bs
	return d, nil
}

// ParseUDigest parses the textual form "blocksize:S1:S2[,tag]" into an
// unnormalized UDigest: bytes are copied verbatim, with no run-collapsing.
func ParseUDigest(s string) (UDigest, error) {
	var u UDigest
	bs, n, err := parseBlockSize(s)
	if err != nil {
		return UDigest{}, err
	}
	rest := s[n:]
	if len(rest) == 0 || rest[0] != ':' {
		return UDigest{}, fmt.Errorf("%w: expected ':' after block size", ErrMalformed)
	}
	rest = rest[1:]

	b1, c1, err := readBlock(u.buf[:0], rest, false, ':', true)
	if err != nil {
		return UDigest{}, err
	}
	u.Len1 = len(b1)
	rest = rest[c1+1:]

	b2, _, err := readBlock(u.buf[u.Len1:u.Len1], rest, false, ',', false)
	if err != nil {
		return UDigest{}, err
	}
	u.Len2 = len(b2)

	u.BlockSize = bs
	return u, nil
}
