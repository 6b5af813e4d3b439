package mpt

// Hex-prefix (HP) encoding, as specified in the Ethereum Yellow Paper,
// Appendix C. A nibble sequence is packed into bytes with a prefix nibble
// that carries both the leaf/extension flag and the parity of the nibble
// count; "terminatorNibble" (16) marks the logical end of a leaf key in
// its expanded nibble form.

const terminatorNibble = 16

// hasTerm reports whether a hex nibble sequence ends with the terminator.
func hasTerm(s []byte) bool {
	return len(s) > 0 && s[len(s)-1] == terminatorNibble
}

// compactToHex expands a hex-prefix encoded byte string into its nibble
// sequence. If the encoding is a leaf, the terminator nibble is appended
// to the returned sequence. For an even-length path the low nibble of the
// first byte carries no path information -- it must be zero padding, and a
// non-zero value there is rejected as non-canonical.
func compactToHex(compact []byte) ([]byte, error) {
	if len(compact) == 0 {
		return nil, nil
	}
	flags := compact[0] >> 4
	isLeaf := flags&0x2 != 0
	isOdd := flags&0x1 != 0

	var nibbles []byte
	if isOdd {
		nibbles = append(nibbles, compact[0]&0x0F)
	} else if compact[0]&0x0F != 0 {
		return nil, ErrNonCanonicalHexPrefix
	}
	for _, b := range compact[1:] {
		nibbles = append(nibbles, b>>4, b&0x0F)
	}
	if isLeaf {
		nibbles = append(nibbles, terminatorNibble)
	}
	return nibbles, nil
}

// nibblesEqual compares two nibble slices for equality.
func nibblesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
