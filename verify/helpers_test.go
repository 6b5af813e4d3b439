package verify

import "github.com/ethproof/ethproof/crypto"

// The helpers below are tiny local RLP/MPT builders used only to construct
// synthetic single-leaf proofs for these tests, independent of the rlp
// package's own encoder. They mirror mpt's own test helpers
// (mpt/proof_test.go), extended with long-form string/list prefixes since
// account and header values routinely exceed 55 bytes.

func rlpString(b []byte) []byte {
	if len(b) == 1 && b[0] <= 0x7f {
		return append([]byte{}, b...)
	}
	return append(rlpLengthPrefix(0x80, 0xb7, len(b)), b...)
}

func rlpList(items ...[]byte) []byte {
	var payload []byte
	for _, it := range items {
		payload = append(payload, it...)
	}
	return append(rlpLengthPrefix(0xc0, 0xf7, len(payload)), payload...)
}

func rlpLengthPrefix(shortBase, longBase byte, n int) []byte {
	if n <= 55 {
		return []byte{shortBase + byte(n)}
	}
	lenBytes := bigEndianMinimal(uint64(n))
	return append([]byte{longBase + byte(len(lenBytes))}, lenBytes...)
}

func bigEndianMinimal(v uint64) []byte {
	var b []byte
	for v > 0 {
		b = append([]byte{byte(v & 0xff)}, b...)
		v >>= 8
	}
	return b
}

// rlpUint RLP-encodes v as a trimmed big-endian integer: the canonical
// in-place single byte for v in [1,0x7f], the empty string for v == 0, and
// a length-prefixed string otherwise.
func rlpUint(v uint64) []byte {
	return rlpString(bigEndianMinimal(v))
}

// keyNibbles expands key into its nibble sequence, high nibble first.
func keyNibbles(key []byte) []byte {
	nibbles := make([]byte, 0, len(key)*2)
	for _, b := range key {
		nibbles = append(nibbles, b>>4, b&0x0f)
	}
	return nibbles
}

// hexPrefixLeaf packs a nibble path (no terminator) into hex-prefix form
// with the leaf terminator flag set, mirroring the Yellow Paper's
// Appendix C encoding.
func hexPrefixLeaf(nibbles []byte) []byte {
	const flagLeaf = 1
	odd := len(nibbles)%2 == 1
	var flagByte byte
	if odd {
		flagByte = flagLeaf<<1 | 1
	} else {
		flagByte = flagLeaf << 1
	}
	var out []byte
	if odd {
		out = append(out, flagByte<<4|nibbles[0])
		nibbles = nibbles[1:]
	} else {
		out = append(out, flagByte<<4)
	}
	for i := 0; i < len(nibbles); i += 2 {
		out = append(out, nibbles[i]<<4|nibbles[i+1])
	}
	return out
}

// buildLeaf builds a 2-element leaf node [hexPrefix(path, leaf=true), value]
// whose value field wraps rawValue as an RLP string -- rawValue is exactly
// the bytes a verifier's proof.Value carries.
func buildLeaf(pathNibbles []byte, rawValue []byte) []byte {
	return rlpList(rlpString(hexPrefixLeaf(pathNibbles)), rlpString(rawValue))
}

func refHash(encoded []byte) [32]byte {
	var h [32]byte
	copy(h[:], crypto.Keccak256(encoded))
	return h
}
