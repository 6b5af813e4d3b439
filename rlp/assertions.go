package rlp

import (
	"bytes"
	"fmt"

	"github.com/ethproof/ethproof/fragment"
)

// view returns the bounds-checked byte window h describes within data. Every
// assertion function below goes through this instead of slicing data
// directly, so a corrupt RlpHeader (produced by a bug elsewhere, not by the
// decoder itself) is rejected rather than panicking or reading past the
// item it claims to describe.
func view(label string, data []byte, h RlpHeader) ([]byte, error) {
	f, err := fragment.New(h.Offset, h.Length, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return f.Bytes(), nil
}

// AssertEqU8 asserts that the child item described by h is a String (or an
// in-place single Byte) whose big-endian, leading-zero-stripped bytes equal
// expected. An empty payload is treated as zero.
func AssertEqU8(label string, data []byte, h RlpHeader, expected uint8) error {
	got, err := decodeTrimmedUint(data, h, 8)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if got != uint64(expected) {
		return fmt.Errorf("%s: got %d, want %d", label, got, expected)
	}
	return nil
}

// AssertEqU64 asserts that the child item described by h is a String (or an
// in-place single Byte) whose big-endian, leading-zero-stripped bytes equal
// expected.
func AssertEqU64(label string, data []byte, h RlpHeader, expected uint64) error {
	got, err := decodeTrimmedUint(data, h, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if got != expected {
		return fmt.Errorf("%s: got %d, want %d", label, got, expected)
	}
	return nil
}

// AssertExactHash32 asserts that the child item described by h is a String
// of exactly 32 bytes equal to expected. Used for state roots, block
// hashes, and other trie roots, where no leading-zero trimming applies.
func AssertExactHash32(label string, data []byte, h RlpHeader, expected [32]byte) error {
	if h.Kind != String {
		return fmt.Errorf("%s: %w", label, ErrExpectedString)
	}
	b, err := view(label, data, h)
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("%s: expected 32 bytes, got %d", label, len(b))
	}
	if !bytes.Equal(b, expected[:]) {
		return fmt.Errorf("%s: got %x, want %x", label, b, expected)
	}
	return nil
}

// AssertTrimmedUint256 asserts that the child item described by h is a
// String carrying a big-endian, leading-zero-stripped representation of
// expected (a 32-byte value, e.g. a storage slot value). Shorter
// representations that round-trip to the same 32-byte value are accepted,
// including the canonical single-byte-in-place form for values 1-0x7f.
func AssertTrimmedUint256(label string, data []byte, h RlpHeader, expected [32]byte) error {
	if h.Kind != String && h.Kind != Byte {
		return fmt.Errorf("%s: %w", label, ErrExpectedString)
	}
	b, err := view(label, data, h)
	if err != nil {
		return err
	}
	if len(b) > 0 && b[0] == 0 {
		return fmt.Errorf("%s: %w", label, ErrCanonInt)
	}
	if len(b) > 32 {
		return fmt.Errorf("%s: value too large", label)
	}
	var padded [32]byte
	copy(padded[32-len(b):], b)
	if !bytes.Equal(padded[:], expected[:]) {
		return fmt.Errorf("%s: got %x, want %x", label, padded, expected)
	}
	return nil
}

// AssertEqBytes asserts that the child item described by h is a String
// whose bytes equal expected exactly. A single byte in [0x00, 0x7f] is
// accepted too: RLP encodes it in place, with no string wrapper.
func AssertEqBytes(label string, data []byte, h RlpHeader, expected []byte) error {
	if h.Kind != String && h.Kind != Byte {
		return fmt.Errorf("%s: %w", label, ErrExpectedString)
	}
	b, err := view(label, data, h)
	if err != nil {
		return err
	}
	if !bytes.Equal(b, expected) {
		return fmt.Errorf("%s: got %x, want %x", label, b, expected)
	}
	return nil
}

// decodeTrimmedUint decodes the String (or in-place Byte) at h as a
// big-endian unsigned integer, rejecting non-canonical leading zeros and
// values that overflow bits.
func decodeTrimmedUint(data []byte, h RlpHeader, bits int) (uint64, error) {
	if h.Kind != String && h.Kind != Byte {
		return 0, ErrExpectedString
	}
	b, err := view("decodeTrimmedUint", data, h)
	if err != nil {
		return 0, err
	}
	if len(b) == 0 {
		return 0, nil
	}
	if len(b) > 1 && b[0] == 0 {
		return 0, ErrCanonInt
	}
	if len(b)*8 > bits {
		return 0, ErrUint64Range
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	if bits < 64 && v >= (uint64(1)<<uint(bits)) {
		return 0, ErrUint64Range
	}
	return v, nil
}
