package mpt

import "fmt"

// decodeRLPList decodes a single top-level RLP list into its element byte
// slices. Each returned element is the element's raw content for strings
// (no RLP string header) and the element's full RLP encoding (header
// included) for nested lists, which is what inline MPT child nodes need:
// an inline child is itself a complete RLP-encoded node.
func decodeRLPList(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty node", ErrNonCanonicalRLP)
	}
	prefix := data[0]
	if prefix < 0xc0 {
		return nil, fmt.Errorf("%w: expected list, got string prefix 0x%02x", ErrNonCanonicalRLP, prefix)
	}

	var payload []byte
	switch {
	case prefix <= 0xf7:
		length := int(prefix - 0xc0)
		if 1+length > len(data) {
			return nil, fmt.Errorf("%w: truncated short list", ErrNonCanonicalRLP)
		}
		payload = data[1 : 1+length]
	default:
		lenOfLen := int(prefix - 0xf7)
		if 1+lenOfLen > len(data) {
			return nil, fmt.Errorf("%w: truncated long list length", ErrNonCanonicalRLP)
		}
		lenBytes := data[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return nil, fmt.Errorf("%w: non-canonical length-of-length", ErrNonCanonicalRLP)
		}
		length := decodeBigEndianLen(lenBytes)
		if length <= 55 {
			return nil, fmt.Errorf("%w: long list form used for length <= 55", ErrNonCanonicalRLP)
		}
		end := 1 + lenOfLen + length
		if end > len(data) {
			return nil, fmt.Errorf("%w: truncated long list payload", ErrNonCanonicalRLP)
		}
		payload = data[1+lenOfLen : end]
	}

	var elems [][]byte
	for len(payload) > 0 {
		elem, rest, err := decodeOneElement(payload)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		payload = rest
	}
	return elems, nil
}

// decodeOneElement reads one RLP element from the front of data, returning
// its content (for strings) or its full encoding (for lists, so an inline
// node's bytes can be recursively decoded) and the remaining bytes.
func decodeOneElement(data []byte) (content []byte, rest []byte, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty element", ErrNonCanonicalRLP)
	}
	prefix := data[0]
	switch {
	case prefix <= 0x7f:
		return data[:1], data[1:], nil

	case prefix == 0x80:
		return nil, data[1:], nil

	case prefix <= 0xb7:
		length := int(prefix - 0x80)
		if 1+length > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated short string", ErrNonCanonicalRLP)
		}
		if length == 1 && data[1] <= 0x7f {
			return nil, nil, fmt.Errorf("%w: single byte wrapped in string form", ErrNonCanonicalRLP)
		}
		return data[1 : 1+length], data[1+length:], nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if 1+lenOfLen > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated long string length", ErrNonCanonicalRLP)
		}
		lenBytes := data[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return nil, nil, fmt.Errorf("%w: non-canonical length-of-length", ErrNonCanonicalRLP)
		}
		length := decodeBigEndianLen(lenBytes)
		if length <= 55 {
			return nil, nil, fmt.Errorf("%w: long string form used for length <= 55", ErrNonCanonicalRLP)
		}
		end := 1 + lenOfLen + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated long string payload", ErrNonCanonicalRLP)
		}
		return data[1+lenOfLen : end], data[end:], nil

	case prefix <= 0xf7:
		length := int(prefix - 0xc0)
		end := 1 + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated short list", ErrNonCanonicalRLP)
		}
		return data[:end], data[end:], nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if 1+lenOfLen > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated long list length", ErrNonCanonicalRLP)
		}
		lenBytes := data[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return nil, nil, fmt.Errorf("%w: non-canonical length-of-length", ErrNonCanonicalRLP)
		}
		length := decodeBigEndianLen(lenBytes)
		if length <= 55 {
			return nil, nil, fmt.Errorf("%w: long list form used for length <= 55", ErrNonCanonicalRLP)
		}
		end := 1 + lenOfLen + length
		if end > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated long list payload", ErrNonCanonicalRLP)
		}
		return data[:end], data[end:], nil
	}
}

func decodeBigEndianLen(b []byte) int {
	var v int
	for _, x := range b {
		v = v<<8 | int(x)
	}
	return v
}
