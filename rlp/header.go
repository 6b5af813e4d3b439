package rlp

import "io"

// RlpHeader describes one encoded RLP item: its payload position and
// length within an enclosing buffer, and whether it is a String or a
// List. It covers only the payload -- not the prefix bytes consumed to
// determine offset/length/kind.
type RlpHeader struct {
	Offset int
	Length int
	Kind   Kind
}

// ErrTooManyChildren is returned by DecodeList when a list contains more
// children than the caller's declared capacity N.
var ErrTooManyChildren = errorString("rlp: list has more children than capacity")

// ErrChildrenUnderflow is returned by DecodeList when the decoded children
// do not exactly fill the list's declared payload span.
var ErrChildrenUnderflow = errorString("rlp: list payload not exactly filled by children")

type errorString string

func (e errorString) Error() string { return string(e) }

// DecodeItemHeader decodes the single RLP item starting at data[pos],
// returning its header (relative to data) and the total number of bytes
// consumed (prefix + payload). This is the direct table-driven decode of
// one item described by the RLP prefix-byte ranges: short/long strings,
// short/long lists, and the single in-place byte form.
func DecodeItemHeader(data []byte, pos int) (RlpHeader, int, error) {
	if pos < 0 || pos >= len(data) {
		return RlpHeader{}, 0, io.ErrUnexpectedEOF
	}
	b := data[pos]
	switch {
	case b <= 0x7f:
		return RlpHeader{Offset: pos, Length: 1, Kind: Byte}, 1, nil

	case b <= 0xb7:
		size := int(b - 0x80)
		start := pos + 1
		end := start + size
		if end > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		if size == 1 && data[start] <= 0x7f {
			return RlpHeader{}, 0, ErrCanonSize
		}
		return RlpHeader{Offset: start, Length: size, Kind: String}, end - pos, nil

	case b <= 0xbf:
		lenOfLen := int(b - 0xb7)
		if pos+1+lenOfLen > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		lenBytes := data[pos+1 : pos+1+lenOfLen]
		if lenBytes[0] == 0 {
			return RlpHeader{}, 0, ErrCanonInt
		}
		size := int(readBigEndian(lenBytes))
		if size <= 55 {
			return RlpHeader{}, 0, ErrNonCanonicalSize
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		return RlpHeader{Offset: start, Length: size, Kind: String}, end - pos, nil

	case b <= 0xf7:
		size := int(b - 0xc0)
		start := pos + 1
		end := start + size
		if end > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		return RlpHeader{Offset: start, Length: size, Kind: List}, end - pos, nil

	default:
		lenOfLen := int(b - 0xf7)
		if pos+1+lenOfLen > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		lenBytes := data[pos+1 : pos+1+lenOfLen]
		if lenBytes[0] == 0 {
			return RlpHeader{}, 0, ErrCanonInt
		}
		size := int(readBigEndian(lenBytes))
		if size <= 55 {
			return RlpHeader{}, 0, ErrNonCanonicalSize
		}
		start := pos + 1 + lenOfLen
		end := start + size
		if end > len(data) {
			return RlpHeader{}, 0, io.ErrUnexpectedEOF
		}
		return RlpHeader{Offset: start, Length: size, Kind: List}, end - pos, nil
	}
}

// DecodeList reads the outer header at data[0] (it must be a List), then
// repeatedly decodes child items from its payload, returning up to maxN
// child headers. It fails if the outer item is not a list, if more than
// maxN children are present, or if the decoded children do not exactly
// fill the list's declared payload span.
func DecodeList(data []byte, maxN int) ([]RlpHeader, error) {
	outer, _, err := DecodeItemHeader(data, 0)
	if err != nil {
		return nil, err
	}
	if outer.Kind != List {
		return nil, ErrExpectedList
	}

	var headers []RlpHeader
	pos := outer.Offset
	end := outer.Offset + outer.Length
	for pos < end {
		if len(headers) >= maxN {
			return nil, ErrTooManyChildren
		}
		h, consumed, err := DecodeItemHeader(data, pos)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
		pos += consumed
	}
	if pos != end {
		return nil, ErrChildrenUnderflow
	}
	return headers, nil
}

// DecodeListAt decodes the children of a list whose header has already been
// located (e.g. as one child of an outer DecodeList call), without
// re-decoding the list's own prefix. h.Kind must be List; h.Offset/h.Length
// already denote the payload span.
func DecodeListAt(data []byte, h RlpHeader, maxN int) ([]RlpHeader, error) {
	if h.Kind != List {
		return nil, ErrExpectedList
	}
	var headers []RlpHeader
	pos := h.Offset
	end := h.Offset + h.Length
	for pos < end {
		if len(headers) >= maxN {
			return nil, ErrTooManyChildren
		}
		child, consumed, err := DecodeItemHeader(data, pos)
		if err != nil {
			return nil, err
		}
		headers = append(headers, child)
		pos += consumed
	}
	if pos != end {
		return nil, ErrChildrenUnderflow
	}
	return headers, nil
}
