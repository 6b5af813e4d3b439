package mpt

import "errors"

var (
	// ErrHashMismatch is returned when a proof node's keccak256 does not
	// equal the hash its parent (or the root) expects.
	ErrHashMismatch = errors.New("mpt: hash mismatch")

	// ErrBranchEmptyChild is returned when a branch node is asked to
	// descend through a nibble whose child slot is empty while key
	// nibbles remain.
	ErrBranchEmptyChild = errors.New("mpt: branch child selection from an empty slot")

	// ErrPathMismatch is returned when an extension or leaf node's
	// encoded path does not match the corresponding key nibbles.
	ErrPathMismatch = errors.New("mpt: extension/leaf path mismatch")

	// ErrKeyConsumption is returned when the key is under- or
	// over-consumed on reaching the value slot.
	ErrKeyConsumption = errors.New("mpt: key under- or over-consumption")

	// ErrDepthOverflow is returned when more proof nodes are required
	// than the verifier's configured maximum depth.
	ErrDepthOverflow = errors.New("mpt: depth overflow")

	// ErrNonCanonicalRLP is returned when any proof node fails to decode
	// as canonical RLP.
	ErrNonCanonicalRLP = errors.New("mpt: non-canonical RLP")

	// ErrUnexpectedNodeArity is returned when a decoded node has neither
	// 2 (extension/leaf) nor 17 (branch) elements.
	ErrUnexpectedNodeArity = errors.New("mpt: node has neither 2 nor 17 elements")

	// ErrValueMismatch is returned when the value recovered from the
	// proof does not equal the value the caller claimed.
	ErrValueMismatch = errors.New("mpt: value mismatch")

	// ErrProofTruncated is returned when the proof ends before the key
	// is fully resolved (e.g. at a dangling extension node).
	ErrProofTruncated = errors.New("mpt: proof truncated before resolving the key")

	// ErrLeafShapeInvalid is returned when the terminal leaf node is not
	// a 2-element list, or its path is not a leaf-variant hex-prefix.
	ErrLeafShapeInvalid = errors.New("mpt: terminal leaf node has invalid shape")

	// ErrNonCanonicalHexPrefix is returned when a hex-prefix encoded path
	// carries a non-zero padding nibble on an even-length path.
	ErrNonCanonicalHexPrefix = errors.New("mpt: non-canonical hex-prefix padding")
)
