// Package mpt implements the Merkle Patricia Trie proof verifier: given a
// key, a claimed value, a trusted root, and the sequence of RLP-encoded
// trie nodes from root to leaf, it establishes hash linkage and
// nibble-by-nibble key consumption through branch, extension, and leaf
// nodes. It performs no trie construction or mutation -- verification
// only.
package mpt

import (
	"bytes"

	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/nibble"
)

// Proof carries the RLP-encoded nodes from root to leaf. Nodes holds every
// hash-linked intermediate branch/extension step, one entry per node
// actually stored in the trie -- a child reference shorter than 32 bytes is
// embedded directly in its parent's encoding rather than hashed, so it
// never occupies its own Nodes entry; the verifier decodes it in place and
// continues the walk from its bytes. Leaf is the terminal 2-element node
// whose value is the claimed key's value, when the walk's last step is
// hash-linked; if the walk's last step is itself an inline child, Leaf is
// empty, since that child's bytes are already inside its parent, and a
// non-empty Leaf left unconsumed is rejected.
type Proof struct {
	Nodes [][]byte
	Leaf  []byte
}

// Depth reports the number of hash-linked intermediate nodes carried by
// the proof. It does not count inline descents, which consume no entry.
func (p Proof) Depth() int { return len(p.Nodes) }

// ProofInput bundles a proof with the nibble-prefixed key and claimed value
// it is being checked against, mirroring the single bundle every domain
// verifier passes down to VerifyMerkleProof.
type ProofInput struct {
	Key   []byte
	Value []byte
	Proof Proof
}

// Verify checks in against root, bounding the proof to maxDepth total
// walk steps.
func (in ProofInput) Verify(root [32]byte, maxDepth int) error {
	return VerifyMerkleProof(in.Key, in.Value, root, in.Proof, maxDepth)
}

// VerifyMerkleProof walks the proof from root to leaf, verifying hash (or,
// for inline children, exact-byte) linkage at every step and
// nibble-by-nibble consumption of key's nibble expansion, and asserts the
// terminal value equals value. maxDepth bounds the total number of steps
// walked, counting both entries consumed from proof.Nodes and inline
// descents that consume none.
func VerifyMerkleProof(key, value []byte, root [32]byte, proof Proof, maxDepth int) error {
	keyNibbles, err := nibble.BytesToNibbles(key)
	if err != nil {
		return err
	}

	wantHash := root[:]
	var wantInline []byte
	pos := 0
	nodeIdx := 0
	leafConsumed := false
	depth := 0

	for {
		// The next node's bytes come from exactly one of three sources:
		// an inline child decoded in place (consumes no entry), the next
		// hash-linked entry of proof.Nodes, or -- once both of those are
		// exhausted -- the dedicated terminal proof.Leaf entry.
		var encoded []byte
		switch {
		case wantInline != nil:
			encoded = wantInline
		case nodeIdx < len(proof.Nodes):
			encoded = proof.Nodes[nodeIdx]
			nodeIdx++
		case !leafConsumed && len(proof.Leaf) != 0:
			encoded = proof.Leaf
			leafConsumed = true
		default:
			return ErrProofTruncated
		}

		depth++
		if depth > maxDepth {
			return ErrDepthOverflow
		}

		if err := checkLinkage(encoded, wantHash, wantInline); err != nil {
			return err
		}
		wantHash, wantInline = nil, nil

		items, err := decodeRLPList(encoded)
		if err != nil {
			return err
		}

		// noMoreSteps reports whether every hash-linked entry and the
		// dedicated leaf entry have now been consumed -- the condition a
		// terminal node (branch-with-value or leaf-shaped) must satisfy,
		// regardless of whether it was reached by hash or inline.
		noMoreSteps := nodeIdx == len(proof.Nodes) && (leafConsumed || len(proof.Leaf) == 0)

		switch len(items) {
		case 2:
			hexPath, err := compactToHex(items[0])
			if err != nil {
				return err
			}
			if hasTerm(hexPath) {
				path := hexPath[:len(hexPath)-1]
				if pos+len(path) != len(keyNibbles) {
					return ErrKeyConsumption
				}
				if !nibblesEqual(keyNibbles[pos:], path) {
					return ErrPathMismatch
				}
				if !noMoreSteps {
					return ErrProofTruncated
				}
				if !bytes.Equal(trimLeadingZeros(items[1]), trimLeadingZeros(value)) {
					return ErrValueMismatch
				}
				return nil
			}

			path := hexPath
			if pos+len(path) > len(keyNibbles) || !nibblesEqual(keyNibbles[pos:pos+len(path)], path) {
				return ErrPathMismatch
			}
			pos += len(path)

			childRef := items[1]
			wantHash, wantInline = nextLinkage(childRef)

		case 17:
			if pos == len(keyNibbles) {
				// The key is fully consumed at this branch: the value,
				// if any, lives in the 17th slot and this node is the
				// terminal one. This shape is only valid when no
				// hash-linked nodes or dedicated Leaf entry remain
				// unconsumed after it.
				if !noMoreSteps {
					return ErrProofTruncated
				}
				val := items[16]
				if len(val) == 0 {
					return ErrValueMismatch
				}
				if !bytes.Equal(trimLeadingZeros(val), trimLeadingZeros(value)) {
					return ErrValueMismatch
				}
				return nil
			}
			if pos > len(keyNibbles) {
				return ErrKeyConsumption
			}
			j := keyNibbles[pos]
			pos++

			childRef := items[j]
			if len(childRef) == 0 {
				return ErrBranchEmptyChild
			}
			wantHash, wantInline = nextLinkage(childRef)

		default:
			return ErrUnexpectedNodeArity
		}
	}
}

// checkLinkage verifies that encoded matches whichever of wantHash/
// wantInline is active. Exactly one must be non-nil.
func checkLinkage(encoded []byte, wantHash, wantInline []byte) error {
	if wantInline != nil {
		if !bytes.Equal(encoded, wantInline) {
			return ErrHashMismatch
		}
		return nil
	}
	h := crypto.Keccak256(encoded)
	if !bytes.Equal(h, wantHash) {
		return ErrHashMismatch
	}
	return nil
}

// nextLinkage interprets a child reference: 32 bytes means the child is a
// separate trie node reached by hash, and is either the next entry of
// proof.Nodes or proof.Leaf; anything shorter is the child's full encoding
// embedded in place, to be decoded immediately without consuming a
// Nodes/Leaf entry. A zero-length reference has no next node.
func nextLinkage(childRef []byte) (wantHash, wantInline []byte) {
	if len(childRef) == 32 {
		return childRef, nil
	}
	return nil, childRef
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
