package verify

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/mpt"
	"github.com/ethproof/ethproof/rlp"
)

// VerifyStorageProof checks that value is the storage-trie entry proof
// resolves to under storageHash, for the 32-byte storage slot. The proof's
// key must be keccak256(slot); its value is the RLP string of value with
// leading zeros trimmed (length bounded by MaxStorageValueLength).
func VerifyStorageProof(slot [32]byte, value []byte, proof mpt.ProofInput, storageHash [32]byte) error {
	key := crypto.Keccak256(slot[:])
	if len(proof.Key) != len(key) || string(proof.Key) != string(key) {
		return fmt.Errorf("verify_storage_proof: key: %w", mpt.ErrPathMismatch)
	}
	if len(proof.Value) > chainparams.MaxStorageValueLength {
		return fmt.Errorf("verify_storage_proof: %w", mpt.ErrLeafShapeInvalid)
	}

	if err := proof.Verify(storageHash, chainparams.MaxStorageDepth); err != nil {
		return fmt.Errorf("verify_storage_proof: %w", err)
	}

	if len(value) > 32 {
		return fmt.Errorf("verify_storage_proof: value: %w", ErrValueFieldMismatch)
	}
	var expected [32]byte
	copy(expected[32-len(value):], value)

	h, consumed, err := rlp.DecodeItemHeader(proof.Value, 0)
	if err != nil {
		return fmt.Errorf("verify_storage_proof: %w", err)
	}
	if consumed != len(proof.Value) {
		return fmt.Errorf("verify_storage_proof: %w", mpt.ErrLeafShapeInvalid)
	}
	if err := rlp.AssertTrimmedUint256("verify_storage_proof value", proof.Value, h, expected); err != nil {
		return fmt.Errorf("%w: %v", ErrValueFieldMismatch, err)
	}
	return nil
}
