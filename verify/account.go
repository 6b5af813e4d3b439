package verify

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/mpt"
	"github.com/ethproof/ethproof/rlp"
)

// VerifyAccount checks that account is the state-trie entry proof resolves
// to under stateRoot. The proof's key must be keccak256(account.Address);
// its value must be the RLP list (nonce, balance, storageHash, codeHash).
func VerifyAccount(account ethtypes.Account, proof mpt.ProofInput, stateRoot [32]byte) error {
	key := crypto.Keccak256(account.Address.Bytes())
	if len(proof.Key) != len(key) || string(proof.Key) != string(key) {
		return fmt.Errorf("verify_account: key: %w", mpt.ErrPathMismatch)
	}

	if err := proof.Verify(stateRoot, chainparams.MaxAccountProofDepth); err != nil {
		return fmt.Errorf("verify_account: %w", err)
	}

	headers, err := rlp.DecodeList(proof.Value, 4)
	if err != nil {
		return fmt.Errorf("verify_account: %w", err)
	}
	if len(headers) != 4 {
		return fmt.Errorf("verify_account: %w", ErrAccountFieldCount)
	}

	data := proof.Value
	if err := rlp.AssertEqU64("verify_account nonce", data, headers[0], account.Nonce); err != nil {
		return fmt.Errorf("%w: %v", ErrNonceMismatch, err)
	}

	balance := account.Balance.Bytes32()
	if err := rlp.AssertTrimmedUint256("verify_account balance", data, headers[1], balance); err != nil {
		return fmt.Errorf("%w: %v", ErrBalanceMismatch, err)
	}

	if err := rlp.AssertExactHash32("verify_account storageHash", data, headers[2], [32]byte(account.StorageHash)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageHashMismatch, err)
	}
	if err := rlp.AssertExactHash32("verify_account codeHash", data, headers[3], [32]byte(account.CodeHash)); err != nil {
		return fmt.Errorf("%w: %v", ErrCodeHashMismatch, err)
	}
	return nil
}
