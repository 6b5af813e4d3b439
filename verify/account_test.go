package verify

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"

	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/mpt"
)

// buildAccountProof constructs a single-leaf proof for an account record,
// returning the proof input and the state root it resolves to.
func buildAccountProof(addr ethtypes.Address, nonce uint64, balance uint64, storageHash, codeHash ethtypes.Hash) (mpt.ProofInput, [32]byte) {
	key := crypto.Keccak256(addr.Bytes())
	value := rlpList(
		rlpUint(nonce),
		rlpUint(balance),
		rlpString(storageHash[:]),
		rlpString(codeHash[:]),
	)
	leaf := buildLeaf(keyNibbles(key), value)
	root := refHash(leaf)
	return mpt.ProofInput{Key: key, Value: value, Proof: mpt.Proof{Leaf: leaf}}, root
}

func testAccount(addr ethtypes.Address, nonce, balance uint64, storageHash, codeHash ethtypes.Hash) ethtypes.Account {
	return ethtypes.Account{
		Address:     addr,
		Nonce:       nonce,
		Balance:     uint256.NewInt(balance),
		StorageHash: storageHash,
		CodeHash:    codeHash,
	}
}

func TestVerifyAccountSucceeds(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0x11, 0x22, 0x33})
	proof, root := buildAccountProof(addr, 7, 1000, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 7, 1000, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	if err := VerifyAccount(acct, proof, root); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

// TestVerifyAccountBalanceMismatchFails mirrors spec.md's account
// proof/balance-mutation scenario: a valid proof exists, but the caller's
// claimed balance doesn't match the value actually committed to it.
func TestVerifyAccountBalanceMismatchFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0x11, 0x22, 0x33})
	proof, root := buildAccountProof(addr, 7, 1000, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 7, 999, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	err := VerifyAccount(acct, proof, root)
	if !errors.Is(err, ErrBalanceMismatch) {
		t.Fatalf("expected ErrBalanceMismatch, got %v", err)
	}
}

func TestVerifyAccountNonceMismatchFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0xAA})
	proof, root := buildAccountProof(addr, 7, 1000, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 8, 1000, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	err := VerifyAccount(acct, proof, root)
	if !errors.Is(err, ErrNonceMismatch) {
		t.Fatalf("expected ErrNonceMismatch, got %v", err)
	}
}

func TestVerifyAccountStorageHashMismatchFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0xBB})
	proof, root := buildAccountProof(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 1, 1, ethtypes.HexToHash("0x01"), ethtypes.EmptyCodeHash)

	err := VerifyAccount(acct, proof, root)
	if !errors.Is(err, ErrStorageHashMismatch) {
		t.Fatalf("expected ErrStorageHashMismatch, got %v", err)
	}
}

func TestVerifyAccountCodeHashMismatchFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0xCC})
	proof, root := buildAccountProof(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.HexToHash("0x02"))

	err := VerifyAccount(acct, proof, root)
	if !errors.Is(err, ErrCodeHashMismatch) {
		t.Fatalf("expected ErrCodeHashMismatch, got %v", err)
	}
}

func TestVerifyAccountWrongAddressFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0xDD})
	proof, root := buildAccountProof(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	other := ethtypes.BytesToAddress([]byte{0xEE})
	acct := testAccount(other, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	err := VerifyAccount(acct, proof, root)
	if !errors.Is(err, mpt.ErrPathMismatch) {
		t.Fatalf("expected ErrPathMismatch, got %v", err)
	}
}

func TestVerifyAccountWrongRootFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0x01})
	proof, root := buildAccountProof(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	root[0] ^= 0xFF

	if err := VerifyAccount(acct, proof, root); !errors.Is(err, mpt.ErrHashMismatch) {
		t.Fatalf("expected ErrHashMismatch, got %v", err)
	}
}

// TestVerifyAccountMutatedLeafByteFails covers the non-malleability
// property: mutating a single byte of the leaf, after the root has already
// been fixed, must break hash linkage.
func TestVerifyAccountMutatedLeafByteFails(t *testing.T) {
	addr := ethtypes.BytesToAddress([]byte{0x02})
	proof, root := buildAccountProof(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)
	acct := testAccount(addr, 1, 1, ethtypes.EmptyRootHash, ethtypes.EmptyCodeHash)

	mutated := append([]byte(nil), proof.Proof.Leaf...)
	mutated[len(mutated)-1] ^= 0x01
	proof.Proof.Leaf = mutated

	if err := VerifyAccount(acct, proof, root); !errors.Is(err, mpt.ErrHashMismatch) {
		t.Fatalf("expected ErrHashMismatch on mutated leaf, got %v", err)
	}
}
