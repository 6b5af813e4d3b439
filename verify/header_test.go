package verify

import (
	"errors"
	"testing"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/ethtypes"
)

// buildHeaderRLP builds a header RLP list with chainparams.DefaultSchedule's
// field count for (chainID, number), filling every field this package
// doesn't assert with a trivial placeholder.
func buildHeaderRLP(chainID, number uint64, stateRoot, txRoot, receiptsRoot ethtypes.Hash, withdrawalsRoot *ethtypes.Hash) []byte {
	n := chainparams.DefaultSchedule.HeaderFieldsCount(chainID, number)
	items := make([][]byte, n)
	for i := range items {
		items[i] = rlpUint(0)
	}
	items[headerStateRootField] = rlpString(stateRoot[:])
	items[headerTransactionsRootField] = rlpString(txRoot[:])
	items[headerReceiptsRootField] = rlpString(receiptsRoot[:])
	items[headerNumberField] = rlpUint(number)
	if withdrawalsRoot != nil {
		items[headerWithdrawalsRootField] = rlpString(withdrawalsRoot[:])
	}
	return rlpList(items...)
}

func buildHeaderPartial(number uint64, stateRoot, txRoot, receiptsRoot ethtypes.Hash, withdrawalsRoot *ethtypes.Hash, headerRLP []byte) ethtypes.HeaderPartial {
	hash := ethtypes.Hash(crypto.Keccak256Hash(headerRLP))
	return ethtypes.HeaderPartial{
		Number:           number,
		StateRoot:        stateRoot,
		TransactionsRoot: txRoot,
		ReceiptsRoot:     receiptsRoot,
		WithdrawalsRoot:  withdrawalsRoot,
		Hash:             hash,
	}
}

func TestVerifyHeaderPreShanghaiSucceeds(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot ethtypes.Hash
	stateRoot[0], txRoot[0], receiptsRoot[0] = 0x01, 0x02, 0x03

	number := chainparams.Mainnet.London
	headerRLP := buildHeaderRLP(1, number, stateRoot, txRoot, receiptsRoot, nil)
	partial := buildHeaderPartial(number, stateRoot, txRoot, receiptsRoot, nil, headerRLP)

	if err := VerifyHeader(1, partial, headerRLP); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

// TestVerifyHeaderPostShanghaiWithdrawalsRootMutationFails mirrors spec.md's
// header scenario: a post-Shanghai header is checked, but the caller's
// claimed withdrawals_root doesn't match what the header RLP actually
// commits to.
func TestVerifyHeaderPostShanghaiWithdrawalsRootMutationFails(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot, withdrawalsRoot ethtypes.Hash
	stateRoot[0], txRoot[0], receiptsRoot[0], withdrawalsRoot[0] = 0x01, 0x02, 0x03, 0x04

	number := chainparams.Mainnet.Shanghai
	headerRLP := buildHeaderRLP(1, number, stateRoot, txRoot, receiptsRoot, &withdrawalsRoot)

	claimed := withdrawalsRoot
	claimed[0] ^= 0xFF
	partial := buildHeaderPartial(number, stateRoot, txRoot, receiptsRoot, &claimed, headerRLP)

	err := VerifyHeader(1, partial, headerRLP)
	if !errors.Is(err, ErrWithdrawalsRoot) {
		t.Fatalf("expected ErrWithdrawalsRoot, got %v", err)
	}
}

func TestVerifyHeaderPostShanghaiMissingWithdrawalsRootFails(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot, withdrawalsRoot ethtypes.Hash
	stateRoot[0], txRoot[0], receiptsRoot[0], withdrawalsRoot[0] = 0x01, 0x02, 0x03, 0x04

	number := chainparams.Mainnet.Shanghai
	headerRLP := buildHeaderRLP(1, number, stateRoot, txRoot, receiptsRoot, &withdrawalsRoot)
	partial := buildHeaderPartial(number, stateRoot, txRoot, receiptsRoot, nil, headerRLP)

	err := VerifyHeader(1, partial, headerRLP)
	if !errors.Is(err, ErrWithdrawalsRoot) {
		t.Fatalf("expected ErrWithdrawalsRoot, got %v", err)
	}
}

func TestVerifyHeaderWrongStateRootFails(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot ethtypes.Hash
	stateRoot[0], txRoot[0], receiptsRoot[0] = 0x01, 0x02, 0x03

	number := chainparams.Mainnet.London
	headerRLP := buildHeaderRLP(1, number, stateRoot, txRoot, receiptsRoot, nil)

	claimed := stateRoot
	claimed[0] ^= 0xFF
	partial := buildHeaderPartial(number, claimed, txRoot, receiptsRoot, nil, headerRLP)

	err := VerifyHeader(1, partial, headerRLP)
	if !errors.Is(err, ErrStateRootMismatch) {
		t.Fatalf("expected ErrStateRootMismatch, got %v", err)
	}
}

func TestVerifyHeaderBlockHashMismatchFails(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot ethtypes.Hash
	stateRoot[0], txRoot[0], receiptsRoot[0] = 0x01, 0x02, 0x03

	number := chainparams.Mainnet.London
	headerRLP := buildHeaderRLP(1, number, stateRoot, txRoot, receiptsRoot, nil)
	partial := buildHeaderPartial(number, stateRoot, txRoot, receiptsRoot, nil, headerRLP)
	partial.Hash[0] ^= 0xFF

	err := VerifyHeader(1, partial, headerRLP)
	if !errors.Is(err, ErrBlockHashMismatch) {
		t.Fatalf("expected ErrBlockHashMismatch, got %v", err)
	}
}

func TestVerifyHeaderWrongFieldCountFails(t *testing.T) {
	var stateRoot, txRoot, receiptsRoot ethtypes.Hash
	number := chainparams.Mainnet.Shanghai // expects 17 fields

	// Build a pre-Shanghai-shaped (16-field) header for a number that the
	// schedule says should carry 17.
	headerRLP := buildHeaderRLP(1, chainparams.Mainnet.London, stateRoot, txRoot, receiptsRoot, nil)
	partial := buildHeaderPartial(number, stateRoot, txRoot, receiptsRoot, nil, headerRLP)

	err := VerifyHeader(1, partial, headerRLP)
	if !errors.Is(err, ErrHeaderFieldCount) {
		t.Fatalf("expected ErrHeaderFieldCount, got %v", err)
	}
}
