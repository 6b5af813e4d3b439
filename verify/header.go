package verify

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/crypto"
	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/rlp"
)

// Field indices within a block header's RLP list, stable across forks --
// later forks only append fields, never reorder earlier ones.
const (
	headerStateRootField        = 3
	headerTransactionsRootField = 4
	headerReceiptsRootField     = 5
	headerNumberField           = 8
	headerWithdrawalsRootField  = 16
)

// VerifyHeader checks that partial describes the block header whose RLP
// encoding is headerRLP, on the chain identified by chainID. It asserts the
// header decodes to exactly the field count its fork schedule expects for
// partial.Number, that the state/transactions/receipts (and, post-Shanghai,
// withdrawals) roots match, and that keccak256(headerRLP) equals the
// header's claimed hash.
func VerifyHeader(chainID uint64, partial ethtypes.HeaderPartial, headerRLP []byte) error {
	wantFields := chainparams.DefaultSchedule.HeaderFieldsCount(chainID, partial.Number)

	headers, err := rlp.DecodeList(headerRLP, chainparams.MaxHeaderFieldsCount)
	if err != nil {
		return fmt.Errorf("verify_header: %w", err)
	}
	if len(headers) != wantFields {
		return fmt.Errorf("verify_header: %w", ErrHeaderFieldCount)
	}

	if err := rlp.AssertEqU64("verify_header number", headerRLP, headers[headerNumberField], partial.Number); err != nil {
		return fmt.Errorf("verify_header: %v", err)
	}

	if err := rlp.AssertExactHash32("verify_header stateRoot", headerRLP, headers[headerStateRootField], [32]byte(partial.StateRoot)); err != nil {
		return fmt.Errorf("%w: %v", ErrStateRootMismatch, err)
	}
	if err := rlp.AssertExactHash32("verify_header transactionsRoot", headerRLP, headers[headerTransactionsRootField], [32]byte(partial.TransactionsRoot)); err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionsRoot, err)
	}
	if err := rlp.AssertExactHash32("verify_header receiptsRoot", headerRLP, headers[headerReceiptsRootField], [32]byte(partial.ReceiptsRoot)); err != nil {
		return fmt.Errorf("%w: %v", ErrReceiptsRoot, err)
	}

	if chainparams.DefaultSchedule.ForksFor(chainID).IsShanghai(partial.Number) {
		if partial.WithdrawalsRoot == nil {
			return fmt.Errorf("verify_header: %w", ErrWithdrawalsRoot)
		}
		if err := rlp.AssertExactHash32("verify_header withdrawalsRoot", headerRLP, headers[headerWithdrawalsRootField], [32]byte(*partial.WithdrawalsRoot)); err != nil {
			return fmt.Errorf("%w: %v", ErrWithdrawalsRoot, err)
		}
	}

	if got := crypto.Keccak256Hash(headerRLP); ethtypes.Hash(got) != partial.Hash {
		return fmt.Errorf("verify_header: %w", ErrBlockHashMismatch)
	}
	return nil
}
