package verify

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/mpt"
	"github.com/ethproof/ethproof/rlp"
)

// VerifyReceiptProof checks that partial is the receipt-trie entry proof
// resolves to under receiptRoot, for the transaction at the given index
// within blockNumber. Like transactions, typed receipts (1-4) prefix their
// field list with a single type byte; legacy receipts (0) do not. The
// decoded outer list is returned so callers can pass it to
// ethtypes.ExtractLog without re-decoding the receipt.
func VerifyReceiptProof(blockNumber, index uint64, txType uint8, partial ethtypes.ReceiptPartial, proof mpt.ProofInput, receiptRoot [32]byte) (ethtypes.RlpList, error) {
	key := rlp.AppendUint64(nil, index)
	if len(proof.Key) != len(key) || string(proof.Key) != string(key) {
		return nil, fmt.Errorf("verify_receipt_proof: key: %w", mpt.ErrPathMismatch)
	}

	if err := proof.Verify(receiptRoot, chainparams.MaxTxReceiptDepth); err != nil {
		return nil, fmt.Errorf("verify_receipt_proof: %w", err)
	}

	listRLP := proof.Value
	if txType != ethtypes.LegacyTxType {
		if _, ok := ethtypes.TxFieldLayouts[txType]; !ok {
			return nil, fmt.Errorf("verify_receipt_proof: %w", ErrUnknownTxType)
		}
		if len(proof.Value) == 0 {
			return nil, fmt.Errorf("verify_receipt_proof: %w", ErrTypePrefixMissing)
		}
		if proof.Value[0] != txType {
			return nil, fmt.Errorf("verify_receipt_proof: %w", ErrUnknownTxType)
		}
		listRLP = proof.Value[1:]
	}

	headers, err := rlp.DecodeList(listRLP, chainparams.ReceiptFieldsCount)
	if err != nil {
		return nil, fmt.Errorf("verify_receipt_proof: %w", err)
	}
	if len(headers) != chainparams.ReceiptFieldsCount {
		return nil, fmt.Errorf("verify_receipt_proof: %w", ErrReceiptFieldCount)
	}

	const (
		statusOrRootField = 0
		gasUsedField      = 1
		bloomField        = 2
	)

	if blockNumber < chainparams.Mainnet.Byzantium {
		if partial.StateRoot == nil {
			return nil, fmt.Errorf("verify_receipt_proof: %w", ErrStateRootMissing)
		}
		if err := rlp.AssertExactHash32("verify_receipt_proof stateRoot", listRLP, headers[statusOrRootField], [32]byte(*partial.StateRoot)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStateRootMismatch, err)
		}
	} else {
		if partial.Status == nil {
			return nil, fmt.Errorf("verify_receipt_proof: %w", ErrStatusMissing)
		}
		if err := rlp.AssertEqU8("verify_receipt_proof status", listRLP, headers[statusOrRootField], *partial.Status); err != nil {
			return nil, fmt.Errorf("verify_receipt_proof status: %v", err)
		}
	}

	if err := rlp.AssertEqU64("verify_receipt_proof cumulativeGasUsed", listRLP, headers[gasUsedField], partial.CumulativeGasUsed); err != nil {
		return nil, fmt.Errorf("verify_receipt_proof: %v", err)
	}

	if err := rlp.AssertEqBytes("verify_receipt_proof logsBloom", listRLP, headers[bloomField], partial.LogsBloom[:]); err != nil {
		return nil, fmt.Errorf("verify_receipt_proof: %v", err)
	}

	return headers, nil
}
