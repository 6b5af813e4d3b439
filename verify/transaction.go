package verify

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/mpt"
	"github.com/ethproof/ethproof/rlp"
)

// VerifyTransactionProof checks that partial is the transaction-trie entry
// proof resolves to under txRoot, for the transaction at the given index
// within its block. The proof's key is the RLP encoding of index. Legacy
// transactions (type 0) encode their fields directly as the leaf value;
// typed transactions (1-4) prefix that list with a single type byte.
func VerifyTransactionProof(index uint64, txType uint8, partial ethtypes.TransactionPartial, proof mpt.ProofInput, txRoot [32]byte) error {
	key := rlp.AppendUint64(nil, index)
	if len(proof.Key) != len(key) || string(proof.Key) != string(key) {
		return fmt.Errorf("verify_transaction_proof: key: %w", mpt.ErrPathMismatch)
	}

	if err := proof.Verify(txRoot, chainparams.MaxTxReceiptDepth); err != nil {
		return fmt.Errorf("verify_transaction_proof: %w", err)
	}

	layout, ok := ethtypes.TxFieldLayouts[txType]
	if !ok {
		return fmt.Errorf("verify_transaction_proof: %w", ErrUnknownTxType)
	}

	listRLP := proof.Value
	if txType != ethtypes.LegacyTxType {
		if len(proof.Value) == 0 {
			return fmt.Errorf("verify_transaction_proof: %w", ErrTypePrefixMissing)
		}
		if proof.Value[0] != txType {
			return fmt.Errorf("verify_transaction_proof: %w", ErrUnknownTxType)
		}
		listRLP = proof.Value[1:]
	}

	headers, err := rlp.DecodeList(listRLP, layout.FieldCount)
	if err != nil {
		return fmt.Errorf("verify_transaction_proof: %w", err)
	}
	if len(headers) != layout.FieldCount {
		return fmt.Errorf("verify_transaction_proof: %w", ErrTransactionFieldCount)
	}

	if err := rlp.AssertEqU64("verify_transaction_proof nonce", listRLP, headers[layout.Nonce], partial.Nonce); err != nil {
		return fmt.Errorf("%w: %v", ErrNonceFieldMismatch, err)
	}
	if err := rlp.AssertEqU64("verify_transaction_proof gasLimit", listRLP, headers[layout.GasLimit], partial.GasLimit); err != nil {
		return fmt.Errorf("%w: %v", ErrGasLimitMismatch, err)
	}

	toHeader := headers[layout.To]
	if partial.To == nil {
		if toHeader.Kind != rlp.String || toHeader.Length != 0 {
			return fmt.Errorf("%w: expected contract creation (empty to)", ErrToMismatch)
		}
	} else {
		if err := rlp.AssertEqBytes("verify_transaction_proof to", listRLP, toHeader, partial.To.Bytes()); err != nil {
			return fmt.Errorf("%w: %v", ErrToMismatch, err)
		}
	}

	value := partial.Value.Bytes32()
	if err := rlp.AssertTrimmedUint256("verify_transaction_proof value", listRLP, headers[layout.Value], value); err != nil {
		return fmt.Errorf("%w: %v", ErrValueFieldMismatch, err)
	}

	if err := rlp.AssertEqBytes("verify_transaction_proof data", listRLP, headers[layout.Data], partial.Data); err != nil {
		return fmt.Errorf("%w: %v", ErrDataFieldMismatch, err)
	}

	return nil
}
