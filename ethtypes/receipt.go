package ethtypes

import "github.com/ethproof/ethproof/rlp"

// ReceiptPartial carries the fields verify_receipt_proof checks against a
// receipt's RLP encoding: (status_or_stateRoot, cumulativeGasUsed,
// logsBloom, logs[]). Exactly one of StateRoot/Status is populated,
// depending on whether the enclosing block predates Byzantium.
type ReceiptPartial struct {
	StateRoot         *Hash  // present pre-Byzantium
	Status            *uint8 // present post-Byzantium
	CumulativeGasUsed uint64
	LogsBloom         Bloom
}

// RlpList is the decoded outer list of a receipt's RLP encoding, returned
// by verify_receipt_proof so callers can extract individual logs afterward
// without re-decoding the whole receipt.
type RlpList = []rlp.RlpHeader
