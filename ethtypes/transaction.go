package ethtypes

import "github.com/holiman/uint256"

// Transaction type bytes, per EIP-2718.
const (
	LegacyTxType     = 0x00
	AccessListTxType = 0x01 // EIP-2930
	DynamicFeeTxType = 0x02 // EIP-1559
	BlobTxType       = 0x03 // EIP-4844
	SetCodeTxType    = 0x04 // EIP-7702
)

// TransactionPartial is the common subset of fields verify_transaction_proof
// checks across all five transaction types. V, R, and S are carried through
// uninterpreted -- this module never verifies a signature.
type TransactionPartial struct {
	Nonce    uint64
	GasLimit uint64
	To       *Address // nil for contract creation
	Value    *uint256.Int
	Data     []byte
	V, R, S  []byte
}

// TransactionPartialFieldLayout names, for one transaction type, the RLP
// list index of each semantic field TransactionPartial carries. The legacy
// type's list has no leading type byte and is indexed directly; typed
// transactions are indexed within the list that follows the single type
// byte prefix.
type TransactionPartialFieldLayout struct {
	FieldCount int
	Nonce      int
	GasLimit   int
	To         int
	Value      int
	Data       int
	V, R, S    int
}

// TxFieldLayouts maps each transaction type byte to its field layout,
// grounded in the respective EIP's RLP field ordering:
//
//	legacy (9):        nonce, gasPrice, gasLimit, to, value, data, v, r, s
//	EIP-2930 (11):     chainId, nonce, gasPrice, gasLimit, to, value, data,
//	                   accessList, yParity, r, s
//	EIP-1559 (12):     chainId, nonce, tipCap, feeCap, gasLimit, to, value,
//	                   data, accessList, yParity, r, s
//	EIP-4844 (14):     ...as EIP-1559, plus maxFeePerBlobGas,
//	                   blobVersionedHashes before yParity, r, s
//	EIP-7702 (13):     ...as EIP-1559, plus authorizationList before
//	                   yParity, r, s
var TxFieldLayouts = map[uint8]TransactionPartialFieldLayout{
	LegacyTxType: {
		FieldCount: 9,
		Nonce:      0, GasLimit: 2, To: 3, Value: 4, Data: 5,
		V: 6, R: 7, S: 8,
	},
	AccessListTxType: {
		FieldCount: 11,
		Nonce:      1, GasLimit: 3, To: 4, Value: 5, Data: 6,
		V: 8, R: 9, S: 10,
	},
	DynamicFeeTxType: {
		FieldCount: 12,
		Nonce:      1, GasLimit: 4, To: 5, Value: 6, Data: 7,
		V: 9, R: 10, S: 11,
	},
	BlobTxType: {
		FieldCount: 14,
		Nonce:      1, GasLimit: 4, To: 5, Value: 6, Data: 7,
		V: 11, R: 12, S: 13,
	},
	SetCodeTxType: {
		FieldCount: 13,
		Nonce:      1, GasLimit: 4, To: 5, Value: 6, Data: 7,
		V: 10, R: 11, S: 12,
	},
}
