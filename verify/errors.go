// Package verify implements the five domain verifier entry points: account,
// storage, transaction, receipt, and header proofs against their respective
// Merkle roots. Each wraps mpt.VerifyMerkleProof with the key/value
// derivation rules for its record type, and asserts any fields the proof's
// value does not itself carry (block hash, header field counts) directly
// against the caller-supplied partial.
package verify

import "errors"

// Sentinel errors carrying the stable diagnostic labels spec.md §7 calls
// for. Callers that need positional context (which node, which field) get
// it via fmt.Errorf("...: %w", ErrX) at the call site.
var (
	ErrStateRootMismatch     = errors.New("State Root")
	ErrBlockHashMismatch     = errors.New("Block Hash does not Match")
	ErrStatusMissing         = errors.New("Status is missing")
	ErrStateRootMissing      = errors.New("State Root is missing")
	ErrWithdrawalsRoot       = errors.New("Withdrawals Root")
	ErrTransactionsRoot      = errors.New("Transactions Root")
	ErrReceiptsRoot          = errors.New("Receipts Root")
	ErrHeaderFieldCount      = errors.New("Invalid number of fields in header RLP")
	ErrReceiptFieldCount     = errors.New("Invalid number of fields in receipt RLP")
	ErrTransactionFieldCount = errors.New("Invalid number of fields in transaction RLP")
	ErrUnknownTxType         = errors.New("Unknown transaction type")
	ErrAccountFieldCount     = errors.New("Invalid number of fields in account RLP")
	ErrBalanceMismatch       = errors.New("Account Balance does not Match")
	ErrNonceMismatch         = errors.New("Account Nonce does not Match")
	ErrCodeHashMismatch      = errors.New("Account CodeHash does not Match")
	ErrStorageHashMismatch   = errors.New("Account StorageHash does not Match")
	ErrNonceFieldMismatch    = errors.New("Transaction Nonce does not Match")
	ErrGasLimitMismatch      = errors.New("Transaction GasLimit does not Match")
	ErrToMismatch            = errors.New("Transaction To does not Match")
	ErrValueFieldMismatch    = errors.New("Transaction Value does not Match")
	ErrDataFieldMismatch     = errors.New("Transaction Data does not Match")
	ErrTypePrefixMissing     = errors.New("Typed transaction is missing its type-byte prefix")
)
