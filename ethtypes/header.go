package ethtypes

// HeaderPartial carries the block header fields verify_header checks
// against a header's RLP encoding: the block number and the roots that
// anchor the other four verifiers (state, transactions, receipts, and,
// post-Shanghai, withdrawals), plus the header's own claimed hash.
type HeaderPartial struct {
	Number           uint64
	StateRoot        Hash
	TransactionsRoot Hash
	ReceiptsRoot     Hash
	WithdrawalsRoot  *Hash // present only post-Shanghai
	Hash             Hash
}
