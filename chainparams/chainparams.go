// Package chainparams holds the capacity constants and fork-block-number
// schedule the verifiers check proofs against. Unlike the ambient chain
// config style of block-number-vs-timestamp scheduling, every fork here is
// gated by block number, since the headers and receipts this module
// verifies are addressed by block number rather than wall-clock time.
package chainparams

const (
	MaxHeaderSize         = 709
	MaxHeaderFieldsCount  = 20
	MaxStorageDepth       = 6
	MaxStorageValueLength = 33
	MaxStorageLeafLength  = 69
	BloomFilterLength     = 256
	LogFieldsCount        = 3
	ReceiptFieldsCount    = 4

	MaxNodeLen            = 532
	MaxAccountProofDepth  = 64
	MaxTxReceiptDepth     = 32
	MaxLogsPerReceipt     = 256
)

// Forks names the block number at which each named fork activates on a
// given chain.
type Forks struct {
	Byzantium uint64
	London    uint64
	Shanghai  uint64
	Cancun    uint64
}

// Mainnet is the Ethereum mainnet fork-block-number schedule.
var Mainnet = Forks{
	Byzantium: 4_370_000,
	London:    12_965_000,
	Shanghai:  17_034_870,
	Cancun:    19_426_587,
}

// IsByzantium reports whether number is at or past the Byzantium fork.
func (f Forks) IsByzantium(number uint64) bool { return number >= f.Byzantium }

// IsLondon reports whether number is at or past the London fork.
func (f Forks) IsLondon(number uint64) bool { return number >= f.London }

// IsShanghai reports whether number is at or past the Shanghai fork.
func (f Forks) IsShanghai(number uint64) bool { return number >= f.Shanghai }

// IsCancun reports whether number is at or past the Cancun fork.
func (f Forks) IsCancun(number uint64) bool { return number >= f.Cancun }

// HeaderFieldsCount returns the number of RLP fields a canonical header
// carries at the given block number: 15 pre-London, 16 post-London (adds
// baseFeePerGas), 17 post-Shanghai (adds withdrawalsRoot), 20 post-Cancun
// (adds blobGasUsed, excessBlobGas, parentBeaconBlockRoot).
func (f Forks) HeaderFieldsCount(number uint64) int {
	switch {
	case f.IsCancun(number):
		return 20
	case f.IsShanghai(number):
		return 17
	case f.IsLondon(number):
		return 16
	default:
		return 15
	}
}

// Schedule maps a chain ID to its fork schedule, defaulting unregistered
// chains to Mainnet's. This is the generalized home for
// get_header_fields_count(chain_id, number): register a non-mainnet chain's
// schedule here and HeaderFieldsCount below will honor it.
type Schedule struct {
	byChainID map[uint64]Forks
}

// NewSchedule builds a Schedule pre-populated with the mainnet entry.
func NewSchedule() *Schedule {
	return &Schedule{byChainID: map[uint64]Forks{1: Mainnet}}
}

// Register associates chainID with a fork schedule, overriding any
// previous registration (including the default mainnet entry for chainID 1).
func (s *Schedule) Register(chainID uint64, forks Forks) {
	s.byChainID[chainID] = forks
}

// ForksFor returns the schedule for chainID, defaulting to Mainnet if the
// chain has not been registered.
func (s *Schedule) ForksFor(chainID uint64) Forks {
	if f, ok := s.byChainID[chainID]; ok {
		return f
	}
	return Mainnet
}

// HeaderFieldsCount is the generalized get_header_fields_count(chain_id,
// number) spec.md §6.1 calls for.
func (s *Schedule) HeaderFieldsCount(chainID, number uint64) int {
	return s.ForksFor(chainID).HeaderFieldsCount(number)
}

// DefaultSchedule is the package-level schedule verifiers consult unless
// given one explicitly.
var DefaultSchedule = NewSchedule()
