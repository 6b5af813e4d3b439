// Package ethtypes defines the Ethereum entity structs the verifiers check
// proofs against: accounts, block headers, transactions, and receipts. Each
// type is a "partial" view carrying only the fields a verifier can assert
// against a proof's value bytes, not a full execution-ready representation.
package ethtypes

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

const (
	HashLength  = 32
	AddrLength  = 20
	BloomLength = 256
	NonceLength = 8
)

// Hash represents a 32-byte Keccak256 hash.
type Hash [HashLength]byte

// Address represents the 20-byte address of an Ethereum account.
type Address [AddrLength]byte

// Bloom represents a 2048-bit bloom filter.
type Bloom [BloomLength]byte

// BlockNonce is the 8-byte block nonce.
type BlockNonce [NonceLength]byte

func (b Bloom) Bytes() []byte  { return b[:] }
func (b Bloom) Hex() string    { return fmt.Sprintf("0x%x", b[:]) }
func (b Bloom) String() string { return b.Hex() }

func (b Bloom) MarshalJSON() ([]byte, error) { return json.Marshal(b.Hex()) }

func (b *Bloom) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := decodeHex(s)
	if err != nil {
		return fmt.Errorf("ethtypes: Bloom: %w", err)
	}
	if len(raw) != BloomLength {
		return fmt.Errorf("ethtypes: Bloom: expected %d bytes, got %d", BloomLength, len(raw))
	}
	copy(b[:], raw)
	return nil
}

// BytesToHash converts b to a Hash, left-padding if shorter than 32 bytes
// and taking only the trailing 32 bytes if longer.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

func (h Hash) Bytes() []byte  { return h[:] }
func (h Hash) Hex() string    { return fmt.Sprintf("0x%x", h[:]) }
func (h Hash) String() string { return h.Hex() }
func (h Hash) IsZero() bool   { return h == Hash{} }

func (h Hash) MarshalJSON() ([]byte, error) { return json.Marshal(h.Hex()) }

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := decodeHex(s)
	if err != nil {
		return fmt.Errorf("ethtypes: Hash: %w", err)
	}
	if len(b) != HashLength {
		return fmt.Errorf("ethtypes: Hash: expected %d bytes, got %d", HashLength, len(b))
	}
	copy(h[:], b)
	return nil
}

// BytesToAddress converts b to an Address, left-padding if shorter than 20
// bytes and taking only the trailing 20 bytes if longer.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddrLength {
		b = b[len(b)-AddrLength:]
	}
	copy(a[AddrLength-len(b):], b)
	return a
}

func (a Address) Bytes() []byte  { return a[:] }
func (a Address) Hex() string    { return fmt.Sprintf("0x%x", a[:]) }
func (a Address) String() string { return a.Hex() }
func (a Address) IsZero() bool   { return a == Address{} }

func (a Address) MarshalJSON() ([]byte, error) { return json.Marshal(a.Hex()) }

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := decodeHex(s)
	if err != nil {
		return fmt.Errorf("ethtypes: Address: %w", err)
	}
	if len(b) != AddrLength {
		return fmt.Errorf("ethtypes: Address: expected %d bytes, got %d", AddrLength, len(b))
	}
	copy(a[:], b)
	return nil
}

// HexToHash decodes a hex string (optional 0x prefix) into a Hash.
func HexToHash(s string) Hash { return BytesToHash(fromHex(s)) }

// HexToAddress decodes a hex string (optional 0x prefix) into an Address.
func HexToAddress(s string) Address { return BytesToAddress(fromHex(s)) }

func fromHex(s string) []byte {
	b, _ := decodeHex(s)
	return b
}

// decodeHex strictly decodes a "0x"-prefixed (or bare) hex string, unlike
// fromHex, which is only used for known-good constants.
func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

var (
	// EmptyRootHash is keccak256(rlp("")) -- the root of an empty MPT.
	EmptyRootHash = HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

	// EmptyCodeHash is keccak256("") -- the code hash of an externally
	// owned account.
	EmptyCodeHash = HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

	// EmptyUncleHash is keccak256(rlp([])) -- the uncle-list hash of a
	// block with no uncles.
	EmptyUncleHash = HexToHash("1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347")
)

// Account is the state-trie account record verify_account checks a proof
// against: (address, nonce, balance, storage_hash, code_hash).
type Account struct {
	Address     Address
	Nonce       uint64
	Balance     *uint256.Int
	StorageHash Hash
	CodeHash    Hash
}

// NewAccount returns an Account with zero balance and empty storage/code,
// matching a freshly created externally-owned account.
func NewAccount(addr Address) Account {
	return Account{
		Address:     addr,
		Balance:     uint256.NewInt(0),
		StorageHash: EmptyRootHash,
		CodeHash:    EmptyCodeHash,
	}
}
