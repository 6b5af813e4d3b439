// Package fixtures loads JSON test vectors for the five domain verifiers
// out of on-disk files, using go-ethereum's hexutil for "0x"-prefixed
// quantity and byte-string decoding -- the same convention every
// JSON-RPC-adjacent repo in the retrieval pack uses for eth_getProof and
// block/receipt payloads.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/ethproof/ethproof/ethtypes"
	"github.com/ethproof/ethproof/mpt"
)

// ProofJSON is the on-disk shape of an mpt.Proof: the RLP-encoded nodes
// from root to the terminal leaf.
type ProofJSON struct {
	Nodes []hexutil.Bytes `json:"nodes"`
	Leaf  hexutil.Bytes   `json:"leaf,omitempty"`
}

// ToProof converts the decoded JSON fixture into an mpt.Proof.
func (p ProofJSON) ToProof() mpt.Proof {
	nodes := make([][]byte, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = []byte(n)
	}
	return mpt.Proof{Nodes: nodes, Leaf: []byte(p.Leaf)}
}

// ProofInputJSON is the on-disk shape of an mpt.ProofInput.
type ProofInputJSON struct {
	Key   hexutil.Bytes `json:"key"`
	Value hexutil.Bytes `json:"value"`
	Proof ProofJSON     `json:"proof"`
}

// ToProofInput converts the decoded JSON fixture into an mpt.ProofInput.
func (p ProofInputJSON) ToProofInput() mpt.ProofInput {
	return mpt.ProofInput{
		Key:   []byte(p.Key),
		Value: []byte(p.Value),
		Proof: p.Proof.ToProof(),
	}
}

// AccountFixture is one verify_account test vector: the claimed account
// fields, the proof eth_getProof returned for them, and the state root to
// verify against.
type AccountFixture struct {
	Address     ethtypes.Address `json:"address"`
	Nonce       uint64           `json:"nonce"`
	Balance     *uint256.Int     `json:"balance"`
	StorageHash ethtypes.Hash    `json:"storageHash"`
	CodeHash    ethtypes.Hash    `json:"codeHash"`
	StateRoot   ethtypes.Hash    `json:"stateRoot"`
	Proof       ProofInputJSON   `json:"proof"`
}

// Account converts the fixture's claimed fields into an ethtypes.Account.
func (f AccountFixture) Account() ethtypes.Account {
	return ethtypes.Account{
		Address:     f.Address,
		Nonce:       f.Nonce,
		Balance:     f.Balance,
		StorageHash: f.StorageHash,
		CodeHash:    f.CodeHash,
	}
}

// StorageFixture is one verify_storage_proof test vector.
type StorageFixture struct {
	Slot        ethtypes.Hash  `json:"slot"`
	Value       hexutil.Bytes  `json:"value"`
	StorageHash ethtypes.Hash  `json:"storageHash"`
	Proof       ProofInputJSON `json:"proof"`
}

// TransactionFixture is one verify_transaction_proof test vector.
type TransactionFixture struct {
	Index    uint64         `json:"index"`
	Type     uint8          `json:"type"`
	Nonce    uint64         `json:"nonce"`
	GasLimit uint64         `json:"gasLimit"`
	To       *ethtypes.Address `json:"to,omitempty"`
	Value    *uint256.Int   `json:"value"`
	Data     hexutil.Bytes  `json:"data"`
	V        hexutil.Bytes  `json:"v"`
	R        hexutil.Bytes  `json:"r"`
	S        hexutil.Bytes  `json:"s"`
	TxRoot   ethtypes.Hash  `json:"transactionsRoot"`
	Proof    ProofInputJSON `json:"proof"`
}

// Partial converts the fixture's claimed fields into an
// ethtypes.TransactionPartial.
func (f TransactionFixture) Partial() ethtypes.TransactionPartial {
	return ethtypes.TransactionPartial{
		Nonce:    f.Nonce,
		GasLimit: f.GasLimit,
		To:       f.To,
		Value:    f.Value,
		Data:     []byte(f.Data),
		V:        []byte(f.V),
		R:        []byte(f.R),
		S:        []byte(f.S),
	}
}

// ReceiptFixture is one verify_receipt_proof test vector.
type ReceiptFixture struct {
	BlockNumber       uint64         `json:"blockNumber"`
	Index             uint64         `json:"index"`
	Type              uint8          `json:"type"`
	StateRoot         *ethtypes.Hash `json:"stateRoot,omitempty"`
	Status            *uint8         `json:"status,omitempty"`
	CumulativeGasUsed uint64         `json:"cumulativeGasUsed"`
	LogsBloom         ethtypes.Bloom `json:"logsBloom"`
	ReceiptsRoot      ethtypes.Hash  `json:"receiptsRoot"`
	Proof             ProofInputJSON `json:"proof"`
}

// Partial converts the fixture's claimed fields into an
// ethtypes.ReceiptPartial.
func (f ReceiptFixture) Partial() ethtypes.ReceiptPartial {
	return ethtypes.ReceiptPartial{
		StateRoot:         f.StateRoot,
		Status:            f.Status,
		CumulativeGasUsed: f.CumulativeGasUsed,
		LogsBloom:         f.LogsBloom,
	}
}

// HeaderFixture is one verify_header test vector: the header's RLP
// encoding plus the fields claimed to be inside it.
type HeaderFixture struct {
	ChainID          uint64         `json:"chainId"`
	Number           uint64         `json:"number"`
	StateRoot        ethtypes.Hash  `json:"stateRoot"`
	TransactionsRoot ethtypes.Hash  `json:"transactionsRoot"`
	ReceiptsRoot     ethtypes.Hash  `json:"receiptsRoot"`
	WithdrawalsRoot  *ethtypes.Hash `json:"withdrawalsRoot,omitempty"`
	Hash             ethtypes.Hash  `json:"hash"`
	RLP              hexutil.Bytes  `json:"rlp"`
}

// Partial converts the fixture's claimed fields into an
// ethtypes.HeaderPartial.
func (f HeaderFixture) Partial() ethtypes.HeaderPartial {
	return ethtypes.HeaderPartial{
		Number:           f.Number,
		StateRoot:        f.StateRoot,
		TransactionsRoot: f.TransactionsRoot,
		ReceiptsRoot:     f.ReceiptsRoot,
		WithdrawalsRoot:  f.WithdrawalsRoot,
		Hash:             f.Hash,
	}
}

// LoadAccount reads and decodes an AccountFixture from path.
func LoadAccount(path string) (AccountFixture, error) {
	var f AccountFixture
	if err := load(path, &f); err != nil {
		return AccountFixture{}, err
	}
	return f, nil
}

// LoadStorage reads and decodes a StorageFixture from path.
func LoadStorage(path string) (StorageFixture, error) {
	var f StorageFixture
	if err := load(path, &f); err != nil {
		return StorageFixture{}, err
	}
	return f, nil
}

// LoadTransaction reads and decodes a TransactionFixture from path.
func LoadTransaction(path string) (TransactionFixture, error) {
	var f TransactionFixture
	if err := load(path, &f); err != nil {
		return TransactionFixture{}, err
	}
	return f, nil
}

// LoadReceipt reads and decodes a ReceiptFixture from path.
func LoadReceipt(path string) (ReceiptFixture, error) {
	var f ReceiptFixture
	if err := load(path, &f); err != nil {
		return ReceiptFixture{}, err
	}
	return f, nil
}

// LoadHeader reads and decodes a HeaderFixture from path.
func LoadHeader(path string) (HeaderFixture, error) {
	var f HeaderFixture
	if err := load(path, &f); err != nil {
		return HeaderFixture{}, err
	}
	return f, nil
}

func load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("fixtures: %s: %w", path, err)
	}
	return nil
}
