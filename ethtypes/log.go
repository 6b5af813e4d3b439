package ethtypes

import (
	"fmt"

	"github.com/ethproof/ethproof/chainparams"
	"github.com/ethproof/ethproof/rlp"
)

// Log is a single contract log event, as carried in a receipt's logs list:
// the emitting address, its indexed topics, and the unindexed data.
type Log struct {
	Address Address
	Topics  []Hash
	Data    []byte
}

// ExtractLog decodes the logIndex'th entry of a receipt's logs list (the
// 4th, index-3, element of the receipt's outer RLP list) out of
// receiptRLP, given the outer list already decoded into list. Every header
// involved stays relative to receiptRLP throughout, so no sub-slicing or
// prefix-length bookkeeping is needed.
func ExtractLog(receiptRLP []byte, list RlpList, logIndex int) (Log, error) {
	const logsFieldIndex = 3
	if len(list) != chainparams.ReceiptFieldsCount {
		return Log{}, fmt.Errorf("extract_log: expected %d receipt fields, got %d", chainparams.ReceiptFieldsCount, len(list))
	}

	logHeaders, err := rlp.DecodeListAt(receiptRLP, list[logsFieldIndex], chainparams.MaxLogsPerReceipt)
	if err != nil {
		return Log{}, fmt.Errorf("extract_log: %w", err)
	}
	if logIndex < 0 || logIndex >= len(logHeaders) {
		return Log{}, fmt.Errorf("extract_log: index %d out of range (%d logs)", logIndex, len(logHeaders))
	}

	fields, err := rlp.DecodeListAt(receiptRLP, logHeaders[logIndex], 3)
	if err != nil {
		return Log{}, fmt.Errorf("extract_log: %w", err)
	}
	if len(fields) != 3 {
		return Log{}, fmt.Errorf("extract_log: expected 3 log fields, got %d", len(fields))
	}

	addrField := fields[0]
	addr := BytesToAddress(receiptRLP[addrField.Offset : addrField.Offset+addrField.Length])

	topicHeaders, err := rlp.DecodeListAt(receiptRLP, fields[1], 8)
	if err != nil {
		return Log{}, fmt.Errorf("extract_log: %w", err)
	}
	topics := make([]Hash, len(topicHeaders))
	for i, th := range topicHeaders {
		topics[i] = BytesToHash(receiptRLP[th.Offset : th.Offset+th.Length])
	}

	dataField := fields[2]
	data := append([]byte(nil), receiptRLP[dataField.Offset:dataField.Offset+dataField.Length]...)

	return Log{Address: addr, Topics: topics, Data: data}, nil
}
