package finance

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// DecodeLedger decodes transactions from a stream of JSONL data and returns
// them as a Ledger, in stream order.
//
// Blank and "null" lines are skipped. Fields are not validated, so an empty
// object decodes to a zero Transaction.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 || string(lineBytes) == "null" {
			continue
		}

		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction on line %d %q: %w", line, string(lineBytes), err)
		}
		ledger.Append(tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
// Amounts are written as JSON numbers.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes every transaction of the ledger to w in JSONL format,
// in ledger order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.All() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
