// Package finance models a small personal-finance ledger.
//
// Transactions are routed through a payment Channel (bank transfer, mobile
// money, crypto wallet) that renders them for display, then debited from an
// Account. A savings account rejects any debit larger than its balance with
// ErrInsufficientFunds. Every transaction seen is recorded in a Ledger,
// applied or not.
//
// Amounts are exact decimals (shopspring/decimal) and are displayed with the
// currency conventions of go-money. Ledgers can be persisted in JSONL format
// with EncodeLedger and read back with DecodeLedger.
//
// This package is the foundational logic of the `fin` command-line tool.
package finance
