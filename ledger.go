package finance

import (
	"iter"
	"slices"
)

// Ledger is the ordered list of every transaction seen by the application,
// whether or not it was applied to an account.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// All returns an iterator over the transactions in insertion order.
func (l *Ledger) All() iter.Seq2[int, Transaction] {
	return slices.All(l.transactions)
}

// Transactions returns a copy of the transactions in insertion order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Total returns the sum of every transaction amount in currency.
func (l *Ledger) Total(currency string) Money {
	total := M(0, currency)
	for _, tx := range l.transactions {
		total = Money{value: total.value.Add(tx.Amount), cur: currency}
	}
	return total
}
