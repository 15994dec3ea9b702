package finance

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single debit request recorded by the ledger.
//
// A positive Amount is a debit against an account. Fields are not validated.
type Transaction struct {
	ID       int             // ID is not checked for uniqueness.
	Date     time.Time       // Date is the wall-clock time at creation.
	Amount   decimal.Decimal // Amount in the major unit of the display currency.
	Category string          // Category is a free-text label.
}

// NewTransaction creates a new Transaction.
func NewTransaction(id int, date time.Time, amount decimal.Decimal, category string) Transaction {
	return Transaction{ID: id, Date: date, Amount: amount, Category: category}
}

// Money returns the transaction amount in currency.
func (t Transaction) Money(currency string) Money { return M(t.Amount, currency) }

// Equal reports whether both transactions carry the same fields.
// Dates are compared as instants.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Date.Equal(o.Date) && t.Amount.Equal(o.Amount) && t.Category == o.Category
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in a fixed order: id, date, amount, category.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Optional("category", t.Category)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       int             `json:"id"`
		Date     time.Time       `json:"date"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = NewTransaction(temp.ID, temp.Date, temp.Amount, temp.Category)
	return nil
}
