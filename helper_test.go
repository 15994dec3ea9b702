package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// day is a fixed transaction date for tests.
var day = time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)

// D is a helper for test to create a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// tx is a helper for test to create a transaction dated day.
func tx(id int, amount float64, category string) Transaction {
	return NewTransaction(id, day, D(amount), category)
}
