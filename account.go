package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds is returned when a savings account is asked to debit
// more than its balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AccountKind selects the debit rule of an Account.
type AccountKind int

const (
	// Standard accounts debit unconditionally and may go negative.
	Standard AccountKind = iota
	// Savings accounts reject any debit larger than the balance.
	Savings
)

func (k AccountKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Savings:
		return "savings"
	default:
		return "unknown"
	}
}

// Status is the result of applying a transaction to an account.
type Status int

const (
	Applied Status = iota
	Rejected
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome reports what Apply did. Balance is the account balance after the call.
type Outcome struct {
	Status  Status
	Balance decimal.Decimal
}

// Account holds a single balance. Only Apply mutates it.
type Account struct {
	number  string
	balance decimal.Decimal
	kind    AccountKind
}

// NewAccount creates a Standard account. The initial balance is not validated.
func NewAccount(number string, initial decimal.Decimal) *Account {
	return &Account{number: number, balance: initial, kind: Standard}
}

// NewSavingsAccount creates a Savings account. The initial balance is not
// validated, a negative one is kept as is.
func NewSavingsAccount(number string, initial decimal.Decimal) *Account {
	return &Account{number: number, balance: initial, kind: Savings}
}

func (a *Account) Number() string           { return a.number }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Kind() AccountKind        { return a.kind }

// debit is the debit rule shared by every kind.
func debit(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Sub(amount)
}

// Apply debits tx.Amount from the account.
//
// A Savings account rejects the transaction when its amount is strictly
// greater than the balance: the balance is left unchanged and the returned
// error wraps ErrInsufficientFunds. An amount equal to the balance is
// accepted and leaves a zero balance.
func (a *Account) Apply(tx Transaction) (Outcome, error) {
	if a.kind == Savings && tx.Amount.GreaterThan(a.balance) {
		return Outcome{Status: Rejected, Balance: a.balance},
			fmt.Errorf("account %s: cannot debit %s from balance %s: %w", a.number, tx.Amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = debit(a.balance, tx.Amount)
	return Outcome{Status: Applied, Balance: a.balance}, nil
}
