package finance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Default scenario parameters.
const (
	DefaultAccountNumber = "123456"
	DefaultBalance       = 1000
)

// Step routes one transaction through a channel.
type Step struct {
	Channel     Channel
	Transaction Transaction
}

// DefaultSteps returns the three transactions of the default scenario, dated now.
func DefaultSteps(now time.Time) []Step {
	return []Step{
		{MobileMoney, NewTransaction(1, now, decimal.NewFromInt(150), "Groceries")},
		{BankTransfer, NewTransaction(2, now, decimal.NewFromInt(200), "Utilities")},
		{CryptoWallet, NewTransaction(3, now, decimal.NewFromInt(900), "Entertainment")},
	}
}

// App runs transactions through their channel and an account, printing
// every step to Out.
type App struct {
	Out      io.Writer      // Out receives the ledger output, os.Stdout if nil.
	Currency string         // Currency used for display, DefaultCurrency if empty.
	Log      zerolog.Logger // Log receives diagnostics.
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) currency() string {
	if a.Currency == "" {
		return DefaultCurrency
	}
	return a.Currency
}

// Process runs every step in order: render the transaction through its
// channel, apply it to acc, then record it in the returned ledger.
// Rejected transactions are reported and still recorded.
func (a *App) Process(acc *Account, steps []Step) *Ledger {
	w, cur := a.out(), a.currency()
	ledger := NewLedger()
	for _, s := range steps {
		s.Channel.Render(w, s.Transaction, cur)

		outcome, err := acc.Apply(s.Transaction)
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			fmt.Fprintln(w, "Insufficient funds")
		case err != nil:
			// Apply has no other failure today.
			fmt.Fprintln(w, err)
		default:
			fmt.Fprintf(w, "New balance: %s\n", M(outcome.Balance, cur))
		}
		a.Log.Debug().
			Int("tx", s.Transaction.ID).
			Str("channel", s.Channel.ShortName()).
			Stringer("amount", s.Transaction.Amount).
			Stringer("balance", outcome.Balance).
			Stringer("status", outcome.Status).
			Msg("transaction processed")

		ledger.Append(s.Transaction)
	}
	return ledger
}

// Run processes the default scenario against a fresh savings account and
// returns the recorded ledger and the account.
func (a *App) Run() (*Ledger, *Account) {
	acc := NewSavingsAccount(DefaultAccountNumber, decimal.NewFromInt(DefaultBalance))
	ledger := a.Process(acc, DefaultSteps(time.Now()))
	return ledger, acc
}
