package finance

import (
	"fmt"
	"io"
	"strings"
)

// Channel is the payment medium a transaction is routed through for display.
type Channel int

const (
	BankTransfer Channel = iota
	MobileMoney
	CryptoWallet
)

// Channels returns every known channel, in declaration order.
func Channels() []Channel { return []Channel{BankTransfer, MobileMoney, CryptoWallet} }

func (c Channel) String() string {
	switch c {
	case BankTransfer:
		return "Bank Transfer"
	case MobileMoney:
		return "Mobile Money"
	case CryptoWallet:
		return "Crypto Wallet"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ShortName returns the flag-friendly name of the channel.
func (c Channel) ShortName() string {
	switch c {
	case BankTransfer:
		return "bank"
	case MobileMoney:
		return "mobile"
	case CryptoWallet:
		return "crypto"
	default:
		return ""
	}
}

// ParseChannel parses either the label ("Mobile Money") or the short name
// ("mobile") of a channel. Matching is case-insensitive.
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels() {
		if strings.EqualFold(s, c.String()) || strings.EqualFold(s, c.ShortName()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel: %q", s)
}

// Describe returns the display line for tx, e.g.
// "Mobile Money: $150.00 for Groceries".
func (c Channel) Describe(tx Transaction, currency string) string {
	return fmt.Sprintf("%s: %s for %s", c, tx.Money(currency), tx.Category)
}

// Render writes the display line for tx to w.
func (c Channel) Render(w io.Writer, tx Transaction, currency string) {
	fmt.Fprintln(w, c.Describe(tx, currency))
}
