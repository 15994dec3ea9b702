package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/logger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type replayCmd struct {
	ledgerFile string
	account    string
	balance    string
	channel    string
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "apply a JSONL ledger to a fresh savings account" }
func (*replayCmd) Usage() string {
	return `fin replay -l <ledger.jsonl> [-balance <amount>] [-channel <channel>]

  Decodes the ledger file and routes every transaction, in file order,
  through one payment channel and into a new savings account.
`
}

func (p *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file to replay (JSONL format).")
	f.StringVar(&p.account, "account", finance.DefaultAccountNumber, "Number of the savings account.")
	f.StringVar(&p.balance, "balance", "1000", "Opening balance of the savings account.")
	f.StringVar(&p.channel, "channel", "bank", "Payment channel (bank, mobile, crypto).")
}

func (p *replayCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.ledgerFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -l is required.")
		return subcommands.ExitUsageError
	}
	channel, err := finance.ParseChannel(p.channel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	balance, err := decimal.NewFromString(p.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance %q: %v\n", p.balance, err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedgerFile(p.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	steps := make([]finance.Step, 0, ledger.Len())
	for _, tx := range ledger.All() {
		steps = append(steps, finance.Step{Channel: channel, Transaction: tx})
	}

	app := &finance.App{Out: stdout, Currency: *currency, Log: logger.FromContext(ctx)}
	app.Process(finance.NewSavingsAccount(p.account, balance), steps)
	return subcommands.ExitSuccess
}
