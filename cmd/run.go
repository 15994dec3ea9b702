package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/logger"
	"github.com/google/subcommands"
)

type runCmd struct {
	output string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "process the sample transactions against a savings account" }
func (*runCmd) Usage() string {
	return `fin run [-o <ledger.jsonl>]

  Routes three sample transactions through their payment channel and
  debits them from savings account 123456 opened with 1000. Debits larger
  than the balance are rejected with "Insufficient funds".

  This is what fin does when started without arguments.
`
}

func (p *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write the recorded ledger to this file (JSONL format).")
}

func (p *runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := &finance.App{Out: stdout, Currency: *currency, Log: logger.FromContext(ctx)}
	ledger, acc := app.Run()
	app.Log.Debug().Str("account", acc.Number()).Stringer("balance", acc.Balance()).Int("transactions", ledger.Len()).Msg("run complete")

	if p.output == "" {
		return subcommands.ExitSuccess
	}
	if err := encodeLedgerFile(p.output, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
