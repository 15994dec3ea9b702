package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/finance"
	"github.com/etnz/finance/logger"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the sample ledger and closing balance as a table" }
func (*reportCmd) Usage() string {
	return `fin report [-raw]

  Processes the sample transactions silently, then displays the recorded
  ledger and the closing state of the account.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.raw, "raw", false, "Print the markdown source instead of rendering it.")
}

func (p *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app := &finance.App{Out: io.Discard, Currency: *currency, Log: logger.FromContext(ctx)}
	ledger, acc := app.Run()

	md := renderer.LedgerMarkdown(ledger, acc, *currency)
	if p.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
