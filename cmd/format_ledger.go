package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type formatLedgerCmd struct {
	ledgerFile string
	output     string
}

func (*formatLedgerCmd) Name() string     { return "format-ledger" }
func (*formatLedgerCmd) Synopsis() string { return "formats a ledger file into a canonical form" }
func (*formatLedgerCmd) Usage() string {
	return `fin format-ledger -l <ledger.jsonl> [-o <output>]

  Rewrites every transaction of the ledger with keys in canonical order
  (id, date, amount, category). The file is formatted in place unless -o
  is given; "-o -" prints to stdout.
`
}

func (p *formatLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file to format (JSONL format).")
	f.StringVar(&p.output, "o", "", "Output file, '-' for stdout. Defaults to the ledger file.")
}

func (p *formatLedgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.ledgerFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -l is required.")
		return subcommands.ExitUsageError
	}

	// 1. Read the ledger
	ledger, err := decodeLedgerFile(p.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// 2. Write it back
	switch p.output {
	case "-":
		err = finance.EncodeLedger(stdout, ledger)
	case "":
		err = encodeLedgerFile(p.ledgerFile, ledger)
	default:
		err = encodeLedgerFile(p.output, ledger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.output != "-" {
		fmt.Fprintf(os.Stderr, "Ledger file '%s' has been formatted.\n", p.ledgerFile)
	}
	return subcommands.ExitSuccess
}
