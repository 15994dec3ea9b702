// Package cmd implements the fin CLI application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "ledger")
	c.Register(&reportCmd{}, "ledger")
	c.Register(&replayCmd{}, "ledger")
	c.Register(&formatLedgerCmd{}, "ledger")
}

// Default executes the default scenario, as when fin is started without arguments.
func Default(ctx context.Context) subcommands.ExitStatus {
	r := &runCmd{}
	f := flag.NewFlagSet(r.Name(), flag.ContinueOnError)
	r.SetFlags(f)
	return r.Execute(ctx, f)
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", finance.DefaultCurrency, "ISO 4217 code of the display currency")
var Verbose = flag.Bool("v", false, "log diagnostics to stderr")

// stdout receives the ledger output. Tests replace it.
var stdout io.Writer = os.Stdout

// encodeLedgerFile writes the ledger in JSONL format to filename, replacing any previous content.
func encodeLedgerFile(filename string, ledger *finance.Ledger) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	defer f.Close()

	if err := finance.EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", filename, err)
	}
	return nil
}

// decodeLedgerFile reads a JSONL ledger from filename.
func decodeLedgerFile(filename string) (*finance.Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := finance.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger file %q: %w", filename, err)
	}
	return ledger, nil
}

// printMarkdown renders md for the terminal, or prints it as is if rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
