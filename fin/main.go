// Command fin processes a small personal-finance ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/etnz/finance/logger"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := logger.WithContext(context.Background(), logger.New(os.Stderr, *cmd.Verbose))

	if flag.NArg() == 0 {
		os.Exit(int(cmd.Default(ctx)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
