package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/finance"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line of fin for shell completion.
func Completion() *complete.Command {
	channels := predict.Set{}
	for _, c := range finance.Channels() {
		channels = append(channels, c.ShortName())
	}
	ledgers := complete.PredictFunc(predictLedgerFiles)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"USD", "EUR", "GBP"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"run":    {Flags: map[string]complete.Predictor{"o": ledgers}},
			"report": {},
			"replay": {Flags: map[string]complete.Predictor{
				"l":       ledgers,
				"channel": channels,
			}},
			"format-ledger": {Flags: map[string]complete.Predictor{
				"l": ledgers,
				"o": ledgers,
			}},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
	}
}

// predictLedgerFiles returns the .jsonl files and the directories matching prefix.
func predictLedgerFiles(prefix string) []string {
	matches, _ := filepath.Glob(prefix + "*")
	var files []string
	for _, m := range matches {
		if strings.HasSuffix(m, ".jsonl") || isDir(m) {
			files = append(files, m)
		}
	}
	return files
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}
