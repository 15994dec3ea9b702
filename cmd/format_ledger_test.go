package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// Helper function to create a temporary ledger file
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	tmpfile, err := os.Create(filepath.Join(tmp, "test_ledger.jsonl"))
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer tmpfile.Close()

	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	return tmpfile.Name()
}

const (
	unformattedLedger = `{"category":"Groceries","amount":"150", "id":1,"date":"2025-08-01T09:30:00Z"}

{"date":"2025-08-01T09:30:00Z","id":2,"amount":200.50}
`
	formattedLedger = `{"id":1,"date":"2025-08-01T09:30:00Z","amount":150,"category":"Groceries"}
{"id":2,"date":"2025-08-01T09:30:00Z","amount":200.5}
`
)

// TestFormatLedgerInPlace tests the default behavior (rewrites the ledger file)
func TestFormatLedgerInPlace(t *testing.T) {
	// Arrange
	tempLedgerFile := createTempLedger(t, unformattedLedger)

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("l", tempLedgerFile)

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempLedgerFile)
	if err != nil {
		t.Fatalf("Failed to read formatted ledger file: %v", err)
	}
	if string(gotContent) != formattedLedger {
		t.Errorf("In place output mismatch.\nGot:\n%s\nWant:\n%s", gotContent, formattedLedger)
	}
}

// TestFormatLedgerToFileOutput tests writing to a specified output file
func TestFormatLedgerToFileOutput(t *testing.T) {
	// Arrange
	tempInputLedger := createTempLedger(t, unformattedLedger)
	tempOutputFile := filepath.Join(t.TempDir(), "test_output.jsonl")

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("l", tempInputLedger)
	f.Set("o", tempOutputFile)

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}

	gotContent, err := os.ReadFile(tempOutputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(gotContent) != formattedLedger {
		t.Errorf("File output mismatch.\nGot:\n%s\nWant:\n%s", gotContent, formattedLedger)
	}

	// The input is left untouched.
	original, _ := os.ReadFile(tempInputLedger)
	if string(original) != unformattedLedger {
		t.Errorf("input ledger was modified:\n%s", original)
	}
}

// TestFormatLedgerToStdoutOutput tests writing to stdout
func TestFormatLedgerToStdoutOutput(t *testing.T) {
	// Arrange
	tempInputLedger := createTempLedger(t, unformattedLedger)
	out := captureStdout(t)

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("l", tempInputLedger)
	f.Set("o", "-")

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
	if strings.TrimSpace(out.String()) != strings.TrimSpace(formattedLedger) {
		t.Errorf("Stdout output mismatch.\nGot:\n%s\nWant:\n%s", out.String(), formattedLedger)
	}
}

func TestFormatLedgerInvalid(t *testing.T) {
	tempInputLedger := createTempLedger(t, "not json\n")

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("l", tempInputLedger)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}
