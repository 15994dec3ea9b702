// Package renderer renders ledgers as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/finance"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// DateFormat is the layout used for transaction dates in reports.
const DateFormat = "2006-01-02 15:04"

// Ledger is the view of a ledger consumed by the templates.
type Ledger struct {
	Rows    []Row
	Total   string
	Account *Account
}

// Row is one transaction line.
type Row struct {
	ID       int
	Date     string
	Amount   string
	Category string
}

// Account is the closing state of the account the ledger was applied to.
type Account struct {
	Number  string
	Kind    string
	Balance string
}

// NewLedger builds the view of l in currency. acc may be nil.
func NewLedger(l *finance.Ledger, acc *finance.Account, currency string) *Ledger {
	v := &Ledger{Total: l.Total(currency).String()}
	for _, tx := range l.All() {
		v.Rows = append(v.Rows, Row{
			ID:       tx.ID,
			Date:     tx.Date.Format(DateFormat),
			Amount:   tx.Money(currency).String(),
			Category: strings.ReplaceAll(tx.Category, "|", `\|`),
		})
	}
	if acc != nil {
		v.Account = &Account{
			Number:  acc.Number(),
			Kind:    acc.Kind().String(),
			Balance: finance.M(acc.Balance(), currency).String(),
		}
	}
	return v
}

// LedgerMarkdown renders the ledger, and the account when not nil, as markdown.
func LedgerMarkdown(l *finance.Ledger, acc *finance.Account, currency string) string {
	partials := map[string]string{
		"ledger_title":        "ledger_title.md",
		"ledger_transactions": "ledger_transactions.md",
		"ledger_account":      "ledger_account.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, NewLedger(l, acc, currency))
}

func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
