package finance

import "testing"

func TestLedger_Append(t *testing.T) {
	ledger := NewLedger()
	if ledger.Len() != 0 {
		t.Fatalf("new ledger Len() = %d, want 0", ledger.Len())
	}

	tx1, tx2, tx3 := tx(1, 150, "Groceries"), tx(2, 200, "Utilities"), tx(3, 900, "Entertainment")
	ledger.Append(tx1)
	ledger.Append(tx2, tx3)

	want := []Transaction{tx1, tx2, tx3}
	if ledger.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", ledger.Len(), len(want))
	}
	for i, got := range ledger.All() {
		if !got.Equal(want[i]) {
			t.Errorf("All()[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestLedger_TransactionsIsACopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(tx(1, 150, "Groceries"))

	txs := ledger.Transactions()
	txs[0].Category = "changed"

	for _, got := range ledger.All() {
		if got.Category != "Groceries" {
			t.Errorf("ledger was modified through Transactions(): %v", got)
		}
	}
}

func TestLedger_Total(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(tx(1, 150, ""), tx(2, 200, ""), tx(3, 900, ""))
	if got, want := ledger.Total("USD"), M(1250, "USD"); !got.Equal(want) {
		t.Errorf("Total() = %s, want %s", got, want)
	}
	if got := NewLedger().Total("USD"); !got.Equal(M(0, "USD")) {
		t.Errorf("empty Total() = %s, want zero", got)
	}
}
