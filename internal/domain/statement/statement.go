// Package statement computes a customer's chronological ledger: sales are
// debits, payments are credits, and every row carries the running balance
// after that entry.
package statement

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// EntryType distinguishes debits from credits.
type EntryType string

const (
	EntrySale    EntryType = "sale"
	EntryPayment EntryType = "payment"
)

// Entry is one raw ledger event. Amount is in pesewas and always positive;
// the type decides its sign in the fold.
type Entry struct {
	ID          uuid.UUID
	Date        time.Time
	Type        EntryType
	Description string
	Amount      int64
}

// Row is an entry with its fold results attached.
type Row struct {
	Entry
	Debit   int64
	Credit  int64
	Balance int64
}

// Compute sorts entries by date (stable, so same-timestamp entries keep
// their input order) and folds the running balance. The fold itself is
// order-dependent, which is exactly why the sort is not left to the caller.
func Compute(entries []Entry) []Row {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return fold(sorted)
}

// ComputeUnsorted folds entries exactly in the order given. Kept for callers
// that already guarantee ordering, and for demonstrating the fold's order
// dependence.
func ComputeUnsorted(entries []Entry) []Row {
	return fold(entries)
}

func fold(entries []Entry) []Row {
	rows := make([]Row, 0, len(entries))
	var balance int64
	for _, e := range entries {
		row := Row{Entry: e}
		if e.Type == EntrySale {
			row.Debit = e.Amount
			balance += e.Amount
		} else {
			row.Credit = e.Amount
			balance -= e.Amount
		}
		row.Balance = balance
		rows = append(rows, row)
	}
	return rows
}

// ClosingBalance returns the balance after the last row, or zero for an
// empty statement.
func ClosingBalance(rows []Row) int64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[len(rows)-1].Balance
}
