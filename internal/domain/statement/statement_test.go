package statement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t EntryType, amount int64, at time.Time) Entry {
	return Entry{ID: uuid.New(), Date: at, Type: t, Amount: amount}
}

func TestRunningBalanceFold(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		entry(EntrySale, 10000, base),                 // sale 100
		entry(EntryPayment, 4000, base.AddDate(0, 0, 1)), // payment 40
		entry(EntrySale, 2500, base.AddDate(0, 0, 2)),    // sale 25
	}

	rows := Compute(entries)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(10000), rows[0].Balance)
	assert.Equal(t, int64(6000), rows[1].Balance)
	assert.Equal(t, int64(8500), rows[2].Balance)

	assert.Equal(t, int64(10000), rows[0].Debit)
	assert.Equal(t, int64(4000), rows[1].Credit)
	assert.Equal(t, int64(8500), ClosingBalance(rows))
}

func TestFoldIsOrderDependent(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sale100 := entry(EntrySale, 10000, base)
	payment40 := entry(EntryPayment, 4000, base.AddDate(0, 0, 1))
	sale25 := entry(EntrySale, 2500, base.AddDate(0, 0, 2))

	ordered := ComputeUnsorted([]Entry{sale100, payment40, sale25})
	reordered := ComputeUnsorted([]Entry{payment40, sale100, sale25})

	// Closing balance agrees, but intermediate balances do not.
	assert.Equal(t, ClosingBalance(ordered), ClosingBalance(reordered))
	assert.Equal(t, int64(10000), ordered[0].Balance)
	assert.Equal(t, int64(-4000), reordered[0].Balance)
}

func TestComputeSortsDefensively(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sale100 := entry(EntrySale, 10000, base)
	payment40 := entry(EntryPayment, 4000, base.AddDate(0, 0, 1))
	sale25 := entry(EntrySale, 2500, base.AddDate(0, 0, 2))

	// Scrambled input still folds in date order.
	rows := Compute([]Entry{sale25, payment40, sale100})
	require.Len(t, rows, 3)
	assert.Equal(t, int64(10000), rows[0].Balance)
	assert.Equal(t, int64(6000), rows[1].Balance)
	assert.Equal(t, int64(8500), rows[2].Balance)
}

func TestComputeStableOnEqualDates(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first := entry(EntrySale, 1000, at)
	second := entry(EntryPayment, 1000, at)

	rows := Compute([]Entry{first, second})
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
	assert.Equal(t, int64(0), ClosingBalance(rows))
}

func TestEmptyStatement(t *testing.T) {
	rows := Compute(nil)
	assert.Empty(t, rows)
	assert.Equal(t, int64(0), ClosingBalance(rows))
}
