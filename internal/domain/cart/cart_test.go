package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncrementsUpToAvailability(t *testing.T) {
	item := Item{ID: uuid.New(), Name: "Frozen Chicken 10kg", Available: 2, UnitPrice: 500}
	c := New()

	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].Quantity)

	// A third add is past the cap: error, no state change.
	err := c.Add(item)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAddOutOfStockNeverInsertsLine(t *testing.T) {
	c := New()
	err := c.Add(Item{ID: uuid.New(), Name: "Mackerel Carton", Available: 0, UnitPrice: 900})
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, c.IsEmpty())
}

func TestAddPrependsNewLines(t *testing.T) {
	first := Item{ID: uuid.New(), Name: "Rice 25kg", Available: 5, UnitPrice: 1200}
	second := Item{ID: uuid.New(), Name: "Oil 5L", Available: 5, UnitPrice: 800}
	c := New()

	require.NoError(t, c.Add(first))
	require.NoError(t, c.Add(second))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Oil 5L", lines[0].Name)
	assert.Equal(t, "Rice 25kg", lines[1].Name)
}

func TestRemoveDeletesExactlyOneLine(t *testing.T) {
	a := Item{ID: uuid.New(), Name: "A", Available: 3, UnitPrice: 100}
	b := Item{ID: uuid.New(), Name: "B", Available: 3, UnitPrice: 200}
	cItem := Item{ID: uuid.New(), Name: "C", Available: 3, UnitPrice: 300}

	c := New()
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	require.NoError(t, c.Add(cItem))

	require.NoError(t, c.Remove(b.ID))

	lines := c.Lines()
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.NotEqual(t, b.ID, l.ItemID)
	}

	assert.ErrorIs(t, c.Remove(b.ID), ErrLineNotFound)
}

func TestTotalSumsQuantityTimesPrice(t *testing.T) {
	a := Item{ID: uuid.New(), Name: "A", Available: 10, UnitPrice: 500}  // 5.00
	b := Item{ID: uuid.New(), Name: "B", Available: 10, UnitPrice: 1000} // 10.00
	c := New()

	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	// 2 x 5.00 + 1 x 10.00 = 20.00
	assert.Equal(t, int64(2000), c.Total())
}

func TestSetUnitPrice(t *testing.T) {
	item := Item{ID: uuid.New(), Name: "A", Available: 5, UnitPrice: 500}
	c := New()
	require.NoError(t, c.Add(item))

	require.NoError(t, c.SetUnitPrice(item.ID, 450))
	assert.Equal(t, int64(450), c.Lines()[0].UnitPrice)
	assert.Equal(t, int64(450), c.Total())

	assert.ErrorIs(t, c.SetUnitPrice(item.ID, 0), ErrInvalidUnitPrice)
	assert.ErrorIs(t, c.SetUnitPrice(uuid.New(), 100), ErrLineNotFound)
}

func TestSubmissionLifecycle(t *testing.T) {
	item := Item{ID: uuid.New(), Name: "A", Available: 5, UnitPrice: 500}
	c := New()
	require.NoError(t, c.Add(item))

	sub := NewSubmission(c)
	require.Equal(t, SubmissionIdle, sub.State())

	require.NoError(t, sub.Begin())
	require.Equal(t, SubmissionInFlight, sub.State())

	// Double submit is blocked while in flight.
	assert.ErrorIs(t, sub.Begin(), ErrSubmissionInFlight)

	// Failure keeps the cart intact and allows retry.
	sub.Fail()
	assert.Equal(t, SubmissionFailed, sub.State())
	assert.Equal(t, 1, c.Len())

	require.NoError(t, sub.Begin())
	sub.Succeed()
	assert.Equal(t, SubmissionSucceeded, sub.State())
	assert.True(t, c.IsEmpty())
}
