package inventory

import (
	"testing"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDeductAndRestock(t *testing.T) {
	item, err := NewItem(beverage.Tea(beverage.Standard), 2)
	require.NoError(t, err)
	assert.False(t, item.IsEmpty())

	require.NoError(t, item.Deduct(2))
	assert.True(t, item.IsEmpty())
	assert.ErrorIs(t, item.Deduct(1), ErrInsufficientStock)

	require.NoError(t, item.Restock(3))
	assert.Equal(t, 3, item.Quantity)
}

func TestItemRejectsInvalidQuantities(t *testing.T) {
	_, err := NewItem(beverage.OrangeJuice(), -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	item, err := NewItem(beverage.OrangeJuice(), 0)
	require.NoError(t, err)
	assert.ErrorIs(t, item.Deduct(0), ErrInvalidQuantity)
	assert.ErrorIs(t, item.Restock(-2), ErrInvalidQuantity)
}

func TestHistoryRecordsServes(t *testing.T) {
	h := NewHistory()
	h.Record(beverage.Coffee(beverage.Standard))
	h.Record(beverage.Coffee(beverage.Standard))
	h.Record(beverage.Coffee(beverage.ExtraHot))

	assert.Equal(t, 2, h.Count(beverage.Coffee(beverage.Standard)))
	assert.Equal(t, 1, h.Count(beverage.Coffee(beverage.ExtraHot)))
	assert.Equal(t, 0, h.Count(beverage.Tea(beverage.Standard)))
	assert.Equal(t, 3, h.Total())
}

func TestHistoryZeroValueIsUsable(t *testing.T) {
	var h History
	h.Record(beverage.OrangeJuice())

	assert.Equal(t, 1, h.Count(beverage.OrangeJuice()))
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	h := NewHistory()
	h.Record(beverage.Tea(beverage.Standard))

	clone := h.Clone()
	clone.Record(beverage.Tea(beverage.Standard))
	quantities := h.Quantities()
	quantities[beverage.Tea(beverage.Standard)] = 42

	assert.Equal(t, 1, h.Count(beverage.Tea(beverage.Standard)))
	assert.Equal(t, 2, clone.Count(beverage.Tea(beverage.Standard)))
}

func TestEventNames(t *testing.T) {
	shortage := NewBeverageShortageEvent(beverage.Tea(beverage.ExtraHot))
	restocked := NewBeverageRestockedEvent(beverage.Tea(beverage.ExtraHot), 5, 5)

	assert.Equal(t, "inventory.beverage_shortage", shortage.EventName())
	assert.Equal(t, "inventory.beverage_restocked", restocked.EventName())
	assert.Equal(t, beverage.Tea(beverage.ExtraHot), shortage.Beverage)
	assert.False(t, shortage.OccurredAt.IsZero())
}
