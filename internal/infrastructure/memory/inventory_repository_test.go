package memory

import (
	"context"
	"testing"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	domain "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryRepositoryStocksTheCatalog(t *testing.T) {
	repo := NewInventoryRepository(2)

	levels := repo.Levels(context.Background())

	require.Len(t, levels, len(beverage.All()))
	for _, b := range beverage.All() {
		assert.Equal(t, 2, levels[b], b.ID())
		assert.False(t, repo.IsEmpty(context.Background(), b), b.ID())
	}
}

func TestDeductEmptiesStock(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository(1)
	tea := beverage.Tea(beverage.Standard)

	remaining, err := repo.Deduct(ctx, tea, 1)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	assert.True(t, repo.IsEmpty(ctx, tea))

	_, err = repo.Deduct(ctx, tea, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, repo.IsEmpty(ctx, beverage.Tea(beverage.ExtraHot)))
}

func TestRestockRefills(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository(0)
	juice := beverage.OrangeJuice()
	require.True(t, repo.IsEmpty(ctx, juice))

	remaining, err := repo.Restock(ctx, juice, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
	assert.False(t, repo.IsEmpty(ctx, juice))

	_, err = repo.Restock(ctx, juice, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUnknownBeverageIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository(3)
	soup := beverage.Beverage{Kind: "soup"}

	assert.True(t, repo.IsEmpty(ctx, soup))
	_, err := repo.Get(ctx, soup)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Deduct(ctx, soup, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetReturnsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository(3)
	coffee := beverage.Coffee(beverage.Standard)

	item, err := repo.Get(ctx, coffee)
	require.NoError(t, err)
	item.Quantity = 0

	assert.False(t, repo.IsEmpty(ctx, coffee))

	require.NoError(t, repo.Save(ctx, item))
	assert.True(t, repo.IsEmpty(ctx, coffee))
}
