package memory

import (
	"context"
	"sync"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	domain "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
)

var _ domain.Repository = (*InventoryRepository)(nil)

// InventoryRepository keeps beverage stock in memory. It is the machine's stock oracle.
type InventoryRepository struct {
	mu    sync.RWMutex
	items map[beverage.Beverage]*domain.Item
}

// NewInventoryRepository stocks every catalog beverage with initial units.
func NewInventoryRepository(initial int) *InventoryRepository {
	if initial < 0 {
		initial = 0
	}
	r := &InventoryRepository{
		items: make(map[beverage.Beverage]*domain.Item),
	}
	for _, b := range beverage.All() {
		item, _ := domain.NewItem(b, initial)
		r.items[b] = item
	}
	return r
}

func (r *InventoryRepository) Get(ctx context.Context, b beverage.Beverage) (*domain.Item, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[b]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneItem(item), nil
}

func (r *InventoryRepository) Save(ctx context.Context, item *domain.Item) error {
	_ = ctx
	if item == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.Beverage] = cloneItem(item)
	return nil
}

// IsEmpty reports a beverage as empty when it has no units or is not stocked at all.
func (r *InventoryRepository) IsEmpty(ctx context.Context, b beverage.Beverage) bool {
	item, err := r.Get(ctx, b)
	if err != nil {
		return true
	}
	return item.IsEmpty()
}

// Deduct removes quantity units and returns what is left.
func (r *InventoryRepository) Deduct(ctx context.Context, b beverage.Beverage, quantity int) (int, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[b]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if err := item.Deduct(quantity); err != nil {
		return item.Quantity, err
	}
	return item.Quantity, nil
}

// Restock adds units, creating the entry when the beverage was never stocked.
func (r *InventoryRepository) Restock(ctx context.Context, b beverage.Beverage, quantity int) (int, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[b]
	if !ok {
		var err error
		if item, err = domain.NewItem(b, 0); err != nil {
			return 0, err
		}
		r.items[b] = item
	}
	if err := item.Restock(quantity); err != nil {
		return item.Quantity, err
	}
	return item.Quantity, nil
}

// Levels returns the units left per beverage.
func (r *InventoryRepository) Levels(ctx context.Context) map[beverage.Beverage]int {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[beverage.Beverage]int, len(r.items))
	for b, item := range r.items {
		out[b] = item.Quantity
	}
	return out
}

func cloneItem(item *domain.Item) *domain.Item {
	if item == nil {
		return nil
	}
	clone := *item
	return &clone
}
