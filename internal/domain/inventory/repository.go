package inventory

import (
	"context"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
)

type Repository interface {
	Get(ctx context.Context, b beverage.Beverage) (*Item, error)
	Save(ctx context.Context, item *Item) error
}
