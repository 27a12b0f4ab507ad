package drinkmaker

import (
	"context"
	"errors"
	"strconv"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability"
	"github.com/Zhima-Mochi/beverage-machine/internal/observability/logctx"
)

// StockConsumer is told about every drink that left the machine.
type StockConsumer interface {
	Deduct(ctx context.Context, b beverage.Beverage, quantity int) (int, error)
}

type BeverageServer struct {
	maker DrinkMaker
	stock StockConsumer
	log   observability.Logger
}

// NewBeverageServer returns a server that sends drink commands to maker. stock may be nil.
func NewBeverageServer(maker DrinkMaker, stock StockConsumer, logger observability.Logger) *BeverageServer {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &BeverageServer{
		maker: maker,
		stock: stock,
		log:   logger.With(observability.F("component", "beverage_server")),
	}
}

func (s *BeverageServer) Serve(ctx context.Context, b beverage.Beverage, sugar beverage.SugarAmount) {
	s.maker.Execute(ctx, Command(b, sugar))

	if s.stock == nil {
		return
	}
	remaining, err := s.stock.Deduct(ctx, b, 1)
	if err != nil {
		reason := inventory.FailureReasonInsufficientStock
		if errors.Is(err, inventory.ErrNotFound) {
			reason = inventory.FailureReasonNotFound
		}
		logctx.FromOr(ctx, s.log).Warn("stock_deduct_failed",
			observability.F("beverage", b.ID()),
			observability.F("reason", reason),
			observability.F("error", err),
		)
		return
	}
	logctx.FromOr(ctx, s.log).Debug("stock_deducted",
		observability.F("beverage", b.ID()),
		observability.F("remaining", remaining),
	)
}

// Command encodes a drink as "<code>:<sugar>:<stick>". A stick is added whenever there is sugar.
func Command(b beverage.Beverage, sugar beverage.SugarAmount) string {
	sugarPart, stickPart := "", ""
	if sugar > beverage.SugarZero {
		sugarPart, stickPart = strconv.Itoa(int(sugar)), "0"
	}
	return drinkCode(b) + ":" + sugarPart + ":" + stickPart
}

func drinkCode(b beverage.Beverage) string {
	var code string
	switch b.Kind {
	case beverage.KindCoffee:
		code = "C"
	case beverage.KindTea:
		code = "T"
	case beverage.KindHotChocolate:
		code = "H"
	case beverage.KindOrangeJuice:
		return "O"
	}
	if b.IsExtraHot() {
		code += "h"
	}
	return code
}
