package drinkmaker

import (
	"context"
	"testing"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drinkMakerSpy struct {
	commands []string
}

func (s *drinkMakerSpy) Execute(_ context.Context, command string) {
	s.commands = append(s.commands, command)
}

func TestServeBeveragesWithNoSugar(t *testing.T) {
	tests := []struct {
		name     string
		beverage beverage.Beverage
		want     string
	}{
		{name: "coffee", beverage: beverage.Coffee(beverage.Standard), want: "C::"},
		{name: "extra hot coffee", beverage: beverage.Coffee(beverage.ExtraHot), want: "Ch::"},
		{name: "tea", beverage: beverage.Tea(beverage.Standard), want: "T::"},
		{name: "extra hot tea", beverage: beverage.Tea(beverage.ExtraHot), want: "Th::"},
		{name: "hot chocolate", beverage: beverage.HotChocolate(beverage.Standard), want: "H::"},
		{name: "extra hot hot chocolate", beverage: beverage.HotChocolate(beverage.ExtraHot), want: "Hh::"},
		{name: "orange juice", beverage: beverage.OrangeJuice(), want: "O::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &drinkMakerSpy{}
			server := NewBeverageServer(spy, nil, nil)

			server.Serve(context.Background(), tt.beverage, beverage.SugarZero)

			assert.Equal(t, []string{tt.want}, spy.commands)
		})
	}
}

func TestServeBeveragesWithSugarAndStick(t *testing.T) {
	tests := []struct {
		name     string
		beverage beverage.Beverage
		sugar    beverage.SugarAmount
		want     string
	}{
		{name: "orange juice with one sugar", beverage: beverage.OrangeJuice(), sugar: beverage.SugarOne, want: "O:1:0"},
		{name: "coffee with two sugars", beverage: beverage.Coffee(beverage.Standard), sugar: beverage.SugarTwo, want: "C:2:0"},
		{name: "extra hot tea with two sugars", beverage: beverage.Tea(beverage.ExtraHot), sugar: beverage.SugarTwo, want: "Th:2:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Command(tt.beverage, tt.sugar))
		})
	}
}

func TestServeConsumesStock(t *testing.T) {
	ctx := context.Background()
	stock := memory.NewInventoryRepository(1)
	spy := &drinkMakerSpy{}
	server := NewBeverageServer(spy, stock, nil)
	tea := beverage.Tea(beverage.Standard)

	server.Serve(ctx, tea, beverage.SugarOne)
	require.True(t, stock.IsEmpty(ctx, tea))

	// a serve past the last unit still reaches the drink maker
	server.Serve(ctx, tea, beverage.SugarOne)
	assert.Equal(t, []string{"T:1:0", "T:1:0"}, spy.commands)
	assert.Zero(t, stock.Levels(ctx)[tea])
}

func TestShowMissingMoneyMessage(t *testing.T) {
	tests := []struct {
		name    string
		missing int64
		want    string
	}{
		{name: "missing one cent", missing: 1, want: "M:0.01€"},
		{name: "missing 99 cents", missing: 99, want: "M:0.99€"},
		{name: "missing 60 cents", missing: 60, want: "M:0.6€"},
		{name: "missing one euro", missing: 100, want: "M:1€"},
		{name: "missing 9.99", missing: 999, want: "M:9.99€"},
		{name: "missing 99.99", missing: 9999, want: "M:99.99€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &drinkMakerSpy{}

			NewDisplay(spy).ShowMissingMoneyMessage(context.Background(), tt.missing)

			assert.Equal(t, []string{tt.want}, spy.commands)
		})
	}
}

func TestShowBeverageShortageMessage(t *testing.T) {
	tests := []struct {
		beverage beverage.Beverage
		want     string
	}{
		{beverage: beverage.Coffee(beverage.Standard), want: "M:Sorry, coffee is empty."},
		{beverage: beverage.Coffee(beverage.ExtraHot), want: "M:Sorry, coffee is empty."},
		{beverage: beverage.Tea(beverage.Standard), want: "M:Sorry, tea is empty."},
		{beverage: beverage.Tea(beverage.ExtraHot), want: "M:Sorry, tea is empty."},
		{beverage: beverage.HotChocolate(beverage.Standard), want: "M:Sorry, hot chocolate is empty."},
		{beverage: beverage.HotChocolate(beverage.ExtraHot), want: "M:Sorry, hot chocolate is empty."},
		{beverage: beverage.OrangeJuice(), want: "M:Sorry, orange juice is empty."},
	}

	for _, tt := range tests {
		t.Run(tt.beverage.ID(), func(t *testing.T) {
			spy := &drinkMakerSpy{}

			NewDisplay(spy).ShowBeverageShortageMessage(context.Background(), tt.beverage)

			assert.Equal(t, []string{tt.want}, spy.commands)
		})
	}
}
