package dispenser

import (
	"context"
	"testing"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	"github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverSpy struct {
	served []beverage.Beverage
	sugars []beverage.SugarAmount
}

func (s *serverSpy) Serve(_ context.Context, b beverage.Beverage, sugar beverage.SugarAmount) {
	s.served = append(s.served, b)
	s.sugars = append(s.sugars, sugar)
}

type stockFake map[beverage.Beverage]bool

func (f stockFake) IsEmpty(_ context.Context, b beverage.Beverage) bool { return f[b] }

func TestDispenseServesAndRecords(t *testing.T) {
	server := &serverSpy{}
	d := New(server, stockFake{}, nil)

	outcome := d.Dispense(context.Background(), beverage.Tea(beverage.ExtraHot), beverage.SugarTwo)

	assert.Equal(t, inventory.OutcomeServed, outcome)
	require.Len(t, server.served, 1)
	assert.Equal(t, beverage.Tea(beverage.ExtraHot), server.served[0])
	assert.Equal(t, beverage.SugarTwo, server.sugars[0])
	assert.Equal(t, 1, d.DispensedBeverages().Count(beverage.Tea(beverage.ExtraHot)))
}

func TestDispenseShortageHasNoSideEffect(t *testing.T) {
	server := &serverSpy{}
	d := New(server, stockFake{beverage.OrangeJuice(): true}, nil)

	outcome := d.Dispense(context.Background(), beverage.OrangeJuice(), beverage.SugarZero)

	assert.Equal(t, inventory.OutcomeShortage, outcome)
	assert.Empty(t, server.served)
	assert.Zero(t, d.DispensedBeverages().Total())
}

func TestDispensedBeveragesIsACopy(t *testing.T) {
	d := New(&serverSpy{}, stockFake{}, nil)
	d.Dispense(context.Background(), beverage.Coffee(beverage.Standard), beverage.SugarZero)

	history := d.DispensedBeverages()
	history.Record(beverage.Coffee(beverage.Standard))

	assert.Equal(t, 1, d.DispensedBeverages().Count(beverage.Coffee(beverage.Standard)))
}
