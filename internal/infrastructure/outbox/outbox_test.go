package outbox

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Zhima-Mochi/beverage-machine/internal/domain/beverage"
	dominv "github.com/Zhima-Mochi/beverage-machine/internal/domain/inventory"
	domoutbox "github.com/Zhima-Mochi/beverage-machine/internal/domain/outbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToEverySubscriber(t *testing.T) {
	bus := NewBus(nil)
	var first, second atomic.Int32
	shortageName := dominv.BeverageShortageEvent{}.EventName()
	bus.Subscribe(shortageName, func(context.Context, domoutbox.Event) error {
		first.Add(1)
		return nil
	})
	bus.Subscribe(shortageName, func(context.Context, domoutbox.Event) error {
		second.Add(1)
		return errors.New("handler failed")
	})
	bus.Start(context.Background())
	defer bus.Stop(context.Background())

	require.NoError(t, bus.Publish(context.Background(), dominv.NewBeverageShortageEvent(beverage.OrangeJuice())))

	require.Eventually(t, func() bool {
		return first.Load() == 1 && second.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestBusRoutesByEventName(t *testing.T) {
	bus := NewBus(nil)
	var mu sync.Mutex
	var got []string
	bus.Subscribe(dominv.BeverageRestockedEvent{}.EventName(), func(_ context.Context, e domoutbox.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.EventName())
		return nil
	})
	bus.Start(context.Background())

	require.NoError(t, bus.Publish(context.Background(), dominv.NewBeverageShortageEvent(beverage.OrangeJuice())))
	require.NoError(t, bus.Publish(context.Background(), dominv.NewBeverageRestockedEvent(beverage.OrangeJuice(), 1, 1)))

	bus.Stop(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"inventory.beverage_restocked"}, got)
}

func TestBusSurvivesPanickingHandler(t *testing.T) {
	bus := NewBus(nil)
	var calls atomic.Int32
	name := dominv.BeverageShortageEvent{}.EventName()
	bus.Subscribe(name, func(context.Context, domoutbox.Event) error {
		calls.Add(1)
		panic("boom")
	})
	bus.Start(context.Background())
	defer bus.Stop(context.Background())

	require.NoError(t, bus.Publish(context.Background(), dominv.NewBeverageShortageEvent(beverage.OrangeJuice())))
	require.NoError(t, bus.Publish(context.Background(), dominv.NewBeverageShortageEvent(beverage.OrangeJuice())))

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestPublishAfterStopFails(t *testing.T) {
	bus := NewBus(nil)
	bus.Start(context.Background())
	bus.Stop(context.Background())

	err := bus.Publish(context.Background(), dominv.NewBeverageShortageEvent(beverage.OrangeJuice()))

	assert.ErrorIs(t, err, ErrBusStopped)
}

func TestStopWithoutStartReturns(t *testing.T) {
	bus := NewBus(nil)

	done := make(chan struct{})
	go func() {
		bus.Stop(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a bus that never started")
	}
}

func TestPublishIgnoresNilEvent(t *testing.T) {
	bus := NewBus(nil)

	assert.NoError(t, bus.Publish(context.Background(), nil))
}
