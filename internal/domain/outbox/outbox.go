package outbox

import "context"

// Event is a domain fact identified by its name, e.g. "inventory.beverage_shortage".
type Event interface {
	EventName() string
}

// Handler reacts to one published event.
type Handler func(ctx context.Context, e Event) error

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type Subscriber interface {
	Subscribe(eventName string, h Handler)
}
