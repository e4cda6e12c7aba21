package flight

import "github.com/go-gl/mathgl/mgl32"

type EventType int

const (
	EventCoinPickup EventType = iota
	EventGameOver
	EventViewChanged
	EventTrackingToggled
)

type Event struct {
	Type     EventType
	Position mgl32.Vec3
	Score    int
	Reason   Reason
	View     View
	Tracking bool
}

type EventHandler func(Event)

// EventBus fans simulation events out to audio and logging. It is used from
// the main goroutine only.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
