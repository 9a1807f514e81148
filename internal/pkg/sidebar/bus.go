package sidebar

// Handler is called synchronously after an event has been applied
type Handler func(e Event, next State)

// Bus holds the sidebar state and dispatches events to subscribed handlers.
// It is not safe for concurrent use; create one per request or UI session.
type Bus struct {
	state    State
	handlers map[Kind][]Handler
	any      []Handler
}

// NewBus creates a bus starting in the given state
func NewBus(initial State) *Bus {
	return &Bus{
		state:    initial,
		handlers: make(map[Kind][]Handler),
	}
}

// Subscribe registers h for one event kind
func (b *Bus) Subscribe(kind Kind, h Handler) {
	b.handlers[kind] = append(b.handlers[kind], h)
}

// SubscribeAll registers h for every event kind
func (b *Bus) SubscribeAll(h Handler) {
	b.any = append(b.any, h)
}

// State returns the current state
func (b *Bus) State() State {
	return b.state
}

// Dispatch applies e and notifies handlers in registration order,
// kind-specific handlers first
func (b *Bus) Dispatch(e Event) State {
	b.state = Apply(b.state, e)
	for _, h := range b.handlers[e.Kind] {
		h(e, b.state)
	}
	for _, h := range b.any {
		h(e, b.state)
	}
	return b.state
}
