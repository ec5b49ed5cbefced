package event

// Observable is implemented by components that publish on a bus
type Observable interface {
	Subscribe(sub Subscriber, types ...EventType) string
	Unsubscribe(sub Subscriber)
	Notify(t EventType, payload map[string]any)
}

// Emitter implements Observable for an owning component through composition
// Subscriptions made through an Emitter are instance scoped
type Emitter struct {
	bus    *Bus
	source any
}

// NewEmitter binds bus to source, source is set on every event it publishes
func NewEmitter(bus *Bus, source any) Emitter {
	return Emitter{bus: bus, source: source}
}

func (e Emitter) Bus() *Bus {
	return e.bus
}

func (e Emitter) Subscribe(sub Subscriber, types ...EventType) string {
	if e.bus == nil {
		return ""
	}
	return e.bus.Subscribe(sub, ScopeInstance, types...)
}

func (e Emitter) Unsubscribe(sub Subscriber) {
	if e.bus == nil {
		return
	}
	e.bus.Unsubscribe(sub)
}

// Notify publishes an event of type t with the emitter's source, no-op without a bus
func (e Emitter) Notify(t EventType, payload map[string]any) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(Event{Type: t, Source: e.source, Payload: payload})
}
