package event

import "fmt"

// EventType tags a notification, the set is closed
type EventType int

const (
	EditorStarted EventType = iota + 1
	EditorStopped
	EditorFinished
	EditorUpdated
	EditorRendered
	EditorInputHandled
	EditorStateChanged
	KeyboardInput
	HierarchyChanged
)

// Payload keys shared by publishers and subscribers
const (
	KeyFrom   = "from"
	KeyTo     = "to"
	KeyKey    = "key"
	KeyRaw    = "raw"
	KeyFrame  = "frame"
	KeyDelta  = "delta"
	KeyObject = "object"
	KeyCount  = "count"
	KeyError  = "error"
)

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is one notification delivered by Bus
// Source and Payload are optional
type Event struct {
	Type    EventType
	Source  any
	Payload map[string]any
}

// New creates an event with an optional payload
func New(t EventType, source any, payload map[string]any) Event {
	return Event{Type: t, Source: source, Payload: payload}
}

// Get returns a payload value, false if absent
func (e Event) Get(key string) (any, bool) {
	if e.Payload == nil {
		return nil, false
	}
	v, ok := e.Payload[key]
	return v, ok
}

// GetString returns a payload value as string, empty if absent or not a string
func (e Event) GetString(key string) string {
	v, _ := e.Get(key)
	s, _ := v.(string)
	return s
}
