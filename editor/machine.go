package editor

import (
	"log"

	"github.com/lixenwraith/sendama/event"
)

// Machine owns the active state and mediates transitions
// Requests made while a state updates or renders, or while a transition runs, are deferred
// Requests from Render wait for the next Update so a tick renders a single state
type Machine struct {
	event.Emitter

	current    State
	newContext func() *Context

	pending     State
	hasPending  bool
	busy        bool
	transitions uint64
}

// NewMachine creates an empty machine, newContext builds the context for each transition
func NewMachine(bus *event.Bus, newContext func() *Context) *Machine {
	m := &Machine{newContext: newContext}
	m.Emitter = event.NewEmitter(bus, m)
	return m
}

// SetState is the only mutation path
// Passing the active state again still runs Exit then Enter and publishes once
func (m *Machine) SetState(next State) {
	if next == nil {
		return
	}
	if m.busy {
		m.pending, m.hasPending = next, true
		return
	}
	m.transition(next)
	m.drain()
}

// Update applies requests left over from the last render, dispatches to the active state,
// then applies requests made during the update
func (m *Machine) Update() {
	m.drain()
	if m.current == nil {
		return
	}
	m.busy = true
	func() {
		defer func() { m.busy = false }()
		m.current.Update()
	}()
	m.drain()
}

// Render dispatches to the active state, transitions requested here wait for the next Update
func (m *Machine) Render() {
	if m.current == nil {
		return
	}
	m.busy = true
	defer func() { m.busy = false }()
	m.current.Render()
}

// Pending reports whether a deferred transition is waiting
func (m *Machine) Pending() bool {
	return m.hasPending
}

func (m *Machine) drain() {
	for m.hasPending {
		next := m.pending
		m.pending, m.hasPending = nil, false
		m.transition(next)
	}
}

func (m *Machine) transition(next State) {
	m.busy = true
	defer func() { m.busy = false }()

	var ctx *Context
	if m.newContext != nil {
		ctx = m.newContext()
	} else {
		ctx = &Context{}
	}
	ctx.machine = m

	from := ""
	if m.current != nil {
		from = m.current.Name()
		m.current.Exit(ctx)
	}
	m.current = next
	next.Enter(ctx)
	m.transitions++

	log.Printf("editor: state %s -> %s", from, next.Name())
	m.Notify(event.EditorStateChanged, map[string]any{
		event.KeyFrom: from,
		event.KeyTo:   next.Name(),
	})
}

// Current returns the active state, nil before the first transition
func (m *Machine) Current() State {
	return m.current
}

// CurrentName returns the active state name or the empty string
func (m *Machine) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Transitions returns how many transitions completed
func (m *Machine) Transitions() uint64 {
	return m.transitions
}
