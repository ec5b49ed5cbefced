package editor

import (
	"strings"
	"testing"

	"github.com/lixenwraith/sendama/event"
)

// traceState records hook calls into a shared log
type traceState struct {
	BaseState
	name     string
	log      *[]string
	onUpdate func(s *traceState)
	onEnter  func(s *traceState)
	onRender func(s *traceState)
}

func (s *traceState) Name() string { return s.name }

func (s *traceState) Enter(ctx *Context) {
	s.BaseState.Enter(ctx)
	*s.log = append(*s.log, "enter:"+s.name)
	if s.onEnter != nil {
		s.onEnter(s)
	}
}

func (s *traceState) Exit(*Context) { *s.log = append(*s.log, "exit:"+s.name) }

func (s *traceState) Update() {
	*s.log = append(*s.log, "update:"+s.name)
	if s.onUpdate != nil {
		s.onUpdate(s)
	}
}

func (s *traceState) Render() {
	*s.log = append(*s.log, "render:"+s.name)
	if s.onRender != nil {
		s.onRender(s)
	}
}

func newTestMachine() (*Machine, *event.Recorder, *event.Bus) {
	bus := event.NewBus()
	rec := &event.Recorder{}
	bus.Subscribe(rec, event.ScopeInstance, event.EditorStateChanged)
	return NewMachine(bus, nil), rec, bus
}

func TestSetStateSameStateRunsExitThenEnter(t *testing.T) {
	m, rec, _ := newTestMachine()
	var log []string
	a := &traceState{name: "A", log: &log}

	m.SetState(a)
	rec.Reset()
	log = nil

	m.SetState(a)

	if got := strings.Join(log, ","); got != "exit:A,enter:A" {
		t.Errorf("hooks = %s, want exit:A,enter:A", got)
	}
	if n := rec.Count(event.EditorStateChanged); n != 1 {
		t.Fatalf("EditorStateChanged = %d, want 1", n)
	}
	ev := rec.Events()[0]
	if ev.GetString(event.KeyFrom) != "A" || ev.GetString(event.KeyTo) != "A" {
		t.Errorf("payload = %v", ev.Payload)
	}
}

func TestSetStateOrderAndPayload(t *testing.T) {
	m, rec, bus := newTestMachine()
	var log []string
	a := &traceState{name: "A", log: &log}
	b := &traceState{name: "B", log: &log}

	// Subscriber observes the swap already done
	var seen string
	bus.Subscribe(event.Func(func(event.Event) { seen = m.CurrentName() }), event.ScopeInstance, event.EditorStateChanged)

	m.SetState(a)
	if ev := rec.Events()[0]; ev.GetString(event.KeyFrom) != "" || ev.GetString(event.KeyTo) != "A" {
		t.Errorf("first payload = %v", ev.Payload)
	}
	m.SetState(b)

	if got := strings.Join(log, ","); got != "enter:A,exit:A,enter:B" {
		t.Errorf("hooks = %s", got)
	}
	if seen != "B" {
		t.Errorf("subscriber saw %q, want B", seen)
	}
	if m.Transitions() != 2 {
		t.Errorf("Transitions() = %d, want 2", m.Transitions())
	}
}

func TestSetStateDuringUpdateIsDeferred(t *testing.T) {
	m, rec, _ := newTestMachine()
	var log []string
	b := &traceState{name: "B", log: &log}
	a := &traceState{name: "A", log: &log}
	a.onUpdate = func(s *traceState) {
		s.SetState(b)
		*s.log = append(*s.log, "after-request")
	}

	m.SetState(a)
	rec.Reset()
	log = nil

	m.Update()
	if got := strings.Join(log, ","); got != "update:A,after-request,exit:A,enter:B" {
		t.Errorf("hooks = %s", got)
	}
	if m.CurrentName() != "B" || rec.Count(event.EditorStateChanged) != 1 {
		t.Errorf("current = %s, changes = %d", m.CurrentName(), rec.Count(event.EditorStateChanged))
	}

	log = nil
	m.Render()
	if got := strings.Join(log, ","); got != "render:B" {
		t.Errorf("render dispatched to %s", got)
	}
}

func TestSetStateFromEnterChains(t *testing.T) {
	m, rec, _ := newTestMachine()
	var log []string
	c := &traceState{name: "C", log: &log}
	b := &traceState{name: "B", log: &log, onEnter: func(s *traceState) { s.SetState(c) }}

	m.SetState(b)

	if got := strings.Join(log, ","); got != "enter:B,exit:B,enter:C" {
		t.Errorf("hooks = %s", got)
	}
	if rec.Count(event.EditorStateChanged) != 2 {
		t.Errorf("changes = %d, want 2", rec.Count(event.EditorStateChanged))
	}
}

func TestMachineEmpty(t *testing.T) {
	m, rec, _ := newTestMachine()
	m.Update()
	m.Render()
	m.SetState(nil)
	if m.Current() != nil || rec.Count(event.EditorStateChanged) != 0 {
		t.Error("empty machine changed state")
	}
}

func TestUpdatePanicClearsBusy(t *testing.T) {
	m, _, _ := newTestMachine()
	var log []string
	a := &traceState{name: "A", log: &log, onUpdate: func(*traceState) { panic("boom") }}
	b := &traceState{name: "B", log: &log}
	m.SetState(a)

	func() {
		defer func() { recover() }()
		m.Update()
	}()

	m.SetState(b)
	if m.CurrentName() != "B" {
		t.Errorf("transition after panic deferred forever, current = %s", m.CurrentName())
	}
}

func TestSetStateDuringRenderWaitsForUpdate(t *testing.T) {
	m, rec, _ := newTestMachine()
	var log []string
	b := &traceState{name: "B", log: &log}
	a := &traceState{name: "A", log: &log, onRender: func(s *traceState) { s.SetState(b) }}
	m.SetState(a)
	rec.Reset()
	log = nil

	m.Render()
	if m.CurrentName() != "A" || !m.Pending() {
		t.Fatalf("render switched to %s, pending=%v", m.CurrentName(), m.Pending())
	}
	if rec.Count(event.EditorStateChanged) != 0 {
		t.Error("EditorStateChanged published during render")
	}

	m.Update()
	if got := strings.Join(log, ","); got != "render:A,exit:A,enter:B,update:B" {
		t.Errorf("hooks = %s", got)
	}
	if m.Pending() || rec.Count(event.EditorStateChanged) != 1 {
		t.Errorf("pending=%v changes=%d", m.Pending(), rec.Count(event.EditorStateChanged))
	}
}
