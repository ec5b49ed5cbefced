package event

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Scope controls how long a subscription lives
type Scope int

const (
	// ScopeInstance subscriptions are dropped by CloseInstance when the owning editor is torn down
	ScopeInstance Scope = iota
	// ScopeStatic subscriptions survive across editor instances until Close
	ScopeStatic
)

func (s Scope) String() string {
	if s == ScopeStatic {
		return "static"
	}
	return "instance"
}

// Subscriber receives events from a Bus
// Implementations must be comparable, identity is used to collapse duplicate registrations
type Subscriber interface {
	OnNotify(ev Event)
}

// funcSubscriber adapts a function, the pointer is the identity
type funcSubscriber struct {
	fn func(Event)
}

func (f *funcSubscriber) OnNotify(ev Event) { f.fn(ev) }

// Func wraps fn as a Subscriber, each call yields a distinct identity
func Func(fn func(Event)) Subscriber {
	return &funcSubscriber{fn: fn}
}

type registration struct {
	id      string
	sub     Subscriber
	scope   Scope
	types   map[EventType]struct{} // nil matches every type
	removed atomic.Bool
}

func (r *registration) matches(t EventType) bool {
	if r.types == nil {
		return true
	}
	_, ok := r.types[t]
	return ok
}

// Bus is an explicit publish/subscribe registry passed by reference to its collaborators
// Delivery is synchronous and in registration order, handlers may publish again
type Bus struct {
	mu     sync.Mutex
	regs   []*registration
	closed bool

	published atomic.Uint64
}

// NewBus creates an open bus
func NewBus() *Bus {
	return &Bus{}
}

// Open reopens a closed bus, subscriptions do not come back
func (b *Bus) Open() {
	b.mu.Lock()
	b.closed = false
	b.mu.Unlock()
}

// Close drops every subscription, publishing afterwards is a no-op until Open
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.regs {
		r.removed.Store(true)
	}
	b.regs = nil
	b.closed = true
}

// CloseInstance drops instance-scoped subscriptions and keeps static ones
func (b *Bus) CloseInstance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.regs[:0]
	for _, r := range b.regs {
		if r.scope == ScopeInstance {
			r.removed.Store(true)
			continue
		}
		kept = append(kept, r)
	}
	clear(b.regs[len(kept):])
	b.regs = kept
}

// IsClosed reports whether Close was called without a following Open
func (b *Bus) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Subscribe registers sub for types, no types means every type
// Subscribing an existing member merges into its registration: types are unioned
// and static scope wins, so it is still notified at most once per publish
// Returns the registration id
func (b *Bus) Subscribe(sub Subscriber, scope Scope, types ...EventType) string {
	if sub == nil {
		panic("event: nil subscriber")
	}
	if !reflect.TypeOf(sub).Comparable() {
		panic(fmt.Sprintf("event: subscriber type %T is not comparable", sub))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range b.regs {
		if r.sub != sub {
			continue
		}
		if scope == ScopeStatic {
			r.scope = ScopeStatic
		}
		switch {
		case len(types) == 0:
			r.types = nil
		case r.types != nil:
			for _, t := range types {
				r.types[t] = struct{}{}
			}
		}
		return r.id
	}

	r := &registration{
		id:    uuid.NewString(),
		sub:   sub,
		scope: scope,
	}
	if len(types) > 0 {
		r.types = make(map[EventType]struct{}, len(types))
		for _, t := range types {
			r.types[t] = struct{}{}
		}
	}
	b.regs = append(b.regs, r)
	return r.id
}

// Unsubscribe removes sub, unknown subscribers are ignored
func (b *Bus) Unsubscribe(sub Subscriber) {
	b.remove(func(r *registration) bool { return r.sub == sub })
}

// UnsubscribeID removes the registration with id, unknown ids are ignored
func (b *Bus) UnsubscribeID(id string) {
	b.remove(func(r *registration) bool { return r.id == id })
}

func (b *Bus) remove(match func(*registration) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.regs {
		if match(r) {
			r.removed.Store(true)
			b.regs = append(b.regs[:i], b.regs[i+1:]...)
			return
		}
	}
}

// IsSubscribed reports whether sub is a current member
func (b *Bus) IsSubscribed(sub Subscriber) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.regs {
		if r.sub == sub {
			return true
		}
	}
	return false
}

// Len returns the number of registrations
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.regs)
}

// Publish delivers ev to every subscriber registered for its type at call time
// Subscribers added during delivery miss the current event, subscribers removed
// during delivery are skipped if not yet reached
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	snapshot := make([]*registration, 0, len(b.regs))
	for _, r := range b.regs {
		if r.matches(ev.Type) {
			snapshot = append(snapshot, r)
		}
	}
	b.mu.Unlock()

	b.published.Add(1)
	for _, r := range snapshot {
		if r.removed.Load() {
			continue
		}
		r.sub.OnNotify(ev)
	}
}

// Published returns the number of Publish calls delivered since creation
func (b *Bus) Published() uint64 {
	return b.published.Load()
}
