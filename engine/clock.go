package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/sendama/event"
)

// ChronoUnit selects the granularity of time formatting
type ChronoUnit int

const (
	Nanos ChronoUnit = iota
	Micros
	Millis
	Seconds
	Minutes
)

func (u ChronoUnit) String() string {
	switch u {
	case Nanos:
		return "nanos"
	case Micros:
		return "micros"
	case Millis:
		return "millis"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	default:
		return fmt.Sprintf("ChronoUnit(%d)", int(u))
	}
}

// Clock tracks elapsed time since start, per-tick delta and an advisory time scale
// Time scale is never applied internally, consumers read ScaledDelta
type Clock struct {
	mu sync.RWMutex

	provider TimeProvider

	start       time.Time
	stoppedAt   time.Time
	elapsed     time.Duration
	lastElapsed time.Duration
	delta       time.Duration
	frames      uint64
	timeScale   float64
}

// NewClock creates a clock reading from provider, nil falls back to the monotonic provider
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	c := &Clock{
		provider:  provider,
		timeScale: 1.0,
	}
	c.start = provider.Now()
	return c
}

// Start records the start instant and zeroes all accumulators, calling again restarts
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.provider.Now()
	c.stoppedAt = time.Time{}
	c.elapsed = 0
	c.lastElapsed = 0
	c.delta = 0
	c.frames = 0
}

// Tick advances the clock by one frame
func (c *Clock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = c.provider.Now().Sub(c.start)
	delta := c.elapsed - c.lastElapsed
	// Non-monotonic source
	if delta < 0 {
		delta = 0
	}
	c.delta = delta
	c.lastElapsed = c.elapsed
	c.frames++
}

// Stop records the stop instant, accumulators are kept for reporting
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stoppedAt = c.provider.Now()
}

// SetTimeScale clamps value to [0, 1], NaN is treated as 0
func (c *Clock) SetTimeScale(value float64) {
	if math.IsNaN(value) {
		value = 0
	}
	value = math.Max(0, math.Min(1, value))

	c.mu.Lock()
	c.timeScale = value
	c.mu.Unlock()
}

func (c *Clock) TimeScale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeScale
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

func (c *Clock) Delta() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delta
}

// ScaledDelta returns delta multiplied by the current time scale
func (c *Clock) ScaledDelta() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(float64(c.delta) * c.timeScale)
}

func (c *Clock) Frames() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frames
}

// StoppedAt returns the instant recorded by Stop, zero while running
func (c *Clock) StoppedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stoppedAt
}

// PrettyElapsed formats elapsed time as HH:MM:SS for Seconds or DD:HH:MM for Minutes
// Any other unit is a programmer error and panics
func (c *Clock) PrettyElapsed(unit ChronoUnit) string {
	return FormatElapsed(c.Elapsed(), unit)
}

// FormatElapsed formats d the same way as Clock.PrettyElapsed
func FormatElapsed(d time.Duration, unit ChronoUnit) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	switch unit {
	case Seconds:
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	case Minutes:
		return fmt.Sprintf("%02d:%02d:%02d", hours/24, hours%24, minutes)
	default:
		panic(fmt.Sprintf("engine: invalid unit %s for elapsed time formatting", unit))
	}
}

// OnNotify follows the editor lifecycle: started restarts, updated ticks, stopped records
func (c *Clock) OnNotify(ev event.Event) {
	switch ev.Type {
	case event.EditorStarted:
		c.Start()
	case event.EditorUpdated:
		c.Tick()
	case event.EditorStopped:
		c.Stop()
	}
}

// Observe registers the clock on bus with process scope
func (c *Clock) Observe(bus *event.Bus) string {
	return bus.Subscribe(c, event.ScopeStatic, event.EditorStarted, event.EditorUpdated, event.EditorStopped)
}
