package engine

import (
	"time"
)

// DefaultFPS is the target tick rate of the editor loop
const DefaultFPS = 60

// TickBudget returns the per-tick budget for fps at microsecond resolution
// 60 fps yields 16666µs
func TickBudget(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(1_000_000/fps) * time.Microsecond
}

// Scheduler paces a cooperative loop on a fixed tick budget
// Overruns are absorbed: no sleep on overrun and no skipped ticks afterwards
type Scheduler struct {
	provider TimeProvider
	sleep    func(time.Duration)
	budget   time.Duration

	tickStart    time.Time
	sampleStart  time.Time
	sampleFrames uint64
	fps          uint64
	overruns     uint64
}

// NewScheduler creates a scheduler for fps ticks per second
// Nil provider and sleep fall back to the real clock and time.Sleep
func NewScheduler(fps int, provider TimeProvider, sleep func(time.Duration)) *Scheduler {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	now := provider.Now()
	return &Scheduler{
		provider:    provider,
		sleep:       sleep,
		budget:      TickBudget(fps),
		tickStart:   now,
		sampleStart: now,
	}
}

// Reset restarts the frame rate sampling window at frames
func (s *Scheduler) Reset(frames uint64) {
	now := s.provider.Now()
	s.tickStart = now
	s.sampleStart = now
	s.sampleFrames = frames
	s.fps = 0
	s.overruns = 0
}

// Begin marks the start of a tick
func (s *Scheduler) Begin() {
	s.tickStart = s.provider.Now()
}

// End sleeps for the remainder of the tick budget and resamples the frame rate once per second
// frames is the caller's running frame counter, returns the duration slept
func (s *Scheduler) End(frames uint64) time.Duration {
	var slept time.Duration
	spent := s.provider.Now().Sub(s.tickStart)
	if spent < s.budget {
		slept = s.budget - spent
		s.sleep(slept)
	} else {
		s.overruns++
	}

	now := s.provider.Now()
	if now.Sub(s.sampleStart) >= time.Second {
		s.fps = frames - s.sampleFrames
		s.sampleFrames = frames
		s.sampleStart = now
	}
	return slept
}

// FPS returns the frame rate achieved over the last full sampling window
func (s *Scheduler) FPS() uint64 {
	return s.fps
}

func (s *Scheduler) Budget() time.Duration {
	return s.budget
}

// Overruns returns how many ticks exceeded the budget since the last Reset
func (s *Scheduler) Overruns() uint64 {
	return s.overruns
}
