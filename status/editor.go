package status

import (
	"sync/atomic"
	"time"
)

// Metric keys written by the editor loop
const (
	KeyFPS       = "editor.fps"
	KeyFrames    = "editor.frames"
	KeyOverruns  = "editor.overruns"
	KeyDelta     = "editor.delta"
	KeyState     = "editor.state"
	KeyTimeScale = "editor.time_scale"
	KeyRunning   = "editor.running"
)

// EditorMetrics caches the registry pointers the loop writes every tick
type EditorMetrics struct {
	FPS       *atomic.Int64
	Frames    *atomic.Int64
	Overruns  *atomic.Int64
	Delta     *AtomicFloat
	TimeScale *AtomicFloat
	State     *AtomicString
	Running   *atomic.Bool
}

// NewEditorMetrics registers the editor keys in r
func NewEditorMetrics(r *Registry) *EditorMetrics {
	return &EditorMetrics{
		FPS:       r.Ints.Get(KeyFPS),
		Frames:    r.Ints.Get(KeyFrames),
		Overruns:  r.Ints.Get(KeyOverruns),
		Delta:     r.Floats.Get(KeyDelta),
		TimeScale: r.Floats.Get(KeyTimeScale),
		State:     r.Strings.Get(KeyState),
		Running:   r.Bools.Get(KeyRunning),
	}
}

// RecordTick stores per-tick values, delta in seconds
func (m *EditorMetrics) RecordTick(frames, fps, overruns uint64, delta time.Duration, timeScale float64) {
	m.Frames.Store(int64(frames))
	m.FPS.Store(int64(fps))
	m.Overruns.Store(int64(overruns))
	m.Delta.Set(delta.Seconds())
	m.TimeScale.Set(timeScale)
}
