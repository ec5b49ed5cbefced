// @focus: #sys { audio }
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"
)

// WaveType selects the tone generator of a note
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// NewTone returns freq Hz of the given wave cut to duration
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		s, err = generators.SineTone(rate, freq)
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveTriangle:
		s, err = generators.TriangleTone(rate, freq)
	default:
		return nil, errors.Errorf("audio: unknown wave %d", wave)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "audio: %.2f Hz tone", freq)
	}
	return beep.Take(rate.N(duration), s), nil
}

// fade applies a linear ramp in and out over a fixed span of samples
type fade struct {
	src     beep.Streamer
	pos     int
	in, out int
	span    int
}

// NewEnvelope shapes s, attack and release share the duration evenly when they do not fit
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	f := &fade{src: s, span: rate.N(duration), in: rate.N(attack), out: rate.N(release)}
	if f.in+f.out > f.span {
		f.in = f.span / 2
		f.out = f.span - f.in
	}
	return f
}

func (f *fade) gain() float64 {
	switch {
	case f.in > 0 && f.pos < f.in:
		return float64(f.pos) / float64(f.in)
	case f.out > 0 && f.pos >= f.span-f.out:
		return float64(f.span-f.pos) / float64(f.out)
	}
	return 1
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	if left := f.span - f.pos; left < len(samples) {
		samples = samples[:left]
	}
	if len(samples) == 0 {
		return 0, false
	}
	n, ok := f.src.Stream(samples)
	for i := range samples[:n] {
		g := f.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.src.Err() }

// newVolume maps a linear level in [0,1] onto the log2 volume effect, 0 is silent
func newVolume(s beep.Streamer, level float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if level <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(min(level, 1))
	return v
}
