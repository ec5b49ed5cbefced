package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the output rate for every cue
const SampleRate = beep.SampleRate(44100)

// Cue identifies a short editor sound
type Cue int

const (
	CueEnterPlay Cue = iota // rising two-tone
	CueLeavePlay            // single soft tone
	CueStop                 // falling two-tone
	CueCount
)

var cueNames = [CueCount]string{"enter_play", "leave_play", "stop"}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// tone is one note of a cue
type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

const (
	toneLength  = 90 * time.Millisecond
	toneAttack  = 5 * time.Millisecond
	toneRelease = 40 * time.Millisecond
)

var cueTones = [CueCount][]tone{
	CueEnterPlay: {{523.25, toneLength, WaveSine}, {783.99, toneLength, WaveSine}}, // C5 G5
	CueLeavePlay: {{659.25, toneLength, WaveTriangle}},                             // E5
	CueStop:      {{783.99, toneLength, WaveSine}, {392.00, 2 * toneLength, WaveSine}},
}

// Duration returns the total cue length
func (c Cue) Duration() time.Duration {
	if c < 0 || c >= CueCount {
		return 0
	}
	var d time.Duration
	for _, t := range cueTones[c] {
		d += t.duration
	}
	return d
}

// BuildCue renders c as a streamer at volume in [0,1]
func BuildCue(c Cue, volume float64) beep.Streamer {
	if c < 0 || c >= CueCount {
		return beep.Silence(0)
	}
	parts := make([]beep.Streamer, 0, len(cueTones[c]))
	for _, t := range cueTones[c] {
		tn, err := NewTone(t.freq, t.duration, t.wave, SampleRate)
		if err != nil {
			log.Printf("audio: cue %s: %v", c, err)
			tn = beep.Silence(SampleRate.N(t.duration))
		}
		parts = append(parts, NewEnvelope(tn, t.duration, toneAttack, toneRelease, SampleRate))
	}
	return newVolume(beep.Seq(parts...), volume)
}
