package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sendama/event"
)

// DefaultVolume is the linear cue volume
const DefaultVolume = 0.4

// Output is the sink cues are mixed into
type Output interface {
	Open(rate beep.SampleRate, buffer int) error
	Add(s beep.Streamer)
	Close()
}

// speakerOutput plays through the system speaker via a shared mixer
type speakerOutput struct {
	mixer beep.Mixer
}

func (o *speakerOutput) Open(rate beep.SampleRate, buffer int) error {
	if err := speaker.Init(rate, buffer); err != nil {
		return err
	}
	speaker.Play(&o.mixer)
	return nil
}

func (o *speakerOutput) Add(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// CueService plays short tones on editor transitions
// Handles graceful degradation when no audio device is available
type CueService struct {
	mu        sync.Mutex
	bus       *event.Bus
	output    Output
	playState string
	volume    float64
	subID     string

	enabled  bool
	running  atomic.Bool
	disabled atomic.Bool
	played   [CueCount]atomic.Uint64
}

// NewService creates a cue service listening on bus
// playState is the state name whose entry and exit trigger cues
func NewService(bus *event.Bus, playState string) *CueService {
	return NewServiceWithOutput(bus, playState, &speakerOutput{})
}

// NewServiceWithOutput is NewService with an explicit sink
func NewServiceWithOutput(bus *event.Bus, playState string, out Output) *CueService {
	return &CueService{
		bus:       bus,
		output:    out,
		playState: playState,
		volume:    DefaultVolume,
	}
}

// ServiceName is the hub key of the cue service
const ServiceName = "audio"

// Name implements service.Service
func (s *CueService) Name() string {
	return ServiceName
}

// Dependencies implements service.Service
func (s *CueService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - sound enabled, default off
func (s *CueService) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = false
	if len(args) > 0 {
		if on, ok := args[0].(bool); ok {
			s.enabled = on
		}
	}
	return nil
}

// Start implements service.Service
// Opens the device and subscribes; a missing device disables the service without error
func (s *CueService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.running.Load() {
		return nil
	}
	if err := s.output.Open(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("audio: output unavailable, cues disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	s.subID = s.bus.Subscribe(s, event.ScopeStatic, event.EditorStateChanged, event.EditorStopped)
	s.running.Store(true)
	return nil
}

// Stop implements service.Service
func (s *CueService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return nil
	}
	s.bus.UnsubscribeID(s.subID)
	s.output.Close()
	s.running.Store(false)
	return nil
}

// OnNotify maps editor events to cues
func (s *CueService) OnNotify(ev event.Event) {
	switch ev.Type {
	case event.EditorStateChanged:
		switch {
		case ev.GetString(event.KeyTo) == s.playState:
			s.Play(CueEnterPlay)
		case ev.GetString(event.KeyFrom) == s.playState:
			s.Play(CueLeavePlay)
		}
	case event.EditorStopped:
		s.Play(CueStop)
	}
}

// Play queues a cue, returns false when audio is off
func (s *CueService) Play(c Cue) bool {
	if !s.running.Load() || c < 0 || c >= CueCount {
		return false
	}
	s.output.Add(BuildCue(c, s.volume))
	s.played[c].Add(1)
	return true
}

// Played returns how many times c was queued
func (s *CueService) Played(c Cue) uint64 {
	if c < 0 || c >= CueCount {
		return 0
	}
	return s.played[c].Load()
}

// IsRunning reports whether cues reach the output
func (s *CueService) IsRunning() bool {
	return s.running.Load()
}

// IsDisabled returns true if the output failed to open
func (s *CueService) IsDisabled() bool {
	return s.disabled.Load()
}
