// @focus: #editor { loop, lifecycle }
package editor

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/core"
	"github.com/lixenwraith/sendama/engine"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
	"github.com/lixenwraith/sendama/status"
)

// Observer is a pane driven by the loop, Update always runs before Render within a tick
type Observer interface {
	Update(in panel.Input)
	Render(s render.Surface)
}

// Options are the loop collaborators, zero fields get defaults where one exists
type Options struct {
	Settings config.Settings
	Project  *config.Project
	Keymap   config.Keymap
	Terminal Terminal
	Surface  render.Surface
	Bus      *event.Bus
	Panels   *panel.Group
	Registry *status.Registry

	// Initial overrides Settings.InitialState
	Initial State

	// Time source and sleep, real clock and time.Sleep when nil
	TimeProvider engine.TimeProvider
	Sleep        func(time.Duration)

	// Signals observed at tick boundaries, SIGINT and SIGTERM when nil
	Signals []os.Signal
}

// Loop runs the fixed-tick editor cycle and owns the terminal mode
type Loop struct {
	event.Emitter

	settings  config.Settings
	project   *config.Project
	keymap    config.Keymap
	term      Terminal
	surface   render.Surface
	bus       *event.Bus
	clock     *engine.Clock
	input     *input.Translator
	machine   *Machine
	scheduler *engine.Scheduler
	panels    *panel.Group
	registry  *status.Registry
	metrics   *status.EditorMetrics
	sleep     func(time.Duration)
	signals   []os.Signal

	observers []Observer
	initial   State

	running  atomic.Bool
	started  bool
	saved    bool
	finished bool
	overlay  bool
	dirty    bool
	failure  error
}

// New wires a loop, the terminal and surface are required
func New(opts Options) (*Loop, error) {
	if opts.Terminal == nil {
		return nil, errors.New("editor: terminal is required")
	}
	if opts.Surface == nil {
		return nil, errors.New("editor: surface is required")
	}

	l := &Loop{
		settings: opts.Settings,
		project:  opts.Project,
		keymap:   opts.Keymap,
		term:     opts.Terminal,
		surface:  opts.Surface,
		bus:      opts.Bus,
		panels:   opts.Panels,
		registry: opts.Registry,
		sleep:    opts.Sleep,
		signals:  opts.Signals,
		initial:  opts.Initial,
		overlay:  opts.Settings.OverlayEnabled(),
	}
	if l.bus == nil {
		l.bus = event.NewBus()
	}
	if l.project == nil {
		l.project = &config.Project{Name: config.DefaultProjectName}
	}
	if l.registry == nil {
		l.registry = status.NewRegistry()
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	if l.signals == nil {
		l.signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	if l.initial == nil {
		l.initial = NewInitialState(opts.Settings.InitialState)
	}
	if len(l.keymap.Buttons) == 0 {
		l.keymap = config.DefaultKeymap()
	}

	provider := opts.TimeProvider
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}

	l.Emitter = event.NewEmitter(l.bus, l)
	l.clock = engine.NewClock(provider)
	l.clock.Observe(l.bus)
	l.scheduler = engine.NewScheduler(opts.Settings.TargetFPS, provider, l.sleep)
	l.metrics = status.NewEditorMetrics(l.registry)

	l.input = input.NewTranslator(opts.Terminal, nil, l.bus)
	l.input.AddButtons(l.keymap.Buttons...)
	if len(l.keymap.Axes) > 0 {
		l.input.AddAxes(l.keymap.Axes...)
	}

	l.machine = NewMachine(l.bus, l.newContext)
	if l.panels != nil {
		l.observers = append(l.observers, l.panels)
	}
	return l, nil
}

func (l *Loop) newContext() *Context {
	return &Context{
		Settings: l.settings,
		Project:  l.project,
		Keymap:   l.keymap,
		Panels:   l.panels,
		Input:    l.input,
		Clock:    l.clock,
		Bus:      l.bus,
		Surface:  l.surface,
		loop:     l,
	}
}

// AddObserver registers a pane after the built-in panels
func (l *Loop) AddObserver(o Observer) {
	l.observers = append(l.observers, o)
}

// OnNotify marks the surface for a full clear after a state change
func (l *Loop) OnNotify(ev event.Event) {
	if ev.Type == event.EditorStateChanged {
		l.dirty = true
	}
}

// Start saves the terminal, switches it to cbreak without echo and non-blocking reads,
// hides the cursor, shows the splash, enters the initial state and publishes EditorStarted
// A failing mode toggle restores the saved settings and aborts
func (l *Loop) Start() error {
	if l.started {
		return errors.New("editor: loop already started")
	}
	if err := l.term.SaveSettings(); err != nil {
		return errors.Wrap(err, "save terminal settings")
	}
	l.saved = true
	abort := func(err error, what string) error {
		if rerr := l.term.RestoreSettings(); rerr != nil {
			log.Printf("editor: restore after failed start: %v", rerr)
		}
		l.saved = false
		return errors.Wrap(err, what)
	}
	if err := l.term.DisableEcho(); err != nil {
		return abort(err, "disable echo")
	}
	if err := l.term.SetNonBlocking(true); err != nil {
		return abort(err, "set non-blocking input")
	}
	if err := l.term.SetCursorVisible(false); err != nil {
		return abort(err, "hide cursor")
	}

	core.SetCrashTerminal(l.term)
	l.started = true
	l.running.Store(true)
	l.metrics.Running.Store(true)
	l.bus.Subscribe(l, event.ScopeInstance, event.EditorStateChanged)

	l.showSplash()
	l.input.Reset()
	l.machine.SetState(l.initial)
	l.dirty = true

	log.Printf("editor: started in %s", l.machine.CurrentName())
	l.Notify(event.EditorStarted, nil)
	l.scheduler.Reset(l.clock.Frames())
	return nil
}

// Tick runs one cycle, it returns false when a stop was requested during update
func (l *Loop) Tick() bool {
	l.input.Capture()
	l.Notify(event.EditorInputHandled, map[string]any{event.KeyKey: string(l.input.Key())})

	if l.settings.Debug && l.input.IsButtonDown(config.ButtonOverlay) {
		l.overlay = !l.overlay
		l.dirty = true
	}

	l.machine.Update()
	for _, o := range l.observers {
		o.Update(l.input)
	}
	l.Notify(event.EditorUpdated, nil)

	if !l.running.Load() {
		return false
	}

	l.render()
	l.Notify(event.EditorRendered, map[string]any{event.KeyFrame: l.clock.Frames()})
	return true
}

func (l *Loop) render() {
	if l.dirty {
		if err := l.surface.Clear(); err != nil {
			log.Printf("editor: clear: %v", err)
		}
		l.dirty = false
	}
	l.machine.Render()
	for _, o := range l.observers {
		o.Render(l.surface)
	}
	if l.overlay {
		l.renderOverlay()
	}
	if err := l.surface.Flush(); err != nil {
		log.Printf("editor: flush: %v", err)
	}
}

// Run starts the loop and ticks until stopped, ctx is cancelled or a signal arrives
// Saved terminal settings are restored and EditorFinished is published on every return path,
// including a failed or panicking start
func (l *Loop) Run(ctx context.Context) (err error) {
	phase := "start"
	defer func() {
		if r := recover(); r != nil {
			err = fatalFromPanic(phase, r)
		}
		if err != nil {
			log.Printf("editor: %+v", err)
			l.running.Store(false)
			if l.saved {
				l.restoreModes()
			}
		}
		l.finish()
	}()

	if err := l.Start(); err != nil {
		return err
	}
	phase = "tick"

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, l.signals...)
	defer signal.Stop(sig)

	for l.running.Load() {
		select {
		case <-ctx.Done():
			log.Printf("editor: context done: %v", ctx.Err())
			l.Stop()
		case s := <-sig:
			log.Printf("editor: received %s", s)
			l.Stop()
		default:
		}
		if !l.running.Load() {
			break
		}

		l.scheduler.Begin()
		if !l.Tick() {
			break
		}
		l.scheduler.End(l.clock.Frames())
		l.recordMetrics()
	}

	if l.failure != nil {
		return &FatalError{Phase: "update", Err: l.failure}
	}
	l.stop()
	return nil
}

func (l *Loop) recordMetrics() {
	l.metrics.RecordTick(l.clock.Frames(), l.scheduler.FPS(), l.scheduler.Overruns(), l.clock.Delta(), l.clock.TimeScale())
	l.metrics.State.Store(l.machine.CurrentName())
}

// Stop requests a stop, observed at the next tick boundary
func (l *Loop) Stop() {
	l.running.Store(false)
}

func (l *Loop) fail(err error) {
	if err == nil {
		return
	}
	if l.failure == nil {
		l.failure = errors.WithStack(err)
	}
	l.Stop()
}

// Running reports whether the loop keeps ticking
func (l *Loop) Running() bool {
	return l.running.Load()
}

// stop publishes EditorStopped then gives echo, blocking reads and the cursor back
func (l *Loop) stop() {
	l.Notify(event.EditorStopped, nil)
	l.restoreModes()
	log.Printf("editor: stopped after %d frames", l.clock.Frames())
}

func (l *Loop) restoreModes() {
	if err := l.term.EnableEcho(); err != nil {
		log.Printf("editor: enable echo: %v", err)
	}
	if err := l.term.SetNonBlocking(false); err != nil {
		log.Printf("editor: restore blocking input: %v", err)
	}
	if err := l.term.SetCursorVisible(true); err != nil {
		log.Printf("editor: show cursor: %v", err)
	}
}

// finish restores the saved settings if a start left them modified and publishes EditorFinished, runs once
func (l *Loop) finish() {
	if l.finished {
		return
	}
	l.finished = true
	l.metrics.Running.Store(false)

	if l.saved {
		if err := l.term.RestoreSettings(); err != nil {
			log.Printf("editor: restore terminal settings: %v", err)
		}
		l.saved = false
	}
	core.SetCrashTerminal(nil)

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("editor: EditorFinished subscriber panicked: %v", r)
			}
		}()
		l.Notify(event.EditorFinished, nil)
	}()
	l.bus.CloseInstance()
}

func (l *Loop) Bus() *event.Bus              { return l.bus }
func (l *Loop) Clock() *engine.Clock         { return l.clock }
func (l *Loop) Input() *input.Translator     { return l.input }
func (l *Loop) Machine() *Machine            { return l.machine }
func (l *Loop) Scheduler() *engine.Scheduler { return l.scheduler }
func (l *Loop) Registry() *status.Registry   { return l.registry }
func (l *Loop) OverlayEnabled() bool         { return l.overlay }
func (l *Loop) Settings() config.Settings    { return l.settings }
