package editor

import (
	"time"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/engine"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
)

// PlayState previews the scene, pausing sets the clock time scale to zero
type PlayState struct {
	BaseState
	played time.Duration
	paused bool
}

func NewPlayState() *PlayState {
	return &PlayState{}
}

func (s *PlayState) Name() string { return StatePlay }

func (s *PlayState) Enter(ctx *Context) {
	s.BaseState.Enter(ctx)
	s.played, s.paused = 0, false
	if ctx.Clock != nil {
		ctx.Clock.SetTimeScale(1)
	}
	if ctx.Panels != nil {
		ctx.Panels.Suspend()
	}
}

func (s *PlayState) Exit(ctx *Context) {
	if ctx.Clock != nil {
		ctx.Clock.SetTimeScale(1)
	}
	if ctx.Panels != nil {
		ctx.Panels.Resume()
	}
}

// Played returns the scaled play time
func (s *PlayState) Played() time.Duration { return s.played }

func (s *PlayState) Paused() bool { return s.paused }

func (s *PlayState) Update() {
	ctx := s.Context()
	if ctx.Clock != nil {
		s.played += ctx.Clock.ScaledDelta()
	}
	switch {
	case ctx.ButtonDown(config.ButtonPlay),
		ctx.Input != nil && ctx.Input.IsKeyDown(input.KeyEscape, false):
		s.SetState(NewEditState())
	case ctx.ButtonDown(config.ButtonPause):
		s.paused = !s.paused
		if ctx.Clock != nil {
			scale := 1.0
			if s.paused {
				scale = 0
			}
			ctx.Clock.SetTimeScale(scale)
		}
	}
}

func (s *PlayState) Render() {
	r, ok := workArea(s.Context())
	if !ok {
		return
	}
	banner, style := "▶ PLAYING", render.StyleAccent
	if s.paused {
		banner, style = "❚❚ PAUSED", render.StyleDim
	}
	inner := r.Card("Play", panel.LineHeavy, render.StyleAccent)
	inner.TextCenter(0, banner, style)
	inner.TextCenter(1, "Time: "+engine.FormatElapsed(s.played, engine.Seconds), render.StyleNormal)
	inner.Text(1, inner.H-1, "[Space] Pause  [F5/Esc] Stop", render.StyleDim)
	logRender(s.Name(), r)
}
