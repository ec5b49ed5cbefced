package editor

import (
	"fmt"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
)

// EditState is the default authoring mode with the side panes live
type EditState struct {
	BaseState
}

func NewEditState() *EditState {
	return &EditState{}
}

func (s *EditState) Name() string { return StateEdit }

func (s *EditState) Update() {
	ctx := s.Context()
	switch {
	case ctx.ButtonDown(config.ButtonQuit):
		ctx.Stop()
	case ctx.ButtonDown(config.ButtonPlay):
		s.SetState(NewPlayState())
	case ctx.ButtonDown(config.ButtonBrowser):
		s.SetState(NewBrowserState())
	case ctx.Input != nil && ctx.Input.IsKeyDown(input.KeyEscape, false):
		s.SetState(NewModalState("Quit the editor?", func(c *Context) { c.Stop() }, s))
	case ctx.ButtonDown(config.ButtonFocus):
		if ctx.Panels != nil {
			ctx.Panels.CycleFocus()
		}
	}
}

func (s *EditState) Render() {
	r, ok := workArea(s.Context())
	if !ok {
		return
	}
	ctx := s.Context()

	scene := "(none)"
	if ctx.Project != nil && ctx.Project.Active() != "" {
		scene = ctx.Project.Active()
	}
	objects := 0
	if ctx.Panels != nil {
		objects = len(ctx.Panels.Hierarchy.Objects())
	}

	inner := r.Card("Scene", panel.LineSingle, render.StyleDim)
	inner.Text(1, 0, "Scene: "+scene, render.StyleNormal)
	inner.Text(1, 1, fmt.Sprintf("Objects: %d", objects), render.StyleNormal)
	inner.Text(1, inner.H-1, "[F5] Play  [F2] Scenes  [Tab] Focus  [q] Quit", render.StyleDim)
	logRender(s.Name(), r)
}
