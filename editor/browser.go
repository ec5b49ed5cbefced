package editor

import (
	"log"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
)

// BrowserState lists the project scenes full screen, confirming one opens it in Edit
type BrowserState struct {
	BaseState
	list panel.List
}

func NewBrowserState() *BrowserState {
	return &BrowserState{}
}

func (s *BrowserState) Name() string { return StateProjectBrowser }

func (s *BrowserState) Enter(ctx *Context) {
	s.BaseState.Enter(ctx)
	if ctx.Panels != nil {
		ctx.Panels.Hide()
	}
	s.list = panel.List{}
	if ctx.Project != nil {
		s.list.SetItems(ctx.Project.Scenes)
		s.list.Move(ctx.Project.ActiveScene)
	}
}

func (s *BrowserState) Exit(ctx *Context) {
	if ctx.Panels != nil {
		ctx.Panels.Show()
	}
}

// Selected returns the highlighted scene index, -1 when the project has none
func (s *BrowserState) Selected() int {
	return s.list.Selected()
}

func (s *BrowserState) Update() {
	ctx := s.Context()
	switch {
	case ctx.ButtonDown(config.ButtonQuit):
		ctx.Stop()
	case ctx.ButtonDown(config.ButtonConfirm):
		s.open(ctx)
	default:
		if ctx.Input != nil {
			if v := ctx.Input.GetAxis(input.AxisVertical); v != 0 {
				s.list.Move(v)
			}
		}
	}
}

// open activates the selected scene, a failing manifest write or scene read is a soft warning
func (s *BrowserState) open(ctx *Context) {
	if i := s.list.Selected(); i >= 0 && ctx.Project != nil {
		if err := ctx.Project.SetActiveScene(i); err != nil {
			log.Printf("editor: activate scene %d: %v", i, err)
		}
		scene, err := config.LoadScene(ctx.Settings.AssetsDir, ctx.Project.Active())
		if err != nil {
			log.Printf("editor: load scene: %v", err)
		}
		if ctx.Panels != nil {
			ctx.Panels.LoadScene(scene)
		}
	}
	s.SetState(NewEditState())
}

func (s *BrowserState) Render() {
	ctx := s.Context()
	if ctx == nil || ctx.Surface == nil {
		return
	}
	title := config.DefaultProjectName
	if ctx.Project != nil {
		title = ctx.Project.Name
	}
	r := panel.NewRegion(ctx.Surface, 0, 0, ctx.Settings.Width, ctx.Settings.Height)
	inner := r.Card("Project: "+title, panel.LineRounded, render.StyleAccent)

	if len(s.list.Items) == 0 {
		inner.Text(1, 1, "No scenes loaded", render.StyleDim)
	} else {
		s.list.Render(inner.Sub(1, 1, inner.W-2, inner.H-3), true)
	}
	inner.Text(1, inner.H-1, "[↑/↓] Select  [Enter] Open  [q] Quit", render.StyleDim)
	logRender(s.Name(), r)
}
