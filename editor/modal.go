package editor

import (
	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
)

const modalHint = "[y] Yes   [n] No"

// ModalState asks a yes/no question over the previous state
type ModalState struct {
	BaseState
	Prompt    string
	onConfirm func(*Context)
	previous  State
}

// NewModalState creates a prompt, previous is restored on cancel and after a confirm that keeps running
func NewModalState(prompt string, onConfirm func(*Context), previous State) *ModalState {
	return &ModalState{Prompt: prompt, onConfirm: onConfirm, previous: previous}
}

func (s *ModalState) Name() string { return StateModal }

func (s *ModalState) Enter(ctx *Context) {
	s.BaseState.Enter(ctx)
	if ctx.Panels != nil {
		ctx.Panels.Suspend()
	}
}

func (s *ModalState) Exit(ctx *Context) {
	if ctx.Panels != nil {
		ctx.Panels.Resume()
	}
}

func (s *ModalState) Update() {
	ctx := s.Context()
	switch {
	case ctx.ButtonDown(config.ButtonConfirm):
		if s.onConfirm != nil {
			s.onConfirm(ctx)
		}
		if ctx.Running() {
			s.back()
		}
	case ctx.ButtonDown(config.ButtonCancel):
		s.back()
	}
}

func (s *ModalState) back() {
	if s.previous != nil {
		s.SetState(s.previous)
		return
	}
	s.SetState(NewEditState())
}

func (s *ModalState) Render() {
	ctx := s.Context()
	if ctx == nil || ctx.Surface == nil {
		return
	}
	full := panel.NewRegion(ctx.Surface, 0, 0, ctx.Settings.Width, ctx.Settings.Height)
	w := max(render.Width(s.Prompt), render.Width(modalHint)) + 6
	box := centered(full, w, 6)
	box.Fill(render.StyleNormal)
	inner := box.Card("Confirm", panel.LineDouble, render.StyleAccent)
	inner.TextCenter(1, s.Prompt, render.StyleNormal)
	inner.TextCenter(3, modalHint, render.StyleDim)
	logRender(s.Name(), box)
}
