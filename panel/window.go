// @focus: #panel { window }
package panel

import (
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/render"
)

// Input is the per-tick query surface panels read
type Input interface {
	GetAxis(name input.AxisName) int
	IsButtonDown(name string) bool
}

// Panel is a bordered editor pane
type Panel interface {
	Title() string
	Update(in Input)
	Render(s render.Surface) error
	Enable()
	Disable()
	IsEnabled() bool
	Focus()
	Blur()
	IsFocused() bool
}

// Window is the shared pane state, content is drawn inside the border
type Window struct {
	title      string
	X, Y, W, H int
	Lines      []string

	enabled bool
	focused bool
}

// NewWindow creates an enabled, unfocused window
func NewWindow(title string, x, y, w, h int) *Window {
	return &Window{title: title, X: x, Y: y, W: w, H: h, enabled: true}
}

func (w *Window) Title() string   { return w.title }
func (w *Window) Enable()         { w.enabled = true }
func (w *Window) Disable()        { w.enabled = false; w.focused = false }
func (w *Window) IsEnabled() bool { return w.enabled }
func (w *Window) Focus()          { w.focused = w.enabled }
func (w *Window) Blur()           { w.focused = false }
func (w *Window) IsFocused() bool { return w.focused }

// Update is a no-op for static windows
func (w *Window) Update(Input) {}

// Frame draws the border and returns the content region
func (w *Window) Frame(s render.Surface) Region {
	line, style := LineSingle, render.StyleDim
	if w.focused {
		line, style = LineHeavy, render.StyleAccent
	}
	r := NewRegion(s, w.X, w.Y, w.W, w.H)
	r.Fill(render.StyleNormal)
	return r.Card(w.title, line, style)
}

// Render draws the border and Lines, disabled windows draw nothing
func (w *Window) Render(s render.Surface) error {
	if !w.enabled {
		return nil
	}
	inner := w.Frame(s)
	for i, l := range w.Lines {
		inner.Text(0, i, l, render.StyleNormal)
	}
	return inner.Err()
}
