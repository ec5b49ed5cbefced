// @focus: #editor { state }
package editor

import (
	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/engine"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
)

// State names
const (
	StateProjectBrowser = "ProjectBrowser"
	StateEdit           = "Edit"
	StatePlay           = "Play"
	StateModal          = "Modal"
)

// State is one editor mode, exactly one is active at a time
// Update and Render read the context received by the last Enter
type State interface {
	Name() string
	Enter(ctx *Context)
	Update()
	Render()
	Exit(ctx *Context)
}

// Context is the bundle of shared resources handed to Enter and Exit
// Built fresh for every transition, owned by the loop
type Context struct {
	Settings config.Settings
	Project  *config.Project
	Keymap   config.Keymap
	Panels   *panel.Group
	Input    *input.Translator
	Clock    *engine.Clock
	Bus      *event.Bus
	Surface  render.Surface

	machine *Machine
	loop    *Loop
}

// SetState requests a transition, applied once the current update returns
func (c *Context) SetState(next State) {
	c.machine.SetState(next)
}

// Stop asks the loop to stop at the next tick boundary
func (c *Context) Stop() {
	if c.loop != nil {
		c.loop.Stop()
	}
}

// Running reports whether the loop keeps ticking
func (c *Context) Running() bool {
	return c.loop == nil || c.loop.Running()
}

// Fail stops the loop with a fatal error
func (c *Context) Fail(err error) {
	if c.loop != nil {
		c.loop.fail(err)
	}
}

// ButtonDown reports the press edge of a keymap button
func (c *Context) ButtonDown(name string) bool {
	return c.Input != nil && c.Input.IsButtonDown(name)
}

// BaseState supplies the context bookkeeping and no-op hooks
type BaseState struct {
	ctx *Context
}

func (b *BaseState) Enter(ctx *Context) { b.ctx = ctx }
func (b *BaseState) Exit(*Context)      {}
func (b *BaseState) Update()            {}
func (b *BaseState) Render()            {}

// Context returns the context of the last Enter
func (b *BaseState) Context() *Context { return b.ctx }

// SetState forwards to the host machine
func (b *BaseState) SetState(next State) {
	if b.ctx != nil {
		b.ctx.SetState(next)
	}
}

// NewInitialState maps a settings value to a state
func NewInitialState(name string) State {
	if name == config.StateBrowser {
		return NewBrowserState()
	}
	return NewEditState()
}
