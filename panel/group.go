package panel

import (
	"log"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/render"
)

// SideWidth is the column count of the side panes
const SideWidth = 35

// Group owns the editor panes and the focus ring
type Group struct {
	Hierarchy *Hierarchy
	Assets    *Assets
	Inspector *Inspector

	panels []Panel
	focus  int
}

// Layout is a pane rectangle
type Layout struct {
	X, Y, W, H int
}

// Layouts returns hierarchy, assets and inspector rectangles for a width x height editor
// Hierarchy and assets split the left column, the inspector fills the right column
func Layouts(width, height int) (hierarchy, assets, inspector Layout) {
	side := min(SideWidth, width)
	top := height / 2
	hierarchy = Layout{0, 0, side, top}
	assets = Layout{0, top, side, height - top}
	inspector = Layout{max(width-side, 0), 0, side, height}
	return
}

// NewGroup builds the panes for the given size, the hierarchy starts focused
func NewGroup(bus *event.Bus, width, height int, assetsDir string, changes <-chan struct{}) *Group {
	hl, al, il := Layouts(width, height)
	g := &Group{
		Hierarchy: NewHierarchy(bus, hl.X, hl.Y, hl.W, hl.H),
		Assets:    NewAssets(assetsDir, changes, al.X, al.Y, al.W, al.H),
		Inspector: NewInspector(bus, il.X, il.Y, il.W, il.H),
	}
	g.panels = []Panel{g.Hierarchy, g.Assets, g.Inspector}
	g.Hierarchy.Focus()
	return g
}

// LoadScene fills the hierarchy from scene
func (g *Group) LoadScene(scene *config.Scene) {
	if scene == nil {
		g.Hierarchy.SetObjects(nil)
		return
	}
	g.Hierarchy.SetObjects(scene.Hierarchy)
}

// Panels returns the panes in focus order
func (g *Group) Panels() []Panel {
	return g.panels
}

// Focused returns the focused pane, nil when none is
func (g *Group) Focused() Panel {
	if g.focus < 0 || g.focus >= len(g.panels) || !g.panels[g.focus].IsFocused() {
		return nil
	}
	return g.panels[g.focus]
}

// CycleFocus blurs the focused pane and focuses the next enabled one
func (g *Group) CycleFocus() {
	if len(g.panels) == 0 {
		return
	}
	g.panels[g.focus].Blur()
	for i := 1; i <= len(g.panels); i++ {
		next := (g.focus + i) % len(g.panels)
		if g.panels[next].IsEnabled() {
			g.focus = next
			g.panels[next].Focus()
			return
		}
	}
}

// Suspend blurs every pane so they stop reacting to input, Resume restores the focus
func (g *Group) Suspend() {
	for _, p := range g.panels {
		p.Blur()
	}
}

func (g *Group) Resume() {
	if len(g.panels) == 0 || g.Focused() != nil {
		return
	}
	if g.panels[g.focus].IsEnabled() {
		g.panels[g.focus].Focus()
		return
	}
	g.CycleFocus()
}

// Hide disables every pane, Show enables them again and restores the focus
func (g *Group) Hide() {
	for _, p := range g.panels {
		p.Disable()
	}
}

func (g *Group) Show() {
	for _, p := range g.panels {
		p.Enable()
	}
	g.Resume()
}

// Update runs every enabled pane
func (g *Group) Update(in Input) {
	for _, p := range g.panels {
		if p.IsEnabled() {
			p.Update(in)
		}
	}
}

// Render draws every enabled pane, failures are logged and skipped
func (g *Group) Render(s render.Surface) {
	for _, p := range g.panels {
		if err := p.Render(s); err != nil {
			log.Printf("panel: render %s: %v", p.Title(), err)
		}
	}
}

// Close releases pane subscriptions
func (g *Group) Close() {
	g.Inspector.Close()
}
