package editor

import (
	"fmt"

	"github.com/lixenwraith/sendama/core"
	"github.com/lixenwraith/sendama/engine"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
	"github.com/lixenwraith/sendama/status"
)

// overlayContent gathers the debug readout
func (l *Loop) overlayContent() *core.OverlayContent {
	c := &core.OverlayContent{}
	c.Add(
		core.OverlayLine{Text: fmt.Sprintf("FPS: %d, Delta: %.4f", l.scheduler.FPS(), l.clock.Delta().Seconds())},
		core.OverlayLine{Text: "Time: " + l.clock.PrettyElapsed(engine.Seconds)},
	)

	card := core.OverlayCard{Title: "Editor"}
	for _, m := range l.registry.Snapshot() {
		switch m.Key {
		case status.KeyState, status.KeyOverruns, status.KeyTimeScale:
			card.Entries = append(card.Entries, core.CardEntry{Key: m.Key, Value: m.Value})
		}
	}
	if len(card.Entries) > 0 {
		c.Add(card)
	}
	return c
}

// renderOverlay draws the readout in a box at the top center
func (l *Loop) renderOverlay() {
	lines := l.overlayContent().Lines()
	w := render.BlockWidth(lines) + 4
	h := len(lines) + 2

	full := panel.NewRegion(l.surface, 0, 0, l.settings.Width, l.settings.Height)
	box := full.Sub((full.W-w)/2, 0, w, h)
	box.Fill(render.StyleNormal)
	inner := box.Card("Debug", panel.LineSingle, render.StyleDim)
	for i, line := range lines {
		inner.Text(1, i, line, render.StyleNormal)
	}
	logRender("overlay", box)
}
