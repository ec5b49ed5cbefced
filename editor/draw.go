package editor

import (
	"log"

	"github.com/lixenwraith/sendama/panel"
)

const minWorkWidth = 20

// workArea is the column between the side panes, or the whole surface when too narrow
func workArea(ctx *Context) (panel.Region, bool) {
	if ctx == nil || ctx.Surface == nil {
		return panel.Region{}, false
	}
	w, h := ctx.Settings.Width, ctx.Settings.Height
	x, aw := panel.SideWidth, w-2*panel.SideWidth
	if aw < minWorkWidth {
		x, aw = 0, w
	}
	return panel.NewRegion(ctx.Surface, x, 0, aw, h), true
}

// centered returns a w x h region centered in r
func centered(r panel.Region, w, h int) panel.Region {
	return r.Sub((r.W-w)/2, (r.H-h)/2, w, h)
}

func logRender(what string, r panel.Region) {
	if err := r.Err(); err != nil {
		log.Printf("editor: render %s: %v", what, err)
	}
}
