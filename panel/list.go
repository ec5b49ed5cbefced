package panel

import "github.com/lixenwraith/sendama/render"

// List is a scrollable single-selection list state
type List struct {
	Items  []string
	Cursor int
	Scroll int
}

// SetItems replaces the items, keeping the cursor in range
func (l *List) SetItems(items []string) {
	l.Items = items
	l.clamp()
}

// Move shifts the cursor by delta, returns true if it changed
func (l *List) Move(delta int) bool {
	prev := l.Cursor
	l.Cursor += delta
	l.clamp()
	return l.Cursor != prev
}

// Selected returns the cursor index, -1 when empty
func (l *List) Selected() int {
	if len(l.Items) == 0 {
		return -1
	}
	return l.Cursor
}

func (l *List) clamp() {
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// ensureVisible adjusts scroll so the cursor row is within height rows
func (l *List) ensureVisible(height int) {
	if height <= 0 {
		return
	}
	if l.Cursor < l.Scroll {
		l.Scroll = l.Cursor
	}
	if l.Cursor >= l.Scroll+height {
		l.Scroll = l.Cursor - height + 1
	}
	if l.Scroll < 0 {
		l.Scroll = 0
	}
}

// Render draws visible items, the cursor row is highlighted when active
func (l *List) Render(r Region, active bool) {
	l.ensureVisible(r.H)
	for y := 0; y < r.H; y++ {
		idx := l.Scroll + y
		if idx >= len(l.Items) {
			break
		}
		style := render.StyleNormal
		if idx == l.Cursor {
			style = render.StyleDim
			if active {
				style = render.StyleSelected
			}
		}
		r.Text(0, y, render.Pad(l.Items[idx], r.W), style)
	}
}
