package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in terminal cells
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Clip truncates s to at most width cells, wide runes are never split
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// Pad clips or right-pads s with spaces to exactly width cells
func Pad(s string, width int) string {
	s = Clip(s, width)
	if w := runewidth.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// CenterX returns the column that centers s in a span of width cells, never negative
func CenterX(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// BlockWidth returns the widest line of lines
func BlockWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	return w
}
