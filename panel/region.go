// @focus: #panel { region }
package panel

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sendama/render"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineDouble                  // ╔═╗║╚╝
	LineHeavy                   // ┏━┓┃┗┛
	LineASCII                   // +-+|++
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]string{
	LineSingle:  {"┌", "─", "┐", "│", "└", "┘"},
	LineRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	LineDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	LineHeavy:   {"┏", "━", "┓", "┃", "┗", "┛"},
	LineASCII:   {"+", "-", "+", "|", "+", "+"},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Region is a rectangular area of a surface
// All coordinates are relative to the region's origin, writes outside it are dropped
type Region struct {
	s          render.Surface
	X, Y, W, H int
	err        *error
}

// NewRegion creates a region over s
func NewRegion(s render.Surface, x, y, w, h int) Region {
	return Region{s: s, X: x, Y: y, W: w, H: h, err: new(error)}
}

// Sub returns a nested region clipped to the parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{s: r.s, X: r.X + x, Y: r.Y + y, W: max(w, 0), H: max(h, 0), err: r.err}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Err returns the first surface failure seen by this region or its parents
// Out of bounds writes are not failures
func (r Region) Err() error {
	if r.err == nil {
		return nil
	}
	return *r.err
}

func (r Region) record(err error) {
	if err == nil || errors.Cause(err) == render.ErrOutOfBounds || r.err == nil || *r.err != nil {
		return
	}
	*r.err = err
}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, style render.Style) {
	if y < 0 || y >= r.H || x >= r.W || x < 0 {
		return
	}
	s = render.Clip(s, r.W-x)
	if s == "" {
		return
	}
	r.record(r.s.WriteStyled(r.X+x, r.Y+y, s, style))
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style render.Style) {
	r.Text(render.CenterX(s, r.W), y, s, style)
}

// Fill blanks every row of the region
func (r Region) Fill(style render.Style) {
	blank := strings.Repeat(" ", max(r.W, 0))
	for y := 0; y < r.H; y++ {
		r.Text(0, y, blank, style)
	}
}

// Box draws border around region edge
func (r Region) Box(line LineType, style render.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]
	inner := strings.Repeat(chars[boxH], r.W-2)

	r.Text(0, 0, chars[boxTL]+inner+chars[boxTR], style)
	for y := 1; y < r.H-1; y++ {
		r.Text(0, y, chars[boxV], style)
		r.Text(r.W-1, y, chars[boxV], style)
	}
	r.Text(0, r.H-1, chars[boxBL]+inner+chars[boxBR], style)
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, style render.Style) Region {
	r.Box(line, style)

	if title != "" && r.W > 4 {
		display := render.Clip(title, r.W-4)
		r.Text(render.CenterX(display, r.W-2), 0, " "+display+" ", render.StyleAccent)
	}
	return r.Inset(1)
}
