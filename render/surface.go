// @focus: #render { surface }
package render

import "github.com/pkg/errors"

// Style is a semantic text style, each surface maps it to its own attributes
type Style uint8

const (
	StyleNormal Style = iota
	StyleAccent
	StyleDim
	StyleSelected
)

// ErrOutOfBounds is returned for writes starting outside the surface
var ErrOutOfBounds = errors.New("write outside surface")

// Surface is the drawing capability consumed by the editor
// Callers treat every error as a skipped draw, never as fatal
type Surface interface {
	Clear() error
	WriteAt(x, y int, text string) error
	WriteStyled(x, y int, text string, style Style) error
	SetCursorVisible(visible bool) error
	Dimensions() (width, height int, err error)
	Flush() error
}
