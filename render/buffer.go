package render

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// Cell is one character cell of a Buffer
type Cell struct {
	Rune  rune
	Style Style
}

// Buffer is an in-memory Surface backed by a cell array with dirty tracking
// Used for headless runs and as the test double for every drawing component
type Buffer struct {
	mu      sync.Mutex
	cells   []Cell
	touched []bool
	width   int
	height  int

	cursorVisible bool
	flushes       int

	// Fail, when set, is returned by every operation
	Fail error
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{cursorVisible: true}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.clear()
}

func (b *Buffer) clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
		b.touched[i] = false
	}
}

func (b *Buffer) Clear() error {
	if b.Fail != nil {
		return b.Fail
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clear()
	return nil
}

func (b *Buffer) WriteAt(x, y int, text string) error {
	return b.WriteStyled(x, y, text, StyleNormal)
}

func (b *Buffer) WriteStyled(x, y int, text string, style Style) error {
	if b.Fail != nil {
		return b.Fail
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return errors.Wrapf(ErrOutOfBounds, "write at %d,%d on %dx%d", x, y, b.width, b.height)
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > b.width {
			break
		}
		idx := y*b.width + x
		b.cells[idx] = Cell{Rune: r, Style: style}
		b.touched[idx] = true
		// Wide rune continuation cells stay blank
		for i := 1; i < rw; i++ {
			b.cells[idx+i] = Cell{Rune: 0, Style: style}
			b.touched[idx+i] = true
		}
		x += rw
	}
	return nil
}

func (b *Buffer) SetCursorVisible(visible bool) error {
	if b.Fail != nil {
		return b.Fail
	}
	b.mu.Lock()
	b.cursorVisible = visible
	b.mu.Unlock()
	return nil
}

func (b *Buffer) Dimensions() (int, int, error) {
	if b.Fail != nil {
		return 0, 0, b.Fail
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height, nil
}

func (b *Buffer) Flush() error {
	if b.Fail != nil {
		return b.Fail
	}
	b.mu.Lock()
	b.flushes++
	b.mu.Unlock()
	return nil
}

// Line returns row y as text with trailing blanks trimmed
func (b *Buffer) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines returns every row, see Line
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return lines
}

// Contains reports whether any row contains s
func (b *Buffer) Contains(s string) bool {
	for _, l := range b.Lines() {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

// StyleAt returns the style of the cell at x, y
func (b *Buffer) StyleAt(x, y int) Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return StyleNormal
	}
	return b.cells[y*b.width+x].Style
}

// Touched returns the number of cells written since the last clear
func (b *Buffer) Touched() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, t := range b.touched {
		if t {
			n++
		}
	}
	return n
}

func (b *Buffer) CursorVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorVisible
}

func (b *Buffer) Flushes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushes
}
