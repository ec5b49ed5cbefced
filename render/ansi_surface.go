package render

import (
	"bufio"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sendama/terminal"
)

// SizeFunc reports the current terminal dimensions
type SizeFunc func() (width, height int)

// ANSISurface draws with raw ANSI sequences into a buffered writer
// Nothing reaches the terminal until Flush
type ANSISurface struct {
	mu   sync.Mutex
	out  io.Writer
	w    *bufio.Writer
	size SizeFunc
}

// NewANSISurface creates a surface writing to out, sized by size
func NewANSISurface(out io.Writer, size SizeFunc) *ANSISurface {
	return &ANSISurface{
		out:  out,
		w:    bufio.NewWriterSize(out, 16*1024),
		size: size,
	}
}

var sgrForStyle = map[Style]string{
	StyleAccent:   "\x1b[1m",
	StyleDim:      "\x1b[2m",
	StyleSelected: "\x1b[7m",
}

func (s *ANSISurface) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(terminal.ClearScreen())
	return errors.Wrap(err, "clear")
}

func (s *ANSISurface) WriteAt(x, y int, text string) error {
	return s.WriteStyled(x, y, text, StyleNormal)
}

// WriteStyled positions the cursor and writes text clipped to the right edge
func (s *ANSISurface) WriteStyled(x, y int, text string, style Style) error {
	width, height := s.size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return errors.Wrapf(ErrOutOfBounds, "write at %d,%d on %dx%d", x, y, width, height)
	}
	text = Clip(text, width-x)

	s.mu.Lock()
	defer s.mu.Unlock()
	terminal.WriteCursorPos(s.w, x, y)
	sgr, styled := sgrForStyle[style]
	if styled {
		s.w.WriteString(sgr)
	}
	s.w.WriteString(text)
	if styled {
		s.w.Write(terminal.ResetStyle())
	}
	return nil
}

// SetCursorVisible writes through immediately, it is not a frame operation
func (s *ANSISurface) SetCursorVisible(visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Write(terminal.CursorVisibility(visible))
	return errors.Wrap(s.w.Flush(), "set cursor visibility")
}

func (s *ANSISurface) Dimensions() (int, int, error) {
	w, h := s.size()
	return w, h, nil
}

func (s *ANSISurface) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Wrap(s.w.Flush(), "flush")
}
