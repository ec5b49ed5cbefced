package render

import (
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sendama/core"
)

// goPoll launches the event poller, panics there restore the terminal through the crash handler
var goPoll = core.Go

// keyEventBuffer bounds key events queued between ticks, overflow is dropped
const keyEventBuffer = 64

// tcellSequences maps tcell keys to the raw sequences the input table understands
var tcellSequences = map[tcell.Key]string{
	tcell.KeyUp:         "\x1b[A",
	tcell.KeyDown:       "\x1b[B",
	tcell.KeyRight:      "\x1b[C",
	tcell.KeyLeft:       "\x1b[D",
	tcell.KeyEnter:      "\n",
	tcell.KeyTab:        "\t",
	tcell.KeyBackspace:  "\x08",
	tcell.KeyBackspace2: "\x7f",
	tcell.KeyEscape:     "\x1b",
	tcell.KeyHome:       "\x1b[1~",
	tcell.KeyInsert:     "\x1b[2~",
	tcell.KeyDelete:     "\x1b[3~",
	tcell.KeyEnd:        "\x1b[4~",
	tcell.KeyPgUp:       "\x1b[5~",
	tcell.KeyPgDn:       "\x1b[6~",
	tcell.KeyF1:         "\x1b[11~",
	tcell.KeyF2:         "\x1b[12~",
	tcell.KeyF3:         "\x1b[13~",
	tcell.KeyF4:         "\x1b[14~",
	tcell.KeyF5:         "\x1b[15~",
	tcell.KeyF6:         "\x1b[17~",
	tcell.KeyF7:         "\x1b[18~",
	tcell.KeyF8:         "\x1b[19~",
	tcell.KeyF9:         "\x1b[20~",
	tcell.KeyF10:        "\x1b[21~",
	tcell.KeyF11:        "\x1b[23~",
	tcell.KeyF12:        "\x1b[24~",
}

// keySequence converts a tcell key event to its raw sequence, empty if unmapped
func keySequence(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return tcellSequences[ev.Key()]
}

// Tcell drives the editor through a tcell screen
// It is surface, terminal controller and input source at once: tcell owns raw mode,
// so echo and blocking toggles are no-ops and input arrives through PollEvent
type Tcell struct {
	mu     sync.Mutex
	screen tcell.Screen
	styles palette

	keys     chan string
	started  bool
	finished bool
	done     chan struct{}
}

// NewTcell wraps screen, nil creates the default tcell screen
func NewTcell(screen tcell.Screen, theme Theme) (*Tcell, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "create tcell screen")
		}
		screen = s
	}
	styles, err := theme.styles()
	if err != nil {
		return nil, err
	}
	return &Tcell{
		screen: screen,
		styles: styles,
		keys:   make(chan string, keyEventBuffer),
		done:   make(chan struct{}),
	}, nil
}

// SaveSettings initializes the screen, tcell keeps the prior terminal state itself
func (t *Tcell) SaveSettings() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init tcell screen")
	}
	t.screen.SetStyle(t.styles[StyleNormal])
	t.started = true
	goPoll(t.poll)
	return nil
}

// RestoreSettings finalizes the screen, safe to call more than once
func (t *Tcell) RestoreSettings() error {
	t.mu.Lock()
	if !t.started || t.finished {
		t.mu.Unlock()
		return nil
	}
	t.finished = true
	t.mu.Unlock()

	t.screen.Fini()
	<-t.done
	return nil
}

func (t *Tcell) DisableEcho() error          { return nil }
func (t *Tcell) EnableEcho() error           { return nil }
func (t *Tcell) SetNonBlocking(_ bool) error { return nil }

// poll forwards key events until the screen is finalized
func (t *Tcell) poll() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			seq := keySequence(e)
			if seq == "" {
				continue
			}
			select {
			case t.keys <- seq:
			default:
				log.Printf("render: key buffer full, dropped %q", seq)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// ReadPending drains queued key sequences without blocking
func (t *Tcell) ReadPending() (string, error) {
	var sb strings.Builder
	for {
		select {
		case seq := <-t.keys:
			sb.WriteString(seq)
		default:
			return sb.String(), nil
		}
	}
}

func (t *Tcell) Clear() error {
	t.screen.Clear()
	return nil
}

func (t *Tcell) WriteAt(x, y int, text string) error {
	return t.WriteStyled(x, y, text, StyleNormal)
}

// WriteStyled sets cells rune by rune, clipped to the right edge
func (t *Tcell) WriteStyled(x, y int, text string, style Style) error {
	width, height := t.screen.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return errors.Wrapf(ErrOutOfBounds, "write at %d,%d on %dx%d", x, y, width, height)
	}
	st, ok := t.styles[style]
	if !ok {
		st = t.styles[StyleNormal]
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > width {
			break
		}
		t.screen.SetContent(x, y, r, nil, st)
		x += rw
	}
	return nil
}

func (t *Tcell) SetCursorVisible(visible bool) error {
	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
	return nil
}

// Size returns the screen size, usable before and after SaveSettings
func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

// Dimensions satisfies Surface
func (t *Tcell) Dimensions() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}
