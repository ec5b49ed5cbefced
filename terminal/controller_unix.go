//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"bytes"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readChunk bounds a single read syscall
const readChunk = 256

// Unix controls a termios terminal through its input and output files
type Unix struct {
	mu sync.Mutex

	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	saved        *term.State
	echoOff      bool
	nonBlocking  bool
	cursorHidden bool
	buf          []byte
}

// New creates a controller for stdin and stdout
func New() *Unix {
	return NewWithFiles(os.Stdin, os.Stdout)
}

// NewWithFiles creates a controller for explicit files, e.g. /dev/tty
func NewWithFiles(in, out *os.File) *Unix {
	return &Unix{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		buf:   make([]byte, readChunk),
	}
}

// IsTerminal reports whether the input file is a terminal
func (u *Unix) IsTerminal() bool {
	return term.IsTerminal(u.inFd)
}

// SaveSettings snapshots the current termios state for RestoreSettings
func (u *Unix) SaveSettings() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !term.IsTerminal(u.inFd) {
		return errors.WithStack(ErrNotTerminal)
	}
	state, err := term.GetState(u.inFd)
	if err != nil {
		return errors.Wrap(err, "save terminal settings")
	}
	u.saved = state
	return nil
}

// RestoreSettings shows a hidden cursor, then puts back blocking input and the snapshot taken by SaveSettings
func (u *Unix) RestoreSettings() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cursorHidden {
		if _, err := u.out.Write(CursorVisibility(true)); err != nil {
			return errors.Wrap(err, "show cursor")
		}
		u.cursorHidden = false
	}
	if u.saved == nil {
		return errors.WithStack(ErrNotSaved)
	}
	if u.nonBlocking {
		if err := unix.SetNonblock(u.inFd, false); err != nil {
			return errors.Wrap(err, "restore blocking input")
		}
		u.nonBlocking = false
	}
	if err := term.Restore(u.inFd, u.saved); err != nil {
		return errors.Wrap(err, "restore terminal settings")
	}
	u.echoOff = false
	return nil
}

// DisableEcho enters cbreak mode: no line buffering in the driver and no local echo
// Signals and CR to NL translation stay enabled
func (u *Unix) DisableEcho() error {
	return u.setLocalFlags(false)
}

// EnableEcho leaves cbreak mode
func (u *Unix) EnableEcho() error {
	return u.setLocalFlags(true)
}

func (u *Unix) setLocalFlags(cooked bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	termios, err := unix.IoctlGetTermios(u.inFd, ioctlReadTermios)
	if err != nil {
		return errors.Wrap(err, "read termios")
	}
	if cooked {
		termios.Lflag |= unix.ECHO | unix.ICANON
	} else {
		termios.Lflag &^= unix.ECHO | unix.ICANON
		termios.Cc[unix.VMIN] = 1
		termios.Cc[unix.VTIME] = 0
	}
	if err := unix.IoctlSetTermios(u.inFd, ioctlWriteTermios, termios); err != nil {
		if cooked {
			return errors.Wrap(err, "enable echo")
		}
		return errors.Wrap(err, "disable echo")
	}
	u.echoOff = !cooked
	return nil
}

// SetNonBlocking switches O_NONBLOCK on the input descriptor
func (u *Unix) SetNonBlocking(enabled bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := unix.SetNonblock(u.inFd, enabled); err != nil {
		if enabled {
			return errors.Wrap(err, "enable non-blocking input")
		}
		return errors.Wrap(err, "disable non-blocking input")
	}
	u.nonBlocking = enabled
	return nil
}

// ReadPending returns all input available right now, empty when none
// A zero-timeout poll guards the read so it never waits, even in blocking mode
func (u *Unix) ReadPending() (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var out bytes.Buffer
	for {
		fds := []unix.PollFd{{Fd: int32(u.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return out.String(), errors.Wrap(err, "poll input")
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return out.String(), nil
		}

		rn, err := unix.Read(u.inFd, u.buf)
		if err != nil {
			switch err {
			case unix.EINTR:
				continue
			case unix.EAGAIN:
				return out.String(), nil
			}
			return out.String(), errors.Wrap(err, "read input")
		}
		if rn == 0 {
			// EOF
			return out.String(), nil
		}
		out.Write(u.buf[:rn])
		if rn < len(u.buf) {
			return out.String(), nil
		}
	}
}

// SetCursorVisible shows or hides the cursor
func (u *Unix) SetCursorVisible(visible bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, err := u.out.Write(CursorVisibility(visible)); err != nil {
		return errors.Wrap(err, "set cursor visibility")
	}
	u.cursorHidden = !visible
	return nil
}

// Size returns the terminal dimensions, 80x24 when they cannot be read
func (u *Unix) Size() (int, int) {
	w, h, err := term.GetSize(u.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// EchoDisabled reports whether DisableEcho is in effect
func (u *Unix) EchoDisabled() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.echoOff
}

// CursorHidden reports whether the cursor was hidden and not shown again
func (u *Unix) CursorHidden() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cursorHidden
}

// NonBlocking reports whether SetNonBlocking(true) is in effect
func (u *Unix) NonBlocking() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.nonBlocking
}

// Writer returns the output file
func (u *Unix) Writer() *os.File {
	return u.out
}
