//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"os"

	"github.com/pkg/errors"
)

// Unix is unavailable without termios, every mode change fails
type Unix struct {
	out *os.File
}

func New() *Unix {
	return NewWithFiles(os.Stdin, os.Stdout)
}

func NewWithFiles(_, out *os.File) *Unix {
	return &Unix{out: out}
}

func (u *Unix) IsTerminal() bool             { return false }
func (u *Unix) SaveSettings() error          { return errors.WithStack(ErrUnsupported) }
func (u *Unix) RestoreSettings() error       { return errors.WithStack(ErrUnsupported) }
func (u *Unix) DisableEcho() error           { return errors.WithStack(ErrUnsupported) }
func (u *Unix) EnableEcho() error            { return errors.WithStack(ErrUnsupported) }
func (u *Unix) SetNonBlocking(bool) error    { return errors.WithStack(ErrUnsupported) }
func (u *Unix) ReadPending() (string, error) { return "", nil }
func (u *Unix) SetCursorVisible(visible bool) error {
	_, err := u.out.Write(CursorVisibility(visible))
	return err
}
func (u *Unix) Size() (int, int)   { return 80, 24 }
func (u *Unix) EchoDisabled() bool { return false }
func (u *Unix) NonBlocking() bool  { return false }
func (u *Unix) CursorHidden() bool { return false }
func (u *Unix) Writer() *os.File   { return u.out }

func resetTerminalMode() {}
