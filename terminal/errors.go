package terminal

import "github.com/pkg/errors"

var (
	// ErrNotTerminal is returned when the controlled file is not a terminal
	ErrNotTerminal = errors.New("not a terminal")
	// ErrNotSaved is returned by RestoreSettings before SaveSettings succeeded
	ErrNotSaved = errors.New("terminal settings not saved")
	// ErrUnsupported is returned on platforms without termios
	ErrUnsupported = errors.New("terminal control unsupported on this platform")
)
