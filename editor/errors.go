package editor

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// FatalError is a runtime fault caught at the loop boundary after the terminal was restored
type FatalError struct {
	Phase string
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("editor: fatal during %s: %v", e.Phase, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Cause lets errors.Cause reach the original fault
func (e *FatalError) Cause() error { return e.Err }

// Format prints the wrapped stack for %+v
func (e *FatalError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "editor: fatal during %s: %+v", e.Phase, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// fatalFromPanic converts a recovered value, the stack is captured at the recovery point
func fatalFromPanic(phase string, r any) *FatalError {
	if err, ok := r.(error); ok {
		return &FatalError{Phase: phase, Err: errors.WithStack(err)}
	}
	return &FatalError{Phase: phase, Err: errors.Errorf("panic: %v", r)}
}

// ExitCode maps err to a process exit status
// nil is 0, an errno in 1..255 anywhere in the chain is used as is, anything else is 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno > 0 && errno <= 255 {
		return int(errno)
	}
	return 1
}

// Diagnostic renders err for the user: the full chain with stacks in debug mode, one line otherwise
func Diagnostic(err error, debug bool) string {
	if err == nil {
		return ""
	}
	if debug {
		return fmt.Sprintf("%+v", err)
	}
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return "sendama: " + msg
}
