package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/sendama/terminal"
)

// Restorer puts the terminal back the way it was found
type Restorer interface {
	RestoreSettings() error
}

var (
	crashMu       sync.Mutex
	crashTerminal Restorer
	crashOut      io.Writer = os.Stdout
	crashErr      io.Writer = os.Stderr
	exit                    = os.Exit
)

// SetCrashTerminal registers the controller restored by HandleCrash, nil clears it
func SetCrashTerminal(r Restorer) {
	crashMu.Lock()
	crashTerminal = r
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	// Registered controller knows the saved termios, escape reset is the fallback
	if t == nil || t.RestoreSettings() != nil {
		terminal.EmergencyReset(crashOut)
	}

	if f, ok := crashOut.(*os.File); ok {
		f.Sync()
	}

	fmt.Fprintf(crashErr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashErr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	if f, ok := crashErr.(*os.File); ok {
		f.Sync()
	}

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
