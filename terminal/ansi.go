// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide    = []byte("\x1b[?25l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiCursorBlinkOn = []byte("\x1b[?12h")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// CursorVisibility returns the sequence that shows or hides the cursor
func CursorVisibility(visible bool) []byte {
	if visible {
		return csiCursorShow
	}
	return csiCursorHide
}

// ClearScreen returns the sequence that clears the screen and homes the cursor
func ClearScreen() []byte {
	return csiClear
}

// ResetStyle returns the SGR reset sequence
func ResetStyle() []byte {
	return csiSGR0
}

// WriteInt writes a non-negative integer without allocation, negatives write 0
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// WriteCursorPos writes a cursor positioning sequence for 0-indexed x, y
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}
