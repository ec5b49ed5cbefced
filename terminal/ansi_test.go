package terminal

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestWriteCursorPos(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{9, 4, "\x1b[5;10H"},
		{134, 28, "\x1b[29;135H"},
		{-3, -1, "\x1b[0;0H"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		WriteCursorPos(w, tt.x, tt.y)
		w.Flush()
		if buf.String() != tt.want {
			t.Errorf("WriteCursorPos(%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, buf.String())
		}
	}
}

func TestWriteInt(t *testing.T) {
	for _, n := range []int{0, 7, 10, 99, 100, 65535, 1234567} {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		WriteInt(w, n)
		w.Flush()
		if got, want := buf.String(), strconv.Itoa(n); got != want {
			t.Errorf("WriteInt(%d): expected %s, got %s", n, want, got)
		}
	}
}

func TestCursorVisibility(t *testing.T) {
	if string(CursorVisibility(true)) != "\x1b[?25h" {
		t.Error("Expected show cursor sequence")
	}
	if string(CursorVisibility(false)) != "\x1b[?25l" {
		t.Error("Expected hide cursor sequence")
	}
}

func TestEmergencyResetWritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m", "\x1bc"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
