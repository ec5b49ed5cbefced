package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeRestorer struct {
	calls int
	err   error
}

func (f *fakeRestorer) RestoreSettings() error {
	f.calls++
	return f.err
}

func captureCrash(t *testing.T) (out, errOut *bytes.Buffer, code *int) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	code = new(int)
	*code = -1

	prevOut, prevErr, prevExit := crashOut, crashErr, exit
	crashOut, crashErr = out, errOut
	exit = func(c int) { *code = c }
	t.Cleanup(func() {
		crashOut, crashErr, exit = prevOut, prevErr, prevExit
		SetCrashTerminal(nil)
	})
	return out, errOut, code
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	_, errOut, code := captureCrash(t)
	HandleCrash(nil)
	if *code != -1 || errOut.Len() != 0 {
		t.Errorf("nil crash produced exit %d, output %q", *code, errOut.String())
	}
}

func TestHandleCrashRestoresRegisteredTerminal(t *testing.T) {
	out, errOut, code := captureCrash(t)
	r := &fakeRestorer{}
	SetCrashTerminal(r)

	HandleCrash("boom")

	if r.calls != 1 {
		t.Errorf("RestoreSettings calls = %d, want 1", r.calls)
	}
	if out.Len() != 0 {
		t.Errorf("emergency reset written despite successful restore: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "CRASH DETECTED: boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
}

func TestHandleCrashFallsBackToEmergencyReset(t *testing.T) {
	out, _, _ := captureCrash(t)
	SetCrashTerminal(&fakeRestorer{err: errors.New("no saved state")})

	HandleCrash("boom")

	if !strings.Contains(out.String(), "\x1b[?25h") {
		t.Errorf("emergency reset did not show cursor: %q", out.String())
	}
}

func TestOverlayLines(t *testing.T) {
	c := &OverlayContent{Title: "Debug"}
	c.Add(
		OverlayLine{Text: "FPS: 60"},
		OverlayCard{Title: "Metrics", Entries: []CardEntry{{Key: "frames", Value: "10"}}},
	)

	want := []string{"Debug", "FPS: 60", "Metrics", "  frames: 10"}
	got := c.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(c.Cards()) != 1 {
		t.Errorf("Cards() = %d, want 1", len(c.Cards()))
	}
	var nilContent *OverlayContent
	if nilContent.Lines() != nil {
		t.Error("nil content should have no lines")
	}
}
