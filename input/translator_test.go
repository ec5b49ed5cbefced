package input

import (
	"errors"
	"testing"

	"github.com/lixenwraith/sendama/event"
)

// scriptSource returns one scripted chunk per read
type scriptSource struct {
	chunks []string
	err    error
}

func (s *scriptSource) ReadPending() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.chunks) == 0 {
		return "", nil
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *scriptSource) push(chunks ...string) {
	s.chunks = append(s.chunks, chunks...)
}

func newTestTranslator(chunks ...string) (*Translator, *scriptSource) {
	src := &scriptSource{chunks: chunks}
	return NewTranslator(src, nil, nil), src
}

func TestIsKeyDownFiresOnceWhileHeld(t *testing.T) {
	tr, _ := newTestTranslator("q", "q", "q", "")

	want := []bool{true, false, false, false}
	for i, w := range want {
		tr.Capture()
		if got := tr.IsKeyDown(KeyLowerQ, false); got != w {
			t.Errorf("Tick %d: expected IsKeyDown=%v, got %v", i, w, got)
		}
	}
}

func TestIsKeyDownIgnoreCase(t *testing.T) {
	tr, _ := newTestTranslator("Q")
	tr.Capture()

	if !tr.IsKeyDown(KeyLowerQ, true) {
		t.Error("Expected case-insensitive match")
	}
	if tr.IsKeyDown(KeyLowerQ, false) {
		t.Error("Expected case-sensitive mismatch")
	}
	if !tr.IsKeyDown(KeyQ, false) {
		t.Error("Expected exact match")
	}
}

func TestIsKeyDownSpecialSequence(t *testing.T) {
	tr, _ := newTestTranslator("\x1b[A", "\x1b[B")

	tr.Capture()
	if !tr.IsKeyDown(KeyUp, false) {
		t.Error("Expected up arrow press")
	}
	tr.Capture()
	if !tr.IsKeyDown(KeyDown, true) || tr.IsKeyDown(KeyUp, true) {
		t.Error("Expected down arrow press only")
	}
}

func TestIsKeyUpOnlyOnFirstIdleTick(t *testing.T) {
	tr, _ := newTestTranslator("a", "", "")

	tr.Capture()
	if tr.IsKeyUp(KeyLowerA) {
		t.Error("Key up while pressed")
	}
	tr.Capture()
	if !tr.IsKeyUp(KeyLowerA) {
		t.Error("Expected release edge on first idle tick")
	}
	tr.Capture()
	if tr.IsKeyUp(KeyLowerA) {
		t.Error("Release edge must fire once")
	}
}

func TestIsKeyUpRequiresIdle(t *testing.T) {
	tr, _ := newTestTranslator("a", "b")
	tr.Capture()
	tr.Capture()
	if tr.IsKeyUp(KeyLowerA) {
		t.Error("Switching keys is not a release, input never went idle")
	}
}

func TestCaptureTakesOneLine(t *testing.T) {
	tr, src := newTestTranslator("ab\ncd")

	if f := tr.Capture(); f.Current != "ab\n" {
		t.Errorf("Expected first line, got %q", f.Current)
	}
	if f := tr.Capture(); f.Current != "cd" || f.Previous != "ab\n" {
		t.Errorf("Expected remainder with previous shifted, got %+v", f)
	}
	if f := tr.Capture(); f.Current != "" {
		t.Errorf("Expected empty capture, got %q", f.Current)
	}

	src.push("\n")
	tr.Capture()
	if tr.Key() != KeyEnter {
		t.Errorf("Expected Enter, got %q", tr.Key())
	}
}

func TestCaptureChordIsCoarse(t *testing.T) {
	tr, _ := newTestTranslator("\x1b[A\x1b[A")
	tr.Capture()
	if tr.IsKeyDown(KeyUp, true) {
		t.Error("Joined sequences must not match a single key")
	}
}

func TestCaptureReadErrorIsEmptyInput(t *testing.T) {
	src := &scriptSource{err: errors.New("boom")}
	tr := NewTranslator(src, nil, nil)
	if f := tr.Capture(); f.Current != "" {
		t.Errorf("Expected empty capture on error, got %q", f.Current)
	}
}

func TestCapturePublishesKeyboardInput(t *testing.T) {
	bus := event.NewBus()
	rec := &event.Recorder{}
	bus.Subscribe(rec, event.ScopeInstance, event.KeyboardInput)

	tr := NewTranslator(&scriptSource{chunks: []string{"\x1b[15~", ""}}, nil, bus)
	tr.Capture()
	tr.Capture()

	events := rec.Events()
	if len(events) != 1 {
		t.Fatalf("Expected 1 keyboard event, got %d", len(events))
	}
	if got := events[0].GetString(event.KeyKey); got != string(KeyF5) {
		t.Errorf("Expected key %s, got %s", KeyF5, got)
	}
	if got := events[0].GetString(event.KeyRaw); got != "\x1b[15~" {
		t.Errorf("Expected raw sequence, got %q", got)
	}
	if events[0].Source != tr {
		t.Error("Expected translator as source")
	}
}

func TestAggregateQueries(t *testing.T) {
	tr, _ := newTestTranslator("x", "x", "")

	tr.Capture()
	if !tr.IsAnyKeyPressed([]KeyCode{KeyLowerA, "x"}, true) {
		t.Error("Expected any-pressed on x")
	}
	if tr.IsAnyKeyPressed(nil, true) {
		t.Error("Empty set is never pressed")
	}
	if !tr.AreAllKeysPressed([]KeyCode{"x"}) {
		t.Error("Expected all-pressed for single held key")
	}
	if tr.AreAllKeysPressed([]KeyCode{"x", "y"}) {
		t.Error("Line-buffered input cannot hold two keys")
	}
	if tr.AreAllKeysPressed(nil) {
		t.Error("Empty set is never all-pressed")
	}

	tr.Capture()
	if tr.IsAnyKeyPressed([]KeyCode{"x"}, true) {
		t.Error("Held key must not repeat")
	}
	if !tr.IsKeyHeld("x") {
		t.Error("Expected x held")
	}

	tr.Capture()
	if !tr.IsAnyKeyReleased([]KeyCode{KeyLowerA, "x"}) {
		t.Error("Expected release of x")
	}
}

func TestButtonNegativePrecedence(t *testing.T) {
	// Same key in both sets: both satisfied, negative wins
	tr, _ := newTestTranslator("z")
	tr.AddButtons(NewButton("Both", []KeyCode{"z"}, []KeyCode{"z"}))
	tr.Capture()

	if v := tr.ButtonValue("Both"); v != -1 {
		t.Errorf("Expected -1 with both sets satisfied, got %d", v)
	}
}

func TestButtonValues(t *testing.T) {
	tr, _ := newTestTranslator("+", "-", "", "*")
	tr.AddButtons(Button{Name: "Zoom", Positive: []KeyCode{"+"}, Negative: []KeyCode{"-"}})

	want := []int{1, -1, 0, 0}
	for i, w := range want {
		tr.Capture()
		if got := tr.ButtonValue("Zoom"); got != w {
			t.Errorf("Tick %d: expected %d, got %d", i, w, got)
		}
	}
	if tr.ButtonValue("Missing") != 0 {
		t.Error("Unknown button should be 0")
	}
}

func TestIsButtonDown(t *testing.T) {
	tr, _ := newTestTranslator("Q", "Q")
	tr.AddButtons(NewButton("Quit", []KeyCode{KeyLowerQ}, nil))

	tr.Capture()
	if !tr.IsButtonDown("Quit") {
		t.Error("Expected Quit down, matching ignores case")
	}
	tr.Capture()
	if tr.IsButtonDown("Quit") {
		t.Error("Held button must not repeat")
	}
	if tr.IsButtonDown("Nope") {
		t.Error("Unknown button is never down")
	}
}

func TestButtonCasedVariantsAreOneMember(t *testing.T) {
	b := NewButton("Yes", []KeyCode{KeyY, KeyLowerY, KeyEnter, KeyY}, nil)
	if len(b.Positive) != 2 {
		t.Fatalf("Expected Y/y collapsed into one member, got %v", b.Positive)
	}

	for _, raw := range []string{"y", "Y"} {
		tr, _ := newTestTranslator(raw)
		tr.AddButtons(b)
		tr.Capture()
		if tr.ButtonValue("Yes") != 1 {
			t.Errorf("Expected %q to trigger the button", raw)
		}
	}
}

func TestAddButtonsReplacesByName(t *testing.T) {
	tr, _ := newTestTranslator("b")
	tr.AddButtons(NewButton("Act", []KeyCode{"a"}, nil))
	tr.AddButtons(NewButton("Act", []KeyCode{"b"}, nil))
	tr.Capture()

	if !tr.IsButtonDown("Act") {
		t.Error("Expected replaced binding to be active")
	}
}

func TestDefaultAxes(t *testing.T) {
	tests := []struct {
		raw  string
		axis AxisName
		want int
	}{
		{"\x1b[D", AxisHorizontal, -1},
		{"a", AxisHorizontal, -1},
		{"A", AxisHorizontal, -1},
		{"\x1b[C", AxisHorizontal, 1},
		{"d", AxisHorizontal, 1},
		{"\x1b[A", AxisVertical, -1},
		{"w", AxisVertical, -1},
		{"\x1b[B", AxisVertical, 1},
		{"S", AxisVertical, 1},
		{"x", AxisVertical, 0},
		{"a", AxisVertical, 0},
	}
	for _, tt := range tests {
		tr, _ := newTestTranslator(tt.raw)
		tr.Capture()
		if got := tr.GetAxis(tt.axis); got != tt.want {
			t.Errorf("GetAxis(%s) on %q: expected %d, got %d", tt.axis, tt.raw, tt.want, got)
		}
	}
}

func TestGetAxisUnknownNameIsZero(t *testing.T) {
	tr, _ := newTestTranslator("a")
	tr.Capture()
	if got := tr.GetAxis("Throttle"); got != 0 {
		t.Errorf("Expected 0 for unknown axis, got %d", got)
	}
}

func TestAddAxesReplacesByName(t *testing.T) {
	tr, _ := newTestTranslator("l")
	tr.AddAxes(NewAxis(AxisHorizontal, []KeyCode{"j"}, []KeyCode{"l"}))
	tr.Capture()
	if got := tr.GetAxis(AxisHorizontal); got != 1 {
		t.Errorf("Expected replaced axis binding, got %d", got)
	}
}

func TestGetAxisFallsBackToButton(t *testing.T) {
	tr, _ := newTestTranslator("a")
	tr.AddButtons(NewButton("Throttle", []KeyCode{"a"}, nil))
	tr.Capture()
	if got := tr.GetAxis("Throttle"); got != 1 {
		t.Errorf("Expected button value through GetAxis, got %d", got)
	}
}
