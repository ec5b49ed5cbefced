// @focus: #input { edge, capture }
package input

import (
	"log"
	"strings"

	"github.com/lixenwraith/sendama/event"
)

// Source yields whatever input is pending without blocking
// An empty string means nothing is pending
type Source interface {
	ReadPending() (string, error)
}

// Frame is the pair of raw captures for the current and previous tick
// Replaced wholesale by Capture, never mutated
type Frame struct {
	Current  string
	Previous string
}

// Translator turns per-tick raw input into edge-triggered key, button and axis queries
type Translator struct {
	event.Emitter

	source  Source
	table   *Table
	pending string
	frame   Frame

	buttons []Button
	axes    []Axis
}

// NewTranslator creates a translator reading from source, nil table uses the defaults
func NewTranslator(source Source, table *Table, bus *event.Bus) *Translator {
	if table == nil {
		table = defaultTable
	}
	t := &Translator{
		source: source,
		table:  table,
		axes:   DefaultAxes(),
	}
	t.Emitter = event.NewEmitter(bus, t)
	return t
}

// Capture reads one line of pending input, or the empty string, and shifts the frame
// Read errors are logged and treated as no input
func (t *Translator) Capture() Frame {
	if t.source != nil {
		chunk, err := t.source.ReadPending()
		if err != nil {
			log.Printf("input: read failed: %v", err)
		}
		t.pending += chunk
	}

	line := t.takeLine()
	t.frame = Frame{Current: line, Previous: t.frame.Current}

	if line != "" {
		t.Notify(event.KeyboardInput, map[string]any{
			event.KeyKey: string(t.table.Resolve(line)),
			event.KeyRaw: line,
		})
	}
	return t.frame
}

// takeLine removes and returns pending input up to and including the first newline
func (t *Translator) takeLine() string {
	if t.pending == "" {
		return ""
	}
	i := strings.IndexByte(t.pending, '\n')
	if i < 0 {
		line := t.pending
		t.pending = ""
		return line
	}
	line := t.pending[:i+1]
	t.pending = t.pending[i+1:]
	return line
}

// Reset clears the frame and any pending input
func (t *Translator) Reset() {
	t.pending = ""
	t.frame = Frame{}
}

func (t *Translator) Frame() Frame {
	return t.frame
}

// Key returns the resolved key of the current frame
func (t *Translator) Key() KeyCode {
	return t.table.Resolve(t.frame.Current)
}

func (t *Translator) resolve(raw string) string {
	if raw == "" {
		return ""
	}
	return string(t.table.Resolve(raw))
}

// IsKeyDown reports the press edge: code is current and was not current last tick
func (t *Translator) IsKeyDown(code KeyCode, ignoreCase bool) bool {
	key := t.resolve(t.frame.Current)
	prev := t.resolve(t.frame.Previous)
	want := string(code)
	if ignoreCase {
		key = strings.ToLower(key)
		prev = strings.ToLower(prev)
		want = strings.ToLower(want)
	}
	return key != "" && key == want && prev != key
}

// IsKeyUp reports the release edge: input went idle right after code was current
func (t *Translator) IsKeyUp(code KeyCode) bool {
	return t.frame.Current == "" && t.resolve(t.frame.Previous) == string(code)
}

// IsKeyHeld reports whether code is current regardless of the previous tick
func (t *Translator) IsKeyHeld(code KeyCode) bool {
	return t.frame.Current != "" && t.resolve(t.frame.Current) == string(code)
}

// IsAnyKeyPressed reports whether any code saw its press edge this tick
func (t *Translator) IsAnyKeyPressed(codes []KeyCode, ignoreCase bool) bool {
	for _, c := range codes {
		if t.IsKeyDown(c, ignoreCase) {
			return true
		}
	}
	return false
}

// AreAllKeysPressed reports whether every code is current, false for an empty set
// Line-buffered input yields one key per frame, so this only holds for one distinct code
func (t *Translator) AreAllKeysPressed(codes []KeyCode) bool {
	if len(codes) == 0 {
		return false
	}
	for _, c := range codes {
		if !t.IsKeyHeld(c) {
			return false
		}
	}
	return true
}

// IsAnyKeyReleased reports whether any code saw its release edge this tick
func (t *Translator) IsAnyKeyReleased(codes []KeyCode) bool {
	for _, c := range codes {
		if t.IsKeyUp(c) {
			return true
		}
	}
	return false
}

// AddButtons registers buttons, a button with an existing name replaces it
func (t *Translator) AddButtons(buttons ...Button) {
	for _, b := range buttons {
		b = NewButton(b.Name, b.Positive, b.Negative)
		if i := t.buttonIndex(b.Name); i >= 0 {
			t.buttons[i] = b
			continue
		}
		t.buttons = append(t.buttons, b)
	}
}

// AddAxes registers axes, an axis with an existing name replaces it
func (t *Translator) AddAxes(axes ...Axis) {
	for _, a := range axes {
		a = NewAxis(a.Name, a.Negative, a.Positive)
		replaced := false
		for i := range t.axes {
			if t.axes[i].Name == a.Name {
				t.axes[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			t.axes = append(t.axes, a)
		}
	}
}

func (t *Translator) buttonIndex(name string) int {
	for i, b := range t.buttons {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Button returns the registered button called name
func (t *Translator) Button(name string) (Button, bool) {
	if i := t.buttonIndex(name); i >= 0 {
		return t.buttons[i], true
	}
	return Button{}, false
}

// IsButtonDown reports a press edge on any positive key of the named button
func (t *Translator) IsButtonDown(name string) bool {
	b, ok := t.Button(name)
	if !ok {
		return false
	}
	return t.IsAnyKeyPressed(b.Positive, true)
}

// ButtonValue evaluates the named button, unknown names give 0
func (t *Translator) ButtonValue(name string) int {
	b, ok := t.Button(name)
	if !ok {
		return 0
	}
	return b.Value(t)
}

// GetAxis evaluates a named axis, falling back to a button of that name
// Unknown names give 0
func (t *Translator) GetAxis(name AxisName) int {
	for _, a := range t.axes {
		if a.Name == name {
			return a.Value(t)
		}
	}
	return t.ButtonValue(string(name))
}
