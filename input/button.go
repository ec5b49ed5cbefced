package input

import "strings"

// KeyQuery is the edge query used to evaluate buttons and axes
type KeyQuery interface {
	IsAnyKeyPressed(codes []KeyCode, ignoreCase bool) bool
}

// Button is a named pair of key sets
// Negative keys are checked first, so pressing both resolves to -1
type Button struct {
	Name     string
	Positive []KeyCode
	Negative []KeyCode
}

// NewButton creates a button with duplicate keys removed
// Keys differing only by case are one member, matching is case-insensitive
func NewButton(name string, positive, negative []KeyCode) Button {
	return Button{
		Name:     name,
		Positive: dedupeKeys(positive),
		Negative: dedupeKeys(negative),
	}
}

// Value returns -1, 1 or 0 for the current frame
func (b Button) Value(q KeyQuery) int {
	return evaluate(q, b.Negative, b.Positive)
}

// AxisName identifies an axis
type AxisName string

const (
	AxisHorizontal AxisName = "Horizontal"
	AxisVertical   AxisName = "Vertical"
)

// Axis has the same structure as Button, keyed by a semantic name
type Axis struct {
	Name     AxisName
	Negative []KeyCode
	Positive []KeyCode
}

// NewAxis creates an axis with duplicate keys removed
func NewAxis(name AxisName, negative, positive []KeyCode) Axis {
	return Axis{
		Name:     name,
		Negative: dedupeKeys(negative),
		Positive: dedupeKeys(positive),
	}
}

func (a Axis) Value(q KeyQuery) int {
	return evaluate(q, a.Negative, a.Positive)
}

// DefaultAxes returns arrows plus WASD for Horizontal and Vertical
func DefaultAxes() []Axis {
	return []Axis{
		NewAxis(AxisHorizontal,
			[]KeyCode{KeyLeft, KeyA, KeyLowerA},
			[]KeyCode{KeyRight, KeyD, KeyLowerD}),
		NewAxis(AxisVertical,
			[]KeyCode{KeyUp, KeyW, KeyLowerW},
			[]KeyCode{KeyDown, KeyS, KeyLowerS}),
	}
}

func evaluate(q KeyQuery, negative, positive []KeyCode) int {
	if q.IsAnyKeyPressed(negative, true) {
		return -1
	}
	if q.IsAnyKeyPressed(positive, true) {
		return 1
	}
	return 0
}

func dedupeKeys(keys []KeyCode) []KeyCode {
	if len(keys) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(keys))
	out := make([]KeyCode, 0, len(keys))
	for _, k := range keys {
		norm := strings.ToLower(string(k))
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, k)
	}
	return out
}
