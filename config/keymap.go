package config

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sendama/input"
)

// KeymapFile is the optional key binding file inside a project directory
const KeymapFile = "keymap.yaml"

// Button names used by the editor states
const (
	ButtonQuit    = "Quit"
	ButtonPlay    = "Play"
	ButtonBrowser = "Browser"
	ButtonConfirm = "Confirm"
	ButtonCancel  = "Cancel"
	ButtonFocus   = "Focus"
	ButtonPause   = "Pause"
	ButtonOverlay = "Overlay"
)

// binding is the YAML shape of one button
type binding struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

type keymapFile struct {
	Buttons map[string]binding `yaml:"buttons"`
	Axes    map[string]binding `yaml:"axes"`
}

// Keymap holds the buttons and axes handed to the input translator
type Keymap struct {
	Buttons []input.Button
	Axes    []input.Axis
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() Keymap {
	return Keymap{
		Buttons: []input.Button{
			input.NewButton(ButtonQuit, []input.KeyCode{input.KeyLowerQ}, nil),
			input.NewButton(ButtonPlay, []input.KeyCode{input.KeyF5}, nil),
			input.NewButton(ButtonBrowser, []input.KeyCode{input.KeyF2}, nil),
			input.NewButton(ButtonConfirm, []input.KeyCode{input.KeyLowerY, input.KeyEnter}, nil),
			input.NewButton(ButtonCancel, []input.KeyCode{input.KeyLowerN, input.KeyEscape}, nil),
			input.NewButton(ButtonFocus, []input.KeyCode{input.KeyTab}, nil),
			input.NewButton(ButtonPause, []input.KeyCode{input.KeySpace}, nil),
			input.NewButton(ButtonOverlay, []input.KeyCode{input.KeyF12}, nil),
		},
		Axes: input.DefaultAxes(),
	}
}

// LoadKeymap reads dir/keymap.yaml on top of the defaults
// Entries replace same-named defaults, a missing file yields the defaults
func LoadKeymap(dir string) (Keymap, error) {
	km := DefaultKeymap()

	path := filepath.Join(dir, KeymapFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return km, nil
		}
		return km, errors.Wrapf(err, "read %s", path)
	}

	var f keymapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return km, errors.Wrapf(err, "parse %s", path)
	}

	for _, name := range sortedKeys(f.Buttons) {
		b := f.Buttons[name]
		pos, err := input.ParseKeys(b.Positive)
		if err != nil {
			return km, errors.Wrapf(err, "%s: button %s", path, name)
		}
		neg, err := input.ParseKeys(b.Negative)
		if err != nil {
			return km, errors.Wrapf(err, "%s: button %s", path, name)
		}
		km.Buttons = replaceButton(km.Buttons, input.NewButton(name, pos, neg))
	}
	for _, name := range sortedKeys(f.Axes) {
		a := f.Axes[name]
		pos, err := input.ParseKeys(a.Positive)
		if err != nil {
			return km, errors.Wrapf(err, "%s: axis %s", path, name)
		}
		neg, err := input.ParseKeys(a.Negative)
		if err != nil {
			return km, errors.Wrapf(err, "%s: axis %s", path, name)
		}
		km.Axes = replaceAxis(km.Axes, input.NewAxis(input.AxisName(name), neg, pos))
	}

	log.Printf("config: loaded %d button and %d axis bindings from %s", len(f.Buttons), len(f.Axes), path)
	return km, nil
}

func replaceButton(buttons []input.Button, b input.Button) []input.Button {
	for i := range buttons {
		if buttons[i].Name == b.Name {
			buttons[i] = b
			return buttons
		}
	}
	return append(buttons, b)
}

func replaceAxis(axes []input.Axis, a input.Axis) []input.Axis {
	for i := range axes {
		if axes[i].Name == a.Name {
			axes[i] = a
			return axes
		}
	}
	return append(axes, a)
}

func sortedKeys(m map[string]binding) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
