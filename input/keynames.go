package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// nameToKey maps lower-case config names to special keys, brackets stripped
var nameToKey = map[string]KeyCode{
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,

	"enter":     KeyEnter,
	"cr":        KeyEnter,
	"return":    KeyEnter,
	"space":     KeySpace,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"esc":       KeyEscape,
	"escape":    KeyEscape,

	"home":      KeyHome,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"page_up":   KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"page_down": KeyPageDown,
	"pgdn":      KeyPageDown,
}

func init() {
	for i := 0; i <= 12; i++ {
		nameToKey[fmt.Sprintf("f%d", i)] = KeyCode(fmt.Sprintf("<F%d>", i))
	}
}

// ParseKey converts a config key name to a KeyCode
// Accepts "<Esc>", "escape", "Esc" and single printable characters
func ParseKey(name string) (KeyCode, error) {
	if name == "" {
		return KeyNone, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		return KeyCode(name), nil
	}

	trimmed := strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
	if code, ok := nameToKey[strings.ToLower(trimmed)]; ok {
		return code, nil
	}
	return KeyNone, fmt.Errorf("unknown key name %q", name)
}

// ParseKeys converts a list of names, failing on the first unknown one
func ParseKeys(names []string) ([]KeyCode, error) {
	codes := make([]KeyCode, 0, len(names))
	for _, n := range names {
		code, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
