// @focus: #input { keys }
package input

// KeyCode is a logical key
// Special keys use bracketed names, printable characters are their literal value
type KeyCode string

const (
	KeyNone KeyCode = ""

	KeyUp    KeyCode = "<Up>"
	KeyDown  KeyCode = "<Down>"
	KeyLeft  KeyCode = "<Left>"
	KeyRight KeyCode = "<Right>"

	KeyEnter     KeyCode = "<Enter>"
	KeySpace     KeyCode = "<Space>"
	KeyBackspace KeyCode = "<BS>"
	KeyTab       KeyCode = "<Tab>"
	KeyEscape    KeyCode = "<Esc>"

	KeyHome     KeyCode = "<Home>"
	KeyInsert   KeyCode = "<Insert>"
	KeyDelete   KeyCode = "<Del>"
	KeyEnd      KeyCode = "<End>"
	KeyPageUp   KeyCode = "<PageUp>"
	KeyPageDown KeyCode = "<PageDown>"

	KeyF0  KeyCode = "<F0>"
	KeyF1  KeyCode = "<F1>"
	KeyF2  KeyCode = "<F2>"
	KeyF3  KeyCode = "<F3>"
	KeyF4  KeyCode = "<F4>"
	KeyF5  KeyCode = "<F5>"
	KeyF6  KeyCode = "<F6>"
	KeyF7  KeyCode = "<F7>"
	KeyF8  KeyCode = "<F8>"
	KeyF9  KeyCode = "<F9>"
	KeyF10 KeyCode = "<F10>"
	KeyF11 KeyCode = "<F11>"
	KeyF12 KeyCode = "<F12>"
)

// Letters used by the built-in bindings, other characters go through Char
const (
	KeyA      KeyCode = "A"
	KeyD      KeyCode = "D"
	KeyN      KeyCode = "N"
	KeyQ      KeyCode = "Q"
	KeyS      KeyCode = "S"
	KeyW      KeyCode = "W"
	KeyY      KeyCode = "Y"
	KeyLowerA KeyCode = "a"
	KeyLowerD KeyCode = "d"
	KeyLowerN KeyCode = "n"
	KeyLowerQ KeyCode = "q"
	KeyLowerS KeyCode = "s"
	KeyLowerW KeyCode = "w"
	KeyLowerY KeyCode = "y"
)

// Char returns the KeyCode of a printable character
func Char(r rune) KeyCode {
	return KeyCode(string(r))
}

// IsSpecial reports whether k is a named key rather than literal text
func (k KeyCode) IsSpecial() bool {
	return len(k) > 2 && k[0] == '<' && k[len(k)-1] == '>'
}

func (k KeyCode) String() string {
	return string(k)
}
