package input

import "sync"

// sequence maps one raw terminal byte sequence to a key
type sequence struct {
	raw  string
	code KeyCode
}

// defaultSequences covers VT100/xterm/linux console variants
// Extend here or through Table.Register, control flow never changes
var defaultSequences = []sequence{
	// CSI arrows
	{"\x1b[A", KeyUp},
	{"\x1b[B", KeyDown},
	{"\x1b[C", KeyRight},
	{"\x1b[D", KeyLeft},

	// SS3 arrows (application cursor mode)
	{"\x1bOA", KeyUp},
	{"\x1bOB", KeyDown},
	{"\x1bOC", KeyRight},
	{"\x1bOD", KeyLeft},

	{"\n", KeyEnter},
	{"\r", KeyEnter},
	{" ", KeySpace},
	{"\x08", KeyBackspace},
	{"\x7f", KeyBackspace},
	{"\t", KeyTab},
	{"\x1b", KeyEscape},

	{"\x1b[1~", KeyHome},
	{"\x1b[7~", KeyHome},
	{"\x1b[H", KeyHome},
	{"\x1b[2~", KeyInsert},
	{"\x1b[3~", KeyDelete},
	{"\x1b[8", KeyEnd},
	{"\x1b[4~", KeyEnd},
	{"\x1b[F", KeyEnd},
	{"\x1b[5~", KeyPageUp},
	{"\x1b[6~", KeyPageDown},

	// xterm function keys, 16 and 22 are unassigned
	{"\x1b[10~", KeyF0},
	{"\x1b[11~", KeyF1},
	{"\x1b[12~", KeyF2},
	{"\x1b[13~", KeyF3},
	{"\x1b[14~", KeyF4},
	{"\x1b[15~", KeyF5},
	{"\x1b[17~", KeyF6},
	{"\x1b[18~", KeyF7},
	{"\x1b[19~", KeyF8},
	{"\x1b[20~", KeyF9},
	{"\x1b[21~", KeyF10},
	{"\x1b[23~", KeyF11},
	{"\x1b[24~", KeyF12},

	// SS3 F1-F4
	{"\x1bOP", KeyF1},
	{"\x1bOQ", KeyF2},
	{"\x1bOR", KeyF3},
	{"\x1bOS", KeyF4},
}

// Table resolves raw sequences to keys
type Table struct {
	mu sync.RWMutex
	m  map[string]KeyCode
}

// NewTable creates a table preloaded with the default sequences
func NewTable() *Table {
	t := &Table{m: make(map[string]KeyCode, len(defaultSequences))}
	for _, s := range defaultSequences {
		t.m[s.raw] = s.code
	}
	return t
}

// Register adds or replaces a sequence
func (t *Table) Register(raw string, code KeyCode) {
	t.mu.Lock()
	t.m[raw] = code
	t.mu.Unlock()
}

// Resolve returns the key for raw, unmapped input is returned unchanged
func (t *Table) Resolve(raw string) KeyCode {
	t.mu.RLock()
	code, ok := t.m[raw]
	t.mu.RUnlock()
	if ok {
		return code
	}
	return KeyCode(raw)
}

// Len returns the number of mapped sequences
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

var defaultTable = NewTable()

// ResolveKey resolves raw against the default table
func ResolveKey(raw string) KeyCode {
	return defaultTable.Resolve(raw)
}

// RegisterSequence maps raw to code in the default table, e.g. a terminal-specific function key
func RegisterSequence(raw string, code KeyCode) {
	defaultTable.Register(raw, code)
}
