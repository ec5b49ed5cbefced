package event

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Logger writes every event it receives to the standard logger
// Frame events are skipped unless Verbose is set, they fire 60 times a second
type Logger struct {
	Verbose bool
}

func (l *Logger) OnNotify(ev Event) {
	if !l.Verbose {
		switch ev.Type {
		case EditorUpdated, EditorRendered, EditorInputHandled:
			return
		}
	}
	log.Printf("event: %s%s", ev.Type, formatPayload(ev.Payload))
}

func formatPayload(p map[string]any) string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%q", k, fmt.Sprint(p[k]))
	}
	return sb.String()
}
