package event

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// registerType maps a wire name to an EventType
func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

func init() {
	registerType("editor_started", EditorStarted)
	registerType("editor_stopped", EditorStopped)
	registerType("editor_finished", EditorFinished)
	registerType("editor_updated", EditorUpdated)
	registerType("frame_rendered", EditorRendered)
	registerType("editor_input_handled", EditorInputHandled)
	registerType("editor_state_changed", EditorStateChanged)
	registerType("keyboard_input", KeyboardInput)
	registerType("hierarchy_changed", HierarchyChanged)
}

// TypeByName returns the EventType for a wire name
func TypeByName(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// Types returns every event type in declaration order
func Types() []EventType {
	return []EventType{
		EditorStarted,
		EditorStopped,
		EditorFinished,
		EditorUpdated,
		EditorRendered,
		EditorInputHandled,
		EditorStateChanged,
		KeyboardInput,
		HierarchyChanged,
	}
}
