package editor

// Terminal is the device whose mode the loop owns
// Implemented by terminal.Unix and render.Tcell
type Terminal interface {
	SaveSettings() error
	RestoreSettings() error
	DisableEcho() error
	EnableEcho() error
	SetNonBlocking(enabled bool) error
	SetCursorVisible(visible bool) error
	ReadPending() (string, error)
}
