package service

// Service is a long-lived subsystem running beside the editor loop, such as cue output or the assets watcher
// The hub drives Init in dependency order, then Start, and Stop in reverse
// Background goroutines never touch editor state, they hand results to the loop through channels
type Service interface {
	// Name is the unique key within a hub
	Name() string

	// Dependencies names services that initialize first, nil when none
	Dependencies() []string

	// Init applies settings passed to Hub.InitAll
	Init(args ...any) error

	// Start acquires resources and launches goroutines once every service is initialized
	Start() error

	// Stop releases resources, calling it twice is harmless
	Stop() error
}
