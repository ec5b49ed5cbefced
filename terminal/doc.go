// @focus: #sys { term }
// Package terminal owns the terminal device for the editor loop.
//
// Features:
//   - Save and restore of the full termios state
//   - cbreak mode without local echo, signals stay enabled
//   - Non-blocking stdin with poll-guarded reads that never wait
//   - Cursor visibility and size queries
//   - Emergency reset for crash paths
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
