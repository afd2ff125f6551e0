//go:build !windows

// Package console installs a Ctrl+C handler that keeps working while SDL owns
// the console control handler chain.
package console

// SetupConsoleHandler is a no-op outside Windows, where os/signal works with
// SDL running.
func SetupConsoleHandler(shutdownChan chan struct{}) (register func() error) {
	return func() error { return nil }
}
