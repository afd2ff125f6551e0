// Package console installs a Ctrl+C handler that keeps working while SDL owns
// the console control handler chain.
package console

import (
	"sync/atomic"
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	ctrlCEvent     = 0
	ctrlBreakEvent = 1
)

type handlerState struct {
	closed       atomic.Bool
	shutdownChan chan struct{}
	callback     uintptr
}

// Kept reachable from the callback for the life of the process.
var state *handlerState

// SetupConsoleHandler closes shutdownChan on Ctrl+C or Ctrl+Break. SDL
// replaces console handlers during init, so call the returned function again
// once SDL is up.
func SetupConsoleHandler(shutdownChan chan struct{}) (register func() error) {
	state = &handlerState{shutdownChan: shutdownChan}
	state.callback = syscall.NewCallback(func(ctrlType uint32) uintptr {
		if ctrlType == ctrlCEvent || ctrlType == ctrlBreakEvent {
			if state.closed.CompareAndSwap(false, true) {
				close(state.shutdownChan)
			}
			return 1
		}
		return 0
	})

	register = func() error {
		ret, _, err := procSetConsoleCtrlHandler.Call(state.callback, 1)
		if ret == 0 {
			return err
		}
		return nil
	}
	return register
}
