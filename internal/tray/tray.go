// Package tray shows a system tray icon with "Open Browser" and "Exit" entries.
package tray

import (
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
	"go.uber.org/zap"
)

// ShutdownFunc is called when "Exit" is clicked
type ShutdownFunc func()

// Tray manages the system tray icon and menu
type Tray struct {
	url          string
	shutdownFunc ShutdownFunc
	logger       *zap.SugaredLogger
	once         sync.Once
	shuttingDown atomic.Bool
	menuOpen     *systray.MenuItem
	menuExit     *systray.MenuItem
}

// New creates a tray whose "Open Browser" entry opens url.
func New(url string, shutdownFn ShutdownFunc, logger *zap.SugaredLogger) *Tray {
	return &Tray{
		url:          url,
		shutdownFunc: shutdownFn,
		logger:       logger,
	}
}

// Run initializes and runs the system tray (blocks until Quit())
func (t *Tray) Run(iconData []byte) {
	systray.Run(func() {
		t.onReady(iconData)
	}, func() {
		t.onExit()
	})
}

// Quit removes the tray icon. Safe to call when the shutdown came from elsewhere.
func (t *Tray) Quit() {
	if t.shuttingDown.CompareAndSwap(false, true) {
		systray.Quit()
	}
}

// onReady is called when the tray is ready
func (t *Tray) onReady(iconData []byte) {
	// No icon is bundled; systray falls back to the title text
	if iconData != nil {
		systray.SetIcon(iconData)
	}
	systray.SetTitle("padkeys")
	systray.SetTooltip("padkeys - " + t.url)

	t.menuOpen = systray.AddMenuItem("Open Browser", "Open the key stream viewer")
	t.menuExit = systray.AddMenuItem("Exit", "Quit application")

	// Handle menu clicks in separate goroutines to prevent blocking
	go t.handleMenuClicks()

	t.logger.Info("System tray initialized")
}

// handleMenuClicks runs until "Exit" is clicked
func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.menuOpen.ClickedCh:
			t.openBrowser()
		case <-t.menuExit.ClickedCh:
			if t.shuttingDown.CompareAndSwap(false, true) {
				// Shutdown hook runs before the tray is removed
				t.once.Do(t.shutdownFunc)
				systray.Quit()
				return
			}
		}
	}
}

// onExit is called when the tray is exiting
func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	t.logger.Info("System tray exiting")
}

// openBrowser opens the viewer in the default web browser
func (t *Tray) openBrowser() {
	// Prevent browser launches during shutdown
	if t.shuttingDown.Load() {
		return
	}

	cmd := browserCommand(runtime.GOOS, t.url)
	if err := cmd.Start(); err != nil {
		t.logger.Warnf("Failed to open browser for %s: %v", t.url, err)
		return
	}
	// Reap the launcher; the browser itself keeps running
	go func() { _ = cmd.Wait() }()
}

// browserCommand returns the command that opens url on goos.
func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
