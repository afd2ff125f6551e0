// Command padkeys reads gamepads through SDL3, turns their input into GUI key
// events and streams those to a browser page.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/soar/padkeys/internal/app"
	"github.com/soar/padkeys/internal/config"
	"github.com/soar/padkeys/internal/console"
	"github.com/soar/padkeys/internal/hub"
	"github.com/soar/padkeys/internal/logging"
	"github.com/soar/padkeys/internal/sdlinput"
	"github.com/soar/padkeys/internal/server"
	"github.com/soar/padkeys/internal/tray"
)

// On Windows os.Interrupt is sent when Ctrl+C is pressed, on Unix it is SIGINT.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "padkeys:", err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	zl, err := logging.New(cfg.LogLevel, cfg.DevLog)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	logger := zl.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	defer signal.Stop(sigCh)

	consoleShutdown := make(chan struct{})
	registerConsole := console.SetupConsoleHandler(consoleShutdown)
	if err := registerConsole(); err != nil {
		logger.Warnf("Failed to set console control handler: %v", err)
	}

	// The reader owns the SDL thread; the frame loop owns the handler and the
	// GUI state. Events cross between them over the reader's channel.
	reader := sdlinput.NewReader(logger.Named("sdl"), cfg.QueueSize)
	loop := app.NewLoop(reader.Events(), cfg.FrameInterval, logger.Named("frames"))

	h := hub.NewHub(logger.Named("hub"))
	go h.Run()

	broadcaster := hub.NewBroadcaster(h, loop.Frames(), logger.Named("hub"))
	go broadcaster.Run()

	srv, err := server.New(h, broadcaster, getFrontendFS(), cfg.Addr, logger.Named("http"))
	if err != nil {
		return err
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	readerDone := make(chan error, 1)
	go func() {
		readerDone <- reader.Run(ctx, func() {
			// SDL replaces the console handler during init
			if err := registerConsole(); err != nil {
				logger.Warnf("Failed to re-register console control handler: %v", err)
			}
		})
	}()

	loopDone := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(loopDone)
	}()

	url := viewerURL(cfg.Addr)
	logger.Infof("padkeys started: %s", url)

	shutdownRequested := make(chan struct{})
	var t *tray.Tray
	if cfg.Tray {
		t = tray.New(url, func() { close(shutdownRequested) }, logger.Named("tray"))
		go t.Run(nil)
	} else {
		logger.Info("Press Ctrl+C to exit")
	}

	readerFinished := false
	select {
	case <-sigCh:
		logger.Info("Shutting down...")
	case <-consoleShutdown:
		logger.Info("Shutting down...")
	case <-shutdownRequested:
		logger.Info("Shutdown requested from tray")
	case serr := <-serverErrCh:
		err = errors.Wrap(serr, "HTTP server")
	case rerr := <-readerDone:
		readerFinished = true
		err = rerr
	}
	cancel()

	if !readerFinished {
		err = multierr.Append(err, <-readerDone)
	}
	<-loopDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		err = multierr.Append(err, errors.Wrap(serr, "HTTP server shutdown"))
	}

	if t != nil {
		t.Quit()
	}

	logger.Infow("padkeys stopped", zap.Error(err))
	return err
}

func viewerURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
