// Package app runs the frame loop that owns the gamepad handler and the GUI
// input state.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padkeys/gamepad"
	"github.com/soar/padkeys/internal/guiio"
)

// Loop applies forwarded gamepad events to a single handler and publishes one
// frame per interval when something changed. Only the goroutine running Run
// touches the handler and the IO.
type Loop struct {
	handler  *gamepad.Handler
	io       *guiio.IO
	events   <-chan gamepad.Event
	frames   chan guiio.Frame
	interval time.Duration
	logger   *zap.SugaredLogger
}

func NewLoop(events <-chan gamepad.Event, interval time.Duration, logger *zap.SugaredLogger) *Loop {
	return &Loop{
		handler:  gamepad.NewHandler(gamepad.WithLogger(logger.Desugar())),
		io:       guiio.New(),
		events:   events,
		frames:   make(chan guiio.Frame, 16),
		interval: interval,
		logger:   logger,
	}
}

// Frames returns the channel frames are published on. It is closed when Run
// returns.
func (l *Loop) Frames() <-chan guiio.Frame {
	return l.frames
}

// Run processes events until ctx is done or the event channel is closed.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.frames)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var last guiio.Frame
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-l.events:
			if !ok {
				l.publish(ctx, &last)
				l.logger.Info("Event source closed, stopping frame loop")
				return
			}
			l.handler.HandleEvent(l.io, ev)

		case <-ticker.C:
			l.publish(ctx, &last)
		}
	}
}

// publish blocks until the consumer takes the frame or ctx is done. Frames
// carry key transitions and are never dropped.
func (l *Loop) publish(ctx context.Context, last *guiio.Frame) {
	f := l.io.EndFrame()
	f.Controllers = l.handler.Connected()
	if !f.Changed(last) {
		return
	}
	*last = f
	select {
	case l.frames <- f:
	case <-ctx.Done():
		l.logger.Debugf("Frame %d not published, loop stopping", f.Seq)
	}
}
