package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/soar/padkeys/gamepad"
	"github.com/soar/padkeys/internal/guiio"
)

func runLoop(t *testing.T, events ...gamepad.Event) []guiio.Frame {
	t.Helper()
	ch := make(chan gamepad.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)

	l := NewLoop(ch, time.Hour, zaptest.NewLogger(t).Sugar())
	done := make(chan struct{})
	go func() {
		l.Run(context.Background())
		close(done)
	}()

	var frames []guiio.Frame
	for f := range l.Frames() {
		frames = append(frames, f)
	}
	<-done
	return frames
}

func TestLoopPublishesOnSourceClose(t *testing.T) {
	frames := runLoop(t,
		gamepad.Connect(1),
		gamepad.ChangeButton(1, gamepad.RightTrigger2, 0.5),
		gamepad.Press(1, gamepad.South),
	)

	require.Len(t, frames, 1)
	f := frames[0]
	assert.True(t, f.HasGamepad)
	assert.Equal(t, []gamepad.ID{1}, f.Controllers)
	assert.Equal(t, []guiio.KeyEvent{
		{Key: "GamepadR2", Down: true},
		{Key: "GamepadFaceDown", Down: true},
	}, f.Events)
	assert.Equal(t, []string{"GamepadFaceDown", "GamepadR2"}, f.Held)
}

func TestLoopSkipsUnchangedFrames(t *testing.T) {
	frames := runLoop(t, gamepad.ChangeAxis(1, gamepad.LeftStickX, 1))
	assert.Empty(t, frames, "unknown controller, nothing to report")
}

func TestLoopTicks(t *testing.T) {
	ch := make(chan gamepad.Event)
	l := NewLoop(ch, 5*time.Millisecond, zaptest.NewLogger(t).Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	ch <- gamepad.Connect(2)
	ch <- gamepad.Connect(3)

	var f guiio.Frame
	require.Eventually(t, func() bool {
		select {
		case f = <-l.Frames():
			return len(f.Controllers) == 2
		default:
			return false
		}
	}, time.Second, time.Millisecond)
	assert.Equal(t, []gamepad.ID{2, 3}, f.Controllers)

	ch <- gamepad.Disconnect(2)
	ch <- gamepad.Disconnect(3)
	require.Eventually(t, func() bool {
		select {
		case f = <-l.Frames():
			return !f.HasGamepad
		default:
			return false
		}
	}, time.Second, time.Millisecond)
	assert.Empty(t, f.Controllers)

	cancel()
	for range l.Frames() {
	}
}
