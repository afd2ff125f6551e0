package hub

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padkeys/internal/guiio"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for frames and broadcasts them to the hub.
type Broadcaster struct {
	hub    *Hub
	frames <-chan guiio.Frame
	logger *zap.SugaredLogger

	mu        sync.Mutex
	lastFrame guiio.Frame
	seq       int64
}

func NewBroadcaster(h *Hub, frames <-chan guiio.Frame, logger *zap.SugaredLogger) *Broadcaster {
	return &Broadcaster{
		hub:    h,
		frames: frames,
		logger: logger,
	}
}

// Run starts the broadcaster loop. It returns when the frame channel is closed.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case frame, ok := <-b.frames:
			if !ok {
				return
			}

			b.mu.Lock()
			prev := b.lastFrame
			b.lastFrame = frame
			b.mu.Unlock()

			// Send full state on connect/disconnect and periodically
			if deltaCount >= deltaCountSync || frame.HasGamepad != prev.HasGamepad ||
				!slices.Equal(frame.Controllers, prev.Controllers) {
				b.sendFull(frame)
				deltaCount = 0
			}
			if len(frame.Events) > 0 {
				b.sendKeys(frame.Events)
				deltaCount++
			}

		case <-ticker.C:
			b.mu.Lock()
			frame := b.lastFrame
			b.mu.Unlock()
			if frame.HasGamepad {
				b.sendFull(frame)
			}
		}
	}
}

// SendInitialState sends the current full state to a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	b.seq++
	msg := NewFullMessage(b.seq, &b.lastFrame)
	b.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Errorf("Error marshaling initial state: %v", err)
		return
	}
	if !b.hub.SendTo(c, data) {
		b.logger.Debugf("Initial state not delivered, client gone or behind")
	}
}

func (b *Broadcaster) nextSeq() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

func (b *Broadcaster) sendFull(frame guiio.Frame) {
	b.broadcast(NewFullMessage(b.nextSeq(), &frame))
}

func (b *Broadcaster) sendKeys(events []guiio.KeyEvent) {
	b.broadcast(NewKeysMessage(b.nextSeq(), events))
}

func (b *Broadcaster) broadcast(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Errorf("Error marshaling %s message: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}
