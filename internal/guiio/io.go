// Package guiio is the GUI side of the key stream: it collects key events and
// the gamepad backend flag the way an immediate-mode GUI's IO struct does, and
// hands them out once per frame.
package guiio

import (
	"slices"

	"github.com/samber/lo"

	"github.com/soar/padkeys/gamepad"
)

// KeyEvent is one queued key transition.
type KeyEvent struct {
	Key  string `json:"key"`
	Down bool   `json:"down"`
}

// Frame is what the IO accumulated since the previous frame.
type Frame struct {
	Seq         int64        `json:"seq"`
	Events      []KeyEvent   `json:"events,omitempty"`
	Held        []string     `json:"held"`
	HasGamepad  bool         `json:"hasGamepad"`
	Controllers []gamepad.ID `json:"controllers"`
}

// Changed reports whether the frame carries anything new compared to prev.
func (f *Frame) Changed(prev *Frame) bool {
	return len(f.Events) > 0 ||
		f.HasGamepad != prev.HasGamepad ||
		!slices.Equal(f.Controllers, prev.Controllers)
}

// IO implements gamepad.Sink.
type IO struct {
	pending    []KeyEvent
	held       map[gamepad.Key]bool
	hasGamepad bool
	seq        int64
}

var _ gamepad.Sink = (*IO)(nil)

func New() *IO {
	return &IO{held: make(map[gamepad.Key]bool)}
}

// AddKeyEvent queues a key transition and updates the held-key set.
func (io *IO) AddKeyEvent(key gamepad.Key, down bool) {
	io.pending = append(io.pending, KeyEvent{Key: key.String(), Down: down})
	if down {
		io.held[key] = true
	} else {
		delete(io.held, key)
	}
}

// SetHasGamepad sets the backend flag.
func (io *IO) SetHasGamepad(present bool) {
	io.hasGamepad = present
}

// HasGamepad reports the backend flag.
func (io *IO) HasGamepad() bool {
	return io.hasGamepad
}

// IsDown reports whether key is currently held.
func (io *IO) IsDown(key gamepad.Key) bool {
	return io.held[key]
}

// EndFrame drains the queued events into a new frame.
func (io *IO) EndFrame() Frame {
	io.seq++
	held := lo.Map(lo.Keys(io.held), func(k gamepad.Key, _ int) string { return k.String() })
	slices.Sort(held)
	f := Frame{
		Seq:        io.seq,
		Events:     io.pending,
		Held:       held,
		HasGamepad: io.hasGamepad,
	}
	io.pending = nil
	return f
}
