package gamepad

import (
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Sink is the GUI input layer the handler writes into.
type Sink interface {
	// AddKeyEvent queues a key transition.
	AddKeyEvent(key Key, down bool)
	// SetHasGamepad sets the GUI's "gamepad backend available" flag.
	SetHasGamepad(present bool)
}

// Handler tracks the connected controllers and translates their events.
// It is not safe for concurrent use; feed it from a single goroutine.
type Handler struct {
	states map[ID]*State
	logger *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger makes the handler log connects, disconnects and ignored events
// at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler returns a handler with no connected controllers.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		states: make(map[ID]*State),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleEvent applies one raw event and writes the resulting key transitions
// and flag changes into sink.
func (h *Handler) HandleEvent(sink Sink, ev Event) {
	switch ev.Type {
	case ButtonPressed:
		if key, ok := KeyFor(ev.Button); ok {
			sink.AddKeyEvent(key, true)
		}
	case ButtonReleased:
		if key, ok := KeyFor(ev.Button); ok {
			sink.AddKeyEvent(key, false)
		}
	case ButtonChanged:
		if s, ok := h.lookup(ev); ok {
			s.ApplyButton(sink, ev.Button, ev.Value)
		}
	case AxisChanged:
		if s, ok := h.lookup(ev); ok {
			s.ApplyAxis(sink, ev.Axis, ev.Value)
		}
	case Connected:
		h.states[ev.ID] = &State{}
		sink.SetHasGamepad(true)
		h.logger.Debug("gamepad connected", zap.Uint32("id", uint32(ev.ID)), zap.Int("connected", len(h.states)))
	case Disconnected:
		delete(h.states, ev.ID)
		if len(h.states) == 0 {
			sink.SetHasGamepad(false)
		}
		h.logger.Debug("gamepad disconnected", zap.Uint32("id", uint32(ev.ID)), zap.Int("connected", len(h.states)))
	case ButtonRepeated, Dropped:
	}
}

func (h *Handler) lookup(ev Event) (*State, bool) {
	s, ok := h.states[ev.ID]
	if !ok {
		h.logger.Debug("ignoring event for unknown gamepad", zap.Stringer("event", ev))
	}
	return s, ok
}

// Connected returns the IDs of the connected controllers in ascending order.
func (h *Handler) Connected() []ID {
	ids := lo.Keys(h.states)
	slices.Sort(ids)
	return ids
}

// State returns a copy of a connected controller's analogue state.
func (h *Handler) State(id ID) (State, bool) {
	s, ok := h.states[id]
	if !ok {
		return State{}, false
	}
	return *s, true
}

// Len returns the number of connected controllers.
func (h *Handler) Len() int {
	return len(h.states)
}
