// Package sdlinput reads joysticks through SDL3 and forwards their input as
// gamepad events.
package sdlinput

import (
	"context"
	"runtime"

	"github.com/jupiterrider/purego-sdl3/sdl"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/soar/padkeys/gamepad"
	"github.com/soar/padkeys/internal/devicemap"
)

const pollDelayNS = 16_000_000 // ~60Hz

type joystickInfo struct {
	joystick *sdl.Joystick
	mapping  *devicemap.DeviceMapping
	name     string
	id       sdl.JoystickID
}

// Reader reads joystick input from the SDL3 Joystick API and sends it out as
// gamepad events, in the order SDL reported it.
type Reader struct {
	joysticks map[sdl.JoystickID]*joystickInfo
	events    chan gamepad.Event
	logger    *zap.SugaredLogger
}

// NewReader returns a reader whose event channel buffers queueSize events.
func NewReader(logger *zap.SugaredLogger, queueSize int) *Reader {
	return &Reader{
		joysticks: make(map[sdl.JoystickID]*joystickInfo),
		events:    make(chan gamepad.Event, queueSize),
		logger:    logger,
	}
}

// Events returns the channel on which events are sent. It is closed when Run
// returns.
func (r *Reader) Events() <-chan gamepad.Event {
	return r.events
}

// Run initializes SDL and runs the event loop on a locked OS thread until ctx
// is done. afterInit, if not nil, is called once SDL is up.
func (r *Reader) Run(ctx context.Context, afterInit func()) error {
	defer close(r.events)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		return errors.Errorf("SDL init failed: %s", sdl.GetError())
	}
	defer sdl.Quit()

	r.logger.Info("SDL3 joystick subsystem initialized")
	if afterInit != nil {
		afterInit()
	}

	// Check for already-connected joysticks
	for _, id := range sdl.GetJoysticks() {
		r.openJoystick(ctx, id)
	}

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return nil
		default:
		}

		r.processEvents(ctx)
		sdl.DelayNS(pollDelayNS)
	}
}

func (r *Reader) processEvents(ctx context.Context) {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			r.openJoystick(ctx, event.JDevice().Which)

		case sdl.EventJoystickRemoved:
			r.removeJoystick(ctx, event.JDevice().Which)

		case sdl.EventJoystickButtonDown, sdl.EventJoystickButtonUp:
			be := event.JButton()
			info, ok := r.joysticks[be.Which]
			if !ok {
				continue
			}
			down := event.Type() == sdl.EventJoystickButtonDown
			r.send(ctx, info.mapping.ButtonEvent(gamepad.ID(be.Which), int32(be.Button), down))

		case sdl.EventJoystickAxisMotion:
			ae := event.JAxis()
			info, ok := r.joysticks[ae.Which]
			if !ok {
				continue
			}
			if ev, ok := info.mapping.AxisEvent(gamepad.ID(ae.Which), int32(ae.Axis), int16(ae.Value)); ok {
				r.send(ctx, ev)
			}

		case sdl.EventJoystickHatMotion:
			he := event.JHat()
			info, ok := r.joysticks[he.Which]
			if !ok || !info.mapping.HasHat || he.Hat != 0 {
				continue
			}
			for _, ev := range devicemap.HatEvents(gamepad.ID(he.Which), uint8(he.Value)) {
				r.send(ctx, ev)
			}
		}
	}
}

// send blocks until the consumer takes ev or ctx is done. Dropping a release
// would leave a key held in the GUI.
func (r *Reader) send(ctx context.Context, ev gamepad.Event) {
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}

func (r *Reader) openJoystick(ctx context.Context, instanceID sdl.JoystickID) {
	if _, exists := r.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		r.logger.Warnf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := devicemap.GetMapping(vendorID, productID)

	r.joysticks[jsID] = &joystickInfo{
		joystick: js,
		mapping:  mapping,
		name:     name,
		id:       jsID,
	}

	r.logger.Infof("Joystick connected: %s (ID=%d VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d hats=%d",
		name, jsID, vendorID, productID, mapping.Name,
		sdl.GetNumJoystickAxes(js), sdl.GetNumJoystickButtons(js), sdl.GetNumJoystickHats(js))

	r.send(ctx, gamepad.Connect(gamepad.ID(jsID)))
}

func (r *Reader) removeJoystick(ctx context.Context, instanceID sdl.JoystickID) {
	info, exists := r.joysticks[instanceID]
	if !exists {
		return
	}

	r.logger.Infof("Joystick disconnected: %s (ID=%d)", info.name, info.id)
	sdl.CloseJoystick(info.joystick)
	delete(r.joysticks, instanceID)

	r.send(ctx, gamepad.Disconnect(gamepad.ID(instanceID)))
}

func (r *Reader) closeAll() {
	for id, info := range r.joysticks {
		sdl.CloseJoystick(info.joystick)
		delete(r.joysticks, id)
	}
}
