package devicemap

import "github.com/soar/padkeys/gamepad"

const (
	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

// ButtonEvent translates a raw button edge. Unmapped indices become
// ButtonUnknown, which the handler drops.
func (m *DeviceMapping) ButtonEvent(id gamepad.ID, index int32, down bool) gamepad.Event {
	b := m.Button(index)
	if down {
		return gamepad.Press(id, b)
	}
	return gamepad.Release(id, b)
}

// AxisEvent translates a raw axis value. Trigger axes become ButtonChanged
// events; stick axes become AxisChanged with up and right positive.
func (m *DeviceMapping) AxisEvent(id gamepad.ID, index int32, raw int16) (gamepad.Event, bool) {
	am, ok := m.Axis(index)
	if !ok {
		return gamepad.Event{}, false
	}
	if am.IsTrigger() {
		return gamepad.ChangeButton(id, am.Trigger, NormalizeTrigger(raw, am.RawMin, am.RawMax)), true
	}
	v := NormalizeAxis(raw)
	if am.Invert {
		v = -v
	}
	return gamepad.ChangeAxis(id, am.Axis, v), true
}

// HatEvents translates a hat bitmask into the two d-pad axes.
func HatEvents(id gamepad.ID, hat uint8) [2]gamepad.Event {
	var x, y float32
	if hat&hatLeft != 0 {
		x--
	}
	if hat&hatRight != 0 {
		x++
	}
	if hat&hatUp != 0 {
		y++
	}
	if hat&hatDown != 0 {
		y--
	}
	return [2]gamepad.Event{
		gamepad.ChangeAxis(id, gamepad.DPadX, x),
		gamepad.ChangeAxis(id, gamepad.DPadY, y),
	}
}
