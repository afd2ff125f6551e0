// Package devicemap maps raw joystick indices of known controllers to gamepad
// buttons and axes, and translates raw joystick input into gamepad events.
package devicemap

import (
	"math"

	"github.com/soar/padkeys/gamepad"
)

// AxisMapping defines how a raw axis index maps to a gamepad axis or trigger.
type AxisMapping struct {
	Index int32
	Axis  gamepad.Axis
	// Trigger is set for axes that report an analogue trigger button
	// (LeftTrigger2 or RightTrigger2) instead of a stick axis.
	Trigger gamepad.Button
	Invert  bool
	// For triggers: raw range. Some devices use -32768..32767, others 0..32767.
	RawMin int16
	RawMax int16
}

// IsTrigger reports whether the axis carries an analogue trigger.
func (m AxisMapping) IsTrigger() bool {
	return m.Trigger != gamepad.ButtonUnknown
}

// ButtonMapping defines how a raw button index maps to a gamepad button.
type ButtonMapping struct {
	Index  int32
	Button gamepad.Button
}

// DeviceMapping holds the complete mapping for a specific device type.
type DeviceMapping struct {
	Name    string
	Axes    []AxisMapping
	Buttons []ButtonMapping
	HasHat  bool
}

// Button returns the button for a raw button index, or ButtonUnknown.
func (m *DeviceMapping) Button(index int32) gamepad.Button {
	for _, bm := range m.Buttons {
		if bm.Index == index {
			return bm.Button
		}
	}
	return gamepad.ButtonUnknown
}

// Axis returns the mapping for a raw axis index.
func (m *DeviceMapping) Axis(index int32) (AxisMapping, bool) {
	for _, am := range m.Axes {
		if am.Index == index {
			return am, true
		}
	}
	return AxisMapping{}, false
}

// NormalizeAxis converts a raw axis value (-32768..32767) to -1.0..1.0.
func NormalizeAxis(raw int16) float32 {
	v := float32(raw) / math.MaxInt16
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to 0.0..1.0.
func NormalizeTrigger(raw int16, rawMin, rawMax int16) float32 {
	if rawMax == rawMin {
		return 0
	}
	v := float32(int32(raw)-int32(rawMin)) / float32(int32(rawMax)-int32(rawMin))
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// Built-in mappings for common controllers.

var standardSticks = []AxisMapping{
	{Index: 0, Axis: gamepad.LeftStickX},
	{Index: 1, Axis: gamepad.LeftStickY, Invert: true},
	{Index: 2, Axis: gamepad.RightStickX},
	{Index: 3, Axis: gamepad.RightStickY, Invert: true},
}

var standardAxes = append(standardSticks[:len(standardSticks):len(standardSticks)],
	AxisMapping{Index: 4, Trigger: gamepad.LeftTrigger2, RawMin: -32768, RawMax: 32767},
	AxisMapping{Index: 5, Trigger: gamepad.RightTrigger2, RawMin: -32768, RawMax: 32767},
)

var standardButtons = []ButtonMapping{
	{Index: 0, Button: gamepad.South},
	{Index: 1, Button: gamepad.East},
	{Index: 2, Button: gamepad.West},
	{Index: 3, Button: gamepad.North},
	{Index: 4, Button: gamepad.LeftTrigger},
	{Index: 5, Button: gamepad.RightTrigger},
	{Index: 6, Button: gamepad.Select},
	{Index: 7, Button: gamepad.Start},
	{Index: 8, Button: gamepad.LeftThumb},
	{Index: 9, Button: gamepad.RightThumb},
	{Index: 10, Button: gamepad.Mode},
}

var xboxMapping = &DeviceMapping{
	Name:    "xbox",
	Axes:    standardAxes,
	Buttons: standardButtons,
	HasHat:  true,
}

var playstationMapping = &DeviceMapping{
	Name: "playstation",
	Axes: standardAxes,
	Buttons: []ButtonMapping{
		{Index: 0, Button: gamepad.South},  // Cross
		{Index: 1, Button: gamepad.East},   // Circle
		{Index: 2, Button: gamepad.West},   // Square
		{Index: 3, Button: gamepad.North},  // Triangle
		{Index: 4, Button: gamepad.Select}, // Share / Create
		{Index: 5, Button: gamepad.Mode},   // PS button
		{Index: 6, Button: gamepad.Start},  // Options
		{Index: 7, Button: gamepad.LeftThumb},
		{Index: 8, Button: gamepad.RightThumb},
		{Index: 9, Button: gamepad.LeftTrigger},   // L1
		{Index: 10, Button: gamepad.RightTrigger}, // R1
	},
	HasHat: true,
}

// The Pro Controller's ZL/ZR are digital, so they arrive as buttons.
var switchProMapping = &DeviceMapping{
	Name: "switch_pro",
	Axes: standardSticks,
	Buttons: append(standardButtons[:len(standardButtons):len(standardButtons)],
		ButtonMapping{Index: 11, Button: gamepad.LeftTrigger2},
		ButtonMapping{Index: 12, Button: gamepad.RightTrigger2},
		ButtonMapping{Index: 13, Button: gamepad.C}, // Capture
	),
	HasHat: true,
}

var genericMapping = &DeviceMapping{
	Name:    "generic",
	Axes:    standardAxes,
	Buttons: standardButtons,
	HasHat:  true,
}

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*DeviceMapping{
	// Microsoft Xbox controllers
	{0x045E, 0x028E}: xboxMapping, // Xbox 360
	{0x045E, 0x02FF}: xboxMapping, // Xbox One
	{0x045E, 0x0B12}: xboxMapping, // Xbox Series X|S
	{0x045E, 0x0B13}: xboxMapping, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{0x054C, 0x0CE6}: playstationMapping, // DualSense
	{0x054C, 0x09CC}: playstationMapping, // DualShock 4 v2
	{0x054C, 0x05C4}: playstationMapping, // DualShock 4 v1
	// Nintendo Switch Pro Controller
	{0x057E, 0x2009}: switchProMapping,
}

// GetMapping returns the appropriate mapping for a device identified by vendor/product ID.
// Falls back to generic mapping if no specific mapping is found.
func GetMapping(vendorID, productID uint16) *DeviceMapping {
	key := deviceKey{VendorID: vendorID, ProductID: productID}
	if m, ok := knownDevices[key]; ok {
		return m
	}
	return genericMapping
}
