// Package gamepad turns raw gamepad events into the key-down/key-up stream an
// immediate-mode GUI expects.
//
// A Handler keeps one analogue State per connected controller. Digital button
// edges are mapped straight to GUI keys; trigger, stick and d-pad values are
// compared against a fixed threshold and a key transition is synthesized each
// time a virtual direction flips on or off.
package gamepad

import "fmt"

// ID identifies one connected controller. The value is opaque and only used
// as a map key; sources may reuse it after a disconnect.
type ID uint32

// EventType is the kind of a raw gamepad event.
type EventType uint8

const (
	Connected EventType = iota
	Disconnected
	ButtonPressed
	ButtonReleased
	ButtonRepeated
	ButtonChanged
	AxisChanged
	Dropped
)

var eventTypeNames = [...]string{
	Connected:      "Connected",
	Disconnected:   "Disconnected",
	ButtonPressed:  "ButtonPressed",
	ButtonReleased: "ButtonReleased",
	ButtonRepeated: "ButtonRepeated",
	ButtonChanged:  "ButtonChanged",
	AxisChanged:    "AxisChanged",
	Dropped:        "Dropped",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// Button is a physical button in the input source's vocabulary.
type Button uint8

const (
	ButtonUnknown Button = iota
	South
	East
	North
	West
	C
	Z
	LeftTrigger
	LeftTrigger2
	RightTrigger
	RightTrigger2
	Select
	Start
	Mode
	LeftThumb
	RightThumb
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
)

var buttonNames = [...]string{
	ButtonUnknown: "Unknown",
	South:         "South",
	East:          "East",
	North:         "North",
	West:          "West",
	C:             "C",
	Z:             "Z",
	LeftTrigger:   "LeftTrigger",
	LeftTrigger2:  "LeftTrigger2",
	RightTrigger:  "RightTrigger",
	RightTrigger2: "RightTrigger2",
	Select:        "Select",
	Start:         "Start",
	Mode:          "Mode",
	LeftThumb:     "LeftThumb",
	RightThumb:    "RightThumb",
	DPadUp:        "DPadUp",
	DPadDown:      "DPadDown",
	DPadLeft:      "DPadLeft",
	DPadRight:     "DPadRight",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", b)
}

// Axis is an analogue axis in the input source's vocabulary.
type Axis uint8

const (
	AxisUnknown Axis = iota
	LeftStickX
	LeftStickY
	LeftZ
	RightStickX
	RightStickY
	RightZ
	DPadX
	DPadY
)

var axisNames = [...]string{
	AxisUnknown: "Unknown",
	LeftStickX:  "LeftStickX",
	LeftStickY:  "LeftStickY",
	LeftZ:       "LeftZ",
	RightStickX: "RightStickX",
	RightStickY: "RightStickY",
	RightZ:      "RightZ",
	DPadX:       "DPadX",
	DPadY:       "DPadY",
}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", a)
}

// Event is one raw event from the input source. Button is set for the button
// event types, Axis for AxisChanged, and Value for ButtonChanged ([0, 1]) and
// AxisChanged ([-1, 1]).
type Event struct {
	ID     ID
	Type   EventType
	Button Button
	Axis   Axis
	Value  float32
}

func (e Event) String() string {
	switch e.Type {
	case ButtonPressed, ButtonReleased, ButtonRepeated:
		return fmt.Sprintf("%d:%s(%s)", e.ID, e.Type, e.Button)
	case ButtonChanged:
		return fmt.Sprintf("%d:%s(%s, %.3f)", e.ID, e.Type, e.Button, e.Value)
	case AxisChanged:
		return fmt.Sprintf("%d:%s(%s, %.3f)", e.ID, e.Type, e.Axis, e.Value)
	default:
		return fmt.Sprintf("%d:%s", e.ID, e.Type)
	}
}

func Connect(id ID) Event    { return Event{ID: id, Type: Connected} }
func Disconnect(id ID) Event { return Event{ID: id, Type: Disconnected} }
func Drop(id ID) Event       { return Event{ID: id, Type: Dropped} }

func Press(id ID, b Button) Event   { return Event{ID: id, Type: ButtonPressed, Button: b} }
func Release(id ID, b Button) Event { return Event{ID: id, Type: ButtonReleased, Button: b} }
func Repeat(id ID, b Button) Event  { return Event{ID: id, Type: ButtonRepeated, Button: b} }

// ChangeButton reports a new analogue value for a button.
func ChangeButton(id ID, b Button, v float32) Event {
	return Event{ID: id, Type: ButtonChanged, Button: b, Value: v}
}

// ChangeAxis reports a new value for an axis.
func ChangeAxis(id ID, a Axis, v float32) Event {
	return Event{ID: id, Type: AxisChanged, Axis: a, Value: v}
}
