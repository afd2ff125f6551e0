package gamepad

import "fmt"

// Threshold is how far an analogue value has to move away from rest before
// its virtual direction counts as pressed. The comparison is strict.
const Threshold = 0.01

// Direction is a virtual digital input derived from one analogue value.
type Direction uint8

const (
	DirTriggerL Direction = iota
	DirTriggerR
	DirLStickUp
	DirLStickDown
	DirLStickLeft
	DirLStickRight
	DirRStickUp
	DirRStickDown
	DirRStickLeft
	DirRStickRight
	DirDPadUp
	DirDPadDown
	DirDPadLeft
	DirDPadRight
)

var directionNames = [...]string{
	DirTriggerL:    "TriggerL",
	DirTriggerR:    "TriggerR",
	DirLStickUp:    "LStickUp",
	DirLStickDown:  "LStickDown",
	DirLStickLeft:  "LStickLeft",
	DirLStickRight: "LStickRight",
	DirRStickUp:    "RStickUp",
	DirRStickDown:  "RStickDown",
	DirRStickLeft:  "RStickLeft",
	DirRStickRight: "RStickRight",
	DirDPadUp:      "DPadUp",
	DirDPadDown:    "DPadDown",
	DirDPadLeft:    "DPadLeft",
	DirDPadRight:   "DPadRight",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// State is the last known analogue state of one controller. Triggers are in
// [0, 1], everything else in [-1, 1] with up and right positive.
type State struct {
	L2, R2       float32
	LX, LY       float32
	RX, RY       float32
	DPadX, DPadY float32
}

// Active reports whether the virtual direction is currently pressed.
func (s State) Active(d Direction) bool {
	switch d {
	case DirTriggerL:
		return s.L2 > Threshold
	case DirTriggerR:
		return s.R2 > Threshold
	case DirLStickUp:
		return s.LY > Threshold
	case DirLStickDown:
		return s.LY < -Threshold
	case DirLStickLeft:
		return s.LX < -Threshold
	case DirLStickRight:
		return s.LX > Threshold
	case DirRStickUp:
		return s.RY > Threshold
	case DirRStickDown:
		return s.RY < -Threshold
	case DirRStickLeft:
		return s.RX < -Threshold
	case DirRStickRight:
		return s.RX > Threshold
	case DirDPadUp:
		return s.DPadY > Threshold
	case DirDPadDown:
		return s.DPadY < -Threshold
	case DirDPadLeft:
		return s.DPadX < -Threshold
	case DirDPadRight:
		return s.DPadX > Threshold
	}
	return false
}

// ApplyButton stores a new analogue value for one of the two lower triggers
// and emits L2/R2 when the trigger crosses the threshold. Any other button is
// ignored; their digital edges go through KeyFor.
func (s *State) ApplyButton(sink Sink, b Button, v float32) {
	switch b {
	case LeftTrigger2:
		s.update(sink, &s.L2, v, binding{DirTriggerL, KeyL2})
	case RightTrigger2:
		s.update(sink, &s.R2, v, binding{DirTriggerR, KeyR2})
	}
}

// ApplyAxis stores a new stick or d-pad value and emits a transition for each
// of the axis' two directions whose state flipped. Moving straight from one
// side to the other releases one direction and presses the other.
func (s *State) ApplyAxis(sink Sink, a Axis, v float32) {
	switch a {
	case LeftStickX:
		s.update(sink, &s.LX, v, binding{DirLStickLeft, KeyLStickLeft}, binding{DirLStickRight, KeyLStickRight})
	case LeftStickY:
		s.update(sink, &s.LY, v, binding{DirLStickDown, KeyLStickDown}, binding{DirLStickUp, KeyLStickUp})
	case RightStickX:
		s.update(sink, &s.RX, v, binding{DirRStickLeft, KeyRStickLeft}, binding{DirRStickRight, KeyRStickRight})
	case RightStickY:
		s.update(sink, &s.RY, v, binding{DirRStickDown, KeyRStickDown}, binding{DirRStickUp, KeyRStickUp})
	case DPadX:
		s.update(sink, &s.DPadX, v, binding{DirDPadLeft, KeyDpadLeft}, binding{DirDPadRight, KeyDpadRight})
	case DPadY:
		s.update(sink, &s.DPadY, v, binding{DirDPadDown, KeyDpadDown}, binding{DirDPadUp, KeyDpadUp})
	}
}

// binding ties a virtual direction to the key it drives.
type binding struct {
	dir Direction
	key Key
}

// update writes v into field and emits one key event per binding whose
// direction changed state. field must point into s. At most two bindings.
func (s *State) update(sink Sink, field *float32, v float32, bs ...binding) {
	var was [2]bool
	for i, b := range bs {
		was[i] = s.Active(b.dir)
	}
	*field = v
	for i, b := range bs {
		if is := s.Active(b.dir); is != was[i] {
			sink.AddKeyEvent(b.key, is)
		}
	}
}
