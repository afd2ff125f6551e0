package gamepad

import "fmt"

// Key is a gamepad key in the GUI's input vocabulary.
type Key uint8

const (
	KeyNone Key = iota
	KeyStart
	KeyBack
	KeyFaceLeft
	KeyFaceRight
	KeyFaceUp
	KeyFaceDown
	KeyDpadLeft
	KeyDpadRight
	KeyDpadUp
	KeyDpadDown
	KeyL1
	KeyR1
	KeyL2
	KeyR2
	KeyL3
	KeyR3
	KeyLStickLeft
	KeyLStickRight
	KeyLStickUp
	KeyLStickDown
	KeyRStickLeft
	KeyRStickRight
	KeyRStickUp
	KeyRStickDown
)

var keyNames = [...]string{
	KeyNone:        "None",
	KeyStart:       "GamepadStart",
	KeyBack:        "GamepadBack",
	KeyFaceLeft:    "GamepadFaceLeft",
	KeyFaceRight:   "GamepadFaceRight",
	KeyFaceUp:      "GamepadFaceUp",
	KeyFaceDown:    "GamepadFaceDown",
	KeyDpadLeft:    "GamepadDpadLeft",
	KeyDpadRight:   "GamepadDpadRight",
	KeyDpadUp:      "GamepadDpadUp",
	KeyDpadDown:    "GamepadDpadDown",
	KeyL1:          "GamepadL1",
	KeyR1:          "GamepadR1",
	KeyL2:          "GamepadL2",
	KeyR2:          "GamepadR2",
	KeyL3:          "GamepadL3",
	KeyR3:          "GamepadR3",
	KeyLStickLeft:  "GamepadLStickLeft",
	KeyLStickRight: "GamepadLStickRight",
	KeyLStickUp:    "GamepadLStickUp",
	KeyLStickDown:  "GamepadLStickDown",
	KeyRStickLeft:  "GamepadRStickLeft",
	KeyRStickRight: "GamepadRStickRight",
	KeyRStickUp:    "GamepadRStickUp",
	KeyRStickDown:  "GamepadRStickDown",
}

// String returns the name used for the key on the wire.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

var buttonKeys = [...]Key{
	South:         KeyFaceDown,
	East:          KeyFaceRight,
	North:         KeyFaceUp,
	West:          KeyFaceLeft,
	LeftTrigger:   KeyL1,
	LeftTrigger2:  KeyL2,
	RightTrigger:  KeyR1,
	RightTrigger2: KeyR2,
	Select:        KeyBack,
	Start:         KeyStart,
	LeftThumb:     KeyL3,
	RightThumb:    KeyR3,
	DPadUp:        KeyDpadUp,
	DPadDown:      KeyDpadDown,
	DPadLeft:      KeyDpadLeft,
	DPadRight:     KeyDpadRight,
	// C, Z, Mode and ButtonUnknown have no GUI key.
}

// KeyFor returns the GUI key for a digital button. ok is false for buttons the
// GUI has no key for.
func KeyFor(b Button) (key Key, ok bool) {
	if int(b) >= len(buttonKeys) {
		return KeyNone, false
	}
	key = buttonKeys[b]
	return key, key != KeyNone
}
