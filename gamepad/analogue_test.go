package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveThreshold(t *testing.T) {
	var s State

	s.L2 = 0.01
	assert.False(t, s.Active(DirTriggerL), "the threshold itself is not pressed")
	s.L2 = 0.0100001
	assert.True(t, s.Active(DirTriggerL))

	s.LY = -0.01
	assert.False(t, s.Active(DirLStickDown))
	s.LY = -0.0100001
	assert.True(t, s.Active(DirLStickDown))
	assert.False(t, s.Active(DirLStickUp))
}

func TestActiveDirections(t *testing.T) {
	s := State{LX: -1, LY: 1, RX: 1, RY: -1, DPadX: -1, DPadY: 1, R2: 0.5}

	active := map[Direction]bool{}
	for d := DirTriggerL; d <= DirDPadRight; d++ {
		active[d] = s.Active(d)
	}
	assert.Equal(t, map[Direction]bool{
		DirTriggerL:    false,
		DirTriggerR:    true,
		DirLStickUp:    true,
		DirLStickDown:  false,
		DirLStickLeft:  true,
		DirLStickRight: false,
		DirRStickUp:    false,
		DirRStickDown:  true,
		DirRStickLeft:  false,
		DirRStickRight: true,
		DirDPadUp:      true,
		DirDPadDown:    false,
		DirDPadLeft:    true,
		DirDPadRight:   false,
	}, active)
	assert.False(t, s.Active(Direction(99)))
}

func TestApplyButtonTriggers(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)

	s.ApplyButton(&sink, LeftTrigger2, 0.5)
	assert.Equal(t, []keyEvent{down(KeyL2)}, sink.take())
	assert.Equal(t, float32(0.5), s.L2)

	s.ApplyButton(&sink, LeftTrigger2, 0.9)
	assert.Empty(t, sink.take(), "still pressed")

	s.ApplyButton(&sink, LeftTrigger2, 0)
	assert.Equal(t, []keyEvent{up(KeyL2)}, sink.take())

	s.ApplyButton(&sink, RightTrigger2, 1)
	assert.Equal(t, []keyEvent{down(KeyR2)}, sink.take())
}

func TestApplyButtonIgnoresOtherButtons(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)
	for _, b := range []Button{South, LeftTrigger, RightTrigger, Start, ButtonUnknown, Button(77)} {
		s.ApplyButton(&sink, b, 1)
	}
	assert.Empty(t, sink.events)
	assert.Equal(t, State{}, s)
}

func TestApplyAxisCrossingZero(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)

	s.ApplyAxis(&sink, LeftStickY, 0.5)
	require.Equal(t, []keyEvent{down(KeyLStickUp)}, sink.take())

	s.ApplyAxis(&sink, LeftStickY, -0.5)
	assert.ElementsMatch(t, []keyEvent{up(KeyLStickUp), down(KeyLStickDown)}, sink.take())
}

func TestApplyAxisRepeatedValue(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)

	s.ApplyAxis(&sink, RightStickX, 0.7)
	assert.Len(t, sink.take(), 1)
	s.ApplyAxis(&sink, RightStickX, 0.7)
	assert.Empty(t, sink.take())
	s.ApplyAxis(&sink, RightStickX, 0.005)
	assert.Equal(t, []keyEvent{up(KeyRStickRight)}, sink.take())
	s.ApplyAxis(&sink, RightStickX, -0.005)
	assert.Empty(t, sink.take(), "below the threshold on either side")
}

func TestApplyAxisBindings(t *testing.T) {
	cases := []struct {
		axis     Axis
		neg, pos Key
	}{
		{LeftStickX, KeyLStickLeft, KeyLStickRight},
		{LeftStickY, KeyLStickDown, KeyLStickUp},
		{RightStickX, KeyRStickLeft, KeyRStickRight},
		{RightStickY, KeyRStickDown, KeyRStickUp},
		{DPadX, KeyDpadLeft, KeyDpadRight},
		{DPadY, KeyDpadDown, KeyDpadUp},
	}
	for _, tc := range cases {
		t.Run(tc.axis.String(), func(t *testing.T) {
			var (
				s    State
				sink recordingSink
			)
			s.ApplyAxis(&sink, tc.axis, 1)
			assert.Equal(t, []keyEvent{down(tc.pos)}, sink.take())
			s.ApplyAxis(&sink, tc.axis, 0)
			assert.Equal(t, []keyEvent{up(tc.pos)}, sink.take())
			s.ApplyAxis(&sink, tc.axis, -1)
			assert.Equal(t, []keyEvent{down(tc.neg)}, sink.take())
			s.ApplyAxis(&sink, tc.axis, 0)
			assert.Equal(t, []keyEvent{up(tc.neg)}, sink.take())
		})
	}
}

func TestApplyAxisDPadFields(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)
	s.ApplyAxis(&sink, DPadX, -1)
	s.ApplyAxis(&sink, DPadY, 1)
	assert.Equal(t, State{DPadX: -1, DPadY: 1}, s)
	assert.Equal(t, []keyEvent{down(KeyDpadLeft), down(KeyDpadUp)}, sink.take())
}

func TestApplyAxisIgnoresUnsupportedAxes(t *testing.T) {
	var (
		s    State
		sink recordingSink
	)
	for _, a := range []Axis{LeftZ, RightZ, AxisUnknown, Axis(42)} {
		s.ApplyAxis(&sink, a, 1)
	}
	assert.Empty(t, sink.events)
	assert.Equal(t, State{}, s)
}
