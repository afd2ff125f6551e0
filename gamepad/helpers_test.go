package gamepad

type keyEvent struct {
	Key  Key
	Down bool
}

// recordingSink remembers everything the handler writes into it.
type recordingSink struct {
	events     []keyEvent
	hasGamepad bool
	flagWrites int
}

func (s *recordingSink) AddKeyEvent(key Key, down bool) {
	s.events = append(s.events, keyEvent{key, down})
}

func (s *recordingSink) SetHasGamepad(present bool) {
	s.hasGamepad = present
	s.flagWrites++
}

func (s *recordingSink) take() []keyEvent {
	evs := s.events
	s.events = nil
	return evs
}

func down(k Key) keyEvent { return keyEvent{k, true} }
func up(k Key) keyEvent   { return keyEvent{k, false} }
