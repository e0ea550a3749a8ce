// Package view holds which screen is shown and recognizes toggle gestures.
package view

// Mode selects the screen.
type Mode uint8

const (
	Congestion Mode = iota
	NetworkFeed
)

func (m Mode) String() string {
	switch m {
	case Congestion:
		return "congestion"
	case NetworkFeed:
		return "feed"
	default:
		return "?"
	}
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == Congestion {
		return NetworkFeed
	}
	return Congestion
}

// State is the current mode. The zero value shows Congestion.
type State struct {
	mode Mode
}

func (s *State) Mode() Mode { return s.mode }

// Toggle flips the mode and returns the new one.
func (s *State) Toggle() Mode {
	s.mode = s.mode.Next()
	return s.mode
}

func (s *State) Set(m Mode) {
	if m != Congestion && m != NetworkFeed {
		return
	}
	s.mode = m
}
