package models

// State is everything the engine owns for one app session
type State struct {
	Players    []string   `json:"players"`
	Settings   Settings   `json:"settings"`
	Screen     Screen     `json:"screen"`
	Round      Round      `json:"round"`
	Tournament Tournament `json:"tournament"`
}

// Clone returns a deep copy, so reductions never share slices or maps
func (s State) Clone() State {
	out := s
	out.Players = append([]string(nil), s.Players...)
	out.Round = s.Round.Clone()
	out.Tournament = s.Tournament.Clone()
	return out
}

// PlayerIndex returns the roster index of name, or -1
func (s *State) PlayerIndex(name string) int {
	for i, p := range s.Players {
		if p == name {
			return i
		}
	}
	return -1
}
