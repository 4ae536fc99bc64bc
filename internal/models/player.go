package models

import "maps"

// Tournament tracks scores across rounds until someone reaches the target
type Tournament struct {
	Scores      map[string]int `json:"scores"`      // cumulative, persisted
	RoundScores map[string]int `json:"roundScores"` // points earned this round only
	RoundNumber int            `json:"roundNumber"`
	Winner      string         `json:"gameWinner,omitempty"`
}

// Clone returns a deep copy
func (t Tournament) Clone() Tournament {
	out := t
	out.Scores = maps.Clone(t.Scores)
	if out.Scores == nil {
		out.Scores = make(map[string]int)
	}
	out.RoundScores = maps.Clone(t.RoundScores)
	if out.RoundScores == nil {
		out.RoundScores = make(map[string]int)
	}
	return out
}
