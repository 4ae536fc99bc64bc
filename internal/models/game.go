package models

// QuestionPair is one forced asker/target turn in directed sub-mode
type QuestionPair struct {
	Asker  string `json:"asker"`
	Target string `json:"target"`
}

// Vote is one accusation. A voter holds at most one vote per round.
type Vote struct {
	Voter   string `json:"voter"`
	Suspect string `json:"suspect"`
}

// Round represents the ephemeral state of one round (reset every round)
type Round struct {
	Category string    `json:"category"`
	Word     string    `json:"word,omitempty"` // classic secret
	Pair     *WordPair `json:"pair,omitempty"` // chameleon secret
	Culprits []int     `json:"culprits"`       // spy indices (classic) or the single imposter index (chameleon)

	CurrentPlayerIndex int `json:"currentPlayerIndex"` // distribution cursor
	VoterIndex         int `json:"voterIndex"`         // voting cursor

	TimeRemaining int  `json:"timeRemaining"` // seconds
	TimerRunning  bool `json:"timerRunning"`

	CurrentPair     *QuestionPair  `json:"currentPair,omitempty"`
	QuestionHistory []QuestionPair `json:"questionHistory"`

	Votes          []Vote  `json:"votes"` // ordered by first cast
	VotingComplete bool    `json:"votingComplete"`
	SpyGuess       *string `json:"spyGuess,omitempty"`
	Result         Result  `json:"result"`
	Scored         bool    `json:"scored"`
}

// HasCulprit reports whether index holds the spy/imposter role
func (r *Round) HasCulprit(index int) bool {
	for _, c := range r.Culprits {
		if c == index {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (r Round) Clone() Round {
	out := r
	if r.Pair != nil {
		p := *r.Pair
		out.Pair = &p
	}
	if r.CurrentPair != nil {
		p := *r.CurrentPair
		out.CurrentPair = &p
	}
	if r.SpyGuess != nil {
		g := *r.SpyGuess
		out.SpyGuess = &g
	}
	out.Culprits = append([]int(nil), r.Culprits...)
	out.QuestionHistory = append([]QuestionPair(nil), r.QuestionHistory...)
	out.Votes = append([]Vote(nil), r.Votes...)
	return out
}
