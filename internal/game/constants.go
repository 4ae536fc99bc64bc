package game

import "time"

const (
	// MinPlayers is the minimum number of players required to start a round
	MinPlayers = 3

	// Award is the only score increment; there are no partial or negative points
	Award = 100

	// DefaultTimerDuration is the discussion length in seconds for a fresh install
	DefaultTimerDuration = 180

	// DefaultTargetScore ends the tournament once a player reaches it
	DefaultTargetScore = 500

	// RandomCategory as the category filter picks any category of the active mode
	RandomCategory = "random"

	// TickInterval is how often a running countdown loses one second
	TickInterval = time.Second

	// SchemaVersion gates persisted records; on mismatch they are all discarded
	SchemaVersion = "2"
)

// Storage keys
const (
	KeyPlayers  = "aljasus_players"
	KeySettings = "aljasus_settings"
	KeyScores   = "aljasus_scores"
	KeyVersion  = "aljasus_version"
)

// TimerChoices are the discussion lengths the setup screen offers
var TimerChoices = []int{60, 120, 180, 240, 300}
