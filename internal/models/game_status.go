package models

// Screen represents the current phase of a round
type Screen string

const (
	ScreenHome         Screen = "home"
	ScreenDistribution Screen = "distribution"
	ScreenGameplay     Screen = "gameplay"
	ScreenVoting       Screen = "voting"
	ScreenResults      Screen = "results"
)

// Valid reports whether s is a known screen
func (s Screen) Valid() bool {
	switch s {
	case ScreenHome, ScreenDistribution, ScreenGameplay, ScreenVoting, ScreenResults:
		return true
	}
	return false
}

// GameMode represents the type of game being played
type GameMode string

const (
	ModeClassic   GameMode = "classic"   // one shared word, spies see nothing
	ModeChameleon GameMode = "chameleon" // word pair, the imposter holds the decoy
)

// Valid reports whether m is a known game mode
func (m GameMode) Valid() bool {
	return m == ModeClassic || m == ModeChameleon
}

// SubMode controls how discussion is run in classic mode
type SubMode string

const (
	SubModeFreeTalk SubMode = "freeTalk"
	SubModeDirected SubMode = "directed"
)

// Valid reports whether m is a known sub mode
func (m SubMode) Valid() bool {
	return m == SubModeFreeTalk || m == SubModeDirected
}

// Role is the secret role a seat holds for one round
type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleSpy      Role = "spy"
	RoleImposter Role = "imposter"
)

// Result is the outcome tag of a resolved round
type Result string

const (
	ResultNone            Result = ""
	ResultSpyCaught       Result = "spy_caught"
	ResultSpyEscaped      Result = "spy_escaped"
	ResultSpyGuessed      Result = "spy_guessed"
	ResultImposterCaught  Result = "imposter_caught"
	ResultImposterEscaped Result = "imposter_escaped"
)

// Valid reports whether r is one of the closed set of outcomes
func (r Result) Valid() bool {
	switch r {
	case ResultSpyCaught, ResultSpyEscaped, ResultSpyGuessed, ResultImposterCaught, ResultImposterEscaped:
		return true
	}
	return false
}

// Caught reports whether the outcome means a culprit was identified
func (r Result) Caught() bool {
	return r == ResultSpyCaught || r == ResultImposterCaught
}
