package game

import "github.com/aaronzipp/aljasus/internal/models"

// Command is one action against the state. The set is closed: every
// implementation lives in this file and is handled by Reduce.
type Command interface {
	command()
}

type (
	AddPlayer         struct{ Name string }
	RemovePlayer      struct{ Index int }
	SetGameMode       struct{ Mode models.GameMode }
	SetSubMode        struct{ Mode models.SubMode }
	SetTimerDuration  struct{ Seconds int }
	SetSpyCount       struct{ Count int }
	SetTargetScore    struct{ Score int }
	SetCategoryFilter struct{ Name string }

	// StartRound carries the already drawn category, secret and culprits so
	// the reduction itself stays deterministic.
	StartRound struct {
		Category string
		Word     string
		Pair     *models.WordPair
		Culprits []int
	}

	SetScreen           struct{ Screen models.Screen }
	AdvanceDistribution struct{}

	StartTimer struct{}
	PauseTimer struct{}
	TickTimer  struct{}
	ResetTimer struct{}

	SetQuestionPair struct{ Pair models.QuestionPair }

	CastVote             struct{ Voter, Suspect string }
	CompleteVoting       struct{}
	SetSpyGuess          struct{ Guess string }
	SetGameResult        struct{ Result models.Result }
	CalculateRoundScores struct{ Result models.Result }

	StartNextRound  struct{}
	ResetGame       struct{}
	ResetTournament struct{}
)

func (AddPlayer) command()            {}
func (RemovePlayer) command()         {}
func (SetGameMode) command()          {}
func (SetSubMode) command()           {}
func (SetTimerDuration) command()     {}
func (SetSpyCount) command()          {}
func (SetTargetScore) command()       {}
func (SetCategoryFilter) command()    {}
func (StartRound) command()           {}
func (SetScreen) command()            {}
func (AdvanceDistribution) command()  {}
func (StartTimer) command()           {}
func (PauseTimer) command()           {}
func (TickTimer) command()            {}
func (ResetTimer) command()           {}
func (SetQuestionPair) command()      {}
func (CastVote) command()             {}
func (CompleteVoting) command()       {}
func (SetSpyGuess) command()          {}
func (SetGameResult) command()        {}
func (CalculateRoundScores) command() {}
func (StartNextRound) command()       {}
func (ResetGame) command()            {}
func (ResetTournament) command()      {}
