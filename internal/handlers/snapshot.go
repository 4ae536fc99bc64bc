package handlers

import (
	"net/http"

	"github.com/aaronzipp/aljasus/internal/game"
	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/vip"
)

// PlayerView is one roster row as the presentation sees it
type PlayerView struct {
	Name       string `json:"name"`
	Flair      string `json:"flair,omitempty"`
	Score      int    `json:"score"`
	RoundScore int    `json:"roundScore"`
}

// Snapshot is the public view of the table. Roles, secrets and individual
// votes stay out of it until the results screen.
type Snapshot struct {
	SessionID     string          `json:"sessionId"`
	Screen        models.Screen   `json:"screen"`
	Players       []PlayerView    `json:"players"`
	Settings      models.Settings `json:"settings"`
	CanStartRound bool            `json:"canStartRound"`
	Categories    []string        `json:"categories"`
	TimerChoices  []int           `json:"timerChoices"`
	RoundNumber   int             `json:"roundNumber"`
	Winner        string          `json:"gameWinner,omitempty"`

	Category           string               `json:"category,omitempty"`
	CurrentPlayerIndex int                  `json:"currentPlayerIndex"`
	TimeRemaining      int                  `json:"timeRemaining"`
	TimerRunning       bool                 `json:"timerRunning"`
	CurrentPair        *models.QuestionPair `json:"currentPair,omitempty"`
	CurrentVoter       string               `json:"currentVoter,omitempty"`
	Suspects           []string             `json:"suspects,omitempty"`
	VotesCast          int                  `json:"votesCast"`

	Reveal *RoundReveal `json:"reveal,omitempty"`
}

// RoundReveal is what the results screen shows
type RoundReveal struct {
	Culprits       []string         `json:"culprits"`
	Word           string           `json:"word,omitempty"`
	Pair           *models.WordPair `json:"pair,omitempty"`
	Votes          []models.Vote    `json:"votes"`
	Tally          map[string]int   `json:"tally"`
	VotedCorrectly map[string]bool  `json:"votedCorrectly"` // voter -> named a culprit
	MostVoted      string           `json:"mostVoted,omitempty"`
	MostVotedCount int              `json:"mostVotedCount"`
	IsTie          bool             `json:"isTie"`
	Result         models.Result    `json:"result,omitempty"`
	OfferGuess     bool             `json:"offerGuess"`
	SpyGuess       *string          `json:"spyGuess,omitempty"`
}

// HandleState returns the current snapshot
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, ctx.snapshot(ctx.Engine.State()))
}

// snapshot builds the public view of s. It only reads s, so it is safe
// to call from the engine's change callback.
func (ctx *Context) snapshot(s models.State) Snapshot {
	snap := Snapshot{
		SessionID:          ctx.Engine.ID,
		Screen:             s.Screen,
		Players:            make([]PlayerView, 0, len(s.Players)),
		Settings:           s.Settings,
		CanStartRound:      len(s.Players) >= game.MinPlayers,
		Categories:         game.CategoryNames(&s, ctx.Categories),
		TimerChoices:       game.TimerChoices,
		RoundNumber:        s.Tournament.RoundNumber,
		Winner:             s.Tournament.Winner,
		CurrentPlayerIndex: s.Round.CurrentPlayerIndex,
		TimeRemaining:      s.Round.TimeRemaining,
		TimerRunning:       s.Round.TimerRunning,
		CurrentPair:        s.Round.CurrentPair,
		VotesCast:          len(s.Round.Votes),
	}
	if s.Screen != models.ScreenHome {
		snap.Category = s.Round.Category
	}
	for _, p := range s.Players {
		f, _ := vip.Lookup(p)
		snap.Players = append(snap.Players, PlayerView{
			Name:       p,
			Flair:      string(f),
			Score:      s.Tournament.Scores[p],
			RoundScore: s.Tournament.RoundScores[p],
		})
	}
	if voter, ok := game.CurrentVoter(&s); ok {
		snap.CurrentVoter = voter
		snap.Suspects = game.Suspects(&s, voter)
	}
	if s.Screen == models.ScreenResults {
		snap.Reveal = reveal(&s)
	}
	return snap
}

func reveal(s *models.State) *RoundReveal {
	tally := game.CountVotes(s)
	r := &RoundReveal{
		Word:           s.Round.Word,
		Pair:           s.Round.Pair,
		Votes:          s.Round.Votes,
		Tally:          tally.VoteCount,
		VotedCorrectly: tally.VotedCorrectly,
		MostVoted:      tally.MostVoted,
		MostVotedCount: tally.Votes,
		IsTie:          tally.IsTie,
		Result:         s.Round.Result,
		SpyGuess:       s.Round.SpyGuess,
	}
	for _, idx := range s.Round.Culprits {
		if idx < len(s.Players) {
			r.Culprits = append(r.Culprits, s.Players[idx])
		}
	}
	if !s.Round.Scored {
		_, r.OfferGuess = game.ResolveOutcome(s)
	}
	return r
}
