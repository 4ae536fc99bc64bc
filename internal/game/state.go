package game

import (
	"github.com/aaronzipp/aljasus/internal/models"
)

// VoteResult represents the outcome of vote counting
type VoteResult struct {
	MostVoted      string
	Votes          int // accusations against MostVoted
	IsTie          bool
	VoteCount      map[string]int
	VotedCorrectly map[string]bool
}

// CountVotes tallies accusations. The most-voted player has the highest
// count; on equal counts the player earliest in the roster wins.
func CountVotes(s *models.State) VoteResult {
	voteCount := make(map[string]int)
	for _, v := range s.Round.Votes {
		voteCount[v.Suspect]++
	}

	result := VoteResult{VoteCount: voteCount}
	tied := 0
	for _, p := range s.Players {
		count := voteCount[p]
		switch {
		case count == 0:
		case count > result.Votes:
			result.MostVoted = p
			result.Votes = count
			tied = 1
		case count == result.Votes:
			tied++
		}
	}
	result.IsTie = tied > 1

	// Build voted correctly map
	result.VotedCorrectly = make(map[string]bool, len(s.Round.Votes))
	for _, v := range s.Round.Votes {
		result.VotedCorrectly[v.Voter] = isCulprit(s, v.Suspect)
	}

	return result
}

// ResolveOutcome determines the result from the tally. offerGuess is true
// when a classic spy was caught and gets one chance to name the word; the
// final result then comes from ResultForGuess.
func ResolveOutcome(s *models.State) (result models.Result, offerGuess bool) {
	caught := isCulprit(s, CountVotes(s).MostVoted)
	if s.Settings.GameMode == models.ModeChameleon {
		if caught {
			return models.ResultImposterCaught, false
		}
		return models.ResultImposterEscaped, false
	}
	if caught {
		return models.ResultSpyCaught, true
	}
	return models.ResultSpyEscaped, false
}

// ResultForGuess resolves a caught spy's guess at the secret word
func ResultForGuess(s *models.State, guess string) models.Result {
	if s.Settings.GameMode == models.ModeClassic && s.Round.Word != "" && guess == s.Round.Word {
		return models.ResultSpyGuessed
	}
	return models.ResultSpyCaught
}

// CurrentVoter returns the player under the voting cursor
func CurrentVoter(s *models.State) (string, bool) {
	i := s.Round.VoterIndex
	if s.Screen != models.ScreenVoting || i < 0 || i >= len(s.Players) {
		return "", false
	}
	return s.Players[i], true
}

// Suspects lists who voter may accuse (everyone but themselves)
func Suspects(s *models.State, voter string) []string {
	out := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		if p != voter {
			out = append(out, p)
		}
	}
	return out
}

func isCulprit(s *models.State, name string) bool {
	idx := s.PlayerIndex(name)
	return idx >= 0 && s.Round.HasCulprit(idx)
}
