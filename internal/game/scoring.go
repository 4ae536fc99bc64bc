package game

import "github.com/aaronzipp/aljasus/internal/models"

// calculateRoundScores awards this round's points, adds them to the
// cumulative totals and checks for a tournament winner. It applies at most
// once per round.
func calculateRoundScores(s *models.State, result models.Result) {
	if !result.Valid() || s.Round.Scored || len(s.Round.Culprits) == 0 {
		return
	}

	round := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		round[p] = 0
	}

	switch result {
	case models.ResultSpyCaught, models.ResultImposterCaught:
		for _, v := range s.Round.Votes {
			if _, ok := round[v.Voter]; ok && isCulprit(s, v.Suspect) {
				round[v.Voter] += Award
			}
		}
	case models.ResultSpyGuessed:
		// only the spy who was caught and named the word
		if guesser := CountVotes(s).MostVoted; isCulprit(s, guesser) {
			round[guesser] += Award
		}
	case models.ResultSpyEscaped, models.ResultImposterEscaped:
		for _, idx := range s.Round.Culprits {
			if idx < len(s.Players) {
				round[s.Players[idx]] += Award
			}
		}
	}

	for p, pts := range round {
		s.Tournament.Scores[p] += pts
	}
	s.Tournament.RoundScores = round
	s.Tournament.Winner = pickWinner(s)
	s.Round.Result = result
	s.Round.Scored = true
}

// pickWinner returns the highest scorer at or above the target. Equal
// scores go to the player earliest in the roster.
func pickWinner(s *models.State) string {
	winner, best := "", -1
	for _, p := range s.Players {
		score := s.Tournament.Scores[p]
		if score >= s.Settings.TargetScore && score > best {
			winner, best = p, score
		}
	}
	return winner
}
