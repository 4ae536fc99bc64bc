package game

import (
	"slices"
	"strings"

	"github.com/aaronzipp/aljasus/internal/models"
)

// NewState builds the state for a fresh session from persisted records
func NewState(players []string, settings models.Settings, scores map[string]int) models.State {
	s := models.State{
		Players:  append([]string(nil), players...),
		Settings: settings,
		Screen:   models.ScreenHome,
		Tournament: models.Tournament{
			Scores:      make(map[string]int, len(scores)),
			RoundScores: make(map[string]int),
			RoundNumber: 1,
		},
	}
	for name, score := range scores {
		s.Tournament.Scores[name] = score
	}
	ensureScores(&s)
	s.Round = freshRound(s.Settings)
	return s
}

// Reduce applies cmd to a copy of s and returns it. Invalid input and
// unmet preconditions leave the state unchanged; nothing here fails.
func Reduce(s models.State, cmd Command) models.State {
	next := s.Clone()

	switch c := cmd.(type) {
	case AddPlayer:
		addPlayer(&next, c.Name)
	case RemovePlayer:
		removePlayer(&next, c.Index)

	case SetGameMode:
		if next.Screen == models.ScreenHome && c.Mode.Valid() {
			next.Settings.GameMode = c.Mode
		}
	case SetSubMode:
		if next.Screen == models.ScreenHome && c.Mode.Valid() {
			next.Settings.SubMode = c.Mode
		}
	case SetTimerDuration:
		if next.Screen == models.ScreenHome && slices.Contains(TimerChoices, c.Seconds) {
			next.Settings.TimerDuration = c.Seconds
			next.Round.TimeRemaining = c.Seconds
		}
	case SetSpyCount:
		if next.Screen == models.ScreenHome {
			next.Settings.SpyCount = clampSpyCount(c.Count, len(next.Players))
		}
	case SetTargetScore:
		if next.Screen == models.ScreenHome && c.Score > 0 {
			next.Settings.TargetScore = c.Score
		}
	case SetCategoryFilter:
		if next.Screen == models.ScreenHome {
			name := strings.TrimSpace(c.Name)
			if name == "" {
				name = RandomCategory
			}
			next.Settings.CategoryFilter = name
		}

	case StartRound:
		startRound(&next, c)
	case SetScreen:
		setScreen(&next, c.Screen)
	case AdvanceDistribution:
		if next.Screen != models.ScreenDistribution || len(next.Players) == 0 {
			break
		}
		if next.Round.CurrentPlayerIndex < len(next.Players)-1 {
			next.Round.CurrentPlayerIndex++
		} else {
			next.Screen = models.ScreenGameplay
		}

	case StartTimer:
		if next.Screen == models.ScreenGameplay && next.Round.TimeRemaining > 0 {
			next.Round.TimerRunning = true
		}
	case PauseTimer:
		next.Round.TimerRunning = false
	case TickTimer:
		if next.Screen != models.ScreenGameplay || !next.Round.TimerRunning {
			break
		}
		next.Round.TimeRemaining = max(0, next.Round.TimeRemaining-1)
		if next.Round.TimeRemaining == 0 {
			setScreen(&next, models.ScreenVoting)
		}
	case ResetTimer:
		next.Round.TimeRemaining = next.Settings.TimerDuration
		next.Round.TimerRunning = false

	case SetQuestionPair:
		setQuestionPair(&next, c.Pair)

	case CastVote:
		castVote(&next, c.Voter, c.Suspect)
	case CompleteVoting:
		if next.Screen == models.ScreenVoting {
			next.Round.VotingComplete = true
			next.Screen = models.ScreenResults
		}
	case SetSpyGuess:
		g := c.Guess
		next.Round.SpyGuess = &g
	case SetGameResult:
		if c.Result.Valid() {
			next.Round.Result = c.Result
		}
	case CalculateRoundScores:
		calculateRoundScores(&next, c.Result)

	case StartNextRound:
		next.Round = freshRound(next.Settings)
		next.Tournament.RoundNumber++
		next.Tournament.RoundScores = make(map[string]int)
		next.Screen = models.ScreenHome
	case ResetGame:
		next.Round = freshRound(next.Settings)
		next.Tournament.RoundScores = make(map[string]int)
		next.Screen = models.ScreenHome
	case ResetTournament:
		resetTournament(&next)
	}

	return next
}

func freshRound(settings models.Settings) models.Round {
	return models.Round{TimeRemaining: settings.TimerDuration}
}

// ensureScores gives every roster member a score entry without touching existing totals
func ensureScores(s *models.State) {
	for _, p := range s.Players {
		if _, ok := s.Tournament.Scores[p]; !ok {
			s.Tournament.Scores[p] = 0
		}
	}
}

func addPlayer(s *models.State, name string) {
	name = strings.TrimSpace(name)
	if s.Screen != models.ScreenHome || name == "" || slices.Contains(s.Players, name) {
		return
	}
	s.Players = append(s.Players, name)
	ensureScores(s)
}

func removePlayer(s *models.State, index int) {
	if s.Screen != models.ScreenHome || index < 0 || index >= len(s.Players) {
		return
	}
	name := s.Players[index]
	s.Players = slices.Delete(s.Players, index, index+1)
	delete(s.Tournament.Scores, name)
	delete(s.Tournament.RoundScores, name)
	if s.Tournament.Winner == name {
		s.Tournament.Winner = ""
	}
}

func clampSpyCount(count, players int) int {
	upper := max(1, players/2)
	return min(max(count, 1), upper)
}

func startRound(s *models.State, c StartRound) {
	n := len(s.Players)
	if n < MinPlayers || c.Category == "" || len(c.Culprits) == 0 {
		return
	}
	// a finished round goes back to home through StartNextRound first
	if s.Screen != models.ScreenHome {
		return
	}
	switch s.Settings.GameMode {
	case models.ModeClassic:
		if c.Word == "" || len(c.Culprits) > n {
			return
		}
	case models.ModeChameleon:
		if c.Pair == nil || len(c.Culprits) != 1 {
			return
		}
	}
	seen := make(map[int]bool, len(c.Culprits))
	for _, idx := range c.Culprits {
		if idx < 0 || idx >= n || seen[idx] {
			return
		}
		seen[idx] = true
	}

	r := freshRound(s.Settings)
	r.Category = c.Category
	r.Culprits = append([]int(nil), c.Culprits...)
	if s.Settings.GameMode == models.ModeChameleon {
		p := *c.Pair
		r.Pair = &p
	} else {
		r.Word = c.Word
	}
	s.Round = r
	s.Tournament.RoundScores = make(map[string]int)
	ensureScores(s)
	s.Screen = models.ScreenDistribution
}

func setScreen(s *models.State, screen models.Screen) {
	if !screen.Valid() {
		return
	}
	if s.Screen == models.ScreenGameplay && screen != models.ScreenGameplay {
		s.Round.TimerRunning = false
	}
	if s.Screen != models.ScreenVoting && screen == models.ScreenVoting {
		s.Round.VoterIndex = 0
	}
	s.Screen = screen
}

func setQuestionPair(s *models.State, pair models.QuestionPair) {
	if s.Screen != models.ScreenGameplay || !directed(s.Settings) {
		return
	}
	if pair.Asker == pair.Target || s.PlayerIndex(pair.Asker) < 0 || s.PlayerIndex(pair.Target) < 0 {
		return
	}
	s.Round.CurrentPair = &pair
	s.Round.QuestionHistory = append(s.Round.QuestionHistory, pair)
}

func directed(settings models.Settings) bool {
	return settings.GameMode == models.ModeClassic && settings.SubMode == models.SubModeDirected
}

func castVote(s *models.State, voter, suspect string) {
	if s.Screen != models.ScreenVoting || voter == suspect {
		return
	}
	if s.PlayerIndex(voter) < 0 || s.PlayerIndex(suspect) < 0 {
		return
	}

	replaced := false
	for i := range s.Round.Votes {
		if s.Round.Votes[i].Voter == voter {
			s.Round.Votes[i].Suspect = suspect
			replaced = true
			break
		}
	}
	if !replaced {
		s.Round.Votes = append(s.Round.Votes, models.Vote{Voter: voter, Suspect: suspect})
	}

	cursor := s.Round.VoterIndex
	if cursor < len(s.Players) && s.Players[cursor] == voter {
		s.Round.VoterIndex++
	}
}

func resetTournament(s *models.State) {
	scores := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		scores[p] = 0
	}
	s.Tournament = models.Tournament{
		Scores:      scores,
		RoundScores: make(map[string]int),
		RoundNumber: 1,
	}
	s.Round = freshRound(s.Settings)
	s.Screen = models.ScreenHome
}
