package game

import (
	"log"
	"math/rand"

	"github.com/aaronzipp/aljasus/internal/models"
)

// CategoryProvider is the read-only category lookup table
type CategoryProvider interface {
	Categories(mode models.GameMode) []models.Category
	Lookup(mode models.GameMode, name string) (models.Category, bool)
}

// DrawRound picks the category, secret and culprits for a new round.
// ok is false when the round cannot start (too few players, no categories).
func DrawRound(s *models.State, provider CategoryProvider, rng *rand.Rand) (StartRound, bool) {
	n := len(s.Players)
	if n < MinPlayers {
		return StartRound{}, false
	}
	mode := s.Settings.GameMode

	cats := provider.Categories(mode)
	if len(cats) == 0 {
		log.Printf("DrawRound: no categories for mode %s", mode)
		return StartRound{}, false
	}
	var cat models.Category
	found := false
	if filter := s.Settings.CategoryFilter; filter != RandomCategory && filter != "" {
		cat, found = provider.Lookup(mode, filter)
		if !found && debug {
			log.Printf("DrawRound: category %q not in %s, picking at random", filter, mode)
		}
	}
	if !found {
		cat = pick(rng, cats)
	}

	cmd := StartRound{Category: cat.Name}
	switch mode {
	case models.ModeChameleon:
		if len(cat.Pairs) == 0 {
			return StartRound{}, false
		}
		pair := pick(rng, cat.Pairs)
		cmd.Pair = &pair
		cmd.Culprits = []int{rng.Intn(n)}
	default:
		if len(cat.Words) == 0 {
			return StartRound{}, false
		}
		cmd.Word = pick(rng, cat.Words)
		cmd.Culprits = sampleIndices(rng, n, max(1, s.Settings.SpyCount))
	}
	return cmd, true
}

// DrawQuestionPair picks the next asker (never whoever asked last) and a
// target other than the asker.
func DrawQuestionPair(s *models.State, rng *rand.Rand) (SetQuestionPair, bool) {
	if !directed(s.Settings) || s.Screen != models.ScreenGameplay || len(s.Players) < 2 {
		return SetQuestionPair{}, false
	}

	eligible := s.Players
	if h := s.Round.QuestionHistory; len(h) > 0 {
		last := h[len(h)-1].Asker
		eligible = Suspects(s, last)
	}
	asker := pick(rng, eligible)
	target := pick(rng, Suspects(s, asker))
	return SetQuestionPair{Pair: models.QuestionPair{Asker: asker, Target: target}}, true
}

// PlayerRole returns the secret role held by the seat at index
func PlayerRole(s *models.State, index int) models.Role {
	if !s.Round.HasCulprit(index) {
		return models.RoleCitizen
	}
	if s.Settings.GameMode == models.ModeChameleon {
		return models.RoleImposter
	}
	return models.RoleSpy
}

// PlayerSecret returns what the seat at index sees on its card. A classic
// spy sees nothing (ok is false).
func PlayerSecret(s *models.State, index int) (string, bool) {
	if index < 0 || index >= len(s.Players) || len(s.Round.Culprits) == 0 {
		return "", false
	}
	if s.Settings.GameMode == models.ModeChameleon {
		if s.Round.Pair == nil {
			return "", false
		}
		if s.Round.HasCulprit(index) {
			return s.Round.Pair.Imposter, true
		}
		return s.Round.Pair.Distinct, true
	}
	if s.Round.HasCulprit(index) {
		return "", false
	}
	return s.Round.Word, true
}

// WordsForCategory lists the words of the round's category (classic only),
// which is what a caught spy chooses a guess from.
func WordsForCategory(s *models.State, provider CategoryProvider) []string {
	if s.Settings.GameMode != models.ModeClassic || s.Round.Category == "" {
		return nil
	}
	cat, ok := provider.Lookup(models.ModeClassic, s.Round.Category)
	if !ok {
		return nil
	}
	return append([]string(nil), cat.Words...)
}

// CategoryNames lists the categories of the active mode
func CategoryNames(s *models.State, provider CategoryProvider) []string {
	cats := provider.Categories(s.Settings.GameMode)
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}
