package game

import (
	"slices"
	"sort"
	"testing"

	"github.com/aaronzipp/aljasus/internal/models"
)

func TestDrawRoundClassic(t *testing.T) {
	cat := testCatalog()
	s := Reduce(stateWith("A", "B", "C", "D", "E", "F", "G"), SetSpyCount{Count: 3})

	for seed := int64(0); seed < 200; seed++ {
		cmd, ok := DrawRound(&s, cat, seeded(seed))
		if !ok {
			t.Fatalf("seed %d: DrawRound failed", seed)
		}
		if len(cmd.Culprits) != 3 {
			t.Fatalf("seed %d: %d spies, want 3", seed, len(cmd.Culprits))
		}
		if !sort.IntsAreSorted(cmd.Culprits) || len(slices.Compact(slices.Clone(cmd.Culprits))) != 3 {
			t.Fatalf("seed %d: culprits not distinct: %v", seed, cmd.Culprits)
		}
		for _, idx := range cmd.Culprits {
			if idx < 0 || idx >= len(s.Players) {
				t.Fatalf("seed %d: culprit %d out of range", seed, idx)
			}
		}
		c, found := cat.Lookup(models.ModeClassic, cmd.Category)
		if !found || !slices.Contains(c.Words, cmd.Word) {
			t.Fatalf("seed %d: word %q not in category %q", seed, cmd.Word, cmd.Category)
		}
		if cmd.Pair != nil {
			t.Fatalf("seed %d: classic round drew a pair", seed)
		}
	}
}

func TestDrawRoundEveryoneCanBeSpy(t *testing.T) {
	s := stateWith("A", "B", "C", "D")
	seen := make(map[int]bool)
	rng := seeded(7)
	for i := 0; i < 500; i++ {
		cmd, _ := DrawRound(&s, testCatalog(), rng)
		seen[cmd.Culprits[0]] = true
	}
	if len(seen) != 4 {
		t.Fatalf("spy seats drawn = %v, want all 4", seen)
	}
}

func TestDrawRoundChameleon(t *testing.T) {
	s := Reduce(stateWith("A", "B", "C", "D", "E", "F"), SetSpyCount{Count: 3})
	s = Reduce(s, SetGameMode{Mode: models.ModeChameleon})

	for seed := int64(0); seed < 100; seed++ {
		cmd, ok := DrawRound(&s, testCatalog(), seeded(seed))
		if !ok {
			t.Fatalf("seed %d: DrawRound failed", seed)
		}
		if len(cmd.Culprits) != 1 {
			t.Fatalf("seed %d: %d imposters, want exactly 1", seed, len(cmd.Culprits))
		}
		if cmd.Pair == nil || cmd.Pair.Distinct != "Tea" || cmd.Word != "" {
			t.Fatalf("seed %d: bad secret %+v", seed, cmd)
		}
	}
}

func TestDrawRoundCategoryFilter(t *testing.T) {
	s := Reduce(stateWith("A", "B", "C"), SetCategoryFilter{Name: "Food"})
	for seed := int64(0); seed < 50; seed++ {
		cmd, _ := DrawRound(&s, testCatalog(), seeded(seed))
		if cmd.Category != "Food" {
			t.Fatalf("seed %d: category %q, want Food", seed, cmd.Category)
		}
	}

	// a filter naming a category the mode lacks falls back to random
	s = Reduce(s, SetCategoryFilter{Name: "Nope"})
	cmd, ok := DrawRound(&s, testCatalog(), seeded(1))
	if !ok || (cmd.Category != "Places" && cmd.Category != "Food") {
		t.Fatalf("fallback draw = %+v, %v", cmd, ok)
	}
}

func TestDrawRoundRefusals(t *testing.T) {
	if _, ok := DrawRound(ptr(stateWith("A", "B")), testCatalog(), seeded(1)); ok {
		t.Fatalf("drew a round for two players")
	}
	if _, ok := DrawRound(ptr(stateWith("A", "B", "C")), &fakeCatalog{}, seeded(1)); ok {
		t.Fatalf("drew a round from an empty catalog")
	}
}

func ptr(s models.State) *models.State { return &s }

func TestRolesAndSecrets(t *testing.T) {
	s := classicRound(stateWith("A", "B", "C"), "Beach", 1)
	for i := range s.Players {
		role := PlayerRole(&s, i)
		secret, ok := PlayerSecret(&s, i)
		if i == 1 {
			if role != models.RoleSpy || ok || secret != "" {
				t.Fatalf("spy seat: role=%s secret=%q ok=%v", role, secret, ok)
			}
			continue
		}
		if role != models.RoleCitizen || !ok || secret != "Beach" {
			t.Fatalf("seat %d: role=%s secret=%q ok=%v", i, role, secret, ok)
		}
	}

	c := Reduce(stateWith("A", "B", "C"), SetGameMode{Mode: models.ModeChameleon})
	c = Reduce(c, StartRound{Category: "Drinks", Pair: &models.WordPair{Distinct: "Tea", Imposter: "Coffee"}, Culprits: []int{2}})
	if secret, _ := PlayerSecret(&c, 2); secret != "Coffee" || PlayerRole(&c, 2) != models.RoleImposter {
		t.Fatalf("imposter card = %q", secret)
	}
	if secret, _ := PlayerSecret(&c, 0); secret != "Tea" || PlayerRole(&c, 0) != models.RoleCitizen {
		t.Fatalf("citizen card = %q", secret)
	}
}

func TestDrawQuestionPair(t *testing.T) {
	s := Reduce(stateWith("A", "B", "C", "D"), SetSubMode{Mode: models.SubModeDirected})
	s = classicRound(s, "Beach", 0)
	if _, ok := DrawQuestionPair(&s, seeded(1)); ok {
		t.Fatalf("pair drawn outside gameplay")
	}
	for s.Screen == models.ScreenDistribution {
		s = Reduce(s, AdvanceDistribution{})
	}

	rng := seeded(3)
	for i := 0; i < 100; i++ {
		cmd, ok := DrawQuestionPair(&s, rng)
		if !ok {
			t.Fatalf("draw %d failed", i)
		}
		p := cmd.Pair
		if p.Asker == p.Target {
			t.Fatalf("draw %d: %s asks themselves", i, p.Asker)
		}
		if h := s.Round.QuestionHistory; len(h) > 0 && h[len(h)-1].Asker == p.Asker {
			t.Fatalf("draw %d: %s asked twice in a row", i, p.Asker)
		}
		s = Reduce(s, cmd)
	}
	if len(s.Round.QuestionHistory) != 100 {
		t.Fatalf("history length = %d", len(s.Round.QuestionHistory))
	}
}

func TestDrawQuestionPairFreeTalk(t *testing.T) {
	s := classicRound(stateWith("A", "B", "C"), "Beach", 0)
	for s.Screen == models.ScreenDistribution {
		s = Reduce(s, AdvanceDistribution{})
	}
	if _, ok := DrawQuestionPair(&s, seeded(1)); ok {
		t.Fatalf("pair drawn in free-talk")
	}
}

func TestWordsForCategory(t *testing.T) {
	s := Reduce(stateWith("A", "B", "C"), StartRound{Category: "Food", Word: "Pizza", Culprits: []int{0}})
	got := WordsForCategory(&s, testCatalog())
	if !slices.Equal(got, []string{"Pizza", "Sushi"}) {
		t.Fatalf("WordsForCategory = %v", got)
	}
	if names := CategoryNames(&s, testCatalog()); !slices.Equal(names, []string{"Places", "Food"}) {
		t.Fatalf("CategoryNames = %v", names)
	}
}
