package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aaronzipp/aljasus/internal/models"
)

type fakeCatalog struct {
	classic   []models.Category
	chameleon []models.Category
}

func (f *fakeCatalog) Categories(mode models.GameMode) []models.Category {
	if mode == models.ModeChameleon {
		return f.chameleon
	}
	return f.classic
}

func (f *fakeCatalog) Lookup(mode models.GameMode, name string) (models.Category, bool) {
	for _, c := range f.Categories(mode) {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		classic: []models.Category{
			{Name: "Places", Words: []string{"Airport", "Beach", "School"}},
			{Name: "Food", Words: []string{"Pizza", "Sushi"}},
		},
		chameleon: []models.Category{
			{Name: "Drinks", Pairs: []models.WordPair{{Distinct: "Tea", Imposter: "Coffee"}}},
		},
	}
}

// fakeScheduler hands out schedules that only fire when the test says so
type fakeScheduler struct {
	mu        sync.Mutex
	fns       []func()
	active    []bool
	intervals []time.Duration
}

func (f *fakeScheduler) Every(interval time.Duration, fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.fns)
	f.fns = append(f.fns, fn)
	f.active = append(f.active, true)
	f.intervals = append(f.intervals, interval)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.active[i] = false
	}
}

// fire delivers one tick to every live schedule
func (f *fakeScheduler) fire() {
	f.mu.Lock()
	var live []func()
	for i, fn := range f.fns {
		if f.active[i] {
			live = append(live, fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range live {
		fn()
	}
}

// fireAll delivers one tick to every schedule ever created, cancelled or not
func (f *fakeScheduler) fireAll() {
	f.mu.Lock()
	all := append([]func(){}, f.fns...)
	f.mu.Unlock()
	for _, fn := range all {
		fn()
	}
}

func (f *fakeScheduler) liveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.active {
		if a {
			n++
		}
	}
	return n
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func stateWith(players ...string) models.State {
	return NewState(players, DefaultSettings(), nil)
}

// classicRound puts s into distribution with the given spies and word
func classicRound(s models.State, word string, spies ...int) models.State {
	return Reduce(s, StartRound{Category: "Places", Word: word, Culprits: spies})
}

// toVoting walks a started round through distribution into voting
func toVoting(s models.State) models.State {
	for s.Screen == models.ScreenDistribution {
		s = Reduce(s, AdvanceDistribution{})
	}
	return Reduce(s, SetScreen{Screen: models.ScreenVoting})
}

func vote(s models.State, pairs ...string) models.State {
	for i := 0; i+1 < len(pairs); i += 2 {
		s = Reduce(s, CastVote{Voter: pairs[i], Suspect: pairs[i+1]})
	}
	return s
}
