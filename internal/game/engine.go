package game

import (
	"log"
	"math/rand"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Options carries the optional collaborators of an Engine
type Options struct {
	Scheduler Scheduler  // defaults to TickerScheduler
	Rand      *rand.Rand // defaults to NewRand()
	OnChange  func(models.State)
}

// Engine owns the state of one app session. Every action is reduced one at
// a time under a single lock; persisted records are written right after the
// transition that changed them.
type Engine struct {
	ID string

	mu         sync.Mutex
	state      models.State
	kv         store.KV
	categories CategoryProvider
	scheduler  Scheduler
	rng        *rand.Rand
	onChange   func(models.State)

	cancelTick func()
	tickGen    uint64
	closed     bool
}

// New loads persisted roster, settings and scores from kv and returns a
// session positioned on the home screen.
func New(kv store.KV, categories CategoryProvider, opts Options) *Engine {
	players, settings, scores := Load(kv)
	e := &Engine{
		ID:         uuid.NewString(),
		state:      NewState(players, settings, scores),
		kv:         kv,
		categories: categories,
		scheduler:  opts.Scheduler,
		rng:        opts.Rand,
		onChange:   opts.OnChange,
	}
	if e.scheduler == nil {
		e.scheduler = TickerScheduler{}
	}
	if e.rng == nil {
		e.rng = NewRand()
	}
	log.Printf("engine %s: loaded %d players, mode=%s", e.ID, len(players), settings.GameMode)
	return e
}

// SetOnChange replaces the state-change callback. It is invoked with a
// copy of the new state after every action that changed something.
func (e *Engine) SetOnChange(fn func(models.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Close stops the countdown; no tick is applied after Close returns
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.syncTimer()
}

// State returns a copy of the current state
func (e *Engine) State() models.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Dispatch applies a single command
func (e *Engine) Dispatch(cmd Command) {
	e.mutate(func() bool {
		e.apply(cmd)
		return true
	})
}

// mutate runs fn under the lock and, if it reports a change, publishes
func (e *Engine) mutate(fn func() bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if fn() && e.onChange != nil {
		e.onChange(e.state.Clone())
	}
}

func (e *Engine) apply(cmd Command) {
	prev := e.state
	e.state = Reduce(prev, cmd)
	if debug {
		log.Printf("engine %s: %T screen=%s->%s", e.ID, cmd, prev.Screen, e.state.Screen)
	}
	persistChanges(e.kv, prev, e.state)
	e.syncTimer()
}

// syncTimer keeps exactly one tick source alive while the countdown runs
// in gameplay, and none otherwise.
func (e *Engine) syncTimer() {
	want := !e.closed && e.state.Screen == models.ScreenGameplay && e.state.Round.TimerRunning
	switch {
	case want && e.cancelTick == nil:
		e.tickGen++
		gen := e.tickGen
		e.cancelTick = e.scheduler.Every(TickInterval, func() { e.tick(gen) })
	case !want && e.cancelTick != nil:
		e.cancelTick()
		e.cancelTick = nil
		e.tickGen++
	}
}

func (e *Engine) tick(gen uint64) {
	e.mutate(func() bool {
		// a tick from a cancelled schedule may still arrive
		if gen != e.tickGen || e.cancelTick == nil {
			return false
		}
		e.apply(TickTimer{})
		return true
	})
}

// Roster

func (e *Engine) AddPlayer(name string)  { e.Dispatch(AddPlayer{Name: name}) }
func (e *Engine) RemovePlayer(index int) { e.Dispatch(RemovePlayer{Index: index}) }

// CanStartRound reports whether the roster is large enough
func (e *Engine) CanStartRound() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.state.Players) >= MinPlayers
}

// Settings

func (e *Engine) SetGameMode(mode models.GameMode)   { e.Dispatch(SetGameMode{Mode: mode}) }
func (e *Engine) SetSubMode(mode models.SubMode)     { e.Dispatch(SetSubMode{Mode: mode}) }
func (e *Engine) SetTimerDuration(seconds int)       { e.Dispatch(SetTimerDuration{Seconds: seconds}) }
func (e *Engine) SetSpyCount(count int)              { e.Dispatch(SetSpyCount{Count: count}) }
func (e *Engine) SetTargetScore(score int)           { e.Dispatch(SetTargetScore{Score: score}) }
func (e *Engine) SetSelectedCategoryFilter(n string) { e.Dispatch(SetCategoryFilter{Name: n}) }

// Round setup and phases

// StartRound draws category, secret and roles and moves to distribution.
// It is a no-op with fewer than MinPlayers players.
func (e *Engine) StartRound() {
	e.mutate(func() bool {
		cmd, ok := DrawRound(&e.state, e.categories, e.rng)
		if !ok {
			return false
		}
		e.apply(cmd)
		return true
	})
}

func (e *Engine) SetScreen(screen models.Screen) { e.Dispatch(SetScreen{Screen: screen}) }
func (e *Engine) AdvanceDistributionCursor()     { e.Dispatch(AdvanceDistribution{}) }

// CallMeeting is the emergency meeting: straight to voting, timer paused
func (e *Engine) CallMeeting() {
	e.mutate(func() bool {
		if e.state.Screen != models.ScreenGameplay {
			return false
		}
		e.apply(SetScreen{Screen: models.ScreenVoting})
		return true
	})
}

func (e *Engine) StartTimer() { e.Dispatch(StartTimer{}) }
func (e *Engine) PauseTimer() { e.Dispatch(PauseTimer{}) }
func (e *Engine) ResetTimer() { e.Dispatch(ResetTimer{}) }

// GenerateNewQuestionPair rotates the asker/target pair (directed sub-mode)
func (e *Engine) GenerateNewQuestionPair() {
	e.mutate(func() bool {
		cmd, ok := DrawQuestionPair(&e.state, e.rng)
		if !ok {
			return false
		}
		e.apply(cmd)
		return true
	})
}

// Voting and results

func (e *Engine) CastVote(voter, suspect string) {
	e.Dispatch(CastVote{Voter: voter, Suspect: suspect})
}
func (e *Engine) CompleteVoting()               { e.Dispatch(CompleteVoting{}) }
func (e *Engine) SetSpyGuess(guess string)      { e.Dispatch(SetSpyGuess{Guess: guess}) }
func (e *Engine) SetGameResult(r models.Result) { e.Dispatch(SetGameResult{Result: r}) }
func (e *Engine) CalculateRoundScores(r models.Result) {
	e.Dispatch(CalculateRoundScores{Result: r})
}

// CastCurrentVote records suspect for the voter under the voting cursor and
// completes voting once the last voter has voted.
func (e *Engine) CastCurrentVote(suspect string) {
	e.mutate(func() bool {
		voter, ok := CurrentVoter(&e.state)
		if !ok {
			return false
		}
		e.apply(CastVote{Voter: voter, Suspect: suspect})
		if e.state.Round.VoterIndex >= len(e.state.Players) {
			e.apply(CompleteVoting{})
		}
		return true
	})
}

// ResolveRound settles the round on the results screen. When a classic spy
// was caught it only reports offerGuess; the round is then finished by
// SubmitSpyGuess or SkipSpyGuess.
func (e *Engine) ResolveRound() (result models.Result, offerGuess bool) {
	e.mutate(func() bool {
		if e.state.Screen != models.ScreenResults || e.state.Round.Scored {
			result = e.state.Round.Result
			return false
		}
		result, offerGuess = ResolveOutcome(&e.state)
		if offerGuess {
			return false
		}
		e.apply(SetGameResult{Result: result})
		e.apply(CalculateRoundScores{Result: result})
		return true
	})
	return result, offerGuess
}

// SubmitSpyGuess lets a caught spy name the word once
func (e *Engine) SubmitSpyGuess(guess string) models.Result {
	return e.finishGuess(&guess)
}

// SkipSpyGuess declines the guess; the round resolves as spy_caught
func (e *Engine) SkipSpyGuess() models.Result {
	return e.finishGuess(nil)
}

func (e *Engine) finishGuess(guess *string) (result models.Result) {
	e.mutate(func() bool {
		if e.state.Screen != models.ScreenResults || e.state.Round.Scored {
			result = e.state.Round.Result
			return false
		}
		if _, offer := ResolveOutcome(&e.state); !offer {
			return false
		}
		result = models.ResultSpyCaught
		if guess != nil {
			e.apply(SetSpyGuess{Guess: *guess})
			result = ResultForGuess(&e.state, *guess)
		}
		e.apply(SetGameResult{Result: result})
		e.apply(CalculateRoundScores{Result: result})
		return true
	})
	return result
}

func (e *Engine) StartNextRound()  { e.Dispatch(StartNextRound{}) }
func (e *Engine) ResetGame()       { e.Dispatch(ResetGame{}) }
func (e *Engine) ResetTournament() { e.Dispatch(ResetTournament{}) }

// Queries

// PlayerRole returns the role of the seat at index
func (e *Engine) PlayerRole(index int) models.Role {
	e.mu.Lock()
	defer e.mu.Unlock()
	return PlayerRole(&e.state, index)
}

// PlayerSecret returns the card text of the seat at index
func (e *Engine) PlayerSecret(index int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return PlayerSecret(&e.state, index)
}

// MostVotedPlayer returns the most accused player and their vote count
func (e *Engine) MostVotedPlayer() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := CountVotes(&e.state)
	return r.MostVoted, r.Votes
}

// Tally returns the full vote count
func (e *Engine) Tally() VoteResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CountVotes(&e.state)
}

// CurrentVoter returns the player whose turn it is to vote
func (e *Engine) CurrentVoter() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CurrentVoter(&e.state)
}

// AllWordsForCategory lists the words a caught spy may guess from
func (e *Engine) AllWordsForCategory() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return WordsForCategory(&e.state, e.categories)
}

// AllCategoryNames lists the categories of the active mode
func (e *Engine) AllCategoryNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CategoryNames(&e.state, e.categories)
}
