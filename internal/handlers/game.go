package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aaronzipp/aljasus/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

var (
	errUnknownAction = errors.New("unknown action")
	errMissingIndex  = errors.New("index is required")
)

// actionOutcome reports what resolve and guess actions decided
type actionOutcome struct {
	Result     models.Result `json:"result,omitempty"`
	OfferGuess bool          `json:"offerGuess,omitempty"`
}

// HandleAction runs one engine action: POST /api/action/{name}
func (ctx *Context) HandleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/action/"), "/")
	if action == "" || strings.Contains(action, "/") {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	args, err := decodeArgs(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := ctx.dispatch(action, args)
	if errors.Is(err, errUnknownAction) {
		http.Error(w, "Unknown action", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		actionOutcome
		State Snapshot `json:"state"`
	}{out, ctx.snapshot(ctx.Engine.State())})
}

// dispatch maps an action name onto the engine. Only unknown actions and
// missing required arguments are errors; input the engine rejects leaves
// its state unchanged and shows in the returned snapshot.
func (ctx *Context) dispatch(action string, a actionArgs) (actionOutcome, error) {
	if debug {
		log.Printf("dispatch: %s %+v", action, a)
	}
	e := ctx.Engine
	var out actionOutcome

	switch action {
	case "addPlayer":
		e.AddPlayer(a.Name)
	case "removePlayer":
		if a.Index == nil {
			return out, errMissingIndex
		}
		e.RemovePlayer(*a.Index)

	case "setGameMode":
		e.SetGameMode(models.GameMode(a.Mode))
	case "setSubMode":
		e.SetSubMode(models.SubMode(a.Mode))
	case "setTimerDuration":
		e.SetTimerDuration(a.Seconds)
	case "setSpyCount":
		e.SetSpyCount(a.Count)
	case "setTargetScore":
		e.SetTargetScore(a.Score)
	case "setSelectedCategoryFilter":
		e.SetSelectedCategoryFilter(a.Category)

	case "startRound":
		e.StartRound()
	case "setScreen":
		e.SetScreen(models.Screen(a.Screen))
	case "advanceDistributionCursor":
		e.AdvanceDistributionCursor()
	case "callMeeting":
		e.CallMeeting()
	case "startTimer":
		e.StartTimer()
	case "pauseTimer":
		e.PauseTimer()
	case "resetTimer":
		e.ResetTimer()
	case "generateNewQuestionPair":
		e.GenerateNewQuestionPair()

	case "castVote":
		e.CastVote(a.Voter, a.Suspect)
	case "castCurrentVote":
		e.CastCurrentVote(a.Suspect)
	case "completeVoting":
		e.CompleteVoting()
	case "setSpyGuess":
		e.SetSpyGuess(a.Guess)
	case "setGameResult":
		e.SetGameResult(models.Result(a.Result))
	case "calculateRoundScores":
		e.CalculateRoundScores(models.Result(a.Result))
	case "resolveRound":
		out.Result, out.OfferGuess = e.ResolveRound()
	case "submitSpyGuess":
		out.Result = e.SubmitSpyGuess(a.Guess)
	case "skipSpyGuess":
		out.Result = e.SkipSpyGuess()

	case "startNextRound":
		e.StartNextRound()
	case "resetGame":
		e.ResetGame()
	case "resetTournament":
		e.ResetTournament()

	default:
		return out, errUnknownAction
	}
	return out, nil
}
