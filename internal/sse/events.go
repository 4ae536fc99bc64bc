package sse

// SSE event type constants
const (
	EventState        = "state"         // JSON snapshot of the table
	EventPlayerUpdate = "player-update" // roster fragment
	EventScoreUpdate  = "score-update"  // leaderboard fragment
	EventTimerUpdate  = "timer-update"  // countdown fragment
	EventErrorMessage = "error-message"
)

// ClientBufferSize is how many messages a slow subscriber may fall behind
// before further messages to it are dropped
const ClientBufferSize = 16

// Message is one event pushed to subscribers
type Message struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}
