package handlers

import (
	"encoding/json"
	"log"

	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/render"
	"github.com/aaronzipp/aljasus/internal/sse"
)

// Publish pushes a changed state to every subscriber. It is wired as the
// engine's change callback, so it must neither block nor call back into
// the engine.
func (ctx *Context) Publish(s models.State) {
	for _, msg := range ctx.stateMessages(s) {
		ctx.Hub.Broadcast(msg.Event, msg.Data)
	}
}

// stateMessages renders s as the events a fresh subscriber needs
func (ctx *Context) stateMessages(s models.State) []sse.Message {
	data, err := json.Marshal(ctx.snapshot(s))
	if err != nil {
		log.Printf("stateMessages: %v", err)
		return nil
	}
	return []sse.Message{
		{Event: sse.EventState, Data: string(data)},
		{Event: sse.EventPlayerUpdate, Data: render.PlayerList(s.Players)},
		{Event: sse.EventScoreUpdate, Data: render.ScoreTable(s.Players, s.Tournament)},
		{Event: sse.EventTimerUpdate, Data: render.Timer(s.Round.TimeRemaining, s.Round.TimerRunning)},
	}
}
