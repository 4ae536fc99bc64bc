package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/aaronzipp/aljasus/internal/sse"
)

// HandleSSE streams state changes as Server-Sent Events
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	if debug {
		log.Printf("handleSSE called: %s", r.URL.Path)
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	client, clientID := ctx.Hub.AddClient()
	defer ctx.Hub.RemoveClient(client)

	// Send the current table first so the page never waits for a change
	for _, msg := range ctx.stateMessages(ctx.Engine.State()) {
		writeEvent(w, msg)
	}
	flusher.Flush()

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Printf("handleSSE: client %s disconnected", clientID)
			return
		case msg := <-client:
			if debug {
				log.Printf("handleSSE: sending event=%s to client %s", msg.Event, clientID)
			}
			writeEvent(w, msg)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, msg sse.Message) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
}
