package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaronzipp/aljasus/internal/sse"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 25 * time.Second
	wsReadLimit  = 64 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsRequest is an action sent over the socket
type wsRequest struct {
	Action string `json:"action"`
	actionArgs
}

// HandleWebsocket streams the same events as /events and accepts actions
// as {"action": "...", ...args} messages
func (ctx *Context) HandleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("ws upgrade:", err)
		return
	}
	defer conn.Close()

	client, clientID := ctx.Hub.AddClient()
	defer ctx.Hub.RemoveClient(client)
	log.Printf("ws: client %s connected", clientID)

	replies := make(chan sse.Message, 4)
	done := make(chan struct{})
	defer close(done)
	go ctx.wsWriter(conn, client, replies, done)

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: client %s read: %v", clientID, err)
			}
			return
		}
		if _, err := ctx.dispatch(req.Action, req.actionArgs); err != nil {
			select {
			case replies <- sse.Message{Event: sse.EventErrorMessage, Data: err.Error() + ": " + req.Action}:
			default:
			}
		}
	}
}

// wsWriter is the only goroutine writing to conn
func (ctx *Context) wsWriter(conn *websocket.Conn, client <-chan sse.Message, replies <-chan sse.Message, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	write := func(msg sse.Message) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Println("ws write:", err)
			conn.Close()
			return false
		}
		return true
	}

	for _, msg := range ctx.stateMessages(ctx.Engine.State()) {
		if !write(msg) {
			return
		}
	}
	for {
		select {
		case <-done:
			return
		case msg := <-client:
			if !write(msg) {
				return
			}
		case msg := <-replies:
			if !write(msg) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}
		}
	}
}
