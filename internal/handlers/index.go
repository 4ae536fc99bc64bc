package handlers

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/aaronzipp/aljasus/internal/game"
	"github.com/aaronzipp/aljasus/internal/render"
	"github.com/aaronzipp/aljasus/internal/sse"
)

//go:embed templates/*.html
var templateFS embed.FS

// Context holds shared application dependencies
type Context struct {
	Engine     *game.Engine
	Hub        *sse.Hub
	Categories game.CategoryProvider
	Templates  *template.Template
	BaseURL    string // encoded in the share QR code
}

// ParseTemplates parses the embedded page templates
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Routes registers every handler on a new mux
func (ctx *Context) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ctx.HandleIndex)
	mux.HandleFunc("/api/state", ctx.HandleState)
	mux.HandleFunc("/api/action/", ctx.HandleAction)
	mux.HandleFunc("/api/reveal/", ctx.HandleReveal)
	mux.HandleFunc("/api/words", ctx.HandleWords)
	mux.HandleFunc("/events", ctx.HandleSSE)
	mux.HandleFunc("/ws", ctx.HandleWebsocket)
	mux.HandleFunc("/qr", ctx.HandleQR)
	return mux
}

// HandleIndex serves the table page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s := ctx.Engine.State()
	data := struct {
		Screen      string
		RoundNumber int
		PlayerList  template.HTML
		ScoreTable  template.HTML
		Timer       template.HTML
		Result      template.HTML
	}{
		Screen:      string(s.Screen),
		RoundNumber: s.Tournament.RoundNumber,
		PlayerList:  template.HTML(render.PlayerList(s.Players)),
		ScoreTable:  template.HTML(render.ScoreTable(s.Players, s.Tournament)),
		Timer:       template.HTML(render.Timer(s.Round.TimeRemaining, s.Round.TimerRunning)),
		Result:      template.HTML(render.ResultBanner(s.Round.Result)),
	}
	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("HandleIndex: %v", err)
	}
}
