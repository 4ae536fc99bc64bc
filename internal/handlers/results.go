package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaronzipp/aljasus/internal/models"
)

// HandleReveal shows one seat its card during distribution:
// GET /api/reveal/{index}
func (ctx *Context) HandleReveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	index, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/reveal/"), "/"))
	if err != nil {
		http.Error(w, "Invalid seat", http.StatusBadRequest)
		return
	}

	s := ctx.Engine.State()
	if s.Screen != models.ScreenDistribution {
		http.Error(w, "Cards are only shown during distribution", http.StatusConflict)
		return
	}
	if index < 0 || index >= len(s.Players) {
		http.NotFound(w, r)
		return
	}

	secret, hasSecret := ctx.Engine.PlayerSecret(index)
	writeJSON(w, http.StatusOK, struct {
		Player    string      `json:"player"`
		Category  string      `json:"category"`
		Role      models.Role `json:"role"`
		Secret    string      `json:"secret,omitempty"`
		HasSecret bool        `json:"hasSecret"`
	}{
		Player:    s.Players[index],
		Category:  s.Round.Category,
		Role:      ctx.Engine.PlayerRole(index),
		Secret:    secret,
		HasSecret: hasSecret,
	})
}

// HandleWords lists the words a caught spy may guess from
func (ctx *Context) HandleWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	words := ctx.Engine.AllWordsForCategory()
	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, struct {
		Words []string `json:"words"`
	}{words})
}
