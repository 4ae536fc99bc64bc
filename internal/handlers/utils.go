package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
)

// actionArgs carries the parameters of every engine action; each action
// reads only the fields it needs
type actionArgs struct {
	Name     string `json:"name"`
	Index    *int   `json:"index"` // nil when the request named no seat
	Mode     string `json:"mode"`
	Seconds  int    `json:"seconds"`
	Count    int    `json:"count"`
	Score    int    `json:"score"`
	Category string `json:"category"`
	Screen   string `json:"screen"`
	Voter    string `json:"voter"`
	Suspect  string `json:"suspect"`
	Guess    string `json:"guess"`
	Result   string `json:"result"`
}

// decodeArgs reads action parameters from a JSON body or form values
func decodeArgs(r *http.Request) (actionArgs, error) {
	var a actionArgs
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&a)
		if err != nil && !errors.Is(err, io.EOF) {
			return a, fmt.Errorf("decoding body: %w", err)
		}
		return a, nil
	}

	if err := r.ParseForm(); err != nil {
		return a, fmt.Errorf("parsing form: %w", err)
	}
	a.Name = r.FormValue("name")
	a.Mode = r.FormValue("mode")
	a.Category = r.FormValue("category")
	a.Screen = r.FormValue("screen")
	a.Voter = r.FormValue("voter")
	a.Suspect = r.FormValue("suspect")
	a.Guess = r.FormValue("guess")
	a.Result = r.FormValue("result")
	if v := r.FormValue("index"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return a, fmt.Errorf("index: %w", err)
		}
		a.Index = &n
	}
	for field, dst := range map[string]*int{
		"seconds": &a.Seconds,
		"count":   &a.Count,
		"score":   &a.Score,
	} {
		v := r.FormValue(field)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return a, fmt.Errorf("%s: %w", field, err)
		}
		*dst = n
	}
	return a, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}
