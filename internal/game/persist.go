package game

import (
	"encoding/json"
	"errors"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/store"
)

// DefaultSettings is the configuration of a fresh install
func DefaultSettings() models.Settings {
	return models.Settings{
		GameMode:       models.ModeClassic,
		SubMode:        models.SubModeFreeTalk,
		TimerDuration:  DefaultTimerDuration,
		SpyCount:       1,
		TargetScore:    DefaultTargetScore,
		CategoryFilter: RandomCategory,
	}
}

// Load performs the startup cold read. Records from another schema version
// are discarded; unreadable records fall back to defaults.
func Load(kv store.KV) (players []string, settings models.Settings, scores map[string]int) {
	settings = DefaultSettings()
	scores = make(map[string]int)

	if !versionMatches(kv) {
		for _, key := range []string{KeyPlayers, KeySettings, KeyScores} {
			if err := kv.Delete(key); err != nil {
				log.Printf("persist: discarding %s: %v", key, err)
			}
		}
		writeJSON(kv, KeyVersion, SchemaVersion)
		return nil, settings, scores
	}

	var stored []string
	if readJSON(kv, KeyPlayers, &stored) {
		for _, p := range stored {
			p = strings.TrimSpace(p)
			if p != "" && !slices.Contains(players, p) {
				players = append(players, p)
			}
		}
	}

	var s models.Settings
	if readJSON(kv, KeySettings, &s) {
		settings = repairSettings(s)
	}

	var sc map[string]int
	if readJSON(kv, KeyScores, &sc) {
		for name, v := range sc {
			if slices.Contains(players, name) {
				scores[name] = max(0, v)
			}
		}
	}
	return players, settings, scores
}

func versionMatches(kv store.KV) bool {
	var v string
	return readJSON(kv, KeyVersion, &v) && v == SchemaVersion
}

// repairSettings replaces each invalid field with its default
func repairSettings(s models.Settings) models.Settings {
	def := DefaultSettings()
	if !s.GameMode.Valid() {
		s.GameMode = def.GameMode
	}
	if !s.SubMode.Valid() {
		s.SubMode = def.SubMode
	}
	if !slices.Contains(TimerChoices, s.TimerDuration) {
		s.TimerDuration = def.TimerDuration
	}
	if s.SpyCount < 1 {
		s.SpyCount = def.SpyCount
	}
	if s.TargetScore <= 0 {
		s.TargetScore = def.TargetScore
	}
	if strings.TrimSpace(s.CategoryFilter) == "" {
		s.CategoryFilter = def.CategoryFilter
	}
	return s
}

// persistChanges writes the records that differ between prev and next
func persistChanges(kv store.KV, prev, next models.State) {
	if !slices.Equal(prev.Players, next.Players) {
		writeJSON(kv, KeyPlayers, next.Players)
	}
	if prev.Settings != next.Settings {
		writeJSON(kv, KeySettings, next.Settings)
	}
	if !maps.Equal(prev.Tournament.Scores, next.Tournament.Scores) {
		writeJSON(kv, KeyScores, next.Tournament.Scores)
	}
}

func readJSON(kv store.KV, key string, v any) bool {
	data, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("persist: reading %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("persist: parsing %s: %v", key, err)
		return false
	}
	return true
}

func writeJSON(kv store.KV, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("persist: encoding %s: %v", key, err)
		return
	}
	if err := kv.Set(key, data); err != nil {
		log.Printf("persist: writing %s: %v", key, err)
		return
	}
	if debug {
		log.Printf("persist: wrote %s (%d bytes)", key, len(data))
	}
}
