package render

import (
	htmlpkg "html"
	"sort"
	"strconv"
	"strings"

	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/vip"
)

// PlayerList generates HTML for the roster, in seat order, with VIP flair
func PlayerList(players []string) string {
	var b strings.Builder
	b.WriteString(`<h2>Players (`)
	b.WriteString(strconv.Itoa(len(players)))
	b.WriteString(`)</h2><ul class="player-list">`)
	for i, p := range players {
		b.WriteString(`<li class="player-item" data-index="`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`"><span class="player-name">`)
		b.WriteString(htmlpkg.EscapeString(p))
		b.WriteString(`</span>`)
		b.WriteString(FlairBadge(p))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// FlairBadge returns the VIP marker for name, or "" for everyone else
func FlairBadge(name string) string {
	f, ok := vip.Lookup(name)
	if !ok {
		return ""
	}
	lower := strings.ToLower(string(f))
	return `<span class="flair flair-` + lower + `" title="` + lower + `">` + flairIcon(f) + `</span>`
}

func flairIcon(f vip.Flair) string {
	switch f {
	case vip.King:
		return "👑"
	case vip.Queen:
		return "💎"
	}
	return ""
}

// ScoreTable generates HTML for the leaderboard
func ScoreTable(players []string, t models.Tournament) string {
	if len(players) == 0 {
		return ""
	}

	ranked := Leaderboard(players, t.Scores)

	var b strings.Builder
	b.WriteString(`<h2>Scores</h2><table class="score-table" aria-label="Scoreboard sorted by points"><thead><tr><th>Player</th><th aria-sort="descending" title="Sorted by points (desc)">Points ↓</th><th>This round</th></tr></thead><tbody>`)
	for _, p := range ranked {
		row := `<tr>`
		if p == t.Winner {
			row = `<tr class="winner">`
		}
		b.WriteString(row)
		b.WriteString(`<td class="score-player">`)
		b.WriteString(htmlpkg.EscapeString(p))
		b.WriteString(FlairBadge(p))
		b.WriteString(`</td><td><span class="badge-pill badge-win">`)
		b.WriteString(strconv.Itoa(t.Scores[p]))
		b.WriteString(`</span></td><td><span class="badge-pill badge-round">+`)
		b.WriteString(strconv.Itoa(t.RoundScores[p]))
		b.WriteString(`</span></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// Leaderboard orders players by score descending; equal scores keep seat order
func Leaderboard(players []string, scores map[string]int) []string {
	out := append([]string(nil), players...)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// Timer generates HTML for the countdown
func Timer(seconds int, running bool) string {
	var b strings.Builder
	b.WriteString(`<div class="timer`)
	if running {
		b.WriteString(` timer-running`)
	}
	if seconds <= 10 {
		b.WriteString(` timer-low`)
	}
	b.WriteString(`">`)
	b.WriteString(FormatDuration(seconds))
	b.WriteString(`</div>`)
	return b.String()
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	s := seconds % 60
	pad := ""
	if s < 10 {
		pad = "0"
	}
	return strconv.Itoa(seconds/60) + ":" + pad + strconv.Itoa(s)
}

// VoteCount generates HTML for vote count display
func VoteCount(count, total int) string {
	var b strings.Builder
	b.WriteString(`<p class="ready-count">`)
	b.WriteString(strconv.Itoa(count))
	b.WriteString(`/`)
	b.WriteString(strconv.Itoa(total))
	b.WriteString(` players have voted</p>`)
	return b.String()
}

var resultLines = map[models.Result]string{
	models.ResultSpyCaught:       "The spy was caught!",
	models.ResultSpyEscaped:      "The spy got away.",
	models.ResultSpyGuessed:      "Caught, but the spy guessed the word!",
	models.ResultImposterCaught:  "The imposter was caught!",
	models.ResultImposterEscaped: "The imposter blended in.",
}

// ResultBanner generates HTML announcing the round outcome
func ResultBanner(r models.Result) string {
	line, ok := resultLines[r]
	if !ok {
		return ""
	}
	class := "result-escaped"
	if r.Caught() {
		class = "result-caught"
	}
	return `<div class="result-banner ` + class + `">` + line + `</div>`
}
