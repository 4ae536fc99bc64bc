// Package vip maps a handful of player names to a cosmetic flair. Gameplay
// never reads it.
package vip

import "strings"

// Flair is the marker drawn next to a VIP's name
type Flair string

const (
	King  Flair = "KING"  // gold crown
	Queen Flair = "QUEEN" // pink gem
)

// keys are trimmed and lower-cased
var list = map[string]Flair{
	"saeed":   King,
	"alsaeed": King,
	"سعيد":    King,
	"السعيد":  King,

	"alaa":  Queen,
	"lola":  Queen,
	"الاء":  Queen,
	"آلاء":  Queen,
	"لولتي": Queen,
	"لولا":  Queen,
}

// Lookup returns the flair for name, if it has one
func Lookup(name string) (Flair, bool) {
	f, ok := list[normalize(name)]
	return f, ok
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
