package game

import (
	"reflect"
	"testing"

	"github.com/aaronzipp/aljasus/internal/models"
)

func TestCountVotes(t *testing.T) {
	tests := []struct {
		name      string
		players   []string
		votes     []string
		mostVoted string
		count     int
		tie       bool
	}{
		{"no votes", []string{"A", "B", "C"}, nil, "", 0, false},
		{"clear majority", []string{"A", "B", "C", "X", "Y"}, []string{"A", "X", "B", "X", "C", "Y"}, "X", 2, false},
		{"tie goes to earliest in roster", []string{"A", "B", "C", "D"}, []string{"A", "D", "B", "C"}, "C", 1, true},
		{"tie order ignores vote order", []string{"A", "B", "C", "D"}, []string{"A", "B", "C", "A", "D", "B", "B", "A"}, "A", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := toVoting(classicRound(stateWith(tt.players...), "Beach", 0))
			s = vote(s, tt.votes...)
			got := CountVotes(&s)
			if got.MostVoted != tt.mostVoted || got.Votes != tt.count || got.IsTie != tt.tie {
				t.Fatalf("CountVotes = (%q, %d, tie=%v), want (%q, %d, tie=%v)",
					got.MostVoted, got.Votes, got.IsTie, tt.mostVoted, tt.count, tt.tie)
			}
		})
	}
}

func TestVotedCorrectly(t *testing.T) {
	s := toVoting(classicRound(stateWith("A", "B", "C", "D"), "Beach", 2))
	s = vote(s, "A", "C", "B", "D", "D", "C")
	got := CountVotes(&s).VotedCorrectly
	want := map[string]bool{"A": true, "B": false, "D": true}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("VotedCorrectly = %v, want %v", got, want)
	}
}

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name       string
		mode       models.GameMode
		votes      []string
		result     models.Result
		offerGuess bool
	}{
		{"classic caught", models.ModeClassic, []string{"B", "A", "C", "A"}, models.ResultSpyCaught, true},
		{"classic escaped", models.ModeClassic, []string{"A", "B", "C", "B"}, models.ResultSpyEscaped, false},
		{"classic no votes", models.ModeClassic, nil, models.ResultSpyEscaped, false},
		{"chameleon caught", models.ModeChameleon, []string{"B", "A", "C", "A"}, models.ResultImposterCaught, false},
		{"chameleon escaped", models.ModeChameleon, []string{"A", "C", "B", "C"}, models.ResultImposterEscaped, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(stateWith("A", "B", "C"), SetGameMode{Mode: tt.mode})
			cmd := StartRound{Category: "Places", Word: "Beach", Culprits: []int{0}}
			if tt.mode == models.ModeChameleon {
				cmd = StartRound{Category: "Drinks", Pair: &models.WordPair{Distinct: "Tea", Imposter: "Coffee"}, Culprits: []int{0}}
			}
			s = toVoting(Reduce(s, cmd))
			s = vote(s, tt.votes...)

			result, offer := ResolveOutcome(&s)
			if result != tt.result || offer != tt.offerGuess {
				t.Fatalf("ResolveOutcome = (%s, %v), want (%s, %v)", result, offer, tt.result, tt.offerGuess)
			}
		})
	}
}

func TestResultForGuess(t *testing.T) {
	s := classicRound(stateWith("A", "B", "C"), "Beach", 0)
	if got := ResultForGuess(&s, "Beach"); got != models.ResultSpyGuessed {
		t.Fatalf("exact guess = %s", got)
	}
	for _, g := range []string{"beach", "Airport", ""} {
		if got := ResultForGuess(&s, g); got != models.ResultSpyCaught {
			t.Errorf("ResultForGuess(%q) = %s, want spy_caught", g, got)
		}
	}
}

func TestCurrentVoter(t *testing.T) {
	s := classicRound(stateWith("A", "B", "C"), "Beach", 0)
	if _, ok := CurrentVoter(&s); ok {
		t.Fatalf("voter reported outside voting")
	}
	s = toVoting(s)
	for _, want := range []string{"A", "B", "C"} {
		got, ok := CurrentVoter(&s)
		if !ok || got != want {
			t.Fatalf("CurrentVoter = %q, %v; want %q", got, ok, want)
		}
		s = Reduce(s, CastVote{Voter: got, Suspect: Suspects(&s, got)[0]})
	}
	if _, ok := CurrentVoter(&s); ok {
		t.Fatalf("voter reported after everyone voted")
	}
}
