package game

import (
	"math/rand"

	"go.uber.org/zap"
)

func newTestGame(seed int64) *Game {
	return NewGame(zap.NewNop(), rand.New(rand.NewSource(seed)))
}

func newTestPlayer(id string, seed int64) *Player {
	return NewPlayer(id, rand.New(rand.NewSource(seed)))
}

func cardsOf(kind CardID, n int) []Card {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, Card{UID: i + 1, Kind: kind})
	}
	return cards
}

// kindCounts tallies card kinds across the given zones
func kindCounts(zones ...[]Card) map[CardID]int {
	counts := map[CardID]int{}
	for _, zone := range zones {
		for _, c := range zone {
			counts[c.Kind]++
		}
	}
	return counts
}

// startedGame returns a game in the Playing phase with both players
// joined
func startedGame(seed int64) (*Game, *Player, *Player) {
	g := newTestGame(seed)
	g.AddPlayer("p1")
	g.AddPlayer("p2")

	current := g.CurrentPlayer()
	opponent := g.Opponent(current.ID)
	return g, current, opponent
}
