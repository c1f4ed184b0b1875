package game

import (
	"github.com/ruthmoore/bastion/protocol"
)

// Snapshot builds the full-truth state event handed to the
// synchronization layer after each command
func (g *Game) Snapshot() protocol.GameSnapshot {
	players := map[string]protocol.PlayerSnapshot{}
	for id, p := range g.Players {
		players[id] = buildPlayerSnapshot(p)
	}

	piles := map[string]int{}
	for kind, pile := range g.Piles {
		piles[string(kind)] = pile.Size()
	}

	return protocol.GameSnapshot{
		GameState:       g.Phase.String(),
		CurrentPlayerID: g.CurrentPlayerID,
		Players:         players,
		Piles:           piles,
		Trash:           kindIDs(g.Trash),
	}
}

func buildPlayerSnapshot(p *Player) protocol.PlayerSnapshot {
	choices := make([]protocol.ChoiceSnapshot, 0, len(p.RequiredChoices))
	for _, c := range p.RequiredChoices {
		choices = append(choices, protocol.ChoiceSnapshot{
			ID:              c.ID,
			Kind:            string(c.Kind),
			Prompt:          c.Prompt,
			Min:             c.Min,
			Max:             c.Max,
			EligibleIndices: c.EligibleIndices,
		})
	}

	return protocol.PlayerSnapshot{
		ID:              p.ID,
		Health:          p.Health,
		Armor:           p.Armor,
		Actions:         p.Actions,
		Buys:            p.Buys,
		Coins:           p.Coins,
		Deck:            kindIDs(p.Deck),
		Hand:            kindIDs(p.Hand),
		Discard:         kindIDs(p.Discard),
		InPlay:          kindIDs(p.InPlay),
		RequiredChoices: choices,
	}
}

func kindIDs(cards []Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, string(c.Kind))
	}
	return ids
}
