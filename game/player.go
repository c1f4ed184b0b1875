package game

import (
	"math/rand"
)

const (
	startingHealth = 30
	handSize       = 5
)

// Player holds one participant's resource counters and card zones.
// All four zones are ordered; a card instance lives in exactly one
// zone at a time.
type Player struct {
	ID      string
	Health  int
	Armor   int
	Actions int
	Buys    int
	Coins   int

	Deck    []Card
	Hand    []Card
	Discard []Card
	InPlay  []Card

	RequiredChoices []RequiredChoice

	nextChoiceID int
	rng          *rand.Rand
}

// NewPlayer constructs a player with empty zones
func NewPlayer(id string, rng *rand.Rand) *Player {
	return &Player{
		ID:      id,
		Health:  startingHealth,
		Deck:    []Card{},
		Hand:    []Card{},
		Discard: []Card{},
		InPlay:  []Card{},
		rng:     rng,
	}
}

// StartTurn resets armor. Actions, buys and coins are untouched here:
// Cleanup at the end of the previous turn already reset them and drew
// the next hand, so the player begins the turn ready to go.
func (p *Player) StartTurn() {
	p.Armor = 0
}

// EndTurn runs end-of-turn cleanup
func (p *Player) EndTurn() {
	p.Cleanup()
}

// Cleanup folds in-play (reversed) then hand onto the front of
// discard, resets the turn counters and draws the next hand.
func (p *Player) Cleanup() {
	folded := make([]Card, 0, len(p.InPlay)+len(p.Hand)+len(p.Discard))
	for i := len(p.InPlay) - 1; i >= 0; i-- {
		folded = append(folded, p.InPlay[i])
	}
	folded = append(folded, p.Hand...)
	folded = append(folded, p.Discard...)
	p.Discard = folded
	p.Hand = []Card{}
	p.InPlay = []Card{}

	p.Actions = 1
	p.Buys = 1
	p.Coins = 0
	p.DrawCards(handSize)
}

// shuffle moves the whole discard into the deck in random order
func (p *Player) shuffle() {
	p.Deck = append(p.Deck, p.Discard...)
	p.Discard = []Card{}
	p.rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// DrawCard moves the top of the deck to the back of the hand,
// reshuffling the discard into the deck first if the deck is empty.
// Running out of cards entirely is a normal condition reported as
// false, not an error.
func (p *Player) DrawCard() bool {
	if len(p.Deck) == 0 {
		if len(p.Discard) == 0 {
			return false
		}
		p.shuffle()
		return p.DrawCard()
	}
	p.Hand = append(p.Hand, p.Deck[0])
	p.Deck = p.Deck[1:]
	return true
}

// DrawCards draws n cards, stopping at the first failed draw.
// Partial draws are kept.
func (p *Player) DrawCards(n int) bool {
	for i := 0; i < n; i++ {
		if !p.DrawCard() {
			return false
		}
	}
	return true
}

// GainCard moves the top instance of a pile onto the front of the
// player's discard, or deck when toDeck is set. Reports false on an
// empty pile.
func (p *Player) GainCard(pile *Pile, toDeck bool) bool {
	card, ok := pile.TakeTop()
	if !ok {
		return false
	}
	if toDeck {
		p.Deck = append([]Card{card}, p.Deck...)
	} else {
		p.Discard = append([]Card{card}, p.Discard...)
	}
	return true
}

// GainCards repeats GainCard, stopping at the first shortfall.
// Partial gains are kept.
func (p *Player) GainCards(pile *Pile, amount int, toDeck bool) bool {
	for i := 0; i < amount; i++ {
		if !p.GainCard(pile, toDeck) {
			return false
		}
	}
	return true
}

// CanPlay reports whether the player may play a card of the given
// kind. Cards that cost an action need at least one action left;
// pure treasures are always playable.
func (p *Player) CanPlay(def *CardDef) bool {
	return !def.CostsAction() || p.Actions > 0
}

// PlayCard plays the hand card at the given index. The card moves to
// in-play before its effect runs, so the move is visible even while
// the effect is suspended on a pending choice. Reports false on an
// out-of-range index or when CanPlay rejects.
func (p *Player) PlayCard(g *Game, index int) bool {
	if index < 0 || index >= len(p.Hand) {
		return false
	}
	card := p.Hand[index]
	def, err := Lookup(card.Kind)
	if err != nil {
		return false
	}
	if !p.CanPlay(def) {
		return false
	}

	p.InPlay = append(p.InPlay, card)
	p.Hand = append(p.Hand[:index], p.Hand[index+1:]...)

	if def.Effect != nil {
		p.Actions--
		def.Effect(p, g)
	}
	if def.Coin != nil {
		p.Coins += def.Coin(p, g)
	}
	return true
}

// BuyCard buys the top card of the named pile into the discard.
// Reports false when out of buys, short on coins, or the pile is
// unknown or empty; a failed buy deducts nothing.
func (p *Player) BuyCard(g *Game, pileID CardID) bool {
	def, err := Lookup(pileID)
	if err != nil {
		return false
	}
	pile, ok := g.Piles[pileID]
	if !ok || pile.Size() == 0 {
		return false
	}
	if p.Buys == 0 || p.Coins < def.Cost {
		return false
	}

	p.Coins -= def.Cost
	p.Buys--
	return p.GainCard(pile, false)
}

// TrashCards removes and returns the instances at the given indices
// from the hand (or discard) in one pass. Out-of-range indices are
// ignored.
func (p *Player) TrashCards(indices []int, fromDiscard bool) []Card {
	zone := p.Hand
	if fromDiscard {
		zone = p.Discard
	}

	wanted := map[int]bool{}
	for _, i := range indices {
		wanted[i] = true
	}

	kept := []Card{}
	removed := []Card{}
	for i, card := range zone {
		if wanted[i] {
			removed = append(removed, card)
		} else {
			kept = append(kept, card)
		}
	}

	if fromDiscard {
		p.Discard = kept
	} else {
		p.Hand = kept
	}
	return removed
}

// TakeDamage applies damage, armor first. Health is not clamped; the
// death check belongs to the game after each resolution.
func (p *Player) TakeDamage(amount int) {
	damageToArmor := amount
	if p.Armor < damageToArmor {
		damageToArmor = p.Armor
	}
	damageToHealth := amount - p.Armor
	if damageToHealth < 0 {
		damageToHealth = 0
	}
	p.Armor -= damageToArmor
	p.Health -= damageToHealth
}

// Alive reports whether the player's health invariant holds
func (p *Player) Alive() bool {
	return p.Health > 0
}
