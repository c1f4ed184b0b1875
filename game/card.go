package game

import (
	"errors"
	"sort"
)

// CardID identifies a kind of card in the catalog
type CardID string

// CardType is a category tag on a card definition
type CardType string

const (
	TypeTreasure CardType = "treasure"
	TypeAction   CardType = "action"
	TypeAttack   CardType = "attack"
	TypeDuration CardType = "duration"
)

var ErrUnknownCard = errors.New("unknown card")

// CardDef is the immutable definition of one kind of card.
// Treasure-like cards carry a Coin function; action cards carry an
// Effect. Both are optional. Definitions are registered once at init
// and shared by reference across all games.
type CardDef struct {
	ID          CardID
	Name        string
	Description string
	Types       []CardType
	Cost        int
	Kingdom     bool
	Coin        func(p *Player, g *Game) int
	Effect      func(p *Player, g *Game)
}

// HasType reports whether the definition carries the given tag
func (d *CardDef) HasType(t CardType) bool {
	for _, ct := range d.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// CostsAction reports whether playing this card consumes an action
func (d *CardDef) CostsAction() bool {
	return d.Effect != nil
}

// Card is a single card instance resident in a zone or pile.
// Behaviour lives on the catalog definition for its kind; the
// instance id keeps instances distinguishable within a kind.
type Card struct {
	UID  int
	Kind CardID
}

const (
	Copper       CardID = "copper"
	Silver       CardID = "silver"
	Gold         CardID = "gold"
	LightAttack  CardID = "lightAttack"
	MediumAttack CardID = "mediumAttack"
	HeavyAttack  CardID = "heavyAttack"
	Village      CardID = "village"
	Draw         CardID = "draw"
	Shield       CardID = "shield"
	Stipend      CardID = "stipend"
	TrashUpTo3   CardID = "trash"
)

var catalog = map[CardID]*CardDef{}

func register(def *CardDef) {
	catalog[def.ID] = def
}

// Lookup finds a card definition by kind id
func Lookup(id CardID) (*CardDef, error) {
	def, ok := catalog[id]
	if !ok {
		return nil, ErrUnknownCard
	}
	return def, nil
}

// KingdomCards returns the ids of all kingdom-eligible cards in a
// stable order. Callers shuffle; the catalog stays deterministic.
func KingdomCards() []CardID {
	ids := []CardID{}
	for id, def := range catalog {
		if def.Kingdom {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func fixedCoin(amount int) func(*Player, *Game) int {
	return func(*Player, *Game) int { return amount }
}

func attackEffect(amount int) func(*Player, *Game) {
	return func(p *Player, g *Game) {
		if opponent := g.Opponent(p.ID); opponent != nil {
			opponent.TakeDamage(amount)
		}
	}
}

func init() {
	register(&CardDef{
		ID:          Copper,
		Name:        "Copper",
		Description: "+1 Coin",
		Types:       []CardType{TypeTreasure},
		Cost:        0,
		Coin:        fixedCoin(1),
	})
	register(&CardDef{
		ID:          Silver,
		Name:        "Silver",
		Description: "+2 Coins",
		Types:       []CardType{TypeTreasure},
		Cost:        3,
		Coin:        fixedCoin(2),
	})
	register(&CardDef{
		ID:          Gold,
		Name:        "Gold",
		Description: "+3 Coins",
		Types:       []CardType{TypeTreasure},
		Cost:        6,
		Coin:        fixedCoin(3),
	})
	register(&CardDef{
		ID:          LightAttack,
		Name:        "Light Attack",
		Description: "Deal 1 Damage",
		Types:       []CardType{TypeAction, TypeAttack},
		Cost:        2,
		Effect:      attackEffect(1),
	})
	register(&CardDef{
		ID:          MediumAttack,
		Name:        "Medium Attack",
		Description: "Deal 3 Damage",
		Types:       []CardType{TypeAction, TypeAttack},
		Cost:        5,
		Effect:      attackEffect(3),
	})
	register(&CardDef{
		ID:          HeavyAttack,
		Name:        "Heavy Attack",
		Description: "Deal 6 Damage",
		Types:       []CardType{TypeAction, TypeAttack},
		Cost:        8,
		Effect:      attackEffect(6),
	})
	register(&CardDef{
		ID:          Village,
		Name:        "Village",
		Description: "+1 Card, +2 Actions",
		Types:       []CardType{TypeAction},
		Cost:        3,
		Kingdom:     true,
		Effect: func(p *Player, g *Game) {
			p.DrawCard()
			p.Actions += 2
		},
	})
	register(&CardDef{
		ID:          Draw,
		Name:        "Draw",
		Description: "+3 Cards",
		Types:       []CardType{TypeAction},
		Cost:        4,
		Kingdom:     true,
		Effect: func(p *Player, g *Game) {
			p.DrawCards(3)
		},
	})
	register(&CardDef{
		ID:          Shield,
		Name:        "Shield",
		Description: "+5 Armor",
		Types:       []CardType{TypeAction},
		Cost:        3,
		Kingdom:     true,
		Effect: func(p *Player, g *Game) {
			p.Armor += 5
		},
	})
	register(&CardDef{
		ID:          Stipend,
		Name:        "Stipend",
		Description: "+2 Coins",
		Types:       []CardType{TypeAction},
		Cost:        5,
		Kingdom:     true,
		Effect: func(p *Player, g *Game) {
			g.Enqueue(GainCoins{Amount: 2})
		},
	})
	register(&CardDef{
		ID:          TrashUpTo3,
		Name:        "Trash",
		Description: "Trash up to 3 cards from your hand",
		Types:       []CardType{TypeAction},
		Cost:        4,
		Kingdom:     true,
		Effect: func(p *Player, g *Game) {
			eligible := make([]int, len(p.Hand))
			for i := range p.Hand {
				eligible[i] = i
			}
			p.WaitForChoice(ChoiceSpec{
				Kind:            ChoiceTrashFromHand,
				Prompt:          "Choose cards to trash",
				Min:             0,
				Max:             3,
				EligibleIndices: eligible,
			}, func(resp ChoiceResponse) {
				g.TrashCards(p, resp.Indices, false)
			})
		},
	})
}
