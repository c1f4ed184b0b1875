package game

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"
)

// Phase is the lifecycle phase of a game
type Phase int

const (
	Waiting Phase = iota
	Playing
	Ended
)

var phaseNames = []string{
	"waiting",
	"playing",
	"ended",
}

func (p Phase) String() string {
	return phaseNames[p]
}

const (
	maxPlayers       = 2
	treasurePileSize = 40
	attackPileSize   = 10
	kingdomPileSize  = 10
	numKingdomPiles  = 10

	startingCopper  = 7
	startingAttacks = 3
)

// Game is the root aggregate for one match: lifecycle phase, players,
// shared piles, trash and the action queue. It is the single entry
// point for external commands and is driven from one goroutine;
// nothing here is safe for concurrent use.
type Game struct {
	Phase           Phase
	CurrentPlayerID string
	Players         map[string]*Player
	Piles           map[CardID]*Pile
	Trash           []Card

	actionQueue []Action
	nextCardUID int
	rng         *rand.Rand
	log         *zap.Logger
}

// NewGame constructs a game in the Waiting phase with its piles set
// up: the fixed treasure and attack piles plus a random subset of
// kingdom piles. The rand source drives every random decision the
// game makes, so a seeded source replays identically.
func NewGame(log *zap.Logger, rng *rand.Rand) *Game {
	g := &Game{
		Phase:   Waiting,
		Players: map[string]*Player{},
		Piles:   map[CardID]*Pile{},
		Trash:   []Card{},
		rng:     rng,
		log:     log,
	}

	g.addPile(Copper, treasurePileSize)
	g.addPile(Silver, treasurePileSize)
	g.addPile(Gold, treasurePileSize)

	g.addPile(LightAttack, attackPileSize)
	g.addPile(MediumAttack, attackPileSize)
	g.addPile(HeavyAttack, attackPileSize)

	kingdom := KingdomCards()
	g.rng.Shuffle(len(kingdom), func(i, j int) {
		kingdom[i], kingdom[j] = kingdom[j], kingdom[i]
	})
	if len(kingdom) > numKingdomPiles {
		kingdom = kingdom[:numKingdomPiles]
	}
	for _, id := range kingdom {
		g.addPile(id, kingdomPileSize)
	}

	return g
}

func (g *Game) addPile(kind CardID, amount int) {
	cards := make([]Card, 0, amount)
	for i := 0; i < amount; i++ {
		cards = append(cards, g.mint(kind))
	}
	g.Piles[kind] = &Pile{Kind: kind, Cards: cards}
}

func (g *Game) mint(kind CardID) Card {
	g.nextCardUID++
	return Card{UID: g.nextCardUID, Kind: kind}
}

// AddPlayer registers a joiner, deals their starting cards and draws
// their first hand. A duplicate join is a warned no-op. The second
// join starts the game.
func (g *Game) AddPlayer(id string) {
	if _, ok := g.Players[id]; ok {
		g.log.Warn("attempting to add pre-existing player", zap.String("playerID", id))
		return
	}
	if g.Phase != Waiting || len(g.Players) >= maxPlayers {
		g.log.Warn("rejecting join", zap.String("playerID", id), zap.Stringer("phase", g.Phase))
		return
	}

	player := NewPlayer(id, g.rng)
	player.GainCards(g.Piles[Copper], startingCopper, false)
	player.GainCards(g.Piles[LightAttack], startingAttacks, false)
	player.Cleanup()
	g.Players[id] = player

	g.log.Info("added player", zap.String("playerID", id))

	if len(g.Players) == maxPlayers {
		g.startGame()
	}
}

// RemovePlayer drops a player from the game
func (g *Game) RemovePlayer(id string) {
	delete(g.Players, id)
}

// CurrentPlayer returns the turn owner, or nil before the game starts
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerID]
}

// Opponent returns the other player in a two-player game
func (g *Game) Opponent(id string) *Player {
	for pid, p := range g.Players {
		if pid != id {
			return p
		}
	}
	return nil
}

func (g *Game) startGame() {
	ids := make([]string, 0, len(g.Players))
	for id := range g.Players {
		ids = append(ids, id)
	}
	// map order is randomized; the seeded pick needs a stable slice
	sort.Strings(ids)
	g.CurrentPlayerID = ids[g.rng.Intn(len(ids))]
	g.CurrentPlayer().StartTurn()
	g.Phase = Playing
	g.log.Info("game started", zap.String("currentPlayerID", g.CurrentPlayerID))
}

func (g *Game) endGame() {
	g.Phase = Ended
	g.log.Info("game ended")
}

// canAct reports whether the given player may issue a mutating
// command right now: the game is in play, it is their turn, and no
// choice of theirs is outstanding.
func (g *Game) canAct(playerID string) bool {
	if g.Phase != Playing {
		return false
	}
	player, ok := g.Players[playerID]
	if !ok || playerID != g.CurrentPlayerID {
		return false
	}
	return !player.AwaitingChoice()
}

// PlayCard plays the turn owner's hand card at the given index.
// Commands from a non-owner, after the game has ended, or while the
// owner has a pending choice are no-ops.
func (g *Game) PlayCard(playerID string, index int) bool {
	if !g.canAct(playerID) {
		return false
	}
	player := g.Players[playerID]
	played := player.PlayCard(g, index)
	if played {
		g.drainActions(player)
	}
	g.checkGameOver()
	return played
}

// BuyCard buys from the named pile for the turn owner
func (g *Game) BuyCard(playerID string, pileID CardID) bool {
	if !g.canAct(playerID) {
		return false
	}
	return g.Players[playerID].BuyCard(g, pileID)
}

// EndTurn ends the turn owner's turn and hands the turn to the
// opponent
func (g *Game) EndTurn(playerID string) bool {
	if !g.canAct(playerID) {
		return false
	}
	opponent := g.Opponent(playerID)
	if opponent == nil {
		return false
	}

	g.Players[playerID].EndTurn()
	g.CurrentPlayerID = opponent.ID
	opponent.StartTurn()
	return true
}

// ResolveChoice answers the issuing player's outstanding choice with
// the given id. Stale and unknown ids are ignored. Resolution can
// finish a lethal effect, so the win condition is re-checked.
func (g *Game) ResolveChoice(playerID string, id int, resp ChoiceResponse) bool {
	if g.Phase != Playing {
		return false
	}
	player, ok := g.Players[playerID]
	if !ok {
		return false
	}
	resolved := player.ResolveChoice(id, resp)
	if resolved {
		g.drainActions(player)
		g.checkGameOver()
	}
	return resolved
}

// TrashCards moves the cards at the given hand (or discard) indices
// of a player into the shared trash
func (g *Game) TrashCards(p *Player, indices []int, fromDiscard bool) {
	trashed := p.TrashCards(indices, fromDiscard)
	g.Trash = append(g.Trash, trashed...)
}

func (g *Game) checkGameOver() {
	if g.Phase != Playing {
		return
	}
	for _, p := range g.Players {
		if !p.Alive() {
			g.endGame()
			return
		}
	}
}
