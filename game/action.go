package game

// Action is a deferred unit of effect resolution. Effects enqueue
// Actions instead of recursing into further resolution; the game
// drains the queue FIFO after the triggering play completes and
// before the next command is accepted. Distinct from the "action"
// resource counter a card may cost to play.
type Action interface {
	Resolve(g *Game, p *Player)
}

// GainCoins grants coins to the acting player when resolved
type GainCoins struct {
	Amount int
}

func (a GainCoins) Resolve(g *Game, p *Player) {
	p.Coins += a.Amount
}

// Enqueue appends an action to the queue. There is no priority and
// no cancellation; an enqueued action always runs.
func (g *Game) Enqueue(a Action) {
	g.actionQueue = append(g.actionQueue, a)
}

func (g *Game) drainActions(p *Player) {
	for len(g.actionQueue) > 0 {
		next := g.actionQueue[0]
		g.actionQueue = g.actionQueue[1:]
		next.Resolve(g, p)
	}
}
