package protocol

// Args carries the command-specific arguments of an inbound message.
// Unused fields are left at their zero values by the client.
type Args struct {
	Index   int    `json:"index"`
	CardID  string `json:"cardId"`
	ID      int    `json:"id"`
	Indices []int  `json:"indices"`
}

// InboundMessage is a message from a client to its game room. The
// player id is attached by the room from the session identity, never
// trusted from the wire.
type InboundMessage struct {
	PlayerID string `json:"-"`
	Command  Cmd    `json:"command"`
	Args     Args   `json:"args"`
}

// ChoiceSnapshot is the wire form of one pending required choice
type ChoiceSnapshot struct {
	ID              int    `json:"id"`
	Kind            string `json:"kind"`
	Prompt          string `json:"prompt"`
	Min             int    `json:"min"`
	Max             int    `json:"max"`
	EligibleIndices []int  `json:"possibleIndices"`
}

// PlayerSnapshot is the wire form of one player's counters and
// zones. Zones carry kind ids; instances of a kind are
// interchangeable on the wire.
type PlayerSnapshot struct {
	ID              string           `json:"id"`
	Health          int              `json:"health"`
	Armor           int              `json:"armor"`
	Actions         int              `json:"actions"`
	Buys            int              `json:"buys"`
	Coins           int              `json:"coins"`
	Deck            []string         `json:"deck"`
	Hand            []string         `json:"hand"`
	Discard         []string         `json:"discard"`
	InPlay          []string         `json:"inPlay"`
	RequiredChoices []ChoiceSnapshot `json:"requiredActions"`
}

// GameSnapshot is the full-truth state event broadcast to every
// client after each processed command. Hiding an opponent's hand
// from the remote UI is a presentation concern, not enforced here.
type GameSnapshot struct {
	GameState       string                    `json:"gameState"`
	CurrentPlayerID string                    `json:"currentPlayerId"`
	Players         map[string]PlayerSnapshot `json:"players"`
	Piles           map[string]int            `json:"cardPiles"`
	Trash           []string                  `json:"trash"`
}
