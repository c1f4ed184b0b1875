package server

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ruthmoore/bastion/game"
	"github.com/ruthmoore/bastion/protocol"
)

// Room pairs two clients with one authoritative game. A single
// goroutine (Listen) owns the game: joins, leaves and commands are
// funnelled through channels and processed one at a time to
// completion, which is what keeps resolution deterministic.
type Room struct {
	id   string
	log  *zap.Logger
	game *game.Game

	clients    map[string]*client
	register   chan *client
	unregister chan *client
	inbound    chan protocol.InboundMessage
}

// NewRoom constructs a room and its game
func NewRoom(id string, log *zap.Logger) *Room {
	roomLog := log.With(zap.String("roomID", id))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Room{
		id:         id,
		log:        roomLog,
		game:       game.NewGame(roomLog, rng),
		clients:    map[string]*client{},
		register:   make(chan *client),
		unregister: make(chan *client),
		inbound:    make(chan protocol.InboundMessage),
	}
}

// ID returns the room's id
func (r *Room) ID() string {
	return r.id
}

// AddClient hands a connected client to the room goroutine
func (r *Room) AddClient(c *client) {
	r.register <- c
}

// Listen runs the room's command loop. One inbound message is
// processed to completion, including any effect suspension, before
// the next is received.
func (r *Room) Listen() {
	for {
		select {
		case c := <-r.register:
			r.handleJoin(c)

		case c := <-r.unregister:
			if r.clients[c.playerID] == c {
				delete(r.clients, c.playerID)
				close(c.send)
			}
			r.log.Info("client left", zap.String("playerID", c.playerID))

		case msg := <-r.inbound:
			r.handleMessage(msg)
			r.broadcastState()
		}
	}
}

func (r *Room) handleJoin(c *client) {
	if r.game.Phase != game.Waiting {
		r.log.Warn("rejecting join, game already started", zap.String("playerID", c.playerID))
		close(c.send)
		return
	}

	r.clients[c.playerID] = c
	r.game.AddPlayer(c.playerID)
	r.log.Info("client joined", zap.String("playerID", c.playerID))
	r.broadcastState()
}

func (r *Room) handleMessage(msg protocol.InboundMessage) {
	r.log.Info("client sent message",
		zap.String("playerID", msg.PlayerID),
		zap.Stringer("command", msg.Command),
	)

	switch msg.Command {
	case protocol.PlayCard:
		r.game.PlayCard(msg.PlayerID, msg.Args.Index)
	case protocol.BuyCard:
		r.game.BuyCard(msg.PlayerID, game.CardID(msg.Args.CardID))
	case protocol.EndTurn:
		r.game.EndTurn(msg.PlayerID)
	case protocol.CompleteRequiredAction:
		r.game.ResolveChoice(msg.PlayerID, msg.Args.ID, game.ChoiceResponse{
			Indices: msg.Args.Indices,
		})
	default:
		r.log.Warn("ignoring unknown command", zap.String("playerID", msg.PlayerID))
	}
}

func (r *Room) broadcastState() {
	data, err := json.Marshal(r.game.Snapshot())
	if err != nil {
		r.log.Error("could not marshal game snapshot", zap.Error(err))
		return
	}
	for _, c := range r.clients {
		select {
		case c.send <- data:
		default:
			r.log.Warn("dropping state update, client too slow", zap.String("playerID", c.playerID))
		}
	}
}

const sendBufferSize = 16

// client is one player's websocket connection into a room
type client struct {
	playerID string
	room     *Room
	conn     *websocket.Conn
	send     chan []byte
	log      *zap.Logger
}

func newClient(playerID string, room *Room, conn *websocket.Conn, log *zap.Logger) *client {
	return &client{
		playerID: playerID,
		room:     room,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		log:      log.With(zap.String("playerID", playerID)),
	}
}

// readPump relays wire messages onto the room's inbound channel
func (c *client) readPump() {
	defer func() {
		c.room.unregister <- c
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("ignoring malformed message", zap.Error(err))
			continue
		}

		// session identity wins over anything in the payload
		msg.PlayerID = c.playerID
		c.room.inbound <- msg
	}
}

// writePump drains the send channel onto the wire
func (c *client) writePump() {
	defer c.conn.Close()

	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			c.log.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}
