package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewRoomReq struct {
	Name string `json:"name"`
}

type JoinRoomReq struct {
	RoomID string `json:"game_id"`
	Name   string `json:"name"`
}

type PendingRoomRes struct {
	RoomID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"is_admin"`
}

type GetRoomRes struct {
	Status string `json:"status"`
	RoomID string `json:"game_id"`
}

// GameServer serves the HTTP and websocket surface of the game
type GameServer struct {
	store RoomStore
	log   *zap.Logger
	http.Server
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewRoomID constructs a six-letter room code
func NewRoomID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func unknownRoomIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store RoomStore, log *zap.Logger) *GameServer {
	s := &GameServer{store: store, log: log}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewRoom))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinRoom))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindRoom))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.Handler = cors(router)

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewRoom handles a request to create a new game room
func (g *GameServer) HandleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	roomID := NewRoomID()
	playerID := NewID()

	room := NewRoom(roomID, g.log)
	go room.Listen()

	if err := g.store.AddRoom(room); err != nil {
		g.log.Error("could not add room", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddPendingPlayer(roomID, playerID, data.Name); err != nil {
		g.log.Error("could not add pending player", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := PendingRoomRes{
		RoomID:   roomID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payload)
}

// HandleJoinRoom handles a request to join an existing room
func (g *GameServer) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	if data.RoomID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	if g.store.FindRoom(data.RoomID) == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownRoomIDMsg(data.RoomID)))
		return
	}

	playerID := NewID()
	if err := g.store.AddPendingPlayer(data.RoomID, playerID, data.Name); err != nil {
		if err == ErrRoomFull {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(err.Error()))
			return
		}
		g.log.Error("could not add pending player", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := PendingRoomRes{
		RoomID:   data.RoomID,
		PlayerID: playerID,
		Name:     data.Name,
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// HandleFindRoom reports whether a room exists
func (g *GameServer) HandleFindRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	roomID := strings.TrimPrefix(r.URL.Path, "/game/")
	if roomID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	if g.store.FindRoom(roomID) == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownRoomIDMsg(roomID)))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetRoomRes{Status: "ok", RoomID: roomID})
}

// HandleWS upgrades a pending player's connection and attaches them
// to their room
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("game_id")
	if roomID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	playerID := query.Get("player_id")
	if playerID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player ID"))
		return
	}

	room := g.store.FindRoom(roomID)
	if room == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownRoomIDMsg(roomID)))
		return
	}

	if g.store.FindPendingPlayer(roomID, playerID) == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unknown player ID"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("could not upgrade to websocket", zap.Error(err))
		return
	}

	c := newClient(playerID, room, conn, g.log)
	go c.writePump()
	go c.readPump()
	room.AddClient(c)
}

func (g *GameServer) writeParseError(err error, w http.ResponseWriter) {
	g.log.Warn("could not parse request body", zap.Error(err))
	w.Header().Add("Content-Type", "text/plain")
	if err == io.EOF {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing body"))
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}
