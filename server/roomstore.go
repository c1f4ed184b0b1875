package server

import (
	"errors"
	"sync"
)

var (
	ErrUnknownRoomID  = errors.New("unknown room ID")
	ErrRoomIDTaken    = errors.New("room ID already in use")
	ErrRoomFull       = errors.New("room already has two players")
	ErrAlreadyPending = errors.New("player already pending for this room")
)

// PendingPlayer is a joiner who has been issued an identity but has
// not connected over websocket yet
type PendingPlayer struct {
	PlayerID string
	Name     string
}

// RoomStore finds and registers rooms and their pending players
type RoomStore interface {
	FindRoom(roomID string) *Room
	AddRoom(room *Room) error
	FindPendingPlayer(roomID, playerID string) *PendingPlayer
	AddPendingPlayer(roomID, playerID, name string) error
}

// InMemoryRoomStore maps room id to room. Safe for concurrent use by
// the HTTP handlers.
type InMemoryRoomStore struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	pending map[string][]PendingPlayer
}

// NewInMemoryRoomStore constructs an InMemoryRoomStore
func NewInMemoryRoomStore() *InMemoryRoomStore {
	return &InMemoryRoomStore{
		rooms:   map[string]*Room{},
		pending: map[string][]PendingPlayer{},
	}
}

func (s *InMemoryRoomStore) FindRoom(roomID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[roomID]
}

func (s *InMemoryRoomStore) AddRoom(room *Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[room.ID()]; ok {
		return ErrRoomIDTaken
	}
	s.rooms[room.ID()] = room
	return nil
}

func (s *InMemoryRoomStore) FindPendingPlayer(roomID, playerID string) *PendingPlayer {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pending[roomID] {
		if p.PlayerID == playerID {
			pending := p
			return &pending
		}
	}
	return nil
}

func (s *InMemoryRoomStore) AddPendingPlayer(roomID, playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return ErrUnknownRoomID
	}

	pending := s.pending[roomID]
	if len(pending) >= 2 {
		return ErrRoomFull
	}
	for _, p := range pending {
		if p.PlayerID == playerID {
			return ErrAlreadyPending
		}
	}

	s.pending[roomID] = append(pending, PendingPlayer{PlayerID: playerID, Name: name})
	return nil
}
