package memory

import (
	"context"
	"sync"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	nameIndex map[string]model.PlayerID
	locations map[model.LocationID]*model.Location
	lobbies   map[model.LobbyID]*model.Lobby
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		nameIndex: make(map[string]model.PlayerID),
		locations: make(map[model.LocationID]*model.Location),
		lobbies:   make(map[model.LobbyID]*model.Lobby),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savePlayerLocked(player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.nameIndex, player.Name)
	}
	delete(s.players, id)
	return nil
}

// Location operations

func (s *Storage) SaveLocation(ctx context.Context, location *model.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocationLocked(location)
	return nil
}

func (s *Storage) GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	location, ok := s.locations[id]
	if !ok {
		return nil, model.ErrLocationNotFound
	}
	copied := *location
	copied.Occupants = append([]model.PlayerID(nil), location.Occupants...)
	return &copied, nil
}

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLobbyLocked(lobby)
	return nil
}

func (s *Storage) GetLobby(ctx context.Context, id model.LobbyID) (*model.Lobby, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, ok := s.lobbies[id]
	if !ok {
		return nil, model.ErrLobbyNotFound
	}
	copied := *lobby
	copied.Members = append([]model.PlayerID(nil), lobby.Members...)
	return &copied, nil
}

func (s *Storage) DeleteLobby(ctx context.Context, id model.LobbyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, id)
	return nil
}

// SaveAtomic applies the whole batch under a single lock acquisition
func (s *Storage) SaveAtomic(ctx context.Context, batch storage.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, player := range batch.Players {
		s.savePlayerLocked(player)
	}
	for _, location := range batch.Locations {
		s.saveLocationLocked(location)
	}
	for _, lobby := range batch.Lobbies {
		s.saveLobbyLocked(lobby)
	}
	for _, id := range batch.DeleteLobbies {
		delete(s.lobbies, id)
	}
	return nil
}

// Stored values are copies so callers cannot mutate state behind the lock.

func (s *Storage) savePlayerLocked(player *model.Player) {
	copied := *player
	s.players[player.ID] = &copied
	s.nameIndex[player.Name] = player.ID
}

func (s *Storage) saveLocationLocked(location *model.Location) {
	copied := *location
	copied.Occupants = append([]model.PlayerID(nil), location.Occupants...)
	s.locations[location.ID] = &copied
}

func (s *Storage) saveLobbyLocked(lobby *model.Lobby) {
	copied := *lobby
	copied.Members = append([]model.PlayerID(nil), lobby.Members...)
	s.lobbies[lobby.ID] = &copied
}
