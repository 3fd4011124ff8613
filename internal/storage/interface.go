package storage

import (
	"context"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
)

// Storage defines the interface for data persistence.
//
// SaveAtomic is the commit point for every multi-entity state transition:
// either the whole batch becomes visible or none of it does. Backends
// implement it with a single lock (memory), a pipeline (redis), or a
// transaction (sqlite).
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Location operations
	SaveLocation(ctx context.Context, location *model.Location) error
	GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error)

	// Lobby operations
	SaveLobby(ctx context.Context, lobby *model.Lobby) error
	GetLobby(ctx context.Context, id model.LobbyID) (*model.Lobby, error)
	DeleteLobby(ctx context.Context, id model.LobbyID) error

	// SaveAtomic persists the given entities as one unit. A nil lobby slice
	// (or any nil slice) is allowed; deleteLobbies removes lobbies in the
	// same unit, used by lobby deletion.
	SaveAtomic(ctx context.Context, batch Batch) error
}

// Batch groups entities to be persisted in one atomic unit
type Batch struct {
	Players       []*model.Player
	Locations     []*model.Location
	Lobbies       []*model.Lobby
	DeleteLobbies []model.LobbyID
}

// IsEmpty reports whether the batch contains no work
func (b Batch) IsEmpty() bool {
	return len(b.Players) == 0 && len(b.Locations) == 0 &&
		len(b.Lobbies) == 0 && len(b.DeleteLobbies) == 0
}
