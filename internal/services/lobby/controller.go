// Package lobby implements lobby lifecycle: creation with its home and
// store locations and the store clerk NPC, membership, and owner-only
// deletion that releases every member back out of the lobby.
package lobby

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/clock"
	"github.com/Ed1196/Dawn-REST-API/internal/lock"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Controller handles lobby lifecycle and membership
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	locks *lock.KeyedMutex
}

// NewController creates a lobby controller
func NewController(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		logger:  logger,
		locks:   lock.NewKeyedMutex(),
	}
}

// Get fetches a lobby by ID
func (c *Controller) Get(ctx context.Context, id model.LobbyID) (*model.Lobby, error) {
	return c.storage.GetLobby(ctx, id)
}

// Members resolves the lobby's member references into player records, in
// membership order.
func (c *Controller) Members(ctx context.Context, l *model.Lobby) ([]*model.Player, error) {
	members := make([]*model.Player, 0, len(l.Members))
	for _, id := range l.Members {
		p, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, p)
	}
	return members, nil
}

// Create opens a new lobby owned by the player. Creation also builds the
// owner's home location, the store location, and the store clerk NPC, and
// places the owner at home. A player can belong to at most one lobby.
func (c *Controller) Create(ctx context.Context, ownerID model.PlayerID) (*model.Lobby, error) {
	unlock := c.locks.Lock(string(ownerID))
	defer unlock()

	owner, err := c.storage.GetPlayer(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if owner.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if owner.InLobby() {
		return nil, model.ErrAlreadyInLobby
	}

	now := c.clock.Now()
	lobbyID := model.LobbyID(uuid.NewString())

	home := &model.Location{
		ID:        model.LocationID(uuid.NewString()),
		Name:      model.LocationNameHome,
		Owner:     owner.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	store := &model.Location{
		ID:        model.LocationID(uuid.NewString()),
		Name:      model.LocationNameStore,
		Owner:     owner.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	clerk, err := newClerk(owner.Name, lobbyID, store.ID, now)
	if err != nil {
		return nil, err
	}
	store.AddOccupant(clerk.ID)

	lobby := &model.Lobby{
		ID:        lobbyID,
		Owner:     owner.Name,
		ClerkID:   clerk.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	lobby.AddMember(owner.ID)

	owner.CurrentLobby = lobby.ID
	owner.HomeID = home.ID
	owner.LocationID = home.ID
	owner.UpdatedAt = now
	home.AddOccupant(owner.ID)

	if err := c.storage.SaveAtomic(ctx, storage.Batch{
		Players:   []*model.Player{owner, clerk},
		Locations: []*model.Location{home, store},
		Lobbies:   []*model.Lobby{lobby},
	}); err != nil {
		return nil, err
	}

	c.logger.Info("lobby created",
		slog.String("lobby", string(lobby.ID)),
		slog.String("owner", owner.Name))

	return lobby, nil
}

// Join adds the player to an existing lobby. Joining builds the player's
// own home location inside the lobby's world and places the player there.
func (c *Controller) Join(ctx context.Context, playerID model.PlayerID, lobbyID model.LobbyID) (*model.Lobby, error) {
	unlock := c.locks.Lock(string(playerID), string(lobbyID))
	defer unlock()

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if player.CurrentLobby == lobbyID {
		return nil, model.ErrAlreadyInLobby
	}
	if player.InLobby() {
		return nil, model.ErrInDifferentLobby
	}

	lobby, err := c.storage.GetLobby(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	if lobby.IsFull() {
		return nil, model.ErrLobbyFull
	}

	now := c.clock.Now()

	home := &model.Location{
		ID:        model.LocationID(uuid.NewString()),
		Name:      model.LocationNameHome,
		Owner:     player.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	home.AddOccupant(player.ID)

	lobby.AddMember(player.ID)
	lobby.UpdatedAt = now

	player.CurrentLobby = lobby.ID
	player.HomeID = home.ID
	player.LocationID = home.ID
	player.UpdatedAt = now

	if err := c.storage.SaveAtomic(ctx, storage.Batch{
		Players:   []*model.Player{player},
		Locations: []*model.Location{home},
		Lobbies:   []*model.Lobby{lobby},
	}); err != nil {
		return nil, err
	}

	c.logger.Info("player joined lobby",
		slog.String("lobby", string(lobby.ID)),
		slog.String("player", player.Name))

	return lobby, nil
}

// Delete removes a lobby. Only the owner may delete it; every member and
// the clerk NPC are released from the lobby with their location references
// cleared. Players are never hard-deleted.
func (c *Controller) Delete(ctx context.Context, callerID model.PlayerID, lobbyID model.LobbyID) error {
	lobby, err := c.storage.GetLobby(ctx, lobbyID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(lobby.Members)+2)
	keys = append(keys, string(lobbyID))
	for _, m := range lobby.Members {
		keys = append(keys, string(m))
	}
	if lobby.ClerkID != "" {
		keys = append(keys, string(lobby.ClerkID))
	}
	unlock := c.locks.Lock(keys...)
	defer unlock()

	// Re-fetch under the lock; membership may have changed.
	lobby, err = c.storage.GetLobby(ctx, lobbyID)
	if err != nil {
		return err
	}

	caller, err := c.storage.GetPlayer(ctx, callerID)
	if err != nil {
		return err
	}
	if lobby.Owner != caller.Name {
		return model.ErrNotLobbyOwner
	}

	now := c.clock.Now()
	batch := storage.Batch{
		DeleteLobbies: []model.LobbyID{lobby.ID},
	}

	released := lobby.Members
	if lobby.ClerkID != "" {
		released = append(released, lobby.ClerkID)
	}
	for _, memberID := range released {
		member, err := c.storage.GetPlayer(ctx, memberID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return err
		}
		member.CurrentLobby = ""
		member.HomeID = ""
		member.LocationID = ""
		member.UpdatedAt = now
		batch.Players = append(batch.Players, member)
	}

	if err := c.storage.SaveAtomic(ctx, batch); err != nil {
		return err
	}

	c.logger.Info("lobby deleted",
		slog.String("lobby", string(lobby.ID)),
		slog.String("owner", lobby.Owner))

	return nil
}

// newClerk builds the store clerk NPC for a lobby. The clerk takes the
// owner's name reversed, with a secret derived the same way.
func newClerk(ownerName string, lobbyID model.LobbyID, storeID model.LocationID, now time.Time) (*model.Player, error) {
	name := reverse(ownerName)
	hash, err := bcrypt.GenerateFromPassword([]byte(name), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.Player{
		ID:           model.PlayerID(uuid.NewString()),
		Name:         name,
		SecretKey:    string(hash),
		Role:         model.RoleNPC,
		Status:       model.StatusActive,
		HeldItem:     model.ItemNone,
		Strength:     model.DefaultStrength,
		Stamina:      model.DefaultStamina,
		CurrentLobby: lobbyID,
		LocationID:   storeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
