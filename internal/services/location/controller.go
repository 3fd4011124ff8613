// Package location implements location lookup and player movement between
// locations. Movement updates the player and both occupancy records in one
// atomic batch so counts never drift from the occupant sets.
package location

import (
	"context"
	"log/slog"

	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/clock"
	"github.com/Ed1196/Dawn-REST-API/internal/lock"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// MoveStaminaCost is the stamina price of travelling between locations
const MoveStaminaCost = 10

// Controller handles location queries and movement
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	locks *lock.KeyedMutex
}

// NewController creates a location controller
func NewController(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		logger:  logger,
		locks:   lock.NewKeyedMutex(),
	}
}

// Get fetches a location by ID
func (c *Controller) Get(ctx context.Context, id model.LocationID) (*model.Location, error) {
	return c.storage.GetLocation(ctx, id)
}

// Occupants resolves the location's occupant references into player
// records.
func (c *Controller) Occupants(ctx context.Context, l *model.Location) ([]*model.Player, error) {
	occupants := make([]*model.Player, 0, len(l.Occupants))
	for _, id := range l.Occupants {
		p, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		occupants = append(occupants, p)
	}
	return occupants, nil
}

// Move relocates the player to the given location. The player must be awake
// and alive, must not already be there, and must have the stamina for the
// trip. Arriving with exactly zero stamina puts the player to sleep.
func (c *Controller) Move(ctx context.Context, playerID model.PlayerID, to model.LocationID) (*model.Player, error) {
	unlock := c.locks.Lock(string(playerID))
	defer unlock()

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if player.Status == model.StatusSleep {
		return nil, model.ErrPlayerAsleep
	}
	if player.LocationID == to {
		return nil, model.ErrAlreadyThere
	}
	if player.Stamina < MoveStaminaCost {
		return nil, model.ErrExhausted
	}

	dest, err := c.storage.GetLocation(ctx, to)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	batch := storage.Batch{}

	if player.LocationID != "" {
		from, err := c.storage.GetLocation(ctx, player.LocationID)
		if err != nil {
			return nil, err
		}
		from.RemoveOccupant(player.ID)
		from.UpdatedAt = now
		batch.Locations = append(batch.Locations, from)
	}

	dest.AddOccupant(player.ID)
	dest.UpdatedAt = now
	batch.Locations = append(batch.Locations, dest)

	player.LocationID = dest.ID
	player.Stamina -= MoveStaminaCost
	if player.Stamina <= 0 {
		player.Stamina = 0
		player.Status = model.StatusSleep
	}
	player.UpdatedAt = now
	batch.Players = append(batch.Players, player)

	if err := c.storage.SaveAtomic(ctx, batch); err != nil {
		return nil, err
	}

	c.logger.Info("player moved",
		slog.String("player", player.Name),
		slog.String("location", string(dest.ID)),
		slog.Int("stamina", player.Stamina))

	return player, nil
}
