// Package player implements the player state machine: resting, training,
// waking up and confrontations. Every transition is validated against the
// player's current status and committed atomically.
package player

import (
	"context"
	"log/slog"

	"github.com/Ed1196/Dawn-REST-API/internal/combat"
	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/clock"
	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/random"
	"github.com/Ed1196/Dawn-REST-API/internal/lock"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Stat deltas applied by rest and training
const (
	SleepStaminaGain    = 10
	WorkoutStrengthGain = 10
	WorkoutStaminaCost  = 10
)

// AttackResult reports the outcome of a confrontation
type AttackResult struct {
	Attacker  string
	Defender  string
	Winner    string
	Loser     string
	PAttacker float64
	PDefender float64
}

// Controller drives player state transitions
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	locks *lock.KeyedMutex
}

// NewController creates a player controller
func NewController(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
		locks:   lock.NewKeyedMutex(),
	}
}

// Get fetches a player by name
func (c *Controller) Get(ctx context.Context, name string) (*model.Player, error) {
	return c.storage.GetPlayerByName(ctx, name)
}

// GetByID fetches a player by ID
func (c *Controller) GetByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// Sleep puts the player to sleep and restores stamina. Only an awake,
// living player may go to sleep; a sleeping player can do nothing but wake
// up.
func (c *Controller) Sleep(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := c.locks.Lock(string(id))
	defer unlock()

	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if player.Status == model.StatusSleep {
		return nil, model.ErrPlayerAsleep
	}

	player.Status = model.StatusSleep
	player.Stamina += SleepStaminaGain
	player.UpdatedAt = c.clock.Now()

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player sleeping",
		slog.String("player", player.Name),
		slog.Int("stamina", player.Stamina))

	return player, nil
}

// Workout trades stamina for strength. It requires an awake player with
// stamina left; a player who trains down to exactly zero stamina collapses
// into sleep. Attempting to train at zero stamina also forces sleep, and the
// request itself is rejected.
func (c *Controller) Workout(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := c.locks.Lock(string(id))
	defer unlock()

	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if player.Status == model.StatusSleep {
		return nil, model.ErrPlayerAsleep
	}

	if player.Stamina <= 0 {
		player.Status = model.StatusSleep
		player.UpdatedAt = c.clock.Now()
		if err := c.storage.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
		return nil, model.ErrExhausted
	}

	player.Strength += WorkoutStrengthGain
	player.Stamina -= WorkoutStaminaCost
	if player.Stamina <= 0 {
		player.Stamina = 0
		player.Status = model.StatusSleep
	}
	player.UpdatedAt = c.clock.Now()

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player trained",
		slog.String("player", player.Name),
		slog.Int("strength", player.Strength),
		slog.Int("stamina", player.Stamina))

	return player, nil
}

// Wakeup returns a sleeping player to the active state
func (c *Controller) Wakeup(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := c.locks.Lock(string(id))
	defer unlock()

	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if player.Status != model.StatusSleep {
		return nil, model.ErrPlayerNotAsleep
	}

	player.Status = model.StatusActive
	player.UpdatedAt = c.clock.Now()

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Attack resolves a confrontation between the attacker and the named target.
// The attacker must be awake and alive; the target must be alive. The loser
// dies and both records are committed together.
func (c *Controller) Attack(ctx context.Context, attackerID model.PlayerID, targetName string) (*AttackResult, error) {
	// Resolve the target name outside the lock to learn its ID, then lock
	// both players and re-fetch so the decision is made on current state.
	target, err := c.storage.GetPlayerByName(ctx, targetName)
	if err != nil {
		return nil, err
	}
	if target.ID == attackerID {
		return nil, model.ErrSelfConfrontation
	}

	unlock := c.locks.Lock(string(attackerID), string(target.ID))
	defer unlock()

	attacker, err := c.storage.GetPlayer(ctx, attackerID)
	if err != nil {
		return nil, err
	}
	target, err = c.storage.GetPlayer(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	if attacker.IsDead() {
		return nil, model.ErrPlayerDead
	}
	if attacker.Status == model.StatusSleep {
		return nil, model.ErrPlayerAsleep
	}
	if target.IsDead() {
		return nil, model.ErrTargetDead
	}

	pAttacker, pDefender := combat.ComputeWinProbabilities(attacker.CombatProfile(), target.CombatProfile())
	winner := combat.Sample(pAttacker, pDefender, attacker.Name, target.Name, c.random.Float64())

	loser := target
	if winner == target.Name {
		loser = attacker
	}
	loser.Status = model.StatusDead

	now := c.clock.Now()
	attacker.UpdatedAt = now
	target.UpdatedAt = now

	if err := c.storage.SaveAtomic(ctx, storage.Batch{
		Players: []*model.Player{attacker, target},
	}); err != nil {
		return nil, err
	}

	c.logger.Info("confrontation resolved",
		slog.String("attacker", attacker.Name),
		slog.String("defender", target.Name),
		slog.String("winner", winner),
		slog.Float64("p_attacker", pAttacker),
		slog.Float64("p_defender", pDefender))

	return &AttackResult{
		Attacker:  attacker.Name,
		Defender:  target.Name,
		Winner:    winner,
		Loser:     loser.Name,
		PAttacker: pAttacker,
		PDefender: pDefender,
	}, nil
}
