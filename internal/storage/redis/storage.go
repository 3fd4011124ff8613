package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON values; player names are resolved through an
// index key. Atomic batches go through a single pipeline.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline keeps the value and the name index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.Set(ctx, playerNameIndexKey(player.Name), string(player.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	idStr, err := s.client.Get(ctx, playerNameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(idStr))
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, playerNameIndexKey(player.Name))
	_, err = pipe.Exec(ctx)
	return err
}

// Location operations

func (s *Storage) SaveLocation(ctx context.Context, location *model.Location) error {
	data, err := json.Marshal(location)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, locationKey(location.ID), data, 0).Err()
}

func (s *Storage) GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error) {
	data, err := s.client.Get(ctx, locationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLocationNotFound
		}
		return nil, err
	}

	var location model.Location
	if err := json.Unmarshal(data, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	data, err := json.Marshal(lobby)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, lobbyKey(lobby.ID), data, 0).Err()
}

func (s *Storage) GetLobby(ctx context.Context, id model.LobbyID) (*model.Lobby, error) {
	data, err := s.client.Get(ctx, lobbyKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLobbyNotFound
		}
		return nil, err
	}

	var lobby model.Lobby
	if err := json.Unmarshal(data, &lobby); err != nil {
		return nil, err
	}
	return &lobby, nil
}

func (s *Storage) DeleteLobby(ctx context.Context, id model.LobbyID) error {
	return s.client.Del(ctx, lobbyKey(id)).Err()
}

// SaveAtomic serialises everything first so marshal errors surface before
// any write, then applies the whole batch in one pipeline.
func (s *Storage) SaveAtomic(ctx context.Context, batch storage.Batch) error {
	type entry struct {
		key  string
		data []byte
	}
	entries := make([]entry, 0, len(batch.Players)*2+len(batch.Locations)+len(batch.Lobbies))

	for _, player := range batch.Players {
		data, err := json.Marshal(player)
		if err != nil {
			return err
		}
		entries = append(entries,
			entry{playerKey(player.ID), data},
			entry{playerNameIndexKey(player.Name), []byte(player.ID)},
		)
	}
	for _, location := range batch.Locations {
		data, err := json.Marshal(location)
		if err != nil {
			return err
		}
		entries = append(entries, entry{locationKey(location.ID), data})
	}
	for _, lobby := range batch.Lobbies {
		data, err := json.Marshal(lobby)
		if err != nil {
			return err
		}
		entries = append(entries, entry{lobbyKey(lobby.ID), data})
	}

	pipe := s.client.TxPipeline()
	for _, e := range entries {
		pipe.Set(ctx, e.key, e.data, 0)
	}
	for _, id := range batch.DeleteLobbies {
		pipe.Del(ctx, lobbyKey(id))
	}
	_, err := pipe.Exec(ctx)
	return err
}
