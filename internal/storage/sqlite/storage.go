// Package sqlite implements the storage interface on an embedded SQLite
// database via GORM, using the pure-Go glebarez driver so the binary stays
// cgo-free. Atomic batches map onto database transactions.
package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Config holds SQLite settings
type Config struct {
	// Path is the database file path; empty selects a shared in-memory DB
	Path string
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path: "data.db",
	}
}

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *gorm.DB
}

// New opens (or creates) the database and migrates the schema
func New(cfg Config) (*Storage, error) {
	dsn := cfg.Path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	return NewWithDB(db)
}

// NewWithDB wraps an existing GORM handle (for testing) and migrates the schema
func NewWithDB(db *gorm.DB) (*Storage, error) {
	if err := db.AutoMigrate(&playerRow{}, &locationRow{}, &lobbyRow{}); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close releases the underlying connection pool
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Row types. Member/occupant sets are serialised as JSON text columns.

type playerRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex"`
	SecretKey    string
	Role         string
	Status       string
	HeldItem     string
	Strength     int
	Stamina      int
	CurrentLobby string
	HomeID       string
	LocationID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (playerRow) TableName() string { return "players" }

type locationRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Owner        string
	NumOfPlayers int
	Occupants    []string `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (locationRow) TableName() string { return "locations" }

type lobbyRow struct {
	ID        string `gorm:"primaryKey"`
	Owner     string
	Size      int
	Members   []string `gorm:"serializer:json"`
	ClerkID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (lobbyRow) TableName() string { return "lobbies" }

// Conversions

func toPlayerRow(p *model.Player) *playerRow {
	return &playerRow{
		ID:           string(p.ID),
		Name:         p.Name,
		SecretKey:    p.SecretKey,
		Role:         string(p.Role),
		Status:       string(p.Status),
		HeldItem:     p.HeldItem,
		Strength:     p.Strength,
		Stamina:      p.Stamina,
		CurrentLobby: string(p.CurrentLobby),
		HomeID:       string(p.HomeID),
		LocationID:   string(p.LocationID),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *playerRow) toModel() *model.Player {
	return &model.Player{
		ID:           model.PlayerID(r.ID),
		Name:         r.Name,
		SecretKey:    r.SecretKey,
		Role:         model.Role(r.Role),
		Status:       model.Status(r.Status),
		HeldItem:     r.HeldItem,
		Strength:     r.Strength,
		Stamina:      r.Stamina,
		CurrentLobby: model.LobbyID(r.CurrentLobby),
		HomeID:       model.LocationID(r.HomeID),
		LocationID:   model.LocationID(r.LocationID),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toLocationRow(l *model.Location) *locationRow {
	occupants := make([]string, len(l.Occupants))
	for i, id := range l.Occupants {
		occupants[i] = string(id)
	}
	return &locationRow{
		ID:           string(l.ID),
		Name:         l.Name,
		Owner:        l.Owner,
		NumOfPlayers: l.NumOfPlayers,
		Occupants:    occupants,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (r *locationRow) toModel() *model.Location {
	occupants := make([]model.PlayerID, len(r.Occupants))
	for i, id := range r.Occupants {
		occupants[i] = model.PlayerID(id)
	}
	return &model.Location{
		ID:           model.LocationID(r.ID),
		Name:         r.Name,
		Owner:        r.Owner,
		NumOfPlayers: r.NumOfPlayers,
		Occupants:    occupants,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toLobbyRow(l *model.Lobby) *lobbyRow {
	members := make([]string, len(l.Members))
	for i, id := range l.Members {
		members[i] = string(id)
	}
	return &lobbyRow{
		ID:        string(l.ID),
		Owner:     l.Owner,
		Size:      l.Size,
		Members:   members,
		ClerkID:   string(l.ClerkID),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r *lobbyRow) toModel() *model.Lobby {
	members := make([]model.PlayerID, len(r.Members))
	for i, id := range r.Members {
		members[i] = model.PlayerID(id)
	}
	return &model.Lobby{
		ID:        model.LobbyID(r.ID),
		Owner:     r.Owner,
		Size:      r.Size,
		Members:   members,
		ClerkID:   model.PlayerID(r.ClerkID),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	return s.db.WithContext(ctx).Save(toPlayerRow(player)).Error
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var row playerRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	var row playerRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.db.WithContext(ctx).Delete(&playerRow{}, "id = ?", string(id)).Error
}

// Location operations

func (s *Storage) SaveLocation(ctx context.Context, location *model.Location) error {
	return s.db.WithContext(ctx).Save(toLocationRow(location)).Error
}

func (s *Storage) GetLocation(ctx context.Context, id model.LocationID) (*model.Location, error) {
	var row locationRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLocationNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	return s.db.WithContext(ctx).Save(toLobbyRow(lobby)).Error
}

func (s *Storage) GetLobby(ctx context.Context, id model.LobbyID) (*model.Lobby, error) {
	var row lobbyRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLobbyNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *Storage) DeleteLobby(ctx context.Context, id model.LobbyID) error {
	return s.db.WithContext(ctx).Delete(&lobbyRow{}, "id = ?", string(id)).Error
}

// SaveAtomic runs the whole batch inside one transaction
func (s *Storage) SaveAtomic(ctx context.Context, batch storage.Batch) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, player := range batch.Players {
			if err := tx.Save(toPlayerRow(player)).Error; err != nil {
				return err
			}
		}
		for _, location := range batch.Locations {
			if err := tx.Save(toLocationRow(location)).Error; err != nil {
				return err
			}
		}
		for _, lobby := range batch.Lobbies {
			if err := tx.Save(toLobbyRow(lobby)).Error; err != nil {
				return err
			}
		}
		for _, id := range batch.DeleteLobbies {
			if err := tx.Delete(&lobbyRow{}, "id = ?", string(id)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
