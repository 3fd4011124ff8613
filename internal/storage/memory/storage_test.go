package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newPlayer(id, name string) *model.Player {
	return &model.Player{
		ID:        model.PlayerID(id),
		Name:      name,
		Role:      model.RolePlayer,
		Status:    model.StatusActive,
		HeldItem:  model.ItemNone,
		Strength:  model.DefaultStrength,
		Stamina:   model.DefaultStamina,
		CreatedAt: time.Now(),
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	p := s.newPlayer("p1", "Alice")
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))

	got, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal("Alice", got.Name)
	s.Equal(model.DefaultStrength, got.Strength)
}

func (s *StorageSuite) TestGetPlayerByName() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("p1", "Alice")))

	got, err := s.storage.GetPlayerByName(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), got.ID)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nope")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.storage.GetPlayerByName(s.ctx, "Nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestStoredPlayerIsACopy() {
	p := s.newPlayer("p1", "Alice")
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))

	// Mutating either the original or a fetched copy must not leak into
	// the stored record.
	p.Stamina = 1

	got, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.DefaultStamina, got.Stamina)

	got.Strength = 1
	again, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.DefaultStrength, again.Strength)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, s.newPlayer("p1", "Alice")))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "p1"))

	_, err := s.storage.GetPlayer(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.storage.GetPlayerByName(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Location tests

func (s *StorageSuite) TestSaveAndGetLocation() {
	l := &model.Location{ID: "loc1", Name: model.LocationNameHome, Owner: "Alice"}
	l.AddOccupant("p1")
	s.Require().NoError(s.storage.SaveLocation(s.ctx, l))

	got, err := s.storage.GetLocation(s.ctx, "loc1")
	s.Require().NoError(err)
	s.Equal(model.LocationNameHome, got.Name)
	s.Equal(1, got.NumOfPlayers)
	s.True(got.HasOccupant("p1"))
}

func (s *StorageSuite) TestGetLocationNotFound() {
	_, err := s.storage.GetLocation(s.ctx, "nope")
	s.ErrorIs(err, model.ErrLocationNotFound)
}

// Lobby tests

func (s *StorageSuite) TestSaveAndGetLobby() {
	l := &model.Lobby{ID: "lob1", Owner: "Alice", ClerkID: "npc1"}
	l.AddMember("p1")
	s.Require().NoError(s.storage.SaveLobby(s.ctx, l))

	got, err := s.storage.GetLobby(s.ctx, "lob1")
	s.Require().NoError(err)
	s.Equal("Alice", got.Owner)
	s.Equal(1, got.Size)
	s.Equal(model.PlayerID("npc1"), got.ClerkID)
}

func (s *StorageSuite) TestDeleteLobby() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{ID: "lob1", Owner: "Alice"}))
	s.Require().NoError(s.storage.DeleteLobby(s.ctx, "lob1"))

	_, err := s.storage.GetLobby(s.ctx, "lob1")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

// SaveAtomic tests

func (s *StorageSuite) TestSaveAtomicPersistsWholeBatch() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{ID: "old", Owner: "Alice"}))

	batch := storage.Batch{
		Players:       []*model.Player{s.newPlayer("p1", "Alice"), s.newPlayer("p2", "Bob")},
		Locations:     []*model.Location{{ID: "loc1", Name: model.LocationNameHome}},
		Lobbies:       []*model.Lobby{{ID: "lob1", Owner: "Alice"}},
		DeleteLobbies: []model.LobbyID{"old"},
	}
	s.Require().NoError(s.storage.SaveAtomic(s.ctx, batch))

	_, err := s.storage.GetPlayer(s.ctx, "p1")
	s.NoError(err)
	_, err = s.storage.GetPlayerByName(s.ctx, "Bob")
	s.NoError(err)
	_, err = s.storage.GetLocation(s.ctx, "loc1")
	s.NoError(err)
	_, err = s.storage.GetLobby(s.ctx, "lob1")
	s.NoError(err)
	_, err = s.storage.GetLobby(s.ctx, "old")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestSaveAtomicEmptyBatch() {
	s.NoError(s.storage.SaveAtomic(s.ctx, storage.Batch{}))
}
