package lobby

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/mocks"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage/memory"
	"github.com/Ed1196/Dawn-REST-API/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) savePlayer(id, name string) *model.Player {
	p := &model.Player{
		ID:        model.PlayerID(id),
		Name:      name,
		Role:      model.RolePlayer,
		Status:    model.StatusActive,
		HeldItem:  model.ItemNone,
		Strength:  model.DefaultStrength,
		Stamina:   model.DefaultStamina,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))
	return p
}

// Create tests

func (s *ControllerSuite) TestCreateBuildsLobbyWorld() {
	s.savePlayer("p1", "Alice")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)

	s.Equal("Alice", lobby.Owner)
	s.Equal(1, lobby.Size)
	s.Require().Len(lobby.Members, 1)
	s.Equal(model.PlayerID("p1"), lobby.Members[0])

	// The owner is placed at a new home location
	owner, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(lobby.ID, owner.CurrentLobby)
	s.NotEmpty(owner.HomeID)
	s.Equal(owner.HomeID, owner.LocationID)

	home, err := s.storage.GetLocation(s.ctx, owner.HomeID)
	s.Require().NoError(err)
	s.Equal(model.LocationNameHome, home.Name)
	s.Equal("Alice", home.Owner)
	s.True(home.HasOccupant("p1"))
	s.Equal(1, home.NumOfPlayers)
}

func (s *ControllerSuite) TestCreateSpawnsStoreClerk() {
	s.savePlayer("p1", "Alice")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().NotEmpty(lobby.ClerkID)

	clerk, err := s.storage.GetPlayer(s.ctx, lobby.ClerkID)
	s.Require().NoError(err)
	s.Equal("ecilA", clerk.Name)
	s.Equal(model.RoleNPC, clerk.Role)
	s.Equal(lobby.ID, clerk.CurrentLobby)

	store, err := s.storage.GetLocation(s.ctx, clerk.LocationID)
	s.Require().NoError(err)
	s.Equal(model.LocationNameStore, store.Name)
	s.True(store.HasOccupant(clerk.ID))

	// The clerk does not count as a lobby member
	s.False(lobby.HasMember(clerk.ID))
}

func (s *ControllerSuite) TestCreateRejectedWhenAlreadyInLobby() {
	s.savePlayer("p1", "Alice")

	_, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.controller.Create(s.ctx, "p1")
	s.ErrorIs(err, model.ErrAlreadyInLobby)
}

func (s *ControllerSuite) TestCreateRejectedWhenDead() {
	p := s.savePlayer("p1", "Alice")
	p.Status = model.StatusDead
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))

	_, err := s.controller.Create(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerDead)
}

// Join tests

func (s *ControllerSuite) TestJoinAddsMemberWithOwnHome() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)

	joined, err := s.controller.Join(s.ctx, "p2", lobby.ID)
	s.Require().NoError(err)

	s.Equal(2, joined.Size)
	s.True(joined.HasMember("p2"))

	bob, err := s.storage.GetPlayer(s.ctx, "p2")
	s.Require().NoError(err)
	s.Equal(lobby.ID, bob.CurrentLobby)
	s.NotEmpty(bob.HomeID)

	home, err := s.storage.GetLocation(s.ctx, bob.HomeID)
	s.Require().NoError(err)
	s.Equal("Bob", home.Owner)
	s.True(home.HasOccupant("p2"))

	// Joining does not reuse the owner's home
	alice, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.NotEqual(alice.HomeID, bob.HomeID)
}

func (s *ControllerSuite) TestJoinRejectedWhenFull() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")
	s.savePlayer("p3", "Carol")
	s.savePlayer("p4", "Dave")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.controller.Join(s.ctx, "p2", lobby.ID)
	s.Require().NoError(err)
	_, err = s.controller.Join(s.ctx, "p3", lobby.ID)
	s.Require().NoError(err)

	_, err = s.controller.Join(s.ctx, "p4", lobby.ID)
	s.ErrorIs(err, model.ErrLobbyFull)
}

func (s *ControllerSuite) TestJoinRejectedWhenAlreadyMember() {
	s.savePlayer("p1", "Alice")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.controller.Join(s.ctx, "p1", lobby.ID)
	s.ErrorIs(err, model.ErrAlreadyInLobby)
}

func (s *ControllerSuite) TestJoinRejectedWhenInDifferentLobby() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")

	_, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)
	other, err := s.controller.Create(s.ctx, "p2")
	s.Require().NoError(err)

	alice, err := s.storage.GetPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.NotEqual(other.ID, alice.CurrentLobby)

	_, err = s.controller.Join(s.ctx, "p1", other.ID)
	s.ErrorIs(err, model.ErrInDifferentLobby)
}

func (s *ControllerSuite) TestJoinUnknownLobby() {
	s.savePlayer("p1", "Alice")

	_, err := s.controller.Join(s.ctx, "p1", "nope")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

// Delete tests

func (s *ControllerSuite) TestDeleteReleasesMembers() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)
	_, err = s.controller.Join(s.ctx, "p2", lobby.ID)
	s.Require().NoError(err)

	clerkID := lobby.ClerkID

	s.Require().NoError(s.controller.Delete(s.ctx, "p1", lobby.ID))

	_, err = s.storage.GetLobby(s.ctx, lobby.ID)
	s.ErrorIs(err, model.ErrLobbyNotFound)

	for _, id := range []model.PlayerID{"p1", "p2"} {
		p, err := s.storage.GetPlayer(s.ctx, id)
		s.Require().NoError(err)
		s.False(p.InLobby())
		s.Empty(p.HomeID)
		s.Empty(p.LocationID)
	}

	// The clerk stays around but loses its lobby and store references
	clerk, err := s.storage.GetPlayer(s.ctx, clerkID)
	s.Require().NoError(err)
	s.False(clerk.InLobby())
	s.Empty(clerk.LocationID)
}

func (s *ControllerSuite) TestDeleteRejectedForNonOwner() {
	s.savePlayer("p1", "Alice")
	s.savePlayer("p2", "Bob")

	lobby, err := s.controller.Create(s.ctx, "p1")
	s.Require().NoError(err)
	_, err = s.controller.Join(s.ctx, "p2", lobby.ID)
	s.Require().NoError(err)

	err = s.controller.Delete(s.ctx, "p2", lobby.ID)
	s.ErrorIs(err, model.ErrNotLobbyOwner)

	_, err = s.storage.GetLobby(s.ctx, lobby.ID)
	s.NoError(err)
}

func (s *ControllerSuite) TestDeleteUnknownLobby() {
	s.savePlayer("p1", "Alice")

	err := s.controller.Delete(s.ctx, "p1", "nope")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}
