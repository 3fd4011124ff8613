package auth

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

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterCreatesPlayerWithDefaults() {
	session, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("Alice", session.PlayerName)

	p, err := s.storage.GetPlayerByName(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.RolePlayer, p.Role)
	s.Equal(model.StatusActive, p.Status)
	s.Equal(model.ItemNone, p.HeldItem)
	s.Equal(model.DefaultStrength, p.Strength)
	s.Equal(model.DefaultStamina, p.Stamina)
	s.False(p.InLobby())

	// The secret key is stored hashed
	s.NotEqual("hunter2", p.SecretKey)
	s.NotEmpty(p.SecretKey)
}

func (s *ServiceSuite) TestRegisterDuplicateNameRejected() {
	_, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "Alice", "other")
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *ServiceSuite) TestLoginWithCorrectSecret() {
	_, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)
	s.Equal("Alice", session.PlayerName)
}

func (s *ServiceSuite) TestLoginWithWrongSecret() {
	_, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "Alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownPlayer() {
	_, err := s.service.Login(s.ctx, "Nobody", "secret")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	session, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	got, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, got.PlayerID)
}

func (s *ServiceSuite) TestValidateSessionUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpires() {
	session, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	s.clock.Advance(31 * time.Minute)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestResolvePlayerSeesCurrentState() {
	session, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	// Mutate the stored player after login
	p, err := s.storage.GetPlayer(s.ctx, session.PlayerID)
	s.Require().NoError(err)
	p.Stamina = 42
	s.Require().NoError(s.storage.SavePlayer(s.ctx, p))

	resolved, err := s.service.ResolvePlayer(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(42, resolved.Stamina)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	old, err := s.service.Register(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	s.clock.Advance(20 * time.Minute)
	fresh, err := s.service.Login(s.ctx, "Alice", "hunter2")
	s.Require().NoError(err)

	s.clock.Advance(15 * time.Minute)
	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
