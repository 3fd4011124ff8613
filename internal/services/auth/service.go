package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ed1196/Dawn-REST-API/internal/dependencies/clock"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Session represents an authenticated bearer-token session
type Session struct {
	Token      string
	PlayerID   model.PlayerID
	PlayerName string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Service handles registration, login and session management. Sessions are
// opaque bearer tokens held in memory; the player record itself always
// comes from storage so callers see current game state.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 30 * time.Minute,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a new player with default stats and opens a session.
// Player names are unique; registering a taken name is a conflict.
func (s *Service) Register(ctx context.Context, name, secretKey string) (*Session, error) {
	_, err := s.storage.GetPlayerByName(ctx, name)
	if err == nil {
		return nil, model.ErrPlayerExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secretKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		Name:      name,
		SecretKey: string(hash),
		Role:      model.RolePlayer,
		Status:    model.StatusActive,
		HeldItem:  model.ItemNone,
		Strength:  model.DefaultStrength,
		Stamina:   model.DefaultStamina,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player", name))

	return s.createSession(player), nil
}

// Login authenticates a player by name and secret key and opens a session
func (s *Service) Login(ctx context.Context, name, secretKey string) (*Session, error) {
	player, err := s.storage.GetPlayerByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.SecretKey), []byte(secretKey)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(player), nil
}

// ValidateSession checks a bearer token and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// ResolvePlayer resolves a bearer token to the current player record
func (s *Service) ResolvePlayer(ctx context.Context, token string) (*model.Player, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return s.storage.GetPlayer(ctx, session.PlayerID)
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// createSession opens a new session for a player
func (s *Service) createSession(player *model.Player) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:      generateToken(),
		PlayerID:   player.ID,
		PlayerName: player.Name,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// generateToken produces an opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
