package model

import "errors"

// Common errors used across the application. Each maps onto one failure
// kind: validation, conflict, not-found, state violation, or persistence.
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player name already registered")

	// State machine violations
	ErrPlayerDead        = errors.New("player is dead")
	ErrPlayerAsleep      = errors.New("player is asleep")
	ErrPlayerNotAsleep   = errors.New("player is not asleep")
	ErrTargetDead        = errors.New("target already dead")
	ErrExhausted         = errors.New("not enough stamina")
	ErrSelfConfrontation = errors.New("cannot confront yourself")

	// Lobby errors
	ErrLobbyNotFound    = errors.New("lobby not found")
	ErrLobbyFull        = errors.New("lobby is full")
	ErrAlreadyInLobby   = errors.New("player is already in this lobby")
	ErrInDifferentLobby = errors.New("player is in a different lobby")
	ErrNotLobbyOwner    = errors.New("player is not the lobby owner")

	// Location errors
	ErrLocationNotFound = errors.New("location not found")
	ErrAlreadyThere     = errors.New("player is already at that location")
)
