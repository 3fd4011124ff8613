// Package apierr maps domain errors onto HTTP status codes and the JSON
// error envelope used by every endpoint.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodePlayerExists       = "PLAYER_EXISTS"
	CodePlayerDead         = "PLAYER_DEAD"
	CodePlayerAsleep       = "PLAYER_ASLEEP"
	CodePlayerNotAsleep    = "PLAYER_NOT_ASLEEP"
	CodeTargetDead         = "TARGET_DEAD"
	CodeExhausted          = "EXHAUSTED"
	CodeSelfConfrontation  = "SELF_CONFRONTATION"
	CodeLobbyNotFound      = "LOBBY_NOT_FOUND"
	CodeLobbyFull          = "LOBBY_FULL"
	CodeAlreadyInLobby     = "ALREADY_IN_LOBBY"
	CodeInDifferentLobby   = "IN_DIFFERENT_LOBBY"
	CodeNotLobbyOwner      = "NOT_LOBBY_OWNER"
	CodeLocationNotFound   = "LOCATION_NOT_FOUND"
	CodeAlreadyThere       = "ALREADY_THERE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player name already taken"}}
	case errors.Is(err, model.ErrPlayerDead):
		return &httpError{http.StatusConflict, APIError{CodePlayerDead, "Player is dead"}}
	case errors.Is(err, model.ErrPlayerAsleep):
		return &httpError{http.StatusConflict, APIError{CodePlayerAsleep, "Player is asleep"}}
	case errors.Is(err, model.ErrPlayerNotAsleep):
		return &httpError{http.StatusConflict, APIError{CodePlayerNotAsleep, "Player is not asleep"}}
	case errors.Is(err, model.ErrTargetDead):
		return &httpError{http.StatusConflict, APIError{CodeTargetDead, "Target is already dead"}}
	case errors.Is(err, model.ErrExhausted):
		return &httpError{http.StatusConflict, APIError{CodeExhausted, "Not enough stamina"}}
	case errors.Is(err, model.ErrSelfConfrontation):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfConfrontation, "Cannot attack yourself"}}
	case errors.Is(err, model.ErrLobbyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLobbyNotFound, "Lobby not found"}}
	case errors.Is(err, model.ErrLobbyFull):
		return &httpError{http.StatusConflict, APIError{CodeLobbyFull, "Lobby is full"}}
	case errors.Is(err, model.ErrAlreadyInLobby):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInLobby, "Already in a lobby"}}
	case errors.Is(err, model.ErrInDifferentLobby):
		return &httpError{http.StatusConflict, APIError{CodeInDifferentLobby, "Already in a different lobby"}}
	case errors.Is(err, model.ErrNotLobbyOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotLobbyOwner, "Only the lobby owner can perform this action"}}
	case errors.Is(err, model.ErrLocationNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLocationNotFound, "Location not found"}}
	case errors.Is(err, model.ErrAlreadyThere):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyThere, "Already at this location"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid player name or secret key"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
