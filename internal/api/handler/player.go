package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ed1196/Dawn-REST-API/internal/api/middleware"
	"github.com/Ed1196/Dawn-REST-API/internal/api/request"
	"github.com/Ed1196/Dawn-REST-API/internal/api/response"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
	"github.com/Ed1196/Dawn-REST-API/internal/services/location"
	"github.com/Ed1196/Dawn-REST-API/internal/services/player"
)

// PlayerHandler handles registration, login, player lookup and the
// action endpoints on the authenticated player.
type PlayerHandler struct {
	authService *auth.Service
	players     *player.Controller
	locations   *location.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service, players *player.Controller, locations *location.Controller) *PlayerHandler {
	return &PlayerHandler{
		authService: authService,
		players:     players,
		locations:   locations,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerName == "" {
		WriteError(w, NewInvalidRequestError("playerName is required"))
		return
	}
	if req.SecretKey == "" {
		WriteError(w, NewInvalidRequestError("secretKey is required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.PlayerName, req.SecretKey)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.players.GetByID(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFor(session, p))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerName == "" {
		WriteError(w, NewInvalidRequestError("playerName is required"))
		return
	}
	if req.SecretKey == "" {
		WriteError(w, NewInvalidRequestError("secretKey is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.PlayerName, req.SecretKey)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.players.GetByID(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFor(session, p))
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	p, err := h.players.GetByID(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Get handles GET /api/v1/players/{name}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	p, err := h.players.Get(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Sleep handles POST /api/v1/players/me/sleep
func (h *PlayerHandler) Sleep(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	p, err := h.players.Sleep(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Workout handles POST /api/v1/players/me/workout
func (h *PlayerHandler) Workout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	p, err := h.players.Workout(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Wakeup handles POST /api/v1/players/me/wakeup
func (h *PlayerHandler) Wakeup(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	p, err := h.players.Wakeup(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Attack handles POST /api/v1/players/me/attack
func (h *PlayerHandler) Attack(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.AttackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Target == "" {
		WriteError(w, NewInvalidRequestError("target is required"))
		return
	}

	result, err := h.players.Attack(r.Context(), session.PlayerID, req.Target)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AttackResponseFromResult(result))
}

// Move handles POST /api/v1/players/me/move
func (h *PlayerHandler) Move(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.LocationID == "" {
		WriteError(w, NewInvalidRequestError("locationId is required"))
		return
	}

	p, err := h.locations.Move(r.Context(), session.PlayerID, model.LocationID(req.LocationID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}
