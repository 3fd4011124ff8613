package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ed1196/Dawn-REST-API/internal/api/middleware"
	"github.com/Ed1196/Dawn-REST-API/internal/api/response"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/services/lobby"
)

// LobbyHandler handles lobby-related endpoints
type LobbyHandler struct {
	lobbies *lobby.Controller
}

// NewLobbyHandler creates a new lobby handler
func NewLobbyHandler(lobbies *lobby.Controller) *LobbyHandler {
	return &LobbyHandler{
		lobbies: lobbies,
	}
}

// Create handles POST /api/v1/lobbies
func (h *LobbyHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	l, err := h.lobbies.Create(r.Context(), session.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeLobby(w, r, http.StatusCreated, l)
}

// Get handles GET /api/v1/lobbies/{id}
func (h *LobbyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.LobbyID(mux.Vars(r)["id"])

	l, err := h.lobbies.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeLobby(w, r, http.StatusOK, l)
}

// Join handles POST /api/v1/lobbies/{id}/join
func (h *LobbyHandler) Join(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	id := model.LobbyID(mux.Vars(r)["id"])

	l, err := h.lobbies.Join(r.Context(), session.PlayerID, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeLobby(w, r, http.StatusOK, l)
}

// writeLobby renders the lobby with its members embedded as full player
// objects
func (h *LobbyHandler) writeLobby(w http.ResponseWriter, r *http.Request, status int, l *model.Lobby) {
	members, err := h.lobbies.Members(r.Context(), l)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, status, response.LobbyFromModel(l, members))
}

// Delete handles DELETE /api/v1/lobbies/{id}
func (h *LobbyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	id := model.LobbyID(mux.Vars(r)["id"])

	if err := h.lobbies.Delete(r.Context(), session.PlayerID, id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
