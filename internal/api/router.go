package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ed1196/Dawn-REST-API/internal/api/handler"
	"github.com/Ed1196/Dawn-REST-API/internal/api/middleware"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
	"github.com/Ed1196/Dawn-REST-API/internal/services/lobby"
	"github.com/Ed1196/Dawn-REST-API/internal/services/location"
	"github.com/Ed1196/Dawn-REST-API/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	PlayerController   *player.Controller
	LobbyController    *lobby.Controller
	LocationController *location.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.PlayerController, cfg.LocationController)
	lobbyHandler := handler.NewLobbyHandler(cfg.LobbyController)
	locationHandler := handler.NewLocationHandler(cfg.LocationController)

	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Registration and login are the only unauthenticated player routes
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes. The /me routes are registered before the
	// {name} lookup so they are not swallowed by it.
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	players.HandleFunc("/me/sleep", playerHandler.Sleep).Methods(http.MethodPost)
	players.HandleFunc("/me/workout", playerHandler.Workout).Methods(http.MethodPost)
	players.HandleFunc("/me/wakeup", playerHandler.Wakeup).Methods(http.MethodPost)
	players.HandleFunc("/me/attack", playerHandler.Attack).Methods(http.MethodPost)
	players.HandleFunc("/me/move", playerHandler.Move).Methods(http.MethodPost)
	players.HandleFunc("/{name}", playerHandler.Get).Methods(http.MethodGet)

	// Lobby routes (all require auth)
	lobbies := api.PathPrefix("/lobbies").Subrouter()
	lobbies.Use(authMiddleware)
	lobbies.HandleFunc("", lobbyHandler.Create).Methods(http.MethodPost)
	lobbies.HandleFunc("/{id}", lobbyHandler.Get).Methods(http.MethodGet)
	lobbies.HandleFunc("/{id}", lobbyHandler.Delete).Methods(http.MethodDelete)
	lobbies.HandleFunc("/{id}/join", lobbyHandler.Join).Methods(http.MethodPost)

	// Location routes (all require auth)
	locations := api.PathPrefix("/locations").Subrouter()
	locations.Use(authMiddleware)
	locations.HandleFunc("/{id}", locationHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
