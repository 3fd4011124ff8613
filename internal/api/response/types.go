// Package response defines the JSON response bodies produced by the API.
// Empty lobby and location references are rendered as the "none" sentinel.
package response

import (
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/services/auth"
	"github.com/Ed1196/Dawn-REST-API/internal/services/player"
)

// Player represents a player in API responses
type Player struct {
	ID           string `json:"id"`
	PlayerName   string `json:"playerName"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	HeldItem     string `json:"heldItem"`
	Strength     int    `json:"strength"`
	Stamina      int    `json:"stamina"`
	CurrentLobby string `json:"currentLobby"`
	HomeID       string `json:"homeId"`
	LocationID   string `json:"locationId"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           string(p.ID),
		PlayerName:   p.Name,
		Role:         string(p.Role),
		Status:       string(p.Status),
		HeldItem:     p.HeldItem,
		Strength:     p.Strength,
		Stamina:      p.Stamina,
		CurrentLobby: orNone(string(p.CurrentLobby)),
		HomeID:       orNone(string(p.HomeID)),
		LocationID:   orNone(string(p.LocationID)),
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"sessionToken"`
}

// Lobby represents a lobby in API responses. Members are embedded as full
// player objects.
type Lobby struct {
	LobbyID    string   `json:"lobbyId"`
	LobbyOwner string   `json:"lobbyOwner"`
	LobbySize  int      `json:"lobbySize"`
	Players    []Player `json:"players"`
}

// LobbyFromModel converts a model.Lobby and its resolved members to a
// response Lobby
func LobbyFromModel(l *model.Lobby, members []*model.Player) Lobby {
	return Lobby{
		LobbyID:    string(l.ID),
		LobbyOwner: l.Owner,
		LobbySize:  l.Size,
		Players:    playersFromModels(members),
	}
}

// Location represents a location in API responses. Occupants are embedded
// as full player objects.
type Location struct {
	LocationID    string   `json:"locationId"`
	LocationName  string   `json:"locationName"`
	LocationOwner string   `json:"locationOwner"`
	NumOfPlayers  int      `json:"numOfPlayers"`
	Players       []Player `json:"players"`
}

// LocationFromModel converts a model.Location and its resolved occupants
// to a response Location
func LocationFromModel(l *model.Location, occupants []*model.Player) Location {
	return Location{
		LocationID:    string(l.ID),
		LocationName:  l.Name,
		LocationOwner: l.Owner,
		NumOfPlayers:  l.NumOfPlayers,
		Players:       playersFromModels(occupants),
	}
}

func playersFromModels(models []*model.Player) []Player {
	players := make([]Player, len(models))
	for i, p := range models {
		players[i] = PlayerFromModel(p)
	}
	return players
}

// AttackResponse reports the outcome of a confrontation
type AttackResponse struct {
	Attacker  string  `json:"attacker"`
	Defender  string  `json:"defender"`
	Winner    string  `json:"winner"`
	Loser     string  `json:"loser"`
	PAttacker float64 `json:"pAttacker"`
	PDefender float64 `json:"pDefender"`
}

// AttackResponseFromResult converts a player.AttackResult
func AttackResponseFromResult(res *player.AttackResult) AttackResponse {
	return AttackResponse{
		Attacker:  res.Attacker,
		Defender:  res.Defender,
		Winner:    res.Winner,
		Loser:     res.Loser,
		PAttacker: res.PAttacker,
		PDefender: res.PDefender,
	}
}

// AuthResponseFor builds an AuthResponse from a session and player record
func AuthResponseFor(s *auth.Session, p *model.Player) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(p),
		SessionToken: s.Token,
	}
}

func orNone(s string) string {
	if s == "" {
		return model.NoneSentinel
	}
	return s
}
