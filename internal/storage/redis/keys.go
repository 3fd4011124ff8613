package redis

import (
	"fmt"

	"github.com/Ed1196/Dawn-REST-API/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "dawn"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerNameIndexKey returns the Redis key for the name -> player_id index
func playerNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:player_name:%s", keyPrefix, name)
}

// locationKey returns the Redis key for a Location
func locationKey(id model.LocationID) string {
	return fmt.Sprintf("%s:location:%s", keyPrefix, id)
}

// lobbyKey returns the Redis key for a Lobby
func lobbyKey(id model.LobbyID) string {
	return fmt.Sprintf("%s:lobby:%s", keyPrefix, id)
}
