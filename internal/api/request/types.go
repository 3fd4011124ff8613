// Package request defines the JSON request bodies accepted by the API
package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	PlayerName string `json:"playerName"`
	SecretKey  string `json:"secretKey"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	PlayerName string `json:"playerName"`
	SecretKey  string `json:"secretKey"`
}

// AttackRequest is the request body for starting a confrontation
type AttackRequest struct {
	Target string `json:"target"`
}

// MoveRequest is the request body for moving to a location
type MoveRequest struct {
	LocationID string `json:"locationId"`
}
