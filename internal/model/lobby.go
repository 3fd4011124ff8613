package model

import "time"

// MaxLobbySize is the hard cap on lobby membership
const MaxLobbySize = 3

// Lobby is a game session of up to three players, owned by its creator.
// The owner name is immutable; only the owner may delete the lobby.
type Lobby struct {
	ID      LobbyID
	Owner   string
	Size    int
	Members []PlayerID

	// ClerkID references the store clerk NPC created with the lobby. The
	// clerk is tagged with the lobby but does not count toward Size.
	ClerkID PlayerID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull reports whether the lobby has reached MaxLobbySize
func (l *Lobby) IsFull() bool {
	return l.Size >= MaxLobbySize
}

// HasMember reports whether the player is recorded as a lobby member
func (l *Lobby) HasMember(id PlayerID) bool {
	for _, m := range l.Members {
		if m == id {
			return true
		}
	}
	return false
}

// AddMember records a player in the lobby and bumps the size
func (l *Lobby) AddMember(id PlayerID) {
	if l.HasMember(id) {
		return
	}
	l.Members = append(l.Members, id)
	l.Size = len(l.Members)
}
