package model

import "time"

// Location names created by the lobby lifecycle
const (
	LocationNameHome  = "home"
	LocationNameStore = "store"
)

// Location is a place players occupy. NumOfPlayers is maintained as an
// explicit count alongside the occupant set; the two must stay in sync at
// every transaction boundary.
type Location struct {
	ID           LocationID
	Name         string
	Owner        string // name of the player the location was created for
	NumOfPlayers int
	Occupants    []PlayerID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasOccupant reports whether the player is recorded at this location
func (l *Location) HasOccupant(id PlayerID) bool {
	for _, occ := range l.Occupants {
		if occ == id {
			return true
		}
	}
	return false
}

// AddOccupant records a player at this location and bumps the count
func (l *Location) AddOccupant(id PlayerID) {
	if l.HasOccupant(id) {
		return
	}
	l.Occupants = append(l.Occupants, id)
	l.NumOfPlayers = len(l.Occupants)
}

// RemoveOccupant removes a player from this location and drops the count
func (l *Location) RemoveOccupant(id PlayerID) {
	for i, occ := range l.Occupants {
		if occ == id {
			l.Occupants = append(l.Occupants[:i], l.Occupants[i+1:]...)
			break
		}
	}
	l.NumOfPlayers = len(l.Occupants)
}
