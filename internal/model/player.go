package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// LobbyID identifies a lobby; empty means the player is in no lobby
type LobbyID string

// LocationID identifies a location; empty means "nowhere"
type LocationID string

// NoneSentinel is how empty lobby/location references are rendered externally
const NoneSentinel = "none"

// Role distinguishes real players from non-player entities
type Role string

const (
	RolePlayer Role = "player"
	RoleNPC    Role = "npc"
)

// Status is a player's lifecycle state. StatusActive ("none") means awake
// and able to act; StatusDead is terminal.
type Status string

const (
	StatusActive Status = "none"
	StatusSleep  Status = "sleep"
	StatusDead   Status = "dead"
)

// Held item tags. Anything else is treated as unarmed by the combat engine.
const (
	ItemNone = "none"
	ItemGun  = "gun"
)

// Stat defaults for freshly registered players
const (
	DefaultStrength = 100
	DefaultStamina  = 100
)

// Player represents a game participant (or an NPC such as a lobby clerk)
type Player struct {
	ID        PlayerID
	Name      string // unique, immutable after registration
	SecretKey string // bcrypt hash, compared not parsed
	Role      Role
	Status    Status
	HeldItem  string
	Strength  int
	Stamina   int

	CurrentLobby LobbyID
	HomeID       LocationID
	LocationID   LocationID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CombatProfile is the read-only view of a player used by combat math.
// It is a snapshot by value: combat must not observe mutations made to the
// underlying Player while a confrontation is being evaluated.
type CombatProfile struct {
	Name     string
	Status   Status
	HeldItem string
	Strength int
	Stamina  int
}

// CombatProfile snapshots the combat-relevant stats of the player
func (p *Player) CombatProfile() CombatProfile {
	return CombatProfile{
		Name:     p.Name,
		Status:   p.Status,
		HeldItem: p.HeldItem,
		Strength: p.Strength,
		Stamina:  p.Stamina,
	}
}

// IsDead reports whether the player is permanently out of the game
func (p *Player) IsDead() bool {
	return p.Status == StatusDead
}

// InLobby reports whether the player currently belongs to any lobby
func (p *Player) InLobby() bool {
	return p.CurrentLobby != ""
}
