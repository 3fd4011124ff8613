package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Lobby:
		o.printLobby(v)
	case Location:
		o.printLocation(v)
	case AttackResult:
		o.printAttackResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"sessionToken"`
}

// Lobby response type
type Lobby struct {
	LobbyID    string   `json:"lobbyId"`
	LobbyOwner string   `json:"lobbyOwner"`
	LobbySize  int      `json:"lobbySize"`
	Players    []Player `json:"players"`
}

// Location response type
type Location struct {
	LocationID    string   `json:"locationId"`
	LocationName  string   `json:"locationName"`
	LocationOwner string   `json:"locationOwner"`
	NumOfPlayers  int      `json:"numOfPlayers"`
	Players       []Player `json:"players"`
}

// AttackResult response type
type AttackResult struct {
	Attacker  string  `json:"attacker"`
	Defender  string  `json:"defender"`
	Winner    string  `json:"winner"`
	Loser     string  `json:"loser"`
	PAttacker float64 `json:"pAttacker"`
	PDefender float64 `json:"pDefender"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.PlayerName, p.ID)
	fmt.Printf("Role: %s\n", p.Role)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Held Item: %s\n", p.HeldItem)
	fmt.Printf("Strength: %d\n", p.Strength)
	fmt.Printf("Stamina: %d\n", p.Stamina)
	fmt.Printf("Lobby: %s\n", p.CurrentLobby)
	fmt.Printf("Home: %s\n", p.HomeID)
	fmt.Printf("Location: %s\n", p.LocationID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLobby(l Lobby) {
	fmt.Printf("Lobby: %s\n", l.LobbyID)
	fmt.Printf("Owner: %s\n", l.LobbyOwner)
	fmt.Printf("Members (%d): %s\n", l.LobbySize, strings.Join(playerNames(l.Players), ", "))
}

func (o *Output) printLocation(l Location) {
	fmt.Printf("Location: %s (%s)\n", l.LocationName, l.LocationID)
	fmt.Printf("Owner: %s\n", l.LocationOwner)
	fmt.Printf("Occupants (%d): %s\n", l.NumOfPlayers, strings.Join(playerNames(l.Players), ", "))
}

func playerNames(players []Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.PlayerName
	}
	return names
}

func (o *Output) printAttackResult(a AttackResult) {
	fmt.Printf("%s attacked %s\n", a.Attacker, a.Defender)
	fmt.Printf("Winner: %s\n", a.Winner)
	fmt.Printf("Loser: %s (dead)\n", a.Loser)
	fmt.Printf("Odds: %.2f vs %.2f\n", a.PAttacker, a.PDefender)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
