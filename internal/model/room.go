package model

import (
	"strings"
	"time"
)

// RoomCode is a human-readable identifier for joining rooms
type RoomCode string

// Phase represents the current stage of a room's game round
type Phase string

const (
	PhaseLobby  Phase = "lobby"
	PhaseDay    Phase = "day"
	PhaseVoting Phase = "voting"
	PhaseNight  Phase = "night"
	PhaseEnded  Phase = "ended" // terminal, entered once a winner is set
)

// Faction identifies a winning side
type Faction string

const (
	FactionWerewolves Faction = "werewolves"
	FactionVillagers  Faction = "villagers"
)

// MaxPlayers is the hard cap on room membership
const MaxPlayers = 12

// MinPlayers is the minimum roster size required to start a game
const MinPlayers = 4

// Settings holds the role counts and phase durations for a game.
// Durations are in seconds, matching TimeRemaining.
type Settings struct {
	Werewolves    int
	Villagers     int
	Seer          int
	Doctor        int
	DayDuration   int
	NightDuration int
}

// TotalRoles returns the size of the role multiset these settings describe
func (s Settings) TotalRoles() int {
	return s.Werewolves + s.Villagers + s.Seer + s.Doctor
}

// DefaultSettings returns the default game settings
func DefaultSettings() Settings {
	return Settings{
		Werewolves:    2,
		Villagers:     4,
		Seer:          1,
		Doctor:        1,
		DayDuration:   300,
		NightDuration: 120,
	}
}

// Night action keys in Room.NightActions
const (
	AbilityWerewolf = "werewolf"
	AbilityDoctor   = "doctor"
	AbilitySeer     = "seer"
)

// Room represents one game session and all of its mutable state.
// Players is ordered by join time; that order is significant for host
// succession. All mutation happens under the room's lock in the room service.
type Room struct {
	Code          RoomCode
	Host          PlayerID
	Players       []Player // join order
	Phase         Phase
	DayCount      int
	TimeRemaining int                 // seconds, counts down to zero
	NightActions  map[string]PlayerID // ability name -> target, cleared nightly
	Winner        Faction             // empty until the game ends, then immutable
	Settings      Settings
	Chat          []ChatMessage // append-only
	CreatedAt     time.Time
	LastActivity  time.Time
}

// GetPlayer returns the player with the given ID, or nil if not present
func (r *Room) GetPlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// HasName reports whether any member's name matches case-insensitively
func (r *Room) HasName(name string) bool {
	for i := range r.Players {
		if strings.EqualFold(r.Players[i].Name, name) {
			return true
		}
	}
	return false
}

// LivingPlayers returns the indices of players still alive, in roster order
func (r *Room) LivingPlayers() []*Player {
	var living []*Player
	for i := range r.Players {
		if r.Players[i].IsAlive {
			living = append(living, &r.Players[i])
		}
	}
	return living
}

// AllReady reports whether every member has toggled ready
func (r *Room) AllReady() bool {
	for i := range r.Players {
		if !r.Players[i].IsReady {
			return false
		}
	}
	return true
}
