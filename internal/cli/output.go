package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
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
	case Room:
		o.printRoom(v)
	case JoinedRoom:
		o.printJoinedRoom(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	case StatsResult:
		o.printStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	IsAlive  bool   `json:"is_alive"`
	IsHost   bool   `json:"is_host"`
	IsReady  bool   `json:"is_ready"`
	VotedFor string `json:"voted_for,omitempty"`
}

// ChatMessage response type
type ChatMessage struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings response type
type Settings struct {
	Werewolves    int `json:"werewolves"`
	Villagers     int `json:"villagers"`
	Seer          int `json:"seer"`
	Doctor        int `json:"doctor"`
	DayDuration   int `json:"day_duration"`
	NightDuration int `json:"night_duration"`
}

// Room response type
type Room struct {
	Code          string        `json:"code"`
	Host          string        `json:"host"`
	Players       []Player      `json:"players"`
	Phase         string        `json:"phase"`
	DayCount      int           `json:"day_count"`
	TimeRemaining int           `json:"time_remaining"`
	Winner        string        `json:"winner,omitempty"`
	Settings      Settings      `json:"settings"`
	Chat          []ChatMessage `json:"chat"`
}

// JoinedRoom is the response after creating or joining a room
type JoinedRoom struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// RoomSummary response type
type RoomSummary struct {
	Code        string `json:"code"`
	PlayerCount int    `json:"player_count"`
	Phase       string `json:"phase"`
}

// StatsResult response type
type StatsResult struct {
	ActiveRooms  int           `json:"active_rooms"`
	TotalPlayers int           `json:"total_players"`
	Rooms        []RoomSummary `json:"rooms"`
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room:    %s\n", r.Code)
	fmt.Printf("Phase:   %s", r.Phase)
	if r.Phase != "lobby" && r.Phase != "ended" {
		fmt.Printf(" (day %d, %ds remaining)", r.DayCount, r.TimeRemaining)
	}
	fmt.Println()
	if r.Winner != "" {
		fmt.Printf("Winner:  %s\n", r.Winner)
	}

	fmt.Println("Players:")
	for _, p := range r.Players {
		var marks []string
		if p.IsHost {
			marks = append(marks, "host")
		}
		if p.IsReady && r.Phase == "lobby" {
			marks = append(marks, "ready")
		}
		if !p.IsAlive {
			marks = append(marks, "dead")
		}
		if p.Role != "" {
			marks = append(marks, p.Role)
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " (" + strings.Join(marks, ", ") + ")"
		}
		fmt.Printf("  %s%s\n", p.Name, suffix)
	}

	if len(r.Chat) > 0 {
		fmt.Println("Recent chat:")
		start := len(r.Chat) - 5
		if start < 0 {
			start = 0
		}
		for _, m := range r.Chat[start:] {
			fmt.Printf("  [%s] %s: %s\n", m.Type, m.Player, m.Message)
		}
	}
}

func (o *Output) printJoinedRoom(j JoinedRoom) {
	fmt.Printf("Joined as %s (player ID %s)\n", j.Player.Name, j.Player.ID)
	o.printRoom(j.Room)
}

func (o *Output) printStats(s StatsResult) {
	fmt.Printf("Active rooms: %d\n", s.ActiveRooms)
	fmt.Printf("Total players: %d\n", s.TotalPlayers)
	for _, r := range s.Rooms {
		fmt.Printf("  %s: %d players, %s\n", r.Code, r.PlayerCount, r.Phase)
	}
}
