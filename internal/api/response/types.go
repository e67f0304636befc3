package response

import (
	"time"

	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
)

// Player represents a player in API responses. Role filtering is a client
// concern, matching how werewolf-only chat is handled.
type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role,omitempty"`
	IsAlive        bool   `json:"is_alive"`
	IsHost         bool   `json:"is_host"`
	IsReady        bool   `json:"is_ready"`
	VotedFor       string `json:"voted_for,omitempty"`
	HasUsedAbility bool   `json:"has_used_ability"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	role := ""
	if p.Role != model.RoleUnassigned {
		role = string(p.Role)
	}
	return Player{
		ID:             string(p.ID),
		Name:           p.Name,
		Role:           role,
		IsAlive:        p.IsAlive,
		IsHost:         p.IsHost,
		IsReady:        p.IsReady,
		VotedFor:       string(p.VotedFor),
		HasUsedAbility: p.HasUsedAbility,
	}
}

// ChatMessage represents a chat entry in API responses
type ChatMessage struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessageFromModel converts model.ChatMessage
func ChatMessageFromModel(m model.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:        m.ID,
		Player:    m.Player,
		Message:   m.Message,
		Type:      string(m.Type),
		Timestamp: m.Timestamp,
	}
}

// Settings represents game settings in API responses
type Settings struct {
	Werewolves    int `json:"werewolves"`
	Villagers     int `json:"villagers"`
	Seer          int `json:"seer"`
	Doctor        int `json:"doctor"`
	DayDuration   int `json:"day_duration"`
	NightDuration int `json:"night_duration"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s model.Settings) Settings {
	return Settings{
		Werewolves:    s.Werewolves,
		Villagers:     s.Villagers,
		Seer:          s.Seer,
		Doctor:        s.Doctor,
		DayDuration:   s.DayDuration,
		NightDuration: s.NightDuration,
	}
}

// Room represents a room in API responses
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

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, len(r.Players))
	for i := range r.Players {
		players[i] = PlayerFromModel(&r.Players[i])
	}
	chat := make([]ChatMessage, len(r.Chat))
	for i, m := range r.Chat {
		chat[i] = ChatMessageFromModel(m)
	}
	return Room{
		Code:          string(r.Code),
		Host:          string(r.Host),
		Players:       players,
		Phase:         string(r.Phase),
		DayCount:      r.DayCount,
		TimeRemaining: r.TimeRemaining,
		Winner:        string(r.Winner),
		Settings:      SettingsFromModel(r.Settings),
		Chat:          chat,
	}
}

// JoinedRoom is the response after creating or joining a room
type JoinedRoom struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

// SeerResult is the private investigation result pushed to the seer
type SeerResult struct {
	TargetName string `json:"target_name"`
	TargetRole string `json:"target_role"`
}

// SeerResultFromModel converts model.SeerResult
func SeerResultFromModel(r model.SeerResult) SeerResult {
	return SeerResult{
		TargetName: r.TargetName,
		TargetRole: string(r.TargetRole),
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// RoomSummary is one room's entry in the stats response
type RoomSummary struct {
	Code        string    `json:"code"`
	PlayerCount int       `json:"player_count"`
	Phase       string    `json:"phase"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats is the response for the stats endpoint
type Stats struct {
	ActiveRooms  int           `json:"active_rooms"`
	TotalPlayers int           `json:"total_players"`
	Rooms        []RoomSummary `json:"rooms"`
}

// StatsFromSummaries builds a Stats response from room summaries
func StatsFromSummaries(summaries []room.RoomSummary, players int) Stats {
	rooms := make([]RoomSummary, len(summaries))
	for i, s := range summaries {
		rooms[i] = RoomSummary{
			Code:        string(s.Code),
			PlayerCount: s.PlayerCount,
			Phase:       string(s.Phase),
			CreatedAt:   s.CreatedAt,
		}
	}
	return Stats{
		ActiveRooms:  len(summaries),
		TotalPlayers: players,
		Rooms:        rooms,
	}
}
