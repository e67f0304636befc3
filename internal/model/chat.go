package model

import "time"

// ChatType distinguishes chat log entries
type ChatType string

const (
	ChatTypePlayer   ChatType = "player"
	ChatTypeSystem   ChatType = "system"
	ChatTypeWerewolf ChatType = "werewolf" // night chat, filtered client-side
)

// Narrator is the sender name used for system chat entries
const Narrator = "Narrator"

// ChatMessage is one entry in a room's append-only chat log
type ChatMessage struct {
	ID        string
	Player    string // display name of the sender, or Narrator
	Message   string
	Type      ChatType
	Timestamp time.Time
}

// SeerResult is the private reveal pushed to a seer after investigating
type SeerResult struct {
	TargetName string
	TargetRole Role
}
