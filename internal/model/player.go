package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Role is a player's secret role for the current game
type Role string

const (
	RoleUnassigned Role = "unassigned" // placeholder until roles are dealt
	RoleWerewolf   Role = "werewolf"
	RoleVillager   Role = "villager"
	RoleSeer       Role = "seer"
	RoleDoctor     Role = "doctor"
)

// Player represents a participant in a room.
// VotedFor is only meaningful during the voting phase and is cleared when the
// phase resolves; HasUsedAbility is reset on every entry to the night phase.
type Player struct {
	ID             PlayerID
	Name           string
	Role           Role
	IsAlive        bool
	IsHost         bool
	IsReady        bool
	VotedFor       PlayerID // empty when no vote is cast
	HasUsedAbility bool
}
