package request

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// ReadyRequest is the request body for toggling ready state
type ReadyRequest struct {
	PlayerID string `json:"player_id"`
}

// Settings is the role counts and phase durations for starting a game
type Settings struct {
	Werewolves    int `json:"werewolves"`
	Villagers     int `json:"villagers"`
	Seer          int `json:"seer"`
	Doctor        int `json:"doctor"`
	DayDuration   int `json:"day_duration"`
	NightDuration int `json:"night_duration"`
}

// StartGameRequest is the request body for starting a game
type StartGameRequest struct {
	PlayerID string    `json:"player_id"`
	Settings *Settings `json:"settings,omitempty"`
}

// VoteRequest is the request body for casting or toggling a vote
type VoteRequest struct {
	VoterID  string `json:"voter_id"`
	TargetID string `json:"target_id"`
}

// AbilityRequest is the request body for using a night ability
type AbilityRequest struct {
	PlayerID string `json:"player_id"`
	TargetID string `json:"target_id"`
	Ability  string `json:"ability"`
}

// ChatRequest is the request body for sending a chat message
type ChatRequest struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
	Type     string `json:"type,omitempty"`
}

// LeaveRequest is the request body for leaving a room
type LeaveRequest struct {
	PlayerID string `json:"player_id"`
}
