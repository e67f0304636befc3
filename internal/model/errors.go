package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomCodeTaken  = errors.New("room code already in use")
	ErrRoomFull       = errors.New("room is full")
	ErrNameTaken      = errors.New("name already taken")
	ErrGameInProgress = errors.New("game already started")
	ErrNotHost        = errors.New("player is not the host")

	// Game errors
	ErrInvalidSettings     = errors.New("role counts must match player count")
	ErrPlayersNotReady     = errors.New("all players must be ready")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrAlreadyActed        = errors.New("ability already used tonight")
)
