package storage

import (
	"context"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

// Storage defines the interface for room persistence.
// Implementations must be safe for concurrent use; callers serialize
// mutations to any single room above this layer.
type Storage interface {
	// Room operations
	//
	// SaveNewRoom claims the room's code atomically, returning
	// model.ErrRoomCodeTaken if a room already holds it. SaveRoom
	// overwrites unconditionally.
	SaveNewRoom(ctx context.Context, room *model.Room) error
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error
	RoomExists(ctx context.Context, code model.RoomCode) (bool, error)
	ListRoomCodes(ctx context.Context) ([]model.RoomCode, error)

	// Player index operations (player -> containing room)
	SetPlayerRoom(ctx context.Context, id model.PlayerID, code model.RoomCode) error
	GetPlayerRoom(ctx context.Context, id model.PlayerID) (model.RoomCode, error)
	DeletePlayerRoom(ctx context.Context, id model.PlayerID) error
}
