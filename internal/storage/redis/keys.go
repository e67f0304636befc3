package redis

import (
	"fmt"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wwgame"

// roomKey returns the Redis key for a Room
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// roomCodesKey returns the Redis key for the SET of active room codes
func roomCodesKey() string {
	return fmt.Sprintf("%s:idx:rooms", keyPrefix)
}

// playerRoomKey returns the Redis key for the player -> room index
func playerRoomKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:idx:player_room:%s", keyPrefix, id)
}
