package room

import "github.com/mcoot/werewolfgame-go/internal/model"

// Broadcaster delivers room snapshots and discrete events to connected
// clients of a room. Delivery is fire-and-forget and best-effort; the
// controller never blocks on it. Calls are made while the room's lock is
// held, so every snapshot reflects a fully post-mutation state.
type Broadcaster interface {
	// RoomUpdate pushes a full room snapshot to every client in the room
	RoomUpdate(room *model.Room)

	// ChatMessage pushes a single chat entry to every client in the room
	ChatMessage(code model.RoomCode, msg model.ChatMessage)

	// SeerResult pushes a private reveal to a single player only
	SeerResult(code model.RoomCode, to model.PlayerID, result model.SeerResult)

	// RoomClosed signals that a room has been deleted so the transport can
	// drop any per-room resources it holds
	RoomClosed(code model.RoomCode)
}

// NopBroadcaster discards all events. Useful when no push transport is wired.
type NopBroadcaster struct{}

var _ Broadcaster = (*NopBroadcaster)(nil)

func (NopBroadcaster) RoomUpdate(*model.Room)                                      {}
func (NopBroadcaster) ChatMessage(model.RoomCode, model.ChatMessage)               {}
func (NopBroadcaster) SeerResult(model.RoomCode, model.PlayerID, model.SeerResult) {}
func (NopBroadcaster) RoomClosed(model.RoomCode)                                   {}
