package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/werewolfgame-go/internal/api/response"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
)

// Broadcaster pushes room events to SSE clients. It implements the room
// service's Broadcaster interface so the engine stays transport-agnostic.
type Broadcaster struct {
	hubs   *HubManager
	logger *slog.Logger
}

var _ room.Broadcaster = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubs *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubs:   hubs,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// RoomUpdate pushes a full room snapshot to every client in the room
func (b *Broadcaster) RoomUpdate(r *model.Room) {
	hub := b.hubs.GetHub(r.Code)
	if hub == nil {
		return
	}
	data, err := json.Marshal(response.RoomFromModel(r))
	if err != nil {
		b.logger.Error("sse failed to encode room snapshot",
			slog.String("room", string(r.Code)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent("room-update", string(data))
}

// ChatMessage pushes a single chat entry to every client in the room
func (b *Broadcaster) ChatMessage(code model.RoomCode, msg model.ChatMessage) {
	hub := b.hubs.GetHub(code)
	if hub == nil {
		return
	}
	data, err := json.Marshal(response.ChatMessageFromModel(msg))
	if err != nil {
		b.logger.Error("sse failed to encode chat message",
			slog.String("room", string(code)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent("chat-message", string(data))
}

// SeerResult pushes a private investigation result to a single player
func (b *Broadcaster) SeerResult(code model.RoomCode, to model.PlayerID, result model.SeerResult) {
	hub := b.hubs.GetHub(code)
	if hub == nil {
		return
	}
	data, err := json.Marshal(response.SeerResultFromModel(result))
	if err != nil {
		b.logger.Error("sse failed to encode seer result",
			slog.String("room", string(code)),
			slog.Any("error", err))
		return
	}
	hub.SendEventTo(to, "seer-result", string(data))
}

// RoomClosed drops the room's hub, disconnecting any remaining clients
func (b *Broadcaster) RoomClosed(code model.RoomCode) {
	b.hubs.RemoveHub(code)
}
