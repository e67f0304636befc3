package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/werewolfgame-go/internal/api/response"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
	"github.com/mcoot/werewolfgame-go/internal/sse"
)

// EventsHandler serves the SSE event stream and the status surface
type EventsHandler struct {
	controller *room.Controller
	hubs       *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller *room.Controller, hubs *sse.HubManager) *EventsHandler {
	return &EventsHandler{controller: controller, hubs: hubs}
}

// Stream handles GET /api/v1/rooms/{code}/events?player_id=
// The stream is the liveness signal for a player: when it drops, the player
// is treated as disconnected and removed from the room.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	code := roomCode(r)
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	if playerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	got, err := h.controller.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	if got.GetPlayer(playerID) == nil {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}

	hub, client := h.hubs.Connect(code, playerID)
	sse.ServeSSE(w, r, hub, client)

	// The request context is cancelled once the stream drops, so the
	// cleanup runs on a fresh context
	_ = h.controller.Disconnect(context.Background(), playerID)
	h.hubs.CleanupEmptyHubs()
}

// Health handles GET /api/v1/health
func (h *EventsHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

// Stats handles GET /api/v1/stats
func (h *EventsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	summaries, players, err := h.controller.Stats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.StatsFromSummaries(summaries, players))
}
