package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/werewolfgame-go/internal/api/request"
	"github.com/mcoot/werewolfgame-go/internal/api/response"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
)

// MaxNameLength caps player names, matching the join form
const MaxNameLength = 20

// RoomHandler handles room membership endpoints
type RoomHandler struct {
	controller *room.Controller
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(controller *room.Controller) *RoomHandler {
	return &RoomHandler{controller: controller}
}

func validName(name string) error {
	if name == "" {
		return NewInvalidRequestError("player_name is required")
	}
	if len(name) > MaxNameLength {
		return NewInvalidRequestError("player_name is too long")
	}
	return nil
}

// roomCode pulls the room code path variable, normalized to upper case
func roomCode(r *http.Request) model.RoomCode {
	return model.RoomCode(strings.ToUpper(mux.Vars(r)["code"]))
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	req.PlayerName = strings.TrimSpace(req.PlayerName)
	if err := validName(req.PlayerName); err != nil {
		WriteError(w, err)
		return
	}

	created, player, err := h.controller.CreateRoom(r.Context(), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.JoinedRoom{
		Room:   response.RoomFromModel(created),
		Player: response.PlayerFromModel(player),
	})
}

// Get handles GET /api/v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.controller.GetRoom(r.Context(), roomCode(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoomFromModel(got))
}

// Join handles POST /api/v1/rooms/{code}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	req.PlayerName = strings.TrimSpace(req.PlayerName)
	if err := validName(req.PlayerName); err != nil {
		WriteError(w, err)
		return
	}

	joined, player, err := h.controller.JoinRoom(r.Context(), roomCode(r), req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinedRoom{
		Room:   response.RoomFromModel(joined),
		Player: response.PlayerFromModel(player),
	})
}

// Ready handles POST /api/v1/rooms/{code}/ready
func (h *RoomHandler) Ready(w http.ResponseWriter, r *http.Request) {
	var req request.ReadyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.controller.ToggleReady(r.Context(), roomCode(r), model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Leave handles POST /api/v1/rooms/{code}/leave
func (h *RoomHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req request.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.controller.Leave(r.Context(), roomCode(r), model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
