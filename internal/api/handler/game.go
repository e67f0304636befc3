package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/werewolfgame-go/internal/api/request"
	"github.com/mcoot/werewolfgame-go/internal/api/response"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
)

// GameHandler handles in-game action endpoints
type GameHandler struct {
	controller *room.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *room.Controller) *GameHandler {
	return &GameHandler{controller: controller}
}

// Start handles POST /api/v1/rooms/{code}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	code := roomCode(r)

	var settings model.Settings
	if req.Settings != nil {
		settings = model.Settings{
			Werewolves:    req.Settings.Werewolves,
			Villagers:     req.Settings.Villagers,
			Seer:          req.Settings.Seer,
			Doctor:        req.Settings.Doctor,
			DayDuration:   req.Settings.DayDuration,
			NightDuration: req.Settings.NightDuration,
		}
	} else {
		// Omitted settings start with whatever the room currently holds
		got, err := h.controller.GetRoom(r.Context(), code)
		if err != nil {
			WriteError(w, err)
			return
		}
		settings = got.Settings
	}

	if err := h.controller.StartGame(r.Context(), code, model.PlayerID(req.PlayerID), settings); err != nil {
		WriteError(w, err)
		return
	}

	got, err := h.controller.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoomFromModel(got))
}

// Vote handles POST /api/v1/rooms/{code}/vote
func (h *GameHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VoterID == "" || req.TargetID == "" {
		WriteError(w, NewInvalidRequestError("voter_id and target_id are required"))
		return
	}

	err := h.controller.Vote(r.Context(), roomCode(r), model.PlayerID(req.VoterID), model.PlayerID(req.TargetID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Ability handles POST /api/v1/rooms/{code}/ability
func (h *GameHandler) Ability(w http.ResponseWriter, r *http.Request) {
	var req request.AbilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" || req.TargetID == "" || req.Ability == "" {
		WriteError(w, NewInvalidRequestError("player_id, target_id and ability are required"))
		return
	}

	err := h.controller.UseAbility(r.Context(), roomCode(r),
		model.PlayerID(req.PlayerID), model.PlayerID(req.TargetID), req.Ability)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Chat handles POST /api/v1/rooms/{code}/chat
func (h *GameHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" || req.Message == "" {
		WriteError(w, NewInvalidRequestError("player_id and message are required"))
		return
	}

	err := h.controller.SendMessage(r.Context(), roomCode(r),
		model.PlayerID(req.PlayerID), req.Message, model.ChatType(req.Type))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
