package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/werewolfgame-go/internal/api/handler"
	"github.com/mcoot/werewolfgame-go/internal/api/middleware"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
	"github.com/mcoot/werewolfgame-go/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomController *room.Controller
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	roomHandler := handler.NewRoomHandler(cfg.RoomController)
	gameHandler := handler.NewGameHandler(cfg.RoomController)
	eventsHandler := handler.NewEventsHandler(cfg.RoomController, cfg.HubManager)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Room membership routes
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/ready", roomHandler.Ready).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/leave", roomHandler.Leave).Methods(http.MethodPost)

	// Game action routes
	api.HandleFunc("/rooms/{code}/start", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/vote", gameHandler.Vote).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/ability", gameHandler.Ability).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/chat", gameHandler.Chat).Methods(http.MethodPost)

	// Event stream
	api.HandleFunc("/rooms/{code}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Status surface
	api.HandleFunc("/health", eventsHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/stats", eventsHandler.Stats).Methods(http.MethodGet)

	return r
}
