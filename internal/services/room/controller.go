package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/werewolfgame-go/internal/dependencies/clock"
	"github.com/mcoot/werewolfgame-go/internal/dependencies/random"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6
	// RoomCodeAlphabet is the characters used in room codes
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// codeRetries bounds the collision retry loop when allocating a code
	codeRetries = 100

	// VotingDuration is the fixed length of the voting phase in seconds
	VotingDuration = 60

	// DefaultIdleTTL is how long a room may sit without activity before the
	// sweep reclaims it
	DefaultIdleTTL = 2 * time.Hour
)

// Controller owns the room registry and each room's phase state machine.
// Every mutation of a room happens under that room's lock; the registry map
// in storage and the lock/timer tables are synchronized independently.
type Controller struct {
	storage     storage.Storage
	broadcaster Broadcaster
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger

	locks  *lockTable
	timers *timerTable

	idleTTL      time.Duration
	tickInterval time.Duration
}

// NewController creates a new room Controller
func NewController(
	store storage.Storage,
	broadcaster Broadcaster,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      store,
		broadcaster:  broadcaster,
		clock:        clk,
		random:       rnd,
		logger:       logger.With(slog.String("component", "room")),
		locks:        newLockTable(),
		timers:       newTimerTable(),
		idleTTL:      DefaultIdleTTL,
		tickInterval: time.Second,
	}
}

// SetIdleTTL overrides how long a room may sit without activity before the
// sweep reclaims it
func (c *Controller) SetIdleTTL(ttl time.Duration) {
	if ttl > 0 {
		c.idleTTL = ttl
	}
}

// SetTickInterval overrides the countdown tick interval. Intended for tests
// that drive Tick directly and need the background timers quiet.
func (c *Controller) SetTickInterval(d time.Duration) {
	c.tickInterval = d
}

// CreateRoom creates a new room in the lobby phase with the requesting player
// as its sole member and host
func (c *Controller) CreateRoom(ctx context.Context, hostName string) (*model.Room, *model.Player, error) {
	now := c.clock.Now()

	host := model.Player{
		ID:      model.PlayerID(uuid.NewString()),
		Name:    hostName,
		Role:    model.RoleUnassigned,
		IsAlive: true,
		IsHost:  true,
	}

	room, err := c.allocateRoom(ctx, host, now)
	if err != nil {
		return nil, nil, err
	}
	if err := c.storage.SetPlayerRoom(ctx, host.ID, room.Code); err != nil {
		return nil, nil, err
	}

	c.logger.Info("room created",
		slog.String("room", string(room.Code)),
		slog.String("host", hostName),
	)

	return room, &host, nil
}

// allocateRoom samples the code alphabet and claims the code through
// SaveNewRoom, retrying on collision. The claim is atomic in storage, so
// two concurrent creators can never both win the same code. The retry is
// bounded rather than unbounded so an adversarial collision rate cannot
// spin forever.
func (c *Controller) allocateRoom(ctx context.Context, host model.Player, now time.Time) (*model.Room, error) {
	for i := 0; i < codeRetries; i++ {
		code := model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		room := &model.Room{
			Code:         code,
			Host:         host.ID,
			Players:      []model.Player{host},
			Phase:        model.PhaseLobby,
			DayCount:     1,
			NightActions: map[string]model.PlayerID{},
			Settings:     model.DefaultSettings(),
			CreatedAt:    now,
			LastActivity: now,
		}
		c.appendSystem(room, fmt.Sprintf("Welcome to room %s! Share this code with friends to join.", code))

		err := c.storage.SaveNewRoom(ctx, room)
		if errors.Is(err, model.ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return room, nil
	}
	return nil, errors.New("could not allocate a unique room code")
}

// JoinRoom adds a player to a lobby-phase room
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, name string) (*model.Room, *model.Player, error) {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if len(room.Players) >= model.MaxPlayers {
		return nil, nil, model.ErrRoomFull
	}
	if room.HasName(name) {
		return nil, nil, model.ErrNameTaken
	}
	if room.Phase != model.PhaseLobby {
		return nil, nil, model.ErrGameInProgress
	}

	player := model.Player{
		ID:      model.PlayerID(uuid.NewString()),
		Name:    name,
		Role:    model.RoleUnassigned,
		IsAlive: true,
	}
	room.Players = append(room.Players, player)
	msg := c.appendSystem(room, fmt.Sprintf("%s joined the game!", name))
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	if err := c.storage.SetPlayerRoom(ctx, player.ID, code); err != nil {
		return nil, nil, err
	}

	c.broadcaster.ChatMessage(code, msg)
	c.broadcaster.RoomUpdate(room)

	return room, &player, nil
}

// Leave removes a player from a room by explicit request
func (c *Controller) Leave(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	return c.removePlayer(ctx, code, playerID, "left the game")
}

// Disconnect removes a player from whichever room contains them. Unknown
// players are a no-op: the player may have already left explicitly.
func (c *Controller) Disconnect(ctx context.Context, playerID model.PlayerID) error {
	code, err := c.storage.GetPlayerRoom(ctx, playerID)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.removePlayer(ctx, code, playerID, "disconnected")
}

// removePlayer removes a player, transferring host or deleting the room as
// needed. Idempotent: removing an absent player mutates nothing and emits
// nothing, which makes the disconnect/leave race harmless.
func (c *Controller) removePlayer(ctx context.Context, code model.RoomCode, playerID model.PlayerID, reason string) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		return c.storage.DeletePlayerRoom(ctx, playerID)
	}
	if err != nil {
		return err
	}

	idx := -1
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c.storage.DeletePlayerRoom(ctx, playerID)
	}

	removed := room.Players[idx]
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)

	if err := c.storage.DeletePlayerRoom(ctx, playerID); err != nil {
		return err
	}

	if len(room.Players) == 0 {
		return c.deleteRoomLocked(ctx, room)
	}

	var msgs []model.ChatMessage
	if removed.IsHost {
		room.Players[0].IsHost = true
		room.Host = room.Players[0].ID
		msgs = append(msgs, c.appendSystem(room, fmt.Sprintf("%s is now the host.", room.Players[0].Name)))
	}
	msgs = append(msgs, c.appendSystem(room, fmt.Sprintf("%s %s.", removed.Name, reason)))
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	for _, m := range msgs {
		c.broadcaster.ChatMessage(code, m)
	}
	c.broadcaster.RoomUpdate(room)

	return nil
}

// deleteRoomLocked destroys a room, its timer and its lock entry. The
// caller must hold the room's lock.
func (c *Controller) deleteRoomLocked(ctx context.Context, room *model.Room) error {
	for i := range room.Players {
		_ = c.storage.DeletePlayerRoom(ctx, room.Players[i].ID)
	}
	if err := c.storage.DeleteRoom(ctx, room.Code); err != nil {
		return err
	}
	c.timers.stop(room.Code)
	c.locks.remove(room.Code)
	c.broadcaster.RoomClosed(room.Code)

	c.logger.Info("room deleted", slog.String("room", string(room.Code)))
	return nil
}

// SweepIdle reclaims rooms whose last activity exceeds the idle TTL,
// cancelling their timers. It runs independently of the per-room timers.
func (c *Controller) SweepIdle(ctx context.Context) (int, error) {
	codes, err := c.storage.ListRoomCodes(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, code := range codes {
		lock := c.locks.get(code)
		lock.Lock()

		room, err := c.storage.GetRoom(ctx, code)
		if err != nil {
			lock.Unlock()
			continue
		}
		if c.clock.Now().Sub(room.LastActivity) > c.idleTTL {
			if err := c.deleteRoomLocked(ctx, room); err != nil {
				c.logger.Error("failed to reclaim idle room",
					slog.String("room", string(code)),
					slog.String("error", err.Error()),
				)
			} else {
				removed++
			}
		}

		lock.Unlock()
	}

	if removed > 0 {
		c.logger.Info("idle rooms reclaimed", slog.Int("removed", removed))
	}
	return removed, nil
}

// RunSweeper periodically sweeps idle rooms until the context is cancelled
func (c *Controller) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.SweepIdle(ctx); err != nil {
				c.logger.Error("idle sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

// GetRoom retrieves a room by code
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.storage.GetRoom(ctx, code)
}

// RoomSummary is a lightweight view of one active room for the stats surface
type RoomSummary struct {
	Code        model.RoomCode
	PlayerCount int
	Phase       model.Phase
	CreatedAt   time.Time
}

// Stats reports the active room summaries and the total player count
func (c *Controller) Stats(ctx context.Context) ([]RoomSummary, int, error) {
	codes, err := c.storage.ListRoomCodes(ctx)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]RoomSummary, 0, len(codes))
	players := 0
	for _, code := range codes {
		room, err := c.storage.GetRoom(ctx, code)
		if err != nil {
			continue
		}
		summaries = append(summaries, RoomSummary{
			Code:        room.Code,
			PlayerCount: len(room.Players),
			Phase:       room.Phase,
			CreatedAt:   room.CreatedAt,
		})
		players += len(room.Players)
	}
	return summaries, players, nil
}

// appendSystem appends a narrator entry to the room's chat log
func (c *Controller) appendSystem(room *model.Room, text string) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Player:    model.Narrator,
		Message:   text,
		Type:      model.ChatTypeSystem,
		Timestamp: c.clock.Now(),
	}
	room.Chat = append(room.Chat, msg)
	return msg
}
