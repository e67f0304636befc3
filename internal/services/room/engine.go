package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/werewolfgame-go/internal/game"
	"github.com/mcoot/werewolfgame-go/internal/model"
)

// StartGame transitions a lobby room into the day phase: validates the
// request, deals roles, resets per-player state and starts the room timer.
// Only the host may start, every player must be ready, at least MinPlayers
// are required, and the configured role counts must sum to the player count.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, playerID model.PlayerID, settings model.Settings) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if room.Phase != model.PhaseLobby {
		return model.ErrGameInProgress
	}
	if room.Host != playerID {
		return model.ErrNotHost
	}
	if len(room.Players) < model.MinPlayers {
		return model.ErrInsufficientPlayers
	}
	if !room.AllReady() {
		return model.ErrPlayersNotReady
	}

	if err := game.AssignRoles(room.Players, settings, c.random); err != nil {
		return err
	}

	for i := range room.Players {
		room.Players[i].IsAlive = true
		room.Players[i].VotedFor = ""
		room.Players[i].HasUsedAbility = false
	}

	room.Settings = settings
	room.Phase = model.PhaseDay
	room.DayCount = 1
	room.TimeRemaining = settings.DayDuration
	room.NightActions = map[string]model.PlayerID{}
	msg := c.appendSystem(room, "Roles have been assigned! The game begins now.")
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.broadcaster.ChatMessage(code, msg)
	c.broadcaster.RoomUpdate(room)
	c.startTimer(code)

	c.logger.Info("game started",
		slog.String("room", string(code)),
		slog.Int("players", len(room.Players)),
	)
	return nil
}

// ToggleReady flips a player's ready flag. Unknown rooms or players are
// ignored: the request likely raced a removal.
func (c *Controller) ToggleReady(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return nil
	}

	player.IsReady = !player.IsReady
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}
	c.broadcaster.RoomUpdate(room)
	return nil
}

// Vote toggles a living player's vote against a living target during the
// voting phase. Votes arriving in any other phase, or referencing unknown or
// dead players, are silently ignored: they are normal races against the
// phase timer, not errors.
func (c *Controller) Vote(ctx context.Context, code model.RoomCode, voterID, targetID model.PlayerID) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if room.Phase != model.PhaseVoting {
		return nil
	}

	voter := room.GetPlayer(voterID)
	target := room.GetPlayer(targetID)
	if voter == nil || !voter.IsAlive || target == nil || !target.IsAlive {
		return nil
	}

	// Voting for your current target again withdraws the vote
	if voter.VotedFor == targetID {
		voter.VotedFor = ""
	} else {
		voter.VotedFor = targetID
	}
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}
	c.broadcaster.RoomUpdate(room)
	return nil
}

// UseAbility records a night action for a living player, once per night.
// The ability must match the player's own role. Seer investigations resolve
// immediately with a private push to the requester alone.
func (c *Controller) UseAbility(ctx context.Context, code model.RoomCode, playerID, targetID model.PlayerID, ability string) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if room.Phase != model.PhaseNight {
		return nil
	}

	player := room.GetPlayer(playerID)
	target := room.GetPlayer(targetID)
	if player == nil || !player.IsAlive || target == nil {
		return nil
	}
	if ability != string(player.Role) {
		return nil
	}
	switch ability {
	case model.AbilityWerewolf, model.AbilityDoctor, model.AbilitySeer:
	default:
		return nil
	}
	if player.HasUsedAbility {
		return model.ErrAlreadyActed
	}

	player.HasUsedAbility = true
	room.NightActions[ability] = targetID
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	if ability == model.AbilitySeer {
		c.broadcaster.SeerResult(code, playerID, model.SeerResult{
			TargetName: target.Name,
			TargetRole: target.Role,
		})
	}
	c.broadcaster.RoomUpdate(room)
	return nil
}

// SendMessage appends a chat entry from a living player and broadcasts it
func (c *Controller) SendMessage(ctx context.Context, code model.RoomCode, playerID model.PlayerID, text string, chatType model.ChatType) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	player := room.GetPlayer(playerID)
	if player == nil || !player.IsAlive {
		return nil
	}

	if chatType != model.ChatTypeWerewolf {
		chatType = model.ChatTypePlayer
	}
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Player:    player.Name,
		Message:   text,
		Type:      chatType,
		Timestamp: c.clock.Now(),
	}
	room.Chat = append(room.Chat, msg)
	room.LastActivity = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.broadcaster.ChatMessage(code, msg)
	c.broadcaster.RoomUpdate(room)
	return nil
}

// Tick advances a room's countdown by one second under the room's lock and
// runs the phase transition when it reaches zero. Ticks against rooms that
// have meanwhile ended, emptied or been deleted stop the timer and no-op.
func (c *Controller) Tick(ctx context.Context, code model.RoomCode) error {
	lock := c.locks.get(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if errors.Is(err, model.ErrRoomNotFound) {
		c.timers.stop(code)
		return nil
	}
	if err != nil {
		return err
	}
	if room.Phase == model.PhaseLobby || room.Phase == model.PhaseEnded {
		c.timers.stop(code)
		return nil
	}

	room.TimeRemaining--

	var msgs []model.ChatMessage
	if room.TimeRemaining <= 0 {
		msgs = c.advancePhase(room)
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	for _, m := range msgs {
		c.broadcaster.ChatMessage(code, m)
	}
	c.broadcaster.RoomUpdate(room)

	if room.Phase == model.PhaseEnded {
		c.timers.stop(code)
	}
	return nil
}

// advancePhase runs one transition of the phase state machine. The caller
// holds the room's lock and is responsible for saving and broadcasting.
func (c *Controller) advancePhase(room *model.Room) []model.ChatMessage {
	var msgs []model.ChatMessage
	sys := func(text string) {
		msgs = append(msgs, c.appendSystem(room, text))
	}

	switch room.Phase {
	case model.PhaseDay:
		room.Phase = model.PhaseVoting
		room.TimeRemaining = VotingDuration
		sys("Time to vote! Choose who to eliminate.")

	case model.PhaseVoting:
		tally := game.TallyVotes(room.Players)
		if tally.Eliminated != "" {
			victim := room.GetPlayer(tally.Eliminated)
			victim.IsAlive = false
			sys(fmt.Sprintf("%s was eliminated! They were a %s.", victim.Name, victim.Role))
		} else if tally.VotesCast == 0 {
			sys("No votes were cast. No one was eliminated.")
		} else {
			sys("The vote was tied. No one was eliminated.")
		}
		// Votes are cleared regardless of outcome
		for i := range room.Players {
			room.Players[i].VotedFor = ""
		}

		if c.checkWin(room, sys) {
			return msgs
		}

		room.DayCount++
		room.NightActions = map[string]model.PlayerID{}
		for i := range room.Players {
			room.Players[i].HasUsedAbility = false
		}
		room.Phase = model.PhaseNight
		room.TimeRemaining = room.Settings.NightDuration
		sys("Night falls. Werewolves, choose your victim.")

	case model.PhaseNight:
		outcome := game.ResolveNight(room.NightActions)
		switch {
		case outcome.Saved:
			sys("The doctor saved someone from the werewolves!")
		case outcome.Peaceful:
			sys("The night was peaceful. No one died.")
		default:
			victim := room.GetPlayer(outcome.Killed)
			if victim != nil && victim.IsAlive {
				victim.IsAlive = false
				sys(fmt.Sprintf("%s was killed in the night. They were a %s.", victim.Name, victim.Role))
			} else {
				sys("The night was peaceful. No one died.")
			}
		}

		if c.checkWin(room, sys) {
			return msgs
		}

		room.Phase = model.PhaseDay
		room.TimeRemaining = room.Settings.DayDuration
		sys(fmt.Sprintf("Day %d dawns.", room.DayCount))
	}

	return msgs
}

// checkWin evaluates the win condition and, when met, performs the one-time
// transition into the terminal ended phase
func (c *Controller) checkWin(room *model.Room, sys func(string)) bool {
	if room.Winner != "" {
		return true
	}
	winner, done := game.EvaluateWin(room.Players)
	if !done {
		return false
	}

	room.Winner = winner
	room.Phase = model.PhaseEnded
	room.TimeRemaining = 0
	if winner == model.FactionWerewolves {
		sys("The werewolves have won!")
	} else {
		sys("The villagers have won!")
	}

	c.logger.Info("game ended",
		slog.String("room", string(room.Code)),
		slog.String("winner", string(winner)),
	)
	return true
}
