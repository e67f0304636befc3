package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolfgame-go/internal/dependencies/mocks"
	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/storage/memory"
	"github.com/mcoot/werewolfgame-go/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	ctx         context.Context
	controller  *Controller
	broadcaster *fakeBroadcaster
	clock       *mocks.MockClock
	random      *mocks.MockRandom
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
	s.broadcaster = newFakeBroadcaster()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	s.controller = NewController(
		memory.New(),
		s.broadcaster,
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.controller.tickInterval = time.Hour
}

func (s *EngineSuite) testSettings() model.Settings {
	return model.Settings{
		Werewolves:    1,
		Villagers:     2,
		Seer:          1,
		Doctor:        1,
		DayDuration:   2,
		NightDuration: 2,
	}
}

// lobbyRoom creates a room with five ready players: the host plus four more
func (s *EngineSuite) lobbyRoom() (model.RoomCode, []model.PlayerID) {
	s.random.QueueString("GAME01")
	room, host, err := s.controller.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)

	ids := []model.PlayerID{host.ID}
	for _, name := range []string{"Bob", "Carol", "Dave", "Eve"} {
		_, p, err := s.controller.JoinRoom(s.ctx, room.Code, name)
		s.Require().NoError(err)
		ids = append(ids, p.ID)
	}
	for _, id := range ids {
		s.Require().NoError(s.controller.ToggleReady(s.ctx, room.Code, id))
	}
	return room.Code, ids
}

// startedRoom starts a game in lobbyRoom's room. With the mock random
// exhausted the shuffle is deterministic: the roster gets seer, doctor,
// villager, villager, werewolf in join order.
func (s *EngineSuite) startedRoom() (model.RoomCode, []model.PlayerID) {
	code, ids := s.lobbyRoom()
	s.Require().NoError(s.controller.StartGame(s.ctx, code, ids[0], s.testSettings()))
	return code, ids
}

func (s *EngineSuite) tick(code model.RoomCode, n int) {
	for i := 0; i < n; i++ {
		s.Require().NoError(s.controller.Tick(s.ctx, code))
	}
}

func (s *EngineSuite) room(code model.RoomCode) *model.Room {
	room, err := s.controller.GetRoom(s.ctx, code)
	s.Require().NoError(err)
	return room
}

func (s *EngineSuite) TestStartGameRequiresHost() {
	code, ids := s.lobbyRoom()
	err := s.controller.StartGame(s.ctx, code, ids[1], s.testSettings())
	s.Require().ErrorIs(err, model.ErrNotHost)
}

func (s *EngineSuite) TestStartGameRequiresMinimumPlayers() {
	s.random.QueueString("GAME01")
	room, host, err := s.controller.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Require().NoError(s.controller.ToggleReady(s.ctx, room.Code, host.ID))

	err = s.controller.StartGame(s.ctx, room.Code, host.ID, s.testSettings())
	s.Require().ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestStartGameRequiresAllReady() {
	code, ids := s.lobbyRoom()
	// Un-ready one player
	s.Require().NoError(s.controller.ToggleReady(s.ctx, code, ids[3]))

	err := s.controller.StartGame(s.ctx, code, ids[0], s.testSettings())
	s.Require().ErrorIs(err, model.ErrPlayersNotReady)
}

func (s *EngineSuite) TestStartGameRejectsMismatchedRoleCounts() {
	code, ids := s.lobbyRoom()
	settings := s.testSettings()
	settings.Villagers = 5

	err := s.controller.StartGame(s.ctx, code, ids[0], settings)
	s.Require().ErrorIs(err, model.ErrInvalidSettings)
}

func (s *EngineSuite) TestStartGameTwice() {
	code, ids := s.startedRoom()
	err := s.controller.StartGame(s.ctx, code, ids[0], s.testSettings())
	s.Require().ErrorIs(err, model.ErrGameInProgress)
}

func (s *EngineSuite) TestStartGameDealsRolesAndEntersDay() {
	code, _ := s.startedRoom()

	room := s.room(code)
	s.Equal(model.PhaseDay, room.Phase)
	s.Equal(1, room.DayCount)
	s.Equal(2, room.TimeRemaining)

	counts := map[model.Role]int{}
	for _, p := range room.Players {
		counts[p.Role]++
		s.True(p.IsAlive)
		s.False(p.HasUsedAbility)
		s.Empty(p.VotedFor)
	}
	s.Equal(1, counts[model.RoleWerewolf])
	s.Equal(2, counts[model.RoleVillager])
	s.Equal(1, counts[model.RoleSeer])
	s.Equal(1, counts[model.RoleDoctor])
}

func (s *EngineSuite) TestDayCountsDownIntoVoting() {
	code, _ := s.startedRoom()

	s.tick(code, 1)
	s.Equal(model.PhaseDay, s.room(code).Phase)

	s.tick(code, 1)
	room := s.room(code)
	s.Equal(model.PhaseVoting, room.Phase)
	s.Equal(VotingDuration, room.TimeRemaining)
	s.Contains(s.broadcaster.chatTexts(code), "Time to vote! Choose who to eliminate.")
}

func (s *EngineSuite) TestVoteToggles() {
	code, ids := s.startedRoom()
	s.tick(code, 2)

	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[4]))
	s.Equal(ids[4], s.room(code).GetPlayer(ids[0]).VotedFor)

	// Voting the same target again withdraws the vote
	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[4]))
	s.Empty(s.room(code).GetPlayer(ids[0]).VotedFor)

	// A different target replaces it
	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[2]))
	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[4]))
	s.Equal(ids[4], s.room(code).GetPlayer(ids[0]).VotedFor)
}

func (s *EngineSuite) TestVoteOutsideVotingPhaseIgnored() {
	code, ids := s.startedRoom()

	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[4]))
	s.Empty(s.room(code).GetPlayer(ids[0]).VotedFor)
}

func (s *EngineSuite) TestTiedVoteEliminatesNoOne() {
	code, ids := s.startedRoom()
	s.tick(code, 2)

	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[0], ids[1]))
	s.Require().NoError(s.controller.Vote(s.ctx, code, ids[1], ids[0]))
	s.tick(code, VotingDuration)

	room := s.room(code)
	s.Equal(model.PhaseNight, room.Phase)
	for _, p := range room.Players {
		s.True(p.IsAlive)
		s.Empty(p.VotedFor)
	}
	s.Contains(s.broadcaster.chatTexts(code), "The vote was tied. No one was eliminated.")
}

func (s *EngineSuite) TestNoVotesEliminatesNoOne() {
	code, _ := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	s.Equal(model.PhaseNight, s.room(code).Phase)
	s.Contains(s.broadcaster.chatTexts(code), "No votes were cast. No one was eliminated.")
}

func (s *EngineSuite) TestAbilityOncePerNight() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	// ids[4] is the werewolf under the deterministic deal
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[2], model.AbilityWerewolf))
	err := s.controller.UseAbility(s.ctx, code, ids[4], ids[3], model.AbilityWerewolf)
	s.Require().ErrorIs(err, model.ErrAlreadyActed)

	s.Equal(ids[2], s.room(code).NightActions[model.AbilityWerewolf])
}

func (s *EngineSuite) TestAbilityMustMatchRole() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	// ids[2] is a villager; the claim is ignored outright
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[2], ids[0], model.AbilityWerewolf))

	room := s.room(code)
	s.Empty(room.NightActions)
	s.False(room.GetPlayer(ids[2]).HasUsedAbility)
}

func (s *EngineSuite) TestAbilityOutsideNightIgnored() {
	code, ids := s.startedRoom()

	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[2], model.AbilityWerewolf))
	s.Empty(s.room(code).NightActions)
}

func (s *EngineSuite) TestSeerGetsPrivateResult() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[0], ids[4], model.AbilitySeer))

	s.Require().Len(s.broadcaster.seer, 1)
	push := s.broadcaster.seer[0]
	s.Equal(code, push.code)
	s.Equal(ids[0], push.to)
	s.Equal("Eve", push.result.TargetName)
	s.Equal(model.RoleWerewolf, push.result.TargetRole)
}

func (s *EngineSuite) TestDoctorSaveBlocksKill() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[1], model.AbilityWerewolf))
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[1], ids[1], model.AbilityDoctor))
	s.tick(code, 2)

	room := s.room(code)
	s.Equal(model.PhaseDay, room.Phase)
	s.True(room.GetPlayer(ids[1]).IsAlive)
	s.Contains(s.broadcaster.chatTexts(code), "The doctor saved someone from the werewolves!")
}

func (s *EngineSuite) TestNightKillRevealsRole() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)

	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[2], model.AbilityWerewolf))
	s.tick(code, 2)

	room := s.room(code)
	s.False(room.GetPlayer(ids[2]).IsAlive)
	s.Contains(s.broadcaster.chatTexts(code), "Carol was killed in the night. They were a villager.")
}

func (s *EngineSuite) TestVotingOutWerewolfEndsGame() {
	code, ids := s.startedRoom()
	s.tick(code, 2)

	for _, id := range ids[:4] {
		s.Require().NoError(s.controller.Vote(s.ctx, code, id, ids[4]))
	}
	s.tick(code, VotingDuration)

	room := s.room(code)
	s.Equal(model.PhaseEnded, room.Phase)
	s.Equal(model.FactionVillagers, room.Winner)
	s.Equal(0, room.TimeRemaining)
	s.False(room.GetPlayer(ids[4]).IsAlive)
	s.Contains(s.broadcaster.chatTexts(code), "Eve was eliminated! They were a werewolf.")
	s.Contains(s.broadcaster.chatTexts(code), "The villagers have won!")
}

func (s *EngineSuite) TestWerewolfParityEndsGame() {
	code, ids := s.startedRoom()

	// Night 1: kill the seer
	s.tick(code, 2)
	s.tick(code, VotingDuration)
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[0], model.AbilityWerewolf))
	s.tick(code, 2)
	s.Equal(model.PhaseDay, s.room(code).Phase)
	s.Equal(2, s.room(code).DayCount)

	// Night 2: kill the doctor
	s.tick(code, 2)
	s.tick(code, VotingDuration)
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[1], model.AbilityWerewolf))
	s.tick(code, 2)

	// Night 3: kill a villager, leaving one werewolf and one villager
	s.tick(code, 2)
	s.tick(code, VotingDuration)
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[2], model.AbilityWerewolf))
	s.tick(code, 2)

	room := s.room(code)
	s.Equal(model.PhaseEnded, room.Phase)
	s.Equal(model.FactionWerewolves, room.Winner)
	s.Contains(s.broadcaster.chatTexts(code), "The werewolves have won!")
}

func (s *EngineSuite) TestEndedRoomIgnoresFurtherTicks() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	for _, id := range ids[:4] {
		s.Require().NoError(s.controller.Vote(s.ctx, code, id, ids[4]))
	}
	s.tick(code, VotingDuration)
	s.Require().Equal(model.PhaseEnded, s.room(code).Phase)

	winner := s.room(code).Winner
	s.tick(code, 5)
	room := s.room(code)
	s.Equal(model.PhaseEnded, room.Phase)
	s.Equal(winner, room.Winner)
}

func (s *EngineSuite) TestSendMessage() {
	code, ids := s.lobbyRoom()

	s.Require().NoError(s.controller.SendMessage(s.ctx, code, ids[1], "hello all", model.ChatTypePlayer))

	room := s.room(code)
	last := room.Chat[len(room.Chat)-1]
	s.Equal("Bob", last.Player)
	s.Equal("hello all", last.Message)
	s.Equal(model.ChatTypePlayer, last.Type)
}

func (s *EngineSuite) TestDeadPlayerCannotChat() {
	code, ids := s.startedRoom()
	s.tick(code, 2)
	s.tick(code, VotingDuration)
	s.Require().NoError(s.controller.UseAbility(s.ctx, code, ids[4], ids[2], model.AbilityWerewolf))
	s.tick(code, 2)

	before := len(s.room(code).Chat)
	s.Require().NoError(s.controller.SendMessage(s.ctx, code, ids[2], "I am a ghost", model.ChatTypePlayer))
	s.Len(s.room(code).Chat, before)
}

func (s *EngineSuite) TestTickDoesNotRefreshIdleActivity() {
	code, _ := s.startedRoom()
	last := s.room(code).LastActivity

	s.clock.Advance(time.Minute)
	s.tick(code, 1)

	s.Equal(last, s.room(code).LastActivity)
}
