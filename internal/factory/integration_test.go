package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/services/room"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) tick(code model.RoomCode, n int) {
	for i := 0; i < n; i++ {
		s.Require().NoError(s.app.RoomController.Tick(s.ctx, code))
	}
}

// Test: complete game flow from room creation to a villager victory
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("GAME01")

	// Step 1: Alice creates a room
	created, alice, err := s.app.RoomController.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("GAME01"), created.Code)

	// Step 2: four more players join
	ids := []model.PlayerID{alice.ID}
	for _, name := range []string{"Bob", "Carol", "Dave", "Eve"} {
		_, p, err := s.app.RoomController.JoinRoom(s.ctx, created.Code, name)
		s.Require().NoError(err)
		ids = append(ids, p.ID)
	}

	// Step 3: everyone readies up and the host starts the game.
	// With the mock random exhausted the deal is deterministic: seer,
	// doctor, villager, villager, werewolf in join order.
	for _, id := range ids {
		s.Require().NoError(s.app.RoomController.ToggleReady(s.ctx, created.Code, id))
	}
	settings := model.Settings{
		Werewolves:    1,
		Villagers:     2,
		Seer:          1,
		Doctor:        1,
		DayDuration:   2,
		NightDuration: 2,
	}
	s.Require().NoError(s.app.RoomController.StartGame(s.ctx, created.Code, alice.ID, settings))

	got, err := s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().NoError(err)
	s.Equal(model.PhaseDay, got.Phase)
	s.Equal(model.RoleWerewolf, got.GetPlayer(ids[4]).Role)

	// Step 4: day 1 passes, the vote deadlocks, night falls
	s.tick(created.Code, 2)
	s.tick(created.Code, room.VotingDuration)
	got, err = s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().NoError(err)
	s.Equal(model.PhaseNight, got.Phase)

	// Step 5: the werewolf strikes, the doctor saves, the seer learns
	s.Require().NoError(s.app.RoomController.UseAbility(s.ctx, created.Code, ids[4], ids[2], model.AbilityWerewolf))
	s.Require().NoError(s.app.RoomController.UseAbility(s.ctx, created.Code, ids[1], ids[2], model.AbilityDoctor))
	s.Require().NoError(s.app.RoomController.UseAbility(s.ctx, created.Code, ids[0], ids[4], model.AbilitySeer))
	s.tick(created.Code, 2)

	got, err = s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().NoError(err)
	s.Equal(model.PhaseDay, got.Phase)
	s.Equal(2, got.DayCount)
	s.True(got.GetPlayer(ids[2]).IsAlive)

	// Step 6: day 2 vote eliminates the werewolf and the villagers win
	s.tick(created.Code, 2)
	for _, id := range ids[:4] {
		s.Require().NoError(s.app.RoomController.Vote(s.ctx, created.Code, id, ids[4]))
	}
	s.tick(created.Code, room.VotingDuration)

	got, err = s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().NoError(err)
	s.Equal(model.PhaseEnded, got.Phase)
	s.Equal(model.FactionVillagers, got.Winner)
	s.False(got.GetPlayer(ids[4]).IsAlive)
}

// Test: players leaving mid-game and the room emptying out
func (s *IntegrationSuite) TestRoomLifecycle() {
	s.app.MockRandom.QueueString("GAME02")

	created, alice, err := s.app.RoomController.CreateRoom(s.ctx, "Alice")
	s.Require().NoError(err)
	_, bob, err := s.app.RoomController.JoinRoom(s.ctx, created.Code, "Bob")
	s.Require().NoError(err)

	// Host leaves; Bob inherits the room
	s.Require().NoError(s.app.RoomController.Leave(s.ctx, created.Code, alice.ID))
	got, err := s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().NoError(err)
	s.Equal(bob.ID, got.Host)

	// Last player disconnects; the room is reclaimed
	s.Require().NoError(s.app.RoomController.Disconnect(s.ctx, bob.ID))
	_, err = s.app.RoomController.GetRoom(s.ctx, created.Code)
	s.Require().ErrorIs(err, model.ErrRoomNotFound)
}
