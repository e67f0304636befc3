package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolfgame-go/internal/dependencies/mocks"
	"github.com/mcoot/werewolfgame-go/internal/dependencies/random"
	"github.com/mcoot/werewolfgame-go/internal/model"
)

type RolesSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestRolesSuite(t *testing.T) {
	suite.Run(t, new(RolesSuite))
}

func (s *RolesSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

func (s *RolesSuite) roster(n int) []model.Player {
	players := make([]model.Player, n)
	for i := range players {
		players[i] = model.Player{
			ID:      model.PlayerID(rune('a' + i)),
			IsAlive: true,
			Role:    model.RoleUnassigned,
		}
	}
	return players
}

func (s *RolesSuite) countRoles(players []model.Player) map[model.Role]int {
	counts := make(map[model.Role]int)
	for _, p := range players {
		counts[p.Role]++
	}
	return counts
}

func (s *RolesSuite) TestAssignedMultisetMatchesSettings() {
	players := s.roster(8)
	settings := model.DefaultSettings()

	err := AssignRoles(players, settings, random.New())
	s.Require().NoError(err)

	counts := s.countRoles(players)
	s.Equal(2, counts[model.RoleWerewolf])
	s.Equal(4, counts[model.RoleVillager])
	s.Equal(1, counts[model.RoleSeer])
	s.Equal(1, counts[model.RoleDoctor])
	s.Zero(counts[model.RoleUnassigned])
}

func (s *RolesSuite) TestCountMismatchRejected() {
	players := s.roster(5)

	err := AssignRoles(players, model.DefaultSettings(), random.New())

	s.Require().ErrorIs(err, model.ErrInvalidSettings)
	for _, p := range players {
		s.Equal(model.RoleUnassigned, p.Role)
	}
}

func (s *RolesSuite) TestShuffleUsesQueuedSwaps() {
	// Scripted random: every Intn returns 0, so each pass swaps with index 0.
	players := s.roster(4)
	settings := model.Settings{Werewolves: 1, Seer: 1, Doctor: 1, Villagers: 1}

	err := AssignRoles(players, settings, s.random)
	s.Require().NoError(err)

	// Deck starts [werewolf seer doctor villager]; swapping i<->0 for i=3,2,1
	// yields [seer doctor villager werewolf] dealt in roster order.
	s.Equal(model.RoleSeer, players[0].Role)
	s.Equal(model.RoleDoctor, players[1].Role)
	s.Equal(model.RoleVillager, players[2].Role)
	s.Equal(model.RoleWerewolf, players[3].Role)
}

func (s *RolesSuite) TestMinimumViableGame() {
	players := s.roster(4)
	settings := model.Settings{Werewolves: 1, Villagers: 3}

	err := AssignRoles(players, settings, random.New())
	s.Require().NoError(err)

	counts := s.countRoles(players)
	s.Equal(1, counts[model.RoleWerewolf])
	s.Equal(3, counts[model.RoleVillager])
}
