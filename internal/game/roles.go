package game

import (
	"github.com/mcoot/werewolfgame-go/internal/dependencies/random"
	"github.com/mcoot/werewolfgame-go/internal/model"
)

// AssignRoles deals the role multiset described by the settings to the players
// in roster order, after an unbiased Fisher-Yates shuffle of the roles.
// Returns ErrInvalidSettings when the role counts do not sum to the player
// count.
func AssignRoles(players []model.Player, settings model.Settings, rnd random.Random) error {
	if settings.TotalRoles() != len(players) {
		return model.ErrInvalidSettings
	}

	roles := make([]model.Role, 0, len(players))
	for i := 0; i < settings.Werewolves; i++ {
		roles = append(roles, model.RoleWerewolf)
	}
	for i := 0; i < settings.Seer; i++ {
		roles = append(roles, model.RoleSeer)
	}
	for i := 0; i < settings.Doctor; i++ {
		roles = append(roles, model.RoleDoctor)
	}
	for i := 0; i < settings.Villagers; i++ {
		roles = append(roles, model.RoleVillager)
	}

	for i := len(roles) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		roles[i], roles[j] = roles[j], roles[i]
	}

	for i := range players {
		players[i].Role = roles[i]
	}
	return nil
}
