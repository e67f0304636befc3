package game

import "github.com/mcoot/werewolfgame-go/internal/model"

// EvaluateWin computes the terminal state from living role counts.
// Villagers win when no werewolves remain; werewolves win when they equal or
// outnumber the living non-werewolves. Total elimination in a single
// resolution step counts as a villager win (W = 0 is checked first).
func EvaluateWin(players []model.Player) (model.Faction, bool) {
	wolves, others := 0, 0
	for _, p := range players {
		if !p.IsAlive {
			continue
		}
		if p.Role == model.RoleWerewolf {
			wolves++
		} else {
			others++
		}
	}

	if wolves == 0 {
		return model.FactionVillagers, true
	}
	if wolves >= others {
		return model.FactionWerewolves, true
	}
	return "", false
}
