package game

import "github.com/mcoot/werewolfgame-go/internal/model"

// NightOutcome is the result of resolving the night's submitted actions
type NightOutcome struct {
	// Killed is the werewolves' victim, empty when nobody dies
	Killed model.PlayerID
	// Saved is true when the doctor protected the werewolves' target
	Saved bool
	// Peaceful is true when no werewolf attack was submitted
	Peaceful bool
}

// ResolveNight computes who dies from the submitted night actions.
// The seer action is informational only and resolved separately at
// submission time.
func ResolveNight(actions map[string]model.PlayerID) NightOutcome {
	target, ok := actions[model.AbilityWerewolf]
	if !ok || target == "" {
		return NightOutcome{Peaceful: true}
	}
	if actions[model.AbilityDoctor] == target {
		return NightOutcome{Saved: true}
	}
	return NightOutcome{Killed: target}
}
