package game

import "github.com/mcoot/werewolfgame-go/internal/model"

// TallyResult is the outcome of counting a voting phase
type TallyResult struct {
	// Eliminated is the player voted out, empty when no one is eliminated
	Eliminated model.PlayerID
	// VotesCast is the number of valid votes counted
	VotesCast int
}

// TallyVotes counts the votes of living players against living targets and
// returns the elimination decision. A player is eliminated only when they hold
// strictly more votes than every other target and at least one vote was cast;
// a tie for the maximum eliminates no one.
func TallyVotes(players []model.Player) TallyResult {
	living := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		if p.IsAlive {
			living[p.ID] = true
		}
	}

	counts := make(map[model.PlayerID]int)
	cast := 0
	for _, p := range players {
		if !p.IsAlive || p.VotedFor == "" {
			continue
		}
		// Votes may only reference a currently living player
		if !living[p.VotedFor] {
			continue
		}
		counts[p.VotedFor]++
		cast++
	}

	result := TallyResult{VotesCast: cast}
	if cast == 0 {
		return result
	}

	max := 0
	tied := false
	for target, n := range counts {
		switch {
		case n > max:
			max = n
			result.Eliminated = target
			tied = false
		case n == max:
			tied = true
		}
	}
	if tied {
		result.Eliminated = ""
	}
	return result
}
