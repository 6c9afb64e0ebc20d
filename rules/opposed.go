package rules

import (
	"fmt"

	"dicebot/models"
)

// OpposedRule combines a prior cached roll and the current roll into a
// relative winner. The comparison is ruleset-defined, so the orchestrator
// takes it as a pluggable function.
type OpposedRule func(prior, current *models.RollRecord) models.OpposedOutcome

// DefaultOpposedRule: the higher success level wins; on equal levels the
// roll closer to its own target value wins; a full tie is a draw.
func DefaultOpposedRule(prior, current *models.RollRecord) models.OpposedOutcome {
	priorLevel := prior.Decision.Level
	currentLevel := current.Decision.Level

	switch {
	case currentLevel > priorLevel:
		return winnerOutcome(current)
	case currentLevel < priorLevel:
		return winnerOutcome(prior)
	}

	priorDist := distanceFromTarget(prior)
	currentDist := distanceFromTarget(current)
	switch {
	case currentDist < priorDist:
		return winnerOutcome(current)
	case currentDist > priorDist:
		return winnerOutcome(prior)
	default:
		return models.OpposedOutcome{Draw: true, Description: "对抗：平局"}
	}
}

func winnerOutcome(record *models.RollRecord) models.OpposedOutcome {
	name := record.Username
	if name == "" {
		name = record.UserID
	}
	return models.OpposedOutcome{
		Winner:      record.UserID,
		Description: fmt.Sprintf("对抗：%s 胜", name),
	}
}

func distanceFromTarget(record *models.RollRecord) int {
	if record.Skill == nil {
		return record.Total
	}
	dist := record.Total - record.Skill.Value
	if dist < 0 {
		dist = -dist
	}
	return dist
}
