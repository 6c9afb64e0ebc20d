package rules

import (
	"fmt"

	"dicebot/models"
)

// Decide classifies a percentile roll against a skill entry. It is a pure
// function of (roll, entry).
//
// A roll of 1 is always a critical success. The critical-failure band
// depends on the unmodified rating: below 50 any roll above 95 is a
// critical failure, at 50 or above only a 100 is. Otherwise the roll
// succeeds when it is at most the (difficulty-adjusted) value.
func Decide(entry models.SkillEntry, roll int) models.DecisionResult {
	switch {
	case roll == 1:
		return models.DecisionResult{
			Success:     true,
			Level:       models.LevelBest,
			Description: "大成功",
		}
	case entry.BaseValue < 50 && roll > 95:
		return models.DecisionResult{
			Success:     false,
			Level:       models.LevelWorst,
			Description: "大失败",
		}
	case entry.BaseValue >= 50 && roll == 100:
		return models.DecisionResult{
			Success:     false,
			Level:       models.LevelWorst,
			Description: "大失败",
		}
	case roll <= entry.Value:
		return models.DecisionResult{
			Success:     true,
			Level:       models.LevelSuccess,
			Description: fmt.Sprintf("≤ %d 成功", entry.Value),
		}
	default:
		return models.DecisionResult{
			Success:     false,
			Level:       models.LevelFail,
			Description: fmt.Sprintf("> %d 失败", entry.Value),
		}
	}
}
