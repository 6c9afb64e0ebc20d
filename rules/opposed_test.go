package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dicebot/models"
)

func opposedRecord(userID string, level models.SuccessLevel, total, value int) *models.RollRecord {
	return &models.RollRecord{
		UserID:   userID,
		Kind:     models.RollKindSkillCheck,
		Total:    total,
		Skill:    &models.SkillEntry{Name: "斗殴", BaseValue: value, Value: value},
		Decision: &models.DecisionResult{Level: level},
	}
}

func TestDefaultOpposedRule(t *testing.T) {
	t.Run("HigherLevelWins", func(t *testing.T) {
		prior := opposedRecord("alice", models.LevelFail, 80, 50)
		current := opposedRecord("bob", models.LevelSuccess, 30, 50)
		got := DefaultOpposedRule(prior, current)
		assert.Equal(t, "bob", got.Winner)
		assert.False(t, got.Draw)
	})

	t.Run("CriticalBeatsRegular", func(t *testing.T) {
		prior := opposedRecord("alice", models.LevelBest, 1, 50)
		current := opposedRecord("bob", models.LevelSuccess, 20, 50)
		got := DefaultOpposedRule(prior, current)
		assert.Equal(t, "alice", got.Winner)
	})

	t.Run("TieBrokenByDistanceFromTarget", func(t *testing.T) {
		prior := opposedRecord("alice", models.LevelSuccess, 48, 50)  // distance 2
		current := opposedRecord("bob", models.LevelSuccess, 30, 50) // distance 20
		got := DefaultOpposedRule(prior, current)
		assert.Equal(t, "alice", got.Winner)
	})

	t.Run("FullTieIsDraw", func(t *testing.T) {
		prior := opposedRecord("alice", models.LevelSuccess, 40, 50)
		current := opposedRecord("bob", models.LevelSuccess, 40, 50)
		got := DefaultOpposedRule(prior, current)
		assert.True(t, got.Draw)
		assert.Empty(t, got.Winner)
	})

	t.Run("DescriptionUsesUsername", func(t *testing.T) {
		prior := opposedRecord("alice", models.LevelFail, 80, 50)
		current := opposedRecord("bob", models.LevelSuccess, 30, 50)
		current.Username = "鲍勃"
		got := DefaultOpposedRule(prior, current)
		assert.Equal(t, "对抗：鲍勃 胜", got.Description)
	})
}
