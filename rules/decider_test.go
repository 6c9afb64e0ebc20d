package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dicebot/models"
)

func entry(base, value int) models.SkillEntry {
	return models.SkillEntry{Name: "侦察", BaseValue: base, Value: value}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		entry       models.SkillEntry
		roll        int
		wantLevel   models.SuccessLevel
		wantSuccess bool
	}{
		{"RollOfOneIsAlwaysBest", entry(40, 40), 1, models.LevelBest, true},
		{"RollOfOneBeatsZeroSkill", entry(0, 0), 1, models.LevelBest, true},
		{"LowSkillCritFailsAbove95", entry(40, 40), 96, models.LevelWorst, false},
		{"LowSkillCritFailsAt100", entry(40, 40), 100, models.LevelWorst, false},
		{"HighSkillDoesNotCritFailAt96", entry(60, 60), 96, models.LevelFail, false},
		{"HighSkillCritFailsOnlyAt100", entry(60, 60), 100, models.LevelWorst, false},
		{"RegularSuccessAtValue", entry(60, 60), 60, models.LevelSuccess, true},
		{"RegularFailAboveValue", entry(60, 60), 61, models.LevelFail, false},
		{"HardValueUsedForComparison", entry(60, 30), 31, models.LevelFail, false},
		{"HardValueSuccess", entry(60, 30), 30, models.LevelSuccess, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.entry, tt.roll)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestDecideDescriptions(t *testing.T) {
	assert.Equal(t, "大成功", Decide(entry(40, 40), 1).Description)
	assert.Equal(t, "大失败", Decide(entry(40, 40), 96).Description)
	assert.Equal(t, "≤ 60 成功", Decide(entry(60, 60), 45).Description)
	assert.Equal(t, "> 60 失败", Decide(entry(60, 60), 75).Description)
}

func TestSplitDifficulty(t *testing.T) {
	tests := []struct {
		descriptor string
		wantName   string
		wantDiff   Difficulty
	}{
		{" 侦察", "侦察", DifficultyNormal},
		{"困难侦察", "侦察", DifficultyHard},
		{"困难 侦察", "侦察", DifficultyHard},
		{"极难斗殴", "斗殴", DifficultyExtreme},
		{"极限斗殴", "斗殴", DifficultyExtreme},
		{"", "", DifficultyNormal},
	}

	for _, tt := range tests {
		name, diff := SplitDifficulty(tt.descriptor)
		assert.Equal(t, tt.wantName, name, tt.descriptor)
		assert.Equal(t, tt.wantDiff, diff, tt.descriptor)
	}
}

func TestApplyDifficulty(t *testing.T) {
	assert.Equal(t, 70, ApplyDifficulty(70, DifficultyNormal))
	assert.Equal(t, 35, ApplyDifficulty(70, DifficultyHard))
	assert.Equal(t, 14, ApplyDifficulty(70, DifficultyExtreme))
	// floor rounding
	assert.Equal(t, 32, ApplyDifficulty(65, DifficultyHard))
	assert.Equal(t, 13, ApplyDifficulty(69, DifficultyExtreme))
}
