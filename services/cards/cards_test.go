package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicebot/models"
	"dicebot/rules"
)

func testCard() *models.Card {
	return &models.Card{
		ID:     "card_01H0000000000000000000TEST",
		UserID: "user1",
		Name:   "调查员",
		Skills: map[string]int{
			"侦察": 70,
			"理智": 55,
			"智力": 80,
			"幸运": 45,
		},
	}
}

func TestResolveSkill(t *testing.T) {
	service := NewCardsService(nil, rules.NewAliasTable(rules.DefaultAliases()))
	card := testCard()

	t.Run("DirectSkill", func(t *testing.T) {
		got := service.ResolveSkill(card, "侦察", rules.DifficultyNormal)
		require.True(t, got.IsPresent())
		assert.Equal(t, models.SkillEntry{Name: "侦察", BaseValue: 70, Value: 70}, got.MustGet())
	})

	t.Run("AliasResolves", func(t *testing.T) {
		got := service.ResolveSkill(card, "侦查", rules.DifficultyNormal)
		require.True(t, got.IsPresent())
		assert.Equal(t, "侦察", got.MustGet().Name)
	})

	t.Run("HardDifficultyHalvesValueOnly", func(t *testing.T) {
		got := service.ResolveSkill(card, "侦察", rules.DifficultyHard)
		require.True(t, got.IsPresent())
		assert.Equal(t, 70, got.MustGet().BaseValue)
		assert.Equal(t, 35, got.MustGet().Value)
	})

	t.Run("ExtremeDifficultyFifthsFloored", func(t *testing.T) {
		got := service.ResolveSkill(card, "理智", rules.DifficultyExtreme)
		require.True(t, got.IsPresent())
		assert.Equal(t, 11, got.MustGet().Value)
	})

	t.Run("SanityCheckBypassesSkillTable", func(t *testing.T) {
		got := service.ResolveSkill(card, "sc", rules.DifficultyNormal)
		require.True(t, got.IsPresent())
		assert.Equal(t, models.SkillEntry{Name: "理智", BaseValue: 55, Value: 55}, got.MustGet())
	})

	t.Run("HunchBackedByIntelligence", func(t *testing.T) {
		got := service.ResolveSkill(card, "灵感", rules.DifficultyNormal)
		require.True(t, got.IsPresent())
		assert.Equal(t, 80, got.MustGet().BaseValue)
	})

	t.Run("LuckCheck", func(t *testing.T) {
		got := service.ResolveSkill(card, "运气", rules.DifficultyNormal)
		require.True(t, got.IsPresent())
		assert.Equal(t, 45, got.MustGet().Value)
	})

	t.Run("UnknownSkillIsNone", func(t *testing.T) {
		assert.False(t, service.ResolveSkill(card, "克苏鲁神话", rules.DifficultyNormal).IsPresent())
	})

	t.Run("NilCardIsNone", func(t *testing.T) {
		assert.False(t, service.ResolveSkill(nil, "侦察", rules.DifficultyNormal).IsPresent())
	})
}
