package services

import (
	"context"

	"github.com/samber/mo"

	"dicebot/models"
	"dicebot/rules"
)

// CardsService defines the interface for character-sheet operations
type CardsService interface {
	GetCardByUserID(ctx context.Context, userID string) (mo.Option[*models.Card], error)
	GetCardByID(ctx context.Context, id string) (mo.Option[*models.Card], error)
	// ResolveSkill resolves a surface skill name against a card through the
	// alias table, applying the difficulty adjustment to the entry's Value.
	// None means the card has no rating for the skill.
	ResolveSkill(card *models.Card, name string, difficulty rules.Difficulty) mo.Option[models.SkillEntry]
	// NotifyCardDirty persists a card after a roll mutated sheet-derived
	// fields. The roll orchestrator never persists directly.
	NotifyCardDirty(ctx context.Context, card *models.Card) error
}
