package cards

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"dicebot/db"
	"dicebot/models"
	"dicebot/rules"
)

type CardsService struct {
	cardsRepo *db.PostgresCardsRepository
	aliases   *rules.AliasTable
}

func NewCardsService(cardsRepo *db.PostgresCardsRepository, aliases *rules.AliasTable) *CardsService {
	return &CardsService{cardsRepo: cardsRepo, aliases: aliases}
}

func (s *CardsService) GetCardByUserID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.Card], error) {
	log.Printf("📋 Starting to get card for user: %s", userID)
	if userID == "" {
		return mo.None[*models.Card](), fmt.Errorf("user ID cannot be empty")
	}

	maybeCard, err := s.cardsRepo.GetCardByUserID(ctx, userID)
	if err != nil {
		return mo.None[*models.Card](), fmt.Errorf("failed to get card: %w", err)
	}
	if !maybeCard.IsPresent() {
		log.Printf("📋 Completed successfully - no card found for user: %s", userID)
		return mo.None[*models.Card](), nil
	}

	card := maybeCard.MustGet()
	log.Printf("📋 Completed successfully - retrieved card %s for user: %s", card.ID, userID)
	return mo.Some(card), nil
}

func (s *CardsService) GetCardByID(ctx context.Context, id string) (mo.Option[*models.Card], error) {
	log.Printf("📋 Starting to get card by ID: %s", id)
	if id == "" {
		return mo.None[*models.Card](), fmt.Errorf("card ID cannot be empty")
	}

	maybeCard, err := s.cardsRepo.GetCardByID(ctx, id)
	if err != nil {
		return mo.None[*models.Card](), fmt.Errorf("failed to get card: %w", err)
	}
	if !maybeCard.IsPresent() {
		log.Printf("📋 Completed successfully - card not found: %s", id)
		return mo.None[*models.Card](), nil
	}

	log.Printf("📋 Completed successfully - retrieved card: %s", id)
	return maybeCard, nil
}

// ResolveSkill resolves a surface skill name to the card's rating, routing
// special named checks to their backing attribute (sc to 理智, hunch to
// 智力) and applying the difficulty adjustment to the comparison value.
func (s *CardsService) ResolveSkill(
	card *models.Card,
	name string,
	difficulty rules.Difficulty,
) mo.Option[models.SkillEntry] {
	if card == nil || name == "" {
		return mo.None[models.SkillEntry]()
	}

	canonical := s.aliases.Canonical(name)
	backing := rules.BackingAttribute(canonical)

	value, ok := card.Skills[backing]
	if !ok {
		return mo.None[models.SkillEntry]()
	}

	return mo.Some(models.SkillEntry{
		Name:      canonical,
		BaseValue: value,
		Value:     rules.ApplyDifficulty(value, difficulty),
	})
}

func (s *CardsService) NotifyCardDirty(ctx context.Context, card *models.Card) error {
	log.Printf("📋 Starting to persist dirty card: %s", card.ID)

	if err := s.cardsRepo.UpdateCard(ctx, card); err != nil {
		return fmt.Errorf("failed to persist dirty card: %w", err)
	}

	log.Printf("📋 Completed successfully - persisted card: %s", card.ID)
	return nil
}
