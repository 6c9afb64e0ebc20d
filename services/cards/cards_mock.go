package cards

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"dicebot/models"
	"dicebot/rules"
)

// MockCardsService is a mock implementation of the CardsService interface
type MockCardsService struct {
	mock.Mock
}

func (m *MockCardsService) GetCardByUserID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.Card], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(mo.Option[*models.Card]), args.Error(1)
}

func (m *MockCardsService) GetCardByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.Card], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Card]), args.Error(1)
}

func (m *MockCardsService) ResolveSkill(
	card *models.Card,
	name string,
	difficulty rules.Difficulty,
) mo.Option[models.SkillEntry] {
	args := m.Called(card, name, difficulty)
	return args.Get(0).(mo.Option[models.SkillEntry])
}

func (m *MockCardsService) NotifyCardDirty(ctx context.Context, card *models.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}
