package dice

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dicebot/clients"
	"dicebot/evaluator"
	"dicebot/models"
	"dicebot/rules"
	"dicebot/services/cards"
)

func containing(fragment string) interface{} {
	return mock.MatchedBy(func(content string) bool {
		return strings.Contains(content, fragment)
	})
}

func TestProcessMessageEvent_IgnoresOrdinaryChat(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessMessageEvent(context.Background(), models.MessageEvent{
		ChannelID: "CH1",
		MessageID: "msg_1",
		UserID:    "U1",
		Content:   "just talking about dice",
	})

	require.NoError(t, err)
	chat.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessageEvent_PostsPlainRollResult(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	chat.On("PostMessage", mock.Anything, "CH1", containing("d20=15")).Return("msg_2", nil)
	cardsService := new(cards.MockCardsService)
	eval := &stubEvaluator{results: map[string]*evaluator.Evaluation{
		"d20": fixedRoll("d20", 15),
	}}
	useCase := newTestUseCase(t, chat, eval, cardsService)

	err := useCase.ProcessMessageEvent(context.Background(), models.MessageEvent{
		ChannelID: "CH1",
		MessageID: "msg_1",
		UserID:    "U1",
		Username:  "Alice",
		Content:   ".rd20",
	})

	require.NoError(t, err)
	chat.AssertExpectations(t)
	assert.Equal(t, 0, useCase.opposedRolls.Len())
}

func TestProcessMessageEvent_SkillCheckIsRemembered(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	chat.On("PostMessage", mock.Anything, "CH1", containing("≤ 60 成功")).Return("msg_7", nil)
	cardsService := new(cards.MockCardsService)
	card := &models.Card{ID: "card_1", UserID: "U1"}
	cardsService.On("GetCardByUserID", mock.Anything, "U1").Return(mo.Some(card), nil)
	cardsService.On("ResolveSkill", card, "侦察", rules.DifficultyNormal).
		Return(mo.Some(models.SkillEntry{Name: "侦察", BaseValue: 60, Value: 60}))
	cardsService.On("NotifyCardDirty", mock.Anything, card).Return(nil)

	eval := &stubEvaluator{results: map[string]*evaluator.Evaluation{
		"d%": fixedRoll("d%", 30),
	}}
	useCase := newTestUseCase(t, chat, eval, cardsService)

	err := useCase.ProcessMessageEvent(context.Background(), models.MessageEvent{
		ChannelID: "CH1",
		MessageID: "msg_1",
		UserID:    "U1",
		Username:  "Alice",
		Content:   ".ra侦察",
	})

	require.NoError(t, err)
	remembered, ok := useCase.opposedRolls.Get("msg_7").Get()
	require.True(t, ok)
	assert.Equal(t, "U1", remembered.UserID)
}

func TestProcessMessageEvent_HiddenRollSendsTwoPayloads(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	chat.On("PostDirectMessage", mock.Anything, "U1", containing("d%=30")).Return(nil)
	chat.On("PostMessage", mock.Anything, "CH1", "Alice 进行了一次暗骰").Return("msg_3", nil)
	cardsService := new(cards.MockCardsService)
	card := &models.Card{ID: "card_1", UserID: "U1"}
	cardsService.On("GetCardByUserID", mock.Anything, "U1").Return(mo.Some(card), nil)
	cardsService.On("ResolveSkill", card, "侦察", rules.DifficultyNormal).
		Return(mo.Some(models.SkillEntry{Name: "侦察", BaseValue: 60, Value: 60}))
	cardsService.On("NotifyCardDirty", mock.Anything, card).Return(nil)

	eval := &stubEvaluator{results: map[string]*evaluator.Evaluation{
		"d%": fixedRoll("d%", 30),
	}}
	useCase := newTestUseCase(t, chat, eval, cardsService)

	err := useCase.ProcessMessageEvent(context.Background(), models.MessageEvent{
		ChannelID: "CH1",
		MessageID: "msg_1",
		UserID:    "U1",
		Username:  "Alice",
		Content:   ".rh侦察",
	})

	require.NoError(t, err)
	chat.AssertExpectations(t)
	assert.Equal(t, 0, useCase.opposedRolls.Len())
}

func TestProcessMessageEvent_InvalidExpressionStaysSilent(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessMessageEvent(context.Background(), models.MessageEvent{
		ChannelID: "CH1",
		MessageID: "msg_1",
		UserID:    "U1",
		Content:   ".rnotdice",
	})

	require.NoError(t, err)
	chat.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessReactionEvent_QuickRollFromEmbeddedInstruction(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("FetchMessageText", mock.Anything, "CH1", "msg_src").
		Return(mo.Some("请对这条线索投困难侦察"), nil)
	chat.On("PostMessage", mock.Anything, "CH1", containing("≤ 30 成功")).Return("msg_9", nil)
	cardsService := new(cards.MockCardsService)
	card := &models.Card{ID: "card_1", UserID: "U2"}
	cardsService.On("GetCardByUserID", mock.Anything, "U2").Return(mo.Some(card), nil)
	cardsService.On("ResolveSkill", card, "侦察", rules.DifficultyHard).
		Return(mo.Some(models.SkillEntry{Name: "侦察", BaseValue: 60, Value: 30}))
	cardsService.On("NotifyCardDirty", mock.Anything, card).Return(nil)

	eval := &stubEvaluator{results: map[string]*evaluator.Evaluation{
		"d%": fixedRoll("d%", 25),
	}}
	useCase := newTestUseCase(t, chat, eval, cardsService)

	err := useCase.ProcessReactionEvent(context.Background(), models.ReactionEvent{
		ChannelID: "CH1",
		MessageID: "msg_src",
		UserID:    "U2",
		Username:  "Bob",
		Emoji:     "🎲",
	})

	require.NoError(t, err)
	chat.AssertExpectations(t)
	_, remembered := useCase.opposedRolls.Get("msg_9").Get()
	assert.True(t, remembered)
}

func TestProcessReactionEvent_IgnoresOtherEmoji(t *testing.T) {
	chat := new(clients.MockChatClient)
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessReactionEvent(context.Background(), models.ReactionEvent{
		ChannelID: "CH1",
		MessageID: "msg_src",
		UserID:    "U2",
		Emoji:     "thumbsup",
	})

	require.NoError(t, err)
	chat.AssertNotCalled(t, "FetchMessageText", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessReactionEvent_FetchFailureProducesNoReply(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("FetchMessageText", mock.Anything, "CH1", "msg_src").
		Return(mo.None[string](), fmt.Errorf("transport unavailable"))
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessReactionEvent(context.Background(), models.ReactionEvent{
		ChannelID: "CH1",
		MessageID: "msg_src",
		UserID:    "U2",
		Emoji:     "game_die",
	})

	require.NoError(t, err)
	chat.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessReactionEvent_MessageWithoutInstructionIsIgnored(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("FetchMessageText", mock.Anything, "CH1", "msg_src").
		Return(mo.Some("nothing rollable here"), nil)
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessReactionEvent(context.Background(), models.ReactionEvent{
		ChannelID: "CH1",
		MessageID: "msg_src",
		UserID:    "U2",
		Emoji:     "🎲",
	})

	require.NoError(t, err)
	chat.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessDirectMessageEvent_RollsWithoutSheet(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	chat.On("PostMessage", mock.Anything, "DM1", containing("d100=42")).Return("msg_2", nil)
	cardsService := new(cards.MockCardsService)
	eval := &stubEvaluator{results: map[string]*evaluator.Evaluation{
		"d100": fixedRoll("d100", 42),
	}}
	useCase := newTestUseCase(t, chat, eval, cardsService)

	err := useCase.ProcessDirectMessageEvent(context.Background(), models.DirectMessageEvent{
		ChannelID: "DM1",
		UserID:    "U1",
		Username:  "Alice",
		Content:   ".rd100",
	})

	require.NoError(t, err)
	chat.AssertExpectations(t)
	cardsService.AssertNotCalled(t, "GetCardByUserID", mock.Anything, mock.Anything)
}

func TestProcessDirectMessageEvent_FallbackOnInvalidExpression(t *testing.T) {
	chat := new(clients.MockChatClient)
	chat.On("BotUserID").Return("UBOT")
	chat.On("PostMessage", mock.Anything, "DM1", FallbackReply).Return("msg_2", nil)
	cardsService := new(cards.MockCardsService)
	useCase := newTestUseCase(t, chat, &stubEvaluator{}, cardsService)

	err := useCase.ProcessDirectMessageEvent(context.Background(), models.DirectMessageEvent{
		ChannelID: "DM1",
		UserID:    "U1",
		Content:   ".rnotdice",
	})

	require.NoError(t, err)
	chat.AssertExpectations(t)
}

func TestRenderDetail_IncludesDecisionAndOpposedLines(t *testing.T) {
	record := &models.RollRecord{
		UserID:     "U1",
		Username:   "Alice",
		Descriptor: "侦察",
		Rendering:  "d100=30",
		Decision:   &models.DecisionResult{Success: true, Description: "≤ 60 成功"},
		Opposed:    &models.OpposedOutcome{Winner: "U1", Description: "对抗：Alice 胜"},
	}

	rendered := RenderDetail(record)

	assert.Equal(t, "Alice 侦察 🎲 d100=30\n≤ 60 成功\n对抗：Alice 胜", rendered)
}

func TestRenderDetail_FallsBackToUserID(t *testing.T) {
	record := &models.RollRecord{UserID: "U1", Rendering: "d20=7"}

	assert.Equal(t, "U1 🎲 d20=7", RenderDetail(record))
}

func TestRenderHiddenStub(t *testing.T) {
	record := &models.RollRecord{UserID: "U1", Username: "Alice", Hidden: true}

	assert.Equal(t, "Alice 进行了一次暗骰", RenderHiddenStub(record))
}
