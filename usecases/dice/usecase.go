package dice

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"dicebot/caches"
	"dicebot/clients"
	"dicebot/core"
	"dicebot/evaluator"
	"dicebot/models"
	"dicebot/parser"
	"dicebot/rules"
	"dicebot/services"
)

// DiceUseCase ties the grammar parser, the expression evaluator and the
// success decider together per invocation, and owns the two bounded caches
// that give the pipeline statefulness across messages.
type DiceUseCase struct {
	chatClient   clients.ChatClient
	evaluator    evaluator.Evaluator
	cardsService services.CardsService
	opposedRule  rules.OpposedRule
	instructions *caches.InstructionCache
	opposedRolls *caches.OpposedRollCache
}

func NewDiceUseCase(
	chatClient clients.ChatClient,
	diceEvaluator evaluator.Evaluator,
	cardsService services.CardsService,
	aliases *rules.AliasTable,
	opposedRule rules.OpposedRule,
) (*DiceUseCase, error) {
	instructions, err := caches.NewInstructionCache(
		chatClient.FetchMessageText,
		aliases.FindInstruction,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruction cache: %w", err)
	}

	opposedRolls, err := caches.NewOpposedRollCache()
	if err != nil {
		return nil, fmt.Errorf("failed to create opposed-roll cache: %w", err)
	}

	return &DiceUseCase{
		chatClient:   chatClient,
		evaluator:    diceEvaluator,
		cardsService: cardsService,
		opposedRule:  opposedRule,
		instructions: instructions,
		opposedRolls: opposedRolls,
	}, nil
}

// RollContext supplies the invocation's identity. An absent channel ID
// means a direct-message context, where no character sheet is consulted.
type RollContext struct {
	UserID           string
	Username         string
	ChannelID        mo.Option[string]
	ReplyToMessageID mo.Option[string]
}

// Roll executes one full command invocation. Invalid or unevaluable
// expressions yield None - chat text that is not a dice expression is
// routine noise, never an error surfaced to the user.
func (u *DiceUseCase) Roll(
	ctx context.Context,
	fullExpression string,
	rollCtx RollContext,
) mo.Option[*models.RollRecord] {
	rest, hidden := parser.SplitHidden(fullExpression)
	parsed := parser.Parse(rest)

	var card *models.Card
	var skill *models.SkillEntry
	if _, inChannel := rollCtx.ChannelID.Get(); inChannel {
		card, skill = u.lookupSkill(ctx, rollCtx.UserID, parsed.Descriptor)
	}

	var prior *models.RollRecord
	if replyTo, ok := rollCtx.ReplyToMessageID.Get(); ok {
		// a stale or evicted entry degrades to a fresh, non-opposed roll
		if record, ok := u.opposedRolls.Get(replyTo).Get(); ok && record.Decision != nil {
			prior = record
		}
	}

	evaluation, err := u.evaluator.Evaluate(parsed.Expression)
	if err != nil {
		log.Printf("🔍 Dropping unevaluable expression %q from user %s: %v",
			parsed.Expression, rollCtx.UserID, err)
		return mo.None[*models.RollRecord]()
	}

	rendering := evaluation.Detail
	if rendering == "" {
		rendering = fmt.Sprintf("%s=%d", parsed.Expression, evaluation.Total)
	}

	record := &models.RollRecord{
		ID:         core.NewID("roll"),
		Kind:       models.RollKindPlain,
		UserID:     rollCtx.UserID,
		Username:   rollCtx.Username,
		Expression: parsed.Expression,
		Descriptor: parsed.Descriptor,
		Dice:       evaluation.Dice,
		Total:      evaluation.Total,
		Rendering:  rendering,
		Hidden:     hidden,
	}

	if skill != nil {
		decision := rules.Decide(*skill, evaluation.Total)
		record.Kind = models.RollKindSkillCheck
		record.Skill = skill
		record.Decision = &decision
		record.EligibleForOpposed = !hidden
	}

	if prior != nil && record.Decision != nil {
		outcome := u.opposedRule(prior, record)
		record.Kind = models.RollKindOpposed
		record.Opposed = &outcome
	}

	// sheet side effect: remember the last checked skill for highlighting.
	// Persistence belongs to the cards collaborator; failures are logged
	// and swallowed, the roll result stands either way.
	if skill != nil && card != nil && card.LastSkill != skill.Name {
		card.LastSkill = skill.Name
		if err := u.cardsService.NotifyCardDirty(ctx, card); err != nil {
			log.Printf("❌ Failed to persist card %s after roll: %v", card.ID, err)
		}
	}

	return mo.Some(record)
}

// RememberRoll retains an eligible roll record under the message ID its
// result was posted as, so later replies can oppose it.
func (u *DiceUseCase) RememberRoll(messageID string, record *models.RollRecord) {
	if messageID == "" || record == nil || !record.EligibleForOpposed {
		return
	}
	u.opposedRolls.Set(messageID, record)
}

// lookupSkill resolves the invoking user's rating for the descriptor's
// skill. A missing card or unknown skill silently disables the
// success-decision step, it is not an error.
func (u *DiceUseCase) lookupSkill(
	ctx context.Context,
	userID, descriptor string,
) (*models.Card, *models.SkillEntry) {
	name, difficulty := rules.SplitDifficulty(descriptor)
	if name == "" {
		return nil, nil
	}

	maybeCard, err := u.cardsService.GetCardByUserID(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Card lookup failed for user %s, rolling without a check: %v", userID, err)
		return nil, nil
	}
	card, ok := maybeCard.Get()
	if !ok {
		return nil, nil
	}

	entry, ok := u.cardsService.ResolveSkill(card, name, difficulty).Get()
	if !ok {
		return card, nil
	}
	return card, &entry
}
