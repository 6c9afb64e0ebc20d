package dice

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"dicebot/models"
	"dicebot/utils"
)

// quickRollEmojis trigger a reaction roll: the Unicode die on Discord, its
// short name on Slack.
var quickRollEmojis = []string{"🎲", "game_die"}

// ProcessMessageEvent handles a channel message: detect the command
// prefix, roll, post the result, and remember eligible records for
// opposed-roll replies.
func (u *DiceUseCase) ProcessMessageEvent(ctx context.Context, event models.MessageEvent) error {
	command, ok := utils.DetectCommand(event.Content, u.chatClient.BotUserID())
	if !ok {
		return nil
	}
	log.Printf("🎲 Processing roll command from user %s in channel %s", event.UserID, event.ChannelID)

	rollCtx := RollContext{
		UserID:    event.UserID,
		Username:  event.Username,
		ChannelID: mo.Some(event.ChannelID),
	}
	if event.ReplyToMessageID != nil {
		rollCtx.ReplyToMessageID = mo.Some(*event.ReplyToMessageID)
	}

	record, ok := u.Roll(ctx, command, rollCtx).Get()
	if !ok {
		// not a valid dice expression - routine noise in a channel
		return nil
	}

	if record.Hidden {
		return u.deliverHidden(ctx, event.ChannelID, record)
	}

	messageID, err := u.chatClient.PostMessage(ctx, event.ChannelID, RenderDetail(record))
	if err != nil {
		return fmt.Errorf("failed to post roll result: %w", err)
	}
	u.RememberRoll(messageID, record)
	return nil
}

// ProcessReactionEvent handles a quick roll: a die reaction on a message
// whose text embeds a skill keyword triggers that check for the reactor.
func (u *DiceUseCase) ProcessReactionEvent(ctx context.Context, event models.ReactionEvent) error {
	if !lo.Contains(quickRollEmojis, event.Emoji) {
		return nil
	}

	instruction, err := u.instructions.Instruction(ctx, event.ChannelID, event.MessageID)
	if err != nil {
		// fetch failures abandon the invocation, the reaction gets no reply
		log.Printf("❌ Abandoning reaction roll, message fetch failed: %v", err)
		return nil
	}
	inst, ok := instruction.Get()
	if !ok {
		return nil
	}
	log.Printf("🎲 Reaction roll for user %s: %s%s", event.UserID, inst.Difficulty, inst.Skill)

	command := fmt.Sprintf("ra %s%s", inst.Difficulty, inst.Skill)
	rollCtx := RollContext{
		UserID:    event.UserID,
		Username:  event.Username,
		ChannelID: mo.Some(event.ChannelID),
	}

	record, ok := u.Roll(ctx, command, rollCtx).Get()
	if !ok {
		return nil
	}

	messageID, err := u.chatClient.PostMessage(ctx, event.ChannelID, RenderDetail(record))
	if err != nil {
		return fmt.Errorf("failed to post reaction roll result: %w", err)
	}
	u.RememberRoll(messageID, record)
	return nil
}

// ProcessDirectMessageEvent handles a DM. There is no channel context, so
// no character sheet is consulted; unlike channels, an invalid expression
// gets a generic fallback reply so the conversation is not dead silent.
func (u *DiceUseCase) ProcessDirectMessageEvent(
	ctx context.Context,
	event models.DirectMessageEvent,
) error {
	command, ok := utils.DetectCommand(event.Content, u.chatClient.BotUserID())
	if !ok {
		return nil
	}
	log.Printf("🎲 Processing direct-message roll from user %s", event.UserID)

	rollCtx := RollContext{
		UserID:    event.UserID,
		Username:  event.Username,
		ChannelID: mo.None[string](),
	}

	record, ok := u.Roll(ctx, command, rollCtx).Get()
	if !ok {
		if _, err := u.chatClient.PostMessage(ctx, event.ChannelID, FallbackReply); err != nil {
			return fmt.Errorf("failed to post fallback reply: %w", err)
		}
		return nil
	}

	if _, err := u.chatClient.PostMessage(ctx, event.ChannelID, RenderDetail(record)); err != nil {
		return fmt.Errorf("failed to post direct-message roll result: %w", err)
	}
	return nil
}

// deliverHidden sends the numeric result to the roller by DM and a stub to
// the channel - two independent sends from one invocation.
func (u *DiceUseCase) deliverHidden(
	ctx context.Context,
	channelID string,
	record *models.RollRecord,
) error {
	if err := u.chatClient.PostDirectMessage(ctx, record.UserID, RenderDetail(record)); err != nil {
		return fmt.Errorf("failed to deliver hidden roll detail: %w", err)
	}
	if _, err := u.chatClient.PostMessage(ctx, channelID, RenderHiddenStub(record)); err != nil {
		return fmt.Errorf("failed to post hidden roll stub: %w", err)
	}
	return nil
}
