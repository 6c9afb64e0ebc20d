package slack

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"dicebot/clients"
)

// SlackClient implements the clients.ChatClient interface. Posted-message
// IDs are Slack message timestamps, which is what reply references carry.
type SlackClient struct {
	api       *slack.Client
	botUserID string
}

func NewSlackClient(api *slack.Client) (clients.ChatClient, error) {
	identity, err := api.AuthTest()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Slack bot identity: %w", err)
	}
	return &SlackClient{api: api, botUserID: identity.UserID}, nil
}

func (c *SlackClient) BotUserID() string {
	return c.botUserID
}

func (c *SlackClient) PostMessage(ctx context.Context, channelID, content string) (string, error) {
	_, timestamp, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(content, false))
	if err != nil {
		return "", fmt.Errorf("failed to post message to channel %s: %w", channelID, err)
	}
	return timestamp, nil
}

func (c *SlackClient) PostDirectMessage(ctx context.Context, userID, content string) error {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return fmt.Errorf("failed to open DM conversation with user %s: %w", userID, err)
	}

	if _, _, err := c.api.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(content, false)); err != nil {
		return fmt.Errorf("failed to post direct message to user %s: %w", userID, err)
	}
	return nil
}

func (c *SlackClient) FetchMessageText(
	ctx context.Context,
	channelID, messageID string,
) (mo.Option[string], error) {
	history, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    messageID,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	if len(history.Messages) == 0 {
		return mo.None[string](), fmt.Errorf("message %s not found in channel %s", messageID, channelID)
	}

	text := history.Messages[0].Text
	if text == "" {
		return mo.None[string](), nil
	}
	return mo.Some(text), nil
}
