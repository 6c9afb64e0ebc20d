package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"dicebot/clients"
)

// DiscordClient implements the clients.ChatClient interface on top of a
// connected discordgo session.
type DiscordClient struct {
	session *discordgo.Session
}

func NewDiscordClient(session *discordgo.Session) clients.ChatClient {
	return &DiscordClient{session: session}
}

func (c *DiscordClient) BotUserID() string {
	if c.session.State == nil || c.session.State.User == nil {
		return ""
	}
	return c.session.State.User.ID
}

func (c *DiscordClient) PostMessage(ctx context.Context, channelID, content string) (string, error) {
	message, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to post message to channel %s: %w", channelID, err)
	}
	return message.ID, nil
}

func (c *DiscordClient) PostDirectMessage(ctx context.Context, userID, content string) error {
	channel, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel for user %s: %w", userID, err)
	}

	if _, err := c.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post direct message to user %s: %w", userID, err)
	}
	return nil
}

func (c *DiscordClient) FetchMessageText(
	ctx context.Context,
	channelID, messageID string,
) (mo.Option[string], error) {
	message, err := c.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	if message.Content == "" {
		// attachment/embed-only message, never re-fetched by the cache
		return mo.None[string](), nil
	}
	return mo.Some(message.Content), nil
}
