package clients

import (
	"context"

	"github.com/samber/mo"

	"dicebot/models"
)

// ChatClient is the transport seam of the roll pipeline: posting results,
// fetching original message text for reaction-triggered rolls, and direct
// messages for hidden-roll details.
type ChatClient interface {
	// BotUserID identifies the bot account on the platform, used for
	// mention-based command detection.
	BotUserID() string
	// PostMessage posts to a channel and returns the platform-assigned ID
	// of the posted message.
	PostMessage(ctx context.Context, channelID, content string) (string, error)
	PostDirectMessage(ctx context.Context, userID, content string) error
	// FetchMessageText loads a message's text. None means the message
	// exists but is not a text message.
	FetchMessageText(ctx context.Context, channelID, messageID string) (mo.Option[string], error)
}

// EventHandler receives normalized inbound chat events from a transport
// gateway. Each event is handled independently; gateways dispatch without
// waiting for completion.
type EventHandler interface {
	ProcessMessageEvent(ctx context.Context, event models.MessageEvent) error
	ProcessReactionEvent(ctx context.Context, event models.ReactionEvent) error
	ProcessDirectMessageEvent(ctx context.Context, event models.DirectMessageEvent) error
}
