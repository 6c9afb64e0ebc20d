package models

// MessageEvent is an inbound channel message as delivered by a transport.
type MessageEvent struct {
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	Content   string
	// Mentions contains the user IDs of all users mentioned in this message
	Mentions []string
	// ReplyToMessageID is set when the message was sent as a reply to a
	// prior message (nil for top-level messages)
	ReplyToMessageID *string
}

// ReactionEvent is an inbound reaction on an existing message.
type ReactionEvent struct {
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	Emoji     string
}

// DirectMessageEvent is an inbound direct message. There is no channel
// context, so no character sheet lookup happens for these.
type DirectMessageEvent struct {
	// ChannelID is the DM conversation used to reply to the user.
	ChannelID string
	UserID    string
	Username  string
	Content   string
}
