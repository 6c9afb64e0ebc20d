package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"dicebot/clients"
	"dicebot/models"
)

// Intents covers everything the gateway consumes: channel messages with
// content, reactions, and direct messages.
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsDirectMessages |
	discordgo.IntentMessageContent

// RegisterHandlers wires discordgo gateway events into normalized events
// for the handler. Every event is dispatched on its own goroutine; there
// is no ordering guarantee between invocations.
func RegisterHandlers(session *discordgo.Session, handler clients.EventHandler) {
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		if m.GuildID == "" {
			event := models.DirectMessageEvent{
				ChannelID: m.ChannelID,
				UserID:    m.Author.ID,
				Username:  m.Author.Username,
				Content:   m.Content,
			}
			go func() {
				if err := handler.ProcessDirectMessageEvent(context.Background(), event); err != nil {
					log.Printf("❌ Failed to process Discord direct message: %v", err)
				}
			}()
			return
		}

		mentions := make([]string, 0, len(m.Mentions))
		for _, user := range m.Mentions {
			mentions = append(mentions, user.ID)
		}

		var replyTo *string
		if m.MessageReference != nil && m.MessageReference.MessageID != "" {
			id := m.MessageReference.MessageID
			replyTo = &id
		}

		event := models.MessageEvent{
			ChannelID:        m.ChannelID,
			MessageID:        m.ID,
			UserID:           m.Author.ID,
			Username:         m.Author.Username,
			Content:          m.Content,
			Mentions:         mentions,
			ReplyToMessageID: replyTo,
		}
		go func() {
			if err := handler.ProcessMessageEvent(context.Background(), event); err != nil {
				log.Printf("❌ Failed to process Discord message event: %v", err)
			}
		}()
	})

	session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
			return
		}

		event := models.ReactionEvent{
			ChannelID: r.ChannelID,
			MessageID: r.MessageID,
			UserID:    r.UserID,
			Emoji:     r.Emoji.Name,
		}
		go func() {
			if err := handler.ProcessReactionEvent(context.Background(), event); err != nil {
				log.Printf("❌ Failed to process Discord reaction event: %v", err)
			}
		}()
	})
}
