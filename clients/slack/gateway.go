package slack

import (
	"context"
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"dicebot/clients"
	"dicebot/models"
)

// Gateway consumes Slack Events API messages over socket mode and feeds
// them to the handler as normalized events.
type Gateway struct {
	client  *socketmode.Client
	handler clients.EventHandler
}

func NewGateway(api *slack.Client, handler clients.EventHandler) *Gateway {
	return &Gateway{
		client:  socketmode.New(api),
		handler: handler,
	}
}

// Run blocks until the socket-mode connection terminates.
func (g *Gateway) Run(ctx context.Context) error {
	go g.dispatchLoop(ctx)
	return g.client.RunContext(ctx)
}

func (g *Gateway) dispatchLoop(ctx context.Context) {
	for envelope := range g.client.Events {
		if envelope.Type != socketmode.EventTypeEventsAPI {
			continue
		}
		if envelope.Request != nil {
			g.client.Ack(*envelope.Request)
		}

		apiEvent, ok := envelope.Data.(slackevents.EventsAPIEvent)
		if !ok {
			continue
		}

		switch ev := apiEvent.InnerEvent.Data.(type) {
		case *slackevents.MessageEvent:
			g.dispatchMessage(ctx, ev)
		case *slackevents.ReactionAddedEvent:
			g.dispatchReaction(ctx, ev)
		}
	}
}

func (g *Gateway) dispatchMessage(ctx context.Context, ev *slackevents.MessageEvent) {
	// ignore bot echoes and message edits/deletions
	if ev.BotID != "" || ev.SubType != "" {
		return
	}

	if ev.ChannelType == "im" {
		event := models.DirectMessageEvent{
			ChannelID: ev.Channel,
			UserID:    ev.User,
			Content:   ev.Text,
		}
		go func() {
			if err := g.handler.ProcessDirectMessageEvent(ctx, event); err != nil {
				log.Printf("❌ Failed to process Slack direct message: %v", err)
			}
		}()
		return
	}

	var replyTo *string
	if ev.ThreadTimeStamp != "" && ev.ThreadTimeStamp != ev.TimeStamp {
		id := ev.ThreadTimeStamp
		replyTo = &id
	}

	event := models.MessageEvent{
		ChannelID:        ev.Channel,
		MessageID:        ev.TimeStamp,
		UserID:           ev.User,
		Content:          ev.Text,
		ReplyToMessageID: replyTo,
	}
	go func() {
		if err := g.handler.ProcessMessageEvent(ctx, event); err != nil {
			log.Printf("❌ Failed to process Slack message event: %v", err)
		}
	}()
}

func (g *Gateway) dispatchReaction(ctx context.Context, ev *slackevents.ReactionAddedEvent) {
	if ev.Item.Type != "message" {
		return
	}

	event := models.ReactionEvent{
		ChannelID: ev.Item.Channel,
		MessageID: ev.Item.Timestamp,
		UserID:    ev.User,
		Emoji:     ev.Reaction,
	}
	go func() {
		if err := g.handler.ProcessReactionEvent(ctx, event); err != nil {
			log.Printf("❌ Failed to process Slack reaction event: %v", err)
		}
	}()
}
