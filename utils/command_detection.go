package utils

import (
	"regexp"
	"strings"
)

// Command markers: a plain dot or its full-width equivalents. Anything not
// starting with a marker or a bot mention is ordinary conversation and
// never reaches the parser.
var commandMarkers = []string{".", "。", "．"}

var mentionRe = regexp.MustCompile(`<@!?[A-Za-z0-9]+(?:\|[^>]+)?>`)

// DetectCommand checks whether an inbound message is addressed to the bot
// and returns the command body. A command is identified by a leading
// mention of the bot user or a leading dot marker. Mentions are stripped
// before HTML entities are unescaped, because mention and emoji markup is
// entity-encoded and must not be corrupted.
func DetectCommand(messageText, botUserID string) (string, bool) {
	trimmed := strings.TrimSpace(messageText)
	if trimmed == "" {
		return "", false
	}

	if botUserID != "" && startsWithMention(trimmed, botUserID) {
		body := strings.TrimSpace(mentionRe.ReplaceAllString(trimmed, ""))
		body = trimMarker(UnescapeEntities(body))
		return body, true
	}

	stripped := strings.TrimSpace(mentionRe.ReplaceAllString(trimmed, ""))
	for _, marker := range commandMarkers {
		if strings.HasPrefix(stripped, marker) {
			body := strings.TrimSpace(strings.TrimPrefix(stripped, marker))
			return UnescapeEntities(body), true
		}
	}

	return "", false
}

// UnescapeEntities reverses the HTML escaping chat transports apply to
// message text. &amp; goes last so doubly escaped input is not over-decoded.
func UnescapeEntities(text string) string {
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&amp;", "&")
	return text
}

func startsWithMention(text, botUserID string) bool {
	for _, form := range []string{"<@" + botUserID + ">", "<@!" + botUserID + ">"} {
		if strings.HasPrefix(text, form) {
			return true
		}
	}
	return false
}

// trimMarker drops an optional dot marker after a mention, so both
// "@bot rd" and "@bot .rd" work.
func trimMarker(text string) string {
	for _, marker := range commandMarkers {
		if strings.HasPrefix(text, marker) {
			return strings.TrimSpace(strings.TrimPrefix(text, marker))
		}
	}
	return text
}
