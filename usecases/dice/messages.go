package dice

import (
	"fmt"
	"strings"

	"dicebot/models"
)

// FallbackReply is sent in direct-message conversations when the text could
// not be rolled. Channels stay silent instead.
const FallbackReply = "这个表达式我掷不出来，试试 .rd100 或 .ra侦察 这样的写法"

// RenderDetail produces the full reply text for a resolved roll: who rolled
// what, the evaluator's rendering, and the decision and opposed lines when
// present.
func RenderDetail(record *models.RollRecord) string {
	var b strings.Builder

	b.WriteString(displayName(record))
	if record.Descriptor != "" {
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(record.Descriptor))
	}
	b.WriteString(" 🎲 ")
	b.WriteString(record.Rendering)

	if record.Decision != nil {
		b.WriteString("\n")
		b.WriteString(record.Decision.Description)
	}
	if record.Opposed != nil {
		b.WriteString("\n")
		b.WriteString(record.Opposed.Description)
	}

	return b.String()
}

// RenderHiddenStub is the public side of a hidden roll: it names the roller
// and nothing else, the numbers went out by DM.
func RenderHiddenStub(record *models.RollRecord) string {
	return fmt.Sprintf("%s 进行了一次暗骰", displayName(record))
}

func displayName(record *models.RollRecord) string {
	if record.Username != "" {
		return record.Username
	}
	return record.UserID
}
