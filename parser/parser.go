package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"dicebot/models"
)

// percentile is the canonical expression for the default roll: one d100.
const percentile = "d%"

var (
	bonusPenaltyRe = regexp.MustCompile(`^r([bp])(\d*)$`)
	poolRe         = regexp.MustCompile(`^w{1,2}(\d+)(?:a(\d+))?$`)
)

// SplitHidden recognizes the leading hidden-roll qualifier. A command token
// of the form "rh..." (or "rah") is rolled hidden and parsed as if the "h"
// were absent. The descriptor part is carried through untouched.
func SplitHidden(fullExpression string) (string, bool) {
	trimmed := strings.TrimSpace(fullExpression)
	token, rest := splitToken(trimmed)
	lower := strings.ToLower(token)

	switch {
	case lower == "rah":
		return token[:2] + rest, true
	case strings.HasPrefix(lower, "rh"):
		return token[:1] + token[2:] + rest, true
	default:
		return trimmed, false
	}
}

// Parse converts shorthand command text into a canonical dice expression
// plus a free-text descriptor (skill name and difficulty qualifier words).
// It never fails: when no rule matches, the whole input is treated as the
// expression and the descriptor is empty.
func Parse(fullExpression string) models.ParsedExpression {
	trimmed := strings.TrimSpace(fullExpression)

	// "sc" is a sanity check against the 理智 attribute, always a plain d100.
	if strings.EqualFold(trimmed, "sc") {
		return models.ParsedExpression{Expression: percentile, Descriptor: "sc"}
	}

	token, descriptor := splitToken(trimmed)
	if token == "" {
		return models.ParsedExpression{Expression: trimmed}
	}
	lower := strings.ToLower(token)

	switch lower {
	case "d", "r", "rd", "ra":
		return models.ParsedExpression{Expression: percentile, Descriptor: descriptor}
	}

	// Bonus/penalty dice: roll N+1 percentile dice, keep the highest (bonus)
	// or lowest (penalty) one.
	if m := bonusPenaltyRe.FindStringSubmatch(lower); m != nil {
		extra := 1
		if m[2] != "" {
			extra, _ = strconv.Atoi(m[2])
		}
		keep := "kh"
		if m[1] == "p" {
			keep = "kl"
		}
		return models.ParsedExpression{
			Expression: fmt.Sprintf("%dd%%%s1", extra+1, keep),
			Descriptor: descriptor,
		}
	}

	// Exploding d10 pool: <count> dice reroll-and-add at >= threshold
	// (default 10), successes counted at >= 8.
	if m := poolRe.FindStringSubmatch(lower); m != nil {
		count, _ := strconv.Atoi(m[1])
		threshold := 10
		if m[2] != "" {
			threshold, _ = strconv.Atoi(m[2])
		}
		return models.ParsedExpression{
			Expression: fmt.Sprintf("%da%dk8", count, threshold),
			Descriptor: descriptor,
		}
	}

	// Explicit override: "r" followed by a literal dice expression.
	if strings.HasPrefix(lower, "r") {
		return models.ParsedExpression{Expression: lower[1:], Descriptor: descriptor}
	}

	return models.ParsedExpression{Expression: lower, Descriptor: descriptor}
}

// splitToken splits the input at the first CJK ideograph or whitespace
// character. The split character stays with the descriptor.
func splitToken(s string) (string, string) {
	for i, r := range s {
		if unicode.IsSpace(r) || unicode.Is(unicode.Han, r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
