package rules

import (
	"strings"
)

// Difficulty is the check difficulty extracted from a command descriptor.
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
	DifficultyExtreme
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyHard:
		return "困难"
	case DifficultyExtreme:
		return "极难"
	default:
		return ""
	}
}

// difficulty qualifier words, longest first so 极难/极限 win over prefix overlap
var difficultyQualifiers = []struct {
	word string
	diff Difficulty
}{
	{"困难", DifficultyHard},
	{"极难", DifficultyExtreme},
	{"极限", DifficultyExtreme},
}

// SplitDifficulty extracts a leading difficulty qualifier from a descriptor
// and returns the remaining skill name. Qualifiers only ever prefix the
// skill name ("困难侦察", "极难 斗殴").
func SplitDifficulty(descriptor string) (string, Difficulty) {
	name := strings.TrimSpace(descriptor)
	for _, q := range difficultyQualifiers {
		if strings.HasPrefix(name, q.word) {
			return strings.TrimSpace(strings.TrimPrefix(name, q.word)), q.diff
		}
	}
	return name, DifficultyNormal
}

// ApplyDifficulty adjusts a nominal skill rating for the given difficulty:
// hard checks halve it, extreme checks take one fifth, both floor-rounded.
// The base value is never altered by difficulty.
func ApplyDifficulty(value int, difficulty Difficulty) int {
	switch difficulty {
	case DifficultyHard:
		return value / 2
	case DifficultyExtreme:
		return value / 5
	default:
		return value
	}
}
