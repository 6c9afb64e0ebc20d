package rules

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// AliasTable maps the many surface forms of a skill or attribute name to
// one canonical card key. It is immutable after construction so the
// decision logic stays pure and testable.
type AliasTable struct {
	aliases map[string]string
	// scanOrder holds all known surface forms, longest first, for
	// deterministic instruction scanning.
	scanOrder []string
}

// Instruction is a skill check embedded in ordinary message text, extracted
// for reaction-triggered quick rolls.
type Instruction struct {
	Skill      string
	Difficulty Difficulty
}

func NewAliasTable(aliases map[string]string) *AliasTable {
	copied := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		copied[strings.ToLower(alias)] = canonical
	}

	order := lo.Keys(copied)
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})

	return &AliasTable{aliases: copied, scanOrder: order}
}

// Canonical resolves a surface skill name to its canonical card key. Names
// without an alias entry resolve to themselves.
func (t *AliasTable) Canonical(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := t.aliases[trimmed]; ok {
		return canonical
	}
	return strings.TrimSpace(name)
}

// FindInstruction scans free text for the first known skill keyword and an
// optional difficulty qualifier. Earliest match wins; longer aliases are
// tried first so 图书馆使用 beats 图书馆.
func (t *AliasTable) FindInstruction(text string) mo.Option[Instruction] {
	lowered := strings.ToLower(text)

	best := -1
	var bestAlias string
	for _, alias := range t.scanOrder {
		idx := strings.Index(lowered, alias)
		if idx >= 0 && (best == -1 || idx < best) {
			best = idx
			bestAlias = alias
		}
	}
	if best == -1 {
		return mo.None[Instruction]()
	}

	difficulty := DifficultyNormal
	for _, q := range difficultyQualifiers {
		if strings.Contains(text, q.word) {
			difficulty = q.diff
			break
		}
	}

	return mo.Some(Instruction{
		Skill:      t.aliases[bestAlias],
		Difficulty: difficulty,
	})
}

// DefaultAliases covers the common shorthand and variant spellings of the
// ruleset's attributes and frequently checked skills.
func DefaultAliases() map[string]string {
	return map[string]string{
		"str":   "力量",
		"力量":    "力量",
		"con":   "体质",
		"体质":    "体质",
		"siz":   "体型",
		"体型":    "体型",
		"dex":   "敏捷",
		"敏捷":    "敏捷",
		"app":   "外貌",
		"外貌":    "外貌",
		"int":   "智力",
		"智力":    "智力",
		"pow":   "意志",
		"意志":    "意志",
		"edu":   "教育",
		"教育":    "教育",
		"luck":  "幸运",
		"运气":    "幸运",
		"幸运":    "幸运",
		"sc":    "理智",
		"san":   "理智",
		"理智":    "理智",
		"hunch": "灵感",
		"灵感":    "灵感",
		"侦查":    "侦察",
		"侦察":    "侦察",
		"聆听":    "聆听",
		"斗殴":    "斗殴",
		"闪避":    "闪避",
		"潜行":    "潜行",
		"说服":    "说服",
		"心理学":   "心理学",
		"图书馆":   "图书馆使用",
		"图书馆使用": "图书馆使用",
	}
}

// BackingAttribute returns the attribute whose rating backs a special
// named check (the intelligence-backed hunch check). Everything else is
// backed by its own entry.
func BackingAttribute(canonical string) string {
	if canonical == "灵感" {
		return "智力"
	}
	return canonical
}
