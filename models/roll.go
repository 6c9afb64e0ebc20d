package models

// RollKind tags the variant of a resolved roll. Rendering and opposed-roll
// logic switch on the tag rather than on separate roll types.
type RollKind string

const (
	RollKindPlain      RollKind = "PLAIN"
	RollKindSkillCheck RollKind = "SKILL_CHECK"
	RollKindOpposed    RollKind = "OPPOSED"
)

// SuccessLevel is the classification of a resolved percentile roll. Higher
// values beat lower values when two results are compared in an opposed roll.
type SuccessLevel int

const (
	LevelWorst SuccessLevel = iota // critical failure
	LevelFail
	LevelSuccess
	LevelBest // critical success
)

func (l SuccessLevel) String() string {
	switch l {
	case LevelBest:
		return "大成功"
	case LevelSuccess:
		return "成功"
	case LevelFail:
		return "失败"
	case LevelWorst:
		return "大失败"
	default:
		return "未知"
	}
}

// SkillEntry is a character's rating for one named skill or attribute.
// Value may already reflect difficulty halving/fifthing; BaseValue never
// does and is only used to pick the critical-failure band.
type SkillEntry struct {
	Name      string
	BaseValue int
	Value     int
}

// DecisionResult classifies one roll against one skill entry.
type DecisionResult struct {
	Success     bool
	Level       SuccessLevel
	Description string
}

// OpposedOutcome is the relative comparison of a roll against a previously
// cached one.
type OpposedOutcome struct {
	// Winner is the user ID of the winning side, empty on a draw.
	Winner      string
	Draw        bool
	Description string
}

// ParsedExpression is the output of the command grammar parser: a canonical
// dice-notation string plus the residual free text (skill name and optional
// difficulty qualifier words).
type ParsedExpression struct {
	Expression string
	Descriptor string
}

// RollRecord is the outcome of one full roll invocation. It lives for the
// duration of one command, except that eligible records are retained by the
// opposed-roll cache until evicted or consumed.
type RollRecord struct {
	ID         string
	Kind       RollKind
	UserID     string
	Username   string
	Expression string
	Descriptor string
	Dice       []int
	Total      int
	// Rendering is the human-readable roll text produced by the evaluator.
	Rendering string
	// Skill is the entry the roll was checked against, nil for plain rolls.
	Skill *SkillEntry
	// Decision is nil when no character sheet or skill value was available.
	Decision *DecisionResult
	// Opposed is set when the invocation referenced a prior cached roll.
	Opposed *OpposedOutcome
	Hidden  bool
	// EligibleForOpposed is true only for skill checks with a known value.
	EligibleForOpposed bool
}
