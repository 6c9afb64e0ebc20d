package evaluator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	ds "github.com/sealdice/dicescript"
)

// DiceScriptEvaluator evaluates canonical expressions with the dicescript
// VM. The canonical grammar uses d% for percentile dice and kh/kl keep
// modifiers, which are normalized to dicescript syntax before evaluation.
type DiceScriptEvaluator struct{}

func NewDiceScriptEvaluator() *DiceScriptEvaluator {
	return &DiceScriptEvaluator{}
}

var (
	detailGroupRe = regexp.MustCompile(`\[([^\]]*)\]`)
	detailDieRe   = regexp.MustCompile(`-?\d+`)
)

func (e *DiceScriptEvaluator) Evaluate(expression string) (*Evaluation, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty dice expression")
	}

	vm := ds.NewVM()
	vm.Config.EnableDiceWoD = true
	vm.Config.EnableDiceCoC = true

	normalized := Normalize(expression)
	if err := vm.Run(normalized); err != nil {
		return nil, fmt.Errorf("failed to evaluate %q: %w", expression, err)
	}
	if vm.Ret == nil || vm.Ret.TypeId != ds.VMTypeInt {
		return nil, fmt.Errorf("expression %q did not evaluate to a number", expression)
	}

	total := int(vm.Ret.MustReadInt())
	detail := vm.GetDetailText()

	return &Evaluation{
		Expression: expression,
		Total:      total,
		Dice:       diceFromDetail(detail, total),
		Detail:     detail,
	}, nil
}

// Normalize rewrites canonical notation to dicescript syntax: percentile
// d% becomes d100, and the kh/kl keep modifiers become dicescript's k
// (keep highest) and q (keep lowest).
func Normalize(expression string) string {
	normalized := strings.ReplaceAll(expression, "d%", "d100")
	normalized = strings.ReplaceAll(normalized, "kh", "k")
	normalized = strings.ReplaceAll(normalized, "kl", "q")
	return normalized
}

// diceFromDetail pulls the individual die values out of the rendering's
// first bracket group, falling back to the total when the rendering does
// not break the roll down.
func diceFromDetail(detail string, total int) []int {
	group := detailGroupRe.FindStringSubmatch(detail)
	if group == nil {
		return []int{total}
	}

	matches := detailDieRe.FindAllString(group[1], -1)
	if len(matches) == 0 {
		return []int{total}
	}

	dice := make([]int, 0, len(matches))
	for _, m := range matches {
		value, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		dice = append(dice, value)
	}
	if len(dice) == 0 {
		return []int{total}
	}
	return dice
}
