package evaluator

// Evaluation is the outcome of evaluating one canonical dice expression.
type Evaluation struct {
	Expression string
	Total      int
	// Dice holds the individual die values where the evaluator exposes
	// them; it falls back to the total for opaque expressions.
	Dice []int
	// Detail is the human-readable rendering of the roll.
	Detail string
}

// Evaluator evaluates a canonical dice-notation string. Implementations
// must reject malformed expressions with an error instead of guessing.
type Evaluator interface {
	Evaluate(expression string) (*Evaluation, error)
}
