package trace

// Cond identifies a comparison in the evaluator's case tree.
type Cond string

// Conditions tested by the evaluator, in case-tree order.
const (
	CondAZero     Cond = "a==0"
	CondBZero     Cond = "b==0"
	CondCZero     Cond = "c==0"
	CondDeltaNeg  Cond = "delta<0"
	CondDeltaZero Cond = "delta==0"
)

// Branch is a single comparison made while classifying coefficients and
// the direction taken.
type Branch struct {
	Cond  Cond
	Taken bool
}

func (b Branch) String() string {
	if b.Taken {
		return string(b.Cond) + ":true"
	}
	return string(b.Cond) + ":false"
}
