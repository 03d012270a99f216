package solver

import "fmt"

// Kind classifies the solution set of a·x² + b·x + c = 0.
type Kind int

const (
	// InfiniteSolutions is reported for 0 = 0.
	InfiniteSolutions Kind = iota
	// NoSolution is reported for c = 0 with c ≠ 0.
	NoSolution
	// OneRoot is reported for the linear case b·x + c = 0.
	OneRoot
	// NoRealRoot is reported for a negative discriminant.
	NoRealRoot
	// DoubleRoot is reported for a zero discriminant.
	DoubleRoot
	// TwoRoots is reported for a positive discriminant.
	TwoRoots
)

var kindNames = [...]string{
	InfiniteSolutions: "infinite-solutions",
	NoSolution:        "no-solution",
	OneRoot:           "one-linear-root",
	NoRealRoot:        "no-real-root",
	DoubleRoot:        "double-root",
	TwoRoots:          "two-distinct-roots",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Solution represents the solution set of an equation.
type Solution interface {
	// Kind returns the classification of the solution set.
	Kind() Kind
	// Roots returns the real roots, if any, in reporting order.
	Roots() []float64
}

// Infinite is the solution set of 0 = 0.
type Infinite struct{}

// Kind returns InfiniteSolutions.
func (Infinite) Kind() Kind { return InfiniteSolutions }

// Roots returns nil.
func (Infinite) Roots() []float64 { return nil }

// Inconsistent is the (empty) solution set of c = 0 with c ≠ 0.
type Inconsistent struct{}

// Kind returns NoSolution.
func (Inconsistent) Kind() Kind { return NoSolution }

// Roots returns nil.
func (Inconsistent) Roots() []float64 { return nil }

// Linear holds the root of b·x + c = 0.
type Linear struct {
	X float64
}

// Kind returns OneRoot.
func (Linear) Kind() Kind { return OneRoot }

// Roots returns X.
func (s Linear) Roots() []float64 { return []float64{s.X} }

// Complex is reported when the discriminant is negative.
// Delta keeps the discriminant that was computed.
type Complex struct {
	Delta float64
}

// Kind returns NoRealRoot.
func (Complex) Kind() Kind { return NoRealRoot }

// Roots returns nil.
func (Complex) Roots() []float64 { return nil }

// Double holds the root of a quadratic with a zero discriminant.
type Double struct {
	X float64
}

// Kind returns DoubleRoot.
func (Double) Kind() Kind { return DoubleRoot }

// Roots returns X.
func (s Double) Roots() []float64 { return []float64{s.X} }

// Distinct holds the roots of a quadratic with a positive discriminant.
// X1 is computed with +√Δ and X2 with −√Δ.
type Distinct struct {
	X1, X2 float64
}

// Kind returns TwoRoots.
func (Distinct) Kind() Kind { return TwoRoots }

// Roots returns X1 and X2.
func (s Distinct) Roots() []float64 { return []float64{s.X1, s.X2} }
