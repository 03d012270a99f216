package solver

import (
	"math"
	"strings"

	"github.com/ajalab/quadeq/trace"
	"github.com/pkg/errors"
)

// Coefficients are the coefficients of a·x² + b·x + c = 0.
type Coefficients struct {
	A, B, C float64
}

// Precision is the floating-point precision used for evaluation.
type Precision int

const (
	// Float32 evaluates in single precision, except that the square root
	// of the discriminant and the two distinct roots are computed in
	// double precision.
	Float32 Precision = iota
	// Float64 evaluates everything in double precision.
	Float64
)

// BitSize returns 32 or 64.
func (p Precision) BitSize() int {
	if p == Float64 {
		return 64
	}
	return 32
}

func (p Precision) String() string {
	if p == Float64 {
		return "64"
	}
	return "32"
}

// ParsePrecision parses "32", "64", "single", "double", "float32" or "float64".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "32", "single", "float32":
		return Float32, nil
	case "64", "double", "float64":
		return Float64, nil
	}
	return 0, errors.Errorf("unknown precision %q", s)
}

// Solver classifies coefficients and computes roots.
// The zero value compares exactly in single precision.
type Solver struct {
	// Precision selects float32 or float64 arithmetic.
	Precision Precision
	// Epsilon, when positive, makes |v| <= Epsilon count as zero
	// for a, b, c and the discriminant.
	Epsilon float64
	// Trace, if not nil, receives the branches taken.
	Trace *trace.Trace
}

// Solve classifies c with exact comparisons in single precision.
func Solve(c Coefficients) Solution {
	var s Solver
	return s.Solve(c)
}

// Solve classifies c and computes its roots.
func (s *Solver) Solve(c Coefficients) Solution {
	if s.Precision == Float64 {
		return solve(s, c.A, c.B, c.C)
	}
	return solve(s, float32(c.A), float32(c.B), float32(c.C))
}

type float interface {
	~float32 | ~float64
}

func isZero[F float](v, eps F) bool {
	if eps <= 0 {
		return v == 0
	}
	return -eps <= v && v <= eps
}

func solve[F float](s *Solver, a, b, c F) Solution {
	eps := F(s.Epsilon)
	t := s.Trace

	if t.Record(trace.CondAZero, isZero(a, eps)) {
		if t.Record(trace.CondBZero, isZero(b, eps)) {
			if t.Record(trace.CondCZero, isZero(c, eps)) {
				return Infinite{}
			}
			return Inconsistent{}
		}
		return Linear{X: float64(-c / b)}
	}

	// Conversions round each product and block fused multiply-add.
	delta := F(b*b) - F(4*a*c)
	t.RecordDelta(float64(delta))

	if t.Record(trace.CondDeltaNeg, delta < 0 && !isZero(delta, eps)) {
		return Complex{Delta: float64(delta)}
	}
	if t.Record(trace.CondDeltaZero, isZero(delta, eps)) {
		return Double{X: float64(-(b / (2 * a)))}
	}

	sqrtDelta := math.Sqrt(float64(delta))
	twoA := float64(F(2 * a))
	return Distinct{
		X1: -((float64(b) + sqrtDelta) / twoA),
		X2: -((float64(b) - sqrtDelta) / twoA),
	}
}
