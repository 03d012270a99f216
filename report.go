package quadeq

import (
	"fmt"
	"math"

	"github.com/ajalab/quadeq/solver"
)

// Format renders s as a one-line message. Roots are printed with six decimals.
func Format(s solver.Solution) string {
	switch s := s.(type) {
	case solver.Infinite:
		return "phuong trinh co vo so nghiem"
	case solver.Inconsistent:
		return "phuong trinh vo nghiem"
	case solver.Linear:
		return "phuong trinh co nghiem x=" + formatRoot(s.X)
	case solver.Complex:
		return "phuong trinh vo nghiem"
	case solver.Double:
		return "phuong trinh co nghiem kep x=" + formatRoot(s.X)
	case solver.Distinct:
		return "phuong trinh co 2 nghiem phan biet x1=" + formatRoot(s.X1) + ", x2=" + formatRoot(s.X2)
	}
	return fmt.Sprintf("unknown solution %v", s)
}

// formatRoot prints non-finite values as inf, -inf and nan.
func formatRoot(x float64) string {
	switch {
	case math.IsNaN(x):
		if math.Signbit(x) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return fmt.Sprintf("%f", x)
}
