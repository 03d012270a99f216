package solver

import (
	"math"
	"testing"

	"github.com/ajalab/quadeq/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	testCases := []struct {
		name     string
		coef     Coefficients
		expected Solution
	}{
		{"Infinite", Coefficients{0, 0, 0}, Infinite{}},
		{"NoSolution", Coefficients{0, 0, 5}, Inconsistent{}},
		{"Linear", Coefficients{0, 2, 4}, Linear{X: -2}},
		{"LinearFraction", Coefficients{0, 3, 1}, Linear{X: float64(float32(-1.0 / 3.0))}},
		{"NoRealRoot", Coefficients{1, 0, 1}, Complex{Delta: -4}},
		{"DoubleRoot", Coefficients{1, 2, 1}, Double{X: -1}},
		{"TwoRoots", Coefficients{1, -3, 2}, Distinct{X1: 1, X2: 2}},
		{"TwoRootsNegativeLeading", Coefficients{2, 5, -3}, Distinct{X1: -3, X2: 0.5}},
		{"ZeroConstant", Coefficients{1, -4, 0}, Distinct{X1: 0, X2: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := Solve(tc.coef)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.expected.Kind(), actual.Kind())
		})
	}
}

func TestSolveFloat64(t *testing.T) {
	s := &Solver{Precision: Float64}

	assert.Equal(t, Linear{X: -1.0 / 3.0}, s.Solve(Coefficients{0, 3, 1}))
	assert.Equal(t, Distinct{X1: 1, X2: 2}, s.Solve(Coefficients{1, -3, 2}))
}

func TestSolvePrecision(t *testing.T) {
	// 1+1e-9 rounds to 1 in single precision.
	coef := Coefficients{1, 2, 1 + 1e-9}

	single := &Solver{Precision: Float32}
	assert.Equal(t, Double{X: -1}, single.Solve(coef))

	double := &Solver{Precision: Float64}
	assert.Equal(t, NoRealRoot, double.Solve(coef).Kind())
}

func TestSolveEpsilon(t *testing.T) {
	testCases := []struct {
		name    string
		coef    Coefficients
		epsilon float64
		kind    Kind
	}{
		{"ExactLeadingNonZero", Coefficients{1e-9, 2, 4}, 0, TwoRoots},
		{"LeadingWithinEpsilon", Coefficients{1e-9, 2, 4}, 1e-6, OneRoot},
		{"ExactDeltaNegative", Coefficients{1, 2, 1.0000001}, 0, NoRealRoot},
		{"DeltaWithinEpsilon", Coefficients{1, 2, 1.0000001}, 1e-6, DoubleRoot},
		{"AllWithinEpsilon", Coefficients{1e-9, -1e-9, 1e-9}, 1e-6, InfiniteSolutions},
		{"NegativeEpsilonIsExact", Coefficients{1e-9, 2, 4}, -1, TwoRoots},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Solver{Precision: Float64, Epsilon: tc.epsilon}
			assert.Equal(t, tc.kind, s.Solve(tc.coef).Kind())
		})
	}
}

func TestSolveLinearWithinEpsilon(t *testing.T) {
	s := &Solver{Precision: Float64, Epsilon: 1e-6}
	assert.Equal(t, Linear{X: -2}, s.Solve(Coefficients{1e-9, 2, 4}))
}

func TestSolveNaN(t *testing.T) {
	sol := Solve(Coefficients{math.NaN(), 1, 1})
	require.Equal(t, TwoRoots, sol.Kind())
	for _, x := range sol.Roots() {
		assert.True(t, math.IsNaN(x))
	}
}

func TestSolveIdempotent(t *testing.T) {
	coef := Coefficients{3, 7, -11}
	first := Solve(coef)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Solve(coef))
	}
}

func TestSolveTrace(t *testing.T) {
	testCases := []struct {
		coef     Coefficients
		expected string
		delta    bool
	}{
		{Coefficients{0, 0, 0}, "a==0:true b==0:true c==0:true", false},
		{Coefficients{0, 0, 1}, "a==0:true b==0:true c==0:false", false},
		{Coefficients{0, 1, 1}, "a==0:true b==0:false", false},
		{Coefficients{1, 0, 1}, "a==0:false delta<0:true", true},
		{Coefficients{1, 2, 1}, "a==0:false delta<0:false delta==0:true", true},
		{Coefficients{1, -3, 2}, "a==0:false delta<0:false delta==0:false", true},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			tr := &trace.Trace{}
			s := &Solver{Trace: tr}
			s.Solve(tc.coef)

			assert.Equal(t, tc.expected, tr.String())
			_, ok := tr.Delta()
			assert.Equal(t, tc.delta, ok)
		})
	}
}

func TestRoots(t *testing.T) {
	assert.Nil(t, Infinite{}.Roots())
	assert.Nil(t, Inconsistent{}.Roots())
	assert.Nil(t, Complex{Delta: -1}.Roots())
	assert.Equal(t, []float64{-2}, Linear{X: -2}.Roots())
	assert.Equal(t, []float64{-1}, Double{X: -1}.Roots())
	assert.Equal(t, []float64{1, 2}, Distinct{X1: 1, X2: 2}.Roots())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "infinite-solutions", InfiniteSolutions.String())
	assert.Equal(t, "no-solution", NoSolution.String())
	assert.Equal(t, "one-linear-root", OneRoot.String())
	assert.Equal(t, "no-real-root", NoRealRoot.String())
	assert.Equal(t, "double-root", DoubleRoot.String())
	assert.Equal(t, "two-distinct-roots", TwoRoots.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestParsePrecision(t *testing.T) {
	for _, s := range []string{"32", "single", "FLOAT32"} {
		p, err := ParsePrecision(s)
		require.NoError(t, err)
		assert.Equal(t, Float32, p)
		assert.Equal(t, 32, p.BitSize())
	}
	for _, s := range []string{"64", "double", "float64"} {
		p, err := ParsePrecision(s)
		require.NoError(t, err)
		assert.Equal(t, Float64, p)
		assert.Equal(t, 64, p.BitSize())
	}
	_, err := ParsePrecision("16")
	assert.Error(t, err)
}
