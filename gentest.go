package quadeq

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"math"
	"strconv"
	"strings"

	"github.com/ajalab/quadeq/solver"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
)

const solverPackagePath = "github.com/ajalab/quadeq/solver"

// TestFile is a generated Go test file.
type TestFile struct {
	fset *token.FileSet
	file *ast.File
}

// AST returns the syntax tree of the test file.
func (f *TestFile) AST() *ast.File {
	return f.file
}

// Format returns the gofmt-ed source of the test file.
func (f *TestFile) Format() ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, f.fset, f.file); err != nil {
		return nil, errors.Wrap(err, "failed to format test file")
	}
	return buf.Bytes(), nil
}

// GenerateTest generates a table-driven test asserting the solutions the
// program computes for coefs. The test belongs to package pkgName and is
// named testFuncName ("TestSolve" if empty).
func (prog *Program) GenerateTest(pkgName, testFuncName string, coefs []solver.Coefficients) (*TestFile, error) {
	if pkgName == "" {
		return nil, errors.New("package name is empty")
	}
	if !token.IsIdentifier(pkgName) {
		return nil, errors.Errorf("%q is not a valid package name", pkgName)
	}
	if testFuncName == "" {
		testFuncName = "TestSolve"
	}
	if !token.IsIdentifier(testFuncName) || !strings.HasPrefix(testFuncName, "Test") {
		return nil, errors.Errorf("%q is not a valid test function name", testFuncName)
	}

	var cases strings.Builder
	for i, coef := range coefs {
		res := prog.Evaluate(coef)
		expected, err := solutionExpr(res.Solution)
		if err != nil {
			return nil, errors.Wrapf(err, "equation %d", i+1)
		}
		coefLit, err := coefficientsExpr(coef)
		if err != nil {
			return nil, errors.Wrapf(err, "equation %d", i+1)
		}
		fmt.Fprintf(&cases, "\t\t{%s, %s},\n", coefLit, expected)
	}

	precision := "Float32"
	if prog.config.Precision == solver.Float64 {
		precision = "Float64"
	}

	src := fmt.Sprintf(`package %s

func %s(t *testing.T) {
	s := &solver.Solver{Precision: solver.%s, Epsilon: %s}
	testCases := []struct {
		coef     solver.Coefficients
		expected solver.Solution
	}{
%s	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test%%d", i), func(t *testing.T) {
			if actual := s.Solve(tc.coef); actual != tc.expected {
				t.Errorf("Solve(%%+v) = %%#v, expected %%#v", tc.coef, actual, tc.expected)
			}
		})
	}
}
`, pkgName, testFuncName, precision, floatLit(prog.config.Epsilon), cases.String())

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "quadeq_gen_test.go", src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate AST for test file")
	}
	astutil.AddImport(fset, f, "fmt")
	astutil.AddImport(fset, f, "testing")
	astutil.AddImport(fset, f, solverPackagePath)

	return &TestFile{fset: fset, file: f}, nil
}

func floatLit(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finiteLit(name string, v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.Errorf("%s=%v cannot be asserted by equality", name, v)
	}
	return floatLit(v), nil
}

func coefficientsExpr(c solver.Coefficients) (string, error) {
	vals := [3]float64{c.A, c.B, c.C}
	lits := make([]string, 3)
	for i, v := range vals {
		lit, err := finiteLit(coefficientNames[i], v)
		if err != nil {
			return "", err
		}
		lits[i] = lit
	}
	return fmt.Sprintf("solver.Coefficients{A: %s, B: %s, C: %s}", lits[0], lits[1], lits[2]), nil
}

func solutionExpr(s solver.Solution) (string, error) {
	switch s := s.(type) {
	case solver.Infinite:
		return "solver.Infinite{}", nil
	case solver.Inconsistent:
		return "solver.Inconsistent{}", nil
	case solver.Linear:
		x, err := finiteLit("x", s.X)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("solver.Linear{X: %s}", x), nil
	case solver.Complex:
		d, err := finiteLit("delta", s.Delta)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("solver.Complex{Delta: %s}", d), nil
	case solver.Double:
		x, err := finiteLit("x", s.X)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("solver.Double{X: %s}", x), nil
	case solver.Distinct:
		x1, err := finiteLit("x1", s.X1)
		if err != nil {
			return "", err
		}
		x2, err := finiteLit("x2", s.X2)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("solver.Distinct{X1: %s, X2: %s}", x1, x2), nil
	}
	return "", errors.Errorf("unexpected solution %T", s)
}
