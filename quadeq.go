// Package quadeq solves a·x² + b·x + c = 0 for real coefficients,
// including the degenerate linear and constant cases.
package quadeq

import (
	"fmt"
	"io"
	"math"

	"github.com/ajalab/quadeq/log"
	"github.com/ajalab/quadeq/solver"
	"github.com/ajalab/quadeq/trace"
	"github.com/pkg/errors"
)

// Prompt is printed before coefficients are read interactively.
const Prompt = "nhap gia tri a, b, c cua ax^2+bx+c: "

// Config specifies the (optional) parameters for evaluation.
// Options are ignored when a field has the zero value.
type Config struct {
	// Precision is the arithmetic precision. Defaults to single precision.
	Precision solver.Precision
	// Epsilon makes values within ±Epsilon compare equal to zero.
	// Zero keeps exact comparisons.
	Epsilon float64
	// Trace records the branches taken by each evaluation.
	Trace bool
}

// Open validates the configuration and returns a Program.
func (c *Config) Open() (*Program, error) {
	if c == nil {
		c = &Config{}
	}
	if c.Precision != solver.Float32 && c.Precision != solver.Float64 {
		return nil, errors.Errorf("unsupported precision %d", int(c.Precision))
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return nil, errors.Errorf("epsilon must be a finite non-negative number, got %v", c.Epsilon)
	}
	return &Program{config: *c}, nil
}

// Program evaluates equations with a fixed configuration.
type Program struct {
	config Config
}

// Result is the outcome of one evaluation.
type Result struct {
	Coefficients solver.Coefficients
	Solution     solver.Solution
	// Trace is nil unless Config.Trace is set.
	Trace *trace.Trace
}

func (r *Result) String() string {
	return Format(r.Solution)
}

// Evaluate classifies coef and computes its roots.
func (prog *Program) Evaluate(coef solver.Coefficients) *Result {
	s := &solver.Solver{
		Precision: prog.config.Precision,
		Epsilon:   prog.config.Epsilon,
	}
	if prog.config.Trace || log.GetLevel() <= log.DebugLevel {
		s.Trace = &trace.Trace{}
	}

	log.Debug.Printf("a=%v b=%v c=%v precision=%v epsilon=%v",
		coef.A, coef.B, coef.C, s.Precision, s.Epsilon)
	sol := s.Solve(coef)
	if s.Trace != nil {
		log.Debug.Printf("branches: %v", s.Trace)
		if d, ok := s.Trace.Delta(); ok {
			log.Debug.Printf("delta=%v", d)
		}
	}
	log.Info.Printf("%v %v", sol.Kind(), sol.Roots())

	res := &Result{Coefficients: coef, Solution: sol}
	if prog.config.Trace {
		res.Trace = s.Trace
	}
	return res
}

// Read reads one set of coefficients in the program's precision.
func (prog *Program) Read(r io.Reader) (solver.Coefficients, error) {
	return Read(r, prog.config.Precision)
}

// Execute reads coefficients from r, evaluates them and writes the report to w.
func (prog *Program) Execute(r io.Reader, w io.Writer) (*Result, error) {
	coef, err := prog.Read(r)
	if err != nil {
		return nil, err
	}
	res := prog.Evaluate(coef)
	if _, err := fmt.Fprintln(w, res); err != nil {
		return res, errors.Wrap(err, "failed to write the result")
	}
	return res, nil
}
