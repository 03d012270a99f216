package quadeq

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ajalab/quadeq/solver"
	"github.com/pkg/errors"
)

var coefficientNames = [3]string{"a", "b", "c"}

// InputError reports a missing or malformed coefficient.
type InputError struct {
	// Index is the zero-based position of the token in the input.
	Index int
	// Token is the offending text, empty if the input ended early.
	Token string
	Err   error
}

func (e *InputError) Error() string {
	name := coefficientNames[e.Index%3]
	if n := e.Index / 3; n > 0 {
		name = fmt.Sprintf("%s of equation %d", name, n+1)
	}
	if e.Token == "" {
		return fmt.Sprintf("missing coefficient %s", name)
	}
	return fmt.Sprintf("invalid coefficient %s: %q is not a number", name, e.Token)
}

// Cause returns the underlying error.
func (e *InputError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error { return e.Err }

type tokenReader struct {
	sc      *bufio.Scanner
	bitSize int
	n       int
}

func newTokenReader(r io.Reader, p solver.Precision) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc, bitSize: p.BitSize()}
}

// next returns the next number, or io.EOF at a clean end of input.
func (tr *tokenReader) next() (float64, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return 0, errors.Wrap(err, "failed to read coefficients")
		}
		return 0, io.EOF
	}
	tok := tr.sc.Text()
	idx := tr.n
	tr.n++

	v, err := strconv.ParseFloat(tok, tr.bitSize)
	if err != nil {
		// Out-of-range values saturate to ±Inf or 0.
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, &InputError{Index: idx, Token: tok, Err: err}
	}
	return v, nil
}

func (tr *tokenReader) triple() (solver.Coefficients, error) {
	var v [3]float64
	for i := range v {
		x, err := tr.next()
		if err == io.EOF {
			if i == 0 {
				return solver.Coefficients{}, io.EOF
			}
			return solver.Coefficients{}, &InputError{Index: tr.n, Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return solver.Coefficients{}, err
		}
		v[i] = x
	}
	return solver.Coefficients{A: v[0], B: v[1], C: v[2]}, nil
}

// Read reads three whitespace-separated coefficients a, b and c from r,
// parsed with the bit size of p. Input after the third number is not consumed
// beyond the scanner's buffer and is ignored.
func Read(r io.Reader, p solver.Precision) (solver.Coefficients, error) {
	coef, err := newTokenReader(r, p).triple()
	if err == io.EOF {
		return coef, &InputError{Index: 0, Err: io.ErrUnexpectedEOF}
	}
	return coef, err
}

// ReadAll reads coefficient triples from r until EOF.
func ReadAll(r io.Reader, p solver.Precision) ([]solver.Coefficients, error) {
	tr := newTokenReader(r, p)
	var coefs []solver.Coefficients
	for {
		coef, err := tr.triple()
		if err == io.EOF {
			return coefs, nil
		}
		if err != nil {
			return nil, err
		}
		coefs = append(coefs, coef)
	}
}
