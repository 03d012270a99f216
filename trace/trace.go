package trace

import "strings"

// Trace is the sequence of branches taken during one evaluation.
// The zero value is ready to use.
type Trace struct {
	branches []Branch
	delta    *float64
}

// Record appends a branch and returns taken, so that it can wrap a condition
// in place.
func (t *Trace) Record(cond Cond, taken bool) bool {
	if t == nil {
		return taken
	}
	t.branches = append(t.branches, Branch{Cond: cond, Taken: taken})
	return taken
}

// RecordDelta stores the discriminant computed for the evaluation.
func (t *Trace) RecordDelta(d float64) {
	if t == nil {
		return
	}
	t.delta = &d
}

// Branches returns the recorded branches.
func (t *Trace) Branches() []Branch {
	return t.branches
}

// NumBranches returns the number of branches.
func (t *Trace) NumBranches() int {
	return len(t.branches)
}

// Delta returns the discriminant and whether it was computed.
func (t *Trace) Delta() (float64, bool) {
	if t.delta == nil {
		return 0, false
	}
	return *t.delta, true
}

func (t *Trace) String() string {
	parts := make([]string, len(t.branches))
	for i, b := range t.branches {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
