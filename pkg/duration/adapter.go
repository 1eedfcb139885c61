package duration

import (
	"errors"
	"fmt"
)

// ErrConstraint is matched by every *ConstraintError.
var ErrConstraint = errors.New("duration constraint violated")

// ConstraintError reports a parsed value rejected by an Adapter constraint.
type ConstraintError struct {
	Seconds    int64
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("duration %s must be %s", Format(e.Seconds), e.Constraint)
}

// Is reports whether target is ErrConstraint.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

// Constraint is a range check applied after parsing.
type Constraint struct {
	desc  string
	check func(int64) bool
}

// String describes the constraint, e.g. "greater than 0s".
func (c Constraint) String() string {
	return c.desc
}

// Gt requires the value to be greater than n seconds.
func Gt(n int64) Constraint {
	return Constraint{desc: "greater than " + Format(n), check: func(v int64) bool { return v > n }}
}

// Ge requires the value to be at least n seconds.
func Ge(n int64) Constraint {
	return Constraint{desc: "at least " + Format(n), check: func(v int64) bool { return v >= n }}
}

// Lt requires the value to be less than n seconds.
func Lt(n int64) Constraint {
	return Constraint{desc: "less than " + Format(n), check: func(v int64) bool { return v < n }}
}

// Le requires the value to be at most n seconds.
func Le(n int64) Constraint {
	return Constraint{desc: "at most " + Format(n), check: func(v int64) bool { return v <= n }}
}

// Adapter applies Parse as a coercion step followed by optional range
// constraints. An Adapter is immutable and safe for concurrent use.
type Adapter struct {
	parser      *Parser
	constraints []Constraint
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithParser makes the Adapter use p instead of the default Parser.
func WithParser(p *Parser) AdapterOption {
	return func(a *Adapter) {
		if p != nil {
			a.parser = p
		}
	}
}

// WithConstraints appends constraints, checked in order.
func WithConstraints(cs ...Constraint) AdapterOption {
	return func(a *Adapter) {
		a.constraints = append(a.constraints, cs...)
	}
}

// NewAdapter creates an Adapter.
func NewAdapter(opts ...AdapterOption) *Adapter {
	a := &Adapter{parser: defaultParser}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultAdapter has no constraints; Validate is equivalent to Parse.
var DefaultAdapter = NewAdapter()

// Validate parses v and applies the constraints. Parse errors are returned
// unchanged.
func (a *Adapter) Validate(v any) (int64, error) {
	secs, err := a.parser.Parse(v)
	if err != nil {
		return 0, err
	}
	for _, c := range a.constraints {
		if !c.check(secs) {
			return 0, &ConstraintError{Seconds: secs, Constraint: c.desc}
		}
	}
	return secs, nil
}

// ValidateSeconds is Validate returning a Seconds.
func (a *Adapter) ValidateSeconds(v any) (Seconds, error) {
	secs, err := a.Validate(v)
	return Seconds(secs), err
}
