// Package futoshiki: constraint variables.
//
// A Variable carries two domains. The original domain is fixed at encoding
// time and never changes. The current domain shrinks as propagators prune
// values and grows back as the search driver unprunes them on backtrack.
// Assignment is layered on top: an assigned variable reports a singleton
// current domain without disturbing the pruned/unpruned state underneath,
// so the other values can be restored when the assignment is undone.
package futoshiki

import (
	"errors"
	"fmt"
)

// Errors reported by variable state transitions.
var (
	ErrAlreadyAssigned = errors.New("variable is already assigned")
	ErrNotAssigned     = errors.New("variable is not assigned")
	ErrValueNotInCur   = errors.New("value not in current domain")
)

// Variable is a finite-domain decision variable.
type Variable struct {
	id    int // index in the owning CSP's variable arena, set by NewCSP
	name  string
	orig  BitSet
	cur   BitSet
	value int // assigned value, 0 when unassigned
}

// NewVariable creates a variable whose original and current domains both
// equal the given domain. The variable starts unassigned.
func NewVariable(name string, domain BitSet) *Variable {
	return &Variable{
		id:   -1,
		name: name,
		orig: domain.Clone(),
		cur:  domain.Clone(),
	}
}

// ID returns the variable's index within its CSP, or -1 before registration.
func (v *Variable) ID() int { return v.id }

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// OriginalDomain returns the values admissible at encoding time, ascending.
func (v *Variable) OriginalDomain() []int { return v.orig.Values() }

// CurDomain returns the values currently possible for the variable,
// ascending. For an assigned variable this is the assigned singleton.
func (v *Variable) CurDomain() []int {
	if v.IsAssigned() {
		return []int{v.value}
	}
	return v.cur.Values()
}

// CurDomainSize returns the number of currently possible values.
func (v *Variable) CurDomainSize() int {
	if v.IsAssigned() {
		return 1
	}
	return v.cur.Count()
}

// InCurDomain reports whether value is currently possible for the variable.
func (v *Variable) InCurDomain(value int) bool {
	if v.IsAssigned() {
		return value == v.value
	}
	return v.cur.Has(value)
}

// Prune removes value from the current domain. It returns true only if the
// value was present, so callers can record exactly the prunings that took
// effect.
func (v *Variable) Prune(value int) bool {
	if !v.cur.Has(value) {
		return false
	}
	v.cur = v.cur.Remove(value)
	return true
}

// Unprune restores a previously pruned value to the current domain.
func (v *Variable) Unprune(value int) {
	v.cur = v.cur.Add(value)
}

// IsAssigned reports whether the search has bound the variable to a value.
func (v *Variable) IsAssigned() bool { return v.value != 0 }

// Assign binds the variable to value. The value must be in the current
// domain and the variable must be unassigned.
func (v *Variable) Assign(value int) error {
	if v.IsAssigned() {
		return ErrAlreadyAssigned
	}
	if !v.cur.Has(value) {
		return ErrValueNotInCur
	}
	v.value = value
	return nil
}

// Unassign removes the variable's binding, exposing the underlying current
// domain again.
func (v *Variable) Unassign() error {
	if !v.IsAssigned() {
		return ErrNotAssigned
	}
	v.value = 0
	return nil
}

// Value returns the assigned value.
// Panics if the variable is not assigned.
func (v *Variable) Value() int {
	if !v.IsAssigned() {
		panic(fmt.Sprintf("variable %s is not assigned (domain size: %d)", v.name, v.cur.Count()))
	}
	return v.value
}

// TryValue returns the assigned value, or 0 together with an error when the
// variable is unassigned. This is the safe alternative to Value for callers
// that prefer not to recover panics.
func (v *Variable) TryValue() (int, error) {
	if !v.IsAssigned() {
		return 0, fmt.Errorf("variable %s: %w", v.name, ErrNotAssigned)
	}
	return v.value, nil
}

// String returns a human-readable representation.
func (v *Variable) String() string {
	if v.IsAssigned() {
		return fmt.Sprintf("%s=%d", v.name, v.value)
	}
	return fmt.Sprintf("%s in %s", v.name, v.cur.String())
}
