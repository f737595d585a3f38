// Package futoshiki: extensional constraints.
//
// A Constraint pairs an operator with an ordered variable scope and a set of
// satisfying tuples. The tuple set is the constraint's only semantics during
// search: Check and HasSupport consult it, never the operator directly. The
// operator is kept so the materializer can (re)compute the tuple set and so
// diagnostics can name the relation.
package futoshiki

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator identifies the relation a constraint enforces over its scope.
// The set is closed: every switch over Operator handles all four kinds.
type Operator int

const (
	// Greater holds when the first scope value exceeds the second.
	Greater Operator = iota
	// Less holds when the first scope value is below the second.
	Less
	// NotEqual holds when the two scope values differ.
	NotEqual
	// AllDifferent holds when all scope values are pairwise distinct.
	AllDifferent
)

// String returns the operator's name.
func (op Operator) String() string {
	switch op {
	case Greater:
		return "gt"
	case Less:
		return "lt"
	case NotEqual:
		return "ne"
	case AllDifferent:
		return "all-different"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Arity returns the scope size the operator requires, or 0 when any
// scope size of at least two is accepted.
func (op Operator) Arity() int {
	switch op {
	case Greater, Less, NotEqual:
		return 2
	default:
		return 0
	}
}

// holds evaluates the operator's predicate on a candidate tuple.
func (op Operator) holds(t []int) bool {
	switch op {
	case Greater:
		return t[0] > t[1]
	case Less:
		return t[0] < t[1]
	case NotEqual:
		return t[0] != t[1]
	case AllDifferent:
		for i := 0; i < len(t); i++ {
			for j := i + 1; j < len(t); j++ {
				if t[i] == t[j] {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

// supportKey indexes satisfying tuples by (scope position, value).
type supportKey struct {
	pos   int
	value int
}

// Constraint restricts the joint values of an ordered variable scope.
// The i-th component of every satisfying tuple is a value for scope[i].
type Constraint struct {
	id    int // index in the owning CSP's constraint arena, set by AddConstraint
	name  string
	op    Operator
	scope []*Variable

	tuples     [][]int              // satisfying tuples in materialization order
	satisfying map[string]struct{}  // tuple key -> present
	supports   map[supportKey][]int // (pos, value) -> indices into tuples
}

// NewConstraint creates a constraint over the given scope with an empty
// satisfying-tuple set. Call SetSatisfyingTuples (normally via Materialize)
// before using the constraint in propagation.
func NewConstraint(name string, op Operator, scope []*Variable) *Constraint {
	return &Constraint{
		id:         -1,
		name:       name,
		op:         op,
		scope:      scope,
		satisfying: make(map[string]struct{}),
		supports:   make(map[supportKey][]int),
	}
}

// Name returns the constraint's name.
func (c *Constraint) Name() string { return c.name }

// Op returns the relation the constraint enforces.
func (c *Constraint) Op() Operator { return c.op }

// Scope returns the constraint's variables in tuple-component order.
// The returned slice must not be modified.
func (c *Constraint) Scope() []*Variable { return c.scope }

// Arity returns the number of variables in the scope.
func (c *Constraint) Arity() int { return len(c.scope) }

// NumUnassigned returns how many scope variables the search has not bound.
func (c *Constraint) NumUnassigned() int {
	n := 0
	for _, v := range c.scope {
		if !v.IsAssigned() {
			n++
		}
	}
	return n
}

// SetSatisfyingTuples installs the constraint's tuple set and rebuilds the
// per-(position, value) support index. Each tuple must have the scope's
// arity; tuples are retained in the given order.
func (c *Constraint) SetSatisfyingTuples(tuples [][]int) {
	c.tuples = tuples
	c.satisfying = make(map[string]struct{}, len(tuples))
	c.supports = make(map[supportKey][]int)
	for i, t := range tuples {
		c.satisfying[tupleKey(t)] = struct{}{}
		for pos, val := range t {
			k := supportKey{pos: pos, value: val}
			c.supports[k] = append(c.supports[k], i)
		}
	}
}

// SatisfyingTuples returns the tuple set in materialization order.
// The returned slice must not be modified.
func (c *Constraint) SatisfyingTuples() [][]int { return c.tuples }

// Check reports whether vals, read in scope order, is a satisfying tuple.
func (c *Constraint) Check(vals []int) bool {
	if len(vals) != len(c.scope) {
		return false
	}
	_, ok := c.satisfying[tupleKey(vals)]
	return ok
}

// HasSupport reports whether some satisfying tuple assigns value to v while
// every other scope variable's component lies in that variable's current
// domain. Returns false if v is not in the scope.
func (c *Constraint) HasSupport(v *Variable, value int) bool {
	pos := -1
	for i, sv := range c.scope {
		if sv == v {
			pos = i
			break
		}
	}
	if pos == -1 {
		return false
	}
	for _, ti := range c.supports[supportKey{pos: pos, value: value}] {
		t := c.tuples[ti]
		ok := true
		for i, sv := range c.scope {
			if i == pos {
				continue
			}
			if !sv.InCurDomain(t[i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// String returns a human-readable description.
func (c *Constraint) String() string {
	names := make([]string, len(c.scope))
	for i, v := range c.scope {
		names[i] = v.Name()
	}
	return fmt.Sprintf("%s(%s)", c.op, strings.Join(names, ","))
}

// tupleKey encodes a tuple as a map key. Deterministic and collision-free
// because components are written with an explicit separator.
func tupleKey(t []int) string {
	var sb strings.Builder
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
