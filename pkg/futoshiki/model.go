// Package futoshiki: the CSP model.
//
// A CSP is an arena of variables and constraints plus an adjacency index
// from each variable to the constraints whose scope contains it. The arena
// is built once by an encoder; during search only variable domains mutate.
package futoshiki

import "fmt"

// CSP holds a constraint satisfaction problem.
type CSP struct {
	name        string
	vars        []*Variable
	cons        []*Constraint
	consWithVar [][]int // variable id -> constraint ids, insertion order
}

// NewCSP creates a model over the given variables. Each variable is
// registered in the arena and receives its index as ID.
func NewCSP(name string, vars []*Variable) *CSP {
	m := &CSP{
		name:        name,
		vars:        vars,
		consWithVar: make([][]int, len(vars)),
	}
	for i, v := range vars {
		v.id = i
	}
	return m
}

// Name returns the model's name.
func (m *CSP) Name() string { return m.name }

// Variables returns all variables in arena order.
// The returned slice must not be modified.
func (m *CSP) Variables() []*Variable { return m.vars }

// Constraints returns all constraints in insertion order.
// The returned slice must not be modified.
func (m *CSP) Constraints() []*Constraint { return m.cons }

// AddConstraint registers a constraint and indexes it against every scope
// variable. Scope variables must already belong to this model; use Validate
// to verify a finished model.
func (m *CSP) AddConstraint(c *Constraint) {
	c.id = len(m.cons)
	m.cons = append(m.cons, c)
	for _, v := range c.scope {
		if v.id >= 0 && v.id < len(m.consWithVar) {
			m.consWithVar[v.id] = append(m.consWithVar[v.id], c.id)
		}
	}
}

// ConstraintsWith returns the constraints whose scope contains v, in the
// order they were added to the model.
func (m *CSP) ConstraintsWith(v *Variable) []*Constraint {
	if v.id < 0 || v.id >= len(m.consWithVar) {
		return nil
	}
	ids := m.consWithVar[v.id]
	cons := make([]*Constraint, len(ids))
	for i, id := range ids {
		cons[i] = m.cons[id]
	}
	return cons
}

// Validate checks that the model is well formed: no variable has an empty
// current domain and every constraint's scope variables are registered here.
func (m *CSP) Validate() error {
	for _, v := range m.vars {
		if v.CurDomainSize() == 0 {
			return fmt.Errorf("csp %s: variable %s has empty domain", m.name, v.Name())
		}
	}
	for _, c := range m.cons {
		for _, v := range c.scope {
			if v.id < 0 || v.id >= len(m.vars) || m.vars[v.id] != v {
				return fmt.Errorf("csp %s: constraint %s references unregistered variable %s",
					m.name, c.Name(), v.Name())
			}
		}
	}
	return nil
}

// String returns a human-readable summary.
func (m *CSP) String() string {
	return fmt.Sprintf("CSP{%s: variables: %d, constraints: %d}", m.name, len(m.vars), len(m.cons))
}
