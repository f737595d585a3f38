// Package futoshiki: the propagator family.
//
// A propagator is called by the search driver after each assignment (and
// once before any assignment, with newVar nil) and answers two questions:
// can the search continue, and which domain values were pruned along the
// way. The prune list is the driver's undo record, so it must be complete
// and duplicate-free: a pruning is reported exactly when Prune actually
// removed the value, and a failing call still returns every pruning it
// performed so the caller can restore them verbatim.
package futoshiki

// Pruning records the removal of one value from one variable's current
// domain. The search driver unprunes these on backtrack.
type Pruning struct {
	Var   *Variable
	Value int
}

// Propagator is the common contract of the family. newVar is the most
// recently assigned variable, or nil for the pre-search call. The boolean
// is false when a dead end was detected (some current domain emptied, or a
// fully assigned constraint is violated).
type Propagator func(m *CSP, newVar *Variable) (bool, []Pruning)

// CheckAssigned is the baseline propagator: it prunes nothing and only
// verifies constraints whose scope is fully assigned. With newVar nil it
// has nothing to do and succeeds.
func CheckAssigned(m *CSP, newVar *Variable) (bool, []Pruning) {
	if newVar == nil {
		return true, nil
	}
	for _, c := range m.ConstraintsWith(newVar) {
		if c.NumUnassigned() != 0 {
			continue
		}
		vals := make([]int, c.Arity())
		for i, v := range c.Scope() {
			vals[i] = v.Value()
		}
		if !c.Check(vals) {
			return false, nil
		}
	}
	return true, nil
}

// ForwardCheck prunes through constraints that have exactly one unassigned
// variable left: every remaining value of that variable is tested against
// the assigned rest of the scope, and values yielding a non-satisfying
// tuple are pruned. The examined constraints are those referencing newVar,
// or all constraints on the pre-search call. A domain wipeout stops the
// propagator immediately, returning the prunings performed so far.
func ForwardCheck(m *CSP, newVar *Variable) (bool, []Pruning) {
	cons := m.Constraints()
	if newVar != nil {
		cons = m.ConstraintsWith(newVar)
	}

	var pruned []Pruning
	for _, c := range cons {
		if c.NumUnassigned() != 1 {
			continue
		}
		vals := make([]int, c.Arity())
		var open *Variable
		openPos := -1
		for i, v := range c.Scope() {
			if v.IsAssigned() {
				vals[i] = v.Value()
			} else {
				open, openPos = v, i
			}
		}
		for _, val := range open.CurDomain() {
			vals[openPos] = val
			if c.Check(vals) {
				continue
			}
			if open.Prune(val) {
				pruned = append(pruned, Pruning{Var: open, Value: val})
			}
			if open.CurDomainSize() == 0 {
				return false, pruned
			}
		}
	}
	return true, pruned
}

// arc is a (variable, constraint) pair awaiting re-verification.
type arc struct {
	varID int
	conID int
}

// EnforceGAC runs generalized arc consistency to a fixed point. The
// worklist holds (variable, constraint) pairs, processed FIFO; a set-backed
// pending marker alongside the queue keeps membership tests O(1) and
// guarantees no pair is enqueued twice. Seeding covers the constraints
// referencing newVar, or every constraint on the pre-search call.
//
// For each popped pair (v, c), every value of v's current domain without a
// support in c is pruned. A pruning re-enqueues (u, c') for each constraint
// c' referencing v and each other variable u in its scope. The loop ends at
// a fixed point (success) or on a domain wipeout (failure with the prunings
// performed so far).
func EnforceGAC(m *CSP, newVar *Variable) (bool, []Pruning) {
	cons := m.Constraints()
	if newVar != nil {
		cons = m.ConstraintsWith(newVar)
	}

	var queue []arc
	pending := make(map[arc]bool)
	push := func(v *Variable, c *Constraint) {
		a := arc{varID: v.id, conID: c.id}
		if pending[a] {
			return
		}
		pending[a] = true
		queue = append(queue, a)
	}
	for _, c := range cons {
		for _, v := range c.Scope() {
			push(v, c)
		}
	}

	var pruned []Pruning
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		delete(pending, a)
		v := m.vars[a.varID]
		c := m.cons[a.conID]

		shrunk := false
		for _, val := range v.CurDomain() {
			if c.HasSupport(v, val) {
				continue
			}
			if v.Prune(val) {
				pruned = append(pruned, Pruning{Var: v, Value: val})
				shrunk = true
			}
			if v.CurDomainSize() == 0 {
				return false, pruned
			}
		}
		if !shrunk {
			continue
		}
		for _, c2 := range m.ConstraintsWith(v) {
			for _, u := range c2.Scope() {
				if u != v {
					push(u, c2)
				}
			}
		}
	}
	return true, pruned
}
