// Package futoshiki: constraint materialization.
//
// Materialization turns an operator plus a variable scope into the explicit
// relation the constraint enforces: the Cartesian product of the scope's
// current domains is enumerated in scope order and filtered through the
// operator's predicate. Enumeration order is deterministic (rightmost
// component varies fastest, values ascending), so small relations can be
// asserted exactly in tests.
package futoshiki

// SatisfyingTuples computes the tuples over the scope's current domains
// that satisfy op, in deterministic product order.
func SatisfyingTuples(op Operator, scope []*Variable) [][]int {
	domains := make([][]int, len(scope))
	for i, v := range scope {
		domains[i] = v.CurDomain()
		if len(domains[i]) == 0 {
			return nil
		}
	}

	var tuples [][]int
	// Odometer over the domain slices: idx[i] walks domains[i].
	idx := make([]int, len(scope))
	t := make([]int, len(scope))
	for {
		for i := range t {
			t[i] = domains[i][idx[i]]
		}
		if op.holds(t) {
			tuple := make([]int, len(t))
			copy(tuple, t)
			tuples = append(tuples, tuple)
		}

		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(domains[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return tuples
		}
	}
}

// Materialize populates c's satisfying-tuple set from its operator and the
// current domains of its scope. Encoders call this once per constraint
// before search begins.
func Materialize(c *Constraint) {
	c.SetSatisfyingTuples(SatisfyingTuples(c.op, c.scope))
}
