// Package futoshiki: chronological backtracking search.
//
// The driver owns the assignment trail: it assigns a variable, hands the
// model to a propagator, and on failure (or when a subtree is exhausted)
// unprunes exactly the values the propagator reported before undoing the
// assignment. Variable order is arena order and values are tried ascending;
// there are deliberately no ordering heuristics.
package futoshiki

import "context"

// frame is one level of the search stack: a variable, the values left to
// try, and the undo record of the attempt currently in effect.
type frame struct {
	v      *Variable
	values []int
	next   int
	prunes []Pruning
	active bool
}

// Solve searches for solutions of m using the given propagator, stopping
// after limit solutions (limit <= 0 means all). Each solution is a value
// vector indexed by variable ID. The model's domains and assignments are
// fully restored before Solve returns, including prunings made by the
// pre-search propagator call.
func Solve(ctx context.Context, m *CSP, prop Propagator, limit int) ([][]int, error) {
	if prop == nil {
		prop = CheckAssigned
	}

	ok, rootPrunes := prop(m, nil)
	defer restore(rootPrunes)
	if !ok {
		return nil, nil
	}

	var solutions [][]int
	first := firstUnassigned(m)
	if first == nil {
		return solutions, nil
	}
	stack := []*frame{{v: first, values: first.CurDomain()}}

	unwind := func() {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].active {
				restore(stack[i].prunes)
				stack[i].v.Unassign()
			}
		}
	}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			unwind()
			return solutions, ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		if f.active {
			restore(f.prunes)
			f.prunes = nil
			f.v.Unassign()
			f.active = false
		}
		if f.next >= len(f.values) {
			stack = stack[:len(stack)-1]
			continue
		}

		val := f.values[f.next]
		f.next++
		if err := f.v.Assign(val); err != nil {
			continue
		}
		f.active = true

		ok, prunes := prop(m, f.v)
		f.prunes = prunes
		if !ok {
			continue
		}

		next := firstUnassigned(m)
		if next == nil {
			sol := make([]int, len(m.vars))
			for i, v := range m.vars {
				sol[i] = v.Value()
			}
			solutions = append(solutions, sol)
			if limit > 0 && len(solutions) >= limit {
				unwind()
				return solutions, nil
			}
			continue
		}
		stack = append(stack, &frame{v: next, values: next.CurDomain()})
	}

	return solutions, nil
}

// firstUnassigned returns the lowest-ID unassigned variable, or nil when
// every variable is assigned.
func firstUnassigned(m *CSP) *Variable {
	for _, v := range m.vars {
		if !v.IsAssigned() {
			return v
		}
	}
	return nil
}

// restore unprunes a propagator's prune list, newest first.
func restore(prunes []Pruning) {
	for i := len(prunes) - 1; i >= 0; i-- {
		prunes[i].Var.Unprune(prunes[i].Value)
	}
}

// GridValues maps a solution vector returned by Solve onto the (row, col)
// grid produced by an encoder.
func GridValues(grid [][]*Variable, solution []int) [][]int {
	out := make([][]int, len(grid))
	for r, row := range grid {
		out[r] = make([]int, len(row))
		for c, v := range row {
			out[r][c] = solution[v.ID()]
		}
	}
	return out
}
