// Package futoshiki: board encoders.
//
// Two encoders translate a Board into a CSP. EncodeBinary emits only binary
// constraints: a not-equal constraint for every pair of cells sharing a row
// or column, plus a greater-than or less-than constraint for every
// inequality symbol on the board. EncodeAllDiff replaces the pairwise
// not-equals with one all-different constraint per row and per column (2n
// constraints of arity n) and emits the same binary inequalities.
//
// Both encoders materialize every constraint's satisfying tuples before
// returning, and both return the variable grid addressable by (row, col).
// The two models have identical solution sets.
package futoshiki

import "fmt"

// buildGrid creates one variable per cell. Blank cells get the full domain
// 1..n; fixed cells get a singleton domain. Fixed cells still participate
// in every row/column constraint, no special casing is needed: their
// singleton domains prune peers through the ordinary propagators.
func buildGrid(b *Board) ([][]*Variable, []*Variable) {
	n := b.Size()
	grid := make([][]*Variable, n)
	flat := make([]*Variable, 0, n*n)
	for r := 0; r < n; r++ {
		grid[r] = make([]*Variable, n)
		for c := 0; c < n; c++ {
			var dom BitSet
			if v := b.Cell(r, c); v == 0 {
				dom = NewBitSet(n)
			} else {
				dom = NewBitSetFromValues(n, []int{v})
			}
			grid[r][c] = NewVariable(fmt.Sprintf("v%d,%d", r, c), dom)
			flat = append(flat, grid[r][c])
		}
	}
	return grid, flat
}

// addSymbolConstraints emits one binary inequality constraint per non-"."
// symbol on the board, over exactly the adjacent pair it separates.
func addSymbolConstraints(m *CSP, b *Board, grid [][]*Variable) {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n-1; c++ {
			var op Operator
			switch b.SymbolAt(r, c) {
			case SymGreater:
				op = Greater
			case SymLess:
				op = Less
			default:
				continue
			}
			x, y := grid[r][c], grid[r][c+1]
			con := NewConstraint(fmt.Sprintf("%s(%s,%s)", op, x.Name(), y.Name()), op, []*Variable{x, y})
			Materialize(con)
			m.AddConstraint(con)
		}
	}
}

// EncodeBinary builds the all-binary model: pairwise not-equal constraints
// across every row and column, plus the board's inequality constraints.
// A not-equal pair and an inequality over the same two cells may coexist;
// the inequality subsumes the not-equal.
func EncodeBinary(b *Board) (*CSP, [][]*Variable) {
	n := b.Size()
	grid, flat := buildGrid(b)
	m := NewCSP("futoshiki-binary", flat)

	notEqual := func(x, y *Variable) {
		con := NewConstraint(fmt.Sprintf("ne(%s,%s)", x.Name(), y.Name()), NotEqual, []*Variable{x, y})
		Materialize(con)
		m.AddConstraint(con)
	}
	for r := 0; r < n; r++ {
		for a := 0; a < n; a++ {
			for c := a + 1; c < n; c++ {
				notEqual(grid[r][a], grid[r][c])
			}
		}
	}
	for c := 0; c < n; c++ {
		for a := 0; a < n; a++ {
			for r := a + 1; r < n; r++ {
				notEqual(grid[a][c], grid[r][c])
			}
		}
	}

	addSymbolConstraints(m, b, grid)
	return m, grid
}

// EncodeAllDiff builds the global model: one all-different constraint of
// arity n per row and per column, plus the board's inequality constraints.
func EncodeAllDiff(b *Board) (*CSP, [][]*Variable) {
	n := b.Size()
	grid, flat := buildGrid(b)
	m := NewCSP("futoshiki-alldiff", flat)

	allDiff := func(name string, scope []*Variable) {
		con := NewConstraint(name, AllDifferent, scope)
		Materialize(con)
		m.AddConstraint(con)
	}
	if n == 1 {
		// A single cell has nothing to differ from.
		return m, grid
	}
	for r := 0; r < n; r++ {
		scope := make([]*Variable, n)
		copy(scope, grid[r])
		allDiff(fmt.Sprintf("all-different(row%d)", r), scope)
	}
	for c := 0; c < n; c++ {
		scope := make([]*Variable, n)
		for r := 0; r < n; r++ {
			scope[r] = grid[r][c]
		}
		allDiff(fmt.Sprintf("all-different(col%d)", c), scope)
	}

	addSymbolConstraints(m, b, grid)
	return m, grid
}
