package futoshiki

import (
	"context"
	"testing"
)

// mustBoard parses a board from text, failing the test on error.
func mustBoard(t *testing.T, text string) *Board {
	t.Helper()
	b, err := ParseBoardText(text)
	if err != nil {
		t.Fatalf("ParseBoardText: %v", err)
	}
	return b
}

// solveAll enumerates every solution with the given propagator.
func solveAll(t *testing.T, m *CSP, prop Propagator) [][]int {
	t.Helper()
	solutions, err := Solve(context.Background(), m, prop, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return solutions
}

// assignAll binds every grid variable to the given values.
func assignAll(t *testing.T, grid [][]*Variable, values [][]int) {
	t.Helper()
	for r, row := range grid {
		for c, v := range row {
			if err := v.Assign(values[r][c]); err != nil {
				t.Fatalf("assign %s=%d: %v", v.Name(), values[r][c], err)
			}
		}
	}
}

// checkRestored fails unless every variable is unassigned with its current
// domain equal to its original domain.
func checkRestored(t *testing.T, m *CSP) {
	t.Helper()
	for _, v := range m.Variables() {
		if v.IsAssigned() {
			t.Fatalf("variable %s still assigned", v.Name())
		}
		if !v.cur.Equal(v.orig) {
			t.Fatalf("variable %s: current domain %s, original %s", v.Name(), v.cur, v.orig)
		}
	}
}

// checkNoDuplicatePrunes fails if the prune list mentions any
// (variable, value) pair twice.
func checkNoDuplicatePrunes(t *testing.T, prunes []Pruning) {
	t.Helper()
	seen := make(map[Pruning]bool)
	for _, p := range prunes {
		if seen[p] {
			t.Fatalf("pruning (%s, %d) reported twice", p.Var.Name(), p.Value)
		}
		seen[p] = true
	}
}
