package futoshiki

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const board3x3 = "0 < 0 . 0\n0 . 0 . 3\n0 . 0 > 0\n"

func TestEncodeSingleCell(t *testing.T) {
	b := mustBoard(t, "0")
	for name, encode := range map[string]func(*Board) (*CSP, [][]*Variable){
		"binary":  EncodeBinary,
		"alldiff": EncodeAllDiff,
	} {
		m, grid := encode(b)
		if len(m.Variables()) != 1 {
			t.Fatalf("%s: expected 1 variable, got %d", name, len(m.Variables()))
		}
		if len(m.Constraints()) != 0 {
			t.Fatalf("%s: expected no constraints, got %d", name, len(m.Constraints()))
		}
		if diff := cmp.Diff([]int{1}, grid[0][0].CurDomain()); diff != "" {
			t.Fatalf("%s: 1x1 domain (-want +got):\n%s", name, diff)
		}
	}
}

func TestEncodeBinaryShape(t *testing.T) {
	m, grid := EncodeBinary(mustBoard(t, board3x3))

	if len(m.Variables()) != 9 {
		t.Fatalf("expected 9 variables, got %d", len(m.Variables()))
	}
	// 9 row pairs + 9 column pairs + 2 inequality symbols.
	if len(m.Constraints()) != 20 {
		t.Fatalf("expected 20 constraints, got %d", len(m.Constraints()))
	}
	for _, c := range m.Constraints() {
		if c.Arity() != 2 {
			t.Fatalf("constraint %s is not binary", c.Name())
		}
		if len(c.SatisfyingTuples()) == 0 {
			t.Fatalf("constraint %s was not materialized", c.Name())
		}
	}

	// Grid is (row, col) addressable with the right domains.
	if grid[1][2].Name() != "v1,2" {
		t.Fatalf("unexpected grid naming: %s", grid[1][2].Name())
	}
	if diff := cmp.Diff([]int{3}, grid[1][2].OriginalDomain()); diff != "" {
		t.Fatalf("fixed cell domain (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, grid[0][0].OriginalDomain()); diff != "" {
		t.Fatalf("blank cell domain (-want +got):\n%s", diff)
	}
}

func TestEncodeBinaryOperators(t *testing.T) {
	m, grid := EncodeBinary(mustBoard(t, board3x3))

	var lt, gt *Constraint
	for _, c := range m.Constraints() {
		switch c.Op() {
		case Less:
			lt = c
		case Greater:
			gt = c
		}
	}
	if lt == nil || gt == nil {
		t.Fatalf("expected one < and one > constraint")
	}
	if lt.Scope()[0] != grid[0][0] || lt.Scope()[1] != grid[0][1] {
		t.Fatalf("< constraint scope must follow the board adjacency")
	}
	if gt.Scope()[0] != grid[2][1] || gt.Scope()[1] != grid[2][2] {
		t.Fatalf("> constraint scope must follow the board adjacency")
	}
	if diff := cmp.Diff([][]int{{1, 2}, {1, 3}, {2, 3}}, lt.SatisfyingTuples()); diff != "" {
		t.Fatalf("< tuples (-want +got):\n%s", diff)
	}
}

func TestEncodeAllDiffShape(t *testing.T) {
	m, grid := EncodeAllDiff(mustBoard(t, board3x3))

	// 3 row + 3 column all-different constraints + 2 inequality symbols.
	if len(m.Constraints()) != 8 {
		t.Fatalf("expected 8 constraints, got %d", len(m.Constraints()))
	}
	allDiff, ineq := 0, 0
	for _, c := range m.Constraints() {
		switch c.Op() {
		case AllDifferent:
			allDiff++
			if c.Arity() != 3 {
				t.Fatalf("all-different %s has arity %d", c.Name(), c.Arity())
			}
		case Less, Greater:
			ineq++
			if c.Arity() != 2 {
				t.Fatalf("inequality %s has arity %d", c.Name(), c.Arity())
			}
		default:
			t.Fatalf("unexpected operator %s in all-different model", c.Op())
		}
		if len(c.SatisfyingTuples()) == 0 {
			t.Fatalf("constraint %s was not materialized", c.Name())
		}
	}
	if allDiff != 6 || ineq != 2 {
		t.Fatalf("expected 6 all-different + 2 inequalities, got %d + %d", allDiff, ineq)
	}

	// A fixed cell participates in its row and column constraints like any
	// other cell.
	if got := len(m.ConstraintsWith(grid[1][2])); got != 2 {
		t.Fatalf("fixed cell should appear in 2 constraints, got %d", got)
	}
}

func TestEncodeFixedCellsParticipate(t *testing.T) {
	m, grid := EncodeBinary(mustBoard(t, board3x3))
	// Fixed cell v1,2: two row pairs + two column pairs, no symbols touch it.
	if got := len(m.ConstraintsWith(grid[1][2])); got != 4 {
		t.Fatalf("fixed cell should appear in 4 binary constraints, got %d", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
