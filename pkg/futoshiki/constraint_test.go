package futoshiki

import "testing"

func TestConstraintCheck(t *testing.T) {
	x := NewVariable("x", NewBitSet(3))
	y := NewVariable("y", NewBitSet(3))
	c := NewConstraint("gt(x,y)", Greater, []*Variable{x, y})
	Materialize(c)

	if !c.Check([]int{3, 1}) {
		t.Fatalf("3 > 1 must be satisfying")
	}
	if c.Check([]int{1, 3}) {
		t.Fatalf("1 > 3 must not be satisfying")
	}
	if c.Check([]int{3}) {
		t.Fatalf("wrong arity must not be satisfying")
	}
}

func TestConstraintNumUnassigned(t *testing.T) {
	x := NewVariable("x", NewBitSet(2))
	y := NewVariable("y", NewBitSet(2))
	c := NewConstraint("ne(x,y)", NotEqual, []*Variable{x, y})
	Materialize(c)

	if c.NumUnassigned() != 2 {
		t.Fatalf("expected 2 unassigned, got %d", c.NumUnassigned())
	}
	if err := x.Assign(1); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if c.NumUnassigned() != 1 {
		t.Fatalf("expected 1 unassigned, got %d", c.NumUnassigned())
	}
}

// hasSupportRef is the definition HasSupport must match: some satisfying
// tuple assigns value to v while every other scope variable's component is
// in that variable's current domain.
func hasSupportRef(c *Constraint, v *Variable, value int) bool {
	pos := -1
	for i, sv := range c.Scope() {
		if sv == v {
			pos = i
		}
	}
	for _, tup := range c.SatisfyingTuples() {
		if tup[pos] != value {
			continue
		}
		ok := true
		for i, sv := range c.Scope() {
			if i != pos && !sv.InCurDomain(tup[i]) {
				ok = false
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestHasSupportMatchesDefinition(t *testing.T) {
	x := NewVariable("x", NewBitSet(3))
	y := NewVariable("y", NewBitSet(3))
	z := NewVariable("z", NewBitSet(3))
	cons := []*Constraint{
		NewConstraint("gt(x,y)", Greater, []*Variable{x, y}),
		NewConstraint("lt(y,z)", Less, []*Variable{y, z}),
		NewConstraint("all-different(x,y,z)", AllDifferent, []*Variable{x, y, z}),
	}
	for _, c := range cons {
		Materialize(c)
	}

	// Narrow the domains so supports actually disappear.
	y.Prune(1)
	z.Prune(3)
	if err := x.Assign(3); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	for _, c := range cons {
		for _, v := range c.Scope() {
			for val := 1; val <= 3; val++ {
				got := c.HasSupport(v, val)
				want := hasSupportRef(c, v, val)
				if got != want {
					t.Errorf("%s: HasSupport(%s, %d) = %v, want %v", c.Name(), v.Name(), val, got, want)
				}
			}
		}
	}
}

func TestHasSupportForeignVariable(t *testing.T) {
	x := NewVariable("x", NewBitSet(2))
	y := NewVariable("y", NewBitSet(2))
	other := NewVariable("other", NewBitSet(2))
	c := NewConstraint("ne(x,y)", NotEqual, []*Variable{x, y})
	Materialize(c)

	if c.HasSupport(other, 1) {
		t.Fatalf("variable outside the scope must have no support")
	}
}

func TestHasSupportRespectsAssignment(t *testing.T) {
	x := NewVariable("x", NewBitSet(3))
	y := NewVariable("y", NewBitSet(3))
	c := NewConstraint("gt(x,y)", Greater, []*Variable{x, y})
	Materialize(c)

	if err := y.Assign(2); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !c.HasSupport(x, 3) {
		t.Fatalf("(3,2) should support x=3")
	}
	if c.HasSupport(x, 2) {
		t.Fatalf("x=2 needs y=1, but y is assigned 2")
	}
}
