package paraxial

import (
	"math"
	"testing"
)

func nearly(a, b, tol Real) bool { return math.Abs(a-b) <= tol }

func mustSpace(t *testing.T, d Real) Matrix {
	t.Helper()
	el, err := NewSpace(d)
	if err != nil {
		t.Fatalf("NewSpace(%g): %v", d, err)
	}
	return el
}

func mustLens(t *testing.T, f, dia Real) Matrix {
	t.Helper()
	el, err := NewLens(f, dia)
	if err != nil {
		t.Fatalf("NewLens(%g, %g): %v", f, dia, err)
	}
	return el
}

func mustAperture(t *testing.T, dia Real) Matrix {
	t.Helper()
	el, err := NewAperture(dia)
	if err != nil {
		t.Fatalf("NewAperture(%g): %v", dia, err)
	}
	return el
}

func TestIdentityApply(t *testing.T) {
	r := Ray{Y: 2, Theta: 0.3, Z: 5}
	out := Identity().Apply(r)
	if out != r {
		t.Fatalf("I*r != r: %+v", out)
	}
}

func TestMulAssociativity(t *testing.T) {
	e1 := mustSpace(t, 10)
	e2 := mustLens(t, 5, 2.5)
	e3 := mustSpace(t, 7)

	left := e3.Mul(e2.Mul(e1))
	right := e3.Mul(e2).Mul(e1)

	for _, pair := range [][2]Real{
		{left.A, right.A}, {left.B, right.B}, {left.C, right.C}, {left.D, right.D},
	} {
		if !nearly(pair[0], pair[1], 1e-12) {
			t.Fatalf("associativity broken: %+v vs %+v", left, right)
		}
	}
	if left.Length != 17 || right.Length != 17 {
		t.Fatalf("lengths not additive: %g, %g", left.Length, right.Length)
	}
}

func TestComposeOrder(t *testing.T) {
	// Space(d) then Lens(f): the lens sees the translated height.
	sys := Compose(mustSpace(t, 10), mustLens(t, 5, Unconstrained))
	// expected: Lens*Space = [[1, 10], [-1/5, -1]]
	if !nearly(sys.A, 1, 1e-12) || !nearly(sys.B, 10, 1e-12) ||
		!nearly(sys.C, -0.2, 1e-12) || !nearly(sys.D, -1, 1e-12) {
		t.Fatalf("wrong composition order: %+v", sys)
	}
}

func TestCompositeAperture(t *testing.T) {
	sys := Compose(mustAperture(t, 2), mustAperture(t, 3))
	if sys.HasFiniteAperture() {
		t.Fatalf("composite must not merge apertures, got %g", sys.Aperture)
	}
	if sys.Kind != KindComposite {
		t.Fatalf("composite kind = %v", sys.Kind)
	}
}

func TestDeterminant(t *testing.T) {
	for _, el := range []Matrix{
		mustSpace(t, 12),
		mustLens(t, -3, 1),
		mustAperture(t, 4),
		Compose(mustSpace(t, 2), mustLens(t, 7, Unconstrained), mustSpace(t, 3)),
	} {
		if !nearly(el.Determinant(), 1, 1e-12) {
			t.Fatalf("det(%+v) = %g", el, el.Determinant())
		}
	}
}

func TestLabeled(t *testing.T) {
	el := mustLens(t, 5, 2.5).Labeled("L1")
	if el.Label != "L1" {
		t.Fatalf("label = %q", el.Label)
	}
}
