package paraxial

import "testing"

func TestSpaceTranslation(t *testing.T) {
	r := Ray{Y: 1, Theta: 0.1}
	one := mustSpace(t, 7).Apply(r)
	two := mustSpace(t, 4).Apply(mustSpace(t, 3).Apply(r))
	if !nearly(one.Y, two.Y, 1e-12) || !nearly(one.Theta, two.Theta, 1e-12) {
		t.Fatalf("Space(7) != Space(3)+Space(4): %+v vs %+v", one, two)
	}
	if one.Theta != r.Theta {
		t.Fatalf("space changed angle: %g", one.Theta)
	}
	if one.Z != 7 || two.Z != 7 {
		t.Fatalf("z: %g, %g", one.Z, two.Z)
	}
}

func TestLensFixesAxis(t *testing.T) {
	for _, f := range []Real{5, -5, 0.1, 1e6} {
		lens := mustLens(t, f, Unconstrained)
		out := lens.Apply(Ray{})
		if out.Y != 0 || out.Theta != 0 {
			t.Fatalf("axis not fixed by Lens(%g): %+v", f, out)
		}
	}
}

func TestLensBendsRay(t *testing.T) {
	// parallel ray at height y crosses the axis at the focal plane
	lens := mustLens(t, 5, Unconstrained)
	focal := mustSpace(t, 5)
	out := focal.Apply(lens.Apply(Ray{Y: 2}))
	if !nearly(out.Y, 0, 1e-12) {
		t.Fatalf("parallel ray missed focus: %+v", out)
	}
}

func TestApplyIsPure(t *testing.T) {
	r := Ray{Y: 1, Theta: 0.2, Z: 3}
	el := mustLens(t, 5, 2.5)
	_ = el.Apply(r)
	if (r != Ray{Y: 1, Theta: 0.2, Z: 3}) {
		t.Fatalf("input ray mutated: %+v", r)
	}
}

func TestBlocking(t *testing.T) {
	ap := mustAperture(t, 2)
	if out := ap.Apply(Ray{Y: 1.01}); !out.Blocked {
		t.Fatal("ray above half-aperture not blocked")
	}
	if out := ap.Apply(Ray{Y: 1.0}); out.Blocked {
		t.Fatal("ray exactly at half-aperture blocked")
	}
	if out := ap.Apply(Ray{Y: -1.5}); !out.Blocked {
		t.Fatal("negative heights must block symmetrically")
	}
}

func TestBlockedIsSticky(t *testing.T) {
	p := NewOpticalPath("sticky")
	p.Append(mustAperture(t, 2), mustSpace(t, 10), mustLens(t, 5, Unconstrained))
	trace := p.Trace(Ray{Y: 5})
	if trace[0].Blocked {
		t.Fatal("input ray already blocked")
	}
	for i, r := range trace[1:] {
		if !r.Blocked {
			t.Fatalf("snapshot %d lost the blocked flag: %+v", i+1, r)
		}
	}
}

func TestUnconstrainedNeverBlocks(t *testing.T) {
	sp := mustSpace(t, 1000)
	if out := sp.Apply(Ray{Y: 1e9, Theta: 1}); out.Blocked {
		t.Fatal("unconstrained element blocked a ray")
	}
}

func TestZMonotonic(t *testing.T) {
	p := NewOpticalPath("mono")
	p.Append(mustSpace(t, 10), mustLens(t, 5, 2.5), mustSpace(t, 12), mustLens(t, 7, 10), mustSpace(t, 10))
	trace := p.Trace(Ray{Theta: 0.05})
	for i := 1; i < len(trace); i++ {
		if trace[i].Z < trace[i-1].Z {
			t.Fatalf("z decreased at snapshot %d: %g -> %g", i, trace[i-1].Z, trace[i].Z)
		}
	}
	if last := trace[len(trace)-1].Z; !nearly(last, 32, 1e-12) {
		t.Fatalf("final z = %g, want 32", last)
	}
}
