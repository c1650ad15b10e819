package paraxial

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayout(t *testing.T) {
	p := NewOpticalPath("layout")
	p.Append(
		mustSpace(t, 10).Labeled("object space"),
		mustLens(t, 5, 2.5).Labeled("L1"),
		mustSpace(t, 12),
		mustAperture(t, 4).Labeled("iris"),
	)
	want := []ElementOutline{
		{Z: 0, Length: 10, Aperture: Unconstrained, Label: "object space", Kind: KindSpace},
		{Z: 10, Length: 0, Aperture: 2.5, Label: "L1", Kind: KindLens},
		{Z: 10, Length: 12, Aperture: Unconstrained, Kind: KindSpace},
		{Z: 22, Length: 0, Aperture: 4, Label: "iris", Kind: KindAperture},
	}
	if diff := cmp.Diff(want, p.Layout()); diff != "" {
		t.Errorf("layout (-want +got):\n%s", diff)
	}
}

func TestLargestDiameter(t *testing.T) {
	p := NewOpticalPath("diameters")
	p.Append(mustSpace(t, 10), mustLens(t, 5, 2.5), mustAperture(t, 4))
	if d := p.LargestDiameter(); d != 4 {
		t.Fatalf("largest diameter %g", d)
	}

	empty := NewOpticalPath("no apertures")
	empty.Append(mustSpace(t, 10))
	if d := empty.LargestDiameter(); d != 0 {
		t.Fatalf("largest diameter of unconstrained path: %g", d)
	}
}

func TestPolyline(t *testing.T) {
	trace := []Ray{
		{Y: 0, Z: 0},
		{Y: 1, Z: 10},
		{Y: 2, Z: 20, Blocked: true},
		{Y: 3, Z: 30, Blocked: true},
	}
	want := []Vertex{{Z: 0, Y: 0}, {Z: 10, Y: 1}}
	if diff := cmp.Diff(want, Polyline(trace)); diff != "" {
		t.Errorf("polyline (-want +got):\n%s", diff)
	}
}

func TestPolylineFullyBlocked(t *testing.T) {
	trace := []Ray{{Y: 9, Blocked: true}, {Y: 9, Z: 5, Blocked: true}}
	if verts := Polyline(trace); len(verts) != 0 {
		t.Fatalf("blocked-at-origin ray produced vertices: %+v", verts)
	}
}
