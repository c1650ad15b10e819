package paraxial

// ElementOutline is the renderer-facing description of one element: where
// it starts on the axis, how much axial room it takes, its clear aperture
// (Unconstrained if none) and its display metadata. A renderer needs no
// optical knowledge beyond this.
type ElementOutline struct {
	Z        Real
	Length   Real
	Aperture Real
	Label    string
	Kind     Kind
}

// Layout returns the outlines of all elements in physical order.
func (p *OpticalPath) Layout() []ElementOutline {
	outlines := make([]ElementOutline, len(p.elements))
	z := 0.0
	for i, el := range p.elements {
		outlines[i] = ElementOutline{
			Z:        z,
			Length:   el.Length,
			Aperture: el.Aperture,
			Label:    el.Label,
			Kind:     el.Kind,
		}
		z += el.Length
	}
	return outlines
}

// LargestDiameter is the largest finite aperture in the path, 0 when every
// element is unconstrained. Renderers use it to scale element outlines.
func (p *OpticalPath) LargestDiameter() Real {
	largest := 0.0
	for _, el := range p.elements {
		if el.HasFiniteAperture() && el.Aperture > largest {
			largest = el.Aperture
		}
	}
	return largest
}

// Vertex is one (z, y) point of a drawable ray polyline.
type Vertex struct {
	Z, Y Real
}

// Polyline converts a trace into drawable vertices, cut at the first
// blocked snapshot: a vignetted ray stops drawing at the aperture that
// blocked it.
func Polyline(trace []Ray) []Vertex {
	var verts []Vertex
	for _, r := range trace {
		if r.Blocked {
			break
		}
		verts = append(verts, Vertex{Z: r.Z, Y: r.Y})
	}
	return verts
}
