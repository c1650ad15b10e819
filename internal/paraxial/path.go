package paraxial

import (
	"fmt"
	"math"
)

// OpticalPath is an ordered, append-only sequence of elements in physical
// left-to-right order, plus the object-side parameters used when generating
// fans. By convention the object plane sits at z = 0, in front of the first
// element; a leading Space sets the object distance.
type OpticalPath struct {
	elements []Matrix

	Label        string
	ObjectHeight Real
	FanAngle     Real // full angular spread of a visualization fan
	FanCount     int  // rays per fan
	RayCount     int  // fans (launch heights) per group
}

// NewOpticalPath returns an empty path with the usual display defaults.
func NewOpticalPath(label string) *OpticalPath {
	return &OpticalPath{
		Label:        label,
		ObjectHeight: 10,
		FanAngle:     0.1,
		FanCount:     9,
		RayCount:     3,
	}
}

// Append adds elements at the image-side end of the path.
func (p *OpticalPath) Append(elements ...Matrix) {
	p.elements = append(p.elements, elements...)
}

// Elements returns the element sequence. Callers must treat it as
// read-only; all derived quantities are recomputed from it on each query.
func (p *OpticalPath) Elements() []Matrix {
	return p.elements
}

// SystemMatrix folds the whole path into one composite transform.
func (p *OpticalPath) SystemMatrix() Matrix {
	return Compose(p.elements...)
}

// TotalLength is the summed physical length of all elements.
func (p *OpticalPath) TotalLength() Real {
	total := 0.0
	for _, el := range p.elements {
		total += el.Length
	}
	return total
}

// TransferMatrix composes the path from its front up to the plane at
// z = upTo, splitting a Space that straddles the plane. Zero-length
// elements sitting exactly at the plane are included; their top row is
// [1, 0], so conjugate solves through the result are unaffected.
func (p *OpticalPath) TransferMatrix(upTo Real) Matrix {
	acc := Identity()
	z := 0.0
	for _, el := range p.elements {
		if z+el.Length <= upTo {
			acc = el.Mul(acc)
			z += el.Length
			continue
		}
		if el.Kind == KindSpace && upTo > z {
			part, _ := NewSpace(upTo - z)
			acc = part.Mul(acc)
		}
		break
	}
	return acc
}

// Trace propagates a ray element by element and returns its snapshots: the
// input state followed by the state after each element. A blocked ray keeps
// propagating with Blocked set.
func (p *OpticalPath) Trace(r Ray) []Ray {
	out := make([]Ray, 0, len(p.elements)+1)
	out = append(out, r)
	for _, el := range p.elements {
		r = el.Apply(r)
		out = append(out, r)
	}
	return out
}

// TraceMany traces each input ray, preserving order.
func (p *OpticalPath) TraceMany(rays []Ray) [][]Ray {
	traces := make([][]Ray, len(rays))
	for i, r := range rays {
		traces[i] = p.Trace(r)
	}
	return traces
}

// TraceFan generates and traces a fan in one call.
func (p *OpticalPath) TraceFan(f RayFan) [][]Ray {
	return p.TraceMany(f.Rays())
}

// ImagePosition solves the conjugate condition for an object placed
// objectDistance in front of the path and returns the image distance past
// the last element (negative for a virtual image). An object at infinity
// images at the back focal plane.
func (p *OpticalPath) ImagePosition(objectDistance Real) (Real, error) {
	sys := p.SystemMatrix()
	if math.IsInf(objectDistance, 1) {
		if math.Abs(sys.C) < epsB {
			return 0, fmt.Errorf("%w: C = 0, object at infinity has no focal plane", ErrAfocalSystem)
		}
		return -sys.A / sys.C, nil
	}
	if objectDistance < 0 || !isFinite(objectDistance) {
		return 0, fmt.Errorf("%w: object distance %g", ErrInvalidParameter, objectDistance)
	}
	space, err := NewSpace(objectDistance)
	if err != nil {
		return 0, err
	}
	d, _, err := forwardConjugate(sys.Mul(space))
	return d, err
}

// Magnification is the transverse magnification A of the full composite
// from object plane to image plane, for a finite conjugate pair.
func (p *OpticalPath) Magnification(objectDistance Real) (Real, error) {
	if objectDistance < 0 || !isFinite(objectDistance) {
		return 0, fmt.Errorf("%w: object distance %g", ErrInvalidParameter, objectDistance)
	}
	space, err := NewSpace(objectDistance)
	if err != nil {
		return 0, err
	}
	_, mag, err := forwardConjugate(p.SystemMatrix().Mul(space))
	return mag, err
}

// Conjugate is a plane conjugate to the object plane, with the transverse
// magnification there.
type Conjugate struct {
	Position      Real
	Magnification Real
}

// IntermediateConjugates returns every element boundary inside the path
// that is conjugate to the object plane at z = 0, front to back.
func (p *OpticalPath) IntermediateConjugates() []Conjugate {
	var planes []Conjugate
	acc := Identity()
	z := 0.0
	for _, el := range p.elements {
		acc = el.Mul(acc)
		z += el.Length
		if z > 0 && math.Abs(acc.B) < epsB {
			planes = append(planes, Conjugate{Position: z, Magnification: acc.A})
		}
	}
	return planes
}

// forwardConjugate finds the distance d past m where Space(d)·m satisfies
// the imaging condition B = 0, and the magnification A there.
func forwardConjugate(m Matrix) (d, mag Real, err error) {
	if math.Abs(m.D) < epsB {
		if math.Abs(m.B) < epsB {
			return 0, 0, fmt.Errorf("%w: B = D = 0, every plane is conjugate", ErrAfocalSystem)
		}
		return 0, 0, fmt.Errorf("%w: image at infinity", ErrAfocalSystem)
	}
	d = -m.B / m.D
	mag = m.A + d*m.C
	return d, mag, nil
}

// backwardConjugate finds the distance d in front of m where m·Space(d)
// satisfies B = 0, and the magnification A of that composite.
func backwardConjugate(m Matrix) (d, mag Real, err error) {
	if math.Abs(m.A) < epsB {
		return 0, 0, fmt.Errorf("%w: image at infinity", ErrAfocalSystem)
	}
	d = -m.B / m.A
	return d, m.A, nil
}
