package paraxial

import (
	"fmt"
	"math"
)

// Stop is a physical opening that limits the system: the element index in
// the path, its axial plane, and its clear diameter.
type Stop struct {
	Index    int
	Position Real
	Diameter Real
}

// ApertureStop identifies the element that most restricts the cone of light
// from an on-axis object point at z = 0. A reference marginal ray (y = 0,
// unit angle) is propagated without blocking; the element with the smallest
// clearance ratio aperture / (2·|y|) wins, front-most on exact ties. A path
// with no finite aperture reports ErrNoStop.
func (p *OpticalPath) ApertureStop() (Stop, error) {
	return p.tightestAperture(Ray{Y: 0, Theta: 1}, -1)
}

// FieldStop identifies the element that most restricts the field of view:
// the tightest constraint on the chief ray, excluding the aperture stop
// itself. The exclusion is by element index, so a second diaphragm at the
// stop's position can still be the field stop.
func (p *OpticalPath) FieldStop() (Stop, error) {
	stop, err := p.ApertureStop()
	if err != nil {
		return Stop{}, err
	}
	chief, err := p.ChiefRay(1)
	if err != nil {
		return Stop{}, err
	}
	return p.tightestAperture(chief, stop.Index)
}

// tightestAperture propagates an unconstrained reference ray and returns
// the finite-aperture element minimizing aperture / (2·|y|), skipping
// excludeIndex and elements where the ray crosses the axis (those cannot
// limit the reference cone).
func (p *OpticalPath) tightestAperture(ref Ray, excludeIndex int) (Stop, error) {
	best := Stop{Index: -1}
	bestRatio := math.Inf(1)
	r := ref
	z := 0.0
	for i, el := range p.elements {
		r = el.Apply(r)
		z += el.Length
		if i == excludeIndex || !el.HasFiniteAperture() {
			continue
		}
		h := math.Abs(r.Y)
		if h < epsY {
			continue
		}
		if ratio := el.Aperture / (2 * h); ratio < bestRatio {
			bestRatio = ratio
			best = Stop{Index: i, Position: z, Diameter: el.Aperture}
		}
	}
	if best.Index < 0 {
		return Stop{}, ErrNoStop
	}
	return best, nil
}

// ChiefRay returns the ray from object height y0 at z = 0 whose angle makes
// it cross the center of the aperture stop.
func (p *OpticalPath) ChiefRay(y0 Real) (Ray, error) {
	stop, err := p.ApertureStop()
	if err != nil {
		return Ray{}, err
	}
	mt := p.TransferMatrix(stop.Position)
	if math.Abs(mt.B) < epsB {
		return Ray{}, fmt.Errorf("%w: object plane conjugate to aperture stop, chief ray undefined", ErrNoStop)
	}
	return Ray{Y: y0, Theta: -mt.A * y0 / mt.B}, nil
}

// MarginalRays returns the two on-axis rays that just graze the edges of
// the aperture stop, upward first.
func (p *OpticalPath) MarginalRays() ([]Ray, error) {
	up, err := p.AxialRay()
	if err != nil {
		return nil, err
	}
	return []Ray{up, {Y: 0, Theta: -up.Theta}}, nil
}

// AxialRay is the upward marginal ray: from the on-axis object point at the
// largest angle accepted by the aperture stop.
func (p *OpticalPath) AxialRay() (Ray, error) {
	stop, err := p.ApertureStop()
	if err != nil {
		return Ray{}, err
	}
	mt := p.TransferMatrix(stop.Position)
	if math.Abs(mt.B) < epsB {
		return Ray{}, fmt.Errorf("%w: aperture stop conjugate to object plane, marginal angle unbounded", ErrNoStop)
	}
	return Ray{Y: 0, Theta: stop.Diameter / 2 / math.Abs(mt.B)}, nil
}

// PrincipalRay is the chief ray launched from the edge of the field of
// view.
func (p *OpticalPath) PrincipalRay() (Ray, error) {
	fov, err := p.FieldOfView()
	if err != nil {
		return Ray{}, err
	}
	if math.IsInf(fov, 1) {
		return Ray{}, fmt.Errorf("%w: infinite field of view, principal ray undefined", ErrNoStop)
	}
	return p.ChiefRay(fov / 2)
}

// EntrancePupil is the image of the aperture stop formed by the elements in
// front of it, located in object-space coordinates (z = 0 at the path
// front; negative positions are virtual, in front of the path).
func (p *OpticalPath) EntrancePupil() (Stop, error) {
	stop, err := p.ApertureStop()
	if err != nil {
		return Stop{}, err
	}
	return p.frontImageOf(stop)
}

// ExitPupil is the image of the aperture stop formed by the elements behind
// it, in the same coordinates (positions past TotalLength are real).
func (p *OpticalPath) ExitPupil() (Stop, error) {
	stop, err := p.ApertureStop()
	if err != nil {
		return Stop{}, err
	}
	after := Compose(p.elements[stop.Index+1:]...)
	d, mag, err := forwardConjugate(after)
	if err != nil {
		return Stop{}, fmt.Errorf("exit pupil: %w", err)
	}
	return Stop{
		Index:    stop.Index,
		Position: p.TotalLength() + d,
		Diameter: stop.Diameter * math.Abs(mag),
	}, nil
}

// EntranceWindow is the image of the field stop in object space, the
// analogue of the entrance pupil for the field of view.
func (p *OpticalPath) EntranceWindow() (Stop, error) {
	fs, err := p.FieldStop()
	if err != nil {
		return Stop{}, err
	}
	return p.frontImageOf(fs)
}

func (p *OpticalPath) frontImageOf(stop Stop) (Stop, error) {
	mt := p.TransferMatrix(stop.Position)
	d, mag, err := backwardConjugate(mt)
	if err != nil {
		return Stop{}, fmt.Errorf("pupil: %w", err)
	}
	return Stop{
		Index:    stop.Index,
		Position: -d,
		Diameter: stop.Diameter / math.Abs(mag),
	}, nil
}

// FieldOfView is the full transverse extent of the object, at z = 0, seen
// without the chief ray being cut by the field stop. Infinite when the
// chief ray crosses the axis at the field stop.
func (p *OpticalPath) FieldOfView() (Real, error) {
	fs, err := p.FieldStop()
	if err != nil {
		return 0, err
	}
	chief, err := p.ChiefRay(1)
	if err != nil {
		return 0, err
	}
	r := chief
	for _, el := range p.elements[:fs.Index+1] {
		r = el.Apply(r)
	}
	h := math.Abs(r.Y)
	if h < epsY {
		return math.Inf(1), nil
	}
	// chief ray height at the field stop scales linearly with object height
	return 2 * (fs.Diameter / 2 / h), nil
}

// ImageSize is the extent of the image of the full field of view at the
// conjugate plane of the object at z = 0.
func (p *OpticalPath) ImageSize() (Real, error) {
	fov, err := p.FieldOfView()
	if err != nil {
		return 0, err
	}
	_, mag, err := forwardConjugate(p.SystemMatrix())
	if err != nil {
		return 0, err
	}
	return fov * math.Abs(mag), nil
}
