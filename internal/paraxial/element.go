package paraxial

import "fmt"

// NewSpace returns a free-space propagation over distance d.
func NewSpace(d Real) (Matrix, error) {
	if d < 0 || !isFinite(d) {
		return Matrix{}, fmt.Errorf("%w: space distance %g (must be finite and >= 0)", ErrInvalidParameter, d)
	}
	return Matrix{
		A: 1, B: d, C: 0, D: 1,
		Length:   d,
		Aperture: Unconstrained,
		Kind:     KindSpace,
	}, nil
}

// NewLens returns a thin lens of focal length f with clear aperture
// diameter dia. Pass Unconstrained for an unbounded lens.
func NewLens(f, dia Real) (Matrix, error) {
	if f == 0 || !isFinite(f) {
		return Matrix{}, fmt.Errorf("%w: focal length %g (must be finite and nonzero)", ErrInvalidParameter, f)
	}
	if dia <= 0 {
		return Matrix{}, fmt.Errorf("%w: aperture diameter %g (must be > 0)", ErrInvalidParameter, dia)
	}
	return Matrix{
		A: 1, B: 0, C: -1 / f, D: 1,
		Aperture: dia,
		Kind:     KindLens,
	}, nil
}

// NewAperture returns a zero-thickness diaphragm: an identity transform
// that only constrains ray height.
func NewAperture(dia Real) (Matrix, error) {
	if dia <= 0 || !isFinite(dia) {
		return Matrix{}, fmt.Errorf("%w: aperture diameter %g (must be finite and > 0)", ErrInvalidParameter, dia)
	}
	return Matrix{
		A: 1, B: 0, C: 0, D: 1,
		Aperture: dia,
		Kind:     KindAperture,
	}, nil
}
