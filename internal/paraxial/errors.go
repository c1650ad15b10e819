package paraxial

import "errors"

// Domain errors for path queries and element construction.
var (
	// ErrInvalidParameter indicates a non-physical construction argument
	// (zero focal length, negative propagation distance, non-positive
	// aperture diameter).
	ErrInvalidParameter = errors.New("paraxial: invalid parameter")

	// ErrAfocalSystem indicates a conjugate-plane query on a system that
	// has no finite conjugate for the given object (or a pupil that forms
	// at infinity).
	ErrAfocalSystem = errors.New("paraxial: afocal system, no finite conjugate")

	// ErrNoStop indicates a stop or pupil query on a system without the
	// finite apertures needed to define one.
	ErrNoStop = errors.New("paraxial: no finite aperture defines a stop")
)
