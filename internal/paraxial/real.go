package paraxial

import "math"

type Real = float64

// Unconstrained is the aperture diameter of an element that never blocks.
var Unconstrained = math.Inf(1)

const (
	// epsB is the tolerance for treating a composed B coefficient as zero
	// (conjugate-plane condition).
	epsB = 1e-9
	// epsY is the tolerance below which a reference ray height is treated
	// as on-axis when normalizing aperture clearances.
	epsY = 1e-12
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
