package paraxial

// RayFan describes a bundle of rays sharing one origin height with angles
// evenly spaced over [MinAngle, MaxAngle]. Generation is deterministic and
// performs no propagation, so a fan can be reused against many paths.
type RayFan struct {
	Y                  Real
	MinAngle, MaxAngle Real
	Count              int
	Z                  Real
}

// Rays generates the fan. A fresh slice on each call; Count == 1 yields the
// mid-angle ray.
func (f RayFan) Rays() []Ray {
	return spread(f.MinAngle, f.MaxAngle, f.Count, func(theta Real) Ray {
		return Ray{Y: f.Y, Theta: theta, Z: f.Z}
	})
}

// FieldFan is the transposed variant: one angle, heights evenly spaced over
// [MinY, MaxY].
type FieldFan struct {
	Theta      Real
	MinY, MaxY Real
	Count      int
	Z          Real
}

func (f FieldFan) Rays() []Ray {
	return spread(f.MinY, f.MaxY, f.Count, func(y Real) Ray {
		return Ray{Y: y, Theta: f.Theta, Z: f.Z}
	})
}

// FanGroup generates m fans of n rays each: every combination of m heights
// over [yMin, yMax] and n angles over [thetaMin, thetaMax].
func FanGroup(yMin, yMax Real, m int, thetaMin, thetaMax Real, n int) []Ray {
	rays := make([]Ray, 0, m*n)
	for _, y := range steps(yMin, yMax, m) {
		f := RayFan{Y: y, MinAngle: thetaMin, MaxAngle: thetaMax, Count: n}
		rays = append(rays, f.Rays()...)
	}
	return rays
}

func spread(lo, hi Real, count int, mk func(Real) Ray) []Ray {
	vals := steps(lo, hi, count)
	rays := make([]Ray, len(vals))
	for i, v := range vals {
		rays[i] = mk(v)
	}
	return rays
}

func steps(lo, hi Real, count int) []Real {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []Real{(lo + hi) / 2}
	}
	vals := make([]Real, count)
	d := (hi - lo) / Real(count-1)
	for i := range vals {
		vals[i] = lo + Real(i)*d
	}
	return vals
}
