package paraxial

import "math"

// Ray is the state of a paraxial ray at one axial position: transverse
// height Y, angle Theta (radians, small-angle), cumulative distance Z.
// Blocked is sticky: once an aperture vignettes the ray it stays blocked,
// though its coordinates keep propagating for display.
type Ray struct {
	Y, Theta Real
	Z        Real
	Blocked  bool
}

// Apply propagates r through m and returns the new state. Pure: neither
// m nor r is mutated.
func (m Matrix) Apply(r Ray) Ray {
	out := Ray{
		Y:       m.A*r.Y + m.B*r.Theta,
		Theta:   m.C*r.Y + m.D*r.Theta,
		Z:       r.Z + m.Length,
		Blocked: r.Blocked,
	}
	if math.Abs(out.Y) > m.Aperture/2 {
		out.Blocked = true
	}
	return out
}
