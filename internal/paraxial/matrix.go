package paraxial

// Kind tags the physical nature of an element.
type Kind uint8

const (
	KindSpace Kind = iota
	KindLens
	KindAperture
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindSpace:
		return "space"
	case KindLens:
		return "lens"
	case KindAperture:
		return "aperture"
	}
	return "composite"
}

// Matrix is a 2×2 ray-transfer (ABCD) element. The linear coefficients map
// a ray state [y; theta] as y' = A·y + B·theta, theta' = C·y + D·theta.
// Length is the axial thickness the element occupies in the layout and
// Aperture its clear diameter (Unconstrained if it never blocks).
type Matrix struct {
	A, B, C, D Real

	Length   Real
	Aperture Real
	Label    string
	Kind     Kind
}

// Identity returns the neutral element: zero length, unconstrained.
func Identity() Matrix {
	return Matrix{A: 1, D: 1, Aperture: Unconstrained, Kind: KindComposite}
}

// Mul returns the matrix product m·o: o is traversed first, then m.
// Physical lengths add in traversal order; the composite aperture is
// unconstrained because aperture checks happen per original element during
// tracing, never on composites.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A:        m.A*o.A + m.B*o.C,
		B:        m.A*o.B + m.B*o.D,
		C:        m.C*o.A + m.D*o.C,
		D:        m.C*o.B + m.D*o.D,
		Length:   m.Length + o.Length,
		Aperture: Unconstrained,
		Kind:     KindComposite,
	}
}

// Compose folds elements in physical (first-traversed-first) order into a
// single composite transform.
func Compose(elements ...Matrix) Matrix {
	acc := Identity()
	for _, el := range elements {
		acc = el.Mul(acc)
	}
	return acc
}

// Determinant of the linear part. 1 for every single-medium element.
func (m Matrix) Determinant() Real {
	return m.A*m.D - m.B*m.C
}

// HasFiniteAperture reports whether the element can vignette a ray.
func (m Matrix) HasFiniteAperture() bool {
	return isFinite(m.Aperture)
}

// Labeled returns a copy of m carrying a display label.
func (m Matrix) Labeled(label string) Matrix {
	m.Label = label
	return m
}
