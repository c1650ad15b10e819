package paraxial

// Defaults for JSON system descriptions.
const (
	ObjectHeight = 10.0
	FanAngle     = 0.5
	FanCount     = 9
	RayCount     = 3
	PNGOut       = "schematic.png"
	PNGWidth     = 1000
	PNGHeight    = 700
)
