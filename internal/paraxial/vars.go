package paraxial

var (
	Debug = false // set to true for verbose analysis output
)
