package quad

// Result is the {result, abserr} pair every integrator returns. It is
// always populated, even on a non-OK status.
type Result struct {
	Value  float64
	Abserr float64
	Status Status
}
