package quad

import "github.com/cwbudde/algo-quad/internal/status"

// Status describes the degree of reliability of an integration
// result. The zero value, OK, means the reported abserr is an honest
// bound on result's error; every other value still carries the best
// current {result, abserr} pair alongside the warning.
type Status = status.Code

// The recognized status values, re-exported from internal/status so
// callers never need to import that package directly.
const (
	OK                  = status.OK
	MaxIterError        = status.MaxIterError
	RoundoffError       = status.RoundoffError
	SingularError       = status.SingularError
	ExtrapRoundoffError = status.ExtrapRoundoffError
	DivergenceError     = status.DivergenceError
	MaxSubdivisionError = status.MaxSubdivisionError
	ToleranceError      = status.ToleranceError
	UnknownError        = status.UnknownError
)
