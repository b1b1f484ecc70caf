// Package status defines the integration status codes shared across
// every engine and re-exported by the public quad package.
package status

// Code grades the reliability of a returned {result, abserr} pair.
// Every engine always returns a populated pair; Code distinguishes
// degrees of reliability rather than signaling a thrown failure.
type Code int

const (
	OK Code = iota
	MaxIterError
	RoundoffError
	SingularError
	ExtrapRoundoffError
	DivergenceError
	MaxSubdivisionError
	ToleranceError
	UnknownError
)

// text holds the one canonical message per status code, grounded on
// the emsr integration_error.h convention that the status text is part
// of the contract.
var text = [...]string{
	OK:                  "no error",
	MaxIterError:        "maximum number of subdivisions reached",
	RoundoffError:       "round-off error prevents the requested tolerance from being achieved",
	SingularError:       "the integrand is badly behaved, suggesting a non-integrable singularity",
	ExtrapRoundoffError: "round-off error detected in the extrapolation table",
	DivergenceError:     "the integral appears to be divergent",
	MaxSubdivisionError: "maximum subdivision depth reached",
	ToleranceError:      "requested tolerance cannot be achieved with the requested type of integral",
	UnknownError:        "unknown integration error",
}

// String implements fmt.Stringer, returning the canonical message for
// the status code.
func (c Code) String() string {
	if c >= 0 && int(c) < len(text) {
		return text[c]
	}
	return "unrecognized status code"
}
