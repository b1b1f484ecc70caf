// Package qawf implements the semi-infinite Fourier transform
// integrator: ∫_a^∞ f(x)·sin(ωx) dx or ∫_a^∞ f(x)·cos(ωx) dx. It
// integrates QAWO over successive half-periods of length π/ω, treating
// the resulting partial-sum sequence as a series and accelerating its
// convergence with the Wynn epsilon table — the same approach
// QUADPACK's dqawf takes to a formally divergent (Abel-summable)
// oscillatory tail. Only an absolute tolerance is honored; a relative
// one is not meaningful against an alternating tail with no well-defined
// total magnitude.
package qawf

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-quad/internal/epsilon"
	"github.com/cwbudde/algo-quad/internal/qawo"
	"github.com/cwbudde/algo-quad/internal/qawotab"
	"github.com/cwbudde/algo-quad/internal/status"
)

// ErrZeroFrequency is returned when ω = 0, for which no period exists
// to chop the semi-infinite range into.
var ErrZeroFrequency = errors.New("qawf: omega must be nonzero")

const (
	maxCycles     = 128
	cyclesMaxIter = 64
	divergeStreak = 3
)

// Integrate computes ∫_a^∞ f(x)·sin(ωx) dx or ∫_a^∞ f(x)·cos(ωx) dx to
// within absTol.
func Integrate(f func(float64) float64, a, omega float64, k qawotab.Kind, absTol float64, maxIter int) (result, abserr float64, st status.Code, err error) {
	if omega == 0 {
		return 0, 0, status.UnknownError, ErrZeroFrequency
	}

	period := 2 * math.Pi / math.Abs(omega)
	half := period / 2

	// half-length is fixed across every cycle, so the moment pyramid is
	// built once and reused, not rebuilt per half-period.
	t := qawotab.New(omega, half, k)

	eps := epsilon.New()
	partial := 0.0
	divergeRun := 0
	var lastMag float64

	lo := a
	for cyc := 0; cyc < maxCycles; cyc++ {
		hi := lo + half
		segResult, _, segStatus := qawo.Integrate(f, lo, hi, omega, k, t, absTol, 0, cyclesMaxIter)
		if segStatus != status.OK && segStatus != status.MaxIterError {
			return partial, math.Abs(segResult), segStatus, nil
		}

		partial += segResult
		eps.Append(partial)

		mag := math.Abs(segResult)
		if cyc > 0 && mag > lastMag {
			divergeRun++
		} else {
			divergeRun = 0
		}
		lastMag = mag
		if divergeRun >= divergeStreak {
			return partial, mag, status.DivergenceError, nil
		}

		if eps.Len() >= 3 {
			accResult, accErr := eps.QElg()
			if accErr <= absTol {
				return accResult, accErr, status.OK, nil
			}
		}

		lo = hi
	}

	accResult, accErr := eps.QElg()
	return accResult, accErr, status.MaxIterError, nil
}
