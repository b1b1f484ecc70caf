// Package quad implements a numerical quadrature library: a
// collection of adaptive one-dimensional integrators that approximate
// definite integrals of scalar functions to a caller-specified
// tolerance.
//
// [Integrate] is the plain globally-adaptive entry point (QAG).
// [IntegrateSingular] and [IntegrateMultiSingular] add Wynn
// epsilon-table extrapolation for singular or oscillatory integrands
// (QAGS/QAGP). [IntegrateMinfPinf], [IntegrateLowerPinf], and
// [IntegrateMinfUpper] reduce infinite-range integrals to (0,1] before
// delegating to the singular engine. [IntegrateCauchyPrincipalValue],
// [IntegrateSingularEndpoints], [IntegrateOscillatory], and
// [IntegrateFourier] are specialized weight-function integrators
// layered on 25-point Clenshaw-Curtis modified moments.
// [IntegrateClenshawCurtis] is CQUAD, a distinct doubly-adaptive
// engine on nested 5/9/17/33-point rules.
//
// Every entry point returns a {result, abserr} pair together with a
// [Status] code; the status never substitutes for the pair, and a
// non-OK status still carries the library's best current estimate.
package quad
