package quad

import (
	"github.com/cwbudde/algo-quad/internal/kronrod"
	"github.com/cwbudde/algo-quad/internal/qawotab"
)

// Options controls the shared tuning knobs across the integrator
// family: the subdivision budget and, where applicable, the
// Gauss-Kronrod base rule.
type Options struct {
	MaxIter int
	Rule    Rule
	// AsymmetricRange selects [IntegrateMinfPinf]'s row-2 substitution,
	// which evaluates f at one point per node instead of
	// the row-1 default's f(x)+f(-x) pair; it has no effect on any other
	// entry point.
	AsymmetricRange bool
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns the library defaults: a 1024-subdivision
// budget and the Kronrod-21 base rule.
func DefaultOptions() Options {
	return Options{
		MaxIter: 1024,
		Rule:    Kronrod21,
	}
}

// WithMaxIter sets the subdivision iteration budget.
func WithMaxIter(maxIter int) Option {
	return func(o *Options) {
		if maxIter > 0 {
			o.MaxIter = maxIter
		}
	}
}

// WithRule sets the Gauss-Kronrod base rule.
func WithRule(rule Rule) Option {
	return func(o *Options) {
		if _, ok := kronrod.ByOrder(int(rule)); ok {
			o.Rule = rule
		}
	}
}

// WithAsymmetricRange selects [IntegrateMinfPinf]'s row-2 substitution
// x = -1/t + 1/(1-t) in place of the default row-1
// f(x)+f(-x) symmetric substitution — useful when f is expensive
// enough that evaluating it at both +x and -x per node is wasteful.
func WithAsymmetricRange() Option {
	return func(o *Options) { o.AsymmetricRange = true }
}

// ApplyOptions applies zero or more options to the default Options.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// OscillatoryKind selects the sine or cosine weight for
// [IntegrateOscillatory] and [IntegrateFourier].
type OscillatoryKind = qawotab.Kind

const (
	Sine   = qawotab.Sine
	Cosine = qawotab.Cosine
)

// OscillatoryOptions additionally carries the oscillation frequency,
// since sine/cosine weight functions are meaningless without one.
type OscillatoryOptions struct {
	Options
	Kind  OscillatoryKind
	Omega float64
}

// OscillatoryOption mutates an OscillatoryOptions.
type OscillatoryOption func(*OscillatoryOptions)

// DefaultOscillatoryOptions returns the library defaults with Omega
// unset (the caller must always supply a nonzero frequency via
// [WithOmega]).
func DefaultOscillatoryOptions() OscillatoryOptions {
	return OscillatoryOptions{
		Options: DefaultOptions(),
		Kind:    Cosine,
		Omega:   0,
	}
}

// WithOscillatoryKind selects sine or cosine weight.
func WithOscillatoryKind(kind OscillatoryKind) OscillatoryOption {
	return func(o *OscillatoryOptions) { o.Kind = kind }
}

// WithOmega sets the oscillation angular frequency.
func WithOmega(omega float64) OscillatoryOption {
	return func(o *OscillatoryOptions) { o.Omega = omega }
}

// WithOscillatoryMaxIter sets the subdivision iteration budget.
func WithOscillatoryMaxIter(maxIter int) OscillatoryOption {
	return func(o *OscillatoryOptions) {
		if maxIter > 0 {
			o.MaxIter = maxIter
		}
	}
}

// ApplyOscillatoryOptions applies zero or more options to the default
// OscillatoryOptions.
func ApplyOscillatoryOptions(opts ...OscillatoryOption) OscillatoryOptions {
	cfg := DefaultOscillatoryOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
