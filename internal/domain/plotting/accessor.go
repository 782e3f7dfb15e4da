package plotting

import "github.com/orchid-ml/orchid/internal/domain/experiment"

// Accessor makes plots of a single experiment. It validates its subject at
// construction time, so an accessor bound to a missing experiment or
// backend can never be used.
type Accessor struct {
	exp     *experiment.Experiment
	backend Backend
}

// NewAccessor binds an accessor to one experiment and backend. It fails
// with *ConfigurationError when either is nil.
func NewAccessor(exp *experiment.Experiment, backend Backend) (*Accessor, error) {
	if exp == nil {
		return nil, &ConfigurationError{Field: "experiment"}
	}
	if backend == nil {
		return nil, &ConfigurationError{Field: "backend"}
	}
	return &Accessor{exp: exp, backend: backend}, nil
}

// Plot dispatches to the named plot kind and returns the backend's figure
// unchanged. An empty kind falls back to DefaultKind. A kind absent from
// the dispatch table fails with *UnknownOperationError before any handler
// runs. A nil opts uses the kind's defaults; mismatched option types fail
// with *InvalidOptionsError.
func (a *Accessor) Plot(kind Kind, opts any) (*Figure, error) {
	if kind == "" {
		kind = DefaultKind
	}

	method, ok := plotMethods[kind]
	if !ok {
		return nil, &UnknownOperationError{Kind: kind, Valid: Kinds()}
	}

	if opts == nil {
		opts = method.defaults()
	}
	return method.plot(a.backend, a.exp, opts)
}

// Regret makes a plot of the best objective reached over the trial
// history. Equivalent to Plot(KindRegret, opts).
func (a *Accessor) Regret(opts *RegretOptions) (*Figure, error) {
	return a.Plot(KindRegret, orDefault(opts))
}

// LPI makes a bar plot of the local parameter importance metrics.
// Equivalent to Plot(KindLPI, opts).
func (a *Accessor) LPI(opts *LPIOptions) (*Figure, error) {
	return a.Plot(KindLPI, orDefault(opts))
}

// ParallelCoordinates makes a parallel coordinates plot of the trial
// history. Equivalent to Plot(KindParallelCoordinates, opts).
func (a *Accessor) ParallelCoordinates(opts *ParallelCoordinatesOptions) (*Figure, error) {
	return a.Plot(KindParallelCoordinates, orDefault(opts))
}

// PartialDependencies makes contour plots of the search space per parameter
// combination. Equivalent to Plot(KindPartialDependencies, opts).
func (a *Accessor) PartialDependencies(opts *PartialDependenciesOptions) (*Figure, error) {
	return a.Plot(KindPartialDependencies, orDefault(opts))
}

// orDefault converts a typed nil options pointer into an untyped nil so the
// generic path applies the kind's defaults.
func orDefault[T any](opts *T) any {
	if opts == nil {
		return nil
	}
	return opts
}
