package plotting

import (
	"sort"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
)

// Kind names a plot operation in the dispatch table.
type Kind string

// Known plot kinds.
const (
	KindRegret              Kind = "regret"
	KindLPI                 Kind = "lpi"
	KindParallelCoordinates Kind = "parallel_coordinates"
	KindPartialDependencies Kind = "partial_dependencies"
)

// DefaultKind is used when no kind is supplied.
const DefaultKind = KindRegret

// Regret makes a plot of the best objective reached over the trial history.
// A nil opts uses the defaults from NewRegretOptions.
func Regret(b Backend, exp *experiment.Experiment, opts *RegretOptions) (*Figure, error) {
	if exp == nil {
		return nil, ErrNilExperiment
	}
	if opts == nil {
		opts = NewRegretOptions()
	}
	return b.Regret(exp, opts)
}

// LPI makes a bar plot of the local parameter importance metrics. A nil
// opts uses the defaults from NewLPIOptions.
func LPI(b Backend, exp *experiment.Experiment, opts *LPIOptions) (*Figure, error) {
	if exp == nil {
		return nil, ErrNilExperiment
	}
	if opts == nil {
		opts = NewLPIOptions()
	}
	return b.LPI(exp, opts)
}

// ParallelCoordinates makes a parallel coordinates plot of the trial
// history. A nil opts uses the defaults from NewParallelCoordinatesOptions.
func ParallelCoordinates(b Backend, exp *experiment.Experiment, opts *ParallelCoordinatesOptions) (*Figure, error) {
	if exp == nil {
		return nil, ErrNilExperiment
	}
	if opts == nil {
		opts = NewParallelCoordinatesOptions()
	}
	return b.ParallelCoordinates(exp, opts)
}

// PartialDependencies makes contour plots of the search space per parameter
// combination. A nil opts uses the defaults from
// NewPartialDependenciesOptions.
func PartialDependencies(b Backend, exp *experiment.Experiment, opts *PartialDependenciesOptions) (*Figure, error) {
	if exp == nil {
		return nil, ErrNilExperiment
	}
	if opts == nil {
		opts = NewPartialDependenciesOptions()
	}
	return b.PartialDependencies(exp, opts)
}

// plotMethod pairs an options constructor with the handler dispatching to
// the matching free function.
type plotMethod struct {
	defaults func() any
	plot     func(b Backend, exp *experiment.Experiment, opts any) (*Figure, error)
}

// plotMethods is the dispatch table. Built once at package load and never
// mutated, so it is safe to share across concurrent invokers.
var plotMethods = map[Kind]plotMethod{
	KindRegret: {
		defaults: func() any { return NewRegretOptions() },
		plot: func(b Backend, exp *experiment.Experiment, opts any) (*Figure, error) {
			o, ok := opts.(*RegretOptions)
			if !ok {
				return nil, &InvalidOptionsError{Kind: KindRegret, Options: opts}
			}
			return Regret(b, exp, o)
		},
	},
	KindLPI: {
		defaults: func() any { return NewLPIOptions() },
		plot: func(b Backend, exp *experiment.Experiment, opts any) (*Figure, error) {
			o, ok := opts.(*LPIOptions)
			if !ok {
				return nil, &InvalidOptionsError{Kind: KindLPI, Options: opts}
			}
			return LPI(b, exp, o)
		},
	},
	KindParallelCoordinates: {
		defaults: func() any { return NewParallelCoordinatesOptions() },
		plot: func(b Backend, exp *experiment.Experiment, opts any) (*Figure, error) {
			o, ok := opts.(*ParallelCoordinatesOptions)
			if !ok {
				return nil, &InvalidOptionsError{Kind: KindParallelCoordinates, Options: opts}
			}
			return ParallelCoordinates(b, exp, o)
		},
	},
	KindPartialDependencies: {
		defaults: func() any { return NewPartialDependenciesOptions() },
		plot: func(b Backend, exp *experiment.Experiment, opts any) (*Figure, error) {
			o, ok := opts.(*PartialDependenciesOptions)
			if !ok {
				return nil, &InvalidOptionsError{Kind: KindPartialDependencies, Options: opts}
			}
			return PartialDependencies(b, exp, o)
		},
	},
}

// Kinds returns the valid plot kind names, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(plotMethods))
	for k := range plotMethods {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}
