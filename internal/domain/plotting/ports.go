package plotting

import "github.com/orchid-ml/orchid/internal/domain/experiment"

// Backend defines the interface for chart construction. Every method takes
// the experiment and fully resolved options and returns a figure which is
// passed back to callers unchanged. Backend errors are not wrapped or
// translated by this package.
type Backend interface {
	// Regret plots the best objective reached over the trial history.
	Regret(exp *experiment.Experiment, opts *RegretOptions) (*Figure, error)

	// LPI plots the local parameter importance of each parameter as a bar
	// chart.
	LPI(exp *experiment.Experiment, opts *LPIOptions) (*Figure, error)

	// ParallelCoordinates plots every trial as a line across parameter
	// axes plus the objective.
	ParallelCoordinates(exp *experiment.Experiment, opts *ParallelCoordinatesOptions) (*Figure, error)

	// PartialDependencies plots contour grids of the search space per
	// parameter combination.
	PartialDependencies(exp *experiment.Experiment, opts *PartialDependenciesOptions) (*Figure, error)
}
