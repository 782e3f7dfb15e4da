// Package chart implements the plotting backend. It turns an experiment's
// trial history into serializable figure specifications.
package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
	"github.com/orchid-ml/orchid/internal/domain/plotting"
)

// Backend builds figures from trial histories.
type Backend struct{}

// New creates a chart backend.
func New() *Backend {
	return &Backend{}
}

// Ensure Backend implements the plotting port.
var _ plotting.Backend = (*Backend)(nil)

// Regret plots the best objective reached over the trial history. The
// x-axis is the trial sequence in the requested order, the y-axis the
// running best objective.
func (b *Backend) Regret(exp *experiment.Experiment, opts *plotting.RegretOptions) (*plotting.Figure, error) {
	ordered := exp.TrialsOrderedBy(opts.OrderBy)

	x := make([]float64, 0, len(ordered))
	y := make([]float64, 0, len(ordered))
	text := make([]string, 0, len(ordered))

	best := math.Inf(1)
	i := 0
	for _, t := range ordered {
		if t.Status != experiment.StatusCompleted {
			continue
		}
		if t.Objective < best {
			best = t.Objective
		}
		i++
		x = append(x, float64(i))
		y = append(y, best)
		if opts.VerboseHover {
			text = append(text, hoverText(t))
		}
	}

	trace := plotting.Trace{
		Type: "scatter",
		Name: "best objective",
		X:    x,
		Y:    y,
	}
	if opts.VerboseHover {
		trace.Text = text
	}

	return &plotting.Figure{
		Data: []plotting.Trace{trace},
		Layout: plotting.Layout{
			Title:  fmt.Sprintf("Regret for experiment '%s'", exp.Name),
			XTitle: "Trials ordered by " + orderLabel(opts.OrderBy),
			YTitle: "Objective",
		},
	}, nil
}

// LPI plots the local parameter importance of each parameter as a bar
// chart. Importance is estimated from how strongly the objective varies
// along each parameter, normalized so the bars sum to one.
func (b *Backend) LPI(exp *experiment.Experiment, opts *plotting.LPIOptions) (*plotting.Figure, error) {
	completed := exp.CompletedTrials()
	if len(completed) < 2 {
		return nil, fmt.Errorf("experiment '%s' needs at least 2 completed trials to estimate parameter importance", exp.Name)
	}

	names := exp.ParamNames()
	scores := make([]float64, len(names))
	total := 0.0
	for i, name := range names {
		scores[i] = binnedVariance(completed, name, opts.NPoints)
		total += scores[i]
	}
	if total > 0 {
		for i := range scores {
			scores[i] /= total
		}
	}

	return &plotting.Figure{
		Data: []plotting.Trace{{
			Type:   "bar",
			Name:   opts.Model,
			Labels: names,
			Y:      scores,
		}},
		Layout: plotting.Layout{
			Title:  fmt.Sprintf("LPI for experiment '%s'", exp.Name),
			XTitle: "Hyperparameters",
			YTitle: "Local Parameter Importance (LPI)",
		},
	}, nil
}

// ParallelCoordinates plots every completed trial as a line across
// parameter axes plus the objective.
func (b *Backend) ParallelCoordinates(exp *experiment.Experiment, opts *plotting.ParallelCoordinatesOptions) (*plotting.Figure, error) {
	completed := exp.CompletedTrials()

	order := opts.Order
	if len(order) == 0 {
		order = exp.ParamNames()
	}

	dims := make([]plotting.Dimension, 0, len(order)+1)
	for _, name := range order {
		values := make([]float64, len(completed))
		for i, t := range completed {
			values[i] = t.Params[name]
		}
		dims = append(dims, plotting.Dimension{Label: name, Values: values})
	}

	objective := make([]float64, len(completed))
	for i, t := range completed {
		objective[i] = t.Objective
	}
	dims = append(dims, plotting.Dimension{Label: "objective", Values: objective})

	return &plotting.Figure{
		Data: []plotting.Trace{{
			Type:       "parcoords",
			Dimensions: dims,
		}},
		Layout: plotting.Layout{
			Title: fmt.Sprintf("Parallel Coordinates Plot for experiment '%s'", exp.Name),
		},
	}, nil
}

// PartialDependencies plots a contour grid for every pair of parameters.
// Grid values interpolate the objective from nearby completed trials, with
// smoothing blending each cell toward the global mean.
func (b *Backend) PartialDependencies(exp *experiment.Experiment, opts *plotting.PartialDependenciesOptions) (*plotting.Figure, error) {
	completed := exp.CompletedTrials()
	if len(completed) < 2 {
		return nil, fmt.Errorf("experiment '%s' needs at least 2 completed trials to estimate partial dependencies", exp.Name)
	}
	if len(completed) > opts.NSamples {
		completed = completed[:opts.NSamples]
	}

	params := opts.Params
	if len(params) == 0 {
		params = exp.ParamNames()
	}
	sort.Strings(params)

	mean := 0.0
	for _, t := range completed {
		mean += t.Objective
	}
	mean /= float64(len(completed))

	traces := make([]plotting.Trace, 0)
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			z := dependencyGrid(completed, params[i], params[j], opts.NGridPoints, opts.Smoothing, mean)
			traces = append(traces, plotting.Trace{
				Type:       "contour",
				Name:       params[i] + " vs " + params[j],
				Z:          z,
				Colorscale: opts.Colorscale,
			})
		}
	}

	return &plotting.Figure{
		Data: traces,
		Layout: plotting.Layout{
			Title: fmt.Sprintf("Partial dependencies for experiment '%s'", exp.Name),
		},
	}, nil
}

// hoverText formats a trial's parameters for hover tooltips.
func hoverText(t experiment.Trial) string {
	names := make([]string, 0, len(t.Params))
	for name := range t.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	text := fmt.Sprintf("objective: %g", t.Objective)
	for _, name := range names {
		text += fmt.Sprintf("<br>%s: %g", name, t.Params[name])
	}
	return text
}

// orderLabel maps an ordering key to its axis label.
func orderLabel(order string) string {
	switch order {
	case experiment.OrderReserved, experiment.OrderCompleted, experiment.OrderSuggested:
		return order
	default:
		return experiment.OrderSuggested
	}
}

// binnedVariance estimates how strongly the objective varies along one
// parameter by bucketing trials into nPoints bins and measuring the
// variance of per-bin objective means.
func binnedVariance(trials []experiment.Trial, param string, nPoints int) float64 {
	if nPoints < 2 {
		nPoints = 2
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range trials {
		v := t.Params[param]
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi <= lo {
		return 0
	}

	sums := make([]float64, nPoints)
	counts := make([]float64, nPoints)
	for _, t := range trials {
		bin := int(float64(nPoints) * (t.Params[param] - lo) / (hi - lo))
		if bin >= nPoints {
			bin = nPoints - 1
		}
		sums[bin] += t.Objective
		counts[bin]++
	}

	means := make([]float64, 0, nPoints)
	grand := 0.0
	for i := range sums {
		if counts[i] == 0 {
			continue
		}
		m := sums[i] / counts[i]
		means = append(means, m)
		grand += m
	}
	if len(means) < 2 {
		return 0
	}
	grand /= float64(len(means))

	variance := 0.0
	for _, m := range means {
		variance += (m - grand) * (m - grand)
	}
	return variance / float64(len(means))
}

// dependencyGrid builds an n-by-n grid of interpolated objectives over two
// parameters using inverse-distance weighting of the trials.
func dependencyGrid(trials []experiment.Trial, px, py string, n int, smoothing, mean float64) [][]float64 {
	if n < 2 {
		n = 2
	}

	xlo, xhi := paramRange(trials, px)
	ylo, yhi := paramRange(trials, py)

	grid := make([][]float64, n)
	for gy := 0; gy < n; gy++ {
		row := make([]float64, n)
		y := ylo + (yhi-ylo)*float64(gy)/float64(n-1)
		for gx := 0; gx < n; gx++ {
			x := xlo + (xhi-xlo)*float64(gx)/float64(n-1)

			num, den := 0.0, 0.0
			for _, t := range trials {
				dx := t.Params[px] - x
				dy := t.Params[py] - y
				w := 1.0 / (dx*dx + dy*dy + 1e-9)
				num += w * t.Objective
				den += w
			}
			cell := num / den
			row[gx] = smoothing*mean + (1-smoothing)*cell
		}
		grid[gy] = row
	}
	return grid
}

// paramRange returns the min and max of a parameter across trials.
func paramRange(trials []experiment.Trial, param string) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range trials {
		v := t.Params[param]
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
