package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
	"github.com/orchid-ml/orchid/internal/domain/plotting"
)

func completedTrial(sec int, objective float64, params map[string]float64) experiment.Trial {
	ts := time.Date(2026, 1, 1, 0, 0, sec, 0, time.UTC)
	return experiment.Trial{
		ID:          "t",
		Params:      params,
		Objective:   objective,
		Status:      experiment.StatusCompleted,
		SuggestedAt: ts,
		CompletedAt: ts.Add(time.Minute),
	}
}

func sampleExperiment() *experiment.Experiment {
	exp := experiment.New("sample")
	exp.Trials = []experiment.Trial{
		completedTrial(1, 3.0, map[string]float64{"lr": 0.1, "momentum": 0.5}),
		completedTrial(2, 1.0, map[string]float64{"lr": 0.5, "momentum": 0.9}),
		completedTrial(3, 2.0, map[string]float64{"lr": 0.9, "momentum": 0.1}),
	}
	return exp
}

func TestBackend_Regret_RunningBest(t *testing.T) {
	fig, err := New().Regret(sampleExperiment(), plotting.NewRegretOptions())
	require.NoError(t, err)

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "scatter", trace.Type)
	assert.Equal(t, []float64{1, 2, 3}, trace.X)
	assert.Equal(t, []float64{3.0, 1.0, 1.0}, trace.Y, "y must be the running best objective")
	assert.Len(t, trace.Text, 3, "verbose hover adds per-point text")
	assert.Contains(t, trace.Text[0], "lr")
	assert.Contains(t, fig.Layout.Title, "sample")
}

func TestBackend_Regret_SkipsIncompleteTrials(t *testing.T) {
	exp := sampleExperiment()
	exp.Trials = append(exp.Trials, experiment.Trial{
		Status:      experiment.StatusReserved,
		SuggestedAt: time.Date(2026, 1, 1, 0, 0, 4, 0, time.UTC),
	})

	fig, err := New().Regret(exp, plotting.NewRegretOptions())
	require.NoError(t, err)
	assert.Len(t, fig.Data[0].X, 3)
}

func TestBackend_Regret_NoHover(t *testing.T) {
	opts := plotting.NewRegretOptions()
	opts.VerboseHover = false

	fig, err := New().Regret(sampleExperiment(), opts)
	require.NoError(t, err)
	assert.Empty(t, fig.Data[0].Text)
}

func TestBackend_LPI_NormalizedScores(t *testing.T) {
	fig, err := New().LPI(sampleExperiment(), plotting.NewLPIOptions())
	require.NoError(t, err)

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "bar", trace.Type)
	assert.Equal(t, []string{"lr", "momentum"}, trace.Labels)

	total := 0.0
	for _, s := range trace.Y {
		assert.GreaterOrEqual(t, s, 0.0)
		total += s
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestBackend_LPI_RequiresCompletedTrials(t *testing.T) {
	exp := experiment.New("empty")

	_, err := New().LPI(exp, plotting.NewLPIOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed trials")
}

func TestBackend_ParallelCoordinates_DefaultOrder(t *testing.T) {
	fig, err := New().ParallelCoordinates(sampleExperiment(), plotting.NewParallelCoordinatesOptions())
	require.NoError(t, err)

	require.Len(t, fig.Data, 1)
	dims := fig.Data[0].Dimensions
	require.Len(t, dims, 3)
	assert.Equal(t, "lr", dims[0].Label)
	assert.Equal(t, "momentum", dims[1].Label)
	assert.Equal(t, "objective", dims[2].Label)
	assert.Equal(t, []float64{3.0, 1.0, 2.0}, dims[2].Values)
}

func TestBackend_ParallelCoordinates_ExplicitOrder(t *testing.T) {
	opts := plotting.NewParallelCoordinatesOptions()
	opts.Order = []string{"momentum", "lr"}

	fig, err := New().ParallelCoordinates(sampleExperiment(), opts)
	require.NoError(t, err)

	dims := fig.Data[0].Dimensions
	assert.Equal(t, "momentum", dims[0].Label)
	assert.Equal(t, "lr", dims[1].Label)
}

func TestBackend_PartialDependencies_GridShape(t *testing.T) {
	opts := plotting.NewPartialDependenciesOptions()
	opts.NGridPoints = 4

	fig, err := New().PartialDependencies(sampleExperiment(), opts)
	require.NoError(t, err)

	// Two parameters yield a single pair.
	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "contour", trace.Type)
	assert.Equal(t, "Blues", trace.Colorscale)
	require.Len(t, trace.Z, 4)
	for _, row := range trace.Z {
		assert.Len(t, row, 4)
	}
}

func TestBackend_PartialDependencies_RequiresCompletedTrials(t *testing.T) {
	exp := experiment.New("empty")

	_, err := New().PartialDependencies(exp, plotting.NewPartialDependenciesOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed trials")
}
