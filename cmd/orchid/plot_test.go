package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchid-ml/orchid/internal/domain/experiment"
	"github.com/orchid-ml/orchid/internal/domain/plotting"
)

func resetPlotFlags(t *testing.T) {
	t.Helper()
	saved := plotFlags
	t.Cleanup(func() { plotFlags = saved })

	plotFlags.kind = ""
	plotFlags.output = ""
	plotFlags.orderBy = ""
	plotFlags.noHover = false
	plotFlags.model = ""
	plotFlags.nPoints = 0
	plotFlags.params = nil
}

func TestPlotOptions_RegretDefaults(t *testing.T) {
	resetPlotFlags(t)

	opts, ok := plotOptions(plotting.KindRegret).(*plotting.RegretOptions)
	require.True(t, ok)
	assert.Equal(t, experiment.OrderSuggested, opts.OrderBy)
	assert.True(t, opts.VerboseHover)
}

func TestPlotOptions_RegretFlags(t *testing.T) {
	resetPlotFlags(t)
	plotFlags.orderBy = experiment.OrderCompleted
	plotFlags.noHover = true

	opts, ok := plotOptions(plotting.KindRegret).(*plotting.RegretOptions)
	require.True(t, ok)
	assert.Equal(t, experiment.OrderCompleted, opts.OrderBy)
	assert.False(t, opts.VerboseHover)
}

func TestPlotOptions_LPIFlags(t *testing.T) {
	resetPlotFlags(t)
	plotFlags.model = "BaggingRegressor"
	plotFlags.nPoints = 5

	opts, ok := plotOptions(plotting.KindLPI).(*plotting.LPIOptions)
	require.True(t, ok)
	assert.Equal(t, "BaggingRegressor", opts.Model)
	assert.Equal(t, 5, opts.NPoints)
}

func TestPlotOptions_ParallelCoordinatesParams(t *testing.T) {
	resetPlotFlags(t)
	plotFlags.params = []string{"momentum", "lr"}

	opts, ok := plotOptions(plotting.KindParallelCoordinates).(*plotting.ParallelCoordinatesOptions)
	require.True(t, ok)
	assert.Equal(t, []string{"momentum", "lr"}, opts.Order)
}

func TestPlotOptions_PartialDependenciesKeepsDefaults(t *testing.T) {
	resetPlotFlags(t)
	plotFlags.params = []string{"lr"}

	opts, ok := plotOptions(plotting.KindPartialDependencies).(*plotting.PartialDependenciesOptions)
	require.True(t, ok)
	assert.Equal(t, []string{"lr"}, opts.Params)
	assert.Equal(t, 0.85, opts.Smoothing)
	assert.Equal(t, "Blues", opts.Colorscale)
}

func TestPlotOptions_UnknownKind(t *testing.T) {
	resetPlotFlags(t)
	assert.Nil(t, plotOptions("nonexistent"))
}
