package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistryIsPerInstance(t *testing.T) {
	// Two servers in one process must not collide on registration.
	assert.NotPanics(t, func() {
		newServerMetrics()
		newServerMetrics()
	})
}

func TestMetricsAreGatherable(t *testing.T) {
	m := newServerMetrics()
	m.stepsTotal.Inc()
	m.plateCount.Set(8)

	families, err := m.registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["planetsim_steps_total"])
	assert.True(t, names["planetsim_plates"])
	assert.True(t, names["planetsim_step_duration_seconds"])
}
