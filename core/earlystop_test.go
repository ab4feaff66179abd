package core

import (
	"testing"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarlyStopMonitorHaltsAtThreshold(t *testing.T) {
	monitor := NewEarlyStopMonitor("val_accuracy", 0.9)
	stream := []float64{0.5, 0.85, 0.92, 0.95}

	var halts []bool
	for _, v := range stream {
		halts = append(halts, monitor.Observe(map[string]float64{"val_accuracy": v}))
	}

	assert.Equal(t, []bool{false, false, true, true}, halts)
	assert.Equal(t, schema.Stopped, monitor.State())
	assert.Equal(t, 3, monitor.StoppedEpoch())
}

func TestEarlyStopMonitorExactThreshold(t *testing.T) {
	monitor := NewEarlyStopMonitor("accuracy", 0.9)
	assert.True(t, monitor.Observe(map[string]float64{"accuracy": 0.9}))
	assert.Equal(t, 1, monitor.StoppedEpoch())
}

func TestEarlyStopMonitorMissingMetric(t *testing.T) {
	monitor := NewEarlyStopMonitor("val_accuracy", 0.9)

	// Epochs without the monitored metric never stop the run.
	assert.False(t, monitor.Observe(map[string]float64{"loss": 0.01}))
	assert.False(t, monitor.Observe(map[string]float64{}))
	assert.Equal(t, schema.Monitoring, monitor.State())

	// The epoch counter still advanced for the skipped records.
	assert.True(t, monitor.Observe(map[string]float64{"val_accuracy": 0.99}))
	assert.Equal(t, 3, monitor.StoppedEpoch())
}

func TestEarlyStopMonitorStoppedIsTerminal(t *testing.T) {
	monitor := NewEarlyStopMonitor("accuracy", 0.5)
	require.True(t, monitor.Observe(map[string]float64{"accuracy": 0.6}))

	// A later value below the threshold does not resume monitoring.
	assert.True(t, monitor.Observe(map[string]float64{"accuracy": 0.1}))
	assert.Equal(t, schema.Stopped, monitor.State())
	assert.Equal(t, 1, monitor.StoppedEpoch())
}

func TestEarlyStopMonitorReset(t *testing.T) {
	monitor := NewEarlyStopMonitor("accuracy", 0.5)
	require.True(t, monitor.Observe(map[string]float64{"accuracy": 0.6}))

	monitor.Reset()
	assert.Equal(t, schema.Monitoring, monitor.State())
	assert.Zero(t, monitor.StoppedEpoch())
	assert.False(t, monitor.Observe(map[string]float64{"accuracy": 0.4}))
	assert.True(t, monitor.Observe(map[string]float64{"accuracy": 0.7}))
	assert.Equal(t, 2, monitor.StoppedEpoch())
}
