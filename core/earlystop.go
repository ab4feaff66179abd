package core

import "github.com/huangsam/rollcast/schema"

// EarlyStopMonitor consumes a per-epoch metric stream from an external
// training or tuning loop and signals when to halt. It has exactly two
// states: Monitoring and Stopped. The transition happens the first time
// the named metric meets or exceeds the threshold; Stopped is terminal for
// the run until Reset.
type EarlyStopMonitor struct {
	metric    string
	threshold float64
	state     schema.MonitorState
	epoch     int
	stoppedAt int
}

// NewEarlyStopMonitor creates a monitor in the Monitoring state.
func NewEarlyStopMonitor(metric string, threshold float64) *EarlyStopMonitor {
	return &EarlyStopMonitor{
		metric:    metric,
		threshold: threshold,
		state:     schema.Monitoring,
	}
}

// Observe consumes one epoch's metrics record and reports whether the
// driving loop should halt. An epoch missing the monitored metric never
// halts; external loops routinely emit validation metrics only every Nth
// epoch.
func (m *EarlyStopMonitor) Observe(metrics map[string]float64) bool {
	if m.state == schema.Stopped {
		return true
	}
	m.epoch++
	value, ok := metrics[m.metric]
	if !ok {
		return false
	}
	if value >= m.threshold {
		m.state = schema.Stopped
		m.stoppedAt = m.epoch
		return true
	}
	return false
}

// State returns the current monitor state.
func (m *EarlyStopMonitor) State() schema.MonitorState { return m.state }

// StoppedEpoch returns the 1-based epoch at which the monitor stopped, or
// zero while still monitoring.
func (m *EarlyStopMonitor) StoppedEpoch() int { return m.stoppedAt }

// Reset returns the monitor to Monitoring for a fresh run.
func (m *EarlyStopMonitor) Reset() {
	m.state = schema.Monitoring
	m.epoch = 0
	m.stoppedAt = 0
}
