package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		mape float64
		want string
	}{
		{0, ExcellentValue},
		{4.9, ExcellentValue},
		{5, GoodValue},
		{9.9, GoodValue},
		{10, FairValue},
		{19.9, FairValue},
		{20, PoorValue},
		{85, PoorValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(tt.mape))
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output contains the plain label regardless of terminal state
	assert.Contains(t, GetColorLabel(1), ExcellentValue)
	assert.Contains(t, GetColorLabel(7), GoodValue)
	assert.Contains(t, GetColorLabel(15), FairValue)
	assert.Contains(t, GetColorLabel(50), PoorValue)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "temps", 10, "temps"},
		{"zero width disables", "daily-temps", 0, "daily-temps"},
		{"keeps tail", "sensor-42-daily-temps", 10, "...y-temps"},
		{"tiny width", "temps", 3, "mps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateName(tt.in, tt.maxWidth))
		})
	}
}

func TestParseBoolFlag(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "on", "YES", " true "} {
		assert.True(t, ParseBoolFlag(s), s)
	}
	for _, s := range []string{"no", "false", "0", "off", "", "maybe"} {
		assert.False(t, ParseBoolFlag(s), s)
	}
}
