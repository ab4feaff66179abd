package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlagAvailableOnEvalAndTune(t *testing.T) {
	// Both commands document --split in their examples, so both must
	// accept it at parse time.
	for _, c := range []*cobra.Command{evalCmd, tuneCmd} {
		require.NotNil(t, c.InheritedFlags().Lookup("split"), "%s must accept --split", c.Name())
		require.NotNil(t, c.InheritedFlags().Lookup("normalize"), "%s must accept --normalize", c.Name())
	}
}

func TestTuneLocalFlags(t *testing.T) {
	assert.NotNil(t, tuneCmd.Flags().Lookup("windows"))
	assert.NotNil(t, tuneCmd.Flags().Lookup("target-accuracy"))
}
