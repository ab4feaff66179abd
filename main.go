// Package main is the entrypoint for the rollcast CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/rollcast/cmd"
	"github.com/huangsam/rollcast/internal/runstore"
)

func main() {
	// Wire the global run store manager into the command layer before
	// any command executes.
	cmd.SetRunManager(runstore.Manager)

	err := cmd.Execute()

	// Cleanup happens regardless of command outcome
	runstore.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil && err == nil {
		err = perr
	}

	if err != nil {
		// rootCmd silences cobra's own error printing, so setup and
		// argument errors surface here.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
