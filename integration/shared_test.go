//go:build basic || database

package integration

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedRollcastPath holds the path to a shared rollcast binary built once for all tests.
	sharedRollcastPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getRollcastBinary returns the path to the rollcast binary, building it once if needed.
func getRollcastBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "rollcast-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		rollcastPath := filepath.Join(tempDir, "rollcast")
		buildCmd := exec.Command("go", "build", "-o", rollcastPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build rollcast: %v", err))
		}

		sharedRollcastPath = rollcastPath
	})

	return sharedRollcastPath
}

// writeSeriesCSV writes a synthetic seasonal series to a CSV file and
// returns its path.
func writeSeriesCSV(t *testing.T, name string, n int) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create series file: %v", err)
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintln(f, "value")
	for i := 0; i < n; i++ {
		v := 100.0 + 10.0*math.Sin(float64(i)/7.0) + float64(i)*0.5
		fmt.Fprintf(f, "%.4f\n", v)
	}
	return path
}

// runRollcastCommand runs the shared binary and returns its combined output.
func runRollcastCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rollcastPath := getRollcastBinary()
	cmd := exec.Command(rollcastPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
