//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedLexirankPath holds the path to a shared lexirank binary built once for all tests.
	sharedLexirankPath string

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

// getLexirankBinary returns the path to the lexirank binary, building it once if needed.
func getLexirankBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "lexirank-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		lexirankPath := filepath.Join(tempDir, "lexirank")
		buildCmd := exec.Command("go", "build", "-o", lexirankPath, "./cmd/lexirank")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build lexirank: %v", err))
		}

		sharedLexirankPath = lexirankPath
	})

	return sharedLexirankPath
}

// runLexirankCommand runs the shared binary from the project root and logs
// its output on failure.
func runLexirankCommand(t *testing.T, args ...string) error {
	lexirankPath := getLexirankBinary()
	cmd := exec.Command(lexirankPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
