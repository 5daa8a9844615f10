package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runMalaria(t, binaryPath, home, "scenario", "init", "--seed", "3")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "scenario.toml")

	first, stderr, err := runMalaria(t, binaryPath, home, "run")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.True(t, strings.HasPrefix(first, "Age: 3\n"))
	assert.Contains(t, first, "Infected Mosquitoes per Unit Time 1-10: [50, 44, ")

	second, stderr, err := runMalaria(t, binaryPath, home, "run", "--seed", "3")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, first, second)
}

func TestSmokeInvalidPersonExitsNonZero(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runMalaria(t, binaryPath, home, "run", "--person", "1000")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr, "person not found")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "malaria-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/malaria")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build malaria binary: %s", string(output))
	return binaryPath
}

func runMalaria(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"MALARIA_SCENARIO_PATH=",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
