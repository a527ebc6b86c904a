package conda

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/condatools/autoconda/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArgs(t *testing.T) {
	args := runArgs("test-env", []string{"python", "-c", "print('hello world')"})
	assert.Equal(t, []string{
		"run", "--name", "test-env", "--no-capture-output",
		"python", "-c", "print('hello world')",
	}, args)
}

func TestRunArgs_NoTokenization(t *testing.T) {
	// Arguments with spaces and metacharacters pass through as single
	// vector elements.
	args := runArgs("e", []string{"sh", "-c", "echo $HOME > out; ls | wc -l"})
	assert.Equal(t, "echo $HOME > out; ls | wc -l", args[6])
}

func TestParseEnvironments(t *testing.T) {
	data := []byte(`{"envs": ["/opt/miniconda3", "/opt/miniconda3/envs", "/opt/miniconda3/envs/science", "/opt/miniconda3/envs/web"]}`)

	envs, err := parseEnvironments(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"miniconda3", "science", "web"}, envs)
}

func TestParseEnvironments_Malformed(t *testing.T) {
	_, err := parseEnvironments([]byte(`{"envs": [`))
	assert.Error(t, err)
}

func TestRun_SpawnFailureIsDistinguishable(t *testing.T) {
	c := NewClientWithBinary(filepath.Join(t.TempDir(), "no-such-conda"))

	_, err := c.Run(context.Background(), "test-env", []string{"true"})
	assert.ErrorIs(t, err, domain.ErrCondaUnavailable)
}

func TestVersion_SpawnFailureIsDistinguishable(t *testing.T) {
	c := NewClientWithBinary(filepath.Join(t.TempDir(), "no-such-conda"))

	_, err := c.Version(context.Background())
	assert.ErrorIs(t, err, domain.ErrCondaUnavailable)
}

// writeStub creates an executable shell script standing in for conda.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conda-stub")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700)
	require.NoError(t, err)
	return path
}

func TestRun_ForwardsExitCode(t *testing.T) {
	c := NewClientWithBinary(writeStub(t, "exit 7"))

	code, err := c.Run(context.Background(), "test-env", []string{"false"})
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRun_ChildSurvivesContextCancellation(t *testing.T) {
	// The child must run to natural completion and its exit code must be
	// forwarded verbatim even when the caller's context is cancelled
	// mid-run (e.g. by the signal handler in main).
	marker := filepath.Join(t.TempDir(), "marker")
	c := NewClientWithBinary(writeStub(t, "trap '' INT TERM\nsleep 1\ntouch "+marker+"\nexit 4"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	code, err := c.Run(ctx, "test-env", []string{"true"})
	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.FileExists(t, marker)
}

func TestRun_ZeroExit(t *testing.T) {
	c := NewClientWithBinary(writeStub(t, "exit 0"))

	code, err := c.Run(context.Background(), "test-env", []string{"true"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestVersion_TrimsOutput(t *testing.T) {
	c := NewClientWithBinary(writeStub(t, "echo 'conda 24.1.2'"))

	version, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "conda 24.1.2", version)
}

func TestEnvironmentExists(t *testing.T) {
	stub := writeStub(t, `echo '{"envs": ["/opt/miniconda3/envs/science"]}'`)
	c := NewClientWithBinary(stub)

	exists, err := c.EnvironmentExists(context.Background(), "science")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = c.EnvironmentExists(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, exists)
}
