package framework

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLocalCommandRunnerStreamsLines(t *testing.T) {
	requireShell(t)
	runner := NewLocalCommandRunner()
	proc, err := runner.Start(context.Background(), CommandRequest{
		Args: []string{"sh", "-c", "echo one; echo two; printf three"},
	})
	require.NoError(t, err)

	var lines []string
	for line := range proc.Lines() {
		lines = append(lines, line)
	}
	result, err := proc.Wait()
	require.NoError(t, err)
	require.Equal(t, []string{"one\n", "two\n", "three"}, lines)
	require.Equal(t, 3, result.Lines)
	require.True(t, result.Success())
}

func TestLocalCommandRunnerYieldsWhileChildRuns(t *testing.T) {
	requireShell(t)
	release := filepath.Join(t.TempDir(), "release")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The child prints one line, then blocks until the release file exists.
	proc, err := NewLocalCommandRunner().Start(ctx, CommandRequest{
		Env:  []string{"RELEASE=" + release},
		Args: []string{"sh", "-c", `echo first; while [ ! -e "$RELEASE" ]; do sleep 0.05; done; echo second`},
	})
	require.NoError(t, err)

	var lines []string
	for line := range proc.Lines() {
		lines = append(lines, line)
		if line == "first\n" {
			_, statErr := os.Stat(release)
			require.True(t, os.IsNotExist(statErr))
			require.NoError(t, os.WriteFile(release, nil, 0o644))
		}
	}
	result, err := proc.Wait()
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, []string{"first\n", "second\n"}, lines)
}

func TestLocalCommandRunnerNonZeroExit(t *testing.T) {
	requireShell(t)
	var stderr bytes.Buffer
	proc, err := NewLocalCommandRunner().Start(context.Background(), CommandRequest{
		Args:   []string{"sh", "-c", "echo oops >&2; exit 3"},
		Stderr: &stderr,
	})
	require.NoError(t, err)
	for range proc.Lines() {
	}
	result, err := proc.Wait()
	require.Error(t, err)
	require.Equal(t, 3, result.ExitCode)
	require.False(t, result.Success())
	require.Equal(t, "oops\n", stderr.String())
}

func TestLocalCommandRunnerWaitDrainsUnreadOutput(t *testing.T) {
	requireShell(t)
	proc, err := NewLocalCommandRunner().Start(context.Background(), CommandRequest{
		Args: []string{"sh", "-c", "i=0; while [ $i -lt 2000 ]; do echo line $i; i=$((i+1)); done"},
	})
	require.NoError(t, err)
	for line := range proc.Lines() {
		require.Equal(t, "line 0\n", line)
		break
	}
	result, err := proc.Wait()
	require.NoError(t, err)
	require.Equal(t, 1, result.Lines)
}

func TestLocalCommandRunnerWorkdirAndEnv(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	proc, err := NewLocalCommandRunner().Start(context.Background(), CommandRequest{
		Workdir: dir,
		Env:     []string{"SPIRVCONF_PROBE=ok"},
		Args:    []string{"sh", "-c", `echo "$SPIRVCONF_PROBE"`},
	})
	require.NoError(t, err)
	var out []string
	for line := range proc.Lines() {
		out = append(out, line)
	}
	_, err = proc.Wait()
	require.NoError(t, err)
	require.Equal(t, []string{"ok\n"}, out)
}

func TestLocalCommandRunnerRequiresArgs(t *testing.T) {
	_, err := NewLocalCommandRunner().Start(context.Background(), CommandRequest{})
	require.EqualError(t, err, "command arguments required")
}

func TestLocalCommandRunnerMissingBinary(t *testing.T) {
	runner := NewLocalCommandRunner()
	_, err := runner.LookPath("spirvconf-definitely-missing-binary")
	require.Error(t, err)
	_, err = runner.Start(context.Background(), CommandRequest{Args: []string{"spirvconf-definitely-missing-binary"}})
	require.Error(t, err)
}
