package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/internal/config"
)

var diamondEdges = []string{"-e", "A-B:1", "-e", "A-C:4", "-e", "B-C:2", "-e", "B-D:5"}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestParseEdge(t *testing.T) {
	e, err := parseEdge(" A-B:2.5 ")
	require.NoError(t, err)
	assert.Equal(t, edgeSpec{a: "A", b: "B", weight: 2.5}, e)

	e, err = parseEdge("Harbor-Mill")
	require.NoError(t, err)
	assert.Equal(t, edgeSpec{a: "Harbor", b: "Mill", weight: 1}, e)

	for _, bad := range []string{"", "A", "A-", "-B", "A-B:x"} {
		_, err = parseEdge(bad)
		assert.Error(t, err, bad)
	}
}

func TestRun_PrintsFramesUntilDone(t *testing.T) {
	args := append([]string{"run", "--color=false", "--from", "A", "--to", "D", "--batch", "4"}, diamondEdges...)
	out, _, err := execute(t, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "A → D · step 0\n")
	assert.Contains(t, out, "A → D · step 4 · at B\n")
	assert.Contains(t, out, "A → D · step 12 · done\n")
	assert.Contains(t, out, "dist(A, D) = 6  via A → B → D\n")
	assert.Equal(t, 4, strings.Count(out, "frontier:"))
}

func TestRun_DefaultEndpointsAndUnreachable(t *testing.T) {
	out, _, err := execute(t, "run", "--color=false", "--batch", "100", "-e", "A-B:3", "--vertex", "Z")
	require.NoError(t, err)
	assert.Contains(t, out, "A → Z · step 5 · done\n")
	assert.Contains(t, out, "Z is unreachable from A\n")
}

func TestPath_Eager(t *testing.T) {
	args := append([]string{"path", "--color=false", "--from", "A", "--to", "D"}, diamondEdges...)
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "dist(A, D) = 6  via A → B → D\n", out)
}

func TestPath_Preset(t *testing.T) {
	out, _, err := execute(t, "path", "--color=false", "--preset", "path:4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dist(A, D) = "), out)
	assert.Contains(t, out, "via A → B → C → D")
}

func TestPath_LargePresetOutgrowsPool(t *testing.T) {
	out, _, err := execute(t, "path", "--color=false", "--preset", "path:27", "--weights", "constant")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dist(A, AA) = 26  via A → B → "), out)
	assert.True(t, strings.HasSuffix(out, "Y → Z → AA\n"), out)

	out, _, err = execute(t, "path", "--color=false", "--preset", "complete:30", "--weights", "constant")
	require.NoError(t, err)
	assert.Equal(t, "dist(A, AD) = 1  via A → AD\n", out)

	out, _, err = execute(t, "path", "--color=false", "--preset", "path:3", "--ids", "prefix:s", "--weights", "constant")
	require.NoError(t, err)
	assert.Equal(t, "dist(s0, s2) = 2  via s0 → s1 → s2\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch: 50\ncolor: false\ninteractive: false\npreset: star:3\n"), 0o644))

	out, _, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A → C · step 0\n")
	assert.Contains(t, out, "A → C · step 7 · done\n")
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no graph", []string{"path"}, errNoGraph},
		{"unknown endpoint", append([]string{"path", "--to", "Q"}, diamondEdges...), core.ErrUnknownVertex},
		{"negative weight", []string{"path", "-e", "A-B:-1"}, core.ErrInvalidWeight},
		{"loop", []string{"path", "-e", "A-A:1"}, core.ErrLoopNotAllowed},
		{"bad level", []string{"path", "--log-level", "loud", "-e", "A-B"}, config.ErrInvalid},
		{"bad batch", []string{"run", "--batch", "0", "-e", "A-B"}, config.ErrInvalid},
		{"bad preset", []string{"path", "--preset", "moebius:3"}, config.ErrInvalid},
		{"pool too small", []string{"path", "--preset", "path:27", "--ids", "pool"}, config.ErrInvalid},
		{"bad weights", []string{"path", "--preset", "path:3", "--weights", "gaussian"}, config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, errOut, err := execute(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, errOut, "error:")
		})
	}
}

func TestRun_Telemetry(t *testing.T) {
	_, errOut, err := execute(t, "path", "--telemetry", "-e", "A-B:1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Session.Select")
}

func TestRun_TelemetryFlushedOnError(t *testing.T) {
	args := append([]string{"path", "--telemetry", "--to", "Q"}, diamondEdges...)
	_, errOut, err := execute(t, args...)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, errOut, "error:")
	assert.Contains(t, errOut, "Session.Select")
}
