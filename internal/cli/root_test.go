// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cratefit/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), &out, &errOut, args)

	return out.String(), errOut.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	require.Equal(t, "1.0.0", version)
	require.Equal(t, "abc123", commit)
	require.Equal(t, "2024-01-01", date)
}

func TestCube(t *testing.T) {
	out, _, err := run(t, "cube", "--depth", "2", "--width", "3", "--height", "4")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "8 vertices, 12 edges\n"), out)
	require.Contains(t, out, "7 (2,3,4) -> 3, 5, 6")
}

func TestCube_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cratefit.toml")
	require.NoError(t, os.WriteFile(path, []byte("[container]\ndepth = 3\nwidth = 3\nheight = 3\n"), 0o600))

	out, _, err := run(t, "--config", path, "cube", "--height", "1")
	require.NoError(t, err)
	require.Contains(t, out, "(3,3,1)")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "cube")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRotate(t *testing.T) {
	out, _, err := run(t, "rotate", "--block", "1x2x3", "--yaw", "90")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "extents 2x1x3\n"), out)

	_, _, err = run(t, "rotate")
	require.Error(t, err)
	_, _, err = run(t, "rotate", "--block", "1x2")
	require.Error(t, err)
}

func TestPlace(t *testing.T) {
	out, logs, err := run(t, "place", "-v", "--container", "5x5x5",
		"--block", "2x2x2@0,0,0",
		"--block", "1x1x1@0,0,0",
		"--block", "1x1x1@3,0,0",
		"--block", "6x1x1@0,0,0",
	)
	require.NoError(t, err)
	require.Contains(t, out, "inside #0")
	require.Contains(t, out, "out of bounds")
	require.Contains(t, out, "placed 2 of 4 blocks, volume 9 of 125")
	require.Contains(t, out, "container 5x5x5 with 2 blocks")
	require.Contains(t, out, "frame: 23 vertices, 36 edges, 2 components")
	require.Contains(t, logs, "placement rejected")
	require.Contains(t, logs, "placement finished")

	// every table id prefixes the full id on a debug record
	ids := regexp.MustCompile(`\b[0-9a-f]{8}\b`).FindAllString(out, -1)
	require.Len(t, ids, 4)
	for _, id := range ids {
		require.Contains(t, logs, "id="+id+"-")
	}
}

func TestPlace_DefaultLevelHidesDebug(t *testing.T) {
	_, logs, err := run(t, "place", "--block", "1x1x1@0,0,0")
	require.NoError(t, err)
	require.NotContains(t, logs, "block committed")
	require.Contains(t, logs, "placement finished")
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, log.Default(), loggerFromContext(ctx))
	require.Equal(t, config.Default(), configFromContext(ctx))

	l := newLogger(&bytes.Buffer{}, log.WarnLevel)
	require.Same(t, l, loggerFromContext(withLogger(ctx, l)))
}
