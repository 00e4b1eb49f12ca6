package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/internal/input"
)

// writeInput stores content in a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCmd runs the CLI and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, err := runCmd(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "frobnicate", "x")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "grid")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "grid", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRun_Grid(t *testing.T) {
	path := writeInput(t, "S.#\n..#\n#.E\n")

	out, err := runCmd(t, "grid", path)
	require.NoError(t, err)
	assert.Equal(t, "distance: 4\n", out)

	out, err = runCmd(t, "grid", "-max", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "distance: unreachable\n", out)

	out, err = runCmd(t, "grid", "-v", "-wrap", "-max", "10", path)
	require.NoError(t, err)
	assert.Equal(t, "distance: 4\n", out, "wrapped copies of E do not count as E")

	_, err = runCmd(t, "grid", "-wrap", path)
	assert.ErrorIs(t, err, errUnboundedWrap)
}

func TestRun_GridColor(t *testing.T) {
	old := color.Disable()
	defer func() { color.Enable = old }()

	path := writeInput(t, "S.#\n..#\n#.E\n")
	out, err := runCmd(t, "grid", "-color", path)
	require.NoError(t, err)
	assert.Equal(t, "S.#\n..#\n#.E\ndistance: 4\n", out)
}

func TestRun_GridErrors(t *testing.T) {
	_, err := runCmd(t, "grid", writeInput(t, "...\n..E\n"))
	assert.Error(t, err)

	_, err = runCmd(t, "grid", "-max", "-5", writeInput(t, "S.E\n"))
	assert.Error(t, err)
}

func TestRun_Ranges(t *testing.T) {
	path := writeInput(t, "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n")

	out, err := runCmd(t, "ranges", path)
	require.NoError(t, err)
	assert.Equal(t, "in range: 3\ntotal values: 14\n", out)

	_, err = runCmd(t, "ranges", writeInput(t, "3-x\n"))
	assert.ErrorIs(t, err, input.ErrMalformed)
}

const devices = `svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
`

func TestRun_Paths(t *testing.T) {
	path := writeInput(t, devices)

	out, err := runCmd(t, "paths", "-from", "svr", path)
	require.NoError(t, err)
	assert.Equal(t, "paths: 8\n", out)

	out, err = runCmd(t, "paths", "-from", "svr", "-via", "dac, fft", path)
	require.NoError(t, err)
	assert.Equal(t, "paths: 2\n", out)

	out, err = runCmd(t, "paths", "-from", "svr", "-via", "dac,fft", "-list", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "8 svr,aaa,fft,ccc,eee,dac,fff,ggg,out\n")

	_, err = runCmd(t, "paths", "-from", "nobody", path)
	assert.Error(t, err)
}

func TestRun_PathsListLimit(t *testing.T) {
	path := writeInput(t, devices)

	out, err := runCmd(t, "paths", "-from", "svr", "-list", "-limit", "3", path)
	require.NoError(t, err, "a truncated listing is not a failure")
	assert.Empty(t, out)
}

func TestRun_Dig(t *testing.T) {
	plan := strings.Join([]string{
		"R 6 (#70c710)", "D 5 (#0dc571)", "L 2 (#5713f0)", "D 2 (#d2c081)",
		"R 2 (#59c680)", "D 2 (#411b91)", "L 5 (#8ceee2)", "U 2 (#caa173)",
		"L 1 (#1b58a2)", "U 2 (#caa171)", "R 2 (#7807d2)", "U 3 (#a77fa3)",
		"L 2 (#015232)", "U 2 (#7a21e3)",
	}, "\n")
	path := writeInput(t, plan)

	out, err := runCmd(t, "dig", path)
	require.NoError(t, err)
	assert.Equal(t, "lagoon: 62\n", out)

	out, err = runCmd(t, "dig", "-hex", path)
	require.NoError(t, err)
	assert.Equal(t, "lagoon: 952408144115\n", out)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a,,b "))
	assert.Nil(t, splitList(""))
}
