package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/internal/cli"
	"github.com/katalvlaran/linkrank/internal/config"
	"github.com/katalvlaran/linkrank/rank"
)

// isolate keeps the user's config files and env out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRank_Both(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "ring.txt", "A B\nB C\nC A\n")

	out, err := run(t, "rank", path, "--samples", "500", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "PageRank Results from Sampling (n = 500)\n")
	assert.Contains(t, out, "\n\nPageRank Results from Iteration\n  A: 0.3333\n  B: 0.3333\n  C: 0.3333\n")
}

func TestRank_IterateOnly(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "pair.yaml", "pages:\n  A: [B]\n  B: []\n")

	out, err := run(t, "rank", path, "--method", "iterate", "--tolerance", "1e-9")
	require.NoError(t, err)
	assert.Equal(t, "PageRank Results from Iteration\n  A: 0.3509\n  B: 0.6491\n", out)
}

func TestRank_NonConvergence(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "star.txt", "A B\nA C\nB A\nC A\n")

	out, err := run(t, "rank", path, "--method", "iterate", "--damping", "1", "--max-iterations", "4")
	require.ErrorIs(t, err, rank.ErrNonConvergence)
	assert.Contains(t, out, "not converged after 4 passes")
	assert.Contains(t, out, "  A: ")
}

func TestRank_Errors(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "ring.txt", "A B\nB A\n")

	_, err := run(t, "rank", path, "--method", "power")
	assert.Error(t, err)

	_, err = run(t, "rank", path, "--damping", "2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "rank", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "rank")
	assert.Error(t, err, "resource argument is required")
}

func TestRank_EnvOverride(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "ring.txt", "A B\nB A\n")
	t.Setenv("LINKRANK_SAMPLES", "0")

	_, err := run(t, "rank", path, "--method", "sample")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRank_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "ring.txt", "A B\nB A\n")
	writeFile(t, dir, ".linkrank.yaml", "samples: 123\n")

	out, err := run(t, "rank", path, "--method", "sample", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "(n = 123)")
}

func TestGenerate(t *testing.T) {
	isolate(t)

	out, err := run(t, "generate", "cycle", "--n", "3", "--ids", "symbol")
	require.NoError(t, err)
	assert.Equal(t, "A B\nB C\nC A\n", out)

	_, err = run(t, "generate", "torus")
	assert.Error(t, err)

	_, err = run(t, "generate", "cycle", "--ids", "roman")
	assert.Error(t, err)
}

func TestGenerate_TooManySymbolPages(t *testing.T) {
	isolate(t)

	var err error
	assert.NotPanics(t, func() {
		_, err = run(t, "generate", "cycle", "--n", "30", "--ids", "symbol")
	})
	assert.ErrorIs(t, err, builder.ErrIDOutOfRange)
}

func TestGenerateThenRank(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "wheel.toml")

	_, err := run(t, "generate", "wheel", "--n", "6", "--format", "toml", "--out", path)
	require.NoError(t, err)

	out, err := run(t, "rank", path, "--method", "iterate")
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, "\n"), "header plus six pages")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
