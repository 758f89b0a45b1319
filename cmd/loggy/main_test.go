package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	loggy "github.com/SamuelDBines/pyloggy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the CLI in-process with captured streams, the debug
// environment override cleared, and all persistent flags reset.
func runRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(loggy.DebugEnv, "")
	resetFlags()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags() {
	flagStyle = ""
	flagSheet = ""
	flagDebug = false
	flagVerbose = false
	flagNoColor = false
	flagNoIcons = false
	flagQuiet = false
	previewAll = false
}

func TestOkCommand(t *testing.T) {
	stdout, stderr, err := runRoot(t, "ok", "build", "complete", "--style", "classic")
	require.NoError(t, err)

	assert.Equal(t, "[OK] build complete\n", stdout)
	assert.Empty(t, stderr)
}

func TestErrCommandWritesToStderr(t *testing.T) {
	stdout, stderr, err := runRoot(t, "err", "upload failed", "--style", "classic")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Equal(t, "[ERR] upload failed\n", stderr)
}

func TestLogSuppressedWithoutDebug(t *testing.T) {
	stdout, stderr, err := runRoot(t, "log", "hidden")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestLogWithDebugFlag(t *testing.T) {
	stdout, _, err := runRoot(t, "--debug", "log", "resolving", "deps", "--style", "classic")
	require.NoError(t, err)

	assert.Equal(t, "[LOG] resolving deps\n", stdout)
}

func TestDebugEnvEnablesInfo(t *testing.T) {
	resetFlags()
	t.Setenv(loggy.DebugEnv, "yes")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"info", "cache warm", "--style", "classic"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "[INFO] cache warm\n", out.String())
}

func TestUnknownStyleFallsBackToDefault(t *testing.T) {
	stdout, _, err := runRoot(t, "warn", "low disk", "--style", "no-such-style")
	require.NoError(t, err)

	assert.Equal(t, "[Warn] low disk\n", stdout)
}

func TestQuietSuppressesOutStream(t *testing.T) {
	stdout, stderr, err := runRoot(t, "--quiet", "ok", "done")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	stdout, stderr, err = runRoot(t, "--quiet", "err", "still visible")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "[Error] still visible\n", stderr)
}

func TestVerboseFlagIsAccepted(t *testing.T) {
	stdout, _, err := runRoot(t, "--verbose", "ok", "same output")
	require.NoError(t, err)

	assert.Equal(t, "[OK] same output\n", stdout)
}

func TestStylesCommandListsNames(t *testing.T) {
	stdout, _, err := runRoot(t, "styles")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NAME")
	for _, name := range loggy.StyleNames() {
		assert.Contains(t, stdout, name)
	}
}

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.yaml")
	sheet := `styles:
  deploy:
    base: cli
    warn_label: "[hold]"
    warn_color: orange
`
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))
	return path
}

func TestStylesheetFlag(t *testing.T) {
	path := writeSheet(t)

	stdout, _, err := runRoot(t, "warn", "release frozen", "--stylesheet", path, "--style", "deploy")
	require.NoError(t, err)

	assert.Equal(t, "[hold] release frozen\n", stdout)
}

func TestStylesheetListedByStylesCommand(t *testing.T) {
	path := writeSheet(t)

	stdout, _, err := runRoot(t, "styles", "--stylesheet", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "deploy")
	assert.Contains(t, stdout, "[hold]")
}

func TestStylesheetMissingFile(t *testing.T) {
	_, _, err := runRoot(t, "ok", "x", "--stylesheet", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read style sheet")
}

func TestPreviewShowsAllKinds(t *testing.T) {
	stdout, _, err := runRoot(t, "preview", "--style", "classic")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[LOG] resolving build graph")
	assert.Contains(t, stdout, "[OK] build complete in 2.3s")
	assert.Contains(t, stdout, "[INFO] 42 packages cached")
	assert.Contains(t, stdout, "[WARN] disk usage at 91%")
	assert.Contains(t, stdout, "[ERR] upload failed: connection reset")
}

func TestPreviewAllCoversEveryPreset(t *testing.T) {
	stdout, _, err := runRoot(t, "preview", "--all")
	require.NoError(t, err)

	// Section headers are rendered in caps.
	upper := strings.ToUpper(stdout)
	for _, name := range loggy.StyleNames() {
		assert.Contains(t, upper, strings.ToUpper(name))
	}
	// classic block renders with labels even when piped.
	assert.Contains(t, stdout, "[WARN] disk usage at 91%")
}
