package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/skyraid/internal/config"
)

// captureLog redirects the standard logger into a buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTerminalStartupErrorIsLogged(t *testing.T) {
	buf := captureLog(t)

	cfg := config.Default()
	cfg.Frontend = config.FrontendTerminal
	cfg.AssetDir = t.TempDir()

	closeLog, err := setupLog(cfg)
	require.NoError(t, err)
	defer closeLog()

	err = run(cfg)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Loading assets from", "nothing is silenced before the screen is up")

	code := realMain([]string{"-frontend", "terminal", "-assets", cfg.AssetDir})
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "skyraid: assets: read Airplane.png")
}

func TestInvalidConfigurationIsLogged(t *testing.T) {
	buf := captureLog(t)

	assert.Equal(t, 1, realMain([]string{"-frontend", "terminal", "-scroll", "sideways"}))
	assert.Contains(t, buf.String(), "Invalid configuration")
}

func TestFatalErrorStillClosesLogFile(t *testing.T) {
	buf := captureLog(t)
	path := filepath.Join(t.TempDir(), "skyraid.log")

	code := realMain([]string{"-frontend", "terminal", "-assets", t.TempDir(), "-log", path})
	assert.Equal(t, 1, code)
	assert.Empty(t, buf.String(), "the log goes to the file while it is open")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skyraid: assets: read Airplane.png")

	log.Print("after")
	assert.Contains(t, buf.String(), "after", "the previous output is restored")
}

func TestQuietLog(t *testing.T) {
	buf := captureLog(t)

	restore := quietLog(config.Config{})
	log.Print("hidden")
	restore()
	log.Print("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	restore = quietLog(config.Config{LogFile: "game.log"})
	log.Print("kept")
	restore()
	assert.Contains(t, buf.String(), "kept")
}

func TestBadFlagExitCode(t *testing.T) {
	captureLog(t)
	assert.Equal(t, 2, realMain([]string{"-no-such-flag"}))
}
