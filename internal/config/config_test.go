package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDoc(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proctiller.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configDoc(
		"log:",
		"  level: debug",
		"launch:",
		"  timeout: 2s",
		"  suspended: true",
		`  dir: C:\work`,
		"kill:",
		"  exitCode: 9",
	)), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
	assert.Equal(t, 2*time.Second, cfg.Launch.Timeout)
	assert.True(t, cfg.Launch.Suspended)
	assert.Equal(t, `C:\work`, cfg.Launch.Dir)
	assert.Equal(t, uint32(9), cfg.Kill.ExitCode)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.Refresh)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader(configDoc("log:", "  colour: true")))
	assert.ErrorContains(t, err, "colour")
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode(strings.NewReader(configDoc(
		"log:",
		"  level: loud",
		"  format: xml",
		"launch:",
		"  timeout: -1s",
		"ui:",
		"  refresh: 0s",
	)))
	require.Error(t, err)
	for _, key := range []string{"log.level", "log.format", "launch.timeout", "ui.refresh"} {
		assert.ErrorContains(t, err, key)
	}
}
