//go:build windows

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchOptions(t *testing.T) {
	opts, err := launchOptions(` C:\Windows\System32\cmd.exe `, "/c exit 3", "", "2s")
	require.NoError(t, err)
	assert.Equal(t, `C:\Windows\System32\cmd.exe`, opts.Path)
	assert.Equal(t, "/c exit 3", opts.Args)
	assert.Empty(t, opts.Dir)
	assert.Equal(t, 2*time.Second, opts.Timeout)
}

func TestLaunchOptionsEmptyWaitSkips(t *testing.T) {
	opts, err := launchOptions("notepad.exe", "", `C:\`, " ")
	require.NoError(t, err)
	assert.Zero(t, opts.Timeout)
	assert.Equal(t, `C:\`, opts.Dir)
}

func TestLaunchOptionsErrors(t *testing.T) {
	_, err := launchOptions("  ", "", "", "")
	assert.EqualError(t, err, "path is required")

	_, err = launchOptions("notepad.exe", "", "", "soon")
	assert.EqualError(t, err, `invalid wait "soon"`)
}
