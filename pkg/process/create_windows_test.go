//go:build windows

package process

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuspendedDoesNotBlock(t *testing.T) {
	start := time.Now()
	p := launchSuspended(t)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, p.Bound())
	assert.NotZero(t, p.PID())
	assert.NotEqual(t, uint32(os.Getpid()), p.PID())

	exited, err := p.Wait(100 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, exited, "suspended process must not run to completion")
}

func TestCreateSuspendedWaitEndsAtTimeout(t *testing.T) {
	p := New()
	t.Cleanup(func() { _ = p.Terminate(1); _ = p.Close() })

	const timeout = 300 * time.Millisecond
	start := time.Now()
	pid, err := p.CreateAndOpen(CreateOptions{Path: cmdExe(t), Args: "/c exit 0", Suspended: true, Timeout: timeout})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, pid, p.PID())
	assert.GreaterOrEqual(t, elapsed, timeout-50*time.Millisecond)
	assert.Less(t, elapsed, 10*time.Second)
}

func TestCreateWaitsForPrimaryThread(t *testing.T) {
	p := New()
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.CreateAndOpen(CreateOptions{Path: cmdExe(t), Args: "/c exit 7", Timeout: 30 * time.Second})
	require.NoError(t, err)

	exited, err := p.Wait(30 * time.Second)
	require.NoError(t, err)
	require.True(t, exited)

	code, _, err := p.ExitCode()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), code)
}

func TestCreateUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	p := New()
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.CreateAndOpen(CreateOptions{
		Path:    cmdExe(t),
		Args:    "/c echo marker> created.txt",
		Dir:     dir,
		Timeout: 30 * time.Second,
	})
	require.NoError(t, err)
	_, err = p.Wait(30 * time.Second)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "created.txt"))
}

func TestCreateMissingExecutable(t *testing.T) {
	p := openSelf(t)

	_, err := p.CreateAndOpen(CreateOptions{Path: filepath.Join(t.TempDir(), "missing.exe")})
	require.ErrorIs(t, err, ErrCreate)
	assert.False(t, p.Bound(), "previous handle must be released")

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "CreateProcess", opErr.Call)
}

func TestCreateReturnsNilOnFailure(t *testing.T) {
	p, err := Create(CreateOptions{Path: filepath.Join(t.TempDir(), "missing.exe")})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrCreate)
}
