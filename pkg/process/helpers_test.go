//go:build windows

package process

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetProcessHandleCount = kernel32.NewProc("GetProcessHandleCount")
	procGetHandleInformation  = kernel32.NewProc("GetHandleInformation")
)

func openSelf(t *testing.T) *Process {
	t.Helper()
	p, err := Open(uint32(os.Getpid()))
	require.NoError(t, err, "open self")
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func allocRW(t *testing.T, size uintptr) uintptr {
	t.Helper()
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	require.NoError(t, err, "VirtualAlloc")
	require.NotZero(t, addr, "VirtualAlloc")
	t.Cleanup(func() { _ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE) })
	return addr
}

func cmdExe(t *testing.T) string {
	t.Helper()
	dir, err := windows.GetSystemDirectory()
	require.NoError(t, err)
	path := filepath.Join(dir, "cmd.exe")
	_, err = os.Stat(path)
	require.NoError(t, err)
	return path
}

// launchSuspended starts a suspended cmd.exe that is killed when the test ends.
func launchSuspended(t *testing.T) *Process {
	t.Helper()
	p, err := Create(CreateOptions{Path: cmdExe(t), Args: "/c exit 0", Suspended: true})
	require.NoError(t, err)
	killer, err := p.Clone()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = killer.Terminate(1)
		_ = killer.Close()
		_ = p.Close()
	})
	return p
}

func handleCount(t *testing.T) uint32 {
	t.Helper()
	var n uint32
	r, _, err := procGetProcessHandleCount.Call(uintptr(windows.CurrentProcess()), uintptr(unsafe.Pointer(&n)))
	require.NotZero(t, r, "GetProcessHandleCount: %v", err)
	return n
}

func handleOpen(h windows.Handle) bool {
	var flags uint32
	r, _, _ := procGetHandleInformation.Call(uintptr(h), uintptr(unsafe.Pointer(&flags)))
	return r != 0
}
