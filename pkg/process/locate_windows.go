//go:build windows

package process

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW = user32.NewProc("FindWindowW")
)

// The lookups below never fail. A process that cannot be found, or a
// window that cannot be resolved to its owner, yields (0, false).

// ByForegroundWindow returns the process that owns the foreground window.
func ByForegroundWindow() (uint32, bool) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return 0, false
	}
	return ByWindowHandle(hwnd)
}

// ByWindowTitle returns the process that owns the top-level window whose
// title is exactly title.
func ByWindowTitle(title string) (uint32, bool) {
	hwnd, ok := findWindow(title)
	if !ok {
		return 0, false
	}
	return ByWindowHandle(hwnd)
}

// ByWindowHandle returns the process that owns hwnd.
func ByWindowHandle(hwnd windows.HWND) (uint32, bool) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		log.WithError(err).Debugf("Failed to resolve window %#x", hwnd)
		return 0, false
	}
	return pid, pid != 0
}

// ByExecutableName returns the process whose executable name equals name,
// ignoring case. If several processes match, the one enumerated last wins.
func ByExecutableName(name string) (uint32, bool) {
	pid := lastByName(Processes(), name)
	return pid, pid != 0
}

// AllByExecutableName appends the pid of every process whose executable
// name equals name, ignoring case, in enumeration order. It returns the
// extended slice and the number of pids appended.
func AllByExecutableName(dst []uint32, name string) ([]uint32, int) {
	return appendByName(dst, Processes(), name)
}

// AllProcesses appends the pid of every running process in enumeration
// order and returns the extended slice and the number appended.
func AllProcesses(dst []uint32) ([]uint32, int) {
	return appendAll(dst, Processes())
}

// CurrentID returns the pid of the calling process.
func CurrentID() uint32 {
	return windows.GetCurrentProcessId()
}

func findWindow(title string) (windows.HWND, bool) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, false
	}
	r, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	return windows.HWND(r), r != 0
}
