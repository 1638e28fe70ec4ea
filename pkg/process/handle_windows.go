//go:build windows

package process

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sys/windows"
)

// Access rights held by every handle that Open acquires.
const access = windows.PROCESS_QUERY_INFORMATION |
	windows.PROCESS_CREATE_THREAD |
	windows.PROCESS_VM_READ |
	windows.PROCESS_VM_WRITE |
	windows.PROCESS_VM_OPERATION |
	windows.PROCESS_SUSPEND_RESUME |
	windows.PROCESS_TERMINATE |
	windows.SYNCHRONIZE

// Process owns at most one native handle to an OS process.
//
// A Process is either unbound (no handle) or bound to a live handle for
// PID. Open and CreateAndOpen release any handle already held before
// acquiring a new one, Close and a successful Terminate release it. A
// bound Process that becomes unreachable without Close has its handle
// released by the runtime. Copies must be made with Clone, which
// duplicates the handle.
//
// A Process is not safe for concurrent use.
type Process struct {
	handle  windows.Handle
	pid     uint32
	cleanup runtime.Cleanup
}

// New returns an unbound Process.
func New() *Process {
	return &Process{}
}

// Open returns a Process bound to pid.
func Open(pid uint32) (*Process, error) {
	p := New()
	if err := p.Open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

// PID returns the identifier of the process this handle was last bound to.
// It stays set after Close.
func (p *Process) PID() uint32 {
	return p.pid
}

// Handle returns the native handle, or 0 if p is unbound. The handle stays
// owned by p.
func (p *Process) Handle() windows.Handle {
	return p.handle
}

// Bound reports whether p holds a native handle.
func (p *Process) Bound() bool {
	return p != nil && p.handle != 0
}

// Open releases any handle held by p, enables the debug privilege and
// opens pid. On failure p is left unbound.
func (p *Process) Open(pid uint32) error {
	_ = p.Close()

	if err := EnableDebugPrivilege(); err != nil {
		return err
	}

	h, err := windows.OpenProcess(access, false, pid)
	if err != nil {
		return opError(ErrOpen, "open", pid, "OpenProcess", err)
	}

	p.bind(h, pid)
	log.Debugf("Opened pid %d", pid)
	return nil
}

// Clone returns a new Process with its own duplicate of p's handle. Closing
// either one leaves the other valid. Cloning an unbound Process yields an
// unbound Process with the same PID.
func (p *Process) Clone() (*Process, error) {
	c := &Process{pid: p.pid}
	if !p.Bound() {
		return c, nil
	}

	if err := EnableDebugPrivilege(); err != nil {
		return nil, err
	}

	self := windows.CurrentProcess()
	var dup windows.Handle
	if err := windows.DuplicateHandle(self, p.handle, self, &dup, 0, false, windows.DUPLICATE_SAME_ACCESS); err != nil {
		return nil, opError(ErrDuplicate, "clone", p.pid, "DuplicateHandle", err)
	}

	c.bind(dup, p.pid)
	return c, nil
}

// Close releases the native handle. It is a no-op on an unbound Process
// and always returns nil, so it is safe to defer on any path.
func (p *Process) Close() error {
	if !p.Bound() {
		return nil
	}

	p.cleanup.Stop()
	if err := windows.CloseHandle(p.handle); err != nil {
		log.WithError(err).Debugf("Failed to close handle of pid %d", p.pid)
	}
	p.handle = 0
	return nil
}

// Terminate ends the process with exitCode and then closes p. If the OS
// refuses, p keeps its handle so the caller can retry or inspect it.
func (p *Process) Terminate(exitCode uint32) error {
	if err := windows.TerminateProcess(p.handle, exitCode); err != nil {
		return opError(ErrTerminate, "terminate", p.pid, "TerminateProcess", err)
	}

	log.Debugf("Terminated pid %d with exit code %d", p.pid, exitCode)
	return p.Close()
}

// Wait blocks until the process exits or timeout elapses, and reports
// whether it exited. A zero timeout polls; a negative one waits forever.
func (p *Process) Wait(timeout time.Duration) (bool, error) {
	if !p.Bound() {
		return false, ErrNotOpen
	}

	event, err := windows.WaitForSingleObject(p.handle, milliseconds(timeout))
	if err != nil {
		return false, opError(ErrWait, "wait", p.pid, "WaitForSingleObject", err)
	}
	return event == windows.WAIT_OBJECT_0, nil
}

// ExitCode returns the exit code of the process once it has exited.
// exited is false while it is still running.
func (p *Process) ExitCode() (code uint32, exited bool, err error) {
	exited, err = p.Wait(0)
	if err != nil || !exited {
		return 0, false, err
	}

	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return 0, true, fmt.Errorf("exit code of pid %d: %w", p.pid, err)
	}
	return code, true, nil
}

func (p *Process) bind(h windows.Handle, pid uint32) {
	p.handle = h
	p.pid = pid
	p.cleanup = runtime.AddCleanup(p, closeUnreachable, h)
}

func closeUnreachable(h windows.Handle) {
	_ = windows.CloseHandle(h)
}

func milliseconds(d time.Duration) uint32 {
	switch {
	case d < 0:
		return windows.INFINITE
	case d.Milliseconds() >= math.MaxUint32:
		return windows.INFINITE - 1
	default:
		return uint32(d.Milliseconds())
	}
}
