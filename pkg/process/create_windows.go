//go:build windows

package process

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// CreateOptions describes a process to launch.
type CreateOptions struct {
	// Path of the executable image.
	Path string
	// Args is appended verbatim after the quoted Path.
	Args string
	// Dir is the working directory. Empty inherits ours.
	Dir string
	// Suspended leaves the primary thread suspended.
	Suspended bool
	// Timeout bounds the wait for the primary thread after creation.
	// Zero skips the wait, negative waits forever. Expiry is not an error.
	Timeout time.Duration
}

// Create launches a process and returns a Process bound to it. On any
// error the handle is released and nil is returned; a process that was
// created before a wait failure keeps running.
func Create(opts CreateOptions) (*Process, error) {
	p := New()
	if _, err := p.CreateAndOpen(opts); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

// CreateAndOpen releases any handle held by p, enables the debug
// privilege, launches the process described by opts and binds p to it.
// It returns the new pid.
//
// If the optional wait fails, p stays bound to the new process and an
// error of kind ErrWait is returned together with the pid.
func (p *Process) CreateAndOpen(opts CreateOptions) (uint32, error) {
	const op = "create"

	_ = p.Close()

	if err := EnableDebugPrivilege(); err != nil {
		return 0, err
	}

	app, err := windows.UTF16PtrFromString(opts.Path)
	if err != nil {
		return 0, opError(ErrCreate, op, 0, "UTF16PtrFromString", err)
	}
	cmdline, err := windows.UTF16FromString(commandLine(opts.Path, opts.Args))
	if err != nil {
		return 0, opError(ErrCreate, op, 0, "UTF16FromString", err)
	}
	var dir *uint16
	if opts.Dir != "" {
		if dir, err = windows.UTF16PtrFromString(opts.Dir); err != nil {
			return 0, opError(ErrCreate, op, 0, "UTF16PtrFromString", err)
		}
	}

	flags := uint32(windows.CREATE_DEFAULT_ERROR_MODE)
	if opts.Suspended {
		flags = windows.CREATE_SUSPENDED
	}

	startup := windows.StartupInfo{Cb: uint32(unsafe.Sizeof(windows.StartupInfo{}))}
	var info windows.ProcessInformation
	if err := windows.CreateProcess(app, &cmdline[0], nil, nil, false, flags, nil, dir, &startup, &info); err != nil {
		return 0, opError(ErrCreate, op, 0, "CreateProcess", err)
	}
	defer windows.CloseHandle(info.Thread)

	p.bind(info.Process, info.ProcessId)
	log.WithField("suspended", opts.Suspended).Debugf("Created pid %d from %s", info.ProcessId, opts.Path)

	if opts.Timeout != 0 {
		if _, err := windows.WaitForSingleObject(info.Thread, milliseconds(opts.Timeout)); err != nil {
			return info.ProcessId, opError(ErrWait, op, info.ProcessId, "WaitForSingleObject", err)
		}
	}

	return info.ProcessId, nil
}
