package process

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// Failure kinds. An *OpError unwraps to exactly one of these.
var (
	ErrPrivilege = errors.New("debug privilege not enabled")
	ErrOpen      = errors.New("process not opened")
	ErrCreate    = errors.New("process not created")
	ErrWait      = errors.New("wait failed")
	ErrTerminate = errors.New("process not terminated")
	ErrDuplicate = errors.New("handle not duplicated")

	// ErrNotOpen is returned by memory accessors on a process with no handle.
	ErrNotOpen = errors.New("process handle is not open")
)

// OpError records a failed OS call together with the operation that made it.
type OpError struct {
	Kind error
	Op   string
	PID  uint32
	Call string
	Err  error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.PID != 0 {
		fmt.Fprintf(&b, " pid %d", e.PID)
	}
	fmt.Fprintf(&b, ": %s: %v", e.Call, e.Err)
	return b.String()
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Code returns the OS error number, or 0 if the cause carries none.
func (e *OpError) Code() uint32 {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return uint32(errno)
	}
	return 0
}

func opError(kind error, op string, pid uint32, call string, err error) error {
	return &OpError{Kind: kind, Op: op, PID: pid, Call: call, Err: err}
}
