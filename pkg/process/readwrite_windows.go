//go:build windows

package process

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Scalar is a fixed-size value that can be copied to and from the memory
// of another process in native byte order.
type Scalar interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64 | ~uintptr
}

// Read reads a T at addr in the memory of p.
func Read[T Scalar](p *Process, addr uintptr) (T, error) {
	var v T
	if err := p.readExact(addr, bytesOf(&v)); err != nil {
		return 0, err
	}
	return v, nil
}

// Write stores v at addr in the memory of p.
func Write[T Scalar](p *Process, addr uintptr, v T) error {
	return p.writeExact(addr, bytesOf(&v))
}

// WriteAndRead stores v at addr and reads it back.
func WriteAndRead[T Scalar](p *Process, addr uintptr, v T) (T, error) {
	if err := Write(p, addr, v); err != nil {
		return 0, err
	}
	return Read[T](p, addr)
}

// ReadPointer reads a pointer-sized value at addr.
func (p *Process) ReadPointer(addr uintptr) (uintptr, error) {
	return Read[uintptr](p, addr)
}

func bytesOf[T Scalar](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

func (p *Process) readExact(addr uintptr, buf []byte) error {
	if !p.Bound() {
		return ErrNotOpen
	}
	var read uintptr
	if err := windows.ReadProcessMemory(p.handle, addr, &buf[0], uintptr(len(buf)), &read); err != nil {
		return fmt.Errorf("read 0x%X in pid %d: %w", addr, p.pid, err)
	}
	if read != uintptr(len(buf)) {
		return fmt.Errorf("short read at 0x%X: %d of %d bytes", addr, read, len(buf))
	}
	return nil
}

func (p *Process) writeExact(addr uintptr, buf []byte) error {
	if !p.Bound() {
		return ErrNotOpen
	}
	var written uintptr
	if err := windows.WriteProcessMemory(p.handle, addr, &buf[0], uintptr(len(buf)), &written); err != nil {
		return fmt.Errorf("write 0x%X in pid %d: %w", addr, p.pid, err)
	}
	if written != uintptr(len(buf)) {
		return fmt.Errorf("short write at 0x%X: %d of %d bytes", addr, written, len(buf))
	}
	return nil
}
