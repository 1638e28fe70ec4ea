//go:build windows

package process

import (
	"iter"
	"unsafe"

	"golang.org/x/sys/windows"
)

// List takes a process snapshot and returns all of its entries.
func List() ([]Info, error) {
	processes := make([]Info, 0, 128)
	err := walk(func(info Info) bool {
		processes = append(processes, info)
		return true
	})
	if err != nil {
		return nil, err
	}
	return processes, nil
}

// Processes returns a lazy view of the process list. Each iteration takes
// a fresh snapshot, so the sequence can be ranged over more than once.
// Snapshot errors end the sequence early.
func Processes() iter.Seq[Info] {
	return func(yield func(Info) bool) {
		if err := walk(yield); err != nil {
			log.WithError(err).Debug("Process snapshot ended early")
		}
	}
}

func walk(yield func(Info) bool) error {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snapshot, &entry); err != nil {
		return err
	}

	for {
		info := Info{
			PID:       entry.ProcessID,
			ParentPID: entry.ParentProcessID,
			Exe:       windows.UTF16ToString(entry.ExeFile[:]),
		}
		if !yield(info) {
			return nil
		}

		if err := windows.Process32Next(snapshot, &entry); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				return nil
			}
			return err
		}
	}
}
