//go:build windows

package process

import (
	"sync"

	"golang.org/x/sys/windows"
)

const debugPrivilege = "SeDebugPrivilege"

var elevation struct {
	sync.Mutex
	done bool
}

// EnableDebugPrivilege enables SeDebugPrivilege on the token of the
// calling process. The change is process-wide and is never reverted.
// Once it has succeeded, further calls return nil without touching the
// token. Accounts that do not hold the privilege at all still succeed;
// the token is left as it was.
func EnableDebugPrivilege() error {
	elevation.Lock()
	defer elevation.Unlock()

	if elevation.done {
		return nil
	}
	if err := enableDebugPrivilege(); err != nil {
		return err
	}
	elevation.done = true
	log.Debug("Enabled ", debugPrivilege)
	return nil
}

func enableDebugPrivilege() error {
	const op = "enable debug privilege"

	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token); err != nil {
		return opError(ErrPrivilege, op, 0, "OpenProcessToken", err)
	}
	defer token.Close()

	name, err := windows.UTF16PtrFromString(debugPrivilege)
	if err != nil {
		return opError(ErrPrivilege, op, 0, "UTF16PtrFromString", err)
	}

	privileges := windows.Tokenprivileges{PrivilegeCount: 1}
	if err := windows.LookupPrivilegeValue(nil, name, &privileges.Privileges[0].Luid); err != nil {
		return opError(ErrPrivilege, op, 0, "LookupPrivilegeValue", err)
	}
	privileges.Privileges[0].Attributes = windows.SE_PRIVILEGE_ENABLED

	if err := windows.AdjustTokenPrivileges(token, false, &privileges, 0, nil, nil); err != nil {
		return opError(ErrPrivilege, op, 0, "AdjustTokenPrivileges", err)
	}
	return nil
}
