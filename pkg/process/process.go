package process

import (
	"iter"
	"strings"
)

// Info is one entry of a process snapshot.
type Info struct {
	PID       uint32
	ParentPID uint32
	Exe       string
}

// lastByName scans the whole sequence and keeps the last entry whose
// executable name equals name, ignoring case.
func lastByName(seq iter.Seq[Info], name string) uint32 {
	name = strings.ToLower(name)
	var pid uint32
	for info := range seq {
		if strings.ToLower(info.Exe) == name {
			pid = info.PID
		}
	}
	return pid
}

func appendByName(dst []uint32, seq iter.Seq[Info], name string) ([]uint32, int) {
	name = strings.ToLower(name)
	before := len(dst)
	for info := range seq {
		if strings.ToLower(info.Exe) == name {
			dst = append(dst, info.PID)
		}
	}
	return dst, len(dst) - before
}

func appendAll(dst []uint32, seq iter.Seq[Info]) ([]uint32, int) {
	before := len(dst)
	for info := range seq {
		dst = append(dst, info.PID)
	}
	return dst, len(dst) - before
}

// commandLine quotes path and appends args, the form CreateProcess expects
// for its mutable command line argument.
func commandLine(path, args string) string {
	quoted := `"` + path + `"`
	if args == "" {
		return quoted
	}
	return quoted + " " + args
}
