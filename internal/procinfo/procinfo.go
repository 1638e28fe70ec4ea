// Package procinfo describes a running process for display purposes.
package procinfo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Details holds what could be learned about a process. Anything the OS
// refused to report is left at its zero value.
type Details struct {
	PID       uint32
	ParentPID uint32
	Name      string
	Exe       string
	Cmdline   string
	User      string
	Threads   int32
	Handles   int32
	RSS       uint64
	Started   time.Time
}

// Describe collects the details of pid. It fails only if the process does
// not exist.
func Describe(ctx context.Context, pid uint32) (Details, error) {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return Details{}, fmt.Errorf("describe pid %d: %w", pid, err)
	}

	d := Details{PID: pid}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		d.ParentPID = uint32(ppid)
	}
	d.Name, _ = p.NameWithContext(ctx)
	d.Exe, _ = p.ExeWithContext(ctx)
	d.Cmdline, _ = p.CmdlineWithContext(ctx)
	d.User, _ = p.UsernameWithContext(ctx)
	d.Threads, _ = p.NumThreadsWithContext(ctx)
	// On Windows this is the handle count.
	d.Handles, _ = p.NumFDsWithContext(ctx)
	if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
		d.RSS = mem.RSS
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil && ms > 0 {
		d.Started = time.UnixMilli(ms)
	}
	return d, nil
}

// Field is one labelled line of a rendered Details.
type Field struct {
	Label string
	Value string
}

// Fields renders d as ordered label/value pairs, skipping unknown values.
func (d Details) Fields() []Field {
	fields := []Field{{"PID", strconv.FormatUint(uint64(d.PID), 10)}}
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, Field{label, value})
		}
	}

	if d.ParentPID != 0 {
		add("Parent", strconv.FormatUint(uint64(d.ParentPID), 10))
	}
	add("Name", d.Name)
	add("Image", d.Exe)
	add("Command", d.Cmdline)
	add("User", d.User)
	if d.Threads > 0 {
		add("Threads", strconv.Itoa(int(d.Threads)))
	}
	if d.Handles > 0 {
		add("Handles", strconv.Itoa(int(d.Handles)))
	}
	if d.RSS > 0 {
		add("Memory", formatBytes(d.RSS))
	}
	if !d.Started.IsZero() {
		add("Started", d.Started.Format(time.DateTime))
	}
	return fields
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
