package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/tview"

	"proctiller/internal/procinfo"
	"proctiller/pkg/process"
)

// sortByName orders infos by executable name, case-insensitively, then PID.
func sortByName(infos []process.Info) {
	slices.SortFunc(infos, func(a, b process.Info) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Exe), strings.ToLower(b.Exe)),
			cmp.Compare(a.PID, b.PID),
		)
	})
}

// nextByInitial returns the index of the first process at or after start,
// wrapping around, whose name begins with ch. It returns -1 if none does.
func nextByInitial(procs []process.Info, ch rune, start int) int {
	if len(procs) == 0 {
		return -1
	}
	target := string(unicode.ToLower(ch))
	for i := range procs {
		idx := (start + i) % len(procs)
		if strings.HasPrefix(strings.ToLower(procs[idx].Exe), target) {
			return idx
		}
	}
	return -1
}

func indexOfPID(procs []process.Info, pid uint32) int {
	return slices.IndexFunc(procs, func(p process.Info) bool { return p.PID == pid })
}

func joinPIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}

func detailsText(d procinfo.Details, err error) string {
	if err != nil {
		return fmt.Sprintf("[#ff6b6b]%s[-]", tview.Escape(err.Error()))
	}
	var sb strings.Builder
	for _, f := range d.Fields() {
		fmt.Fprintf(&sb, "[#9aa0b2]%-8s[-] %s\n", f.Label, tview.Escape(f.Value))
	}
	return strings.TrimRight(sb.String(), "\n")
}
