package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"proctiller/internal/procinfo"
	"proctiller/pkg/process"
)

func sampleProcs() []process.Info {
	procs := []process.Info{
		{PID: 30, Exe: "svchost.exe"},
		{PID: 4, Exe: "System"},
		{PID: 12, Exe: "Notepad.exe"},
		{PID: 10, Exe: "svchost.exe"},
		{PID: 7, Exe: "explorer.exe"},
	}
	sortByName(procs)
	return procs
}

func TestSortByName(t *testing.T) {
	procs := sampleProcs()

	var pids []uint32
	for _, p := range procs {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []uint32{7, 12, 10, 30, 4}, pids)
}

func TestNextByInitialCycles(t *testing.T) {
	procs := sampleProcs()

	first := nextByInitial(procs, 's', 0)
	assert.Equal(t, 2, first)
	assert.Equal(t, 3, nextByInitial(procs, 'S', first+1))
	assert.Equal(t, 4, nextByInitial(procs, 's', 4))
	assert.Equal(t, 2, nextByInitial(procs, 's', 5))
}

func TestNextByInitialNoMatch(t *testing.T) {
	assert.Equal(t, -1, nextByInitial(sampleProcs(), 'z', 0))
	assert.Equal(t, -1, nextByInitial(nil, 'a', 0))
}

func TestIndexOfPID(t *testing.T) {
	procs := sampleProcs()
	assert.Equal(t, 1, indexOfPID(procs, 12))
	assert.Equal(t, -1, indexOfPID(procs, 99))
}

func TestJoinPIDs(t *testing.T) {
	assert.Equal(t, "4, 10, 30", joinPIDs([]uint32{4, 10, 30}))
	assert.Equal(t, "", joinPIDs(nil))
}

func TestDetailsText(t *testing.T) {
	text := detailsText(procinfo.Details{PID: 12, Name: "[x].exe"}, nil)
	assert.Equal(t, "[#9aa0b2]PID     [-] 12\n[#9aa0b2]Name    [-] [x[].exe", text)

	assert.Equal(t, "[#ff6b6b]gone[-]", detailsText(procinfo.Details{}, errors.New("gone")))
}
