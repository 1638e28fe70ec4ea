//go:build windows

// Package tui is an interactive process browser. It holds at most one
// process handle at a time, which can be opened from the process table,
// replaced by a launch, terminated or closed.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"proctiller/internal/config"
	"proctiller/internal/procinfo"
	"proctiller/pkg/process"
)

type ui struct {
	ctx   context.Context
	app   *tview.Application
	cfg   *config.Config
	queue *logQueue

	procs   []process.Info
	table   *tview.Table
	details *tview.TextView
	logView *tview.TextView
	status  *tview.TextView
	root    tview.Primitive
	modal   bool

	held        *process.Process
	selectedPID uint32
	selectedExe string
	detailSeq   int

	lines         logBuffer
	lastNavRune   rune
	spinnerIdx    int
	spinnerFrames []string
}

// Run shows the process browser until the user quits or ctx is cancelled.
// While it runs, standard logger output is routed into the log pane.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logrus.StandardLogger()
	queue := &logQueue{}
	prevHooks := logger.ReplaceHooks(make(logrus.LevelHooks))
	prevOut := logger.Out
	logger.AddHook(queue)
	logger.SetOutput(io.Discard)
	defer func() {
		logger.ReplaceHooks(prevHooks)
		logger.SetOutput(prevOut)
	}()

	app := tview.NewApplication()
	u := newUI(ctx, app, cfg, queue)
	defer func() { _ = u.held.Close() }()

	stop := context.AfterFunc(ctx, app.Stop)
	defer stop()
	go u.refreshLoop(ctx)

	return app.SetRoot(u.root, true).EnableMouse(true).Run()
}

func newUI(ctx context.Context, app *tview.Application, cfg *config.Config, queue *logQueue) *ui {
	u := &ui{
		ctx:           ctx,
		app:           app,
		cfg:           cfg,
		queue:         queue,
		held:          process.New(),
		spinnerFrames: []string{"-", "\\", "|", "/"},
	}

	u.table = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	applyTableTheme(u.table)
	u.table.SetTitle(" Processes (Enter=open) ").SetBorder(true)
	u.table.SetSelectionChangedFunc(func(row, _ int) {
		u.updateSelection(row)
	})
	u.table.SetSelectedFunc(func(row, _ int) {
		u.updateSelection(row)
		u.openSelected()
	})

	u.details = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	u.details.SetBorder(true).SetTitle(" Details ")
	applyTextTheme(u.details)

	u.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	u.logView.SetBorder(true).SetTitle(" Log (c=clear) ")
	applyTextTheme(u.logView)

	u.status = tview.NewTextView().
		SetScrollable(false).
		SetWrap(false)
	u.status.SetBackgroundColor(uiTheme.headerBg)
	u.status.SetTextColor(uiTheme.accent)

	u.root = u.layout()
	u.showWelcome()
	u.loadProcesses()
	u.bindKeys()
	u.updateStatus(false, "")

	return u
}

func (u *ui) layout() tview.Primitive {
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.details, 0, 1, false).
		AddItem(u.logView, 0, 2, false)

	content := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(u.table, 40, 0, true).
		AddItem(right, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(u.status, 1, 0, false)
}

func (u *ui) bindKeys() {
	u.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if u.modal {
			return event
		}
		switch event.Key() {
		case tcell.KeyCtrlR:
			u.loadProcesses()
		case tcell.KeyCtrlX:
			u.closeHeld()
		case tcell.KeyCtrlT:
			u.terminateHeld()
		case tcell.KeyCtrlF:
			u.selectForeground()
		case tcell.KeyCtrlN:
			u.showLaunchForm()
		case tcell.KeyCtrlP:
			u.showPeekForm()
		default:
			return event
		}
		return nil
	})

	u.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight:
			u.app.SetFocus(u.logView)
			return nil
		case tcell.KeyRune:
			switch r := event.Rune(); {
			case r == '/':
				u.showFindForm()
				return nil
			case unicode.IsLetter(r):
				u.quickNavigate(r)
				return nil
			}
		}
		return event
	})

	u.logView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft {
			u.app.SetFocus(u.table)
			return nil
		}
		switch event.Rune() {
		case 'c', 'C':
			u.clearLog()
			return nil
		}
		return event
	})
}

func (u *ui) loadProcesses() {
	infos, err := process.List()
	if err != nil {
		u.logErr("load processes", err)
		infos = nil
	}
	sortByName(infos)
	u.procs = infos
	u.populateTable()
}

func (u *ui) populateTable() {
	prev := u.selectedPID

	u.table.Clear()
	u.table.SetCell(0, 0, header("PID"))
	u.table.SetCell(0, 1, header("Name"))
	for i, p := range u.procs {
		row := i + 1
		u.table.SetCell(row, 0, bodyCell(fmt.Sprintf("%d", p.PID), row))
		u.table.SetCell(row, 1, bodyCell(p.Exe, row))
	}

	if len(u.procs) == 0 {
		u.updateSelection(0)
		return
	}
	idx := max(indexOfPID(u.procs, prev), 0)
	u.table.Select(idx+1, 0)
	u.updateSelection(idx + 1)
}

func (u *ui) updateSelection(row int) {
	if row <= 0 || row-1 >= len(u.procs) {
		u.selectedPID = 0
		u.selectedExe = ""
		u.detailSeq++
		u.details.SetText("")
		u.updateStatus(false, "")
		return
	}
	p := u.procs[row-1]
	if p.PID != u.selectedPID || p.Exe != u.selectedExe {
		u.selectedPID = p.PID
		u.selectedExe = p.Exe
		u.describe(p.PID)
	}
	u.updateStatus(false, "")
}

// describe fills the details pane off the UI goroutine. Results for a
// selection that has since changed are dropped.
func (u *ui) describe(pid uint32) {
	u.detailSeq++
	seq := u.detailSeq
	go func() {
		d, err := procinfo.Describe(u.ctx, pid)
		if u.ctx.Err() != nil {
			return
		}
		u.app.QueueUpdateDraw(func() {
			if seq != u.detailSeq {
				return
			}
			u.details.SetText(detailsText(d, err))
			u.details.ScrollToBeginning()
		})
	}()
}

// selectPID moves the table selection to pid, reloading the list once if
// the process is not in it yet.
func (u *ui) selectPID(pid uint32) bool {
	idx := indexOfPID(u.procs, pid)
	if idx < 0 {
		u.loadProcesses()
		idx = indexOfPID(u.procs, pid)
	}
	if idx < 0 {
		return false
	}
	u.table.Select(idx+1, 0)
	u.updateSelection(idx + 1)
	return true
}

func (u *ui) quickNavigate(ch rune) {
	target := unicode.ToLower(ch)
	start := 0
	if target == u.lastNavRune {
		if row, _ := u.table.GetSelection(); row > 0 {
			start = row
		}
	}

	idx := nextByInitial(u.procs, target, start)
	if idx < 0 {
		u.lastNavRune = 0
		return
	}
	u.table.Select(idx+1, 0)
	u.updateSelection(idx + 1)
	u.lastNavRune = target
}

func (u *ui) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(u.cfg.UI.Refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.app.QueueUpdateDraw(u.tick)
		}
	}
}

// tick flushes hooked log entries and checks whether the held process has
// exited.
func (u *ui) tick() {
	for _, line := range u.queue.drain() {
		u.logf("%s", line)
	}

	if !u.held.Bound() {
		u.updateStatus(false, "")
		return
	}
	pid := u.held.PID()
	exited, err := u.held.Wait(0)
	if err != nil {
		u.logErr("wait", err)
		u.updateStatus(false, fmt.Sprintf("PID %d wait failed", pid))
		return
	}
	if !exited {
		u.updateStatus(true, "")
		return
	}

	if code, _, err := u.held.ExitCode(); err != nil {
		u.logErr("exit code", err)
	} else {
		u.logf("[#ffb347]pid %d exited with code %d[-]", pid, code)
	}
	_ = u.held.Close()
	u.updateStatus(false, "")
}

func (u *ui) logf(format string, args ...any) {
	u.lines.add(fmt.Sprintf(format, args...))
	u.logView.SetText(u.lines.String())
	u.logView.ScrollToEnd()
}

func (u *ui) logErr(what string, err error) {
	u.logf("[#ff6b6b]%s: %s[-]", tview.Escape(what), tview.Escape(err.Error()))
}

func (u *ui) clearLog() {
	u.lines.clear()
	u.logView.SetText("")
}

func (u *ui) showWelcome() {
	for _, line := range []string{
		"[lightgreen]Welcome to proctiller!",
		"[lightcyan]Select a process and press Enter to hold a handle on it.",
		"[lightcyan]Ctrl-T terminates it, Ctrl-X closes the handle, Ctrl-N launches a new process.",
		"[lightcyan]Ctrl-F selects the foreground window's process, / finds one by name.",
	} {
		u.lines.add(line)
	}
	u.logView.SetText(u.lines.String())
}

func (u *ui) spinnerNext() string {
	if len(u.spinnerFrames) == 0 {
		return ""
	}
	frame := u.spinnerFrames[u.spinnerIdx%len(u.spinnerFrames)]
	u.spinnerIdx = (u.spinnerIdx + 1) % len(u.spinnerFrames)
	return frame
}

func (u *ui) updateStatus(active bool, warn string) {
	color := uiTheme.accent
	selected := "No process selected"
	if u.selectedPID != 0 {
		selected = fmt.Sprintf("PID %d %s", u.selectedPID, u.selectedExe)
	}
	held := "no handle"
	if u.held.Bound() {
		spin := ""
		if active {
			spin = u.spinnerNext() + " "
		}
		held = fmt.Sprintf("%sholding PID %d (0x%X)", spin, u.held.PID(), uintptr(u.held.Handle()))
	}

	text := fmt.Sprintf(" %s | %s", selected, held)
	if warn != "" {
		text = " " + warn
		color = uiTheme.danger
	}
	u.status.SetTextColor(color)
	u.status.SetText(text)
}
