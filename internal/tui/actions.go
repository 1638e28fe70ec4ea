//go:build windows

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rivo/tview"

	"proctiller/pkg/process"
)

func (u *ui) openSelected() {
	pid := u.selectedPID
	if pid == 0 {
		u.logf("select a process first")
		return
	}
	if err := u.held.Open(pid); err != nil {
		u.logErr(fmt.Sprintf("open pid %d", pid), err)
		u.updateStatus(false, "")
		return
	}
	u.logf("[#2fb4ad]opened pid %d (%s)[-]", pid, tview.Escape(u.selectedExe))
	u.updateStatus(true, "")
}

func (u *ui) closeHeld() {
	if !u.held.Bound() {
		u.logf("no handle held")
		return
	}
	pid := u.held.PID()
	_ = u.held.Close()
	u.logf("closed handle on pid %d", pid)
	u.updateStatus(false, "")
}

func (u *ui) terminateHeld() {
	if !u.held.Bound() {
		u.logf("open a process before terminating it")
		return
	}
	pid, code := u.held.PID(), u.cfg.Kill.ExitCode
	if err := u.held.Terminate(code); err != nil {
		u.logErr(fmt.Sprintf("terminate pid %d", pid), err)
		return
	}
	u.logf("[#ffb347]terminated pid %d with code %d[-]", pid, code)
	u.loadProcesses()
}

func (u *ui) selectForeground() {
	pid, ok := process.ByForegroundWindow()
	if !ok {
		u.logf("no foreground window")
		return
	}
	if !u.selectPID(pid) {
		u.logf("foreground pid %d is not in the process list", pid)
		return
	}
	u.app.SetFocus(u.table)
}

func (u *ui) find(name string, all bool) {
	if !all {
		pid, ok := process.ByExecutableName(name)
		if !ok {
			u.logf("no process named %s", tview.Escape(name))
			return
		}
		u.selectPID(pid)
		u.logf("%s is pid %d", tview.Escape(name), pid)
		return
	}

	ids, n := process.AllByExecutableName(nil, name)
	if n == 0 {
		u.logf("no process named %s", tview.Escape(name))
		return
	}
	u.logf("%d x %s: %s", n, tview.Escape(name), joinPIDs(ids))
	u.selectPID(ids[n-1])
}

// launch creates the process off the UI goroutine, since opts may ask to
// wait for it. The new instance replaces the held one once it is bound.
func (u *ui) launch(opts process.CreateOptions) {
	u.logf("launching %s", tview.Escape(opts.Path))
	go func() {
		p := process.New()
		pid, err := p.CreateAndOpen(opts)
		if u.ctx.Err() != nil {
			_ = p.Close()
			return
		}
		u.app.QueueUpdateDraw(func() {
			u.launched(p, pid, err, opts.Path)
		})
	}()
}

func (u *ui) launched(p *process.Process, pid uint32, err error, path string) {
	if !p.Bound() {
		u.logErr("launch "+path, err)
		return
	}
	if err != nil {
		u.logErr(fmt.Sprintf("launched pid %d", pid), err)
	}
	_ = u.held.Close()
	u.held = p
	u.logf("[#2fb4ad]launched pid %d[-]", pid)
	u.selectPID(pid)
	u.updateStatus(true, "")
}

func (u *ui) peek(addr uintptr) {
	if !u.held.Bound() {
		u.logf("open a process before reading its memory")
		return
	}
	v, err := u.held.ReadPointer(addr)
	if err != nil {
		u.logErr(fmt.Sprintf("read 0x%X", addr), err)
		return
	}
	u.logf("pid %d: 0x%X -> 0x%X", u.held.PID(), addr, v)
}

func (u *ui) showModal(form *tview.Form, height int) {
	applyFormTheme(form)
	form.SetButtonsAlign(tview.AlignLeft)
	form.SetCancelFunc(u.dismissModal)
	u.modal = true
	u.app.SetRoot(centered(form, 60, height), true)
	u.app.SetFocus(form)
}

func (u *ui) dismissModal() {
	u.modal = false
	u.app.SetRoot(u.root, true)
	u.app.SetFocus(u.table)
}

func (u *ui) showFindForm() {
	name := tview.NewInputField().
		SetLabel("Executable ").
		SetPlaceholder("notepad.exe")
	all := tview.NewCheckbox().
		SetLabel("All matches ")

	form := tview.NewForm().
		AddFormItem(name).
		AddFormItem(all)
	form.AddButton("Find", func() {
		exe := strings.TrimSpace(name.GetText())
		if exe == "" {
			name.SetLabel("Executable (required) ")
			return
		}
		u.dismissModal()
		u.find(exe, all.IsChecked())
	})
	form.AddButton("Cancel", u.dismissModal)
	form.SetBorder(true).SetTitle(" Find by name ")
	u.showModal(form, 9)
}

func (u *ui) showLaunchForm() {
	defaults := u.cfg.Launch
	path := tview.NewInputField().
		SetLabel("Path ").
		SetPlaceholder(`C:\Windows\System32\notepad.exe`)
	args := tview.NewInputField().
		SetLabel("Arguments ")
	dir := tview.NewInputField().
		SetLabel("Directory ").
		SetText(defaults.Dir)
	suspended := tview.NewCheckbox().
		SetLabel("Suspended ").
		SetChecked(defaults.Suspended)
	wait := tview.NewInputField().
		SetLabel("Wait ").
		SetPlaceholder("0s")
	if defaults.Timeout != 0 {
		wait.SetText(defaults.Timeout.String())
	}

	form := tview.NewForm().
		AddFormItem(path).
		AddFormItem(args).
		AddFormItem(dir).
		AddFormItem(suspended).
		AddFormItem(wait)
	form.AddButton("Launch", func() {
		opts, err := launchOptions(path.GetText(), args.GetText(), dir.GetText(), wait.GetText())
		if err != nil {
			form.SetTitle(fmt.Sprintf(" Launch: %v ", err))
			return
		}
		opts.Suspended = suspended.IsChecked()
		u.dismissModal()
		u.launch(opts)
	})
	form.AddButton("Cancel", u.dismissModal)
	form.SetBorder(true).SetTitle(" Launch ")
	u.showModal(form, 15)
}

func launchOptions(path, args, dir, wait string) (process.CreateOptions, error) {
	opts := process.CreateOptions{
		Path: strings.TrimSpace(path),
		Args: strings.TrimSpace(args),
		Dir:  strings.TrimSpace(dir),
	}
	if opts.Path == "" {
		return opts, errors.New("path is required")
	}
	if wait = strings.TrimSpace(wait); wait != "" {
		d, err := time.ParseDuration(wait)
		if err != nil {
			return opts, fmt.Errorf("invalid wait %q", wait)
		}
		opts.Timeout = d
	}
	return opts, nil
}

func (u *ui) showPeekForm() {
	addr := tview.NewInputField().
		SetLabel("Address ").
		SetPlaceholder("0x7ff6a1b20000")

	form := tview.NewForm().
		AddFormItem(addr)
	form.AddButton("Read", func() {
		a, err := strconv.ParseUint(strings.TrimSpace(addr.GetText()), 0, 64)
		if err != nil {
			addr.SetLabel("Address (invalid) ")
			return
		}
		u.dismissModal()
		u.peek(uintptr(a))
	})
	form.AddButton("Cancel", u.dismissModal)
	form.SetBorder(true).SetTitle(" Read pointer ")
	u.showModal(form, 7)
}
