package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const maxLogLines = 200

// logBuffer holds the log pane contents. A message equal to the previous one
// replaces the last line with a repeat count.
type logBuffer struct {
	lines     []string
	lastLog   string
	lastCount int
}

func (b *logBuffer) add(msg string) {
	if msg == b.lastLog && len(b.lines) > 0 {
		b.lastCount++
		b.lines[len(b.lines)-1] = collapseMsg(b.lastLog, b.lastCount)
		return
	}
	b.lastLog = msg
	b.lastCount = 1
	b.lines = append(b.lines, msg)
	if len(b.lines) > maxLogLines {
		b.lines = b.lines[len(b.lines)-maxLogLines:]
	}
}

func (b *logBuffer) clear() {
	b.lines = nil
	b.lastLog = ""
	b.lastCount = 0
}

func (b *logBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

func collapseMsg(msg string, count int) string {
	if count <= 1 {
		return msg
	}
	return fmt.Sprintf("%s (x%d)", msg, count)
}

// logQueue is a logrus hook that buffers formatted entries until the UI
// goroutine drains them. Fire never touches the application, so logging
// from inside a queued update cannot deadlock.
type logQueue struct {
	mu      sync.Mutex
	pending []string
}

func (q *logQueue) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (q *logQueue) Fire(entry *logrus.Entry) error {
	line := formatEntry(entry)
	q.mu.Lock()
	q.pending = append(q.pending, line)
	q.mu.Unlock()
	return nil
}

func (q *logQueue) drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func formatEntry(entry *logrus.Entry) string {
	var sb strings.Builder
	switch {
	case entry.Level <= logrus.ErrorLevel:
		sb.WriteString("[#ff6b6b]")
	case entry.Level == logrus.WarnLevel:
		sb.WriteString("[#ffb347]")
	default:
		sb.WriteString("[#9aa0b2]")
	}
	sb.WriteString(entry.Level.String())
	sb.WriteString("[-] ")
	if c, ok := entry.Data["component"]; ok {
		fmt.Fprintf(&sb, "%v: ", c)
	}
	sb.WriteString(tview.Escape(entry.Message))
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		if k == "component" {
			continue
		}
		fmt.Fprintf(&sb, " %s=%s", k, tview.Escape(fmt.Sprint(entry.Data[k])))
	}
	return sb.String()
}
