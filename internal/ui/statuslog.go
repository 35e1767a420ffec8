package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const statusHistorySize = 50

type statusEntry struct {
	at   time.Time
	text string
}

func (e statusEntry) String() string {
	return e.at.Format("15:04:05") + "  " + e.text
}

// statusLog shows the latest message in the status bar and remembers the
// previous ones for the History dialog. Fyne thread only.
type statusLog struct {
	entries []statusEntry
	limit   int
	label   *widget.Label
	history *widget.Button
	now     func() time.Time
}

func newStatusLog(label *widget.Label, history *widget.Button, limit int) *statusLog {
	if limit <= 0 {
		limit = statusHistorySize
	}
	s := &statusLog{limit: limit, label: label, history: history, now: time.Now}
	s.refresh()
	return s
}

// Add records message and shows it.
func (s *statusLog) Add(message string) {
	s.entries = append(s.entries, statusEntry{at: s.now(), text: message})
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = s.entries[over:]
	}
	s.refresh()
}

// Lines returns the remembered messages, newest first.
func (s *statusLog) Lines() []string {
	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[len(s.entries)-1-i] = e.String()
	}
	return lines
}

func (s *statusLog) refresh() {
	if len(s.entries) == 0 {
		s.label.SetText("")
		s.history.Disable()
		return
	}
	s.label.SetText(s.entries[len(s.entries)-1].text)
	s.history.Enable()
}

func (s *statusLog) show(win fyne.Window) {
	lines := s.Lines()
	list := widget.NewList(
		func() int { return len(lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) { obj.(*widget.Label).SetText(lines[id]) },
	)
	d := dialog.NewCustom("Status History", "Close", list, win)
	d.Resize(fyne.NewSize(480, 320))
	d.Show()
}
