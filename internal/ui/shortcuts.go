// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// shortcut pairs a description with the keys shown in the help table.
type shortcut struct {
	description string
	keys        string
}

var shortcuts = []shortcut{
	{"Open Folder", "Ctrl+O"},
	{"Quit Application", "Ctrl+Q or Q"},
	{"Next Picture", "Arrow Right"},
	{"Previous Picture", "Arrow Left"},
	{"First Picture", "Home"},
	{"Last Picture", "End"},
	{"Start / Stop Slide Show", "Space or P"},
	{"Close Dialog", "Esc"},
}

// keyAction maps a typed key to the loop action it triggers.
func keyAction(name fyne.KeyName) (string, bool) {
	switch name {
	case fyne.KeyRight:
		return actionNext, true
	case fyne.KeyLeft:
		return actionPrevious, true
	case fyne.KeyHome:
		return actionFirst, true
	case fyne.KeyEnd:
		return actionLast, true
	case fyne.KeySpace, fyne.KeyP:
		return actionSlideshow, true
	}
	return "", false
}

func (a *App) buildKeyboardShortcuts() {
	c := a.UI.MainWin.Canvas()

	c.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.quit() })

	c.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.onOpenDirectory() })

	c.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if action, ok := keyAction(key.Name); ok {
			a.click(action)()
			return
		}
		switch key.Name {
		case fyne.KeyQ:
			a.quit()
		// close dialogs with esc key
		case fyne.KeyEscape:
			if len(c.Overlays().List()) > 0 {
				c.Overlays().Top().Hide()
			}
		}
	})
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcuts) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			isHeader := id.Row == 0
			switch {
			case isHeader && id.Col == 0:
				label.SetText("Description")
			case isHeader:
				label.SetText("Shortcut")
			case id.Col == 0:
				label.SetText(shortcuts[id.Row-1].description)
			default:
				label.SetText(shortcuts[id.Row-1].keys)
			}
			label.TextStyle.Bold = isHeader
		},
	)
	table.SetColumnWidth(0, 250)
	table.SetColumnWidth(1, 200)
	win.SetContent(table)
	win.Resize(fyne.NewSize(460, 320))
	win.Show()
}
