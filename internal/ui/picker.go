package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	nativedialog "github.com/sqweek/dialog"
)

// DirectoryPicker asks the user for a folder. done receives the chosen path,
// or ok=false when the prompt was dismissed. Pick and done run on the Fyne thread.
type DirectoryPicker interface {
	Pick(title string, done func(dir string, ok bool, err error))
}

// fynePicker uses the built-in Fyne folder dialog.
type fynePicker struct {
	win fyne.Window
}

func (p fynePicker) Pick(_ string, done func(string, bool, error)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		switch {
		case err != nil:
			done("", false, err)
		case uri == nil:
			done("", false, nil)
		default:
			done(uri.Path(), true, nil)
		}
	}, p.win)
}

// nativePicker uses the operating system folder dialog. Browse blocks until
// the dialog is closed, so it runs off the Fyne thread.
type nativePicker struct{}

func (nativePicker) Pick(title string, done func(string, bool, error)) {
	go func() {
		dir, err := nativedialog.Directory().Title(title).Browse()
		fyne.Do(func() { nativeResult(dir, err, done) })
	}()
}

func nativeResult(dir string, err error, done func(string, bool, error)) {
	switch {
	case errors.Is(err, nativedialog.ErrCancelled):
		done("", false, nil)
	case err != nil:
		done("", false, err)
	case dir == "":
		done("", false, nil)
	default:
		done(dir, true, nil)
	}
}
