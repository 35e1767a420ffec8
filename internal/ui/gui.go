package ui

import (
	"runtime"

	"imageviewer/internal/eventloop"
	"imageviewer/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// onOpenDirectory prompts for a folder and posts the result to the loop.
func (a *App) onOpenDirectory() {
	a.picker.Pick("Choose a directory", func(dir string, ok bool, err error) {
		switch {
		case err != nil:
			a.log.Error().Err(err).Msg("directory prompt")
			dialog.ShowError(err, a.UI.MainWin)
		case !ok:
			a.post(eventloop.Event{Kind: eventloop.DirectoryCancelled})
		default:
			a.post(eventloop.Event{Kind: eventloop.DirectoryChosen, Path: dir})
		}
	})
}

func (a *App) buildToolbar() *widget.Toolbar {
	a.UI.toolBar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.onOpenDirectory),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaFastRewindIcon(), a.click(actionFirst)),
		widget.NewToolbarAction(theme.NavigateBackIcon(), a.click(actionPrevious)),
		widget.NewToolbarAction(theme.MediaPlayIcon(), a.click(actionSlideshow)),
		widget.NewToolbarAction(theme.NavigateNextIcon(), a.click(actionNext)),
		widget.NewToolbarAction(theme.MediaFastForwardIcon(), a.click(actionLast)),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), a.showAbout),
	)
	return a.UI.toolBar
}

// buildPanel lays out the picture, its name and the navigation buttons.
func (a *App) buildPanel() fyne.CanvasObject {
	maxSize := float32(a.cfg.MaxSize())
	a.UI.image = &canvas.Image{}
	a.UI.image.FillMode = canvas.ImageFillContain
	a.UI.image.SetMinSize(fyne.NewSize(maxSize, maxSize))

	a.UI.nameLabel = widget.NewLabel("")
	a.UI.nameLabel.Alignment = fyne.TextAlignCenter

	a.UI.prevBtn = widget.NewButton("Previous", a.click(actionPrevious))
	a.UI.slideBtn = widget.NewButton(viewer.LabelSlideShow, a.click(actionSlideshow))
	a.UI.nextBtn = widget.NewButton("Next", a.click(actionNext))

	buttons := container.NewHBox(
		layout.NewSpacer(),
		a.UI.prevBtn,
		a.UI.slideBtn,
		a.UI.nextBtn,
		layout.NewSpacer(),
	)
	return container.NewVBox(
		container.NewCenter(a.UI.image),
		a.UI.nameLabel,
		buttons,
	)
}

func (a *App) buildStatusBar() fyne.CanvasObject {
	a.UI.statusPathLabel = widget.NewLabel(viewer.NoPicturesMessage)
	a.UI.statusPathLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusLogLabel = widget.NewLabel("")
	a.UI.statusLogLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusHistoryBtn = widget.NewButtonWithIcon("", theme.HistoryIcon(), func() {
		a.statusLog.show(a.UI.MainWin)
	})
	a.statusLog = newStatusLog(a.UI.statusLogLabel, a.UI.statusHistoryBtn, statusHistorySize)

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, a.UI.statusHistoryBtn,
			container.NewGridWithColumns(2, a.UI.statusPathLabel, a.UI.statusLogLabel),
		),
	)
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	a.UI.recentMenu = fyne.NewMenu("Recent")
	recentItem := fyne.NewMenuItem("Recent Folders", nil)
	recentItem.ChildMenu = a.UI.recentMenu

	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open Folder...", a.onOpenDirectory),
			recentItem,
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Previous Picture", a.click(actionPrevious)),
			fyne.NewMenuItem("Next Picture", a.click(actionNext)),
			fyne.NewMenuItem("First Picture", a.click(actionFirst)),
			fyne.NewMenuItem("Last Picture", a.click(actionLast)),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Slide Show", a.click(actionSlideshow)),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
			fyne.NewMenuItem("About", a.showAbout),
		),
	)
}

// setRecentItems rebuilds the Recent submenu. Fyne thread only.
func (a *App) setRecentItems(dirs []string) {
	if a.UI.recentMenu == nil {
		return
	}
	items := make([]*fyne.MenuItem, 0, len(dirs)+2)
	for _, dir := range dirs {
		items = append(items, fyne.NewMenuItem(dir, func() {
			a.post(eventloop.Event{Kind: eventloop.DirectoryChosen, Path: dir})
		}))
	}
	if len(items) == 0 {
		empty := fyne.NewMenuItem("(none)", nil)
		empty.Disabled = true
		items = append(items, empty)
	} else {
		items = append(items,
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Clear Recent", func() { a.do(a.clearRecent) }),
		)
	}
	a.UI.recentMenu.Items = items
	if a.UI.mainMenu != nil {
		a.UI.mainMenu.Refresh()
	}
}

func (a *App) buildMainUI() fyne.CanvasObject {
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}
	toolbar := a.buildToolbar()
	panel := a.buildPanel()
	status := a.buildStatusBar()

	if a.UI.MainWin != nil {
		a.UI.MainWin.SetMaster()
		a.UI.mainMenu = a.buildMainMenu()
		a.UI.MainWin.SetMainMenu(a.UI.mainMenu)
		a.setRecentItems(nil)
		a.buildKeyboardShortcuts()
	}

	return container.NewBorder(
		toolbar, // Top
		status,  // Bottom
		nil,
		nil,
		panel,
	)
}
