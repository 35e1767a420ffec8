// Package ui  Setup for the image viewer application
package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"imageviewer/internal/config"
	"imageviewer/internal/eventloop"
	"imageviewer/internal/logging"
	"imageviewer/internal/recent"
	"imageviewer/internal/scan"
	"imageviewer/internal/service"
	"imageviewer/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	appID       = "com.github.imageviewer"
	windowTitle = "Image Viewer"

	shutdownTimeout = 2 * time.Second
)

// UI holds the widgets of the main window.
type UI struct {
	MainWin    fyne.Window
	mainModKey fyne.KeyModifier
	mainMenu   *fyne.MainMenu
	recentMenu *fyne.Menu
	toolBar    *widget.Toolbar

	image     *canvas.Image
	nameLabel *widget.Label
	prevBtn   *widget.Button
	slideBtn  *widget.Button
	nextBtn   *widget.Button

	statusPathLabel  *widget.Label
	statusLogLabel   *widget.Label
	statusHistoryBtn *widget.Button
}

// App represents the whole application with all its windows, widgets and functions.
// Panel state is owned by the event loop goroutine; Fyne callbacks only post events.
type App struct {
	app fyne.App
	UI  UI

	cfg      *config.Config
	log      zerolog.Logger
	loop     *eventloop.Loop
	cancel   context.CancelFunc
	stopOnce sync.Once

	// owned by the loop goroutine
	panel      *viewer.Panel
	recent     *recent.Store
	folderPath string

	picker    DirectoryPicker
	statusLog *statusLog
	status    logging.LoggerFunc
}

// CreateApplication is the GUI entrypoint. A non-empty startDir is opened as
// soon as the window is up.
func CreateApplication(cfg *config.Config, logger zerolog.Logger, startDir string) error {
	a := app.NewWithID(appID)
	a.Settings().SetTheme(NewCompactTheme(a.Settings().Theme()))

	ui := newApp(a, cfg, logger)

	store, err := recent.Open(cfg.RecentDB, cfg.RecentCapacity, logging.Component(logger, "recent"))
	if err != nil {
		// the viewer works without the recent list
		logger.Warn().Err(err).Msg("recent folders disabled")
	} else {
		ui.recent = store
	}

	ui.UI.MainWin = a.NewWindow(windowTitle)
	ui.UI.MainWin.SetContent(ui.buildMainUI())
	ui.UI.MainWin.SetCloseIntercept(func() {
		ui.quit()
	})
	if cfg.NativeDialog {
		ui.picker = nativePicker{}
	} else {
		ui.picker = fynePicker{win: ui.UI.MainWin}
	}

	ui.runLoop()
	ui.startPanel(startDir)

	ui.UI.MainWin.CenterOnScreen()
	ui.UI.MainWin.ShowAndRun()
	return nil
}

func newApp(a fyne.App, cfg *config.Config, logger zerolog.Logger) *App {
	ui := &App{
		app: a,
		cfg: cfg,
		log: logging.Component(logger, "frame"),
	}
	ui.loop = eventloop.New(eventloop.DefaultQueueSize, logging.Component(logger, "loop"))
	ui.status = logging.Tee(logging.Component(logger, "status"), func(msg string) {
		fyne.Do(func() { ui.addLogMessage(msg) })
	})
	ui.registerHandlers()
	return ui
}

// runLoop starts the event loop goroutine. shutdown stops it.
func (a *App) runLoop() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go func() {
		if err := a.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error().Err(err).Msg("event loop stopped")
		}
	}()
}

// startPanel creates the panel on the loop goroutine.
func (a *App) startPanel(startDir string) {
	a.do(func() {
		display := newPanelDisplay(a.UI.image, a.UI.nameLabel, a.UI.slideBtn, a.UI.statusPathLabel, a.cfg.MaxSize(), nil)
		a.panel = viewer.NewPanel(service.NewImageService(), display, viewer.Options{
			MaxSize:  a.cfg.MaxSize(),
			Interval: a.cfg.Interval,
			Resize:   func() { a.post(eventloop.Event{Kind: eventloop.Resize}) },
			Schedule: func(tick func()) { a.post(eventloop.Event{Kind: eventloop.Tick, Fn: tick}) },
			Logger:   logging.Component(a.log, "panel"),
		})
		a.publishRecent()
		if startDir != "" {
			a.openDirectory(startDir)
		}
	})
}

func (a *App) registerHandlers() {
	a.loop.Handle(eventloop.Click, a.onClick)
	a.loop.Handle(eventloop.Tick, func(ev eventloop.Event) {
		if ev.Fn != nil {
			ev.Fn()
		}
	})
	a.loop.Handle(eventloop.DirectoryChosen, func(ev eventloop.Event) {
		a.openDirectory(ev.Path)
	})
	a.loop.Handle(eventloop.DirectoryCancelled, func(eventloop.Event) {
		// keep the current pictures
		a.log.Debug().Msg("open directory cancelled")
	})
	a.loop.Handle(eventloop.Resize, func(eventloop.Event) {
		fyne.Do(a.resizeFrame)
	})
}

// post queues an event, logging when the loop cannot take it.
func (a *App) post(ev eventloop.Event) {
	if err := a.loop.Post(ev); err != nil {
		a.log.Warn().Err(err).Stringer("kind", ev.Kind).Str("name", ev.Name).Msg("event not queued")
	}
}

func (a *App) do(fn func()) {
	a.post(eventloop.Event{Kind: eventloop.Call, Fn: fn})
}

func (a *App) click(name string) func() {
	return func() { a.post(eventloop.Event{Kind: eventloop.Click, Name: name}) }
}

const (
	actionPrevious  = "previous"
	actionNext      = "next"
	actionFirst     = "first"
	actionLast      = "last"
	actionSlideshow = "slideshow"
)

func (a *App) onClick(ev eventloop.Event) {
	if a.panel == nil {
		return
	}
	var err error
	switch ev.Name {
	case actionPrevious:
		err = a.panel.PreviousPicture()
	case actionNext:
		err = a.panel.NextPicture()
	case actionFirst:
		err = a.panel.FirstPicture()
	case actionLast:
		err = a.panel.LastPicture()
	case actionSlideshow:
		if a.panel.OnSlideShow() {
			a.statusf("Slideshow started, every %s", a.cfg.Interval)
		} else {
			a.statusf("Slideshow stopped")
		}
	default:
		a.log.Warn().Str("name", ev.Name).Msg("unknown action")
	}
	switch {
	case errors.Is(err, viewer.ErrNoPictures):
		a.statusf("No pictures loaded. Open a folder first.")
	case err != nil:
		a.statusf("%v", err)
	}
}

// openDirectory lists the pictures of dir and hands them to the panel.
// Runs on the loop goroutine.
func (a *App) openDirectory(dir string) {
	abs, err := filepath.Abs(dir)
	if err == nil {
		dir = abs
	}
	items, err := scan.Directory(dir, a.cfg.Pattern)
	if err != nil {
		a.log.Error().Err(err).Str("dir", dir).Msg("open directory")
		fyne.Do(func() { dialog.ShowError(err, a.UI.MainWin) })
		return
	}
	a.folderPath = dir
	a.log.Info().Str("dir", dir).Int("count", len(items)).Msg("directory opened")
	a.statusf("Loaded %d pictures from %s", len(items), dir)
	fyne.Do(func() { a.UI.MainWin.SetTitle(fmt.Sprintf("%s - %s", windowTitle, filepath.Base(dir))) })

	if a.recent != nil {
		if err := a.recent.Add(dir); err != nil {
			a.log.Warn().Err(err).Msg("save recent folder")
		}
		a.publishRecent()
	}
	if err := a.panel.UpdateImages(items.Paths()); err != nil && !errors.Is(err, viewer.ErrNoPictures) {
		a.statusf("%v", err)
	}
}

// clearRecent forgets the recent folders. Runs on the loop goroutine.
func (a *App) clearRecent() {
	if a.recent == nil {
		return
	}
	if err := a.recent.Clear(); err != nil {
		a.log.Warn().Err(err).Msg("clear recent folders")
	}
	a.publishRecent()
}

// publishRecent copies the recent list to the Recent menu.
func (a *App) publishRecent() {
	var dirs []string
	if a.recent != nil {
		dirs = a.recent.List()
	}
	fyne.Do(func() { a.setRecentItems(dirs) })
}

// statusf adds a message to the status bar log from any goroutine.
func (a *App) statusf(format string, args ...interface{}) {
	a.status(fmt.Sprintf(format, args...))
}

// addLogMessage shows a message in the status bar. Fyne thread only.
func (a *App) addLogMessage(message string) {
	if a.statusLog != nil {
		a.statusLog.Add(message)
	}
}

// resizeFrame re-fits the window to its content. Fyne thread only.
func (a *App) resizeFrame() {
	if a.UI.MainWin == nil || a.UI.MainWin.Content() == nil {
		return
	}
	a.UI.MainWin.Resize(a.UI.MainWin.Content().MinSize())
}

// quit releases resources and closes the main window, which ends the app.
func (a *App) quit() {
	a.shutdown()
	if a.UI.MainWin != nil {
		a.UI.MainWin.Close()
		return
	}
	a.app.Quit()
}

// shutdown stops the slideshow and the event loop and closes the database.
// Only the first call does anything.
func (a *App) shutdown() {
	a.stopOnce.Do(func() {
		if a.cancel == nil {
			return
		}
		a.log.Info().Msg("shutting down")
		err := a.loop.Do(func() {
			a.release()
			a.cancel()
		})
		if err != nil {
			a.log.Warn().Err(err).Msg("releasing after the event loop stops")
			a.cancel()
		}
		select {
		case <-a.loop.Done():
			if err != nil {
				// the loop has exited, nothing else touches the panel
				a.release()
			}
		case <-time.After(shutdownTimeout):
			a.log.Warn().Msg("event loop did not stop in time")
		}
	})
}

// release stops the slideshow and closes the recent folders store.
func (a *App) release() {
	if a.panel != nil {
		a.panel.Close()
	}
	if a.recent != nil {
		if err := a.recent.Close(); err != nil {
			a.log.Error().Err(err).Msg("close recent folders")
		}
		a.recent = nil
	}
}
