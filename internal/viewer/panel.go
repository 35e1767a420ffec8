package viewer

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"imageviewer/internal/slideshow"

	"github.com/rs/zerolog"
)

const (
	// LabelSlideShow is the slideshow control text while the slideshow is stopped.
	LabelSlideShow = "Slide Show"
	// LabelStop is the slideshow control text while the slideshow is running.
	LabelStop = "Stop"
	// NoPicturesMessage is shown when there is nothing to display.
	NoPicturesMessage = "No pictures"
)

// ErrNoPictures is returned by navigation on an empty picture set.
var ErrNoPictures = errors.New("no pictures loaded")

// Picture is a decoded picture scaled for display.
type Picture struct {
	Path     string
	Name     string
	Image    image.Image
	Original Size
	Scaled   Size
	Taken    string // EXIF capture time, if any
}

// Loader decodes the picture at path and scales it so its longer side is longest.
type Loader interface {
	Load(path string, longest int) (*Picture, error)
}

// Display renders the panel state. Implementations decide which thread the
// widgets are touched on.
type Display interface {
	ShowPicture(pic *Picture)
	ShowEmpty(message string)
	SetSlideshowLabel(label string)
	SetStatus(status string)
}

// Options configures a Panel.
type Options struct {
	MaxSize  int
	Interval time.Duration
	// Resize is called after every load so the hosting window can re-fit.
	Resize func()
	// Schedule hands slideshow ticks to the goroutine that owns the panel.
	// When nil, ticks call NextPicture from the timer goroutine.
	Schedule func(func())
	Logger   zerolog.Logger
}

// Panel owns the picture set, the navigation cursor and the slideshow timer.
// It is not safe for concurrent use: every method must be called from the
// goroutine that owns the panel, and Options.Schedule must deliver ticks there.
type Panel struct {
	set      *PictureSet
	loader   Loader
	display  Display
	timer    *slideshow.Timer
	maxSize  int
	resize   func()
	schedule func(func())
	log      zerolog.Logger
	current  *Picture
}

// NewPanel creates an empty panel with a stopped slideshow.
func NewPanel(loader Loader, display Display, opts Options) *Panel {
	p := &Panel{
		set:      NewPictureSet(nil),
		loader:   loader,
		display:  display,
		timer:    slideshow.NewTimer(opts.Interval),
		maxSize:  opts.MaxSize,
		resize:   opts.Resize,
		schedule: opts.Schedule,
		log:      opts.Logger,
	}
	p.display.SetSlideshowLabel(LabelSlideShow)
	p.display.ShowEmpty(NoPicturesMessage)
	p.display.SetStatus(p.Status())
	return p
}

// LoadImage loads path scaled to the panel's bounding box, shows it with its
// file name and asks the host to re-fit. A picture that cannot be loaded
// leaves the panel in the empty state and the error is returned.
func (p *Panel) LoadImage(path string) error {
	defer p.requestResize()

	pic, err := p.loader.Load(path, p.maxSize)
	if err != nil {
		p.current = nil
		p.display.ShowEmpty(fmt.Sprintf("Unable to load %s", filepath.Base(path)))
		p.display.SetStatus(p.Status())
		p.log.Error().Err(err).Str("path", path).Msg("load picture")
		return fmt.Errorf("load picture '%s': %w", path, err)
	}
	p.current = pic
	p.display.ShowPicture(pic)
	p.display.SetStatus(p.Status())
	p.log.Debug().Str("path", path).Stringer("size", pic.Scaled).Msg("picture shown")
	return nil
}

func (p *Panel) requestResize() {
	if p.resize != nil {
		p.resize()
	}
}

// NextPicture moves to the following picture, wrapping after the last one.
func (p *Panel) NextPicture() error {
	return p.show(p.set.Next())
}

// PreviousPicture moves to the preceding picture, wrapping before the first one.
func (p *Panel) PreviousPicture() error {
	return p.show(p.set.Previous())
}

// FirstPicture jumps to the first picture.
func (p *Panel) FirstPicture() error {
	return p.show(p.set.First())
}

// LastPicture jumps to the last picture.
func (p *Panel) LastPicture() error {
	return p.show(p.set.Last())
}

func (p *Panel) show(path string, ok bool) error {
	if !ok {
		p.display.ShowEmpty(NoPicturesMessage)
		p.display.SetStatus(p.Status())
		return ErrNoPictures
	}
	return p.LoadImage(path)
}

// UpdateImages replaces the picture set, resets the cursor and shows the
// first picture. An empty list leaves the panel in the empty state.
func (p *Panel) UpdateImages(paths []string) error {
	p.set.Reset(paths)
	p.current = nil
	p.log.Info().Int("count", len(paths)).Msg("picture set replaced")
	return p.show(p.set.Current())
}

// OnSlideShow starts a stopped slideshow or stops a running one, relabels the
// control to match and reports whether the slideshow is now running.
func (p *Panel) OnSlideShow() bool {
	running := p.timer.Toggle(p.scheduleTick)
	if running {
		p.display.SetSlideshowLabel(LabelStop)
		p.log.Info().Dur("interval", p.timer.Interval()).Msg("slideshow started")
	} else {
		p.display.SetSlideshowLabel(LabelSlideShow)
		p.log.Info().Msg("slideshow stopped")
	}
	p.display.SetStatus(p.Status())
	return running
}

func (p *Panel) scheduleTick() {
	if p.schedule != nil {
		p.schedule(p.Tick)
		return
	}
	p.Tick()
}

// Tick advances the slideshow by one picture. Ticks that arrive after the
// slideshow was stopped are ignored.
func (p *Panel) Tick() {
	if !p.timer.Running() {
		return
	}
	if err := p.NextPicture(); err != nil {
		p.log.Debug().Err(err).Msg("slideshow tick")
	}
}

// SlideshowRunning reports the slideshow timer state.
func (p *Panel) SlideshowRunning() bool {
	return p.timer.Running()
}

// Index returns the navigation cursor, or -1 when no pictures are loaded.
func (p *Panel) Index() int {
	return p.set.Index()
}

// Len returns the number of pictures in the set.
func (p *Panel) Len() int {
	return p.set.Len()
}

// Current returns the picture on display, or nil.
func (p *Panel) Current() *Picture {
	return p.current
}

// Status summarises the panel for a status bar.
func (p *Panel) Status() string {
	path, ok := p.set.Current()
	status := NoPicturesMessage
	if ok {
		status = fmt.Sprintf("%s  |  Image %d / %d", filepath.Base(path), p.set.Index()+1, p.set.Len())
		if p.current != nil && p.current.Taken != "" {
			status += "  |  Taken " + p.current.Taken
		}
	}
	if p.timer.Running() {
		status += " | Playing"
	} else {
		status += " | Paused"
	}
	return status
}

// Close stops the slideshow.
func (p *Panel) Close() {
	p.timer.Stop()
}
