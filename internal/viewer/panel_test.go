package viewer

import (
	"errors"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	sizes map[string]Size
	calls []string
}

func (f *fakeLoader) Load(path string, longest int) (*Picture, error) {
	f.calls = append(f.calls, path)
	src, ok := f.sizes[path]
	if !ok {
		return nil, errors.New("unsupported format")
	}
	scaled := FitLongest(src, longest)
	return &Picture{
		Path:     path,
		Name:     filepath.Base(path),
		Image:    image.NewRGBA(image.Rect(0, 0, scaled.Width, scaled.Height)),
		Original: src,
		Scaled:   scaled,
	}, nil
}

type fakeDisplay struct {
	shown   []string
	empty   string
	label   string
	status  string
	lastPic *Picture
}

func (d *fakeDisplay) ShowPicture(pic *Picture) {
	d.shown = append(d.shown, pic.Name)
	d.lastPic = pic
	d.empty = ""
}

func (d *fakeDisplay) ShowEmpty(message string) {
	d.empty = message
	d.lastPic = nil
}

func (d *fakeDisplay) SetSlideshowLabel(label string) { d.label = label }
func (d *fakeDisplay) SetStatus(status string)        { d.status = status }

func newTestPanel(t *testing.T, paths ...string) (*Panel, *fakeLoader, *fakeDisplay, *int) {
	t.Helper()
	loader := &fakeLoader{sizes: map[string]Size{}}
	for _, p := range paths {
		loader.sizes[p] = Size{Width: 400, Height: 300}
	}
	display := &fakeDisplay{}
	resizes := 0
	panel := NewPanel(loader, display, Options{
		MaxSize:  200,
		Interval: time.Hour,
		Resize:   func() { resizes++ },
	})
	t.Cleanup(panel.Close)
	return panel, loader, display, &resizes
}

func TestNewPanelStartsEmpty(t *testing.T) {
	panel, _, display, _ := newTestPanel(t)
	assert.Equal(t, LabelSlideShow, display.label)
	assert.Equal(t, NoPicturesMessage, display.empty)
	assert.Equal(t, -1, panel.Index())
	assert.Contains(t, display.status, NoPicturesMessage)
}

func TestUpdateImagesShowsFirst(t *testing.T) {
	panel, loader, display, resizes := newTestPanel(t, "/p/a.jpg", "/p/b.jpg", "/p/c.jpg")

	require.NoError(t, panel.UpdateImages([]string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}))
	require.NoError(t, panel.NextPicture())
	require.NoError(t, panel.UpdateImages([]string{"/p/c.jpg", "/p/a.jpg"}))

	assert.Equal(t, 0, panel.Index())
	assert.Equal(t, 2, panel.Len())
	assert.Equal(t, "c.jpg", display.lastPic.Name)
	assert.Equal(t, []string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}, loader.calls)
	assert.Equal(t, 3, *resizes)
	assert.Equal(t, "c.jpg  |  Image 1 / 2 | Paused", display.status)
}

func TestLoadImageScalesToMaxSize(t *testing.T) {
	panel, _, display, resizes := newTestPanel(t, "/p/wide.jpg")

	require.NoError(t, panel.LoadImage("/p/wide.jpg"))
	require.NotNil(t, display.lastPic)
	assert.Equal(t, Size{Width: 200, Height: 150}, display.lastPic.Scaled)
	assert.Equal(t, "wide.jpg", display.lastPic.Name)
	assert.Equal(t, 1, *resizes)
	assert.Same(t, display.lastPic, panel.Current())
}

func TestNavigationWraps(t *testing.T) {
	paths := []string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}
	panel, _, display, _ := newTestPanel(t, paths...)
	require.NoError(t, panel.UpdateImages(paths))

	require.NoError(t, panel.PreviousPicture())
	assert.Equal(t, 2, panel.Index())
	assert.Equal(t, "c.jpg", display.lastPic.Name)

	for i := 0; i < len(paths); i++ {
		require.NoError(t, panel.NextPicture())
	}
	assert.Equal(t, 2, panel.Index())

	require.NoError(t, panel.FirstPicture())
	assert.Equal(t, 0, panel.Index())
	require.NoError(t, panel.LastPicture())
	assert.Equal(t, 2, panel.Index())
}

func TestEmptySetNavigationDoesNotPanic(t *testing.T) {
	panel, loader, display, _ := newTestPanel(t)

	assert.ErrorIs(t, panel.UpdateImages(nil), ErrNoPictures)
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, panel.NextPicture(), ErrNoPictures)
		assert.ErrorIs(t, panel.PreviousPicture(), ErrNoPictures)
	})
	assert.Equal(t, NoPicturesMessage, display.empty)
	assert.Equal(t, -1, panel.Index())
	assert.Empty(t, loader.calls)
}

func TestLoadFailureShowsEmptyState(t *testing.T) {
	panel, _, display, resizes := newTestPanel(t, "/p/a.jpg")

	err := panel.UpdateImages([]string{"/p/broken.jpg", "/p/a.jpg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.jpg")
	assert.Equal(t, "Unable to load broken.jpg", display.empty)
	assert.Nil(t, panel.Current())
	assert.Equal(t, 1, *resizes)

	require.NoError(t, panel.NextPicture())
	assert.Equal(t, "a.jpg", display.lastPic.Name)
}

func TestSlideshowToggleTwice(t *testing.T) {
	panel, _, display, _ := newTestPanel(t)

	assert.True(t, panel.OnSlideShow())
	assert.Equal(t, LabelStop, display.label)
	assert.True(t, panel.SlideshowRunning())
	assert.Contains(t, display.status, "Playing")

	assert.False(t, panel.OnSlideShow())
	assert.Equal(t, LabelSlideShow, display.label)
	assert.False(t, panel.SlideshowRunning())
	assert.Contains(t, display.status, "Paused")
}

func TestTickAdvancesOnlyWhileRunning(t *testing.T) {
	paths := []string{"/p/a.jpg", "/p/b.jpg"}
	panel, _, _, _ := newTestPanel(t, paths...)
	require.NoError(t, panel.UpdateImages(paths))

	panel.Tick()
	assert.Equal(t, 0, panel.Index(), "stopped slideshow ignores ticks")

	panel.OnSlideShow()
	panel.Tick()
	assert.Equal(t, 1, panel.Index())
	panel.Tick()
	assert.Equal(t, 0, panel.Index())
}

func TestSlideshowSchedulesTicks(t *testing.T) {
	paths := []string{"/p/a.jpg", "/p/b.jpg"}
	loader := &fakeLoader{sizes: map[string]Size{"/p/a.jpg": {10, 10}, "/p/b.jpg": {10, 10}}}
	ticks := make(chan func(), 8)
	panel := NewPanel(loader, &fakeDisplay{}, Options{
		MaxSize:  100,
		Interval: 5 * time.Millisecond,
		Schedule: func(fn func()) {
			select {
			case ticks <- fn:
			default:
			}
		},
	})
	defer panel.Close()
	require.NoError(t, panel.UpdateImages(paths))

	panel.OnSlideShow()
	select {
	case tick := <-ticks:
		tick()
	case <-time.After(time.Second):
		t.Fatal("no tick scheduled")
	}
	assert.Equal(t, 1, panel.Index())
}
