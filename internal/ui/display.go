package ui

import (
	"imageviewer/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// panelDisplay renders viewer.Panel state into Fyne widgets. The panel runs on
// the event loop goroutine, so every widget change is handed to do, which is
// fyne.Do in the application.
type panelDisplay struct {
	image     *canvas.Image
	nameLabel *widget.Label
	slideBtn  *widget.Button
	status    *widget.Label
	emptySize fyne.Size
	do        func(func())
}

var _ viewer.Display = (*panelDisplay)(nil)

func newPanelDisplay(img *canvas.Image, name *widget.Label, slideBtn *widget.Button, status *widget.Label, maxSize int, do func(func())) *panelDisplay {
	if do == nil {
		do = fyne.Do
	}
	return &panelDisplay{
		image:     img,
		nameLabel: name,
		slideBtn:  slideBtn,
		status:    status,
		emptySize: fyne.NewSize(float32(maxSize), float32(maxSize)),
		do:        do,
	}
}

func (d *panelDisplay) ShowPicture(pic *viewer.Picture) {
	d.do(func() {
		d.image.Image = pic.Image
		d.image.SetMinSize(fyne.NewSize(float32(pic.Scaled.Width), float32(pic.Scaled.Height)))
		d.image.Refresh()
		d.nameLabel.SetText(pic.Name)
	})
}

func (d *panelDisplay) ShowEmpty(message string) {
	d.do(func() {
		d.image.Image = nil
		d.image.SetMinSize(d.emptySize)
		d.image.Refresh()
		d.nameLabel.SetText(message)
	})
}

func (d *panelDisplay) SetSlideshowLabel(label string) {
	d.do(func() {
		d.slideBtn.SetText(label)
	})
}

func (d *panelDisplay) SetStatus(status string) {
	if d.status == nil {
		return
	}
	d.do(func() {
		d.status.SetText(status)
	})
}
