package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// compactPadding replaces the theme's inner padding so the window hugs the picture.
const compactPadding = 2

// compactTheme wraps an existing theme and tightens the padding.
type compactTheme struct {
	fyne.Theme
}

var _ fyne.Theme = (*compactTheme)(nil)

// Size overrides the padding sizes and defers everything else to the base theme.
func (t *compactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return compactPadding
	}
	return t.Theme.Size(name)
}

// NewCompactTheme creates a compact wrapper around baseTheme.
func NewCompactTheme(baseTheme fyne.Theme) fyne.Theme {
	return &compactTheme{Theme: baseTheme}
}
