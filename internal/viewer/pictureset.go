// Package viewer holds the navigation and display logic of the picture panel,
// independent of any windowing toolkit.
package viewer

// PictureSet is an ordered list of picture paths with a wrapping cursor.
// The cursor is always in [0, Len()) while the set is non-empty.
type PictureSet struct {
	paths []string
	index int
}

// NewPictureSet creates a set over a copy of paths with the cursor at 0.
func NewPictureSet(paths []string) *PictureSet {
	ps := &PictureSet{}
	ps.Reset(paths)
	return ps
}

// Reset replaces the paths and moves the cursor back to 0.
func (ps *PictureSet) Reset(paths []string) {
	ps.paths = append([]string(nil), paths...)
	ps.index = 0
}

// Len returns the number of pictures.
func (ps *PictureSet) Len() int {
	return len(ps.paths)
}

// Empty reports whether the set has no pictures.
func (ps *PictureSet) Empty() bool {
	return len(ps.paths) == 0
}

// Index returns the cursor, or -1 for an empty set.
func (ps *PictureSet) Index() int {
	if ps.Empty() {
		return -1
	}
	return ps.index
}

// Current returns the path under the cursor.
func (ps *PictureSet) Current() (string, bool) {
	if ps.Empty() {
		return "", false
	}
	return ps.paths[ps.index], true
}

// Next advances the cursor, wrapping from the last picture to the first.
func (ps *PictureSet) Next() (string, bool) {
	return ps.move(1)
}

// Previous moves the cursor back, wrapping from the first picture to the last.
func (ps *PictureSet) Previous() (string, bool) {
	return ps.move(-1)
}

// First moves the cursor to the first picture.
func (ps *PictureSet) First() (string, bool) {
	if ps.Empty() {
		return "", false
	}
	ps.index = 0
	return ps.paths[ps.index], true
}

// Last moves the cursor to the last picture.
func (ps *PictureSet) Last() (string, bool) {
	if ps.Empty() {
		return "", false
	}
	ps.index = len(ps.paths) - 1
	return ps.paths[ps.index], true
}

func (ps *PictureSet) move(delta int) (string, bool) {
	n := len(ps.paths)
	if n == 0 {
		return "", false
	}
	ps.index = ((ps.index+delta)%n + n) % n
	return ps.paths[ps.index], true
}

// Paths returns a copy of the paths in order.
func (ps *PictureSet) Paths() []string {
	return append([]string(nil), ps.paths...)
}
