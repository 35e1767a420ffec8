// Package recent remembers the folders most recently opened in the viewer.
package recent

// List is a most-recently-used list of folder paths, newest first.
type List struct {
	items    []string
	capacity int
}

// NewList creates an empty List. If capacity is 0, nothing is remembered.
// Negative capacity is treated as 0.
func NewList(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	return &List{
		items:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Add puts dir at the front, removing an earlier occurrence and trimming the
// oldest entries beyond capacity.
func (l *List) Add(dir string) {
	if l.capacity == 0 || dir == "" {
		return
	}
	l.Remove(dir)
	l.items = append([]string{dir}, l.items...)
	if len(l.items) > l.capacity {
		l.items = l.items[:l.capacity]
	}
}

// Remove drops dir from the list.
func (l *List) Remove(dir string) {
	kept := l.items[:0]
	for _, item := range l.items {
		if item != dir {
			kept = append(kept, item)
		}
	}
	l.items = kept
}

// Items returns a copy of the list, newest first.
func (l *List) Items() []string {
	return append([]string(nil), l.items...)
}

// Len returns the number of remembered folders.
func (l *List) Len() int {
	return len(l.items)
}

// Clear forgets every folder.
func (l *List) Clear() {
	l.items = l.items[:0]
}
