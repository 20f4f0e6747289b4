package render

import "strings"

// Fragment is a single rendered list element. It is owned by exactly one
// container position at a time and is associated with at most one key.
type Fragment struct {
	key  string
	html string
}

// NewFragment creates an unkeyed fragment from a single-root markup string.
// Reconcile assigns the key when the fragment enters a container.
func NewFragment(html string) *Fragment {
	return &Fragment{html: html}
}

// Key returns the stable key this fragment is tracked under, or "" if the
// fragment is unkeyed (e.g. an empty-state placeholder).
func (f *Fragment) Key() string {
	return f.key
}

// HTML returns the fragment's rendered markup.
func (f *Fragment) HTML() string {
	return f.html
}

// Container is an ordered mutable sequence of fragments. It mirrors the
// operations of a DOM-like child list; Reconcile is its only intended writer.
type Container interface {
	// Children returns the fragments in display order.
	Children() []*Fragment
	// Append adds a fragment at the end.
	Append(f *Fragment)
	// Prepend adds a fragment at the front.
	Prepend(f *Fragment)
	// InsertAfter inserts a fragment immediately after ref.
	// If ref is not a child, the fragment is appended.
	InsertAfter(ref, f *Fragment)
	// Remove detaches a fragment. Removing a non-child is a no-op.
	Remove(f *Fragment)
}

// Stats counts structural operations applied to a List. Tests use it to
// assert that an unchanged repaint performs zero work.
type Stats struct {
	Appends  int
	Prepends int
	Inserts  int
	Removes  int
}

// Total returns the total number of structural operations.
func (s Stats) Total() int {
	return s.Appends + s.Prepends + s.Inserts + s.Removes
}

// List is the in-memory Container implementation.
type List struct {
	children []*Fragment
	stats    Stats
}

// NewList creates an empty container.
func NewList() *List {
	return &List{}
}

// Children returns the fragments in display order.
func (l *List) Children() []*Fragment {
	out := make([]*Fragment, len(l.children))
	copy(out, l.children)
	return out
}

// Len returns the number of fragments in the container.
func (l *List) Len() int {
	return len(l.children)
}

// Append adds a fragment at the end.
func (l *List) Append(f *Fragment) {
	l.children = append(l.children, f)
	l.stats.Appends++
}

// Prepend adds a fragment at the front.
func (l *List) Prepend(f *Fragment) {
	l.children = append([]*Fragment{f}, l.children...)
	l.stats.Prepends++
}

// InsertAfter inserts a fragment immediately after ref, or appends if ref
// is not a child.
func (l *List) InsertAfter(ref, f *Fragment) {
	idx := l.indexOf(ref)
	if idx < 0 {
		l.children = append(l.children, f)
		l.stats.Inserts++
		return
	}
	l.children = append(l.children, nil)
	copy(l.children[idx+2:], l.children[idx+1:])
	l.children[idx+1] = f
	l.stats.Inserts++
}

// Remove detaches a fragment. Removing a non-child is a no-op and is not
// counted.
func (l *List) Remove(f *Fragment) {
	idx := l.indexOf(f)
	if idx < 0 {
		return
	}
	l.children = append(l.children[:idx], l.children[idx+1:]...)
	l.stats.Removes++
}

// Stats returns the operation counters accumulated since the last reset.
func (l *List) Stats() Stats {
	return l.stats
}

// ResetStats clears the operation counters.
func (l *List) ResetStats() {
	l.stats = Stats{}
}

// HTML concatenates the markup of all children in display order.
func (l *List) HTML() string {
	var b strings.Builder
	for _, f := range l.children {
		b.WriteString(f.html)
	}
	return b.String()
}

func (l *List) indexOf(f *Fragment) int {
	for i, c := range l.children {
		if c == f {
			return i
		}
	}
	return -1
}
