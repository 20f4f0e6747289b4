package render

import "fmt"

// Reconcile updates the container so that its children match items, in order,
// keyed by keyOf. Fragments whose key already exists in the container are
// reused as-is (their markup is NOT regenerated); fragments for new keys are
// produced by renderOf; fragments whose key is absent from items are removed.
// Ordering is fixed with a minimal number of moves: runs that are already
// contiguous and correctly ordered are left untouched.
//
// If items is empty, all children are discarded and a single unkeyed
// empty-state fragment built from empty is inserted instead.
//
// Duplicate keys in items and a nil fragment from renderOf are programming
// errors and fail fast.
func Reconcile[T any](c Container, items []T, keyOf func(T) string, renderOf func(T) *Fragment, empty string) error {
	// Empty fast path: full replace, prior fragments lose their identity.
	if len(items) == 0 {
		for _, f := range c.Children() {
			c.Remove(f)
		}
		c.Append(NewFragment(empty))
		return nil
	}

	// Index existing keyed children. Unkeyed children were not produced by
	// this algorithm and are dropped.
	existing := make(map[string]*Fragment)
	for _, f := range c.Children() {
		if f.key == "" {
			c.Remove(f)
			continue
		}
		existing[f.key] = f
	}

	// Resolve each item to a fragment: reuse by key or render fresh.
	desired := make([]*Fragment, 0, len(items))
	used := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := keyOf(item)
		if _, dup := used[key]; dup {
			return fmt.Errorf("duplicate key %q in item list", key)
		}
		used[key] = struct{}{}

		if f, ok := existing[key]; ok {
			desired = append(desired, f)
			continue
		}
		f := renderOf(item)
		if f == nil {
			return fmt.Errorf("renderer returned no fragment for key %q", key)
		}
		f.key = key
		desired = append(desired, f)
	}

	// Drop fragments whose keys disappeared.
	for key, f := range existing {
		if _, ok := used[key]; !ok {
			c.Remove(f)
		}
	}

	// Ordering pass: walk the desired list alongside the live children and
	// relocate only fragments that are out of place relative to their
	// predecessor. New fragments are not yet attached, so this same step
	// inserts them at their final position.
	var prev *Fragment
	for _, f := range desired {
		if childAfter(c, prev) != f {
			c.Remove(f)
			if prev == nil {
				c.Prepend(f)
			} else {
				c.InsertAfter(prev, f)
			}
		}
		prev = f
	}

	return nil
}

// childAfter returns the child immediately following ref, or the first child
// when ref is nil. Returns nil when no such child exists.
func childAfter(c Container, ref *Fragment) *Fragment {
	children := c.Children()
	if ref == nil {
		if len(children) == 0 {
			return nil
		}
		return children[0]
	}
	for i, f := range children {
		if f == ref {
			if i+1 < len(children) {
				return children[i+1]
			}
			return nil
		}
	}
	return nil
}
