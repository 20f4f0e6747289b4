// Package render provides the incremental keyed list renderer used by the
// page features (library lists, calendar grid).
//
// The central operation is Reconcile, which updates an ordered container of
// rendered fragments to match a new data slice with a minimum of structural
// changes. Fragments are tracked by a stable key: a fragment created for a
// key is reused as long as that key remains in the data, so unchanged rows
// keep their identity (and any transient state attached to them) across
// repaints.
//
// # Components
//
//  1. Container/List: an ordered mutable sequence of fragments supporting
//     append, prepend, insert-after and remove. List is the in-memory
//     implementation and records operation counts for tests and diagnostics.
//
//  2. Reconcile: the diffing algorithm. It reuses fragments by key, drops
//     fragments whose keys disappeared, and fixes ordering with minimal
//     moves. Duplicate keys are a caller bug and fail fast.
//
//  3. Session: an owned registry of per-page containers with a defined
//     mount/unmount lifecycle, replacing any package-level render state.
//
// # Known limitation
//
// A reused fragment keeps its previously rendered markup even when the
// item's payload changed; only key membership and order are diffed. Callers
// that need a visual refresh for an existing key must invalidate the page
// container first. This is deliberate and covered by tests.
package render
