package render

import "sync"

// Session owns the render containers for a set of pages. Features create a
// session when a page surface is mounted and discard it when the surface
// goes away; there is no package-level render state.
//
// A session is safe for use from concurrent request handlers, but a single
// container must not be reconciled reentrantly: the mutex covers registry
// access, and callers own a container exclusively for the duration of one
// Reconcile call.
type Session struct {
	mu         sync.Mutex
	containers map[string]*List
}

// NewSession creates an empty render session.
func NewSession() *Session {
	return &Session{containers: make(map[string]*List)}
}

// Container returns the container for the named page, creating it on first
// use. The same name always yields the same container for the lifetime of
// the session, which is what lets Reconcile preserve fragment identity
// across repaints.
func (s *Session) Container(page string) *List {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[page]
	if !ok {
		c = NewList()
		s.containers[page] = c
	}
	return c
}

// Invalidate discards the container for the named page. The next repaint
// renders every fragment from scratch. Used when item payloads changed in
// place and reuse-by-key would show stale markup.
func (s *Session) Invalidate(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.containers, page)
}

// InvalidateAll discards every container in the session. Used when shared
// derivation inputs changed (a period marker, the cycle configuration) and
// any mounted page may hold stale markup.
func (s *Session) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containers = make(map[string]*List)
}

// Pages returns the number of mounted page containers.
func (s *Session) Pages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.containers)
}
