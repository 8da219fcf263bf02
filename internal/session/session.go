// Package session owns the UI-facing state: the current snapshot and
// the active query inputs. The query engine itself stays stateless;
// this is the one place "current document / filter / view" lives.
package session

import (
	"errors"
	"sync"

	"github.com/clearlane/waitboard/backend/internal/category"
	"github.com/clearlane/waitboard/backend/internal/query"
	"github.com/clearlane/waitboard/backend/internal/snapshot"
)

// ErrNotLoaded signals that no document has been fetched yet. Callers
// must present this as a distinct "data not loaded" state, not as "no
// results found".
var ErrNotLoaded = errors.New("session: document not loaded")

// Session holds one page view's state. The document is replace-only:
// a refresh swaps in a wholly new snapshot, never a partial update.
type Session struct {
	mu       sync.RWMutex
	document *snapshot.Document
	params   query.Params
}

// New returns an empty session starting in the waitlist view.
func New() *Session {
	return &Session{params: query.Params{View: query.ViewWaitlist}}
}

// Replace atomically swaps in a freshly fetched document.
func (s *Session) Replace(document *snapshot.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = document
}

// Loaded reports whether a document is available to query.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document != nil
}

// SetQuery updates the free-text query input.
func (s *Session) SetQuery(rawQuery string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Query = rawQuery
}

// SetCategory updates the category filter; empty clears it.
func (s *Session) SetCategory(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.CategoryKey = key
}

// SetView switches between the waitlist and available views.
func (s *Session) SetView(view query.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.View = view
}

// Params returns a copy of the active query inputs.
func (s *Session) Params() query.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Search runs the active query against the current document. It fails
// with ErrNotLoaded before the first successful fetch.
func (s *Session) Search() (query.Result, error) {
	s.mu.RLock()
	document := s.document
	params := s.params
	s.mu.RUnlock()

	if document == nil {
		return query.Result{}, ErrNotLoaded
	}
	return query.Search(document, params), nil
}

// Categories returns the taxonomy entries present in the current
// document, in declared table order, for populating filter controls.
func (s *Session) Categories() ([]category.Category, error) {
	s.mu.RLock()
	document := s.document
	s.mu.RUnlock()

	if document == nil {
		return nil, ErrNotLoaded
	}

	names := document.ClassNames()
	for _, entry := range document.ClassesWithOpenings {
		names = append(names, entry.Name)
	}
	return category.PresentIn(names), nil
}
