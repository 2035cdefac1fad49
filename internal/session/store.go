// Package session holds the single editing session's in-memory state.
package session

import (
	"errors"
	"slices"
	"sync"

	"github.com/veldran/powerdesk/internal/power"
)

// ErrNotLoaded is returned by Get before any list has been loaded.
var ErrNotLoaded = errors.New("power list not loaded, load a file first")

// Store owns at most one current power list. It starts empty, is replaced
// wholesale by load, and is read for display. There is no partial
// mutation API and no versioning; Get and Replace are individually atomic
// but the store gives a read-edit-save caller no isolation.
type Store struct {
	mu     sync.Mutex
	powers []power.Power
	loaded bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the held list, or ErrNotLoaded if nothing has
// been loaded yet. A loaded empty list is not an error.
func (s *Store) Get() ([]power.Power, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return slices.Clone(s.powers), nil
}

// Replace unconditionally overwrites the held list. The input is cloned
// so later caller edits do not reach the store.
func (s *Store) Replace(list []power.Power) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.powers = slices.Clone(list)
	s.loaded = true
}
