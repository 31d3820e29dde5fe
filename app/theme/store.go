package theme

import (
	"sync"

	"github.com/joefazee/atlas/internal/session"
)

// Store owns the current theme selection. Set is the only way to change it.
type Store struct {
	mu      sync.RWMutex
	current Name
}

// NewStore creates a store starting at initial, or the default theme when
// initial is not a known theme.
func NewStore(initial Name) *Store {
	if _, ok := styles[initial]; !ok {
		initial = Default
	}
	return &Store{current: initial}
}

// FromSession rebuilds the store from the visitor's saved selection
func FromSession(s *session.Session) *Store {
	n, err := Parse(s.State.Theme)
	if err != nil {
		n = Default
	}
	return NewStore(n)
}

// Current returns the selected theme
func (s *Store) Current() Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Style returns the presentation properties of the selected theme
func (s *Store) Style() Style {
	return s.Current().Style()
}

// Set selects the theme called name. Unknown names leave the selection unchanged.
func (s *Store) Set(name string) error {
	n, err := Parse(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = n
	s.mu.Unlock()
	return nil
}

// Save writes the selection back into the session
func (s *Store) Save(sess *session.Session) {
	sess.State.Theme = string(s.Current())
}
