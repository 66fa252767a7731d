package history

import (
	"sync"

	"github.com/navfold/navfold/core/pathkey"
)

// DefaultInitialPath is reported as the current page before any push.
const DefaultInitialPath = "/"

// Stack is an append-only log of visited paths. It is safe for concurrent
// use.
type Stack struct {
	keyer   *pathkey.Keyer
	locales *pathkey.Locales

	mu      sync.RWMutex
	entries []string
	initial string
}

// Option configures a Stack during construction.
type Option func(*Stack)

// WithInitialPath sets the bootstrap document path reported by Current
// while the stack is still empty.
func WithInitialPath(path string) Option {
	return func(s *Stack) {
		if path != "" {
			s.initial = path
		}
	}
}

// New creates an empty stack. A nil keyer falls back to a default-locale
// Keyer; a nil locales falls back to the keyer's locale set.
func New(keyer *pathkey.Keyer, locales *pathkey.Locales, opts ...Option) *Stack {
	if keyer == nil {
		keyer = pathkey.NewKeyer(locales)
	}
	if locales == nil {
		locales = keyer.Locales()
	}

	s := &Stack{
		keyer:   keyer,
		locales: locales,
		initial: DefaultInitialPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push appends raw to the stack unless its normalized form equals the
// normalized top entry. It reports whether an entry was appended.
func (s *Stack) Push(raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.entries); n > 0 && s.keyer.Normalize(s.entries[n-1]) == s.keyer.Normalize(raw) {
		return false
	}
	s.entries = append(s.entries, raw)
	return true
}

// Current returns the normalized top entry, or the normalized initial
// document path while the stack is empty.
func (s *Stack) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n := len(s.entries); n > 0 {
		return s.keyer.Normalize(s.entries[n-1])
	}
	return s.keyer.Normalize(s.initial)
}

// Previous returns the normalized second-from-top entry. It reports false
// when fewer than two pages have been visited.
func (s *Stack) Previous() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n := len(s.entries); n > 1 {
		return s.keyer.Normalize(s.entries[n-2]), true
	}
	return "", false
}

// CurrentLocale returns the explicit locale of the current page, when its
// first segment is an alternate locale.
func (s *Stack) CurrentLocale() (string, bool) {
	return s.locales.FromPath(s.Current())
}

// PreviousLocale returns the explicit locale of the previous page.
func (s *Stack) PreviousLocale() (string, bool) {
	prev, ok := s.Previous()
	if !ok {
		return "", false
	}
	return s.locales.FromPath(prev)
}

// Len returns the number of recorded entries.
func (s *Stack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
