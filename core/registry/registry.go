package registry

import (
	"strings"
	"sync"

	"github.com/navfold/navfold/core/pathkey"
)

// Registry stores handlers keyed by a (primary, secondary) path pair and
// resolves lookups with most-specific-first wildcard fallback.
type Registry[H any] struct {
	keyer   *pathkey.Keyer
	mu      sync.RWMutex
	entries map[string]map[string]H
}

// New creates an empty registry keyed through the given Keyer. A nil keyer
// falls back to a default-locale Keyer.
func New[H any](keyer *pathkey.Keyer) *Registry[H] {
	if keyer == nil {
		keyer = pathkey.NewKeyer(nil)
	}
	return &Registry[H]{
		keyer:   keyer,
		entries: make(map[string]map[string]H),
	}
}

// Register stores handler under the normalized (primary, secondary) pair.
// An empty secondary defaults to the universal wildcard. Registering the
// same pair twice overwrites the earlier handler.
func (r *Registry[H]) Register(primary, secondary string, handler H) {
	p := r.keyer.NormalizeStripLocale(primary)
	s := pathkey.Universal
	if secondary != "" {
		s = r.keyer.NormalizeStripLocale(secondary)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.entries[p]
	if !ok {
		sub = make(map[string]H)
		r.entries[p] = sub
	}
	sub[s] = handler
}

// Lookup resolves the handler for the normalized (primary, secondary) pair,
// widening wildcards as documented on the package. An empty secondary is
// the universal wildcard. The second return value reports whether a handler
// was found; a miss is not an error.
func (r *Registry[H]) Lookup(primary, secondary string) (H, bool) {
	p := r.keyer.NormalizeStripLocale(primary)
	s := pathkey.Universal
	if secondary != "" {
		s = r.keyer.NormalizeStripLocale(secondary)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolve(p, s)
}

// resolve walks the fallback chain. The secondary key is generalized within
// a primary branch before the primary itself is generalized; once the
// secondary chain under a branch is exhausted at the universal wildcard,
// that branch yields nothing. The universal primary is terminal, so the
// recursion is bounded by the segment counts of both keys.
func (r *Registry[H]) resolve(primary, secondary string) (H, bool) {
	var zero H

	sub, ok := r.branch(primary)
	if !ok {
		if primary == pathkey.Universal {
			return zero, false
		}
		return r.resolve(r.keyer.ClosestWildcard(primary), secondary)
	}

	if h, ok := r.fromBranch(sub, secondary); ok {
		return h, true
	}
	if secondary == pathkey.Universal {
		return zero, false
	}

	if h, ok := r.resolve(primary, r.keyer.ClosestWildcard(secondary)); ok {
		return h, true
	}
	if primary == pathkey.Universal {
		return zero, false
	}
	return r.resolve(r.keyer.ClosestWildcard(primary), secondary)
}

// branch finds the secondary map for a primary candidate. A wildcard
// candidate also matches an entry registered at its base path, so a handler
// registered for "/about/" serves "/about/contact/" once generalization
// reaches "/about/*".
func (r *Registry[H]) branch(primary string) (map[string]H, bool) {
	if sub, ok := r.entries[primary]; ok {
		return sub, true
	}
	if base, ok := r.wildcardBase(primary); ok {
		if sub, ok := r.entries[base]; ok {
			return sub, true
		}
	}
	return nil, false
}

// fromBranch resolves a secondary candidate within one primary branch,
// with the same wildcard-to-base fallback as branch.
func (r *Registry[H]) fromBranch(sub map[string]H, secondary string) (H, bool) {
	if h, ok := sub[secondary]; ok {
		return h, true
	}
	if base, ok := r.wildcardBase(secondary); ok {
		if h, ok := sub[base]; ok {
			return h, true
		}
	}
	var zero H
	return zero, false
}

func (r *Registry[H]) wildcardBase(path string) (string, bool) {
	if !strings.HasSuffix(path, "*") {
		return "", false
	}
	return r.keyer.Normalize(strings.TrimSuffix(path, "*")), true
}

// Len returns the number of registered (primary, secondary) pairs.
func (r *Registry[H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, sub := range r.entries {
		n += len(sub)
	}
	return n
}
