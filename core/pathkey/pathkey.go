package pathkey

import "strings"

// Universal is the wildcard path that matches every page. It is the terminal
// of the ClosestWildcard chain and generalizes to itself.
const Universal = "/*"

// Keyer normalizes paths into canonical registry keys. It is immutable and
// safe for concurrent use.
type Keyer struct {
	locales *Locales
}

// NewKeyer creates a Keyer bound to the given locale set. A nil locales
// argument yields a set containing only DefaultLocale.
func NewKeyer(locales *Locales) *Keyer {
	if locales == nil {
		locales, _ = NewLocales()
	}
	return &Keyer{locales: locales}
}

// Locales returns the locale set the Keyer was built with.
func (k *Keyer) Locales() *Locales {
	return k.locales
}

// Normalize returns the canonical form of path: one leading slash, no empty
// segments, and a trailing slash unless the path ends in '*'. The empty
// string and bare separators collapse to "/". Normalize is idempotent.
func (k *Keyer) Normalize(path string) string {
	return k.normalize(path, false)
}

// NormalizeStripLocale normalizes path and drops a leading alternate-locale
// segment, so locale-prefixed and bare paths produce the same key. The
// default locale is never stripped.
func (k *Keyer) NormalizeStripLocale(path string) string {
	return k.normalize(path, true)
}

func (k *Keyer) normalize(path string, stripLocale bool) string {
	segs := splitSegments(path)

	if stripLocale && len(segs) > 0 && k.locales.IsAlternate(segs[0]) {
		segs = segs[1:]
	}

	out := "/" + strings.Join(segs, "/")
	if !strings.HasSuffix(out, "/") && !strings.HasSuffix(out, "*") {
		out += "/"
	}
	return out
}

// ClosestWildcard returns the least-generalized wildcard strictly broader
// than path: the trailing '*' (if any) and one segment are dropped, then
// '*' is re-appended. Applied repeatedly it walks /a/b/c/ -> /a/b/* ->
// /a/* -> /*. The Universal wildcard generalizes to itself.
func (k *Keyer) ClosestWildcard(path string) string {
	segs := splitSegments(k.Normalize(path))

	if n := len(segs); n > 0 && segs[n-1] == "*" {
		segs = segs[:n-1]
	}
	if n := len(segs); n > 0 {
		segs = segs[:n-1]
	}
	segs = append(segs, "*")

	return "/" + strings.Join(segs, "/")
}

// IsSubsetOfWildcard reports whether target falls under wildcard: wildcard
// must end in '*', and target (normalized) must start with wildcard minus
// its trailing '*'. A non-wildcard first argument never matches anything.
func (k *Keyer) IsSubsetOfWildcard(wildcard, target string) bool {
	w := k.Normalize(wildcard)
	if !strings.HasSuffix(w, "*") {
		return false
	}
	return strings.HasPrefix(k.Normalize(target), strings.TrimSuffix(w, "*"))
}

func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, seg := range parts {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}
