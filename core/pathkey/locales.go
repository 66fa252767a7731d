package pathkey

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale codes are supplied.
const DefaultLocale = "en"

// Locales is an immutable ordered locale set. The first entry is the default
// locale and is never matched as a path prefix; entries from index 1 onward
// are recognized as optional leading path segments.
type Locales struct {
	codes     []string
	alternate map[string]struct{}
}

// NewLocales builds a locale set from ordered locale codes. An empty input
// yields a set containing only DefaultLocale. Every code must be a valid
// BCP 47 language tag; an invalid or empty code is a configuration error.
func NewLocales(codes ...string) (*Locales, error) {
	if len(codes) == 0 {
		codes = []string{DefaultLocale}
	}

	l := &Locales{
		codes:     make([]string, 0, len(codes)),
		alternate: make(map[string]struct{}, len(codes)),
	}

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidLocale)
		}
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, code, err)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("%w: duplicate locale %q", ErrInvalidLocale, code)
		}
		seen[code] = struct{}{}
		l.codes = append(l.codes, code)
	}

	for _, code := range l.codes[1:] {
		l.alternate[code] = struct{}{}
	}

	return l, nil
}

// Default returns the default locale code.
func (l *Locales) Default() string {
	return l.codes[0]
}

// All returns the configured locale codes in order, default first.
func (l *Locales) All() []string {
	out := make([]string, len(l.codes))
	copy(out, l.codes)
	return out
}

// IsAlternate reports whether code is a non-default member of the set.
// Only alternate locales appear as explicit path prefixes.
func (l *Locales) IsAlternate(code string) bool {
	_, ok := l.alternate[code]
	return ok
}

// FromPath returns the explicit locale of a normalized path: its first
// segment iff that segment is an alternate locale. Paths without an
// alternate prefix carry the default locale implicitly and report false.
func (l *Locales) FromPath(normalized string) (string, bool) {
	seg := firstSegment(normalized)
	if seg == "" || !l.IsAlternate(seg) {
		return "", false
	}
	return seg, true
}

func firstSegment(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}
