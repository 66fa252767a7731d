package pathkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navfold/navfold/core/pathkey"
)

func TestKeyer_Normalize(t *testing.T) {
	t.Parallel()

	keyer := pathkey.NewKeyer(nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing leading slash", "about/", "/about/"},
		{"missing trailing slash", "/about", "/about/"},
		{"already canonical", "/about/", "/about/"},
		{"empty collapses to root", "", "/"},
		{"root stays root", "/", "/"},
		{"duplicate separators", "//a///b//", "/a/b/"},
		{"wildcard keeps no trailing slash", "/blog/*", "/blog/*"},
		{"bare wildcard", "*", "/*"},
		{"nested path", "a/b/c", "/a/b/c/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keyer.Normalize(tt.in))
		})
	}
}

func TestKeyer_Normalize_Idempotent(t *testing.T) {
	t.Parallel()

	keyer := pathkey.NewKeyer(nil)

	for _, p := range []string{"", "/", "about", "/a/b/c", "/blog/*", "//x//y"} {
		once := keyer.Normalize(p)
		assert.Equal(t, once, keyer.Normalize(once), "normalize(%q) must be idempotent", p)
	}
}

func TestKeyer_NormalizeStripLocale(t *testing.T) {
	t.Parallel()

	locales, err := pathkey.NewLocales("en", "fr")
	require.NoError(t, err)
	keyer := pathkey.NewKeyer(locales)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alternate locale stripped", "/fr/about/", "/about/"},
		{"alternate locale wildcard", "/fr/*", "/*"},
		{"default locale kept", "/en/about/", "/en/about/"},
		{"no locale untouched", "/about/", "/about/"},
		{"bare alternate locale", "/fr/", "/"},
		{"locale-looking inner segment kept", "/about/fr/", "/about/fr/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keyer.NormalizeStripLocale(tt.in))
		})
	}
}

func TestKeyer_ClosestWildcard(t *testing.T) {
	t.Parallel()

	keyer := pathkey.NewKeyer(nil)

	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/c/", "/a/b/*"},
		{"/a/b/*", "/a/*"},
		{"/a/*", "/*"},
		{"/*", "/*"},
		{"/about/", "/*"},
		{"/", "/*"},
		{"about", "/*"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keyer.ClosestWildcard(tt.in))
		})
	}
}

func TestKeyer_ClosestWildcard_ChainTerminates(t *testing.T) {
	t.Parallel()

	keyer := pathkey.NewKeyer(nil)

	p := "/one/two/three/four/"
	for i := 0; i < 10; i++ {
		p = keyer.ClosestWildcard(p)
	}
	assert.Equal(t, pathkey.Universal, p)
	assert.Equal(t, pathkey.Universal, keyer.ClosestWildcard(pathkey.Universal))
}

func TestKeyer_IsSubsetOfWildcard(t *testing.T) {
	t.Parallel()

	keyer := pathkey.NewKeyer(nil)

	tests := []struct {
		name     string
		wildcard string
		target   string
		want     bool
	}{
		{"descendant matches", "/blog/*", "/blog/post-1/", true},
		{"wildcard matches itself", "/blog/*", "/blog/*", true},
		{"universal matches everything", "/*", "/anything/at/all/", true},
		{"non-wildcard never matches", "/blog/", "/blog/post-1/", false},
		{"sibling does not match", "/blog/*", "/about/", false},
		{"unnormalized inputs", "blog/*", "blog/post-1", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keyer.IsSubsetOfWildcard(tt.wildcard, tt.target))
		})
	}
}
