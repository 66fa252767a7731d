package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navfold/navfold/core/history"
	"github.com/navfold/navfold/core/pathkey"
)

func TestStack_Push_Dedupe(t *testing.T) {
	t.Parallel()

	s := history.New(nil, nil)

	assert.True(t, s.Push("/about/"))
	assert.Equal(t, 1, s.Len())

	// Same page in a different raw form is still a no-op re-navigation.
	assert.False(t, s.Push("/about"))
	assert.False(t, s.Push("about/"))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Push("/blog/"))
	assert.Equal(t, 2, s.Len())

	// Revisiting an older page is a genuine navigation.
	assert.True(t, s.Push("/about/"))
	assert.Equal(t, 3, s.Len())
}

func TestStack_CurrentPrevious(t *testing.T) {
	t.Parallel()

	s := history.New(nil, nil)

	t.Run("empty stack reports initial path", func(t *testing.T) {
		assert.Equal(t, "/", s.Current())
		_, ok := s.Previous()
		assert.False(t, ok)
	})

	t.Run("single entry", func(t *testing.T) {
		s.Push("/home")
		assert.Equal(t, "/home/", s.Current())
		_, ok := s.Previous()
		assert.False(t, ok)
	})

	t.Run("two entries", func(t *testing.T) {
		s.Push("/about")
		assert.Equal(t, "/about/", s.Current())

		prev, ok := s.Previous()
		require.True(t, ok)
		assert.Equal(t, "/home/", prev)
	})
}

func TestStack_WithInitialPath(t *testing.T) {
	t.Parallel()

	s := history.New(nil, nil, history.WithInitialPath("/landing"))
	assert.Equal(t, "/landing/", s.Current())

	s.Push("/about/")
	assert.Equal(t, "/about/", s.Current())

	// The initial path never becomes a previous entry; it is a placeholder,
	// not a visit.
	_, ok := s.Previous()
	assert.False(t, ok)
}

func TestStack_Locales(t *testing.T) {
	t.Parallel()

	locales, err := pathkey.NewLocales("en", "fr")
	require.NoError(t, err)
	s := history.New(pathkey.NewKeyer(locales), locales)

	t.Run("no explicit locale", func(t *testing.T) {
		s.Push("/about/")
		_, ok := s.CurrentLocale()
		assert.False(t, ok)
	})

	t.Run("alternate locale on current", func(t *testing.T) {
		s.Push("/fr/about/")
		code, ok := s.CurrentLocale()
		require.True(t, ok)
		assert.Equal(t, "fr", code)

		_, ok = s.PreviousLocale()
		assert.False(t, ok, "previous page /about/ has no explicit locale")
	})

	t.Run("locale moves to previous", func(t *testing.T) {
		s.Push("/contact/")
		_, ok := s.CurrentLocale()
		assert.False(t, ok)

		code, ok := s.PreviousLocale()
		require.True(t, ok)
		assert.Equal(t, "fr", code)
	})

	t.Run("default locale prefix is implicit", func(t *testing.T) {
		s.Push("/en/about/")
		_, ok := s.CurrentLocale()
		assert.False(t, ok)
	})
}
