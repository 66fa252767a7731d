package navigator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navfold/navfold/core/navigator"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("zero config valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, navigator.Config{}.Validate())
	})

	t.Run("known routing modes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, navigator.Config{RoutingMode: navigator.RoutingHistory}.Validate())
		assert.NoError(t, navigator.Config{RoutingMode: navigator.RoutingHash}.Validate())
	})

	t.Run("unknown routing mode", func(t *testing.T) {
		t.Parallel()
		err := navigator.Config{RoutingMode: "teleport"}.Validate()
		assert.ErrorIs(t, err, navigator.ErrInvalidConfig)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "navfold.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
container_id = "main-view"
locales = ["en", "fr", "de"]
initial_path = "/home/"
auto_route = true
routing_mode = "hash"
`), 0o644))

		cfg, err := navigator.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "main-view", cfg.ContainerID)
		assert.Equal(t, []string{"en", "fr", "de"}, cfg.Locales)
		assert.Equal(t, "/home/", cfg.InitialPath)
		assert.True(t, cfg.AutoRoute)
		assert.Equal(t, navigator.RoutingHash, cfg.RoutingMode)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := navigator.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, navigator.ErrInvalidConfig)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte(`container_id = [not toml`), 0o644))

		_, err := navigator.LoadFile(path)
		assert.ErrorIs(t, err, navigator.ErrInvalidConfig)
	})

	t.Run("invalid routing mode in file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mode.toml")
		require.NoError(t, os.WriteFile(path, []byte(`routing_mode = "teleport"`), 0o644))

		_, err := navigator.LoadFile(path)
		assert.ErrorIs(t, err, navigator.ErrInvalidConfig)
	})
}
