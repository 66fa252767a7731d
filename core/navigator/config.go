package navigator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Routing modes understood by Config. The mode is advisory: it is consumed
// by whichever router collaborator the embedder constructs.
const (
	RoutingHistory = "history"
	RoutingHash    = "hash"
)

// DefaultContainerID is the element identifier of the content container
// when none is configured.
const DefaultContainerID = "page-content"

// Config holds navigator settings. Zero values fall back to defaults at
// construction; use core/config.Load to populate it from the environment,
// or LoadFile for a TOML file.
type Config struct {
	// ContainerID identifies the content container element swapped on each
	// navigation.
	ContainerID string `env:"NAV_CONTAINER_ID" envDefault:"page-content" toml:"container_id"`

	// Locales is the ordered locale set; the first entry is the default
	// locale and is never recognized as a path prefix.
	Locales []string `env:"NAV_LOCALES" envDefault:"en" envSeparator:"," toml:"locales"`

	// InitialPath is the bootstrap document path reported as the current
	// page before the first navigation.
	InitialPath string `env:"NAV_INITIAL_PATH" envDefault:"/" toml:"initial_path"`

	// AutoRoute makes Bind register the universal route with the attached
	// router.
	AutoRoute bool `env:"NAV_AUTO_ROUTE" envDefault:"false" toml:"auto_route"`

	// RoutingMode selects history- or hash-based routing; advisory for the
	// router collaborator.
	RoutingMode string `env:"NAV_ROUTING_MODE" envDefault:"history" toml:"routing_mode"`
}

// Validate rejects configurations the navigator cannot honor.
func (c Config) Validate() error {
	switch c.RoutingMode {
	case "", RoutingHistory, RoutingHash:
	default:
		return fmt.Errorf("%w: unknown routing mode %q", ErrInvalidConfig, c.RoutingMode)
	}
	return nil
}

// withDefaults fills zero-valued fields; construction always goes through
// it so a zero Config is usable.
func (c Config) withDefaults() Config {
	if c.ContainerID == "" {
		c.ContainerID = DefaultContainerID
	}
	if c.InitialPath == "" {
		c.InitialPath = "/"
	}
	if c.RoutingMode == "" {
		c.RoutingMode = RoutingHistory
	}
	return c
}

// LoadFile reads a TOML configuration file.
func LoadFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
