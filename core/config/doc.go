// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/navfold/navfold/core/config"
//
//	type NavigatorConfig struct {
//		ContainerID string   `env:"NAV_CONTAINER_ID" envDefault:"page-content"`
//		Locales     []string `env:"NAV_LOCALES" envDefault:"en" envSeparator:","`
//	}
//
//	func main() {
//		var cfg NavigatorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// later calls for the same type return the cached value. A missing .env
// file is not an error: the process environment alone is used.
package config
