// Package navfold is a toolkit for orchestrating in-app page navigation:
// it intercepts link navigation, fetches replacement markup, swaps it into
// the live document, and runs ordered transition and load-lifecycle hooks
// around the swap, while tracking visited paths and locale context.
//
// The library implements modern Go patterns including generics for
// type-safe handler registries, functional options for configuration, and
// interface-based collaborators for flexibility and testability.
//
// # Package Organization
//
// Core framework packages:
//
//   - core/pathkey: canonical path normalization, wildcard generalization,
//     and locale sets used to key every handler registry
//   - core/registry: generic two-key handler dictionary with hierarchical
//     wildcard fallback (most specific pair wins)
//   - core/history: append-only visited-path stack with locale derivation
//   - core/navigator: the per-navigation pipeline and registration API
//   - core/config: type-safe environment configuration loading with
//     per-type caching and .env autoload
//
// Integration packages provide default collaborator implementations:
//
//   - integration/fetch: HTTP GET client for replacement markup
//   - integration/htmldoc: document parsing and mutation on
//     golang.org/x/net/html
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/navfold/navfold/core/navigator
//	go doc -all github.com/navfold/navfold/core/registry
package navfold
