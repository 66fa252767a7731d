// Package registry provides a generic two-key handler dictionary with
// hierarchical wildcard fallback, used to resolve navigation handlers by
// (primary, secondary) path pairs.
//
// Registrations and lookups are keyed by locale-stripped normalized paths,
// so "/fr/about" and "about/" address the same entry. The secondary key
// defaults to the universal wildcard "/*", meaning "any".
//
// Lookup resolves the most specific matching pair first and then widens the
// search one wildcard step at a time, generalizing the secondary key before
// the primary one:
//
//  1. exact (primary, secondary)
//  2. same primary, progressively wider secondary wildcards
//  3. wider primary wildcard, original secondary, recursively
//  4. the universal pair (/*, /*)
//
// At every step a wildcard candidate also matches an entry registered at
// its base path: a handler registered for "/about/" resolves for
// "/about/contact/" when no more specific entry exists, and the plain
// page entry loses to an explicit "/about/*" registration.
//
// A miss anywhere along that chain is a normal outcome reported as
// (zero, false), never an error: callers treat an unresolved handler as
// "no-op, continue".
//
// A Registry is populated during setup and read-only during navigation;
// concurrent lookups are safe. Registering the same pair twice silently
// overwrites the earlier handler.
package registry
