// Package history tracks the paths visited during a navigation session.
//
// The Stack is an append-only log of raw paths, one entry per distinct
// navigation: re-navigating to the page already on top is deduplicated and
// leaves the stack untouched. Entries are never trimmed or persisted.
//
// Current and Previous expose the normalized top and second-from-top
// entries; before anything has been pushed, Current reports the initial
// document path the stack was constructed with. CurrentLocale and
// PreviousLocale derive the explicit locale of those pages from their first
// path segment, when that segment is an alternate member of the configured
// locale set.
package history
