// Package navigator orchestrates in-app page navigation: it resolves
// registered handlers through wildcard path matching and sequences the
// per-navigation pipeline around a content swap.
//
// # Pipeline
//
// Every navigation event runs the same linear stage sequence:
//
//	TrackHistory -> TransitionOut -> FetchAndSwap -> TransitionIn -> InitPage
//
// TrackHistory records the visited path (deduplicating no-op
// re-navigations) and never blocks. TransitionOut animates the page being
// left; it is skipped on the bootstrap load and whenever the navigation
// crosses a locale boundary, which is treated as a full page swap.
// FetchAndSwap retrieves replacement markup, resolves a content-request
// handler, and either delegates the swap to it or applies the default
// completion (title, body class, and ordered container children).
// TransitionIn animates the page being entered and runs on bootstrap too.
// InitPage drives the load lifecycle hooks: before, loading, and after.
//
// A missing handler at any stage is not an error; the stage advances with
// its default behavior. A present handler suspends its stage until it
// returns. The pipeline adds no timeout or watchdog: a handler that never
// returns stalls that navigation, which is the cooperative contract
// embedders opt into. Concurrent navigations are serialized, so history
// and the live document are only ever touched by one pipeline at a time.
//
// # Handler resolution
//
// Content handlers are keyed by (toPath, fromPath), transitions by their
// direction-specific pair, and load hooks by page path alone. All keys are
// locale-stripped and normalized, and lookups fall back through wildcard
// generalizations until the universal pair; see core/registry.
//
// # Collaborators
//
// Network transport, markup parsing, and DOM mutation are delegated to the
// Fetcher, Parser, and Document interfaces (integration/fetch and
// integration/htmldoc provide implementations), and URL pattern matching
// to the Router interface. The navigator itself only decides which handler
// to invoke and in what order.
//
// # Usage
//
//	nav, err := navigator.New(navigator.Config{Locales: []string{"en", "fr"}},
//	    navigator.WithFetcher(fetch.New()),
//	    navigator.WithParser(htmldoc.Parser{}),
//	    navigator.WithDocument(live),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nav.OnTransitionOut("/", "", fadeOut)
//	nav.OnTransitionIn("/about/", "", fadeIn)
//	nav.OnLoad(navigator.StateAfterLoad, "/about/", trackPageView)
//
//	err = nav.Navigate(ctx, navigator.Navigation{Path: "/about/", URL: "https://example.com/about/"})
package navigator
