package navigator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/navfold/navfold/core/history"
	"github.com/navfold/navfold/core/pathkey"
	"github.com/navfold/navfold/core/registry"
)

// Navigator owns the handler registries, the visited-path history, and the
// per-navigation pipeline. It replaces ambient singleton state with an
// explicitly constructed instance: everything a navigation reads or writes
// is reachable from here.
type Navigator struct {
	cfg     Config
	keyer   *pathkey.Keyer
	locales *pathkey.Locales
	history *history.Stack

	requests       *registry.Registry[ContentFunc]
	transitionsOut *registry.Registry[TransitionFunc]
	transitionsIn  *registry.Registry[TransitionFunc]
	loadHooks      map[LoadState]*registry.Registry[HookFunc]

	fetcher Fetcher
	parser  Parser
	live    Document
	router  Router

	logger *slog.Logger

	// navMu serializes navigations: a second navigation blocks until the
	// previous pipeline completes, so history and the live document are
	// never touched by two pipelines at once.
	navMu sync.Mutex

	processed atomic.Int64
	failed    atomic.Int64
	lastNavAt atomic.Int64
}

// Stats provides observability counters for monitoring and debugging.
type Stats struct {
	NavigationsProcessed int64
	NavigationsFailed    int64
	CurrentPage          string
	HistoryDepth         int
	LastNavigationAt     time.Time
}

// New creates a Navigator from the given configuration.
//
// Example:
//
//	nav, err := navigator.New(navigator.Config{Locales: []string{"en", "fr"}},
//	    navigator.WithFetcher(fetch.New()),
//	    navigator.WithParser(htmldoc.Parser{}),
//	    navigator.WithDocument(liveDoc),
//	)
func New(cfg Config, opts ...Option) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	locales, err := pathkey.NewLocales(cfg.Locales...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	keyer := pathkey.NewKeyer(locales)

	n := &Navigator{
		cfg:            cfg,
		keyer:          keyer,
		locales:        locales,
		history:        history.New(keyer, locales, history.WithInitialPath(cfg.InitialPath)),
		requests:       registry.New[ContentFunc](keyer),
		transitionsOut: registry.New[TransitionFunc](keyer),
		transitionsIn:  registry.New[TransitionFunc](keyer),
		loadHooks: map[LoadState]*registry.Registry[HookFunc]{
			StateBeforeLoad: registry.New[HookFunc](keyer),
			StateLoading:    registry.New[HookFunc](keyer),
			StateAfterLoad:  registry.New[HookFunc](keyer),
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// OnRequest registers a content-request handler for navigations arriving at
// to, coming from from. An empty from means any origin.
func (n *Navigator) OnRequest(to, from string, fn ContentFunc) {
	if fn == nil {
		panic(fmt.Errorf("%w: content handler for %q", ErrNilHandler, to))
	}
	n.requests.Register(to, from, fn)
}

// OnTransitionOut registers an outbound transition for navigations leaving
// from, headed to to. An empty to means any destination.
func (n *Navigator) OnTransitionOut(from, to string, fn TransitionFunc) {
	if fn == nil {
		panic(fmt.Errorf("%w: transition-out handler for %q", ErrNilHandler, from))
	}
	n.transitionsOut.Register(from, to, fn)
}

// OnTransitionIn registers an inbound transition for navigations arriving
// at to, coming from from. An empty from means any origin.
func (n *Navigator) OnTransitionIn(to, from string, fn TransitionFunc) {
	if fn == nil {
		panic(fmt.Errorf("%w: transition-in handler for %q", ErrNilHandler, to))
	}
	n.transitionsIn.Register(to, from, fn)
}

// OnLoad registers a load-lifecycle hook for the given state and page path.
func (n *Navigator) OnLoad(state LoadState, path string, fn HookFunc) {
	if fn == nil {
		panic(fmt.Errorf("%w: %s hook for %q", ErrNilHandler, state, path))
	}
	hooks, ok := n.loadHooks[state]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownLoadState, state))
	}
	hooks.Register(path, "", fn)
}

// OnRoute hands the pattern to the router collaborator, wrapping fn so the
// navigation pipeline runs first. Panics without an attached router, since
// routes registered into the void are a setup bug.
func (n *Navigator) OnRoute(pattern string, fn RouteFunc) {
	if fn == nil {
		panic(fmt.Errorf("%w: route handler for %q", ErrNilHandler, pattern))
	}
	if n.router == nil {
		panic(ErrNoRouter)
	}
	n.router.Handle(pattern, func(ctx context.Context, nav Navigation) error {
		if err := n.Navigate(ctx, nav); err != nil {
			return err
		}
		return fn(ctx, nav)
	})
}

// Bind registers the universal route when auto-routing is enabled, making
// every matched navigation flow through the pipeline without a per-route
// handler. It is a no-op when AutoRoute is off.
func (n *Navigator) Bind() error {
	if !n.cfg.AutoRoute {
		return nil
	}
	if n.router == nil {
		return ErrNoRouter
	}
	n.router.Handle(pathkey.Universal, func(ctx context.Context, nav Navigation) error {
		return n.Navigate(ctx, nav)
	})
	return nil
}

// CurrentPage returns the normalized path of the page on screen.
func (n *Navigator) CurrentPage() string {
	return n.history.Current()
}

// PreviousPage returns the normalized path of the page before the current
// one, when one exists.
func (n *Navigator) PreviousPage() (string, bool) {
	return n.history.Previous()
}

// LoadingHook resolves the loading-state hook for a page. The pipeline
// resolves this hook but never invokes it; embedders drive it themselves
// for asset-preload progress reporting.
func (n *Navigator) LoadingHook(path string) (HookFunc, bool) {
	return n.loadHooks[StateLoading].Lookup(path, "")
}

// Stats returns current navigation counters.
func (n *Navigator) Stats() Stats {
	var last time.Time
	if ts := n.lastNavAt.Load(); ts > 0 {
		last = time.Unix(ts, 0)
	}
	return Stats{
		NavigationsProcessed: n.processed.Load(),
		NavigationsFailed:    n.failed.Load(),
		CurrentPage:          n.history.Current(),
		HistoryDepth:         n.history.Len(),
		LastNavigationAt:     last,
	}
}

// Navigate runs the full pipeline for one navigation event: history
// tracking, transition-out, fetch-and-swap, transition-in, and the load
// lifecycle, strictly in that order. Each stage suspends for as long as
// its handler runs; there is no timeout, so a handler that never returns
// stalls the navigation. Concurrent calls are serialized.
func (n *Navigator) Navigate(ctx context.Context, nav Navigation) error {
	n.navMu.Lock()
	defer n.navMu.Unlock()

	id := uuid.NewString()
	start := time.Now()

	n.logger.InfoContext(ctx, "navigation started",
		slog.String("navigation_id", id),
		slog.String("path", nav.Path),
		slog.Bool("bootstrap", nav.Bootstrap))

	err := n.run(ctx, id, nav)

	n.lastNavAt.Store(time.Now().Unix())
	if err != nil {
		n.failed.Add(1)
		n.logger.ErrorContext(ctx, "navigation failed",
			slog.String("navigation_id", id),
			slog.String("path", nav.Path),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return err
	}

	n.processed.Add(1)
	n.logger.InfoContext(ctx, "navigation completed",
		slog.String("navigation_id", id),
		slog.String("page", n.history.Current()),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (n *Navigator) run(ctx context.Context, id string, nav Navigation) error {
	n.trackHistory(ctx, id, nav)

	if err := n.transitionOut(ctx, id, nav); err != nil {
		return err
	}
	if err := n.fetchAndSwap(ctx, id, nav); err != nil {
		return err
	}
	if err := n.transitionIn(ctx, id, nav); err != nil {
		return err
	}
	return n.initPage(ctx, id, nav)
}

// trackHistory pushes the raw target path unless it is a no-op
// re-navigation. This stage never blocks the pipeline.
func (n *Navigator) trackHistory(ctx context.Context, id string, nav Navigation) {
	pushed := n.history.Push(nav.Path)
	n.logger.DebugContext(ctx, "history tracked",
		slog.String("navigation_id", id),
		slog.String("page", n.history.Current()),
		slog.Bool("pushed", pushed))
}

// transitionOut runs the outbound transition for the page being left.
// Bootstrap navigations have nothing to leave; a locale change is treated
// as a full page swap and bypasses the transition even when one matches.
func (n *Navigator) transitionOut(ctx context.Context, id string, nav Navigation) error {
	if nav.Bootstrap {
		return nil
	}

	prevLocale, _ := n.history.PreviousLocale()
	curLocale, _ := n.history.CurrentLocale()
	if prevLocale != curLocale {
		n.logger.DebugContext(ctx, "transition-out bypassed on locale change",
			slog.String("navigation_id", id),
			slog.String("from_locale", prevLocale),
			slog.String("to_locale", curLocale))
		return nil
	}

	prev, _ := n.history.Previous()
	cur := n.history.Current()

	fn, ok := n.transitionsOut.Lookup(prev, cur)
	if !ok {
		return nil
	}

	if err := fn(ctx, Transition{From: prev, To: cur}); err != nil {
		// Transitions are cosmetic: log and keep navigating.
		n.logger.ErrorContext(ctx, "transition-out handler failed",
			slog.String("navigation_id", id),
			slog.String("from", prev),
			slog.String("to", cur),
			slog.String("error", err.Error()))
	}
	return nil
}

// fetchAndSwap retrieves the target markup and replaces the live content
// container. Fetch and parse failures abort the navigation with an error
// instead of stalling it silently.
func (n *Navigator) fetchAndSwap(ctx context.Context, id string, nav Navigation) error {
	if nav.Bootstrap {
		return nil
	}

	if n.fetcher == nil {
		return ErrNoFetcher
	}
	if n.parser == nil {
		return ErrNoParser
	}
	if n.live == nil {
		return ErrNoDocument
	}

	url := nav.URL
	if url == "" {
		url = nav.Path
	}

	body, err := n.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if body == "" {
		return fmt.Errorf("%w: empty body", ErrFetchFailed)
	}

	next, err := n.parser.Parse(body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	swap := Swap{Next: next, Live: n.live, containerID: n.cfg.ContainerID}

	cur := n.history.Current()
	prev, _ := n.history.Previous()

	if fn, ok := n.requests.Lookup(cur, prev); ok {
		n.logger.DebugContext(ctx, "content handler invoked",
			slog.String("navigation_id", id),
			slog.String("page", cur))
		if err := fn(ctx, swap); err != nil {
			return fmt.Errorf("%w: %w", ErrContentHandler, err)
		}
		return nil
	}

	return swap.Apply()
}

// transitionIn runs the inbound transition for the page being entered.
// Unlike transition-out, bootstrap navigations run this stage too.
func (n *Navigator) transitionIn(ctx context.Context, id string, nav Navigation) error {
	cur := n.history.Current()
	prev, _ := n.history.Previous()

	fn, ok := n.transitionsIn.Lookup(cur, prev)
	if !ok {
		return nil
	}

	if err := fn(ctx, Transition{From: prev, To: cur}); err != nil {
		n.logger.ErrorContext(ctx, "transition-in handler failed",
			slog.String("navigation_id", id),
			slog.String("from", prev),
			slog.String("to", cur),
			slog.String("error", err.Error()))
	}
	return nil
}

// initPage runs the load lifecycle: the before hook delays the load phase
// until it returns, the loading hook is resolved but left to the embedder,
// and the after hook terminates the pipeline.
func (n *Navigator) initPage(ctx context.Context, id string, nav Navigation) error {
	cur := n.history.Current()

	if fn, ok := n.loadHooks[StateBeforeLoad].Lookup(cur, ""); ok {
		if err := fn(ctx, cur); err != nil {
			n.logger.ErrorContext(ctx, "before-load hook failed",
				slog.String("navigation_id", id),
				slog.String("page", cur),
				slog.String("error", err.Error()))
		}
	}

	if _, ok := n.loadHooks[StateLoading].Lookup(cur, ""); ok {
		n.logger.DebugContext(ctx, "loading hook resolved, left to embedder",
			slog.String("navigation_id", id),
			slog.String("page", cur))
	}

	if fn, ok := n.loadHooks[StateAfterLoad].Lookup(cur, ""); ok {
		if err := fn(ctx, cur); err != nil {
			n.logger.ErrorContext(ctx, "after-load hook failed",
				slog.String("navigation_id", id),
				slog.String("page", cur),
				slog.String("error", err.Error()))
		}
	}
	return nil
}
