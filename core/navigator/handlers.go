package navigator

import "context"

// Navigation describes one navigation event as supplied by the router
// collaborator.
type Navigation struct {
	// Path is the raw target path as it appeared in the address.
	Path string

	// URL is the canonical absolute URL used to fetch replacement markup.
	// When empty, the raw path is fetched as-is.
	URL string

	// Bootstrap marks the initial document load. Bootstrap navigations
	// skip transition-out and fetch-and-swap, but still run transition-in
	// and the load hooks.
	Bootstrap bool
}

// Transition carries the endpoints of a page change, both normalized.
type Transition struct {
	From string
	To   string
}

// TransitionFunc animates a page change. The stage stays suspended until
// the handler returns; there is no timeout, so a handler that never
// returns stalls its navigation.
type TransitionFunc func(ctx context.Context, t Transition) error

// Swap hands a content-request handler both documents around a content
// replacement. Handlers may mutate them freely, or call Apply to run the
// default completion.
type Swap struct {
	// Next is the freshly fetched document.
	Next Document

	// Live is the document currently on screen.
	Live Document

	containerID string
}

// NewSwap builds a Swap for the given documents and container element id.
// The pipeline constructs swaps itself during fetch-and-swap; the
// constructor exists for embedder instrumentation and collaborator tests.
func NewSwap(next, live Document, containerID string) Swap {
	return Swap{Next: next, Live: live, containerID: containerID}
}

// Apply runs the default completion: copy the next document's title and
// body class onto the live document, clear the live container, and import
// every child of the next container in order.
func (s Swap) Apply() error {
	next, ok := s.Next.ElementByID(s.containerID)
	if !ok {
		return ErrContainerNotFound
	}
	live, ok := s.Live.ElementByID(s.containerID)
	if !ok {
		return ErrContainerNotFound
	}

	s.Live.SetTitle(s.Next.Title())
	s.Live.SetBodyClass(s.Next.BodyClass())

	live.RemoveChildren()
	return live.AppendChildrenFrom(next)
}

// ContentFunc replaces page content during the fetch-and-swap stage. When
// no handler resolves, the navigator applies the default completion itself.
type ContentFunc func(ctx context.Context, s Swap) error

// HookFunc is a load-lifecycle hook keyed by page path.
type HookFunc func(ctx context.Context, page string) error

// RouteFunc is the application callback attached to a routed pattern; it
// runs after the navigation pipeline has completed.
type RouteFunc func(ctx context.Context, nav Navigation) error

// LoadState names one of the page-load lifecycle phases.
type LoadState string

const (
	// StateBeforeLoad runs before the load phase and can delay it.
	StateBeforeLoad LoadState = "before"

	// StateLoading is resolved but never invoked by the pipeline itself;
	// it is reserved for caller-driven progress reporting, reachable via
	// LoadingHook.
	StateLoading LoadState = "loading"

	// StateAfterLoad is the terminal hook of a navigation.
	StateAfterLoad LoadState = "after"
)
