package navigator

import "log/slog"

// Option configures a Navigator during construction.
type Option func(*Navigator)

// WithLogger configures structured logging for pipeline stages. Use
// slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithFetcher attaches the HTTP collaborator used by fetch-and-swap.
func WithFetcher(f Fetcher) Option {
	return func(n *Navigator) {
		if f != nil {
			n.fetcher = f
		}
	}
}

// WithParser attaches the markup parser collaborator.
func WithParser(p Parser) Option {
	return func(n *Navigator) {
		if p != nil {
			n.parser = p
		}
	}
}

// WithDocument attaches the live document mutated by content swaps.
func WithDocument(doc Document) Option {
	return func(n *Navigator) {
		if doc != nil {
			n.live = doc
		}
	}
}

// WithRouter attaches the external routing collaborator.
func WithRouter(r Router) Option {
	return func(n *Navigator) {
		if r != nil {
			n.router = r
		}
	}
}
