package navigator

import "errors"

var (
	// ErrInvalidConfig is returned when the navigator configuration is
	// rejected during construction.
	ErrInvalidConfig = errors.New("invalid navigator config")

	// ErrNilHandler is the panic cause when a nil handler is registered.
	ErrNilHandler = errors.New("nil handler")

	// ErrUnknownLoadState is the panic cause when a load hook is registered
	// for a state other than before, loading, or after.
	ErrUnknownLoadState = errors.New("unknown load state")

	// ErrNoRouter is returned by Bind when no router collaborator is
	// attached.
	ErrNoRouter = errors.New("no router attached")

	// ErrNoFetcher is returned when a non-bootstrap navigation needs to
	// fetch content but no fetcher collaborator is attached.
	ErrNoFetcher = errors.New("no fetcher attached")

	// ErrNoParser is returned when fetched markup cannot be parsed because
	// no parser collaborator is attached.
	ErrNoParser = errors.New("no parser attached")

	// ErrNoDocument is returned when a swap is attempted without a live
	// document.
	ErrNoDocument = errors.New("no live document attached")

	// ErrFetchFailed wraps fetch collaborator failures; the navigation is
	// aborted rather than stalled.
	ErrFetchFailed = errors.New("content fetch failed")

	// ErrParseFailed wraps markup parsing failures.
	ErrParseFailed = errors.New("content parse failed")

	// ErrContainerNotFound is returned when the configured content
	// container is missing from the new or the live document.
	ErrContainerNotFound = errors.New("content container not found")

	// ErrContentHandler wraps a content-request handler failure.
	ErrContentHandler = errors.New("content handler failed")
)
