// Package fetch provides the HTTP collaborator for the navigation
// pipeline: a thin GET client that retrieves replacement markup for a
// navigation target.
//
// The client deliberately has no retry policy; resilience belongs to the
// caller-supplied handlers. Any transport failure, non-2xx status, or
// empty body is reported as an error and aborts the navigation that
// requested it.
//
// Every request carries a UUID X-Request-ID header so fetches can be
// correlated with navigation log lines.
package fetch
