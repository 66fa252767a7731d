// Package htmldoc implements the navigator's document collaborator on top
// of golang.org/x/net/html.
//
// It exposes exactly the surface the navigation pipeline needs: parse a
// markup string into a document, locate an element by id, read and write
// the document title and body class, clear an element's children, and
// deep-import children from another document preserving their order.
//
// Documents are not safe for concurrent mutation; the navigation pipeline
// serializes access to the live document.
package htmldoc
