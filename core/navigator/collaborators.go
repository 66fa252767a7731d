package navigator

import "context"

// Fetcher retrieves replacement markup for a navigation target. An error or
// an empty body aborts the navigation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Parser turns fetched markup into a Document.
type Parser interface {
	Parse(markup string) (Document, error)
}

// Document is the navigator's view of a page: enough surface to copy the
// title and top-level class across and to locate the content container.
// Node creation and removal primitives live behind Element.
type Document interface {
	Title() string
	SetTitle(title string)
	BodyClass() string
	SetBodyClass(class string)
	ElementByID(id string) (Element, bool)
}

// Element is a mutable node of a Document.
type Element interface {
	// RemoveChildren detaches every child of the element.
	RemoveChildren()

	// AppendChildrenFrom deep-imports each child of src in order.
	AppendChildrenFrom(src Element) error
}

// Router is the external URL-pattern routing collaborator. Pattern syntax
// and compilation are entirely the router's concern; the navigator only
// hands it callbacks to invoke once per matched navigation.
type Router interface {
	Handle(pattern string, fn RouteFunc)
}
