package htmldoc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/navfold/navfold/core/navigator"
)

var (
	// ErrParseFailed wraps markup parsing failures.
	ErrParseFailed = errors.New("failed to parse markup")

	// ErrForeignElement is returned when children are imported from an
	// element that does not belong to this package.
	ErrForeignElement = errors.New("source element is not an htmldoc element")
)

// Document wraps a parsed HTML tree and implements navigator.Document.
type Document struct {
	root *html.Node
}

// Parser adapts Parse to the navigator.Parser interface.
type Parser struct{}

// Parse implements navigator.Parser.
func (Parser) Parse(markup string) (navigator.Document, error) {
	return Parse(markup)
}

// Parse builds a Document from a markup string. The x/net/html parser is
// lenient the way browsers are: missing html/head/body elements are
// synthesized rather than rejected.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return &Document{root: root}, nil
}

// Render serializes the document back to markup.
func (d *Document) Render() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, d.root); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return sb.String(), nil
}

// Title returns the text of the document's title element, or "".
func (d *Document) Title() string {
	title := d.find(atom.Title)
	if title == nil {
		return ""
	}
	var sb strings.Builder
	for c := title.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// SetTitle replaces the document title, creating the title element under
// head when the document has none.
func (d *Document) SetTitle(title string) {
	node := d.find(atom.Title)
	if node == nil {
		head := d.find(atom.Head)
		if head == nil {
			return
		}
		node = &html.Node{Type: html.ElementNode, DataAtom: atom.Title, Data: "title"}
		head.AppendChild(node)
	}

	for node.FirstChild != nil {
		node.RemoveChild(node.FirstChild)
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// BodyClass returns the class attribute of the body element.
func (d *Document) BodyClass() string {
	body := d.find(atom.Body)
	if body == nil {
		return ""
	}
	return attr(body, "class")
}

// SetBodyClass replaces the class attribute of the body element.
func (d *Document) SetBodyClass(class string) {
	body := d.find(atom.Body)
	if body == nil {
		return
	}
	setAttr(body, "class", class)
}

// ElementByID locates the element carrying the given id attribute.
func (d *Document) ElementByID(id string) (navigator.Element, bool) {
	node := walk(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	if node == nil {
		return nil, false
	}
	return &Element{node: node}, true
}

// Element wraps a single node and implements navigator.Element.
type Element struct {
	node *html.Node
}

// RemoveChildren detaches every child of the element.
func (e *Element) RemoveChildren() {
	for e.node.FirstChild != nil {
		e.node.RemoveChild(e.node.FirstChild)
	}
}

// AppendChildrenFrom deep-clones each child of src and appends the clones
// in order. Nodes are cloned, not moved, so the source document stays
// intact.
func (e *Element) AppendChildrenFrom(src navigator.Element) error {
	se, ok := src.(*Element)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignElement, src)
	}

	for c := se.node.FirstChild; c != nil; c = c.NextSibling {
		e.node.AppendChild(clone(c))
	}
	return nil
}

// find returns the first element with the given atom, depth-first.
func (d *Document) find(a atom.Atom) *html.Node {
	return walk(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	})
}

func walk(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := walk(c, match); found != nil {
			return found
		}
	}
	return nil
}

func clone(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      make([]html.Attribute, len(n.Attr)),
	}
	copy(cp.Attr, n.Attr)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(clone(c))
	}
	return cp
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
