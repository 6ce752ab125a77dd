// Package view builds and inspects element trees. Trees are plain golang.org/x/net/html
// nodes, so they can be rendered to markup, converted to Markdown, or walked in tests
// without a live rendering environment.
package view

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a shorthand for an attribute key/value pair
type Attr = html.Attribute

// A creates an attribute
func A(key, val string) Attr {
	return html.Attribute{Key: key, Val: val}
}

// El creates an element with the given attributes and children
func El(tag string, attrs []Attr, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     append([]Attr(nil), attrs...),
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text creates a text node
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// TextEl creates an element holding a single text child
func TextEl(tag string, attrs []Attr, s string) *html.Node {
	return El(tag, attrs, Text(s))
}

// Class is a shorthand for a class attribute list
func Class(class string, more ...Attr) []Attr {
	return append([]Attr{A("class", class)}, more...)
}

// GetAttr returns the value of an attribute
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, A(key, val))
}

// HasClass reports whether the element carries class
func HasClass(n *html.Node, class string) bool {
	v, _ := GetAttr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class to the element's class list if it is not there yet
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	v, _ := GetAttr(n, "class")
	SetAttr(n, "class", strings.TrimSpace(v+" "+class))
}

// RemoveClass removes class from the element's class list
func RemoveClass(n *html.Node, class string) {
	v, ok := GetAttr(n, "class")
	if !ok {
		return
	}
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// Clear detaches every child of n
func Clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// Replace clears n and appends children in order
func Replace(n *html.Node, children []*html.Node) {
	Clear(n)
	for _, c := range children {
		n.AppendChild(c)
	}
}

// Children returns the element children of n
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FindAll returns every element below root, root included, matching pred in document order
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Find returns the first element matching pred, or nil
func Find(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if found := FindAll(root, pred); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ByID returns the element with the given id, or nil
func ByID(root *html.Node, id string) *html.Node {
	return Find(root, func(n *html.Node) bool {
		v, ok := GetAttr(n, "id")
		return ok && v == id
	})
}

// ByClass returns every element carrying class
func ByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool { return HasClass(n, class) })
}

// TextContent returns the concatenated text below n
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Render serializes n to markup
func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseFragment parses markup into nodes that may be appended to a parent of the given tag
func ParseFragment(markup, parentTag string) ([]*html.Node, error) {
	context := El(parentTag, nil)
	return html.ParseFragment(strings.NewReader(markup), context)
}
