package view

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// Markdown converts the subtree at n to Markdown
func Markdown(n *html.Node) (string, error) {
	out, err := htmltomarkdown.ConvertNode(n)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Clone returns a detached deep copy of n
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// Document wraps body children in a standalone html document
func Document(title string, body ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(El("html", []Attr{A("lang", "en")},
		El("head", nil,
			El("meta", []Attr{A("charset", "utf-8")}),
			TextEl("title", nil, title),
		),
		El("body", nil, body...),
	))
	return doc
}
