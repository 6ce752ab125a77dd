package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestClassManipulation(t *testing.T) {
	n := El("div", Class("card"))
	AddClass(n, "active")
	AddClass(n, "active")
	assert.True(t, HasClass(n, "active"))

	v, _ := GetAttr(n, "class")
	assert.Equal(t, "card active", v)

	RemoveClass(n, "active")
	assert.False(t, HasClass(n, "active"))
	assert.True(t, HasClass(n, "card"))
}

func TestFindAndText(t *testing.T) {
	root := El("div", []Attr{A("id", "root")},
		TextEl("h3", nil, "Title"),
		El("p", Class("article"), Text("Amendment "), Text("I")),
	)

	assert.Same(t, root, ByID(root, "root"))
	require.Len(t, ByClass(root, "article"), 1)
	assert.Equal(t, "Amendment I", TextContent(ByClass(root, "article")[0]))
	assert.Nil(t, ByID(root, "missing"))
}

func TestReplace(t *testing.T) {
	root := El("div", nil, TextEl("p", nil, "old"))
	Replace(root, []*html.Node{TextEl("p", nil, "a"), TextEl("p", nil, "b")})

	children := Children(root)
	require.Len(t, children, 2)
	assert.Equal(t, "ab", TextContent(root))
}

func TestRenderAndParseFragment(t *testing.T) {
	out, err := Render(El("p", Class("x"), Text("a < b")))
	require.NoError(t, err)
	assert.Equal(t, `<p class="x">a &lt; b</p>`, out)

	nodes, err := ParseFragment("<h2>Disclaimer</h2><p>text</p>", "div")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "h2", nodes[0].Data)
}

func TestMarkdown(t *testing.T) {
	n := El("div", nil,
		TextEl("h3", nil, "Due Process"),
		El("p", Class("article"), TextEl("strong", nil, "Article:"), Text(" Fifth Amendment")),
	)

	md, err := Markdown(n)
	require.NoError(t, err)
	assert.Contains(t, md, "### Due Process")
	assert.Contains(t, md, "**Article:** Fifth Amendment")
}

func TestClone_Detached(t *testing.T) {
	parent := El("section", nil, TextEl("p", Class("a"), "x"))
	child := parent.FirstChild

	c := Clone(child)
	assert.Nil(t, c.Parent)
	AddClass(c, "b")
	assert.False(t, HasClass(child, "b"))
	assert.Equal(t, "x", TextContent(c))
}

func TestDocument(t *testing.T) {
	out, err := Render(Document("Cases", TextEl("h1", nil, "Landmark Cases")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Cases</title>")
	assert.Contains(t, out, "<body><h1>Landmark Cases</h1></body>")
}
