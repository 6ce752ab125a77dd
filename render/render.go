// Package render projects the knowledge base into element trees. Every renderer is a pure
// function of its input and the knowledge base: calling it twice yields equal trees, and no
// renderer touches the page it is attached to.
package render

import (
	"fmt"
	"time"

	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"golang.org/x/net/html"
)

// StaggerStep is the per-card animation delay increment
const StaggerStep = 100 * time.Millisecond

// Stagger returns the animation-delay style for the card at index
func Stagger(index int) string {
	d := time.Duration(index) * StaggerStep
	return fmt.Sprintf("animation-delay: %.1fs", d.Seconds())
}

// ProvisionsRenderer renders provision cards grouped under category headings
type ProvisionsRenderer struct {
	kb *knowledge.KnowledgeBase
}

// NewProvisionsRenderer creates a provisions renderer
func NewProvisionsRenderer(kb *knowledge.KnowledgeBase) *ProvisionsRenderer {
	return &ProvisionsRenderer{kb: kb}
}

// Render returns, for every category the filter selects, a heading followed by one card
// per provision. An unknown category yields no nodes.
func (r *ProvisionsRenderer) Render(filter string) []*html.Node {
	var out []*html.Node
	for _, category := range r.kb.Select(filter) {
		out = append(out, categoryHeader(category.Name))
		for i, p := range category.Provisions {
			out = append(out, provisionCard(p, i))
		}
	}
	return out
}

func categoryHeader(name string) *html.Node {
	return view.El("div", view.Class("category-header"),
		view.TextEl("h3", nil, name),
	)
}

func provisionCard(p models.Provision, index int) *html.Node {
	return view.El("div", view.Class("provision-card", view.A("style", Stagger(index))),
		view.TextEl("h3", nil, p.Title),
		view.TextEl("p", view.Class("article"), p.Article),
		view.TextEl("p", view.Class("provision-text"), p.Provision),
	)
}

// CasesRenderer renders one card per landmark case
type CasesRenderer struct {
	kb *knowledge.KnowledgeBase
}

// NewCasesRenderer creates a cases renderer
func NewCasesRenderer(kb *knowledge.KnowledgeBase) *CasesRenderer {
	return &CasesRenderer{kb: kb}
}

// Render returns the case cards in declared order
func (r *CasesRenderer) Render() []*html.Node {
	cases := r.kb.Cases()
	out := make([]*html.Node, 0, len(cases))
	for i, c := range cases {
		out = append(out, caseCard(c, i))
	}
	return out
}

func caseCard(c models.Case, index int) *html.Node {
	return view.El("div", view.Class("case-card", view.A("style", Stagger(index))),
		view.TextEl("h3", nil, c.Title),
		view.TextEl("p", view.Class("court"), c.Court),
		view.TextEl("p", view.Class("citation"), c.Citation),
		labelled("summary", "Summary:", c.Summary),
		labelled("holding", "Key Holding:", c.KeyHolding),
	)
}

func labelled(class, label, text string) *html.Node {
	return view.El("p", view.Class(class),
		view.TextEl("strong", nil, label),
		view.Text(" "+text),
	)
}
