package render

import (
	"testing"
	"time"

	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func cards(nodes []*html.Node, class string) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if view.HasClass(n, class) {
			out = append(out, n)
		}
	}
	return out
}

func childText(n *html.Node, tag, class string) string {
	found := view.Find(n, func(c *html.Node) bool {
		return c.Data == tag && (class == "" || view.HasClass(c, class))
	})
	if found == nil {
		return ""
	}
	return view.TextContent(found)
}

func TestProvisionsRenderer_EachCategory(t *testing.T) {
	kb := knowledge.Default()
	r := NewProvisionsRenderer(kb)

	for _, category := range kb.Categories() {
		provisions, _ := kb.Provisions(category)
		nodes := r.Render(category)

		headers := cards(nodes, "category-header")
		require.Len(t, headers, 1, category)
		assert.Equal(t, category, view.TextContent(headers[0]))

		got := cards(nodes, "provision-card")
		require.Len(t, got, len(provisions), category)
		for i, card := range got {
			assert.Equal(t, provisions[i].Title, childText(card, "h3", ""))
			assert.Equal(t, provisions[i].Article, childText(card, "p", "article"))
			assert.Equal(t, provisions[i].Provision, childText(card, "p", "provision-text"))
		}
	}
}

func TestProvisionsRenderer_TortLaw(t *testing.T) {
	nodes := NewProvisionsRenderer(knowledge.Default()).Render("Tort Law")

	got := cards(nodes, "provision-card")
	require.Len(t, got, 2)
	assert.Equal(t, "Negligence - Duty of Care", childText(got[0], "h3", ""))
	assert.Equal(t, "Strict Liability - Defective Products", childText(got[1], "h3", ""))
}

func TestProvisionsRenderer_All(t *testing.T) {
	kb := knowledge.Default()
	nodes := NewProvisionsRenderer(kb).Render(knowledge.AllCategories)

	var headers []string
	for _, h := range cards(nodes, "category-header") {
		headers = append(headers, view.TextContent(h))
	}
	assert.Equal(t, kb.Categories(), headers)
	assert.Len(t, cards(nodes, "provision-card"), kb.ProvisionCount())

	// category-then-item order
	var titles []string
	for _, category := range kb.Categories() {
		provisions, _ := kb.Provisions(category)
		for _, p := range provisions {
			titles = append(titles, p.Title)
		}
	}
	var rendered []string
	for _, c := range cards(nodes, "provision-card") {
		rendered = append(rendered, childText(c, "h3", ""))
	}
	assert.Equal(t, titles, rendered)
}

func TestProvisionsRenderer_UnknownCategory(t *testing.T) {
	nodes := NewProvisionsRenderer(knowledge.Default()).Render("Maritime Law")
	assert.Empty(t, nodes)
}

func TestProvisionsRenderer_Idempotent(t *testing.T) {
	r := NewProvisionsRenderer(knowledge.Default())
	render := func() string {
		out := ""
		for _, n := range r.Render(knowledge.AllCategories) {
			s, err := view.Render(n)
			require.NoError(t, err)
			out += s
		}
		return out
	}
	assert.Equal(t, render(), render())
}

func TestProvisionsRenderer_StaggerRestartsPerCategory(t *testing.T) {
	nodes := NewProvisionsRenderer(knowledge.Default()).Render(knowledge.AllCategories)
	got := cards(nodes, "provision-card")

	style := func(n *html.Node) string {
		v, _ := view.GetAttr(n, "style")
		return v
	}
	assert.Equal(t, "animation-delay: 0.0s", style(got[0]))
	assert.Equal(t, "animation-delay: 0.3s", style(got[3]))
	// first card of "Criminal Law"
	assert.Equal(t, "animation-delay: 0.0s", style(got[4]))
}

func TestCasesRenderer(t *testing.T) {
	kb := knowledge.Default()
	nodes := NewCasesRenderer(kb).Render()

	require.Len(t, nodes, len(kb.Cases()))
	assert.Equal(t, "Marbury v. Madison (1803)", childText(nodes[0], "h3", ""))
	assert.Equal(t, "Mapp v. Ohio (1961)", childText(nodes[len(nodes)-1], "h3", ""))

	first := kb.Cases()[0]
	assert.Equal(t, first.Court, childText(nodes[0], "p", "court"))
	assert.Equal(t, first.Citation, childText(nodes[0], "p", "citation"))
	assert.Equal(t, "Summary: "+first.Summary, childText(nodes[0], "p", "summary"))
	assert.Equal(t, "Key Holding: "+first.KeyHolding, childText(nodes[0], "p", "holding"))
}

func TestProjectIntroRenderer(t *testing.T) {
	info := knowledge.Default().Project()
	r, err := NewProjectIntroRenderer(info)
	require.NoError(t, err)

	root := view.El("div", nil, r.Render()...)

	assert.Equal(t, info.Headline, childText(root, "h2", ""))
	items := view.ByClass(root, "acknowledgment-item")
	require.Len(t, items, len(info.Acknowledgments))
	assert.Len(t, view.ByClass(root, "ack-note"), 1)
	assert.Len(t, view.ByClass(root, "feature-item"), len(info.Features))
	assert.Len(t, view.ByClass(root, "impl-card"), len(info.Implementation))
	assert.Len(t, view.ByClass(root, "roadmap-item"), len(info.Roadmap))

	disclaimer := view.ByClass(root, "disclaimer")
	require.Len(t, disclaimer, 1)
	assert.NotNil(t, view.Find(disclaimer[0], func(n *html.Node) bool { return n.Data == "ol" }))

	// a second render owns a fresh tree
	again := view.El("div", nil, r.Render()...)
	assert.NotSame(t, view.ByClass(root, "disclaimer")[0], view.ByClass(again, "disclaimer")[0])
}

func TestProjectIntroRenderer_NoDisclaimer(t *testing.T) {
	r, err := NewProjectIntroRenderer(models.ProjectInfo{Name: "x"})
	require.NoError(t, err)
	root := view.El("div", nil, r.Render()...)
	assert.Empty(t, view.ByClass(root, "disclaimer"))
}

func TestConsultationRenderer(t *testing.T) {
	nodes := NewConsultationRenderer(models.DefaultGenerationParams()).Render()
	require.Len(t, nodes, 1)

	params := view.ByClass(nodes[0], "param")
	require.Len(t, params, len(models.GenerationParamBounds)+1)
	assert.Equal(t, "0.1", childText(params[0], "span", "param-value"))
	assert.Equal(t, "512", childText(params[4], "span", "param-value"))
	assert.Equal(t, "on", childText(params[5], "span", "param-value"))
	assert.NotNil(t, view.ByID(nodes[0], "consultation-output"))
}

func TestStagger(t *testing.T) {
	assert.Equal(t, "animation-delay: 0.0s", Stagger(0))
	assert.Equal(t, "animation-delay: 1.2s", Stagger(12))
}

func TestConsultationRenderer_RenderAnswer(t *testing.T) {
	c := &models.Consultation{
		ID:        uuid.New(),
		Query:     "What is stare decisis?",
		Answer:    "Courts follow precedent.\n\nLower courts are bound by higher courts.",
		Cached:    true,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	nodes := NewConsultationRenderer(models.DefaultGenerationParams()).RenderAnswer(c)
	require.Len(t, nodes, 1)

	assert.Equal(t, "Query: What is stare decisis?", view.TextContent(view.ByClass(nodes[0], "query")[0]))
	paras := view.FindAll(view.ByClass(nodes[0], "answer")[0], func(n *html.Node) bool { return n.Data == "p" })
	assert.Len(t, paras, 2)
	assert.Equal(t, "Answered 2024-05-01 12:00 UTC (cached)", view.TextContent(view.ByClass(nodes[0], "answer-meta")[0]))
}
