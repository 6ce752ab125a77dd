package render

import (
	"strconv"
	"strings"

	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"golang.org/x/net/html"
)

// ConsultationRenderer renders the legal query form and its generation parameter panel
type ConsultationRenderer struct {
	defaults models.GenerationParams
}

// NewConsultationRenderer creates a consultation renderer showing the given defaults
func NewConsultationRenderer(defaults models.GenerationParams) *ConsultationRenderer {
	return &ConsultationRenderer{defaults: defaults}
}

// Render returns the consultation panel
func (r *ConsultationRenderer) Render() []*html.Node {
	values := []string{
		formatFloat(r.defaults.Temperature),
		formatFloat(r.defaults.TopP),
		strconv.Itoa(r.defaults.TopK),
		strconv.Itoa(r.defaults.NumBeams),
		strconv.Itoa(r.defaults.MaxTokens),
	}

	params := view.El("div", view.Class("generation-params"),
		view.TextEl("h4", nil, "Generation Parameters"),
	)
	for i, b := range models.GenerationParamBounds {
		params.AppendChild(view.El("div", view.Class("param", view.A("data-param", b.Name)),
			view.TextEl("label", nil, b.Name),
			view.TextEl("span", view.Class("param-value"), values[i]),
			view.TextEl("span", view.Class("param-range"), formatFloat(b.Min)+" - "+formatFloat(b.Max)),
			view.TextEl("span", view.Class("param-info"), b.Info),
		))
	}
	stream := "off"
	if r.defaults.Stream {
		stream = "on"
	}
	params.AppendChild(view.El("div", view.Class("param", view.A("data-param", "Stream Output")),
		view.TextEl("label", nil, "Stream Output"),
		view.TextEl("span", view.Class("param-value"), stream),
	))

	return []*html.Node{
		view.El("div", view.Class("consultation-panel"),
			view.TextEl("h2", nil, "Legal Consultation"),
			view.TextEl("label", view.Class("query-label"), "Legal Query"),
			view.El("textarea", view.Class("query-input",
				view.A("id", "query-input"),
				view.A("rows", "5"),
				view.A("placeholder", "Enter your legal question or request analysis..."),
			)),
			params,
			view.El("div", view.Class("consultation-output", view.A("id", "consultation-output"))),
		),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderAnswer returns the contents of the consultation output area for an answered query.
// The answer is split into paragraphs on blank lines.
func (r *ConsultationRenderer) RenderAnswer(c *models.Consultation) []*html.Node {
	answer := view.El("div", view.Class("answer"))
	for _, para := range strings.Split(strings.ReplaceAll(c.Answer, "\r\n", "\n"), "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			answer.AppendChild(view.TextEl("p", nil, para))
		}
	}

	meta := "Answered " + c.CreatedAt.Format("2006-01-02 15:04 MST")
	if c.Cached {
		meta += " (cached)"
	}
	return []*html.Node{
		view.El("div", view.Class("consultation-answer", view.A("data-id", c.ID.String())),
			labelled("query", "Query:", c.Query),
			answer,
			view.TextEl("p", view.Class("answer-meta"), meta),
		),
	}
}
