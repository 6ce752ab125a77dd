package render

import (
	"bytes"
	"fmt"

	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// ProjectIntroRenderer renders the about page from static project metadata
type ProjectIntroRenderer struct {
	info       models.ProjectInfo
	disclaimer string // rendered markup of info.Disclaimer
}

// NewProjectIntroRenderer converts the Markdown disclaimer once; Render then only builds
// element trees.
func NewProjectIntroRenderer(info models.ProjectInfo) (*ProjectIntroRenderer, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(info.Disclaimer), &buf); err != nil {
		return nil, fmt.Errorf("converting disclaimer: %w", err)
	}
	return &ProjectIntroRenderer{info: info, disclaimer: buf.String()}, nil
}

// Render returns the about page sections in fixed order
func (r *ProjectIntroRenderer) Render() []*html.Node {
	out := []*html.Node{
		r.header(),
		r.features(),
		r.implementation(),
		r.roadmap(),
		r.acknowledgments(),
	}
	if d := r.disclaimerSection(); d != nil {
		out = append(out, d)
	}
	return out
}

func (r *ProjectIntroRenderer) header() *html.Node {
	info := r.info
	return view.El("div", view.Class("project-section"),
		view.El("div", view.Class("project-header"),
			view.TextEl("h2", nil, info.Headline),
			view.El("div", view.Class("github-badge"),
				externalLink("github-link", info.RepositoryURL, "View on GitHub"),
			),
		),
		view.El("div", view.Class("project-description"),
			view.TextEl("p", view.Class("lead-text"), info.Description),
			view.El("p", nil,
				view.TextEl("strong", nil, info.Name),
				view.Text(" has been open-sourced and is available for testing at "),
				externalLink("link-primary", info.RepositoryURL, info.RepositoryURL),
				view.Text(". Pre-trained models are located in the "),
				view.TextEl("code", nil, info.PretrainedModelsPath),
				view.Text(" folder."),
			),
		),
	)
}

func (r *ProjectIntroRenderer) features() *html.Node {
	list := view.El("div", view.Class("features-list"))
	for _, f := range r.info.Features {
		list.AppendChild(view.El("div", view.Class("feature-item"),
			view.TextEl("h4", nil, f.Title),
			view.TextEl("p", nil, f.Description),
		))
	}
	return view.El("div", view.Class("project-section"),
		view.TextEl("h3", nil, "Features & Capabilities"),
		list,
	)
}

func (r *ProjectIntroRenderer) implementation() *html.Node {
	grid := view.El("div", view.Class("implementation-grid"))
	for _, s := range r.info.Implementation {
		class, marker := "impl-card pending", "…"
		if s.Completed {
			class, marker = "impl-card completed", "✅"
		}
		grid.AppendChild(view.El("div", view.Class(class),
			view.TextEl("div", view.Class("impl-status"), marker),
			view.TextEl("h4", nil, s.Title),
			view.TextEl("p", nil, s.Description),
		))
	}
	return view.El("div", view.Class("project-section"),
		view.TextEl("h3", nil, "Project Completeness & Implementation Status"),
		grid,
	)
}

func (r *ProjectIntroRenderer) roadmap() *html.Node {
	list := view.El("div", view.Class("roadmap-list"))
	for _, item := range r.info.Roadmap {
		list.AppendChild(view.El("div", view.Class("roadmap-item"),
			view.TextEl("div", view.Class("roadmap-marker"), "🔵"),
			view.El("div", view.Class("roadmap-content"),
				view.TextEl("h4", nil, item.Title),
				view.TextEl("p", nil, item.Description),
			),
		))
	}
	return view.El("div", view.Class("project-section"),
		view.TextEl("h3", nil, "Future Roadmap"),
		list,
	)
}

func (r *ProjectIntroRenderer) acknowledgments() *html.Node {
	list := view.El("div", view.Class("acknowledgment-list"))
	for _, ack := range r.info.Acknowledgments {
		content := view.El("div", view.Class("ack-content"),
			view.El("h4", nil, externalLink("link-primary", ack.URL, ack.Name)),
			view.El("p", nil, externalLink("link-secondary", ack.URL, ack.URL)),
		)
		if ack.Note != "" {
			content.AppendChild(view.TextEl("p", view.Class("ack-note"), ack.Note))
		}
		list.AppendChild(view.El("div", view.Class("acknowledgment-item"),
			view.TextEl("div", view.Class("ack-icon"), "⭐"),
			content,
		))
	}
	return view.El("div", view.Class("project-section acknowledgments"),
		view.TextEl("h3", nil, "Acknowledgments"),
		view.TextEl("p", view.Class("acknowledgment-intro"),
			"This project is built upon the following open-source projects. We express sincere gratitude to the related projects and developers:"),
		list,
		view.El("div", view.Class("acknowledgment-footer"),
			view.El("p", nil,
				view.Text("Additionally, this project is based on open data resources. Please refer to "),
				view.TextEl("strong", nil, "Awesome American Legal Resources"),
				view.Text(" for more information. We express our gratitude for these resources as well."),
			),
		),
	)
}

// disclaimerSection parses fresh nodes on every call so each render owns its tree
func (r *ProjectIntroRenderer) disclaimerSection() *html.Node {
	if r.disclaimer == "" {
		return nil
	}
	nodes, err := view.ParseFragment(r.disclaimer, "div")
	if err != nil || len(nodes) == 0 {
		return nil
	}
	return view.El("div", view.Class("project-section disclaimer"), nodes...)
}

func externalLink(class, href, text string) *html.Node {
	return view.TextEl("a", view.Class(class, view.A("href", href), view.A("target", "_blank")), text)
}
