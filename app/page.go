package app

import (
	"legalgpt-portal/view"

	"golang.org/x/net/html"
)

// Element ids and classes forming the contract between the page tree and the controllers.
const (
	navLinkClass  = "nav-link"
	sectionClass  = "content-section"
	filterClass   = "filter-btn"
	activeClass   = "active"
	sectionAttr   = "data-section"
	categoryAttr  = "data-category"
	provisionsBox = "provisions-container"
	casesBox      = "cases-container"
	projectBox    = "project-content"
	consultBox    = "consultation-content"
	consultOutput = "consultation-output"
)

// buildPage creates the empty page skeleton: navigation, one section per view, and the
// containers the renderers fill.
func buildPage(title string, sections []SectionView, filters []filterOption) *html.Node {
	nav := view.El("nav", view.Class("nav"))
	for _, s := range sections {
		nav.AppendChild(view.TextEl("a", view.Class(navLinkClass,
			view.A("href", "#"+string(s.ID)),
			view.A(sectionAttr, string(s.ID)),
		), s.Label))
	}

	root := view.El("main", []view.Attr{view.A("id", "app")},
		view.El("header", view.Class("main-header"),
			view.TextEl("h1", nil, title),
		),
		nav,
	)
	for _, s := range sections {
		root.AppendChild(sectionNode(s, filters))
	}
	return root
}

func sectionNode(s SectionView, filters []filterOption) *html.Node {
	section := view.El("section", view.Class(sectionClass, view.A("id", string(s.ID))))

	switch s.ID {
	case SectionConsultation:
		section.AppendChild(container(consultBox))
	case SectionProvisions:
		bar := view.El("div", view.Class("filter-bar"))
		for _, f := range filters {
			bar.AppendChild(view.TextEl("button", view.Class(filterClass,
				view.A(categoryAttr, f.value),
			), f.label))
		}
		section.AppendChild(bar)
		section.AppendChild(container(provisionsBox))
	case SectionCases:
		section.AppendChild(view.TextEl("h2", nil, "Landmark Supreme Court Cases"))
		section.AppendChild(container(casesBox))
	case SectionAbout:
		section.AppendChild(container(projectBox))
	default:
		section.AppendChild(container(string(s.ID) + "-content"))
	}
	return section
}

func container(id string) *html.Node {
	return view.El("div", []view.Attr{view.A("id", id)})
}

type filterOption struct {
	value string
	label string
}
