// Package knowledge holds the compiled-in legal reference data: provisions grouped by
// category, landmark cases, and the project metadata shown on the about page.
//
// A KnowledgeBase is immutable once built. Every accessor returns a copy, so callers may
// modify what they receive without affecting other readers.
package knowledge

import (
	"legalgpt-portal/models"
)

// AllCategories is the filter sentinel selecting every category.
const AllCategories = "all"

// KnowledgeBase is the read-only collection of provisions, cases and project metadata
type KnowledgeBase struct {
	categories []models.Category
	index      map[string]int
	cases      []models.Case
	project    models.ProjectInfo
}

// New builds a KnowledgeBase from the given data. Category order is display order. A
// repeated category name keeps its first position and appends the later provisions to it.
func New(categories []models.Category, cases []models.Case, project models.ProjectInfo) *KnowledgeBase {
	kb := &KnowledgeBase{
		index: make(map[string]int, len(categories)),
		cases: append([]models.Case(nil), cases...),
	}
	for _, c := range categories {
		if i, ok := kb.index[c.Name]; ok {
			kb.categories[i].Provisions = append(kb.categories[i].Provisions, c.Provisions...)
			continue
		}
		kb.index[c.Name] = len(kb.categories)
		kb.categories = append(kb.categories, models.Category{
			Name:       c.Name,
			Provisions: append([]models.Provision(nil), c.Provisions...),
		})
	}
	kb.project = copyProject(project)
	return kb
}

// Default returns the knowledge base the portal ships with
func Default() *KnowledgeBase {
	return New(usProvisions(), landmarkCases(), projectInfo())
}

// Categories returns the category names in display order
func (kb *KnowledgeBase) Categories() []string {
	names := make([]string, len(kb.categories))
	for i, c := range kb.categories {
		names[i] = c.Name
	}
	return names
}

// HasCategory reports whether name is a known category
func (kb *KnowledgeBase) HasCategory(name string) bool {
	_, ok := kb.index[name]
	return ok
}

// Provisions returns the provisions of a category in display order
func (kb *KnowledgeBase) Provisions(category string) ([]models.Provision, bool) {
	i, ok := kb.index[category]
	if !ok {
		return nil, false
	}
	return append([]models.Provision(nil), kb.categories[i].Provisions...), true
}

// Select resolves a category filter into the ordered categories it covers. The "all"
// sentinel selects every category; an unknown name selects nothing.
func (kb *KnowledgeBase) Select(filter string) []models.Category {
	if filter == AllCategories {
		out := make([]models.Category, len(kb.categories))
		for i, c := range kb.categories {
			out[i] = models.Category{Name: c.Name, Provisions: append([]models.Provision(nil), c.Provisions...)}
		}
		return out
	}
	provisions, ok := kb.Provisions(filter)
	if !ok {
		return []models.Category{}
	}
	return []models.Category{{Name: filter, Provisions: provisions}}
}

// ProvisionCount returns the total number of provisions across all categories
func (kb *KnowledgeBase) ProvisionCount() int {
	n := 0
	for _, c := range kb.categories {
		n += len(c.Provisions)
	}
	return n
}

// Cases returns the landmark cases in display order
func (kb *KnowledgeBase) Cases() []models.Case {
	return append([]models.Case(nil), kb.cases...)
}

// Project returns the project metadata
func (kb *KnowledgeBase) Project() models.ProjectInfo {
	return copyProject(kb.project)
}

func copyProject(p models.ProjectInfo) models.ProjectInfo {
	p.Features = append([]models.Feature(nil), p.Features...)
	p.Implementation = append([]models.ImplementationStatus(nil), p.Implementation...)
	p.Roadmap = append([]models.Feature(nil), p.Roadmap...)
	p.Acknowledgments = append([]models.Acknowledgment(nil), p.Acknowledgments...)
	return p
}
