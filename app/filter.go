package app

import (
	"legalgpt-portal/render"
	"legalgpt-portal/view"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// FilterController owns the provision category filter
type FilterController struct {
	page     *html.Node
	state    *State
	renderer *render.ProvisionsRenderer
	logger   *zap.Logger
}

// Select highlights the filter control for name and re-renders the provisions container.
// Unknown names are accepted: no control is highlighted and the container is left empty.
func (c *FilterController) Select(name string) {
	for _, btn := range view.ByClass(c.page, filterClass) {
		if v, _ := view.GetAttr(btn, categoryAttr); v == name {
			view.AddClass(btn, activeClass)
		} else {
			view.RemoveClass(btn, activeClass)
		}
	}

	if box := view.ByID(c.page, provisionsBox); box != nil {
		view.Replace(box, c.renderer.Render(name))
	}
	c.state.Category = name
	c.logger.Debug("category selected", zap.String("category", name))
}
