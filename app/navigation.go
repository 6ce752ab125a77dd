package app

import (
	"errors"
	"fmt"

	"legalgpt-portal/view"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrNoSections     = errors.New("no sections registered")
)

// Scroller moves the viewport. Navigation scrolls to the top after every switch.
type Scroller interface {
	ScrollToTop()
}

type noopScroller struct{}

func (noopScroller) ScrollToTop() {}

// NavigationController owns the active section
type NavigationController struct {
	page     *html.Node
	state    *State
	sections map[SectionID]bool
	scroller Scroller
	logger   *zap.Logger
}

// Select activates section id and deactivates every other section and nav link. An id that
// is not registered returns ErrUnknownSection and leaves the page and state untouched, so
// exactly one section stays active.
func (c *NavigationController) Select(id SectionID) error {
	target := view.ByID(c.page, string(id))
	if !c.sections[id] || target == nil {
		c.logger.Debug("ignoring unknown section", zap.String("section", string(id)))
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}

	for _, link := range view.ByClass(c.page, navLinkClass) {
		if v, _ := view.GetAttr(link, sectionAttr); v == string(id) {
			view.AddClass(link, activeClass)
		} else {
			view.RemoveClass(link, activeClass)
		}
	}
	for _, section := range view.ByClass(c.page, sectionClass) {
		view.RemoveClass(section, activeClass)
	}
	view.AddClass(target, activeClass)

	c.state.Section = id
	c.scroller.ScrollToTop()
	c.logger.Debug("section selected", zap.String("section", string(id)))
	return nil
}
