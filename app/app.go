// Package app holds the portal's application state and page tree and the controllers that
// change them.
//
// # Description
//
// App replaces ambient page globals with one explicit State record. The page is an
// element tree whose nav links carry data-section and whose filter buttons carry
// data-category; the controllers toggle the "active" class through those attributes and
// keep State in step.
//
// # Thread Safety
//
// App is not safe for concurrent use. Callers serialize events the way a UI loop does.
package app

import (
	"fmt"

	"legalgpt-portal/feedback"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/render"
	"legalgpt-portal/view"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// App is the top-level controller owning state, page, renderers and feedback channels
type App struct {
	kb       *knowledge.KnowledgeBase
	sections []SectionView
	initial  SectionID
	defaults models.GenerationParams
	state    State
	page     *html.Node

	provisions   *render.ProvisionsRenderer
	cases        *render.CasesRenderer
	intro        *render.ProjectIntroRenderer
	consultation *render.ConsultationRenderer

	nav    *NavigationController
	filter *FilterController

	toast    *feedback.Toast
	busy     *feedback.Busy
	scroller Scroller
	logger   *zap.Logger
}

// Option is a functional option for App
type Option func(*App)

// WithSections replaces the registered section views
func WithSections(sections []SectionView) Option {
	return func(a *App) {
		a.sections = append([]SectionView(nil), sections...)
	}
}

// WithInitialSection sets the section active after start-up
func WithInitialSection(id SectionID) Option {
	return func(a *App) {
		a.initial = id
	}
}

// WithScroller sets the viewport collaborator
func WithScroller(s Scroller) Option {
	return func(a *App) {
		if s != nil {
			a.scroller = s
		}
	}
}

// WithToast sets the notification channel
func WithToast(t *feedback.Toast) Option {
	return func(a *App) {
		a.toast = t
	}
}

// WithBusy sets the busy indicator
func WithBusy(b *feedback.Busy) Option {
	return func(a *App) {
		a.busy = b
	}
}

// WithGenerationDefaults sets the parameters shown on the consultation form
func WithGenerationDefaults(p models.GenerationParams) Option {
	return func(a *App) {
		a.defaults = p
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// New builds the page, activates the initial section (the first registered one unless
// configured) and performs the initial render of every renderer.
func New(kb *knowledge.KnowledgeBase, opts ...Option) (*App, error) {
	a := &App{
		kb:       kb,
		sections: DefaultSections(),
		defaults: models.DefaultGenerationParams(),
		scroller: noopScroller{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if len(a.sections) == 0 {
		return nil, ErrNoSections
	}
	if a.initial == "" {
		a.initial = a.sections[0].ID
	}
	if a.toast == nil {
		a.toast = feedback.NewToast()
	}
	if a.busy == nil {
		a.busy = feedback.NewBusy(nil)
	}

	intro, err := render.NewProjectIntroRenderer(kb.Project())
	if err != nil {
		return nil, fmt.Errorf("creating project renderer: %w", err)
	}
	a.intro = intro
	a.provisions = render.NewProvisionsRenderer(kb)
	a.cases = render.NewCasesRenderer(kb)
	a.consultation = render.NewConsultationRenderer(a.defaults)

	a.page = buildPage(kb.Project().Name, a.sections, a.filterOptions())

	registered := make(map[SectionID]bool, len(a.sections))
	for _, s := range a.sections {
		registered[s.ID] = true
	}
	a.nav = &NavigationController{
		page:     a.page,
		state:    &a.state,
		sections: registered,
		scroller: a.scroller,
		logger:   a.logger,
	}
	a.filter = &FilterController{
		page:     a.page,
		state:    &a.state,
		renderer: a.provisions,
		logger:   a.logger,
	}

	if err := a.nav.Select(a.initial); err != nil {
		return nil, fmt.Errorf("activating initial section: %w", err)
	}

	a.fill(consultBox, a.consultation.Render())
	a.filter.Select(knowledge.AllCategories)
	a.fill(casesBox, a.cases.Render())
	a.fill(projectBox, a.intro.Render())
	a.logger.Info("portal initialized",
		zap.Int("sections", len(a.sections)),
		zap.Int("categories", len(kb.Categories())),
		zap.Int("cases", len(kb.Cases())),
	)
	return a, nil
}

func (a *App) fill(id string, nodes []*html.Node) {
	if box := view.ByID(a.page, id); box != nil {
		view.Replace(box, nodes)
	}
}

func (a *App) filterOptions() []filterOption {
	opts := []filterOption{{value: knowledge.AllCategories, label: "All"}}
	for _, c := range a.kb.Categories() {
		opts = append(opts, filterOption{value: c, label: c})
	}
	return opts
}

// SelectSection switches the visible section
func (a *App) SelectSection(id SectionID) error {
	return a.nav.Select(id)
}

// SelectCategory switches the provision filter
func (a *App) SelectCategory(name string) {
	a.filter.Select(name)
}

// State returns a copy of the selection state
func (a *App) State() State {
	return a.state
}

// Page returns the page tree
func (a *App) Page() *html.Node {
	return a.page
}

// SectionNode returns the element of section id, or nil
func (a *App) SectionNode(id SectionID) *html.Node {
	return view.ByID(a.page, string(id))
}

// ActiveSections returns the ids of every section element marked active. It has exactly
// one entry while the page is consistent.
func (a *App) ActiveSections() []SectionID {
	var out []SectionID
	for _, s := range view.ByClass(a.page, sectionClass) {
		if view.HasClass(s, activeClass) {
			id, _ := view.GetAttr(s, "id")
			out = append(out, SectionID(id))
		}
	}
	return out
}

// Sections returns the registered section views in navigation order
func (a *App) Sections() []SectionView {
	return append([]SectionView(nil), a.sections...)
}

// FilterValues returns the data-category values of the filter controls, "all" first
func (a *App) FilterValues() []string {
	opts := a.filterOptions()
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.value
	}
	return out
}

// Knowledge returns the knowledge base the app renders
func (a *App) Knowledge() *knowledge.KnowledgeBase {
	return a.kb
}

// Toast returns the notification channel
func (a *App) Toast() *feedback.Toast {
	return a.toast
}

// Busy returns the busy indicator
func (a *App) Busy() *feedback.Busy {
	return a.busy
}

// GenerationDefaults returns the consultation form defaults
func (a *App) GenerationDefaults() models.GenerationParams {
	return a.defaults
}

// ShowConsultation places an answered consultation in the consultation output area
func (a *App) ShowConsultation(c *models.Consultation) {
	a.fill(consultOutput, a.consultation.RenderAnswer(c))
}

// ClearConsultation empties the consultation output area
func (a *App) ClearConsultation() {
	a.fill(consultOutput, nil)
}
