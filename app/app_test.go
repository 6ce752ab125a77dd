package app

import (
	"testing"

	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingScroller struct {
	calls int
}

func (s *countingScroller) ScrollToTop() { s.calls++ }

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	a, err := New(knowledge.Default(), opts...)
	require.NoError(t, err)
	return a
}

func activeLinks(a *App) []string {
	var out []string
	for _, link := range view.ByClass(a.Page(), navLinkClass) {
		if view.HasClass(link, activeClass) {
			v, _ := view.GetAttr(link, sectionAttr)
			out = append(out, v)
		}
	}
	return out
}

func activeFilters(a *App) []string {
	var out []string
	for _, btn := range view.ByClass(a.Page(), filterClass) {
		if view.HasClass(btn, activeClass) {
			v, _ := view.GetAttr(btn, categoryAttr)
			out = append(out, v)
		}
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, State{Section: SectionConsultation, Category: knowledge.AllCategories}, a.State())
	assert.Equal(t, []SectionID{SectionConsultation}, a.ActiveSections())
	assert.Equal(t, []string{"consultation"}, activeLinks(a))
	assert.Equal(t, []string{"all"}, activeFilters(a))

	// every container received its initial render
	assert.NotEmpty(t, view.Children(view.ByID(a.Page(), provisionsBox)))
	assert.Len(t, view.ByClass(view.ByID(a.Page(), casesBox), "case-card"), 10)
	assert.NotEmpty(t, view.Children(view.ByID(a.Page(), projectBox)))
	assert.NotNil(t, view.ByID(a.Page(), "query-input"))
}

func TestNew_FilterControls(t *testing.T) {
	a := newTestApp(t)

	want := append([]string{"all"}, knowledge.Default().Categories()...)
	assert.Equal(t, want, a.FilterValues())

	var got []string
	for _, btn := range view.ByClass(a.Page(), filterClass) {
		v, _ := view.GetAttr(btn, categoryAttr)
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

func TestNew_InitialSectionOption(t *testing.T) {
	a := newTestApp(t, WithInitialSection(SectionCases))
	assert.Equal(t, SectionCases, a.State().Section)

	_, err := New(knowledge.Default(), WithInitialSection("nowhere"))
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = New(knowledge.Default(), WithSections(nil))
	assert.ErrorIs(t, err, ErrNoSections)
}

func TestSelectSection_ExactlyOneActive(t *testing.T) {
	scroller := &countingScroller{}
	a := newTestApp(t, WithScroller(scroller))
	before := scroller.calls

	for _, s := range a.Sections() {
		require.NoError(t, a.SelectSection(s.ID))
		assert.Equal(t, []SectionID{s.ID}, a.ActiveSections())
		assert.Equal(t, []string{string(s.ID)}, activeLinks(a))
		assert.Equal(t, s.ID, a.State().Section)
	}
	assert.Equal(t, before+len(a.Sections()), scroller.calls)
}

func TestSelectSection_Idempotent(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.SelectSection(SectionAbout))
	first, err := view.Render(a.Page())
	require.NoError(t, err)

	require.NoError(t, a.SelectSection(SectionAbout))
	second, err := view.Render(a.Page())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectSection_Unknown(t *testing.T) {
	scroller := &countingScroller{}
	a := newTestApp(t, WithScroller(scroller))
	require.NoError(t, a.SelectSection(SectionCases))
	calls := scroller.calls

	err := a.SelectSection("appeals")
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Equal(t, SectionCases, a.State().Section)
	assert.Equal(t, []SectionID{SectionCases}, a.ActiveSections())
	assert.Equal(t, calls, scroller.calls)
}

func TestSelectCategory_TortLaw(t *testing.T) {
	a := newTestApp(t)

	a.SelectCategory("Tort Law")

	assert.Equal(t, "Tort Law", a.State().Category)
	assert.Equal(t, []string{"Tort Law"}, activeFilters(a))

	box := view.ByID(a.Page(), provisionsBox)
	assert.Len(t, view.ByClass(box, "category-header"), 1)
	assert.Len(t, view.ByClass(box, "provision-card"), 2)
	assert.Contains(t, view.TextContent(box), "Negligence")
}

func TestSelectCategory_AllRestoresEverything(t *testing.T) {
	a := newTestApp(t)
	kb := knowledge.Default()

	a.SelectCategory("Criminal Law")
	a.SelectCategory(knowledge.AllCategories)

	box := view.ByID(a.Page(), provisionsBox)
	assert.Len(t, view.ByClass(box, "category-header"), len(kb.Categories()))
	assert.Len(t, view.ByClass(box, "provision-card"), kb.ProvisionCount())
}

func TestSelectCategory_Unknown(t *testing.T) {
	a := newTestApp(t)

	a.SelectCategory("Maritime Law")

	assert.Equal(t, "Maritime Law", a.State().Category)
	assert.Empty(t, activeFilters(a))
	assert.Empty(t, view.Children(view.ByID(a.Page(), provisionsBox)))
}

func TestSelectCategory_Idempotent(t *testing.T) {
	a := newTestApp(t)

	a.SelectCategory("Civil Rights")
	first, err := view.Render(view.ByID(a.Page(), provisionsBox))
	require.NoError(t, err)

	a.SelectCategory("Civil Rights")
	second, err := view.Render(view.ByID(a.Page(), provisionsBox))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestShowConsultation(t *testing.T) {
	a := newTestApp(t)

	a.ShowConsultation(&models.Consultation{
		ID:     uuid.New(),
		Query:  "What did Gideon v. Wainwright hold?",
		Answer: "States must provide counsel to indigent defendants.",
	})
	out := view.ByID(a.Page(), consultOutput)
	require.NotNil(t, out)
	assert.Contains(t, view.TextContent(out), "indigent defendants")

	a.ClearConsultation()
	assert.Empty(t, view.Children(out))
}
