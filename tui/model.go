// Package tui provides the portal's interactive terminal client.
//
// # Description
//
// Model hosts an app.App inside a bubbletea program. Key presses drive the navigation and
// filter controllers; the active section's element tree is converted to Markdown and shown
// in a scrolling viewport. Consultations run asynchronously while a busy token is held and
// report their outcome through the toast.
//
// # Thread Safety
//
// Model is only used from the bubbletea event loop. Toast timers fire on other goroutines
// and reach the loop as messages.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legalgpt-portal/app"
	"legalgpt-portal/feedback"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/models"
	"legalgpt-portal/view"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Predictor answers consultation requests
type Predictor interface {
	Predict(ctx context.Context, req models.ConsultationRequest) (*models.Consultation, error)
}

// =============================================================================
// Messages
// =============================================================================

// predictionMsg carries the outcome of an asynchronous consultation
type predictionMsg struct {
	token        feedback.BusyToken
	consultation *models.Consultation
	err          error
}

// toastMsg signals that the visible notification changed
type toastMsg struct{}

// =============================================================================
// Options
// =============================================================================

type options struct {
	toastDuration  time.Duration
	clock          feedback.Clock
	requestTimeout time.Duration
	logger         *zap.Logger
}

// Option configures the terminal client
type Option func(*options)

// WithToastDuration sets how long notifications stay visible
func WithToastDuration(d time.Duration) Option {
	return func(o *options) { o.toastDuration = d }
}

// WithClock sets the clock scheduling toast dismissals
func WithClock(c feedback.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRequestTimeout bounds each consultation request
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// =============================================================================
// Model
// =============================================================================

const (
	inputHeight = 4
	chromeLines = 5 // title, tabs, filter bar, status, help
)

// Model is the bubbletea model of the portal
type Model struct {
	app       *app.App
	predictor Predictor
	toast     *feedback.Toast
	busy      *feedback.Busy
	toastCh   chan struct{}
	timeout   time.Duration
	logger    *zap.Logger

	viewport viewport.Model
	spinner  spinner.Model
	input    textarea.Model

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates the terminal client over kb. predictor may be nil, in which case
// consultations report an error.
func New(kb *knowledge.KnowledgeBase, predictor Predictor, opts ...Option) (*Model, error) {
	o := options{
		toastDuration:  feedback.DefaultToastDuration,
		requestTimeout: 2 * time.Minute,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		predictor: predictor,
		toastCh:   make(chan struct{}, 1),
		timeout:   o.requestTimeout,
		logger:    o.logger,
		viewport:  viewport.New(80, 20),
	}

	toastOpts := []feedback.ToastOption{
		feedback.WithDuration(o.toastDuration),
		feedback.WithToastChange(m.signalToast),
	}
	if o.clock != nil {
		toastOpts = append(toastOpts, feedback.WithClock(o.clock))
	}
	m.toast = feedback.NewToast(toastOpts...)
	m.busy = feedback.NewBusy(nil)

	a, err := app.New(kb,
		app.WithScroller(m),
		app.WithToast(m.toast),
		app.WithBusy(m.busy),
		app.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}
	m.app = a

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = busyStyle

	m.input = textarea.New()
	m.input.Placeholder = "Enter your legal question or request analysis..."
	m.input.ShowLineNumbers = false
	m.input.SetHeight(inputHeight)
	m.input.Focus()

	m.refresh()
	return m, nil
}

// App returns the hosted application
func (m *Model) App() *app.App {
	return m.app
}

// ScrollToTop implements app.Scroller
func (m *Model) ScrollToTop() {
	m.viewport.GotoTop()
}

func (m *Model) signalToast() {
	select {
	case m.toastCh <- struct{}{}:
	default:
	}
}

func (m *Model) waitForToast() tea.Cmd {
	ch := m.toastCh
	return func() tea.Msg {
		<-ch
		return toastMsg{}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForToast())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.SetWidth(msg.Width)
		m.layout()
		m.refresh()
		return m, nil

	case toastMsg:
		return m, m.waitForToast()

	case spinner.TickMsg:
		if !m.busy.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case predictionMsg:
		m.finishPrediction(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inputActive() {
			return m.handleInputKey(msg)
		}
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) inputActive() bool {
	return m.app.State().Section == app.SectionConsultation && m.input.Focused()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		return m, nil
	case "ctrl+s":
		return m, m.submit()
	case "tab":
		m.input.Blur()
		return m, m.moveSection(1)
	case "shift+tab":
		m.input.Blur()
		return m, m.moveSection(-1)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	section := m.app.State().Section

	switch key {
	case "q":
		m.quitting = true
		return true, tea.Quit
	case "tab":
		return true, m.moveSection(1)
	case "shift+tab":
		return true, m.moveSection(-1)
	case "x":
		m.toast.Dismiss()
		return true, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		sections := m.app.Sections()
		if i := int(key[0] - '1'); i < len(sections) {
			return true, m.selectSection(sections[i].ID)
		}
		return true, nil
	}

	switch section {
	case app.SectionConsultation:
		switch key {
		case "i", "enter":
			return true, m.input.Focus()
		case "c":
			m.app.ClearConsultation()
			m.refresh()
			return true, nil
		}
	case app.SectionProvisions:
		switch key {
		case "]", "l", "right":
			m.moveCategory(1)
			return true, nil
		case "[", "h", "left":
			m.moveCategory(-1)
			return true, nil
		case "a":
			m.app.SelectCategory(knowledge.AllCategories)
			m.refresh()
			return true, nil
		}
	}
	return false, nil
}

// =============================================================================
// Navigation
// =============================================================================

func (m *Model) selectSection(id app.SectionID) tea.Cmd {
	if err := m.app.SelectSection(id); err != nil {
		m.toast.Error(err.Error())
		return nil
	}
	m.layout()
	m.refresh()
	if id == app.SectionConsultation {
		return m.input.Focus()
	}
	return nil
}

func (m *Model) moveSection(delta int) tea.Cmd {
	sections := m.app.Sections()
	current := 0
	for i, s := range sections {
		if s.ID == m.app.State().Section {
			current = i
			break
		}
	}
	next := (current + delta + len(sections)) % len(sections)
	return m.selectSection(sections[next].ID)
}

func (m *Model) moveCategory(delta int) {
	values := m.app.FilterValues()
	current := 0
	for i, v := range values {
		if v == m.app.State().Category {
			current = i
			break
		}
	}
	next := (current + delta + len(values)) % len(values)
	m.app.SelectCategory(values[next])
	m.refresh()
}

// =============================================================================
// Consultation
// =============================================================================

func (m *Model) submit() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.toast.Error("Please enter a legal query")
		return nil
	}
	if m.predictor == nil {
		m.toast.Error("No consultation backend configured")
		return nil
	}

	token := m.busy.Show()
	req := models.ConsultationRequest{Query: query, GenerationParams: m.app.GenerationDefaults()}
	m.logger.Debug("submitting consultation", zap.Int("query_len", len(query)))
	return tea.Batch(m.spinner.Tick, m.predict(token, req))
}

func (m *Model) predict(token feedback.BusyToken, req models.ConsultationRequest) tea.Cmd {
	predictor, timeout := m.predictor, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		c, err := predictor.Predict(ctx, req)
		return predictionMsg{token: token, consultation: c, err: err}
	}
}

func (m *Model) finishPrediction(msg predictionMsg) {
	m.busy.Hide(msg.token)
	if msg.err != nil {
		m.logger.Warn("consultation failed", zap.Error(msg.err))
		m.toast.Error(fmt.Sprintf("Consultation failed: %v", msg.err))
		return
	}
	m.app.ShowConsultation(msg.consultation)
	m.input.Reset()
	if msg.consultation.Cached {
		m.toast.Info("Answer received (cached)")
	} else {
		m.toast.Info("Answer received")
	}
	m.refresh()
	m.viewport.GotoBottom()
}

// =============================================================================
// Rendering
// =============================================================================

func (m *Model) layout() {
	if !m.ready {
		return
	}
	h := m.height - chromeLines
	if m.app.State().Section == app.SectionConsultation {
		h -= inputHeight + 1
	}
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// refresh converts the active section to Markdown and loads it into the viewport
func (m *Model) refresh() {
	node := m.app.SectionNode(m.app.State().Section)
	if node == nil {
		return
	}
	md, err := view.Markdown(node)
	if err != nil {
		m.logger.Warn("failed to render section", zap.Error(err))
		md = view.TextContent(node)
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(strings.TrimSpace(md)))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.app.Knowledge().Project().Name))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.app.State().Section == app.SectionConsultation {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) renderTabs() string {
	var tabs []string
	for i, s := range m.app.Sections() {
		label := fmt.Sprintf("%d %s", i+1, s.Label)
		if s.ID == m.app.State().Section {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderFilters() string {
	if m.app.State().Section != app.SectionProvisions {
		return ""
	}
	var parts []string
	for _, v := range m.app.FilterValues() {
		label := v
		if v == knowledge.AllCategories {
			label = "All"
		}
		if v == m.app.State().Category {
			parts = append(parts, activeFilterStyle.Render(" "+label+" "))
		} else {
			parts = append(parts, filterStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderStatus() string {
	var parts []string
	if m.busy.Active() {
		parts = append(parts, m.spinner.View()+busyStyle.Render(" Consulting..."))
	}
	if n, ok := m.toast.Current(); ok {
		style := infoToastStyle
		if n.Severity == feedback.SeverityError {
			style = errorToastStyle
		}
		parts = append(parts, style.Render(n.Message))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) helpLine() string {
	switch {
	case m.inputActive():
		return "ctrl+s submit • esc leave input • tab next section • ctrl+c quit"
	case m.app.State().Section == app.SectionConsultation:
		return "i edit query • c clear answer • tab/1-4 sections • ↑/↓ scroll • q quit"
	case m.app.State().Section == app.SectionProvisions:
		return "[/] category • a all • tab/1-4 sections • ↑/↓ scroll • q quit"
	default:
		return "tab/1-4 sections • ↑/↓ scroll • x dismiss • q quit"
	}
}

// Run starts the terminal client and blocks until it exits
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
