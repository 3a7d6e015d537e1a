package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rostrahealth/shiftbook/internal/model"
	"github.com/rostrahealth/shiftbook/internal/output"
	"github.com/rostrahealth/shiftbook/internal/schedule"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	snapshot *schedule.Snapshot
	unfilled []*model.Shift

	// Query layer
	query *schedule.Query

	// UI state
	year       int
	month      time.Month
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	maxUnfilled     int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Query           *schedule.Query
	Year            int
	Month           time.Month
	RefreshInterval time.Duration
	MaxUnfilled     int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 30 * time.Second
	}
	if config.MaxUnfilled == 0 {
		config.MaxUnfilled = 8
	}
	if config.Year == 0 {
		now := time.Now()
		config.Year = now.Year()
		config.Month = now.Month()
	}

	return &DashboardModel{
		query:           config.Query,
		year:            config.Year,
		month:           config.Month,
		refreshInterval: config.RefreshInterval,
		maxUnfilled:     config.MaxUnfilled,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil

	case "left", "h":
		m.shiftMonth(-1)
		m.loadData()
		return m, nil

	case "right", "l":
		m.shiftMonth(1)
		m.loadData()
		return m, nil
	}

	return m, nil
}

// shiftMonth moves the viewed month by delta months.
func (m *DashboardModel) shiftMonth(delta int) {
	t := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	m.year = t.Year()
	m.month = t.Month()
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderSites())
	sections = append(sections, m.renderUnfilled())
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Shiftbook Dashboard")
	monthStr := StyleSubtitle.Render(output.FormatMonth(m.year, m.month))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", monthStr) + "\n"
}

// renderSummary renders the month summary box.
func (m *DashboardModel) renderSummary() string {
	if m.snapshot == nil {
		return StyleSummaryBox.Render("No data loaded")
	}

	body := fmt.Sprintf("Unfilled shifts: %d\nAvailable providers: %d",
		len(m.snapshot.Unfilled), len(m.snapshot.AvailableProviders))

	if len(m.snapshot.Unfilled) > 0 {
		return StyleAlertBox.Render(body)
	}
	return StyleSummaryBox.Render(body)
}

// renderSites renders per-site coverage.
func (m *DashboardModel) renderSites() string {
	if m.snapshot == nil || len(m.snapshot.Sites) == 0 {
		return StyleSitesBox.Render(StyleMuted.Render("No sites with shifts this month"))
	}

	lines := StyleTitle.Render("Sites") + "\n"
	for _, site := range m.snapshot.Sites {
		line := fmt.Sprintf("%s  %d shifts", StyleClient.Render(site.ClientName), site.TotalShifts)
		if site.Unfilled > 0 {
			line += "  " + StyleUnfilled.Render(fmt.Sprintf("%d unfilled", site.Unfilled))
		}
		lines += line + "\n"
	}
	return StyleSitesBox.Render(lines)
}

// renderUnfilled renders the open shift list.
func (m *DashboardModel) renderUnfilled() string {
	if len(m.unfilled) == 0 {
		return StyleMuted.Render("No open shifts this month")
	}

	lines := StyleTitle.Render("Open Shifts") + "\n"
	shown := m.unfilled
	if len(shown) > m.maxUnfilled {
		shown = shown[:m.maxUnfilled]
	}
	for _, s := range shown {
		lines += fmt.Sprintf("%s  %s  %s\n",
			output.FormatDate(s.Start),
			StyleClient.Render(m.query.ClientDisplay(s.ClientID)),
			StyleMuted.Render(output.FormatTimeOnly(s.Start)+"–"+output.FormatTimeOnly(s.End)))
	}
	if len(m.unfilled) > m.maxUnfilled {
		lines += StyleMuted.Render(fmt.Sprintf("… and %d more", len(m.unfilled)-m.maxUnfilled)) + "\n"
	}
	return lines
}

// loadData reloads the month snapshot and open shift list.
func (m *DashboardModel) loadData() {
	snapshot, err := m.query.Snapshot(m.year, m.month)
	if err != nil {
		m.err = err
		return
	}
	m.snapshot = snapshot

	view, err := m.query.VisibleShifts(m.year, m.month, "", "")
	if err != nil {
		m.err = err
		return
	}

	m.unfilled = nil
	for _, s := range view.Shifts {
		if s.IsUnfilled() {
			m.unfilled = append(m.unfilled, s)
		}
	}

	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
