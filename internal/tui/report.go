package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"mentalpitch/internal/service"
	"mentalpitch/internal/stats"
)

// ReportModel is the stats report screen model
type ReportModel struct {
	queryService *service.QueryService
	period       stats.Period
	report       *stats.Report
	viewport     viewport.Model
	chartWidth   int
	chartHeight  int
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewReportModel creates a new report model
func NewReportModel(qs *service.QueryService, period stats.Period, chartWidth, chartHeight, width, height int) ReportModel {
	m := ReportModel{
		queryService: qs,
		period:       period,
		chartWidth:   chartWidth,
		chartHeight:  chartHeight,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return m.loadReport
}

type reportLoadedMsg struct {
	report *stats.Report
	err    error
}

func (m ReportModel) loadReport() tea.Msg {
	report, err := m.queryService.GetStatsReport(m.period)
	return reportLoadedMsg{report: report, err: err}
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.report != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "w":
			return m.switchPeriod(stats.PeriodWeek)
		case "m":
			return m.switchPeriod(stats.PeriodMonth)
		case "y":
			return m.switchPeriod(stats.PeriodYear)
		case "r":
			m.loading = true
			return m, m.loadReport
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ReportModel) switchPeriod(p stats.Period) (tea.Model, tea.Cmd) {
	if m.period == p {
		return m, nil
	}
	m.period = p
	m.loading = true
	return m, m.loadReport
}

// View renders the report screen
func (m ReportModel) View() string {
	if m.loading {
		return "\n  Loading report..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  w/m/y: period  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ReportModel) renderContent() string {
	if m.report == nil {
		return "\n  No report available."
	}

	var sections []string
	sections = append(sections, m.renderSummaryCard())

	if len(m.report.MoodTrends) > 2 {
		sections = append(sections, m.renderMoodChart())
	}

	if len(m.report.TypeDistribution) > 0 {
		sections = append(sections, m.renderDistribution())
	}

	sections = append(sections, m.renderTimePatterns())
	sections = append(sections, m.renderInsights())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportModel) renderSummaryCard() string {
	s := m.report.Summary

	title := cardTitleStyle.Render(fmt.Sprintf("This %s  (%s - %s)",
		capitalizeLabel(s.Period.String()),
		s.StartDate.Format("Jan 02"),
		s.EndDate.Format("Jan 02"),
	))

	avgMood := "-"
	if s.AverageMood != nil {
		avgMood = fmt.Sprintf("%.1f/10", *s.AverageMood)
	}

	topType := "-"
	if s.MostActiveWorkoutType != nil {
		topType = *s.MostActiveWorkoutType
	}

	lines := []string{
		RenderMetric("Entries", fmt.Sprintf("%d", s.TotalEntries), ""),
		RenderMetric("Average mood", avgMood, trendArrow(s.MoodTrend)),
		RenderMetric("Current streak", formatDays(s.Streaks.Current), ""),
		RenderMetric("Longest streak", formatDays(s.Streaks.Longest), ""),
		RenderMetric("Days logged", fmt.Sprintf("%d", s.Streaks.TotalDays), ""),
		RenderMetric("Top activity", topType, ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ReportModel) renderMoodChart() string {
	title := cardTitleStyle.Render("Mood Trend")

	var values []float64
	for _, p := range m.report.MoodTrends {
		if p.AverageMood != nil {
			values = append(values, *p.AverageMood)
		}
	}
	if len(values) < 2 {
		return ""
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(m.chartHeight),
		asciigraph.Width(m.chartWidth),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m ReportModel) renderDistribution() string {
	title := cardTitleStyle.Render("Workout Types")

	var rows []string
	for _, d := range m.report.TypeDistribution {
		avg := "-"
		if d.AverageMood != nil {
			avg = fmt.Sprintf("%.1f", *d.AverageMood)
		}

		name := d.WorkoutTypeName
		if name == "" {
			name = "Unknown"
		}

		bar := RenderProgressBar(d.Percentage/100, 20)
		rows = append(rows, fmt.Sprintf("  %-16s %s %5.1f%%  %3d entries  mood %s",
			truncateName(name, 16), bar, d.Percentage, d.EntryCount, avg))
	}

	table := strings.Join(rows, "\n")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m ReportModel) renderTimePatterns() string {
	title := cardTitleStyle.Render("Time of Day")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %8s  %8s", "Bucket", "Entries", "Mood"))
	rows := []string{header}

	for _, p := range m.report.TimePatterns {
		avg := "-"
		if p.AverageMood != nil {
			avg = fmt.Sprintf("%.1f", *p.AverageMood)
		}
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %8d  %8s",
			capitalizeLabel(string(p.TimeOfDay)), p.EntryCount, avg)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m ReportModel) renderInsights() string {
	title := cardTitleStyle.Render("Insights")

	var lines []string
	for _, insight := range m.report.Insights {
		lines = append(lines, insightStyle.Render("  • "+insight))
	}

	content := strings.Join(lines, "\n")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func trendArrow(t stats.TrendDirection) string {
	switch t {
	case stats.TrendImproving:
		return "↑"
	case stats.TrendDeclining:
		return "↓"
	default:
		return ""
	}
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func capitalizeLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
