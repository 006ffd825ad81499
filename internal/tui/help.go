package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Stats report"},
		{"2", "Journal entries"},
		{"3", "Profile"},
		{"4 or l", "Log an entry"},
		{"5 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	reportSection := m.renderSection("Stats Report", []keyHelp{
		{"w / m / y", "Switch to week / month / year"},
		{"j / k", "Scroll"},
		{"r", "Refresh"},
	})
	sections = append(sections, reportSection)

	entriesSection := m.renderSection("Entries List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"r", "Refresh list"},
	})
	sections = append(sections, entriesSection)

	logSection := m.renderSection("Log Entry Form", []keyHelp{
		{"tab / shift+tab", "Move between fields"},
		{"ctrl+s", "Save entry"},
	})
	sections = append(sections, logSection)

	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	statsSection := m.renderStatsHelp()
	sections = append(sections, statsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderStatsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Render("Stats Explained"))
	lines = append(lines, "")

	items := []struct {
		name string
		desc string
	}{
		{"Current streak", "Consecutive days logged, counting back from today."},
		{"Longest streak", "Longest run of consecutive logged days ever."},
		{"Mood trend", "First half vs second half of the period. Needs a 0.3 point shift to register."},
		{"Workout types", "Share of entries per activity. Entries without a type are left out."},
		{"Time of day", "Morning 5-11, afternoon 12-16, evening 17-20, night otherwise."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	for _, item := range items {
		lines = append(lines, "  "+helpKeyStyle.Render(item.name))
		lines = append(lines, "  "+mutedStyle.Render(item.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
