package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentalpitch/internal/service"
	"mentalpitch/internal/stats"
)

// ProfileModel is the all-time profile screen model
type ProfileModel struct {
	queryService *service.QueryService
	profile      *stats.Profile
	loading      bool
	err          error
}

// NewProfileModel creates a new profile model
func NewProfileModel(qs *service.QueryService) ProfileModel {
	return ProfileModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the profile screen
func (m ProfileModel) Init() tea.Cmd {
	return m.loadProfile
}

type profileLoadedMsg struct {
	profile *stats.Profile
	err     error
}

func (m ProfileModel) loadProfile() tea.Msg {
	profile, err := m.queryService.GetProfile()
	return profileLoadedMsg{profile: profile, err: err}
}

// Update handles messages
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.profile = msg.profile
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadProfile
		}
	}
	return m, nil
}

// View renders the profile screen
func (m ProfileModel) View() string {
	if m.loading {
		return "\n  Loading profile..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.profile == nil {
		return "\n  No profile data. Press 's' to sync."
	}

	p := m.profile

	title := cardTitleStyle.Render("All-Time Profile")

	avgMood := "-"
	if p.AverageMood != nil {
		avgMood = fmt.Sprintf("%.1f/10", *p.AverageMood)
	}

	topType := "-"
	if p.MostActiveWorkoutType != nil {
		topType = *p.MostActiveWorkoutType
	}

	lines := []string{
		RenderMetric("Total entries", fmt.Sprintf("%d", p.TotalEntries), ""),
		RenderMetric("Current streak", formatDays(p.CurrentStreak), ""),
		RenderMetric("Longest streak", formatDays(p.LongestStreak), ""),
		RenderMetric("Average mood", avgMood, ""),
		RenderMetric("Top activity", topType, ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	help := statusStyle.Render("\n  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, card, help)
}
