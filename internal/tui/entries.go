package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentalpitch/internal/service"
	"mentalpitch/internal/store"
)

// EntriesModel is the journal entry list screen model
type EntriesModel struct {
	queryService *service.QueryService
	entries      []service.EntryWithType
	loading      bool
	err          error
	cursor       int
	offset       int
	pageSize     int
	total        int
}

// NewEntriesModel creates a new entries model
func NewEntriesModel(qs *service.QueryService) EntriesModel {
	return EntriesModel{
		queryService: qs,
		loading:      true,
		pageSize:     15,
	}
}

// Init initializes the entries screen
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries
}

type entriesLoadedMsg struct {
	entries []service.EntryWithType
	total   int
	err     error
}

func (m EntriesModel) loadEntries() tea.Msg {
	total, err := m.queryService.CountEntries()
	if err != nil {
		return entriesLoadedMsg{err: err}
	}

	entries, err := m.queryService.GetRecentEntries(m.pageSize, m.offset)
	return entriesLoadedMsg{entries: entries, total: total, err: err}
}

// Update handles messages
func (m EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.total = msg.total
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.offset = 0
			m.cursor = 0
			return m, m.loadEntries
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadEntries
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			} else if m.offset+len(m.entries) < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadEntries
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadEntries
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadEntries
			}
		}
	}
	return m, nil
}

// View renders the entries screen
func (m EntriesModel) View() string {
	if m.loading {
		return "\n  Loading entries..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var sections []string

	if m.total == 0 {
		sections = append(sections, cardTitleStyle.Render("Journal Entries"))
		sections = append(sections, "\n  No entries yet. Press 's' to sync or 'l' to log one.")
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	startNum := m.offset + 1
	endNum := m.offset + len(m.entries)

	title := cardTitleStyle.Render(fmt.Sprintf("Journal Entries - %d-%d of %d", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %-6s  %-14s  %4s  %-24s",
		"Date", "Time", "Type", "Mood", "Title"))
	sections = append(sections, header)

	for i, et := range m.entries {
		e := et.Entry

		timeStr := "-"
		if e.EntryTime != nil {
			timeStr = shortTime(*e.EntryTime)
		}

		typeStr := "-"
		if et.WorkoutTypeName != "" {
			typeStr = truncateName(et.WorkoutTypeName, 14)
		}

		moodStr := "-"
		if e.MoodScore != nil {
			moodStr = fmt.Sprintf("%d", *e.MoodScore)
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-10s  %-6s  %-14s  %4s  %-24s",
			cursor,
			e.EntryDate.Format(store.DateFormat),
			timeStr,
			typeStr,
			moodStr,
			truncateName(e.Title, 24),
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}

		// Show notes for the selected entry
		if i == m.cursor && e.Notes != "" {
			sections = append(sections, statusStyle.Render("    "+truncateName(e.Notes, 70)))
		}
	}

	help := statusStyle.Render("\n  j/k: navigate  pgup/pgdn: page  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// shortTime trims HH:MM:SS to HH:MM
func shortTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
