package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentalpitch/internal/service"
	"mentalpitch/internal/store"
)

// Form field indexes
const (
	fieldDate = iota
	fieldTime
	fieldMood
	fieldType
	fieldTitle
	fieldNotes
	fieldCount
)

// NewEntryModel is the quick-log form screen model
type NewEntryModel struct {
	syncService  *service.SyncService
	queryService *service.QueryService

	inputs     []textinput.Model
	focusIndex int
	types      []store.WorkoutType

	submitting bool
	err        error
	logged     bool
}

// NewNewEntryModel creates a new quick-log form
func NewNewEntryModel(ss *service.SyncService, qs *service.QueryService) NewEntryModel {
	inputs := make([]textinput.Model, fieldCount)

	date := textinput.New()
	date.Placeholder = time.Now().Format(store.DateFormat)
	date.CharLimit = 10
	date.Width = 12
	date.Focus()
	inputs[fieldDate] = date

	entryTime := textinput.New()
	entryTime.Placeholder = "HH:MM (optional)"
	entryTime.CharLimit = 5
	entryTime.Width = 18
	inputs[fieldTime] = entryTime

	mood := textinput.New()
	mood.Placeholder = "1-10 (optional)"
	mood.CharLimit = 2
	mood.Width = 18
	inputs[fieldMood] = mood

	workoutType := textinput.New()
	workoutType.Placeholder = "number from list (optional)"
	workoutType.CharLimit = 3
	workoutType.Width = 28
	inputs[fieldType] = workoutType

	title := textinput.New()
	title.Placeholder = "How did it go?"
	title.CharLimit = 120
	title.Width = 50
	inputs[fieldTitle] = title

	notes := textinput.New()
	notes.Placeholder = "Notes (optional)"
	notes.CharLimit = 500
	notes.Width = 50
	inputs[fieldNotes] = notes

	return NewEntryModel{
		syncService:  ss,
		queryService: qs,
		inputs:       inputs,
	}
}

// Init initializes the form
func (m NewEntryModel) Init() tea.Cmd {
	return tea.Batch(m.loadTypes, textinput.Blink)
}

type typesLoadedMsg struct {
	types []store.WorkoutType
	err   error
}

func (m NewEntryModel) loadTypes() tea.Msg {
	types, err := m.queryService.ListWorkoutTypes()
	return typesLoadedMsg{types: types, err: err}
}

// EntryLoggedMsg is sent when an entry is created successfully
type EntryLoggedMsg struct {
	Entry *store.Entry
}

type entrySubmitMsg struct {
	entry *store.Entry
	err   error
}

// Update handles messages
func (m NewEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typesLoadedMsg:
		m.types = msg.types
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case entrySubmitMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.logged = true
		return m, func() tea.Msg { return EntryLoggedMsg{Entry: msg.entry} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down", "enter":
			if msg.String() == "enter" && m.focusIndex == fieldCount-1 {
				return m.submit()
			}
			m.focusIndex = (m.focusIndex + 1) % fieldCount
			return m, m.refocus()
		case "shift+tab", "up":
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = fieldCount - 1
			}
			return m, m.refocus()
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *NewEntryModel) refocus() tea.Cmd {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return textinput.Blink
}

func (m NewEntryModel) submit() (tea.Model, tea.Cmd) {
	date, entryTime, moodScore, workoutTypeID, title, notes, err := m.parseForm()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.submitting = true

	return m, func() tea.Msg {
		entry, err := m.syncService.LogEntry(context.Background(), date, entryTime, moodScore, workoutTypeID, title, notes)
		return entrySubmitMsg{entry: entry, err: err}
	}
}

func (m NewEntryModel) parseForm() (date time.Time, entryTime *string, moodScore *int, workoutTypeID *string, title, notes string, err error) {
	dateStr := strings.TrimSpace(m.inputs[fieldDate].Value())
	if dateStr == "" {
		dateStr = time.Now().Format(store.DateFormat)
	}
	date, err = time.Parse(store.DateFormat, dateStr)
	if err != nil {
		err = fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
		return
	}

	if timeStr := strings.TrimSpace(m.inputs[fieldTime].Value()); timeStr != "" {
		full := timeStr + ":00"
		if _, parseErr := time.Parse(store.TimeFormat, full); parseErr != nil {
			err = fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
			return
		}
		entryTime = &full
	}

	if moodStr := strings.TrimSpace(m.inputs[fieldMood].Value()); moodStr != "" {
		mood, parseErr := strconv.Atoi(moodStr)
		if parseErr != nil || mood < 1 || mood > 10 {
			err = fmt.Errorf("mood must be a number from 1 to 10")
			return
		}
		moodScore = &mood
	}

	if typeStr := strings.TrimSpace(m.inputs[fieldType].Value()); typeStr != "" {
		idx, parseErr := strconv.Atoi(typeStr)
		if parseErr != nil || idx < 1 || idx > len(m.types) {
			err = fmt.Errorf("workout type must be a number from 1 to %d", len(m.types))
			return
		}
		id := m.types[idx-1].ID
		workoutTypeID = &id
	}

	title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	notes = strings.TrimSpace(m.inputs[fieldNotes].Value())
	return
}

var formLabels = [fieldCount]string{
	"Date",
	"Time",
	"Mood",
	"Workout type",
	"Title",
	"Notes",
}

// View renders the form
func (m NewEntryModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Log an Entry"))

	if m.submitting {
		sections = append(sections, "\n  Saving entry...")
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.logged {
		sections = append(sections, successStyle.Render("\n  Entry logged!"))
		sections = append(sections, statusStyle.Render("  Press '2' to view your entries"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for i, input := range m.inputs {
		label := metricLabelStyle.Render(formLabels[i])
		sections = append(sections, "  "+label+input.View())
	}

	if len(m.types) > 0 {
		var names []string
		for i, wt := range m.types {
			names = append(names, fmt.Sprintf("%d=%s", i+1, wt.Name))
		}
		sections = append(sections, "")
		sections = append(sections, statusStyle.Render("  Types: "+strings.Join(names, "  ")))
	}

	if m.err != nil {
		sections = append(sections, "")
		sections = append(sections, errorStyle.Render(fmt.Sprintf("  %v", m.err)))
	}

	sections = append(sections, "")
	sections = append(sections, statusStyle.Render("  tab/shift+tab: move  ctrl+s: save"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
