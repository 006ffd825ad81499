package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentalpitch/internal/config"
	"mentalpitch/internal/service"
	"mentalpitch/internal/stats"
	"mentalpitch/internal/store"
)

// Screen identifiers
type Screen int

const (
	ScreenReport Screen = iota
	ScreenEntries
	ScreenProfile
	ScreenLog
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	report     ReportModel
	entries    EntriesModel
	profile    ProfileModel
	logEntry   NewEntryModel
	syncScreen SyncModel
	help       HelpModel

	// Services
	db           *store.DB
	queryService *service.QueryService
	syncService  *service.SyncService

	// Display settings
	defaultPeriod stats.Period
	chartWidth    int
	chartHeight   int

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.DB, syncService *service.SyncService, queryService *service.QueryService, display config.DisplayConfig) *App {
	period := stats.ParsePeriod(display.DefaultPeriod)

	return &App{
		screen:        ScreenReport,
		db:            db,
		queryService:  queryService,
		syncService:   syncService,
		defaultPeriod: period,
		chartWidth:    display.ChartWidth,
		chartHeight:   display.ChartHeight,
		report:        NewReportModel(queryService, period, display.ChartWidth, display.ChartHeight, 0, 0),
		entries:       NewEntriesModel(queryService),
		profile:       NewProfileModel(queryService),
		logEntry:      NewNewEntryModel(syncService, queryService),
		syncScreen:    NewSyncModel(syncService),
		help:          NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.report.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings. Disabled while syncing and while the log
		// form has focus, since its text inputs need the keys.
		formActive := a.screen == ScreenLog && !a.logEntry.logged
		syncBusy := a.screen == ScreenSync && a.syncScreen.syncing
		if !formActive && !syncBusy {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenReport
				a.report = NewReportModel(a.queryService, a.defaultPeriod, a.chartWidth, a.chartHeight, a.width, a.height)
				return a, a.report.Init()
			case "2":
				a.screen = ScreenEntries
				return a, a.entries.Init()
			case "3":
				a.screen = ScreenProfile
				return a, a.profile.Init()
			case "4", "l":
				a.screen = ScreenLog
				a.logEntry = NewNewEntryModel(a.syncService, a.queryService)
				return a, a.logEntry.Init()
			case "5", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
				// Let 's' fall through to sync screen when already there
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}
		// Allow quitting the log form with esc or ctrl+c
		if formActive {
			switch msg.String() {
			case "ctrl+c":
				return a, tea.Quit
			case "esc":
				a.screen = ScreenReport
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case SyncCompleteMsg:
		// Refresh the report after sync
		a.screen = ScreenReport
		a.report = NewReportModel(a.queryService, a.defaultPeriod, a.chartWidth, a.chartHeight, a.width, a.height)
		return a, a.report.Init()

	case EntryLoggedMsg:
		a.status = "Entry saved"
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenReport:
		var m tea.Model
		m, cmd = a.report.Update(msg)
		a.report = m.(ReportModel)
	case ScreenEntries:
		var m tea.Model
		m, cmd = a.entries.Update(msg)
		a.entries = m.(EntriesModel)
	case ScreenProfile:
		var m tea.Model
		m, cmd = a.profile.Update(msg)
		a.profile = m.(ProfileModel)
	case ScreenLog:
		var m tea.Model
		m, cmd = a.logEntry.Update(msg)
		a.logEntry = m.(NewEntryModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenReport:
		content = a.report.View()
	case ScreenEntries:
		content = a.entries.View()
	case ScreenProfile:
		content = a.profile.View()
	case ScreenLog:
		content = a.logEntry.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("MentalPitch Journal")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Report", ScreenReport},
		{"2", "Entries", ScreenEntries},
		{"3", "Profile", ScreenProfile},
		{"4", "Log", ScreenLog},
		{"5", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// SyncCompleteMsg is sent when sync finishes
type SyncCompleteMsg struct{}
