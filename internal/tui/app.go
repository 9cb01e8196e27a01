package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studycycle/internal/cycle"
	"github.com/sadopc/studycycle/internal/export"
	"github.com/sadopc/studycycle/internal/onboarding"
	"github.com/sadopc/studycycle/internal/store"
	"github.com/sirupsen/logrus"
)

// App is the root Bubble Tea model. It is the only place that talks to both
// the cycle engine and the store.
type App struct {
	store  *store.Store
	engine *cycle.Engine
	log    logrus.FieldLogger
	now    func() time.Time
	width  int
	height int

	userName  string
	onboarded bool

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string

	onboarding onboardingModel
	planner    plannerModel
	subjects   subjectsModel
	summary    summaryModel
	settings   settingsModel

	help      help.Model
	status    string
	statusErr bool
}

// NewApp wires the views around an engine. Onboarding is skipped when the profile
// already has a name and a saved cycle.
func NewApp(s *store.Store, e *cycle.Engine, profile *store.Profile, log logrus.FieldLogger) App {
	h := help.New()
	h.ShowAll = false

	now := time.Now
	home, _ := os.UserHomeDir()

	return App{
		store:      s,
		engine:     e,
		log:        log,
		now:        now,
		activeView: viewPlanner,
		exportDir:  home,
		onboarding: newOnboardingModel(s, log, profile.UserName),
		planner:    newPlannerModel(e, log),
		subjects:   newSubjectsModel(e, log),
		summary:    newSummaryModel(e, now),
		settings:   newSettingsModel(s, e, log),
		help:       h,
		userName:   profile.UserName,
		onboarded:  onboarding.ShouldSkip(profile),
	}
}

// LoadEngine builds the engine from the stored cycle. A first cycle is seeded
// from the default_weekly_hours setting.
func LoadEngine(s *store.Store, profile *store.Profile) (*cycle.Engine, error) {
	st, err := s.LoadCycle()
	if err != nil {
		return nil, fmt.Errorf("load cycle: %w", err)
	}
	e := cycle.NewEngine(st)
	if !profile.HasStudyCycle {
		if v, err := s.GetSetting(store.KeyDefaultWeeklyHours); err == nil {
			e.SetWeeklyHours(v)
		}
	}
	return e, nil
}

// withClock replaces the time source used for "today".
func (a App) withClock(now func() time.Time) App {
	a.now = now
	a.summary.now = now
	return a
}

func (a App) Init() tea.Cmd {
	if !a.onboarded {
		return a.onboarding.Init()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.onboarding.setSize(a.width, contentHeight)
		a.planner.setSize(a.width, contentHeight)
		a.subjects.setSize(a.width, contentHeight)
		a.summary.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.onboarded {
			var cmd tea.Cmd
			a.onboarding, cmd = a.onboarding.update(msg)
			return a, cmd
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Save):
			return a, a.saveCycle()
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewPlanner
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewSubjects
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSummary
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			if a.activeView == viewSettings {
				return a, a.settings.refresh()
			}
			return a, nil
		}

	case onboardedMsg:
		a.onboarded = true
		a.userName = msg.name
		a.status = "Welcome, " + msg.name
		a.statusErr = false
		return a, nil

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case cycleSavedMsg:
		a.status = "Cycle saved"
		a.statusErr = false
		return a, a.settings.refresh()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	if !a.onboarded {
		var cmd tea.Cmd
		a.onboarding, cmd = a.onboarding.update(msg)
		return a, cmd
	}
	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewPlanner:
		a.planner, cmd = a.planner.update(msg)
	case viewSubjects:
		a.subjects, cmd = a.subjects.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewPlanner:
		return a.planner.formActive
	case viewSubjects:
		return a.subjects.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) saveCycle() tea.Cmd {
	st := a.engine.State()
	return func() tea.Msg {
		snap, err := a.store.SaveCycle(st)
		if err != nil {
			a.log.WithError(err).Error("save cycle")
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		a.log.WithFields(logrus.Fields{
			"snapshot":     snap.ID,
			"weekly_hours": st.WeeklyHours,
			"subjects":     len(st.Subjects),
		}).Info("cycle saved")
		return cycleSavedMsg{snapshot: snap}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch {
	case !a.onboarded:
		content = a.onboarding.view()
	case a.activeView == viewPlanner:
		content = a.planner.view()
	case a.activeView == viewSubjects:
		content = a.subjects.view()
	case a.activeView == viewSummary:
		content = a.summary.view()
	case a.activeView == viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker(contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	if a.onboarded {
		for i, name := range viewNames {
			if viewState(i) == a.activeView {
				tabs = append(tabs, activeTabStyle.Render(name))
			} else {
				tabs = append(tabs, inactiveTabStyle.Render(name))
			}
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	titleText := "studycycle"
	if a.onboarded && a.userName != "" {
		titleText += " · " + a.userName
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render(titleText)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := ""
	if a.onboarded {
		helpView = a.help.View(keys)
	}

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	weekly := ""
	if a.onboarded {
		weekly = highlightStyle.Render(" " + formatWeekly(a.engine.WeeklyHours()) + "/week")
	}

	left := footerStyle.Render(helpView)
	right := weekly + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"CSV", "JSON"}

func (a App) renderExportPicker(_ int) string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	st := a.engine.State()
	dir := a.exportDir
	dateStr := a.now().Format("2006-01-02")
	return func() tea.Msg {
		var path string
		if format == 0 {
			path = filepath.Join(dir, fmt.Sprintf("studycycle-export-%s.csv", dateStr))
			if err := export.ToCSV(st, path); err != nil {
				a.log.WithError(err).Error("export csv")
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(dir, fmt.Sprintf("studycycle-export-%s.json", dateStr))
			if err := export.ToJSON(st, path); err != nil {
				a.log.WithError(err).Error("export json")
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}
		a.log.WithField("path", path).Info("cycle exported")
		return exportDoneMsg{path: path}
	}
}
