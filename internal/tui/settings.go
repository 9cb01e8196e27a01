package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studycycle/internal/cycle"
	"github.com/sadopc/studycycle/internal/store"
	"github.com/sirupsen/logrus"
)

// recentSnapshots is how many saved cycles the settings view lists.
const recentSnapshots = 5

type settingsModel struct {
	store  *store.Store
	engine *cycle.Engine
	log    logrus.FieldLogger
	width  int
	height int

	defaultWeekly float64
	snapshots     []store.Snapshot

	// Row 0 is the default weekly budget; rows 1.. are saved cycles, newest first.
	cursor int

	formActive bool
	form       *huh.Form
	formValue  *string
}

func newSettingsModel(s *store.Store, e *cycle.Engine, log logrus.FieldLogger) settingsModel {
	v := ""
	return settingsModel{
		store:     s,
		engine:    e,
		log:       log,
		formValue: &v,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	defaultWeekly float64
	snapshots     []store.Snapshot
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		raw, err := s.store.GetSetting(store.KeyDefaultWeeklyHours)
		if err != nil {
			s.log.WithError(err).Warn("read default weekly hours")
		}
		snaps, err := s.store.ListSnapshots(recentSnapshots)
		if err != nil {
			s.log.WithError(err).Error("list snapshots")
		}
		return settingsDataMsg{
			defaultWeekly: cycle.Clamp(cycle.RoundToHalf(cycle.ParseHours(raw)), 0, cycle.MaxWeeklyHours),
			snapshots:     snaps,
		}
	}
}

func (s settingsModel) rows() int {
	return 1 + len(s.snapshots)
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.defaultWeekly = msg.defaultWeekly
		s.snapshots = msg.snapshots
		if s.cursor >= s.rows() {
			s.cursor = s.rows() - 1
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < s.rows()-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.New):
			return s, s.startNewCycle()
		case key.Matches(msg, keys.Enter):
			if s.cursor == 0 {
				return s.showForm()
			}
			return s, s.restore(s.snapshots[s.cursor-1].ID)
		}
	}
	return s, nil
}

// startNewCycle drops the current plan and starts over from the default budget.
func (s settingsModel) startNewCycle() tea.Cmd {
	s.engine.Reset(cycle.State{})
	st := s.engine.SetWeeklyHours(strconv.FormatFloat(s.defaultWeekly, 'f', -1, 64))
	s.log.WithField("weekly_hours", st.WeeklyHours).Info("new cycle")
	return statusCmd("New cycle at "+formatWeekly(st.WeeklyHours)+"/week", false)
}

func (s settingsModel) restore(id int64) tea.Cmd {
	snap, err := s.store.GetSnapshot(id)
	if err != nil {
		s.log.WithError(err).Error("restore cycle")
		return statusCmd(fmt.Sprintf("Restore error: %v", err), true)
	}
	st, err := snap.State()
	if err != nil {
		s.log.WithError(err).WithField("snapshot", id).Error("decode snapshot")
		return statusCmd(fmt.Sprintf("Restore error: %v", err), true)
	}
	s.engine.Reset(st)
	s.log.WithField("snapshot", id).Info("cycle restored")
	return statusCmd("Restored save from "+snap.SavedAt.Local().Format("2006-01-02 15:04"), false)
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.formValue = strconv.FormatFloat(s.defaultWeekly, 'f', -1, 64)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default weekly hours").
				Description("Budget a new cycle starts with").
				Value(s.formValue),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		return s, s.saveDefaultWeekly(*s.formValue)
	}

	return s, cmd
}

// saveDefaultWeekly stores raw with the same rounding and bounds as the weekly row.
func (s settingsModel) saveDefaultWeekly(raw string) tea.Cmd {
	v := cycle.Clamp(cycle.RoundToHalf(cycle.ParseHours(raw)), 0, cycle.MaxWeeklyHours)
	if err := s.store.SetSetting(store.KeyDefaultWeeklyHours, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
		s.log.WithError(err).Error("save default weekly hours")
		return statusCmd(fmt.Sprintf("Settings error: %v", err), true)
	}
	s.log.WithField("default_weekly_hours", v).Debug("set default weekly hours")
	return tea.Batch(s.refresh(), statusCmd("Default set to "+formatWeekly(v)+"/week", false))
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"), "")

	cursor, style := s.rowStyle(0)
	label := lipgloss.NewStyle().Width(24).Render("Default weekly hours")
	rows = append(rows, style.Render(cursor+label)+" "+successStyle.Render(formatWeekly(s.defaultWeekly)))

	rows = append(rows, "", subtitleStyle.Render("  Saved cycles"))
	if len(s.snapshots) == 0 {
		rows = append(rows, mutedStyle.Render("  Nothing saved yet. Press s to save the plan."))
	}
	for i, snap := range s.snapshots {
		cursor, style := s.rowStyle(i + 1)
		when := snap.SavedAt.Local().Format("2006-01-02 15:04")
		st, err := snap.State()
		if err != nil {
			rows = append(rows, style.Render(cursor+when)+" "+errorStyle.Render("unreadable"))
			continue
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s  %8s/week  %d subjects",
			cursor, when, formatWeekly(st.WeeklyHours), len(st.Subjects))))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: edit default or restore a save  n: new cycle from default"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s settingsModel) rowStyle(row int) (string, lipgloss.Style) {
	if row == s.cursor {
		return "> ", selectedItemStyle
	}
	return "  ", normalItemStyle
}
