package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studycycle/internal/cycle"
	"github.com/sirupsen/logrus"
)

type subjectsModel struct {
	engine *cycle.Engine
	log    logrus.FieldLogger
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form
	formName   *string
}

func newSubjectsModel(e *cycle.Engine, log logrus.FieldLogger) subjectsModel {
	name := ""
	return subjectsModel{
		engine:   e,
		log:      log,
		formName: &name,
	}
}

func (m *subjectsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m subjectsModel) update(msg tea.Msg) (subjectsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	subjects := m.engine.Subjects()
	// The list can shrink under the cursor when a saved cycle is restored.
	if m.cursor >= len(subjects) {
		m.cursor = max(0, len(subjects)-1)
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(subjects)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Increase):
		m.adjust(subjects, cycle.Increase)
	case key.Matches(keyMsg, keys.Decrease):
		m.adjust(subjects, cycle.Decrease)
	case key.Matches(keyMsg, keys.New):
		return m.showNewSubjectForm()
	case key.Matches(keyMsg, keys.Delete):
		if len(subjects) > 0 {
			subj := subjects[m.cursor]
			m.engine.RemoveSubject(subj.ID)
			m.log.WithField("subject", subj.Name).Debug("remove subject")
			if m.cursor >= len(subjects)-1 {
				m.cursor = max(0, len(subjects)-2)
			}
			return m, statusCmd("Removed "+subj.Name, false)
		}
	}
	return m, nil
}

func (m subjectsModel) adjust(subjects []cycle.SubjectView, dir cycle.Direction) {
	if len(subjects) == 0 {
		return
	}
	id := subjects[m.cursor].ID
	m.engine.AdjustSubjectPercentage(id, dir)
	hours, _ := m.engine.SubjectHours(id)
	m.log.WithFields(logrus.Fields{
		"subject":   subjects[m.cursor].Name,
		"direction": int(dir),
		"hours":     hours,
	}).Debug("adjust subject percentage")
}

func (m subjectsModel) showNewSubjectForm() (subjectsModel, tea.Cmd) {
	*m.formName = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject name").Value(m.formName),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m subjectsModel) updateForm(msg tea.Msg) (subjectsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		before := len(m.engine.Subjects())
		st := m.engine.AddSubject(*m.formName)
		if len(st.Subjects) > before {
			m.cursor = len(st.Subjects) - 1
			m.log.WithField("subject", st.Subjects[m.cursor].Name).Debug("add subject")
		}
		return m, nil
	}

	return m, cmd
}

func (m subjectsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Subject")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := titleStyle.Render("Subjects")
	subjects := m.engine.Subjects()

	if len(subjects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No subjects yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %8s %8s", "", "Name", "Share", "Hours")))

	for i, subj := range subjects {
		dot := lipgloss.NewStyle().Foreground(subjectColor(i)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%s %-24s %7d%% %8s", cursor, dot, subj.Name, subj.Percentage, formatHours(subj.Hours)))
		rows = append(rows, row)
	}

	allocated := 0
	for _, subj := range subjects {
		allocated += subj.Percentage
	}
	total := fmt.Sprintf("  Allocated %d%% of %s", allocated, formatWeekly(m.engine.WeeklyHours()))
	if allocated > 100 {
		rows = append(rows, "", warningStyle.Render(total+" (over budget)"))
	} else {
		rows = append(rows, "", mutedStyle.Render(total))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ←/→: ±5%  n: new  d: remove"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func subjectColor(i int) lipgloss.Color {
	return subjectColors[i%len(subjectColors)]
}
