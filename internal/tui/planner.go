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

// plannerRows is the weekly total plus one row per day.
const plannerRows = 1 + cycle.DaysInWeek

type plannerModel struct {
	engine *cycle.Engine
	log    logrus.FieldLogger
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form
	formValue  *string
}

func newPlannerModel(e *cycle.Engine, log logrus.FieldLogger) plannerModel {
	v := ""
	return plannerModel{
		engine:    e,
		log:       log,
		formValue: &v,
	}
}

func (p *plannerModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

// rowDay maps a planner row to its day, or false for the weekly row.
func rowDay(row int) (cycle.Weekday, bool) {
	if row == 0 {
		return 0, false
	}
	return cycle.Weekday(row - 1), true
}

func (p plannerModel) selectedDay() (cycle.Weekday, bool) {
	return rowDay(p.cursor)
}

func (p plannerModel) update(msg tea.Msg) (plannerModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < plannerRows-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Increase):
			p.step(cycle.Increase)
		case key.Matches(msg, keys.Decrease):
			p.step(cycle.Decrease)
		case key.Matches(msg, keys.Edit):
			return p.showEditForm()
		}
	}
	return p, nil
}

func (p plannerModel) step(dir cycle.Direction) {
	var st cycle.State
	day, isDay := p.selectedDay()
	if isDay {
		st = p.engine.StepDayHours(day, dir)
	} else {
		st = p.engine.StepWeeklyHours(dir)
	}
	p.log.WithFields(logrus.Fields{
		"row":          plannerRowLabel(p.cursor),
		"direction":    int(dir),
		"weekly_hours": st.WeeklyHours,
	}).Debug("step hours")
}

func (p plannerModel) apply(raw string) {
	var st cycle.State
	day, isDay := p.selectedDay()
	if isDay {
		st = p.engine.SetDayHours(day, raw)
	} else {
		st = p.engine.SetWeeklyHours(raw)
	}
	p.log.WithFields(logrus.Fields{
		"row":          plannerRowLabel(p.cursor),
		"input":        raw,
		"weekly_hours": st.WeeklyHours,
	}).Debug("set hours")
}

func (p plannerModel) currentValue() float64 {
	if day, ok := p.selectedDay(); ok {
		return p.engine.DayHours(day)
	}
	return p.engine.WeeklyHours()
}

func (p plannerModel) showEditForm() (plannerModel, tea.Cmd) {
	*p.formValue = fmt.Sprintf("%.1f", p.currentValue())

	limit := cycle.MaxWeeklyHours
	if _, ok := p.selectedDay(); ok {
		limit = cycle.MaxDailyHours
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(plannerRowLabel(p.cursor)).
				Description(fmt.Sprintf("Hours, 0 to %.0f, rounded to the nearest half hour", limit)).
				Value(p.formValue),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p plannerModel) updateForm(msg tea.Msg) (plannerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		p.form = nil
		p.apply(*p.formValue)
		return p, nil
	}

	return p, cmd
}

func (p plannerModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Edit Hours")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	title := titleStyle.Render("Weekly Plan")

	var rows []string
	rows = append(rows, title, "")
	for i := 0; i < plannerRows; i++ {
		value := p.engine.WeeklyHours()
		if day, ok := rowDay(i); ok {
			value = p.engine.DayHours(day)
		}

		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-14s  −  %5.1f  +", cursor, plannerRowLabel(i), value))
		rows = append(rows, row)
		if i == 0 {
			rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", 30)))
		}
	}

	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  Programmed  %s", highlightStyle.Render(formatHours(p.engine.TotalDailyHours()))))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ←/→: step 0.5h  enter: type a value  s: save"))
	rows = append(rows, mutedStyle.Render("  Changing the weekly total splits it evenly across all days."))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
