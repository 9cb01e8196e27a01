package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studycycle/internal/cycle"
)

type summaryModel struct {
	engine *cycle.Engine
	now    func() time.Time
	width  int
	height int
}

func newSummaryModel(e *cycle.Engine, now func() time.Time) summaryModel {
	return summaryModel{engine: e, now: now}
}

func (s *summaryModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s summaryModel) today() cycle.Weekday {
	return cycle.WeekdayOf(s.now().Weekday())
}

func (s summaryModel) view() string {
	w := s.width - 4

	weekly := fmt.Sprintf("%s %s", titleStyle.Render("Weekly"), bigNumberStyle.Render(formatWeekly(s.engine.WeeklyHours())))
	programmed := fmt.Sprintf("%s %s", titleStyle.Render("Programmed"), highlightStyle.Render(formatHours(s.engine.TotalDailyHours())))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, weekly, "    ", programmed)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "",
			s.renderDayProgress(w), "",
			titleStyle.Render("Hours per day"),
			s.renderDayChart(w), "",
			titleStyle.Render("Hours per subject"),
			s.renderSubjectChart(w),
		),
	)
}

func (s summaryModel) renderDayProgress(w int) string {
	today := s.today()
	pct := s.engine.DayProgress(today)

	barWidth := w - 10
	if barWidth < 10 {
		barWidth = 10
	}
	bar := progress.New(
		progress.WithSolidFill(string(colorPrimary)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	label := mutedStyle.Render(fmt.Sprintf("%s: %s", today.Name(), formatProgress(pct)))
	return lipgloss.JoinVertical(lipgloss.Left, bar.ViewAs(pct/100), label)
}

func (s summaryModel) chartSize(w int) (int, int) {
	chartWidth := w - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if s.height > 40 {
		chartHeight = 12
	}
	return chartWidth, chartHeight
}

func (s summaryModel) renderDayChart(w int) string {
	cw, ch := s.chartSize(w)
	chart := barchart.New(cw, ch)

	today := s.today()
	var bars []barchart.BarData
	for _, d := range cycle.Weekdays() {
		style := lipgloss.NewStyle().Foreground(colorSubtle)
		if d == today {
			style = lipgloss.NewStyle().Foreground(colorPrimary)
		}
		bars = append(bars, barchart.BarData{
			Label: d.Name()[:3],
			Values: []barchart.BarValue{{
				Name:  d.String(),
				Value: s.engine.DayHours(d),
				Style: style,
			}},
		})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

func (s summaryModel) renderSubjectChart(w int) string {
	subjects := s.engine.Subjects()
	if len(subjects) == 0 {
		return mutedStyle.Render("  No subjects yet")
	}

	cw, ch := s.chartSize(w)
	chart := barchart.New(cw, ch)

	var bars []barchart.BarData
	var legend string
	for i, subj := range subjects {
		style := lipgloss.NewStyle().Foreground(subjectColor(i))
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%d", i+1),
			Values: []barchart.BarValue{{
				Name:  subj.Name,
				Value: subj.Hours,
				Style: style,
			}},
		})
		legend += fmt.Sprintf("  %s %d %s %s", style.Render("●"), i+1, subj.Name, mutedStyle.Render(formatHours(subj.Hours)))
	}

	chart.PushAll(bars)
	chart.Draw()
	return lipgloss.JoinVertical(lipgloss.Left, chart.View(), legend)
}
