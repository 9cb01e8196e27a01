package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/studycycle/internal/cycle"
	"github.com/sadopc/studycycle/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewPlanner viewState = iota
	viewSubjects
	viewSummary
	viewSettings
)

var viewNames = []string{"Planner", "Subjects", "Summary", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type onboardedMsg struct {
	name string
}

type cycleSavedMsg struct {
	snapshot *store.Snapshot
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// formatWeekly shows an unset budget as a bare "0h".
func formatWeekly(h float64) string {
	if h == 0 {
		return "0h"
	}
	return formatHours(h)
}

func formatProgress(pct float64) string {
	return fmt.Sprintf("%.0f%% of the day planned", pct)
}

// plannerRowLabel names cursor rows on the planner: row 0 is the weekly total, rows 1..7 the days.
func plannerRowLabel(row int) string {
	if row == 0 {
		return "Weekly hours"
	}
	return cycle.Weekday(row - 1).Name()
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}
