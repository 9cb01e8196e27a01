package cycle

import (
	"strings"

	"github.com/google/uuid"
)

// Direction of a stepper press.
type Direction int

const (
	Decrease Direction = -1
	Increase Direction = 1
)

func (d Direction) sign() float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

// SubjectView is what the presentation layer renders for a subject.
type SubjectView struct {
	ID         string
	Name       string
	Percentage int
	Hours      float64
}

// Engine owns one cycle state and keeps weekly, daily and subject values consistent.
// It is not safe for concurrent use; callers apply inputs one at a time.
type Engine struct {
	state State
	newID func() string
}

// NewEngine takes ownership of a normalized copy of initial.
func NewEngine(initial State) *Engine {
	e := &Engine{newID: uuid.NewString}
	e.state = e.normalize(initial)
	return e
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// SetWeeklyHours applies a direct edit of the weekly total and redistributes it evenly.
func (e *Engine) SetWeeklyHours(raw string) State {
	e.writeWeekly(ParseHours(raw))
	return e.State()
}

// StepWeeklyHours moves the weekly total by half an hour and redistributes it evenly.
func (e *Engine) StepWeeklyHours(dir Direction) State {
	e.writeWeekly(e.state.WeeklyHours + dir.sign()*HourStep)
	return e.State()
}

// SetDayHours applies a direct edit of one day and recomputes the weekly total.
// Unknown days are ignored.
func (e *Engine) SetDayHours(day Weekday, raw string) State {
	e.writeDay(day, ParseHours(raw))
	return e.State()
}

// StepDayHours moves one day by half an hour and recomputes the weekly total.
func (e *Engine) StepDayHours(day Weekday, dir Direction) State {
	if day.Valid() {
		e.writeDay(day, e.state.DailyHours[day]+dir.sign()*HourStep)
	}
	return e.State()
}

func (e *Engine) writeWeekly(v float64) {
	e.state.WeeklyHours = normalizeHours(v, MaxWeeklyHours)
	DistributeWeeklyToDays(&e.state)
}

func (e *Engine) writeDay(day Weekday, v float64) {
	if !day.Valid() {
		return
	}
	e.state.DailyHours[day] = normalizeHours(v, MaxDailyHours)
	RecalcWeeklyFromDays(&e.state)
}

// AddSubject appends a subject at 0%. A blank name is ignored.
func (e *Engine) AddSubject(name string) State {
	name = strings.TrimSpace(name)
	if name == "" {
		return e.State()
	}
	e.state.Subjects = append(e.state.Subjects, Subject{
		ID:   e.uniqueID(),
		Name: name,
	})
	return e.State()
}

// AdjustSubjectPercentage steps a subject's share by 5 points. Unknown IDs are a no-op.
func (e *Engine) AdjustSubjectPercentage(id string, dir Direction) State {
	if i := e.state.subjectIndex(id); i >= 0 {
		subj := &e.state.Subjects[i]
		subj.Percentage = AdjustPercentage(subj.Percentage, dir)
	}
	return e.State()
}

// RemoveSubject deletes a subject, keeping the order of the rest. Unknown IDs are a no-op.
func (e *Engine) RemoveSubject(id string) State {
	if i := e.state.subjectIndex(id); i >= 0 {
		e.state.Subjects = append(e.state.Subjects[:i], e.state.Subjects[i+1:]...)
	}
	return e.State()
}

// Reset replaces the whole state with a normalized copy of s.
func (e *Engine) Reset(s State) State {
	e.state = e.normalize(s)
	return e.State()
}

func (e *Engine) WeeklyHours() float64 {
	return e.state.WeeklyHours
}

func (e *Engine) DayHours(day Weekday) float64 {
	if !day.Valid() {
		return 0
	}
	return e.state.DailyHours[day]
}

func (e *Engine) TotalDailyHours() float64 {
	return e.state.TotalDailyHours()
}

func (e *Engine) DayProgress(today Weekday) float64 {
	return DayProgress(e.state, today)
}

// SubjectHours returns the derived hours of a subject, or false when the ID is unknown.
func (e *Engine) SubjectHours(id string) (float64, bool) {
	subj, ok := e.state.FindSubject(id)
	if !ok {
		return 0, false
	}
	return SubjectHours(subj, e.state), true
}

// Subjects lists subjects in display order with their derived hours.
func (e *Engine) Subjects() []SubjectView {
	views := make([]SubjectView, 0, len(e.state.Subjects))
	for _, subj := range e.state.Subjects {
		views = append(views, SubjectView{
			ID:         subj.ID,
			Name:       subj.Name,
			Percentage: subj.Percentage,
			Hours:      SubjectHours(subj, e.state),
		})
	}
	return views
}

func (e *Engine) uniqueID() string {
	for {
		id := e.newID()
		if e.state.subjectIndex(id) < 0 {
			return id
		}
	}
}

// normalize brings externally supplied state back inside the invariants.
func (e *Engine) normalize(s State) State {
	out := State{
		WeeklyHours: normalizeHours(s.WeeklyHours, MaxWeeklyHours),
	}
	for i, h := range s.DailyHours {
		out.DailyHours[i] = normalizeHours(h, MaxDailyHours)
	}

	seen := make(map[string]bool, len(s.Subjects))
	for _, subj := range s.Subjects {
		subj.Name = strings.TrimSpace(subj.Name)
		if subj.Name == "" {
			continue
		}
		if subj.ID == "" {
			subj.ID = e.newID()
		}
		if seen[subj.ID] {
			continue
		}
		seen[subj.ID] = true
		subj.Percentage = clampPercentage(snapPercentage(subj.Percentage))
		out.Subjects = append(out.Subjects, subj)
	}
	return out
}

func snapPercentage(p int) int {
	r := p % PercentageStep
	if r < 0 {
		r += PercentageStep
	}
	if r*2 >= PercentageStep {
		return p - r + PercentageStep
	}
	return p - r
}
