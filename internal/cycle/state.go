package cycle

// Bounds and step sizes of the cycle inputs.
const (
	MaxWeeklyHours = 168.0
	MaxDailyHours  = 24.0
	HourStep       = 0.5

	MinPercentage  = 0
	MaxPercentage  = 100
	PercentageStep = 5
)

// Days holds planned hours per weekday, indexed by Weekday.
type Days [DaysInWeek]float64

// Total sums the hours of all seven days.
func (d Days) Total() float64 {
	var sum float64
	for _, h := range d {
		sum += h
	}
	return sum
}

// Subject is a named share of the weekly budget.
type Subject struct {
	ID         string
	Name       string
	Percentage int
}

// State is the whole cycle: weekly budget, daily split and subject allocations.
type State struct {
	WeeklyHours float64
	DailyHours  Days
	Subjects    []Subject
}

// TotalDailyHours is the programmed total across the seven days.
func (s State) TotalDailyHours() float64 {
	return s.DailyHours.Total()
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	if s.Subjects != nil {
		c.Subjects = make([]Subject, len(s.Subjects))
		copy(c.Subjects, s.Subjects)
	}
	return c
}

func (s State) subjectIndex(id string) int {
	for i := range s.Subjects {
		if s.Subjects[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSubject looks a subject up by ID.
func (s State) FindSubject(id string) (Subject, bool) {
	i := s.subjectIndex(id)
	if i < 0 {
		return Subject{}, false
	}
	return s.Subjects[i], true
}

// AllocatedPercentage sums the subject shares. It may exceed 100.
func (s State) AllocatedPercentage() int {
	total := 0
	for _, subj := range s.Subjects {
		total += subj.Percentage
	}
	return total
}

// DistributeWeeklyToDays overwrites every day with an equal share of the weekly budget.
func DistributeWeeklyToDays(s *State) {
	perDay := RoundToHalf(s.WeeklyHours / DaysInWeek)
	for i := range s.DailyHours {
		s.DailyHours[i] = perDay
	}
}

// RecalcWeeklyFromDays sets the weekly budget to the sum of the days.
// Days are left untouched.
func RecalcWeeklyFromDays(s *State) {
	s.WeeklyHours = RoundToHalf(s.DailyHours.Total())
}

// SubjectHours derives a subject's share of the weekly budget in hours.
func SubjectHours(subj Subject, s State) float64 {
	return RoundToHalf(float64(subj.Percentage) / 100 * s.WeeklyHours)
}

// DayProgress reports the share of the weekly budget planned for day, in [0, 100].
// A zero weekly budget has nothing to measure against and yields 0.
func DayProgress(s State, day Weekday) float64 {
	if !day.Valid() {
		return 0
	}
	planned := s.DailyHours[day]
	if planned <= 0 || s.WeeklyHours <= 0 {
		return 0
	}
	return Clamp(planned/s.WeeklyHours*100, 0, 100)
}

// AdjustPercentage moves p one step in dir, pinned to [0, 100].
func AdjustPercentage(p int, dir Direction) int {
	return clampPercentage(p + int(dir.sign())*PercentageStep)
}
