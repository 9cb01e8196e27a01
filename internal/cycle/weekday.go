package cycle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Weekday is one of the seven fixed day keys of a cycle, in calendar order.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of day keys every cycle carries.
const DaysInWeek = 7

var ErrUnknownDay = errors.New("unknown day")

// ErrDuplicateDay is returned when a day appears under more than one key.
var ErrDuplicateDay = errors.New("duplicate day")

var weekdayKeys = [DaysInWeek]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var weekdayNames = [DaysInWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekdays returns all days in calendar order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the short key ("mon".."sun").
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayKeys[d]
}

// Name returns the full English day name.
func (d Weekday) Name() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayNames[d]
}

// ParseWeekday accepts a short key or a full day name, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range weekdayKeys {
		if s == weekdayKeys[i] || s == strings.ToLower(weekdayNames[i]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("parse weekday %q: %w", s, ErrUnknownDay)
}

// WeekdayOf maps a time.Weekday (Sunday-first) onto the cycle's Monday-first keys.
func WeekdayOf(wd time.Weekday) Weekday {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd - time.Monday)
}
