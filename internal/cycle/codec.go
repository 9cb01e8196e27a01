package cycle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type stateJSON struct {
	WeeklyHours float64       `json:"weeklyHours"`
	DailyHours  Days          `json:"dailyHours"`
	Subjects    []subjectJSON `json:"subjects"`
}

type subjectJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// Marshal serializes a state record for the persistence collaborator.
func Marshal(s State) ([]byte, error) {
	out := stateJSON{
		WeeklyHours: s.WeeklyHours,
		DailyHours:  s.DailyHours,
		Subjects:    make([]subjectJSON, 0, len(s.Subjects)),
	}
	for _, subj := range s.Subjects {
		out.Subjects = append(out.Subjects, subjectJSON(subj))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal cycle: %w", err)
	}
	return data, nil
}

// Unmarshal restores a state record and normalizes it into the engine's invariants.
func Unmarshal(data []byte) (State, error) {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return State{}, fmt.Errorf("unmarshal cycle: %w", err)
	}
	s := State{
		WeeklyHours: in.WeeklyHours,
		DailyHours:  in.DailyHours,
	}
	for _, subj := range in.Subjects {
		s.Subjects = append(s.Subjects, Subject(subj))
	}
	return NewEngine(s).State(), nil
}

// MarshalJSON writes the days as an object keyed mon..sun in calendar order.
func (d Days) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("marshal %s hours: non-finite value", Weekday(i))
		}
		buf.WriteString(strconv.Quote(Weekday(i).String()))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(h, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts an object keyed by day. Missing days read as 0; a day
// given twice, as in "mon" and "monday", is an error.
func (d *Days) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Days
	var seen [DaysInWeek]bool
	for k, v := range raw {
		day, err := ParseWeekday(k)
		if err != nil {
			return err
		}
		if seen[day] {
			return fmt.Errorf("parse %s hours: %w", day, ErrDuplicateDay)
		}
		seen[day] = true
		out[day] = v
	}
	*d = out
	return nil
}
