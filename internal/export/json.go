package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/studycycle/internal/cycle"
)

type jsonExport struct {
	ExportedAt       string        `json:"exported_at"`
	WeeklyHours      float64       `json:"weekly_hours"`
	ProgrammedHours  float64       `json:"programmed_hours"`
	AllocatedPercent int           `json:"allocated_percentage"`
	Days             []jsonDay     `json:"days"`
	Subjects         []jsonSubject `json:"subjects"`
}

type jsonDay struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

type jsonSubject struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage int     `json:"percentage"`
	Hours      float64 `json:"hours"`
}

func ToJSON(st cycle.State, path string) error {
	export := jsonExport{
		ExportedAt:       time.Now().UTC().Format(time.RFC3339),
		WeeklyHours:      st.WeeklyHours,
		ProgrammedHours:  st.TotalDailyHours(),
		AllocatedPercent: st.AllocatedPercentage(),
		Subjects:         []jsonSubject{},
	}

	for _, d := range cycle.Weekdays() {
		export.Days = append(export.Days, jsonDay{Day: d.String(), Hours: st.DailyHours[d]})
	}
	for _, subj := range st.Subjects {
		export.Subjects = append(export.Subjects, jsonSubject{
			ID:         subj.ID,
			Name:       subj.Name,
			Percentage: subj.Percentage,
			Hours:      cycle.SubjectHours(subj, st),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
