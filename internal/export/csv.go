package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/studycycle/internal/cycle"
)

// ToCSV writes the subjects section, a blank row, then the days section.
func ToCSV(st cycle.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Subject", "Percentage", "Hours"}); err != nil {
		return err
	}
	for _, subj := range st.Subjects {
		row := []string{
			subj.ID,
			subj.Name,
			strconv.Itoa(subj.Percentage),
			formatHours(cycle.SubjectHours(subj, st)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return err
	}

	if err := w.Write([]string{"Day", "Hours"}); err != nil {
		return err
	}
	for _, d := range cycle.Weekdays() {
		if err := w.Write([]string{d.Name(), formatHours(st.DailyHours[d])}); err != nil {
			return err
		}
	}
	if err := w.Write([]string{"Total", formatHours(st.TotalDailyHours())}); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}
