package cycle

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
)

// newTestEngine returns an empty engine with predictable subject IDs.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(State{})
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("subj-%d", n)
	}
	return e
}

// ============================================================
// Rounding and clamping
// ============================================================

func TestRoundToHalf(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.25, 0.5},
		{0.74, 0.5},
		{0.75, 1},
		{10, 10},
		{70.0 / 7, 10},
		{100.0 / 7, 14.5},
		{-0.25, -0.5},
	}
	for _, tt := range tests {
		if got := RoundToHalf(tt.in); got != tt.want {
			t.Errorf("RoundToHalf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundToHalfIdempotent(t *testing.T) {
	for _, x := range []float64{-3.3, -0.1, 0, 0.26, 1.74, 9.99, 13.5, 167.8, 1e6 + 0.3} {
		once := RoundToHalf(x)
		if twice := RoundToHalf(once); twice != once {
			t.Errorf("RoundToHalf not idempotent for %v: %v then %v", x, once, twice)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11) = %v, want 10", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5) = %v, want 5", got)
	}
	if got := Clamp(math.NaN(), 0, 10); got != 0 {
		t.Fatalf("Clamp(NaN) = %v, want 0", got)
	}
	if got := ClampMin(math.Inf(1), 0); !math.IsInf(got, 1) {
		t.Fatalf("ClampMin(+Inf) = %v, want +Inf", got)
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, x := range []float64{-50, 0, 3.5, 24, 30, 200} {
		once := Clamp(x, 0, 24)
		if twice := Clamp(once, 0, 24); twice != once {
			t.Errorf("Clamp not idempotent for %v: %v then %v", x, once, twice)
		}
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"NaN", 0},
		{"7.5", 7.5},
		{" 12 ", 12},
		{"-3", -3},
		{"7h", 7},
		{"7,5", 7},
		{"10 hours", 10},
		{".5", 0.5},
		{"3.", 3},
		{"2e1x", 20},
		{"4e", 4},
		{"-", 0},
		{".", 0},
		{"h7", 0},
	}
	for _, tt := range tests {
		if got := ParseHours(tt.in); got != tt.want {
			t.Errorf("ParseHours(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := ParseHours("1e400"); !math.IsInf(got, 1) {
		t.Errorf("ParseHours(1e400) = %v, want +Inf", got)
	}
	if got := ParseHours("-Infinity hours"); !math.IsInf(got, -1) {
		t.Errorf("ParseHours(-Infinity hours) = %v, want -Inf", got)
	}
}

func TestCommaDecimalKeepsPlan(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	st := e.SetWeeklyHours("7,5")
	if st.WeeklyHours != 7 {
		t.Fatalf("weekly = %v, want 7", st.WeeklyHours)
	}
	if st.DailyHours[Monday] != 1 {
		t.Fatalf("mon = %v, want 1", st.DailyHours[Monday])
	}
}

// ============================================================
// Weekdays
// ============================================================

func TestWeekdayOrderAndKeys(t *testing.T) {
	want := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	days := Weekdays()
	if len(days) != DaysInWeek {
		t.Fatalf("expected %d days, got %d", DaysInWeek, len(days))
	}
	for i, d := range days {
		if d.String() != want[i] {
			t.Fatalf("day %d = %s, want %s", i, d, want[i])
		}
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Wed")
	if err != nil || d != Wednesday {
		t.Fatalf("ParseWeekday(Wed) = %v, %v", d, err)
	}
	d, err = ParseWeekday("sunday")
	if err != nil || d != Sunday {
		t.Fatalf("ParseWeekday(sunday) = %v, %v", d, err)
	}
	if _, err := ParseWeekday("funday"); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestWeekdayOf(t *testing.T) {
	if WeekdayOf(time.Sunday) != Sunday {
		t.Fatal("time.Sunday should map to Sunday")
	}
	if WeekdayOf(time.Monday) != Monday {
		t.Fatal("time.Monday should map to Monday")
	}
	if WeekdayOf(time.Saturday) != Saturday {
		t.Fatal("time.Saturday should map to Saturday")
	}
}

// ============================================================
// Weekly and daily reconciliation
// ============================================================

func TestNewEngineEmpty(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()
	if s.WeeklyHours != 0 || s.TotalDailyHours() != 0 || len(s.Subjects) != 0 {
		t.Fatalf("expected empty state, got %+v", s)
	}
}

func TestSetWeeklyHoursDistributesEvenly(t *testing.T) {
	e := newTestEngine(t)
	s := e.SetWeeklyHours("70")

	if s.WeeklyHours != 70 {
		t.Fatalf("weekly = %v, want 70", s.WeeklyHours)
	}
	for _, d := range Weekdays() {
		if s.DailyHours[d] != 10 {
			t.Fatalf("%s = %v, want 10", d, s.DailyHours[d])
		}
	}
	if e.TotalDailyHours() != 70 {
		t.Fatalf("total daily = %v, want 70", e.TotalDailyHours())
	}
}

func TestSetWeeklyOverwritesCustomDays(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	e.SetDayHours(Monday, "20")
	s := e.SetWeeklyHours("14")

	for _, d := range Weekdays() {
		if s.DailyHours[d] != 2 {
			t.Fatalf("%s = %v, want 2 after redistribution", d, s.DailyHours[d])
		}
	}
}

func TestSetDayHoursRecomputesWeekly(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	s := e.SetDayHours(Monday, "20")

	if s.DailyHours[Monday] != 20 {
		t.Fatalf("mon = %v, want 20", s.DailyHours[Monday])
	}
	for _, d := range Weekdays()[1:] {
		if s.DailyHours[d] != 10 {
			t.Fatalf("%s = %v, want 10 (untouched)", d, s.DailyHours[d])
		}
	}
	if s.WeeklyHours != 80 {
		t.Fatalf("weekly = %v, want 80", s.WeeklyHours)
	}
}

func TestSetDayHoursClampsToDayBound(t *testing.T) {
	e := newTestEngine(t)
	s := e.SetDayHours(Friday, "100")
	if s.DailyHours[Friday] != MaxDailyHours {
		t.Fatalf("fri = %v, want %v", s.DailyHours[Friday], MaxDailyHours)
	}
	if s.WeeklyHours != MaxDailyHours {
		t.Fatalf("weekly = %v, want %v", s.WeeklyHours, MaxDailyHours)
	}
}

func TestSetWeeklyHoursCoercesInput(t *testing.T) {
	e := newTestEngine(t)
	if s := e.SetWeeklyHours("lots"); s.WeeklyHours != 0 {
		t.Fatalf("non-numeric input should be 0, got %v", s.WeeklyHours)
	}
	if s := e.SetWeeklyHours("-5"); s.WeeklyHours != 0 {
		t.Fatalf("negative input should clamp to 0, got %v", s.WeeklyHours)
	}
	if s := e.SetWeeklyHours("500"); s.WeeklyHours != MaxWeeklyHours {
		t.Fatalf("large input should clamp to %v, got %v", MaxWeeklyHours, s.WeeklyHours)
	}
	if s := e.SetWeeklyHours("1e400"); s.WeeklyHours != MaxWeeklyHours {
		t.Fatalf("overflow input should clamp to %v, got %v", MaxWeeklyHours, s.WeeklyHours)
	}
	if s := e.SetWeeklyHours("10.3"); s.WeeklyHours != 10.5 {
		t.Fatalf("10.3 should round to 10.5, got %v", s.WeeklyHours)
	}
}

func TestStepWeeklyHoursBounds(t *testing.T) {
	e := newTestEngine(t)
	if s := e.StepWeeklyHours(Decrease); s.WeeklyHours != 0 {
		t.Fatalf("stepping down from 0 gave %v", s.WeeklyHours)
	}

	e.SetWeeklyHours("168")
	if s := e.StepWeeklyHours(Increase); s.WeeklyHours != 168 {
		t.Fatalf("stepping up from 168 gave %v", s.WeeklyHours)
	}
	if s := e.StepWeeklyHours(Decrease); s.WeeklyHours != 167.5 {
		t.Fatalf("stepping down from 168 gave %v", s.WeeklyHours)
	}
}

func TestStepWeeklyHoursRedistributes(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("14")
	e.SetDayHours(Sunday, "0")
	s := e.StepWeeklyHours(Increase)

	// sunday cleared: 12 -> 12.5, split back to 2 per day
	if s.WeeklyHours != 12.5 {
		t.Fatalf("weekly = %v, want 12.5", s.WeeklyHours)
	}
	for _, d := range Weekdays() {
		if s.DailyHours[d] != 2 {
			t.Fatalf("%s = %v, want 2", d, s.DailyHours[d])
		}
	}
}

func TestStepDayHours(t *testing.T) {
	e := newTestEngine(t)
	s := e.StepDayHours(Tuesday, Increase)
	if s.DailyHours[Tuesday] != 0.5 || s.WeeklyHours != 0.5 {
		t.Fatalf("after step up: tue=%v weekly=%v", s.DailyHours[Tuesday], s.WeeklyHours)
	}

	s = e.StepDayHours(Tuesday, Decrease)
	s = e.StepDayHours(Tuesday, Decrease)
	if s.DailyHours[Tuesday] != 0 || s.WeeklyHours != 0 {
		t.Fatalf("after step down: tue=%v weekly=%v", s.DailyHours[Tuesday], s.WeeklyHours)
	}

	e.SetDayHours(Tuesday, "24")
	if s := e.StepDayHours(Tuesday, Increase); s.DailyHours[Tuesday] != 24 {
		t.Fatalf("tue stepped past 24: %v", s.DailyHours[Tuesday])
	}
}

func TestEditingOneDayLeavesOthers(t *testing.T) {
	e := newTestEngine(t)
	e.SetDayHours(Monday, "3")
	e.SetDayHours(Wednesday, "4.5")
	s := e.StepDayHours(Monday, Increase)

	if s.DailyHours[Wednesday] != 4.5 {
		t.Fatalf("wed changed to %v", s.DailyHours[Wednesday])
	}
	if s.WeeklyHours != 8 {
		t.Fatalf("weekly = %v, want 8", s.WeeklyHours)
	}
}

func TestUnknownDayIgnored(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("7")
	before := e.State()
	e.SetDayHours(Weekday(9), "5")
	after := e.StepDayHours(Weekday(-1), Increase)
	if after.DailyHours != before.DailyHours || after.WeeklyHours != before.WeeklyHours {
		t.Fatalf("unknown day changed state: %+v", after)
	}
}

func TestHoursStayOnHalfGrid(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{"13.3", "99.9", "0.26", "1"}
	for _, in := range inputs {
		s := e.SetWeeklyHours(in)
		assertHalfGrid(t, s)
		s = e.SetDayHours(Thursday, in)
		assertHalfGrid(t, s)
	}
}

func assertHalfGrid(t *testing.T, s State) {
	t.Helper()
	check := func(label string, v float64) {
		if v < 0 || v*2 != math.Trunc(v*2) {
			t.Fatalf("%s = %v is not a non-negative multiple of 0.5", label, v)
		}
	}
	check("weekly", s.WeeklyHours)
	if s.WeeklyHours > MaxWeeklyHours {
		t.Fatalf("weekly %v over bound", s.WeeklyHours)
	}
	for _, d := range Weekdays() {
		check(d.String(), s.DailyHours[d])
		if s.DailyHours[d] > MaxDailyHours {
			t.Fatalf("%s %v over bound", d, s.DailyHours[d])
		}
	}
}

// ============================================================
// Subjects
// ============================================================

func TestAddSubject(t *testing.T) {
	e := newTestEngine(t)
	e.AddSubject("Math")
	s := e.AddSubject("  History ")

	if len(s.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(s.Subjects))
	}
	if s.Subjects[0].Name != "Math" || s.Subjects[1].Name != "History" {
		t.Fatalf("unexpected order or names: %+v", s.Subjects)
	}
	if s.Subjects[0].ID == s.Subjects[1].ID {
		t.Fatal("subject IDs must be unique")
	}
	if s.Subjects[0].Percentage != 0 {
		t.Fatal("new subject should start at 0%")
	}
}

func TestAddSubjectBlankName(t *testing.T) {
	e := newTestEngine(t)
	if s := e.AddSubject("   "); len(s.Subjects) != 0 {
		t.Fatal("blank name should not add a subject")
	}
}

func TestAddSubjectUsesUUIDByDefault(t *testing.T) {
	e := NewEngine(State{})
	s := e.AddSubject("Physics")
	if len(s.Subjects[0].ID) != 36 {
		t.Fatalf("expected a uuid, got %q", s.Subjects[0].ID)
	}
}

func TestAddSubjectRegeneratesCollidingID(t *testing.T) {
	e := NewEngine(State{})
	ids := []string{"same", "same", "other"}
	e.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	e.AddSubject("A")
	s := e.AddSubject("B")
	if s.Subjects[1].ID != "other" {
		t.Fatalf("expected colliding ID to be regenerated, got %q", s.Subjects[1].ID)
	}
}

func TestAdjustSubjectPercentage(t *testing.T) {
	e := newTestEngine(t)
	e.AddSubject("Math")

	s := e.AdjustSubjectPercentage("subj-1", Increase)
	if s.Subjects[0].Percentage != 5 {
		t.Fatalf("expected 5, got %d", s.Subjects[0].Percentage)
	}

	s = e.AdjustSubjectPercentage("subj-1", Decrease)
	s = e.AdjustSubjectPercentage("subj-1", Decrease)
	if s.Subjects[0].Percentage != 0 {
		t.Fatalf("expected pinned at 0, got %d", s.Subjects[0].Percentage)
	}

	for i := 0; i < 25; i++ {
		s = e.AdjustSubjectPercentage("subj-1", Increase)
	}
	if s.Subjects[0].Percentage != 100 {
		t.Fatalf("expected pinned at 100, got %d", s.Subjects[0].Percentage)
	}
}

func TestAdjustUnknownSubject(t *testing.T) {
	e := newTestEngine(t)
	e.AddSubject("Math")
	s := e.AdjustSubjectPercentage("nope", Increase)
	if s.Subjects[0].Percentage != 0 {
		t.Fatal("unknown id should be a no-op")
	}
}

func TestSubjectHours(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	e.AddSubject("Math")
	for i := 0; i < 10; i++ {
		e.AdjustSubjectPercentage("subj-1", Increase)
	}

	h, ok := e.SubjectHours("subj-1")
	if !ok || h != 35 {
		t.Fatalf("subject hours = %v, %v; want 35", h, ok)
	}

	e.SetWeeklyHours("140")
	h, _ = e.SubjectHours("subj-1")
	if h != 70 {
		t.Fatalf("subject hours = %v after weekly change, want 70", h)
	}
	if subj, _ := e.State().FindSubject("subj-1"); subj.Percentage != 50 {
		t.Fatalf("percentage changed to %d", subj.Percentage)
	}

	if _, ok := e.SubjectHours("missing"); ok {
		t.Fatal("missing subject should report false")
	}
}

func TestSubjectsMayOverAllocate(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("10")
	e.AddSubject("A")
	e.AddSubject("B")
	for i := 0; i < 16; i++ {
		e.AdjustSubjectPercentage("subj-1", Increase)
		e.AdjustSubjectPercentage("subj-2", Increase)
	}

	views := e.Subjects()
	if views[0].Hours != 8 || views[1].Hours != 8 {
		t.Fatalf("expected 8h each, got %+v", views)
	}
	if e.State().AllocatedPercentage() != 160 {
		t.Fatalf("allocated = %d, want 160", e.State().AllocatedPercentage())
	}
}

func TestRemoveSubject(t *testing.T) {
	e := newTestEngine(t)
	e.AddSubject("A")
	e.AddSubject("B")
	e.AddSubject("C")

	s := e.RemoveSubject("subj-2")
	if len(s.Subjects) != 2 || s.Subjects[0].Name != "A" || s.Subjects[1].Name != "C" {
		t.Fatalf("unexpected subjects after remove: %+v", s.Subjects)
	}

	s = e.RemoveSubject("subj-2")
	if len(s.Subjects) != 2 {
		t.Fatal("removing an unknown id should be a no-op")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	e.AddSubject("A")
	snap := e.State()
	snap.Subjects[0].Name = "mutated"
	snap.DailyHours[Monday] = 99

	s := e.State()
	if s.Subjects[0].Name != "A" || s.DailyHours[Monday] != 0 {
		t.Fatal("mutating a snapshot leaked into the engine")
	}
}

// ============================================================
// Day progress
// ============================================================

func TestDayProgress(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	if got := e.DayProgress(Monday); math.Abs(got-100.0/7) > 1e-9 {
		t.Fatalf("progress = %v, want %v", got, 100.0/7)
	}

	e.SetDayHours(Monday, "0")
	if got := e.DayProgress(Monday); got != 0 {
		t.Fatalf("progress for empty day = %v, want 0", got)
	}
}

func TestDayProgressZeroWeekly(t *testing.T) {
	s := State{}
	s.DailyHours[Monday] = 5
	got := DayProgress(s, Monday)
	if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("progress = %v, want 0", got)
	}
}

func TestDayProgressClamped(t *testing.T) {
	s := State{WeeklyHours: 2}
	s.DailyHours[Monday] = 5
	if got := DayProgress(s, Monday); got != 100 {
		t.Fatalf("progress = %v, want 100", got)
	}
	if got := DayProgress(s, Weekday(12)); got != 0 {
		t.Fatalf("progress for invalid day = %v, want 0", got)
	}
}

// ============================================================
// Normalization and codec
// ============================================================

func TestNewEngineNormalizes(t *testing.T) {
	in := State{
		WeeklyHours: 300,
		Subjects: []Subject{
			{ID: "a", Name: "Math", Percentage: 42},
			{ID: "a", Name: "Dup", Percentage: 10},
			{ID: "b", Name: "  ", Percentage: 10},
			{ID: "", Name: "NoID", Percentage: 250},
		},
	}
	in.DailyHours[Monday] = -4
	in.DailyHours[Tuesday] = 30
	in.DailyHours[Wednesday] = 2.3

	s := NewEngine(in).State()
	if s.WeeklyHours != MaxWeeklyHours {
		t.Fatalf("weekly = %v", s.WeeklyHours)
	}
	if s.DailyHours[Monday] != 0 || s.DailyHours[Tuesday] != 24 || s.DailyHours[Wednesday] != 2.5 {
		t.Fatalf("days not normalized: %v", s.DailyHours)
	}
	if len(s.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %+v", s.Subjects)
	}
	if s.Subjects[0].Percentage != 40 {
		t.Fatalf("42%% should snap to 40, got %d", s.Subjects[0].Percentage)
	}
	if s.Subjects[1].ID == "" || s.Subjects[1].Percentage != 100 {
		t.Fatalf("unexpected second subject: %+v", s.Subjects[1])
	}
}

func TestResetReplacesState(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("70")
	e.AddSubject("Math")

	in := State{WeeklyHours: 13, Subjects: []Subject{{ID: "x", Name: "Art", Percentage: 12}}}
	in.DailyHours[Friday] = 13
	st := e.Reset(in)
	if st.WeeklyHours != 13 || st.DailyHours[Monday] != 0 || st.DailyHours[Friday] != 13 {
		t.Fatalf("unexpected state after reset: %+v", st)
	}
	if len(st.Subjects) != 1 || st.Subjects[0].Name != "Art" || st.Subjects[0].Percentage != 10 {
		t.Fatalf("subjects not replaced and normalized: %+v", st.Subjects)
	}

	in.Subjects[0].Name = "Changed"
	if e.State().Subjects[0].Name != "Art" {
		t.Fatal("engine must not alias the caller's slice")
	}
}

func TestSnapPercentage(t *testing.T) {
	tests := map[int]int{0: 0, 2: 0, 3: 5, 42: 40, 43: 45, 100: 100, -2: 0, -3: -5}
	for in, want := range tests {
		if got := snapPercentage(in); got != want {
			t.Errorf("snapPercentage(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestMarshalRoundTripPreservesOrder(t *testing.T) {
	e := newTestEngine(t)
	e.SetWeeklyHours("21")
	e.SetDayHours(Sunday, "6")
	e.AddSubject("Zoology")
	e.AddSubject("Algebra")
	e.AdjustSubjectPercentage("subj-2", Increase)

	data, err := Marshal(e.State())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"dailyHours":{"mon":3,"tue":3,"wed":3,"thu":3,"fri":3,"sat":3,"sun":6}`) {
		t.Fatalf("unexpected day encoding: %s", data)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.WeeklyHours != 24 || got.DailyHours[Sunday] != 6 {
		t.Fatalf("hours lost: %+v", got)
	}
	if got.Subjects[0].Name != "Zoology" || got.Subjects[1].Percentage != 5 {
		t.Fatalf("subjects lost: %+v", got.Subjects)
	}
}

func TestUnmarshalMissingAndUnknownDays(t *testing.T) {
	s, err := Unmarshal([]byte(`{"weeklyHours":4,"dailyHours":{"mon":4},"subjects":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.DailyHours[Monday] != 4 || s.DailyHours[Sunday] != 0 {
		t.Fatalf("unexpected days: %v", s.DailyHours)
	}

	_, err = Unmarshal([]byte(`{"dailyHours":{"someday":1}}`))
	if !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}

	if _, err := Unmarshal([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestUnmarshalRejectsSameDayTwice(t *testing.T) {
	for i := 0; i < 50; i++ {
		_, err := Unmarshal([]byte(`{"dailyHours":{"mon":1,"monday":5}}`))
		if !errors.Is(err, ErrDuplicateDay) {
			t.Fatalf("attempt %d: expected ErrDuplicateDay, got %v", i, err)
		}
	}

	s, err := Unmarshal([]byte(`{"dailyHours":{"Tuesday":3}}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.DailyHours[Tuesday] != 3 {
		t.Fatalf("tue = %v, want 3", s.DailyHours[Tuesday])
	}
}

func TestMarshalRejectsNonFinite(t *testing.T) {
	s := State{}
	s.DailyHours[Monday] = math.Inf(1)
	if _, err := Marshal(s); err == nil {
		t.Fatal("expected error for non-finite day hours")
	}
}

func TestDaysJSONIsObject(t *testing.T) {
	var d Days
	d[Saturday] = 1.5
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 7 || m["sat"] != 1.5 {
		t.Fatalf("unexpected map: %v", m)
	}
}
