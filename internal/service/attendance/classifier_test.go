package attendance

import (
	"testing"
	"time"

	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
)

var standardShift = Shift{
	StartMinutes: 9 * 60,
	EndMinutes:   17 * 60,
	HoursPerDay:  8,
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func entryFor(t *testing.T, clockIn, clockOut string) *attendance.TimeEntry {
	t.Helper()
	entry := &attendance.TimeEntry{}
	if clockIn != "" {
		in := mustTime(t, clockIn)
		entry.ClockIn = &in
		entry.Date = time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.UTC)
	}
	if clockOut != "" {
		out := mustTime(t, clockOut)
		entry.ClockOut = &out
	}
	return entry
}

func TestClassifyDay(t *testing.T) {
	joinDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		date           time.Time
		entry          *attendance.TimeEntry
		wantStatus     attendance.DayStatus
		wantLateBy     int
		wantEarlyBy    int
		wantTotalHours float64
		wantOvertime   float64
	}{
		{
			name:       "no entry is absent",
			date:       date,
			entry:      nil,
			wantStatus: attendance.DayStatusAbsent,
		},
		{
			name:       "missing clock-out is incomplete",
			date:       date,
			entry:      entryFor(t, "2025-06-10 09:00", ""),
			wantStatus: attendance.DayStatusIncomplete,
		},
		{
			name:           "on-time full day is present",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:00", "2025-06-10 17:00"),
			wantStatus:     attendance.DayStatusPresent,
			wantTotalHours: 8,
		},
		{
			name:           "five minutes late",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:05", "2025-06-10 17:00"),
			wantStatus:     attendance.DayStatusLate,
			wantLateBy:     5,
			wantTotalHours: 7.92,
		},
		{
			name:           "early leave only",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:00", "2025-06-10 16:30"),
			wantStatus:     attendance.DayStatusEarlyLeave,
			wantEarlyBy:    30,
			wantTotalHours: 7.5,
		},
		{
			name:           "late and early leave combine",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:15", "2025-06-10 16:45"),
			wantStatus:     attendance.DayStatusLateEarly,
			wantLateBy:     15,
			wantEarlyBy:    15,
			wantTotalHours: 7.5,
		},
		{
			name:           "exact shift boundaries are not late or early",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:00", "2025-06-10 17:00"),
			wantStatus:     attendance.DayStatusPresent,
			wantTotalHours: 8,
		},
		{
			name:           "hours past the standard day are overtime",
			date:           date,
			entry:          entryFor(t, "2025-06-10 09:00", "2025-06-10 19:30"),
			wantStatus:     attendance.DayStatusPresent,
			wantTotalHours: 10.5,
			wantOvertime:   2.5,
		},
		{
			name:       "future date is not applicable",
			date:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			entry:      nil,
			wantStatus: attendance.DayStatusNotApplicable,
		},
		{
			name:       "date before join is not applicable",
			date:       time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			entry:      nil,
			wantStatus: attendance.DayStatusNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDay(tt.date, tt.entry, standardShift, joinDate, today)

			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.LateByMinutes != tt.wantLateBy {
				t.Errorf("late by = %d, want %d", got.LateByMinutes, tt.wantLateBy)
			}
			if got.EarlyByMinutes != tt.wantEarlyBy {
				t.Errorf("early by = %d, want %d", got.EarlyByMinutes, tt.wantEarlyBy)
			}
			if got.TotalHours != tt.wantTotalHours {
				t.Errorf("total hours = %v, want %v", got.TotalHours, tt.wantTotalHours)
			}
			if got.OvertimeHours != tt.wantOvertime {
				t.Errorf("overtime hours = %v, want %v", got.OvertimeHours, tt.wantOvertime)
			}
		})
	}
}

func TestClassifyDayShortShiftStillAccruesOvertime(t *testing.T) {
	shift := Shift{StartMinutes: 10 * 60, EndMinutes: 14 * 60, HoursPerDay: 4}
	joinDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	entry := entryFor(t, "2025-06-10 10:00", "2025-06-10 16:00")
	got := ClassifyDay(entry.Date, entry, shift, joinDate, today)

	if got.Status != attendance.DayStatusPresent {
		t.Errorf("status = %s, want present", got.Status)
	}
	if got.TotalHours != 6 || got.OvertimeHours != 2 {
		t.Errorf("hours = %v overtime = %v, want 6 and 2", got.TotalHours, got.OvertimeHours)
	}
}

func TestBuildMonthlyLogCoversEveryDay(t *testing.T) {
	joinDate := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	entries := []attendance.TimeEntry{
		*entryFor(t, "2025-06-09 09:00", "2025-06-09 17:00"),
		*entryFor(t, "2025-06-10 09:05", "2025-06-10 17:00"),
		*entryFor(t, "2025-06-11 09:00", ""),
	}
	holidays := []holiday.Holiday{
		{Name: "Founders Day", Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
	}

	log := BuildMonthlyLog(6, 2025, entries, standardShift, joinDate, today, holidays)

	if len(log) != 30 {
		t.Fatalf("log days = %d, want 30", len(log))
	}

	if log[3].Status != attendance.DayStatusNotApplicable {
		t.Errorf("june 4 status = %s, want not_applicable", log[3].Status)
	}
	if log[8].Status != attendance.DayStatusPresent {
		t.Errorf("june 9 status = %s, want present", log[8].Status)
	}
	if log[9].Status != attendance.DayStatusLate || log[9].LateByMinutes != 5 {
		t.Errorf("june 10 status = %s late by = %d, want late by 5", log[9].Status, log[9].LateByMinutes)
	}
	if log[10].Status != attendance.DayStatusIncomplete {
		t.Errorf("june 11 status = %s, want incomplete", log[10].Status)
	}
	if !log[11].IsHoliday || log[11].HolidayName == nil || *log[11].HolidayName != "Founders Day" {
		t.Errorf("june 12 should carry the holiday annotation")
	}
	if log[29].Status != attendance.DayStatusNotApplicable {
		t.Errorf("june 30 status = %s, want not_applicable", log[29].Status)
	}
}

func TestSummarizeStatusCountsCoverTheMonth(t *testing.T) {
	joinDate := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	entries := []attendance.TimeEntry{
		*entryFor(t, "2025-06-09 09:00", "2025-06-09 17:00"),
		*entryFor(t, "2025-06-10 09:05", "2025-06-10 17:00"),
		*entryFor(t, "2025-06-11 09:00", ""),
		*entryFor(t, "2025-06-12 09:00", "2025-06-12 16:00"),
	}

	log := BuildMonthlyLog(6, 2025, entries, standardShift, joinDate, today, nil)
	got := Summarize("emp-1", 6, 2025, log)

	total := got.PresentDays + got.AbsentDays + got.IncompletePunches + got.NotApplicableDays
	if total != 30 {
		t.Errorf("status counts sum to %d, want 30", total)
	}

	if got.PresentDays != 3 {
		t.Errorf("present days = %d, want 3", got.PresentDays)
	}
	if got.IncompletePunches != 1 {
		t.Errorf("incomplete punches = %d, want 1", got.IncompletePunches)
	}
	if got.LateArrivals != 1 {
		t.Errorf("late arrivals = %d, want 1", got.LateArrivals)
	}
	if got.EarlyLeaves != 1 {
		t.Errorf("early leaves = %d, want 1", got.EarlyLeaves)
	}
	// 8 + 7.92 + 7 worked hours; the incomplete punch contributes none.
	if got.TotalHoursWorked != 22.92 {
		t.Errorf("total hours = %v, want 22.92", got.TotalHoursWorked)
	}
	if got.AverageHoursPerDay != 7.64 {
		t.Errorf("average hours = %v, want 7.64", got.AverageHoursPerDay)
	}
}

func TestSummarizeZeroPresentDaysHasZeroAverage(t *testing.T) {
	joinDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	log := BuildMonthlyLog(6, 2025, nil, standardShift, joinDate, today, nil)
	got := Summarize("emp-1", 6, 2025, log)

	if got.PresentDays != 0 {
		t.Fatalf("present days = %d, want 0", got.PresentDays)
	}
	if got.AverageHoursPerDay != 0 {
		t.Errorf("average hours = %v, want 0", got.AverageHoursPerDay)
	}
	if got.AbsentDays != 10 || got.NotApplicableDays != 20 {
		t.Errorf("absent = %d not applicable = %d, want 10 and 20", got.AbsentDays, got.NotApplicableDays)
	}
}
