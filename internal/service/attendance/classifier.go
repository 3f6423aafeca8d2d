package attendance

import (
	"math"
	"time"

	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

// Shift is an employee's standard working window, expressed in minutes
// since midnight so classification never depends on timezones.
type Shift struct {
	StartMinutes int
	EndMinutes   int
	HoursPerDay  float64
}

// ShiftFromEmployee builds a Shift from the employee's schedule fields.
// Malformed times fall back to a 09:00-17:00 window.
func ShiftFromEmployee(emp employee.Employee) Shift {
	start, ok := validator.ParseTimeOfDay(emp.StandardShiftStart)
	if !ok {
		start = 9 * 60
	}
	end, ok := validator.ParseTimeOfDay(emp.StandardShiftEnd)
	if !ok {
		end = 17 * 60
	}
	return Shift{
		StartMinutes: start,
		EndMinutes:   end,
		HoursPerDay:  emp.StandardHoursPerDay,
	}
}

// DayResult is the classification of a single calendar day.
type DayResult struct {
	Status         attendance.DayStatus
	LateByMinutes  int
	EarlyByMinutes int
	TotalHours     float64
	OvertimeHours  float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClassifyDay derives the status of one calendar day from its raw time
// entry. Rules apply in precedence order: future or pre-join dates are
// not_applicable, a missing entry is absent, an entry without clock-out
// is incomplete, then late/early-leave against the shift window. A
// clock-in exactly at shift start is not late and a clock-out exactly at
// shift end is not early (strict inequalities).
func ClassifyDay(date time.Time, entry *attendance.TimeEntry, shift Shift, joinDate, today time.Time) DayResult {
	day := dateOnly(date)

	if day.Before(dateOnly(joinDate)) || day.After(dateOnly(today)) {
		return DayResult{Status: attendance.DayStatusNotApplicable}
	}

	if entry == nil || entry.ClockIn == nil {
		return DayResult{Status: attendance.DayStatusAbsent}
	}

	if entry.ClockOut == nil {
		return DayResult{Status: attendance.DayStatusIncomplete}
	}

	result := DayResult{Status: attendance.DayStatusPresent}

	inMinutes := minutesOfDay(*entry.ClockIn)
	if inMinutes > shift.StartMinutes {
		result.LateByMinutes = inMinutes - shift.StartMinutes
	}

	outMinutes := minutesOfDay(*entry.ClockOut)
	if outMinutes < shift.EndMinutes {
		result.EarlyByMinutes = shift.EndMinutes - outMinutes
	}

	switch {
	case result.LateByMinutes > 0 && result.EarlyByMinutes > 0:
		result.Status = attendance.DayStatusLateEarly
	case result.LateByMinutes > 0:
		result.Status = attendance.DayStatusLate
	case result.EarlyByMinutes > 0:
		result.Status = attendance.DayStatusEarlyLeave
	}

	result.TotalHours = round2(entry.ClockOut.Sub(*entry.ClockIn).Hours())
	result.OvertimeHours = round2(math.Max(0, result.TotalHours-shift.HoursPerDay))

	return result
}

// BuildMonthlyLog classifies every calendar day of the month and returns
// the day-by-day feed for tables and heatmaps. Holidays annotate the log
// but do not change classification.
func BuildMonthlyLog(month, year int, entries []attendance.TimeEntry, shift Shift, joinDate, today time.Time, holidays []holiday.Holiday) []attendance.DailyLogEntry {
	byDate := make(map[string]*attendance.TimeEntry, len(entries))
	for i := range entries {
		byDate[entries[i].Date.Format("2006-01-02")] = &entries[i]
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	log := make([]attendance.DailyLogEntry, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		entry := byDate[date.Format("2006-01-02")]
		result := ClassifyDay(date, entry, shift, joinDate, today)

		logEntry := attendance.DailyLogEntry{
			Date:           date.Format("2006-01-02"),
			Status:         result.Status,
			TotalHours:     result.TotalHours,
			OvertimeHours:  result.OvertimeHours,
			LateByMinutes:  result.LateByMinutes,
			EarlyByMinutes: result.EarlyByMinutes,
		}

		if entry != nil {
			if entry.ClockIn != nil {
				s := entry.ClockIn.Format("15:04")
				logEntry.ClockIn = &s
			}
			if entry.ClockOut != nil {
				s := entry.ClockOut.Format("15:04")
				logEntry.ClockOut = &s
			}
		}

		for _, h := range holidays {
			if h.Matches(date) {
				logEntry.IsHoliday = true
				name := h.Name
				logEntry.HolidayName = &name
				break
			}
		}

		log = append(log, logEntry)
	}

	return log
}

// Summarize accumulates the monthly KPI aggregate from a daily log.
// Days worked with a late arrival or early leave still count as present
// days; incomplete punches are counted separately and contribute no
// hours.
func Summarize(employeeID string, month, year int, days []attendance.DailyLogEntry) attendance.AttendanceAnalytics {
	analytics := attendance.AttendanceAnalytics{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Days:       days,
	}

	for _, day := range days {
		switch day.Status {
		case attendance.DayStatusNotApplicable:
			analytics.NotApplicableDays++
		case attendance.DayStatusAbsent:
			analytics.AbsentDays++
		case attendance.DayStatusIncomplete:
			analytics.IncompletePunches++
		default:
			analytics.PresentDays++
			analytics.TotalHoursWorked += day.TotalHours
			if day.LateByMinutes > 0 {
				analytics.LateArrivals++
			}
			if day.EarlyByMinutes > 0 {
				analytics.EarlyLeaves++
			}
		}
	}

	analytics.TotalHoursWorked = round2(analytics.TotalHoursWorked)
	if analytics.PresentDays > 0 {
		analytics.AverageHoursPerDay = round2(analytics.TotalHoursWorked / float64(analytics.PresentDays))
	}

	return analytics
}
