package attendance

import (
	"context"
)

type AttendanceService interface {
	ClockIn(ctx context.Context) (TimeEntryResponse, error)
	ClockOut(ctx context.Context) (TimeEntryResponse, error)
	GetMyAttendance(ctx context.Context, filter TimeEntryFilter) (ListTimeEntriesResponse, error)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) (ListTimeEntriesResponse, error)
	UpdateTimeEntry(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	DeleteTimeEntry(ctx context.Context, id string) error
	MonthlyLog(ctx context.Context, req MonthlyRequest) ([]DailyLogEntry, error)
	MonthlyAnalytics(ctx context.Context, req MonthlyRequest) (AttendanceAnalytics, error)
}
