package attendance

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) error
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeEntry, error)
	GetOpenEntry(ctx context.Context, employeeID string) (TimeEntry, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)
	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)
	Delete(ctx context.Context, id string) error
}
