package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
)

// NewProvisionalSalaryJob builds the job that keeps the current
// period's provisional salary snapshots fresh. Finalized periods are
// left untouched by the underlying generation.
func NewProvisionalSalaryJob(payrollService payroll.PayrollService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		now := time.Now().UTC()

		records, err := payrollService.GenerateRecords(ctx, payroll.GenerateRecordsRequest{
			Month:         int(now.Month()),
			Year:          now.Year(),
			IsProvisional: true,
		})
		if err != nil {
			return err
		}

		slog.Info("Provisional salary snapshots refreshed",
			"month", int(now.Month()),
			"year", now.Year(),
			"record_count", len(records),
		)
		return nil
	}
}
