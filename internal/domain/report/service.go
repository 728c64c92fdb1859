package report

import (
	"context"
)

// ReportService defines the monthly aggregation engine
type ReportService interface {
	// BuildReport aggregates one employee's month. Zero underlying records
	// is a valid report with all counts zero, not an error.
	BuildReport(ctx context.Context, employeeID string, month int, year int) (MonthlyReport, error)

	// BuildAllReports aggregates the month for every employee
	BuildAllReports(ctx context.Context, month int, year int) ([]MonthlyReport, error)
}
