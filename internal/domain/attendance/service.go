package attendance

import (
	"context"
	"time"
)

// AttendanceService maintains daily summaries and builds the monthly report.
type AttendanceService interface {
	// Recalculate recomputes the summary of one user's day from its records and stores it.
	Recalculate(ctx context.Context, userID string, date time.Time) (DailyAttendance, error)

	// GetMonthlyReport returns the attendance mirror of one month.
	GetMonthlyReport(ctx context.Context, req ReportRequest) (ReportResponse, error)

	// Rebuild recalculates every summary whose day has records between from and to.
	Rebuild(ctx context.Context, from, to time.Time) (int, error)
}
