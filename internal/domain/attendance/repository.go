package attendance

import (
	"context"
	"time"
)

// DailyAttendanceRepository defines data access for per-day summaries.
type DailyAttendanceRepository interface {
	// Upsert creates the (user, date) summary or overwrites hours and status in place.
	Upsert(ctx context.Context, summary DailyAttendance) (DailyAttendance, error)

	// GetByUserAndDate returns ErrDailyAttendanceNotFound when no summary exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (DailyAttendance, error)

	// ListByUserAndDateRange returns summaries with from <= date <= to ordered by date.
	ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]DailyAttendance, error)
}
