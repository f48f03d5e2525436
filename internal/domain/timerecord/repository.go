package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for punch events.
type TimeRecordRepository interface {
	// Create inserts a record. Returns ErrDuplicateEvent when the
	// (user, date, kind) unique constraint rejects it.
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// ListByUserAndDate returns one day's records ordered by time.
	ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]TimeRecord, error)

	// ListByUserAndDateRange returns records with from <= date <= to ordered by date, time.
	ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]TimeRecord, error)

	// ListUserDates returns every distinct (user, date) holding records in the range.
	ListUserDates(ctx context.Context, from, to time.Time) ([]UserDate, error)
}
