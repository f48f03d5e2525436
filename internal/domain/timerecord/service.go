package timerecord

import "context"

// TimeRecordService records punches for an authenticated user.
type TimeRecordService interface {
	// Punch validates and stores one event for today, then refreshes the day's summary.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// GetToday lists today's punches and the kinds that may still be punched.
	GetToday(ctx context.Context, userID string) (TodayResponse, error)
}
