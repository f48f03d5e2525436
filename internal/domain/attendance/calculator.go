package attendance

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/shopspring/decimal"
)

var hourNanos = decimal.NewFromInt(int64(time.Hour))

type Result struct {
	TotalHours decimal.Decimal
	Status     Status
}

// Calculate derives worked hours and status from one day's records:
// (clock out - clock in) - (break end - break start).
//
// A day without both clock in and clock out is ABSENT with zero hours, even
// while the employee is still at work. A day with only one half of the break
// is INCONSISTENT; its hours ignore the break.
func Calculate(records []timerecord.TimeRecord) Result {
	times := make(map[timerecord.Kind]timerecord.TimeOfDay, len(records))
	for _, r := range records {
		times[r.Kind] = r.Time
	}

	clockIn, hasClockIn := times[timerecord.KindClockIn]
	clockOut, hasClockOut := times[timerecord.KindClockOut]
	if !hasClockIn || !hasClockOut {
		return Result{TotalHours: decimal.Zero, Status: StatusAbsent}
	}

	worked := clockOut.Duration() - clockIn.Duration()

	breakStart, hasBreakStart := times[timerecord.KindBreakStart]
	breakEnd, hasBreakEnd := times[timerecord.KindBreakEnd]
	if hasBreakStart && hasBreakEnd {
		worked -= breakEnd.Duration() - breakStart.Duration()
	}

	status := StatusNormal
	if hasBreakStart != hasBreakEnd {
		status = StatusInconsistent
	}

	return Result{TotalHours: HoursOf(worked), Status: status}
}

// HoursOf converts d to hours rounded to two places, half away from zero.
// Negative durations count as zero.
func HoursOf(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d)).Div(hourNanos).Round(2)
}
