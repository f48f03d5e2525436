package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
)

const (
	rebuildInterval = time.Hour
	// yesterday is included so punches near midnight settle once the day closes
	rebuildLookbackDays = 1
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	loc               *time.Location
	now               func() time.Time
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, loc *time.Location) *AttendanceJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		loc:               loc,
		now:               time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("rebuild_recent_daily_attendances", rebuildInterval, j.RebuildRecentDailyAttendances)
}

// RebuildRecentDailyAttendances recomputes summaries for today and the lookback window.
func (j *AttendanceJobs) RebuildRecentDailyAttendances(ctx context.Context) error {
	today := j.now().In(j.loc)
	from := today.AddDate(0, 0, -rebuildLookbackDays)

	if _, err := j.attendanceService.Rebuild(ctx, from, today); err != nil {
		return fmt.Errorf("failed to rebuild recent daily attendances: %w", err)
	}
	return nil
}
