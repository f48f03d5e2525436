package timerecord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type TimeRecordServiceImpl struct {
	transactor database.Transactor
	timerecord.TimeRecordRepository
	attendanceService attendance.AttendanceService
	loc               *time.Location
	now               func() time.Time
}

func NewTimeRecordService(
	transactor database.Transactor,
	timeRecordRepository timerecord.TimeRecordRepository,
	attendanceService attendance.AttendanceService,
	loc *time.Location,
) timerecord.TimeRecordService {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeRecordServiceImpl{
		transactor:           transactor,
		TimeRecordRepository: timeRecordRepository,
		attendanceService:    attendanceService,
		loc:                  loc,
		now:                  time.Now,
	}
}

// Punch implements timerecord.TimeRecordService.
// The record insert and the summary upsert commit together or not at all.
func (s *TimeRecordServiceImpl) Punch(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	now := s.now().In(s.loc)
	date := timerecord.DateOf(now)

	var created timerecord.TimeRecord
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		records, err := s.TimeRecordRepository.ListByUserAndDate(txCtx, req.UserID, date)
		if err != nil {
			return fmt.Errorf("failed to load today's time records: %w", err)
		}

		if err := timerecord.CheckPunch(req.Kind, timerecord.RecordedFrom(records)); err != nil {
			return err
		}

		// A concurrent punch of the same kind surfaces here as ErrDuplicateEvent.
		created, err = s.TimeRecordRepository.Create(txCtx, timerecord.TimeRecord{
			UserID: req.UserID,
			Date:   date,
			Time:   timerecord.TimeOfDayOf(now),
			Kind:   req.Kind,
		})
		if err != nil {
			return err
		}

		if _, err := s.attendanceService.Recalculate(txCtx, req.UserID, date); err != nil {
			return fmt.Errorf("failed to update daily attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return timerecord.PunchResponse{}, err
	}

	slog.Info("Time record registered",
		"user_id", req.UserID,
		"type", req.Kind,
		"date", date.Format(dateLayout),
		"time", created.Time.HHMM(),
	)

	return timerecord.PunchResponse{
		Date:    date.Format(dateLayout),
		Time:    created.Time.HHMM(),
		Kind:    created.Kind,
		Message: capitalize(created.Kind.Label()) + " recorded successfully",
	}, nil
}

// GetToday implements timerecord.TimeRecordService.
func (s *TimeRecordServiceImpl) GetToday(ctx context.Context, userID string) (timerecord.TodayResponse, error) {
	date := timerecord.DateOf(s.now().In(s.loc))

	records, err := s.TimeRecordRepository.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return timerecord.TodayResponse{}, fmt.Errorf("failed to load today's time records: %w", err)
	}

	times := make(map[timerecord.Kind]string, len(records))
	for _, rec := range records {
		times[rec.Kind] = rec.Time.HHMM()
	}

	return timerecord.TodayResponse{
		Date:      date.Format(dateLayout),
		Records:   times,
		Available: timerecord.Allowed(timerecord.RecordedFrom(records)),
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
