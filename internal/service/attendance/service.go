package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// yearsAround is how many years before and after the current one the report offers.
const yearsAround = 2

type AttendanceServiceImpl struct {
	transactor database.Transactor
	timerecord.TimeRecordRepository
	attendance.DailyAttendanceRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(
	transactor database.Transactor,
	timeRecordRepository timerecord.TimeRecordRepository,
	dailyAttendanceRepository attendance.DailyAttendanceRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		transactor:                transactor,
		TimeRecordRepository:      timeRecordRepository,
		DailyAttendanceRepository: dailyAttendanceRepository,
		loc:                       loc,
		now:                       time.Now,
	}
}

// Recalculate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Recalculate(ctx context.Context, userID string, date time.Time) (attendance.DailyAttendance, error) {
	date = timerecord.DateOf(date)

	records, err := s.TimeRecordRepository.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to load time records: %w", err)
	}

	result := attendance.Calculate(records)

	saved, err := s.DailyAttendanceRepository.Upsert(ctx, attendance.DailyAttendance{
		UserID:     userID,
		Date:       date,
		TotalHours: result.TotalHours,
		Status:     result.Status,
	})
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to save daily attendance: %w", err)
	}

	return saved, nil
}

// GetMonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyReport(ctx context.Context, req attendance.ReportRequest) (attendance.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	now := s.now().In(s.loc)
	today := timerecord.DateOf(now)

	year, month := req.Year, time.Month(req.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	if year == now.Year() && month == now.Month() && to.After(today) {
		to = today
	}

	response := attendance.ReportResponse{
		Month:      int(month),
		MonthName:  month.String(),
		Year:       year,
		Years:      selectableYears(now.Year()),
		Days:       []attendance.ReportDay{},
		TotalHours: decimal.Zero.StringFixed(2),
	}

	var (
		records   []timerecord.TimeRecord
		summaries []attendance.DailyAttendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.TimeRecordRepository.ListByUserAndDateRange(gctx, req.UserID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load time records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summaries, err = s.DailyAttendanceRepository.ListByUserAndDateRange(gctx, req.UserID, from, to)
		if err != nil {
			return fmt.Errorf("failed to load daily attendances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.ReportResponse{}, err
	}

	summaryByDate := make(map[string]attendance.DailyAttendance, len(summaries))
	for _, summary := range summaries {
		summaryByDate[summary.Date.Format(dateLayout)] = summary
	}

	// records arrive ordered by date, so days come out ascending
	var dates []string
	recordsByDate := make(map[string][]timerecord.TimeRecord)
	for _, rec := range records {
		key := rec.Date.Format(dateLayout)
		if _, seen := recordsByDate[key]; !seen {
			dates = append(dates, key)
		}
		recordsByDate[key] = append(recordsByDate[key], rec)
	}

	total := decimal.Zero
	for _, key := range dates {
		dayRecords := recordsByDate[key]

		hours, status := summaryOrCompute(summaryByDate, key, dayRecords)
		total = total.Add(hours)
		switch status {
		case attendance.StatusAbsent:
			response.TotalAbsences++
		case attendance.StatusInconsistent:
			response.TotalInconsistencies++
		}

		times := make(map[timerecord.Kind]string, len(dayRecords))
		for _, rec := range dayRecords {
			times[rec.Kind] = rec.Time.HHMM()
		}

		response.Days = append(response.Days, attendance.ReportDay{
			Date:       key,
			Weekday:    dayRecords[0].Date.Weekday().String(),
			Records:    times,
			TotalHours: hours.StringFixed(2),
			Status:     status,
		})
	}
	response.TotalHours = total.StringFixed(2)

	return response, nil
}

func summaryOrCompute(summaries map[string]attendance.DailyAttendance, key string, records []timerecord.TimeRecord) (decimal.Decimal, attendance.Status) {
	if summary, ok := summaries[key]; ok {
		return summary.TotalHours, summary.Status
	}
	result := attendance.Calculate(records)
	return result.TotalHours, result.Status
}

func selectableYears(current int) []int {
	years := make([]int, 0, 2*yearsAround+1)
	for y := current - yearsAround; y <= current+yearsAround; y++ {
		years = append(years, y)
	}
	return years
}

// Rebuild implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Rebuild(ctx context.Context, from, to time.Time) (int, error) {
	from, to = timerecord.DateOf(from), timerecord.DateOf(to)
	if from.After(to) {
		return 0, attendance.ErrInvalidRebuildRange
	}

	days, err := s.TimeRecordRepository.ListUserDates(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list days to rebuild: %w", err)
	}

	rebuilt := 0
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return rebuilt, err
		}

		err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
			_, err := s.Recalculate(txCtx, day.UserID, day.Date)
			return err
		})
		if err != nil {
			return rebuilt, fmt.Errorf("failed to rebuild %s for user %s: %w", day.Date.Format(dateLayout), day.UserID, err)
		}
		rebuilt++
	}

	slog.Info("Daily attendances rebuilt",
		"from", from.Format(dateLayout),
		"to", to.Format(dateLayout),
		"days", rebuilt,
	)

	return rebuilt, nil
}
