package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const timeRecordUniqueConstraint = "time_records_user_date_kind_key"

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

// Create implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to generate time record id: %w", err)
	}
	record.ID = id.String()

	query := `
		INSERT INTO time_records (id, user_id, record_date, record_time, kind)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		toPgTime(record.Time),
		record.Kind,
	).Scan(&record.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, timeRecordUniqueConstraint) {
			return timerecord.TimeRecord{}, timerecord.ErrDuplicateEvent
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// ListByUserAndDate implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]timerecord.TimeRecord, error) {
	return r.ListByUserAndDateRange(ctx, userID, date, date)
}

// ListByUserAndDateRange implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, record_date, record_time, kind, created_at
		FROM time_records
		WHERE user_id = $1
		  AND record_date BETWEEN $2 AND $3
		ORDER BY record_date, record_time
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var (
			rec     timerecord.TimeRecord
			recTime pgtype.Time
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &recTime, &rec.Kind, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		rec.Time = fromPgTime(recTime)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time records: %w", err)
	}

	return records, nil
}

// ListUserDates implements timerecord.TimeRecordRepository.
func (r *timeRecordRepository) ListUserDates(ctx context.Context, from, to time.Time) ([]timerecord.UserDate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT user_id, record_date
		FROM time_records
		WHERE record_date BETWEEN $1 AND $2
		ORDER BY record_date, user_id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list user dates: %w", err)
	}

	dates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (timerecord.UserDate, error) {
		var ud timerecord.UserDate
		err := row.Scan(&ud.UserID, &ud.Date)
		return ud, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan user dates: %w", err)
	}

	return dates, nil
}

func toPgTime(t timerecord.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) timerecord.TimeOfDay {
	return timerecord.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
