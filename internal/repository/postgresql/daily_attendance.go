package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type dailyAttendanceRepository struct {
	db *database.DB
}

func NewDailyAttendanceRepository(db *database.DB) attendance.DailyAttendanceRepository {
	return &dailyAttendanceRepository{db: db}
}

// Upsert implements attendance.DailyAttendanceRepository.
func (r *dailyAttendanceRepository) Upsert(ctx context.Context, summary attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to generate daily attendance id: %w", err)
	}

	// On conflict the existing id is kept and returned.
	query := `
		INSERT INTO daily_attendances (id, user_id, attendance_date, total_hours, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT daily_attendances_user_date_key DO UPDATE
		SET total_hours = EXCLUDED.total_hours,
		    status = EXCLUDED.status,
		    updated_at = NOW()
		RETURNING id, user_id, attendance_date, total_hours, status, updated_at
	`

	var saved attendance.DailyAttendance
	err = q.QueryRow(ctx, query,
		id.String(),
		summary.UserID,
		summary.Date,
		summary.TotalHours,
		summary.Status,
	).Scan(&saved.ID, &saved.UserID, &saved.Date, &saved.TotalHours, &saved.Status, &saved.UpdatedAt)
	if err != nil {
		return attendance.DailyAttendance{}, fmt.Errorf("failed to upsert daily attendance: %w", err)
	}

	return saved, nil
}

// GetByUserAndDate implements attendance.DailyAttendanceRepository.
func (r *dailyAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_date, total_hours, status, updated_at
		FROM daily_attendances
		WHERE user_id = $1 AND attendance_date = $2
	`

	var da attendance.DailyAttendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&da.ID, &da.UserID, &da.Date, &da.TotalHours, &da.Status, &da.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailyAttendance{}, attendance.ErrDailyAttendanceNotFound
		}
		return attendance.DailyAttendance{}, fmt.Errorf("failed to get daily attendance: %w", err)
	}

	return da, nil
}

// ListByUserAndDateRange implements attendance.DailyAttendanceRepository.
func (r *dailyAttendanceRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, attendance_date, total_hours, status, updated_at
		FROM daily_attendances
		WHERE user_id = $1
		  AND attendance_date BETWEEN $2 AND $3
		ORDER BY attendance_date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily attendances: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.DailyAttendance
	for rows.Next() {
		var da attendance.DailyAttendance
		if err := rows.Scan(&da.ID, &da.UserID, &da.Date, &da.TotalHours, &da.Status, &da.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		summaries = append(summaries, da)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily attendances: %w", err)
	}

	return summaries, nil
}
