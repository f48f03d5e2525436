package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// TimeRecordRepository is a mock for timerecord.TimeRecordRepository.
type TimeRecordRepository struct {
	mock.Mock
}

func (m *TimeRecordRepository) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	args := m.Called(ctx, record)
	if rec, ok := args.Get(0).(timerecord.TimeRecord); ok {
		return rec, args.Error(1)
	}
	return timerecord.TimeRecord{}, args.Error(1)
}

func (m *TimeRecordRepository) ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]timerecord.TimeRecord, error) {
	args := m.Called(ctx, userID, date)
	if list, ok := args.Get(0).([]timerecord.TimeRecord); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimeRecordRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]timerecord.TimeRecord, error) {
	args := m.Called(ctx, userID, from, to)
	if list, ok := args.Get(0).([]timerecord.TimeRecord); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimeRecordRepository) ListUserDates(ctx context.Context, from, to time.Time) ([]timerecord.UserDate, error) {
	args := m.Called(ctx, from, to)
	if list, ok := args.Get(0).([]timerecord.UserDate); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// DailyAttendanceRepository is a mock for attendance.DailyAttendanceRepository.
type DailyAttendanceRepository struct {
	mock.Mock
}

func (m *DailyAttendanceRepository) Upsert(ctx context.Context, summary attendance.DailyAttendance) (attendance.DailyAttendance, error) {
	args := m.Called(ctx, summary)
	if da, ok := args.Get(0).(attendance.DailyAttendance); ok {
		return da, args.Error(1)
	}
	return attendance.DailyAttendance{}, args.Error(1)
}

func (m *DailyAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.DailyAttendance, error) {
	args := m.Called(ctx, userID, date)
	if da, ok := args.Get(0).(attendance.DailyAttendance); ok {
		return da, args.Error(1)
	}
	return attendance.DailyAttendance{}, args.Error(1)
}

func (m *DailyAttendanceRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.DailyAttendance, error) {
	args := m.Called(ctx, userID, from, to)
	if list, ok := args.Get(0).([]attendance.DailyAttendance); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for user.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	if u, ok := args.Get(0).(user.User); ok {
		return u, args.Error(1)
	}
	return user.User{}, args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(user.User); ok {
		return u, args.Error(1)
	}
	return user.User{}, args.Error(1)
}

func (m *UserRepository) GetByCPF(ctx context.Context, cpf string) (user.User, error) {
	args := m.Called(ctx, cpf)
	if u, ok := args.Get(0).(user.User); ok {
		return u, args.Error(1)
	}
	return user.User{}, args.Error(1)
}

// JWTRepository is a mock for postgresql.JWTRepository.
type JWTRepository struct {
	mock.Mock
}

func (m *JWTRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	args := m.Called(ctx, userID, token, expiresAt, sessionReq)
	return args.Error(0)
}

func (m *JWTRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *JWTRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// AttendanceService is a mock for attendance.AttendanceService.
type AttendanceService struct {
	mock.Mock
}

func (m *AttendanceService) Recalculate(ctx context.Context, userID string, date time.Time) (attendance.DailyAttendance, error) {
	args := m.Called(ctx, userID, date)
	if da, ok := args.Get(0).(attendance.DailyAttendance); ok {
		return da, args.Error(1)
	}
	return attendance.DailyAttendance{}, args.Error(1)
}

func (m *AttendanceService) GetMonthlyReport(ctx context.Context, req attendance.ReportRequest) (attendance.ReportResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(attendance.ReportResponse); ok {
		return resp, args.Error(1)
	}
	return attendance.ReportResponse{}, args.Error(1)
}

func (m *AttendanceService) Rebuild(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

// TimeRecordService is a mock for timerecord.TimeRecordService.
type TimeRecordService struct {
	mock.Mock
}

func (m *TimeRecordService) Punch(ctx context.Context, req timerecord.PunchRequest) (timerecord.PunchResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(timerecord.PunchResponse); ok {
		return resp, args.Error(1)
	}
	return timerecord.PunchResponse{}, args.Error(1)
}

func (m *TimeRecordService) GetToday(ctx context.Context, userID string) (timerecord.TodayResponse, error) {
	args := m.Called(ctx, userID)
	if resp, ok := args.Get(0).(timerecord.TodayResponse); ok {
		return resp, args.Error(1)
	}
	return timerecord.TodayResponse{}, args.Error(1)
}

// AuthService is a mock for auth.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(user.UserResponse); ok {
		return resp, args.Error(1)
	}
	return user.UserResponse{}, args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, sessionReq)
	if resp, ok := args.Get(0).(auth.TokenResponse); ok {
		return resp, args.Error(1)
	}
	return auth.TokenResponse{}, args.Error(1)
}

func (m *AuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(auth.AccessTokenResponse); ok {
		return resp, args.Error(1)
	}
	return auth.AccessTokenResponse{}, args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// Transactor runs fn directly without a database transaction.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
