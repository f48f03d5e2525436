package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"

	testUserID = "0190b5d4-1c1e-7a3b-8a7e-4c2f0d9e1a11"
	testCPF    = "12345678909"
)

type testEnv struct {
	router      *chi.Mux
	jwtService  jwt.Service
	auth        *mocks.AuthService
	timeRecords *mocks.TimeRecordService
	attendance  *mocks.AttendanceService
}

func newTestEnv() testEnv {
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp, false)
	authSvc := new(mocks.AuthService)
	timeRecordSvc := new(mocks.TimeRecordService)
	attendanceSvc := new(mocks.AttendanceService)

	router := NewRouter(
		RouterOptions{
			Logger:         NewLogger(io.Discard, "test", slog.LevelError),
			LogLevel:       slog.LevelError,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		jwtSvc,
		NewAuthHandler(jwtSvc, authSvc),
		NewTimeRecordHandler(timeRecordSvc),
		NewAttendanceHandler(attendanceSvc),
	)

	return testEnv{
		router:      router,
		jwtService:  jwtSvc,
		auth:        authSvc,
		timeRecords: timeRecordSvc,
		attendance:  attendanceSvc,
	}
}

func (e testEnv) accessToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.jwtService.GenerateAccessToken(testUserID, testCPF)
	require.NoError(t, err)
	return token
}

// do sends body as JSON (nil sends no body) with an optional bearer token.
func (e testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type testResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
