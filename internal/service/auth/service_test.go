package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
	testUserID     = "0190b5d4-1c1e-7a3b-8a7e-4c2f0d9e1a11"
	testCPF        = "12345678909"
)

type authFixture struct {
	svc        *AuthServiceImpl
	users      *mocks.UserRepository
	tokens     *mocks.JWTRepository
	jwtService jwt.Service
}

func newAuthFixture() authFixture {
	users := new(mocks.UserRepository)
	tokens := new(mocks.JWTRepository)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	svc := NewAuthService(&mocks.Transactor{}, users, jwtService, tokens).(*AuthServiceImpl)
	svc.bcryptCost = bcrypt.MinCost
	return authFixture{svc: svc, users: users, tokens: tokens, jwtService: jwtService}
}

func activeUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           testUserID,
		CPF:          testCPF,
		Email:        "maria@example.com",
		FirstName:    "Maria",
		LastName:     "Souza",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.users.On("Create", ctx, mock.MatchedBy(func(u user.User) bool {
		return u.CPF == testCPF &&
			u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(user.User{ID: testUserID, CPF: testCPF, Email: "maria@example.com"}, nil)

	resp, err := f.svc.Register(ctx, auth.RegisterRequest{
		CPF:                "123.456.789-09",
		Email:              "maria@example.com",
		FirstName:          "Maria",
		LastName:           "Souza",
		RegistrationNumber: "A-001",
		Password:           "password123",
		ConfirmPassword:    "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, testUserID, resp.ID)
	assert.Equal(t, testCPF, resp.CPF)
	f.users.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateCPF(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.users.On("Create", ctx, mock.Anything).Return(user.User{}, user.ErrCPFExists)

	_, err := f.svc.Register(ctx, auth.RegisterRequest{
		CPF:                testCPF,
		Email:              "maria@example.com",
		FirstName:          "Maria",
		LastName:           "Souza",
		RegistrationNumber: "A-001",
		Password:           "password123",
		ConfirmPassword:    "password123",
	})

	assert.ErrorIs(t, err, user.ErrCPFExists)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), auth.RegisterRequest{CPF: "123"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "cpf")
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	session := auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

	f.users.On("GetByCPF", ctx, testCPF).Return(activeUser(t, "password123"), nil)
	f.tokens.On("CreateRefreshToken", ctx, testUserID, mock.AnythingOfType("string"), mock.AnythingOfType("int64"), session).Return(nil)

	response, err := f.svc.Login(ctx, auth.LoginRequest{CPF: "123.456.789-09", Password: "password123"}, session)

	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, response.RefreshTokenExpiresIn, response.AccessTokenExpiresIn)
	f.tokens.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	inactive := func(t *testing.T) user.User {
		u := activeUser(t, "password123")
		u.IsActive = false
		return u
	}

	tests := []struct {
		name     string
		password string
		setup    func(t *testing.T, users *mocks.UserRepository)
	}{
		{
			name:     "wrong password",
			password: "wrongpassword",
			setup: func(t *testing.T, users *mocks.UserRepository) {
				users.On("GetByCPF", mock.Anything, testCPF).Return(activeUser(t, "password123"), nil)
			},
		},
		{
			name:     "unknown cpf",
			password: "password123",
			setup: func(t *testing.T, users *mocks.UserRepository) {
				users.On("GetByCPF", mock.Anything, testCPF).Return(user.User{}, user.ErrUserNotFound)
			},
		},
		{
			name:     "inactive user",
			password: "password123",
			setup: func(t *testing.T, users *mocks.UserRepository) {
				users.On("GetByCPF", mock.Anything, testCPF).Return(inactive(t), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			tt.setup(t, f.users)

			_, err := f.svc.Login(context.Background(), auth.LoginRequest{CPF: testCPF, Password: tt.password}, auth.SessionTrackingRequest{})

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			f.tokens.AssertNotCalled(t, "CreateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	refresh, _, err := f.jwtService.GenerateRefreshToken(testUserID)
	require.NoError(t, err)

	f.tokens.On("IsRefreshTokenRevoked", ctx, refresh).Return(testUserID, false, nil)
	f.users.On("GetByID", ctx, testUserID).Return(activeUser(t, "password123"), nil)

	resp, err := f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	refresh, _, err := f.jwtService.GenerateRefreshToken(testUserID)
	require.NoError(t, err)

	f.tokens.On("IsRefreshTokenRevoked", ctx, refresh).Return(testUserID, true, nil)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	access, _, err := f.jwtService.GenerateAccessToken(testUserID, testCPF)
	require.NoError(t, err)

	_, err = f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: access})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	f.tokens.AssertNotCalled(t, "IsRefreshTokenRevoked", mock.Anything, mock.Anything)
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.tokens.On("IsRefreshTokenRevoked", ctx, "refresh-token").Return(testUserID, false, nil)
	f.tokens.On("RevokeRefreshToken", ctx, "refresh-token").Return(nil)

	require.NoError(t, f.svc.Logout(ctx, "refresh-token"))
	f.tokens.AssertExpectations(t)
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.tokens.On("IsRefreshTokenRevoked", ctx, "refresh-token").Return("", true, nil)

	require.NoError(t, f.svc.Logout(ctx, "refresh-token"))
	f.tokens.AssertNotCalled(t, "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func TestAuthService_Logout_Errors(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	dbErr := errors.New("connection lost")

	assert.ErrorIs(t, f.svc.Logout(ctx, ""), auth.ErrRefreshTokenMissing)

	f.tokens.On("IsRefreshTokenRevoked", ctx, "refresh-token").Return("", false, dbErr)
	assert.ErrorIs(t, f.svc.Logout(ctx, "refresh-token"), dbErr)
}
