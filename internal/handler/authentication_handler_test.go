package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-management-api/internal/handler"
	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockAuthenticationService
type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Register(ctx context.Context, req *requestresponse.RegisterRequest) (*requestresponse.AuthResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*requestresponse.AuthResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Login(ctx context.Context, username, password string) (*requestresponse.AuthResponse, error) {
	args := m.Called(ctx, username, password)
	if resp, ok := args.Get(0).(*requestresponse.AuthResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, accessToken, refreshToken string) (*requestresponse.AuthResponse, error) {
	args := m.Called(ctx, accessToken, refreshToken)
	if resp, ok := args.Get(0).(*requestresponse.AuthResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockAuthenticationService) CurrentUser(ctx context.Context, username string) (*requestresponse.CurrentUserResponse, error) {
	args := m.Called(ctx, username)
	if resp, ok := args.Get(0).(*requestresponse.CurrentUserResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== TESTS =====

// 1. Регистрация: успешный ответ со статусом 200 и парой токенов
func TestRegisterHandler_Success(t *testing.T) {
	mockService := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(mockService)

	mockService.On("Register", mock.Anything, mock.Anything).
		Return(&requestresponse.AuthResponse{
			Token:        "access-token",
			RefreshToken: "refresh-token",
			Username:     "alice",
			Email:        "alice@company.com",
			Role:         model.RoleUser,
		}, nil)

	body := `{"username":"alice","email":"alice@company.com","password":"StrongPass1!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
}

// 2. Регистрация: пустые обязательные поля
func TestRegisterHandler_MissingFields(t *testing.T) {
	mockService := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(mockService)

	body := `{"username":"alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

// 3. Регистрация: конфликт уходит клиенту как 400 без префикса категории
func TestRegisterHandler_Conflict(t *testing.T) {
	mockService := new(MockAuthenticationService)
	h := handler.NewAuthenticationHandler(mockService)

	mockService.On("Register", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: имя пользователя уже существует", service.ErrConflict))

	body := `{"username":"alice","email":"alice@company.com","password":"StrongPass1!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "имя пользователя уже существует")
	assert.NotContains(t, rec.Body.String(), service.ErrConflict.Error())
}
