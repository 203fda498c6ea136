package service_test

import (
	"context"
	"testing"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/security"
	"employee-management-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// ==== ЗАГЛУШКИ, ЧТОБЫ ИМПЛЕМЕНТИРОВАТЬ ИНТЕРФЕЙСЫ ====
func (m *MockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Find(ctx context.Context, filters ...repository.Filter) ([]model.User, error) {
	args := m.Called(ctx, filters)
	if users, ok := args.Get(0).([]model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FirstOrDefault(ctx context.Context, filters ...repository.Filter) (*model.User, error) {
	args := m.Called(ctx, filters)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Add(ctx context.Context, entity *model.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockUserRepository) AddRange(ctx context.Context, entities []*model.User) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, entity *model.User) (*model.User, error) {
	args := m.Called(ctx, entity)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateRange(ctx context.Context, entities []*model.User) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, entity *model.User) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteRange(ctx context.Context, entities []*model.User) error {
	args := m.Called(ctx, entities)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountWhere(ctx context.Context, filters ...repository.Filter) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, filters ...repository.Filter) (bool, error) {
	args := m.Called(ctx, filters)
	return args.Bool(0), args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) IssueAccessToken(user *model.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockJWTService) IssueRefreshToken() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ValidateJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseExpiredToken(tokenString string) *security.Claims {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims
	}
	return nil
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)

	svc := service.NewAuthenticationService(
		mockUserRepo,
		mockJWTService,
		&config.JWTConfig{RefreshTokenTTL: "168h"},
	)

	return svc, mockUserRepo, mockJWTService
}

func activeUser(password string) *model.User {
	hash, _ := security.HashPassword(password)
	return &model.User{
		BaseEntity:   model.BaseEntity{ID: 1, IsActive: true},
		Username:     "alice",
		Email:        "alice@company.com",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
}

func expectTokensIssued(mockUserRepo *MockUserRepository, mockJWTService *MockJWTService) {
	mockJWTService.On("IssueAccessToken", mock.Anything).
		Return("access-token", time.Now().Add(15*time.Minute), nil)
	mockJWTService.On("IssueRefreshToken").
		Return("new-refresh-token", nil)
	mockUserRepo.On("SaveRefreshToken", mock.Anything, int64(1), "new-refresh-token", mock.Anything).
		Return(nil)
}

// ===== TESTS =====

// 1. Регистрация: занятое имя пользователя
func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(activeUser("pass"), nil)

	_, err := svc.Register(ctx, &requestresponse.RegisterRequest{
		Username: "alice", Email: "new@company.com", Password: "pass",
	})

	assert.ErrorIs(t, err, service.ErrConflict)
	mockUserRepo.AssertExpectations(t)
}

// 2. Регистрация: занятый email
func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "bob").Return(nil, nil)
	mockUserRepo.On("FindByEmail", ctx, "alice@company.com").Return(activeUser("pass"), nil)

	_, err := svc.Register(ctx, &requestresponse.RegisterRequest{
		Username: "bob", Email: "alice@company.com", Password: "pass",
	})

	assert.ErrorIs(t, err, service.ErrConflict)
	mockUserRepo.AssertExpectations(t)
}

// 3. Регистрация: успех, роль всегда User
func TestRegister_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "bob").Return(nil, nil)
	mockUserRepo.On("FindByEmail", ctx, "bob@company.com").Return(nil, nil)
	mockUserRepo.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 1
		}).
		Return(nil)
	expectTokensIssued(mockUserRepo, mockJWTService)

	resp, err := svc.Register(ctx, &requestresponse.RegisterRequest{
		Username: "bob", Email: "bob@company.com", Password: "StrongPass1!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "new-refresh-token", resp.RefreshToken)
	assert.Equal(t, model.RoleUser, resp.Role)

	addedUser := mockUserRepo.Calls[2].Arguments.Get(1).(*model.User)
	assert.Equal(t, model.RoleUser, addedUser.Role)
	assert.True(t, addedUser.IsActive)
	assert.NotEqual(t, "StrongPass1!", addedUser.PasswordHash)
	mockUserRepo.AssertExpectations(t)
}

// 4. Логин: пользователь не найден — ответ не отличается от неверного пароля
func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

	_, err := svc.Login(ctx, "ghost", "pass")

	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.Contains(t, err.Error(), "неверный логин или пароль")
}

// 5. Логин: неверный пароль
func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(activeUser("goodpass"), nil)

	_, err := svc.Login(ctx, "alice", "badpass")

	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.Contains(t, err.Error(), "неверный логин или пароль")
}

// 6. Логин: деактивированный пользователь не проходит даже с верным паролем
func TestLogin_DeactivatedUser(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := activeUser("goodpass")
	user.IsActive = false
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	_, err := svc.Login(ctx, "alice", "goodpass")

	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

// 7. Логин: успех
func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(activeUser("goodpass"), nil)
	expectTokensIssued(mockUserRepo, mockJWTService)

	resp, err := svc.Login(ctx, "alice", "goodpass")

	assert.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "alice", resp.Username)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 8. Refresh: access токен не разбирается
func TestRefresh_InvalidAccessToken(t *testing.T) {
	svc, _, mockJWTService := newTestAuthService()

	mockJWTService.On("ParseExpiredToken", "garbage").Return(nil)

	_, err := svc.Refresh(context.Background(), "garbage", "refresh")

	assert.ErrorIs(t, err, service.ErrBadRequest)
}

// 9. Refresh: переданный refresh токен не совпадает с сохранённым
func TestRefresh_MismatchedRefreshToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	stored := "stored-refresh-token"
	expiry := time.Now().UTC().Add(time.Hour)
	user := activeUser("pass")
	user.RefreshToken = &stored
	user.RefreshTokenExpiryTime = &expiry

	mockJWTService.On("ParseExpiredToken", "expired-access").
		Return(&security.Claims{Username: "alice"})
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	_, err := svc.Refresh(ctx, "expired-access", "other-refresh-token")

	assert.ErrorIs(t, err, service.ErrBadRequest)
}

// 10. Refresh: сохранённый токен просрочен
func TestRefresh_ExpiredStoredToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	stored := "stored-refresh-token"
	expiry := time.Now().UTC().Add(-time.Hour)
	user := activeUser("pass")
	user.RefreshToken = &stored
	user.RefreshTokenExpiryTime = &expiry

	mockJWTService.On("ParseExpiredToken", "expired-access").
		Return(&security.Claims{Username: "alice"})
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	_, err := svc.Refresh(ctx, "expired-access", stored)

	assert.ErrorIs(t, err, service.ErrBadRequest)
	assert.Contains(t, err.Error(), "просрочен")
}

// 11. Refresh: успех — старый токен перезаписывается новым
func TestRefresh_RotatesToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	stored := "stored-refresh-token"
	expiry := time.Now().UTC().Add(time.Hour)
	user := activeUser("pass")
	user.RefreshToken = &stored
	user.RefreshTokenExpiryTime = &expiry

	mockJWTService.On("ParseExpiredToken", "expired-access").
		Return(&security.Claims{Username: "alice"})
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	expectTokensIssued(mockUserRepo, mockJWTService)

	resp, err := svc.Refresh(ctx, "expired-access", stored)

	assert.NoError(t, err)
	assert.Equal(t, "new-refresh-token", resp.RefreshToken)
	assert.NotEqual(t, stored, resp.RefreshToken)
	mockUserRepo.AssertExpectations(t)
}

// 12. Refresh: после logout сохранённого токена нет — обмен невозможен
func TestRefresh_AfterLogout(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := activeUser("pass")
	user.RefreshToken = nil
	user.RefreshTokenExpiryTime = nil

	mockJWTService.On("ParseExpiredToken", "expired-access").
		Return(&security.Claims{Username: "alice"})
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	_, err := svc.Refresh(ctx, "expired-access", "stored-refresh-token")

	assert.ErrorIs(t, err, service.ErrBadRequest)
	mockUserRepo.AssertNotCalled(t, "SaveRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 13. Refresh: повтор с уже обменянным токеном отклоняется
func TestRefresh_ReplayOfRotatedToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	stored := "stored-refresh-token"
	expiry := time.Now().UTC().Add(time.Hour)
	user := activeUser("pass")
	user.RefreshToken = &stored
	user.RefreshTokenExpiryTime = &expiry

	mockJWTService.On("ParseExpiredToken", "expired-access").
		Return(&security.Claims{Username: "alice"})
	mockUserRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	mockJWTService.On("IssueAccessToken", mock.Anything).
		Return("access-token", time.Now().Add(15*time.Minute), nil)
	mockJWTService.On("IssueRefreshToken").Return("new-refresh-token", nil)
	mockUserRepo.On("SaveRefreshToken", mock.Anything, int64(1), "new-refresh-token", mock.Anything).
		Run(func(args mock.Arguments) {
			rotated := args.Get(2).(string)
			user.RefreshToken = &rotated
		}).
		Return(nil)

	resp, err := svc.Refresh(ctx, "expired-access", "stored-refresh-token")
	assert.NoError(t, err)
	assert.Equal(t, "new-refresh-token", resp.RefreshToken)

	_, err = svc.Refresh(ctx, "expired-access", "stored-refresh-token")
	assert.ErrorIs(t, err, service.ErrBadRequest)
}

// 14. Logout: неизвестный пользователь — не ошибка
func TestLogout_UnknownUser(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

	err := svc.Logout(ctx, "ghost")

	assert.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "ClearRefreshToken", mock.Anything, mock.Anything)
}

// 15. Logout: успех — refresh токен сбрасывается
func TestLogout_Success(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(activeUser("pass"), nil)
	mockUserRepo.On("ClearRefreshToken", ctx, int64(1)).Return(nil)

	err := svc.Logout(ctx, "alice")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

// 16. Текущий пользователь: не найден
func TestCurrentUser_NotFound(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

	_, err := svc.CurrentUser(ctx, "ghost")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

// 17. Текущий пользователь: успех
func TestCurrentUser_Success(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(activeUser("pass"), nil)

	resp, err := svc.CurrentUser(ctx, "alice")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, model.RoleUser, resp.Role)
}
