package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/ports"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/security"
	"employee-management-api/internal/util"
)

type AuthenticationService struct {
	userRepository ports.UserRepositoryInterface
	jwtService     ports.JWTServiceInterface
	jwtConfig      *config.JWTConfig
}

func NewAuthenticationService(
	userRepository ports.UserRepositoryInterface,
	jwtService ports.JWTServiceInterface,
	jwtConfig *config.JWTConfig,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		jwtService:     jwtService,
		jwtConfig:      jwtConfig,
	}
}

// Register создаёт пользователя с ролью User и сразу выдаёт пару токенов.
// Проверка занятости username/email — check-then-act; настоящая защита от
// конкурентной вставки — уникальные ограничения БД, их нарушение
// переводится в тот же ErrConflict
func (s *AuthenticationService) Register(ctx context.Context, req *requestresponse.RegisterRequest) (*requestresponse.AuthResponse, error) {
	existing, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, util.LogError("ошибка проверки username", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: имя пользователя уже существует", ErrConflict)
	}

	existing, err = s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, util.LogError("ошибка проверки email", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email уже зарегистрирован", ErrConflict)
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, util.LogError("не удалось создать хэш пароля", err)
	}

	user := &model.User{
		BaseEntity:   model.BaseEntity{IsActive: true},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         model.RoleUser,
	}

	if err := s.userRepository.Add(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: имя пользователя или email уже существует", ErrConflict)
		}
		return nil, util.LogError("ошибка создания пользователя", err)
	}

	return s.issueTokens(ctx, user)
}

// Login проверяет учётные данные и выдаёт новую пару токенов.
// Неизвестный пользователь и неверный пароль в ответе не различаются,
// чтобы не раскрывать существование учётной записи
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*requestresponse.AuthResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, util.LogError("ошибка поиска пользователя", err)
	}

	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: неверный логин или пароль", ErrUnauthorized)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: пользователь деактивирован", ErrUnauthorized)
	}

	return s.issueTokens(ctx, user)
}

// Refresh обменивает пару (истёкший access, refresh) на новую пару.
// Сохранённый refresh-токен перезаписывается: старый становится
// безвозвратно непригодным, даже если срок его действия не вышел.
// Конкурирующие refresh-запросы разруливаются по принципу
// "последний победил", без блокировок
func (s *AuthenticationService) Refresh(ctx context.Context, accessToken, refreshToken string) (*requestresponse.AuthResponse, error) {
	claims := s.jwtService.ParseExpiredToken(accessToken)
	if claims == nil || claims.Username == "" {
		return nil, fmt.Errorf("%w: невалидный токен", ErrBadRequest)
	}

	user, err := s.userRepository.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, util.LogError("ошибка поиска пользователя", err)
	}

	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("%w: невалидный refresh токен", ErrBadRequest)
	}

	if user.RefreshTokenExpiryTime == nil || !user.RefreshTokenExpiryTime.After(time.Now().UTC()) {
		log.Printf("refresh токен пользователя %s просрочен", user.Username)
		return nil, fmt.Errorf("%w: refresh токен просрочен", ErrBadRequest)
	}

	return s.issueTokens(ctx, user)
}

// Logout сбрасывает сохранённый refresh-токен пользователя.
// Идемпотентна: повторный выход не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, username string) error {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return util.LogError("ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil
	}

	return s.userRepository.ClearRefreshToken(ctx, user.ID)
}

// CurrentUser возвращает профиль пользователя по его username из токена
func (s *AuthenticationService) CurrentUser(ctx context.Context, username string) (*requestresponse.CurrentUserResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, util.LogError("ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: пользователь не найден", ErrNotFound)
	}

	return &requestresponse.CurrentUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// issueTokens выдаёт пару access+refresh и привязывает refresh к пользователю
func (s *AuthenticationService) issueTokens(ctx context.Context, user *model.User) (*requestresponse.AuthResponse, error) {
	accessToken, expiresAt, err := s.jwtService.IssueAccessToken(user)
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	refreshToken, err := s.jwtService.IssueRefreshToken()
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	refreshTTL, err := time.ParseDuration(s.jwtConfig.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	refreshExpiry := time.Now().UTC().Add(refreshTTL)
	if err := s.userRepository.SaveRefreshToken(ctx, user.ID, refreshToken, refreshExpiry); err != nil {
		return nil, util.LogError("не удалось сохранить refresh токен", err)
	}

	return &requestresponse.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
		ExpiresAt:    expiresAt,
	}, nil
}
