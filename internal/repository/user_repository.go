package repository

import (
	"context"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"
)

var userColumns = []string{
	"created_at", "updated_at", "created_by", "updated_by", "is_active",
	"username", "email", "password_hash", "full_name", "role",
	"refresh_token", "refresh_token_expiry_time",
}

type UserRepository struct {
	*Repository[model.User, *model.User]
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{NewRepository[model.User, *model.User](database, "users", userColumns)}
}

// FindByUsername : ищет пользователя по username, (nil, nil) если не найден
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.FirstOrDefault(ctx, Where("username", OpEq, username))
}

// FindByEmail : ищет пользователя по email, (nil, nil) если не найден
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FirstOrDefault(ctx, Where("email", OpEq, email))
}

// SaveRefreshToken перезаписывает refresh-токен пользователя и срок его действия.
// Предыдущее значение при этом становится непригодным (ротация)
func (r *UserRepository) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $2, refresh_token_expiry_time = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, refreshToken, expiryTime, time.Now().UTC())
	if err != nil {
		return util.LogError("[UserRepo] не удалось сохранить refresh токен", err)
	}

	return nil
}

// ClearRefreshToken сбрасывает refresh-токен пользователя.
// Идемпотентна: повторный вызов для уже разлогиненного пользователя не ошибка
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	query := `
		UPDATE users
		SET refresh_token = NULL, refresh_token_expiry_time = NULL, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, time.Now().UTC())
	if err != nil {
		return util.LogError("[UserRepo] не удалось сбросить refresh токен", err)
	}

	return nil
}
