package model

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User : учётная запись для аутентификации.
// RefreshToken хранится только здесь, одна активная пара на пользователя:
// новая выдача перезаписывает предыдущее значение
type User struct {
	BaseEntity
	Username               string     `db:"username" json:"username"`
	Email                  string     `db:"email" json:"email"`
	PasswordHash           string     `db:"password_hash" json:"-"`
	FullName               *string    `db:"full_name" json:"full_name,omitempty"`
	Role                   string     `db:"role" json:"role"`
	RefreshToken           *string    `db:"refresh_token" json:"-"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time" json:"-"`
}
