package requestresponse

import "time"

// RegisterRequest : тело запроса на регистрацию
type RegisterRequest struct {
	Username string  `json:"username" example:"alice"`
	Email    string  `json:"email" example:"alice@company.com"`
	Password string  `json:"password" example:"Secret1!"`
	FullName *string `json:"fullName,omitempty" example:"Alice Johnson"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Secret1!"`
}

// RefreshTokenRequest : запрос на обновление пары токенов.
// Token — истёкший access токен, RefreshToken — действующий refresh токен
type RefreshTokenRequest struct {
	Token        string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
}

// AuthResponse : ответ на успешную регистрацию, вход или обновление токенов
type AuthResponse struct {
	Token        string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
	Username     string    `json:"username" example:"alice"`
	Email        string    `json:"email" example:"alice@company.com"`
	Role         string    `json:"role" example:"User"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// CurrentUserResponse : профиль текущего пользователя
type CurrentUserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@company.com"`
	FullName  *string   `json:"fullName,omitempty" example:"Alice Johnson"`
	Role      string    `json:"role" example:"User"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse : короткое сообщение об успешной операции
type MessageResponse struct {
	Message string `json:"message" example:"операция выполнена успешно"`
}

// ErrorResponse : тело ответа при ошибке
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"некорректный JSON"`
	Code    int    `json:"code" example:"400"`
}
