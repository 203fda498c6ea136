package ports

import (
	"context"
	"time"

	"employee-management-api/internal/model"
	"employee-management-api/internal/model/requestresponse"
	"employee-management-api/internal/security"
)

type JWTServiceInterface interface {
	IssueAccessToken(user *model.User) (string, time.Time, error)
	IssueRefreshToken() (string, error)
	ValidateJWT(tokenString string) (*security.Claims, error)
	ParseExpiredToken(tokenString string) *security.Claims
}

type AuthenticationService interface {
	Register(ctx context.Context, req *requestresponse.RegisterRequest) (*requestresponse.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*requestresponse.AuthResponse, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*requestresponse.AuthResponse, error)
	Logout(ctx context.Context, username string) error
	CurrentUser(ctx context.Context, username string) (*requestresponse.CurrentUserResponse, error)
}
