package security

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"employee-management-api/config"
	"employee-management-api/internal/model"
	"employee-management-api/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет токены.
// Ничего не знает о персистентности: привязка refresh-токена
// к пользователю — ответственность вызывающего
type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// IssueAccessToken подписывает access токен (HMAC-SHA256) с клеймами пользователя.
// Возвращает токен и момент его истечения
func (service *JWTService) IssueAccessToken(user *model.User) (string, time.Time, error) {
	timeDuration, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return "", time.Time{}, util.LogError("ошибка парсинга access_token_ttl", err)
	}

	fullName := ""
	if user.FullName != nil {
		fullName = *user.FullName
	}

	expiresAt := time.Now().Add(timeDuration)
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.Issuer,
			Audience:  jwt.ClaimStrings{service.Audience},
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", time.Time{}, util.LogError("ошибка подписи токена", err)
	}

	return accessToken, expiresAt, nil
}

// GenerateRefreshToken возвращает непрозрачный refresh токен:
// 64 байта из криптографического ГСЧ в base64.
// К пользователю токен привязывает вызывающий
func GenerateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 64)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", util.LogError("ошибка генерации refresh токена", err)
	}

	return base64.StdEncoding.EncodeToString(tokenBytes), nil
}

// IssueRefreshToken : см. GenerateRefreshToken
func (service *JWTService) IssueRefreshToken() (string, error) {
	return GenerateRefreshToken()
}

// ValidateJWT полностью проверяет access токен, включая срок действия
func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, service.keyFunc,
		jwt.WithIssuer(service.Issuer),
		jwt.WithAudience(service.Audience),
	)

	if err != nil || !jwtToken.Valid {
		return nil, util.LogError("невалидный токен", err)
	}

	return claims, nil
}

// ParseExpiredToken проверяет подпись, издателя и аудиторию токена,
// но намеренно пропускает проверку срока действия: используется только
// в операции refresh, где access токен ожидаемо истёк.
// Любая ошибка разбора схлопывается в nil, наружу не выбрасывается
func (service *JWTService) ParseExpiredToken(jwtTokenStr string) *Claims {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, service.keyFunc,
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !jwtToken.Valid {
		log.Printf("не удалось разобрать истёкший токен: %v", err)
		return nil
	}

	// издателя и аудиторию проверяем вручную:
	// WithoutClaimsValidation отключает и их тоже
	if claims.Issuer != service.Issuer {
		log.Printf("истёкший токен выпущен другим издателем: %s", claims.Issuer)
		return nil
	}

	audienceOK := false
	for _, aud := range claims.Audience {
		if aud == service.Audience {
			audienceOK = true
			break
		}
	}
	if !audienceOK {
		log.Printf("истёкший токен выпущен для другой аудитории")
		return nil
	}

	return claims
}

// keyFunc отклоняет токены с неожиданным алгоритмом подписи:
// защита от подмены алгоритма
func (service *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Header["alg"] != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
	}
	return []byte(service.SecretKey), nil
}

func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateJWT(token)
			if err != nil {
				log.Printf("невалидный токен: %v", err)
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

// RequireAdmin пропускает только пользователей с ролью Admin.
// Вешается после JWTMiddleware
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims, err := GetClaimsFromContext(request.Context())
		if err != nil {
			http.Error(writer, "unauthorized", http.StatusUnauthorized)
			return
		}

		if claims.Role != model.RoleAdmin {
			http.Error(writer, "доступ запрещён", http.StatusForbidden)
			return
		}

		next.ServeHTTP(writer, request)
	})
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
