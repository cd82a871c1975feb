package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gymcrm/internal/model"
)

// SessionExpiry is the lifetime of a session token. Sessions are stateless:
// the token is the sole source of authorization data until it expires, so
// role or permission changes only take effect on the next login.
const SessionExpiry = 30 * 24 * time.Hour

// Claims is the session payload embedded in the signed cookie.
type Claims struct {
	UserID      string             `json:"user_id"`
	Role        model.UserRole     `json:"role"`
	Permissions []model.Permission `json:"permissions"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Image       string             `json:"image,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateSessionToken mints a session token for the user with the supplied
// effective permission set.
func (s *JWTService) GenerateSessionToken(user *model.User, permissions []model.Permission) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      user.ID.String(),
		Role:        user.Role,
		Permissions: permissions,
		Name:        user.Name,
		Email:       user.Email,
		Image:       user.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a session token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
