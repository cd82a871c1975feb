package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	// Login verifies credentials and mints a session token. A missing user,
	// an inactive account and a wrong password all fail identically.
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a staff account and returns a session token carrying
// the user's effective permission set.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			s.logger.Error().Err(err).Msg("login lookup failed")
		}
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	// Best-effort: a failed stamp must not block the login.
	if err := s.userRepo.RecordLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user", user.Email).Msg("last-login stamp failed")
	}

	permissions := authz.EffectivePermissions(user)
	token, err := s.jwtService.GenerateSessionToken(user, permissions)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	return token, user, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
