package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "admin@gym.test",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				m.On("FindByEmail", mock.Anything, "admin@gym.test").Return(&model.User{
					ID:           uuid.New(),
					Email:        "admin@gym.test",
					PasswordHash: string(hashed),
					Role:         model.RoleAdmin,
					Active:       true,
				}, nil)
				m.On("RecordLogin", mock.Anything, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@gym.test",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@gym.test").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@gym.test",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				m.On("FindByEmail", mock.Anything, "admin@gym.test").Return(&model.User{
					ID:           uuid.New(),
					Email:        "admin@gym.test",
					PasswordHash: string(hashed),
					Role:         model.RoleAdmin,
					Active:       true,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			email:    "former@gym.test",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				m.On("FindByEmail", mock.Anything, "former@gym.test").Return(&model.User{
					ID:           uuid.New(),
					Email:        "former@gym.test",
					PasswordHash: string(hashed),
					Role:         model.RoleReceptionist,
					Active:       false,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, zerolog.Nop())

			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID.String(), claims.UserID)
				assert.Equal(t, model.RoleAdmin, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// A failed last-login stamp must not fail the login itself.
func TestAuthService_Login_RecordLoginFailureIgnored(t *testing.T) {
	mockRepo := new(MockUserRepository)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	mockRepo.On("FindByEmail", mock.Anything, "admin@gym.test").Return(&model.User{
		ID:           uuid.New(),
		Email:        "admin@gym.test",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
		Active:       true,
	}, nil)
	mockRepo.On("RecordLogin", mock.Anything, mock.Anything).Return(assert.AnError)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), zerolog.Nop())
	token, user, err := service.Login(context.Background(), "admin@gym.test", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, user)
	mockRepo.AssertExpectations(t)
}
