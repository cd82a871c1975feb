package auth

import (
	"github.com/google/uuid"

	"gymcrm/internal/model"
)

// Session is the resolved identity of the requesting user. It is threaded
// explicitly into every domain action instead of living in ambient state.
type Session struct {
	UserID      uuid.UUID
	Role        model.UserRole
	Permissions []model.Permission
	Name        string
	Email       string
}

// SessionFromClaims builds a Session from validated token claims.
func SessionFromClaims(claims *Claims) (*Session, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:      id,
		Role:        claims.Role,
		Permissions: claims.Permissions,
		Name:        claims.Name,
		Email:       claims.Email,
	}, nil
}
