package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gymcrm/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	user := &model.User{
		ID:    uuid.New(),
		Name:  "Front Desk",
		Email: "desk@gym.test",
		Role:  model.RoleReceptionist,
	}
	perms := []model.Permission{model.PermViewMembers, model.PermCreatePayments}

	token, err := service.GenerateSessionToken(user, perms)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, model.RoleReceptionist, claims.Role)
	assert.Equal(t, perms, claims.Permissions)
	assert.Equal(t, "desk@gym.test", claims.Email)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleAdmin}

	token, err := NewJWTService("secret-a").GenerateSessionToken(user, nil)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestSessionFromClaims(t *testing.T) {
	id := uuid.New()
	sess, err := SessionFromClaims(&Claims{
		UserID: id.String(),
		Role:   model.RoleTrainer,
		Name:   "Coach",
	})
	assert.NoError(t, err)
	assert.Equal(t, id, sess.UserID)
	assert.Equal(t, model.RoleTrainer, sess.Role)

	_, err = SessionFromClaims(&Claims{UserID: "not-a-uuid"})
	assert.Error(t, err)
}
