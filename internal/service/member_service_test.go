package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestMemberService_Create(t *testing.T) {
	tests := []struct {
		name       string
		lastNumber string
		wantNumber string
	}{
		{name: "first member", lastNumber: "", wantNumber: "PBF1001"},
		{name: "sequence continues", lastNumber: "PBF1041", wantNumber: "PBF1042"},
		{name: "unparseable last number restarts the sequence", lastNumber: "LEGACY-7", wantNumber: "PBF1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMemberRepository)
			mockRepo.On("LastMembershipNumber", mock.Anything).Return(tt.lastNumber, nil)
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Member")).Return(nil)

			service := NewMemberService(mockRepo, noopActivity{})
			member, err := service.Create(context.Background(), adminSession(), CreateMemberInput{
				Name:  "Ravi Kumar",
				Phone: "9876543210",
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNumber, member.MembershipNumber)
			assert.Equal(t, model.MemberPending, member.Status)
			assert.False(t, member.JoiningDate.IsZero())
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMemberService_Create_Unauthorized(t *testing.T) {
	service := NewMemberService(new(MockMemberRepository), noopActivity{})

	_, err := service.Create(context.Background(), customSession(model.PermViewMembers), CreateMemberInput{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
	})

	assert.Equal(t, apperrors.ErrUnauthorized, err)
}

func TestMemberService_Delete_AdminOnly(t *testing.T) {
	for _, role := range []model.UserRole{model.RoleTrainer, model.RoleReceptionist, model.RoleHelper} {
		service := NewMemberService(new(MockMemberRepository), noopActivity{})
		sess := adminSession()
		sess.Role = role

		err := service.Delete(context.Background(), sess, sess.UserID)
		assert.Equal(t, apperrors.ErrUnauthorized, err, "role %s must not delete members", role)
	}
}
