package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestNotificationService_Check(t *testing.T) {
	leadID := uuid.New()
	membershipID := uuid.New()

	leadRepo := new(MockLeadRepository)
	leadRepo.On("ListFollowUpsBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Lead{
		{ID: leadID, Name: "Ravi Kumar", Phone: "9876543210"},
	}, nil)

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("ListExpiringBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Membership{
		{ID: membershipID, EndDate: time.Now().AddDate(0, 0, 3), Member: &model.Member{Name: "Asha"}},
	}, nil)
	membershipRepo.On("ListOverdue", mock.Anything, mock.Anything).Return([]model.Membership{}, nil)

	notificationRepo := new(MockNotificationRepository)
	// Fresh entities get a notification each.
	notificationRepo.On("FindOpenByTypeAndEntity", mock.Anything, model.NotifLeadFollowUp, leadID.String()).Return(nil, gorm.ErrRecordNotFound)
	notificationRepo.On("FindOpenByTypeAndEntity", mock.Anything, model.NotifMembershipExpiring, membershipID.String()).Return(nil, gorm.ErrRecordNotFound)
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.Status == model.NotifUnread
	})).Return(nil).Times(2)

	service := NewNotificationService(notificationRepo, leadRepo, membershipRepo, nil, zerolog.Nop())
	counts, err := service.Check(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, counts.Leads)
	assert.Equal(t, 1, counts.Members)
	assert.Equal(t, 0, counts.Payments)
	notificationRepo.AssertExpectations(t)
}

// Repeated polling must not duplicate an open alert for the same entity.
func TestNotificationService_Check_Dedupes(t *testing.T) {
	leadID := uuid.New()

	leadRepo := new(MockLeadRepository)
	leadRepo.On("ListFollowUpsBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Lead{
		{ID: leadID, Name: "Ravi Kumar"},
	}, nil)

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("ListExpiringBetween", mock.Anything, mock.Anything, mock.Anything).Return([]model.Membership{}, nil)
	membershipRepo.On("ListOverdue", mock.Anything, mock.Anything).Return([]model.Membership{}, nil)

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("FindOpenByTypeAndEntity", mock.Anything, model.NotifLeadFollowUp, leadID.String()).Return(&model.Notification{
		Type:     model.NotifLeadFollowUp,
		EntityID: leadID.String(),
		Status:   model.NotifUnread,
	}, nil)

	service := NewNotificationService(notificationRepo, leadRepo, membershipRepo, nil, zerolog.Nop())
	counts, err := service.Check(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, counts.Leads)
	notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotificationService_MarkRead(t *testing.T) {
	id := uuid.New()

	t.Run("stamps read", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		notificationRepo.On("FindByID", mock.Anything, id).Return(&model.Notification{
			ID:     id,
			Status: model.NotifUnread,
		}, nil)
		notificationRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.Status == model.NotifRead && n.ReadAt != nil
		})).Return(nil)

		service := NewNotificationService(notificationRepo, new(MockLeadRepository), new(MockMembershipRepository), nil, zerolog.Nop())
		assert.NoError(t, service.MarkRead(context.Background(), id))
		notificationRepo.AssertExpectations(t)
	})

	t.Run("missing notification", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		notificationRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewNotificationService(notificationRepo, new(MockLeadRepository), new(MockMembershipRepository), nil, zerolog.Nop())
		assert.Equal(t, apperrors.ErrNotFound, service.MarkRead(context.Background(), id))
	})
}
