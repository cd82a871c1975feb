package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestLeadService_Create(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Lead")).Return(nil)

	sess := adminSession()
	service := NewLeadService(mockRepo, noopActivity{})

	lead, err := service.Create(context.Background(), sess, CreateLeadInput{
		Name:   "Ravi Kumar",
		Phone:  "9876543210",
		Source: model.SourceWalkIn,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.LeadNew, lead.Status)
	assert.Equal(t, sess.UserID, lead.AssignedTo)
	assert.NotNil(t, lead.LastContactDate)
	mockRepo.AssertExpectations(t)
}

func TestLeadService_Create_Unauthorized(t *testing.T) {
	service := NewLeadService(new(MockLeadRepository), noopActivity{})

	_, err := service.Create(context.Background(), customSession(), CreateLeadInput{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
	})

	assert.Equal(t, apperrors.ErrUnauthorized, err)
}

func TestLeadService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        model.LeadStatus
		wantConverted bool
	}{
		{name: "converted stamps converted date", status: model.LeadConverted, wantConverted: true},
		{name: "lost leaves converted date empty", status: model.LeadLost, wantConverted: false},
		{name: "contacted leaves converted date empty", status: model.LeadContacted, wantConverted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			mockRepo := new(MockLeadRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(&model.Lead{
				ID:     id,
				Name:   "Ravi Kumar",
				Status: model.LeadNew,
			}, nil)
			mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Lead")).Return(nil)

			service := NewLeadService(mockRepo, noopActivity{})
			lead, err := service.UpdateStatus(context.Background(), adminSession(), id, tt.status)

			assert.NoError(t, err)
			assert.Equal(t, tt.status, lead.Status)
			if tt.wantConverted {
				assert.NotNil(t, lead.ConvertedDate)
			} else {
				assert.Nil(t, lead.ConvertedDate)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLeadService_Convert(t *testing.T) {
	t.Run("confirm returns the contact", func(t *testing.T) {
		id := uuid.New()
		mockRepo := new(MockLeadRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Lead{
			ID:     id,
			Name:   "Ravi Kumar",
			Phone:  "9876543210",
			Email:  "ravi@example.com",
			Status: model.LeadFollowUp,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Lead")).Return(nil)

		service := NewLeadService(mockRepo, noopActivity{})
		contact, err := service.Convert(context.Background(), adminSession(), id, true)

		assert.NoError(t, err)
		assert.NotNil(t, contact)
		assert.Equal(t, id, contact.LeadID)
		assert.Equal(t, "Ravi Kumar", contact.Name)
		assert.Equal(t, "9876543210", contact.Phone)
		mockRepo.AssertExpectations(t)
	})

	t.Run("decline marks lost and returns no contact", func(t *testing.T) {
		id := uuid.New()
		mockRepo := new(MockLeadRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Lead{
			ID:     id,
			Status: model.LeadNew,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
			return l.Status == model.LeadLost
		})).Return(nil)

		service := NewLeadService(mockRepo, noopActivity{})
		contact, err := service.Convert(context.Background(), adminSession(), id, false)

		assert.NoError(t, err)
		assert.Nil(t, contact)
		mockRepo.AssertExpectations(t)
	})

	t.Run("finalized lead cannot be converted again", func(t *testing.T) {
		for _, status := range []model.LeadStatus{model.LeadConverted, model.LeadLost} {
			id := uuid.New()
			mockRepo := new(MockLeadRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(&model.Lead{
				ID:     id,
				Status: status,
			}, nil)

			service := NewLeadService(mockRepo, noopActivity{})
			contact, err := service.Convert(context.Background(), adminSession(), id, true)

			assert.Equal(t, apperrors.ErrLeadFinalized, err)
			assert.Nil(t, contact)
			mockRepo.AssertExpectations(t)
		}
	})

	t.Run("missing lead", func(t *testing.T) {
		id := uuid.New()
		mockRepo := new(MockLeadRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewLeadService(mockRepo, noopActivity{})
		_, err := service.Convert(context.Background(), adminSession(), id, true)

		assert.Equal(t, apperrors.ErrNotFound, err)
	})
}

func TestLeadService_Stats(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(8), nil)
	mockRepo.On("CountByStatus", mock.Anything).Return(map[model.LeadStatus]int64{
		model.LeadNew:       4,
		model.LeadConverted: 2,
		model.LeadLost:      2,
	}, nil)
	mockRepo.On("CountBySource", mock.Anything).Return(map[model.LeadSource]int64{
		model.SourceWalkIn:   6,
		model.SourceReferral: 2,
	}, nil)

	service := NewLeadService(mockRepo, noopActivity{})
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	assert.Equal(t, int64(2), stats.Converted)
	assert.Equal(t, "25.0", stats.ConversionRate)
	mockRepo.AssertExpectations(t)
}

func TestLeadService_GroupedByStatus(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("List", mock.Anything, 100).Return([]model.Lead{
		{Name: "A", Status: model.LeadNew},
		{Name: "B", Status: model.LeadNew},
		{Name: "C", Status: model.LeadLost},
	}, nil)

	service := NewLeadService(mockRepo, noopActivity{})
	grouped, err := service.GroupedByStatus(context.Background())

	assert.NoError(t, err)
	assert.Len(t, grouped[model.LeadNew], 2)
	assert.Len(t, grouped[model.LeadLost], 1)
	// Empty stages are present so the board renders every column.
	assert.NotNil(t, grouped[model.LeadContacted])
	assert.Empty(t, grouped[model.LeadContacted])
	mockRepo.AssertExpectations(t)
}
