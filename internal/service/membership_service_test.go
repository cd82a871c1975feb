package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestMembershipService_Assign(t *testing.T) {
	planID := uuid.New()
	memberID := uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	pct := decimal.NewFromInt(10)
	flat := decimal.NewFromInt(200)

	tests := []struct {
		name         string
		discount     *decimal.Decimal
		discountType model.DiscountType
		wantFinal    string
	}{
		{name: "no discount", discount: nil, wantFinal: "1500"},
		{name: "percentage discount", discount: &pct, discountType: model.DiscountPercentage, wantFinal: "1350"},
		{name: "fixed discount", discount: &flat, discountType: model.DiscountFixed, wantFinal: "1300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planRepo := new(MockPlanRepository)
			planRepo.On("FindByID", mock.Anything, planID).Return(&model.MembershipPlan{
				ID:       planID,
				Name:     "Monthly",
				Duration: 30,
				Price:    decimal.NewFromInt(1500),
				Active:   true,
			}, nil)

			memberRepo := new(MockMemberRepository)
			memberRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)
			memberRepo.On("UpdateStatus", mock.Anything, memberID, model.MemberActive).Return(nil)

			membershipRepo := new(MockMembershipRepository)
			membershipRepo.On("DeactivateForMember", mock.Anything, memberID).Return(nil)
			membershipRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).Return(nil)

			service := NewMembershipService(planRepo, membershipRepo, memberRepo, noopActivity{})
			membership, err := service.Assign(context.Background(), adminSession(), AssignMembershipInput{
				MemberID:     memberID,
				PlanID:       planID,
				StartDate:    start,
				Discount:     tt.discount,
				DiscountType: tt.discountType,
			})

			assert.NoError(t, err)
			assert.True(t, membership.Active)
			assert.Equal(t, start.AddDate(0, 0, 30), membership.EndDate)
			assert.Equal(t, tt.wantFinal, membership.FinalAmount.String())
			membershipRepo.AssertExpectations(t)
			memberRepo.AssertExpectations(t)
		})
	}
}

func TestMembershipService_DeletePlan(t *testing.T) {
	planID := uuid.New()

	t.Run("soft deletes an unused plan", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		planRepo.On("FindByID", mock.Anything, planID).Return(&model.MembershipPlan{
			ID:     planID,
			Name:   "Monthly",
			Active: true,
		}, nil)
		planRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.MembershipPlan) bool {
			return !p.Active
		})).Return(nil)

		membershipRepo := new(MockMembershipRepository)
		membershipRepo.On("CountActiveByPlan", mock.Anything, planID).Return(int64(0), nil)

		service := NewMembershipService(planRepo, membershipRepo, new(MockMemberRepository), noopActivity{})
		err := service.DeletePlan(context.Background(), adminSession(), planID)

		assert.NoError(t, err)
		planRepo.AssertExpectations(t)
	})

	t.Run("refuses while memberships are active", func(t *testing.T) {
		planRepo := new(MockPlanRepository)
		planRepo.On("FindByID", mock.Anything, planID).Return(&model.MembershipPlan{
			ID:     planID,
			Active: true,
		}, nil)

		membershipRepo := new(MockMembershipRepository)
		membershipRepo.On("CountActiveByPlan", mock.Anything, planID).Return(int64(3), nil)

		service := NewMembershipService(planRepo, membershipRepo, new(MockMemberRepository), noopActivity{})
		err := service.DeletePlan(context.Background(), adminSession(), planID)

		assert.Equal(t, apperrors.ErrPlanHasMemberships, err)
	})

	t.Run("requires an admin", func(t *testing.T) {
		service := NewMembershipService(new(MockPlanRepository), new(MockMembershipRepository), new(MockMemberRepository), noopActivity{})
		err := service.DeletePlan(context.Background(), customSession(), planID)

		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})
}

func TestMembershipService_CreatePlan_DuplicateName(t *testing.T) {
	planRepo := new(MockPlanRepository)
	planRepo.On("FindByName", mock.Anything, "Monthly").Return(&model.MembershipPlan{Name: "Monthly"}, nil)

	service := NewMembershipService(planRepo, new(MockMembershipRepository), new(MockMemberRepository), noopActivity{})
	_, err := service.CreatePlan(context.Background(), adminSession(), PlanInput{
		Name:     "Monthly",
		Duration: 30,
		Price:    decimal.NewFromInt(1500),
	})

	assert.Equal(t, apperrors.ErrDuplicateName, err)
}

func TestMembershipService_Renew(t *testing.T) {
	membershipID := uuid.New()
	memberID := uuid.New()
	planID := uuid.New()

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("FindByID", mock.Anything, membershipID).Return(&model.Membership{
		ID:       membershipID,
		MemberID: memberID,
		PlanID:   planID,
		Active:   true,
		Plan: &model.MembershipPlan{
			ID:       planID,
			Name:     "Monthly",
			Duration: 30,
			Price:    decimal.NewFromInt(1500),
		},
	}, nil)
	membershipRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *model.Membership) bool {
		return m.ID == membershipID && !m.Active
	})).Return(nil)
	membershipRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).Return(nil)

	memberRepo := new(MockMemberRepository)
	memberRepo.On("UpdateStatus", mock.Anything, memberID, model.MemberActive).Return(nil)

	service := NewMembershipService(new(MockPlanRepository), membershipRepo, memberRepo, noopActivity{})
	renewed, err := service.Renew(context.Background(), adminSession(), membershipID)

	assert.NoError(t, err)
	assert.True(t, renewed.Active)
	assert.Equal(t, memberID, renewed.MemberID)
	assert.Equal(t, planID, renewed.PlanID)
	assert.Equal(t, renewed.StartDate.AddDate(0, 0, 30), renewed.EndDate)
	membershipRepo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
}
