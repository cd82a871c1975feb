package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

func TestReportService_Dashboard(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	memberRepo.On("CountByStatus", mock.Anything).Return(map[model.MembershipStatus]int64{
		model.MemberActive:  12,
		model.MemberExpired: 3,
		model.MemberPending: 2,
	}, nil)

	leadRepo := new(MockLeadRepository)
	leadRepo.On("Count", mock.Anything).Return(int64(7), nil)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("SumBetween", mock.Anything, mock.Anything, mock.Anything).Return(decimal.NewFromInt(42000), int64(9), nil)

	attendanceRepo := new(MockAttendanceRepository)
	attendanceRepo.On("ListByDate", mock.Anything, mock.Anything).Return([]model.Attendance{{}, {}, {}}, nil)

	service := NewReportService(paymentRepo, memberRepo, new(MockMembershipRepository), attendanceRepo, leadRepo, nil)
	summary, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(17), summary.TotalMembers)
	assert.Equal(t, int64(12), summary.ActiveMembers)
	assert.Equal(t, int64(3), summary.ExpiredMembers)
	assert.Equal(t, int64(2), summary.PendingMembers)
	assert.Equal(t, int64(7), summary.TotalLeads)
	assert.Equal(t, "42000", summary.MonthRevenue.String())
	assert.Equal(t, int64(3), summary.TodayAttendance)
}

func TestReportService_MonthlyRevenue_ClampsRange(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("SumBetween", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, int64(0), nil)

	service := NewReportService(paymentRepo, new(MockMemberRepository), new(MockMembershipRepository), new(MockAttendanceRepository), new(MockLeadRepository), nil)

	out, err := service.MonthlyRevenue(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, out, 6)

	out, err = service.MonthlyRevenue(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, out, 3)
	// Oldest month first.
	assert.Less(t, out[0].Month, out[2].Month)
}

func TestReportService_PlanRevenueBreakdown(t *testing.T) {
	planA := uuid.New()
	planB := uuid.New()

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("ListActive", mock.Anything).Return([]model.Membership{
		{PlanID: planA, FinalAmount: decimal.NewFromInt(1500), Plan: &model.MembershipPlan{ID: planA, Name: "Monthly"}},
		{PlanID: planA, FinalAmount: decimal.NewFromInt(1350), Plan: &model.MembershipPlan{ID: planA, Name: "Monthly"}},
		{PlanID: planB, FinalAmount: decimal.NewFromInt(14000), Plan: &model.MembershipPlan{ID: planB, Name: "Annual"}},
	}, nil)

	service := NewReportService(new(MockPaymentRepository), new(MockMemberRepository), membershipRepo, new(MockAttendanceRepository), new(MockLeadRepository), nil)
	out, err := service.PlanRevenueBreakdown(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Monthly", out[0].PlanName)
	assert.Equal(t, 2, out[0].Members)
	assert.Equal(t, "2850", out[0].Revenue.String())
	assert.Equal(t, "Annual", out[1].PlanName)
	assert.Equal(t, "14000", out[1].Revenue.String())
}

func TestReportService_PaymentModeDistribution_StableOrder(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GroupByMode", mock.Anything).Return(map[model.PaymentMode]repository.ModeAggregate{
		model.ModeUPI:  {Amount: decimal.NewFromInt(3000), Count: 4},
		model.ModeCash: {Amount: decimal.NewFromInt(9000), Count: 6},
	}, nil)

	service := NewReportService(paymentRepo, new(MockMemberRepository), new(MockMembershipRepository), new(MockAttendanceRepository), new(MockLeadRepository), nil)
	out, err := service.PaymentModeDistribution(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, model.ModeCash, out[0].Mode)
	assert.Equal(t, model.ModeUPI, out[1].Mode)
}
