package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
)

func TestAttendanceService_CheckIn(t *testing.T) {
	memberID := uuid.New()

	t.Run("records the first visit of the day", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{
			ID:     memberID,
			Name:   "Ravi Kumar",
			Status: model.MemberActive,
		}, nil)

		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		attendanceRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)

		service := NewAttendanceService(attendanceRepo, memberRepo, noopActivity{})
		attendance, err := service.CheckIn(context.Background(), adminSession(), memberID)

		assert.NoError(t, err)
		assert.Equal(t, memberID, attendance.MemberID)
		assert.Equal(t, dayOf(time.Now()), attendance.Date)
		assert.Nil(t, attendance.CheckOut)
		attendanceRepo.AssertExpectations(t)
	})

	t.Run("second check-in the same day is rejected", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)

		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(&model.Attendance{
			MemberID: memberID,
			Date:     dayOf(time.Now()),
		}, nil)

		service := NewAttendanceService(attendanceRepo, memberRepo, noopActivity{})
		_, err := service.CheckIn(context.Background(), adminSession(), memberID)

		assert.Equal(t, apperrors.ErrAlreadyCheckedIn, err)
	})

	t.Run("front desk permission is enough", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByID", mock.Anything, memberID).Return(&model.Member{ID: memberID}, nil)

		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		attendanceRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)

		service := NewAttendanceService(attendanceRepo, memberRepo, noopActivity{})
		_, err := service.CheckIn(context.Background(), customSession(model.PermViewAttendance), memberID)

		assert.NoError(t, err)
	})

	t.Run("no permission", func(t *testing.T) {
		service := NewAttendanceService(new(MockAttendanceRepository), new(MockMemberRepository), noopActivity{})
		_, err := service.CheckIn(context.Background(), customSession(model.PermViewDashboard), memberID)

		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})
}

func TestAttendanceService_QuickCheckIn(t *testing.T) {
	t.Run("resolves the member by membership number", func(t *testing.T) {
		memberID := uuid.New()
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByMembershipNumber", mock.Anything, "PBF0042").Return(&model.Member{
			ID:     memberID,
			Status: model.MemberActive,
		}, nil)

		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		attendanceRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)

		service := NewAttendanceService(attendanceRepo, memberRepo, noopActivity{})
		attendance, err := service.QuickCheckIn(context.Background(), adminSession(), "PBF0042")

		assert.NoError(t, err)
		assert.Equal(t, memberID, attendance.MemberID)
	})

	t.Run("inactive member cannot check in", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByMembershipNumber", mock.Anything, "PBF0042").Return(&model.Member{
			ID:     uuid.New(),
			Status: model.MemberExpired,
		}, nil)

		service := NewAttendanceService(new(MockAttendanceRepository), memberRepo, noopActivity{})
		_, err := service.QuickCheckIn(context.Background(), adminSession(), "PBF0042")

		assert.Equal(t, apperrors.ErrMemberInactive, err)
	})

	t.Run("unknown membership number", func(t *testing.T) {
		memberRepo := new(MockMemberRepository)
		memberRepo.On("FindByMembershipNumber", mock.Anything, "PBF9999").Return(nil, gorm.ErrRecordNotFound)

		service := NewAttendanceService(new(MockAttendanceRepository), memberRepo, noopActivity{})
		_, err := service.QuickCheckIn(context.Background(), adminSession(), "PBF9999")

		assert.Equal(t, apperrors.ErrNotFound, err)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	memberID := uuid.New()

	t.Run("closes the open visit with a duration", func(t *testing.T) {
		checkIn := time.Now().Add(-90 * time.Minute)
		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(&model.Attendance{
			MemberID: memberID,
			Date:     dayOf(time.Now()),
			CheckIn:  checkIn,
		}, nil)
		attendanceRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)

		service := NewAttendanceService(attendanceRepo, new(MockMemberRepository), noopActivity{})
		attendance, err := service.CheckOut(context.Background(), adminSession(), memberID)

		assert.NoError(t, err)
		assert.NotNil(t, attendance.CheckOut)
		assert.Equal(t, 90, attendance.Duration)
		attendanceRepo.AssertExpectations(t)
	})

	t.Run("repeated check-out is a no-op", func(t *testing.T) {
		out := time.Now().Add(-time.Hour)
		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(&model.Attendance{
			MemberID: memberID,
			CheckOut: &out,
			Duration: 60,
		}, nil)

		service := NewAttendanceService(attendanceRepo, new(MockMemberRepository), noopActivity{})
		attendance, err := service.CheckOut(context.Background(), adminSession(), memberID)

		assert.NoError(t, err)
		assert.Equal(t, &out, attendance.CheckOut)
		assert.Equal(t, 60, attendance.Duration)
	})

	t.Run("no visit today", func(t *testing.T) {
		attendanceRepo := new(MockAttendanceRepository)
		attendanceRepo.On("FindByMemberAndDate", mock.Anything, memberID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		service := NewAttendanceService(attendanceRepo, new(MockMemberRepository), noopActivity{})
		_, err := service.CheckOut(context.Background(), adminSession(), memberID)

		assert.Equal(t, apperrors.ErrNotFound, err)
	})
}
