package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// AttendanceService handles gym check-ins and check-outs.
type AttendanceService interface {
	CheckIn(ctx context.Context, sess *auth.Session, memberID uuid.UUID) (*model.Attendance, error)
	// QuickCheckIn resolves a member by membership number at the front desk.
	QuickCheckIn(ctx context.Context, sess *auth.Session, membershipNumber string) (*model.Attendance, error)
	CheckOut(ctx context.Context, sess *auth.Session, memberID uuid.UUID) (*model.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.Attendance, error)
	MemberHistory(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]model.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	memberRepo     repository.MemberRepository
	activity       ActivityService
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	memberRepo repository.MemberRepository,
	activity ActivityService,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		activity:       activity,
	}
}

// CheckIn records a visit. A member can check in at most once per calendar
// day; a second attempt returns ErrAlreadyCheckedIn.
func (s *attendanceService) CheckIn(ctx context.Context, sess *auth.Session, memberID uuid.UUID) (*model.Attendance, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermViewAttendance) {
		return nil, apperrors.ErrUnauthorized
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.checkInMember(ctx, sess, member)
}

func (s *attendanceService) QuickCheckIn(ctx context.Context, sess *auth.Session, membershipNumber string) (*model.Attendance, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermViewAttendance) {
		return nil, apperrors.ErrUnauthorized
	}

	member, err := s.memberRepo.FindByMembershipNumber(ctx, membershipNumber)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if member.Status != model.MemberActive {
		return nil, apperrors.ErrMemberInactive
	}

	return s.checkInMember(ctx, sess, member)
}

func (s *attendanceService) checkInMember(ctx context.Context, sess *auth.Session, member *model.Member) (*model.Attendance, error) {
	now := time.Now()
	today := dayOf(now)

	existing, err := s.attendanceRepo.FindByMemberAndDate(ctx, member.ID, today)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyCheckedIn
	}

	attendance := &model.Attendance{
		MemberID: member.ID,
		Date:     today,
		CheckIn:  now,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "CHECK_IN", "Attendance", attendance.ID.String(), map[string]any{
		"member": member.Name,
	})

	attendance.Member = member
	return attendance, nil
}

// CheckOut closes today's open visit and records the duration in minutes.
func (s *attendanceService) CheckOut(ctx context.Context, sess *auth.Session, memberID uuid.UUID) (*model.Attendance, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermViewAttendance) {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	attendance, err := s.attendanceRepo.FindByMemberAndDate(ctx, memberID, dayOf(now))
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if attendance.CheckOut != nil {
		return attendance, nil
	}

	attendance.CheckOut = &now
	attendance.Duration = int(now.Sub(attendance.CheckIn).Minutes())
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) ListByDate(ctx context.Context, date time.Time) ([]model.Attendance, error) {
	return s.attendanceRepo.ListByDate(ctx, dayOf(date))
}

func (s *attendanceService) MemberHistory(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]model.Attendance, error) {
	return s.attendanceRepo.ListByMemberBetween(ctx, memberID, dayOf(from), dayOf(to))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
