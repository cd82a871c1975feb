package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

const membershipNumberPrefix = "PBF"

// CreateMemberInput carries the fields for a new member. LeadID, when set,
// only records that the form was pre-populated from a converted lead; no
// back-reference is persisted.
type CreateMemberInput struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	City             string
	State            string
	Pincode          string
	DateOfBirth      *time.Time
	Gender           string
	EmergencyName    string
	EmergencyContact string
	BloodGroup       string
	MedicalNotes     string
	TrainerID        *uuid.UUID
	Notes            string
	LeadID           *uuid.UUID
}

// UpdateMemberInput carries editable member fields; nil means unchanged.
type UpdateMemberInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	TrainerID *uuid.UUID
	Notes     *string
}

// MemberService handles member records.
type MemberService interface {
	Create(ctx context.Context, sess *auth.Session, input CreateMemberInput) (*model.Member, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input UpdateMemberInput) (*model.Member, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Member, error)
	Search(ctx context.Context, params repository.MemberSearch) ([]model.Member, int64, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	activity   ActivityService
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo repository.MemberRepository, activity ActivityService) MemberService {
	return &memberService{memberRepo: memberRepo, activity: activity}
}

// Create registers a member with a generated membership number and PENDING
// status; a membership assignment later activates them.
func (s *memberService) Create(ctx context.Context, sess *auth.Session, input CreateMemberInput) (*model.Member, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermCreateMembers) {
		return nil, apperrors.ErrUnauthorized
	}

	number, err := s.nextMembershipNumber(ctx)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		MembershipNumber: number,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Pincode:          input.Pincode,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		EmergencyName:    input.EmergencyName,
		EmergencyContact: input.EmergencyContact,
		BloodGroup:       input.BloodGroup,
		MedicalNotes:     input.MedicalNotes,
		Status:           model.MemberPending,
		JoiningDate:      time.Now(),
		TrainerID:        input.TrainerID,
		Notes:            input.Notes,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	details := map[string]any{
		"membership_number": number,
		"name":              member.Name,
	}
	if input.LeadID != nil {
		details["lead_id"] = input.LeadID.String()
	}
	s.activity.Log(ctx, sess.UserID, "CREATE", "Member", member.ID.String(), details)
	return member, nil
}

func (s *memberService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input UpdateMemberInput) (*model.Member, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditMembers) {
		return nil, apperrors.ErrUnauthorized
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Address != nil {
		member.Address = *input.Address
	}
	if input.City != nil {
		member.City = *input.City
	}
	if input.State != nil {
		member.State = *input.State
	}
	if input.TrainerID != nil {
		member.TrainerID = input.TrainerID
	}
	if input.Notes != nil {
		member.Notes = *input.Notes
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "UPDATE", "Member", id.String(), map[string]any{
		"name": member.Name,
	})
	return member, nil
}

// Delete removes a member record. ADMIN only.
func (s *memberService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil || (sess.Role != model.RoleAdmin && sess.Role != model.RoleSuperAdmin) {
		return apperrors.ErrUnauthorized
	}

	member, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "DELETE", "Member", id.String(), map[string]any{
		"name": member.Name,
	})
	return nil
}

func (s *memberService) Get(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	return member, nil
}

func (s *memberService) Search(ctx context.Context, params repository.MemberSearch) ([]model.Member, int64, error) {
	return s.memberRepo.Search(ctx, params)
}

// nextMembershipNumber continues the PBF sequence from the newest member,
// starting at PBF1001.
func (s *memberService) nextMembershipNumber(ctx context.Context) (string, error) {
	last, err := s.memberRepo.LastMembershipNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("last membership number: %w", err)
	}

	lastSeq := 1000
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, membershipNumberPrefix)); err == nil {
			lastSeq = n
		}
	}
	return fmt.Sprintf("%s%04d", membershipNumberPrefix, lastSeq+1), nil
}
