package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// PlanInput carries membership plan fields.
type PlanInput struct {
	Name        string
	Description string
	Duration    int // days
	Price       decimal.Decimal
	Features    []string
	Color       string
	Popular     bool
	SortOrder   int
}

// AssignMembershipInput carries a membership assignment.
type AssignMembershipInput struct {
	MemberID     uuid.UUID
	PlanID       uuid.UUID
	StartDate    time.Time
	Discount     *decimal.Decimal
	DiscountType model.DiscountType
	Notes        string
}

// MembershipService handles plans and membership assignments.
type MembershipService interface {
	CreatePlan(ctx context.Context, sess *auth.Session, input PlanInput) (*model.MembershipPlan, error)
	UpdatePlan(ctx context.Context, sess *auth.Session, id uuid.UUID, input PlanInput, active bool) (*model.MembershipPlan, error)
	DeletePlan(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	GetPlan(ctx context.Context, id uuid.UUID) (*model.MembershipPlan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]model.MembershipPlan, error)
	Assign(ctx context.Context, sess *auth.Session, input AssignMembershipInput) (*model.Membership, error)
	Renew(ctx context.Context, sess *auth.Session, membershipID uuid.UUID) (*model.Membership, error)
	ListActive(ctx context.Context) ([]model.Membership, error)
}

type membershipService struct {
	planRepo       repository.PlanRepository
	membershipRepo repository.MembershipRepository
	memberRepo     repository.MemberRepository
	activity       ActivityService
}

// NewMembershipService creates a new membership service.
func NewMembershipService(
	planRepo repository.PlanRepository,
	membershipRepo repository.MembershipRepository,
	memberRepo repository.MemberRepository,
	activity ActivityService,
) MembershipService {
	return &membershipService{
		planRepo:       planRepo,
		membershipRepo: membershipRepo,
		memberRepo:     memberRepo,
		activity:       activity,
	}
}

func (s *membershipService) CreatePlan(ctx context.Context, sess *auth.Session, input PlanInput) (*model.MembershipPlan, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	if existing, err := s.planRepo.FindByName(ctx, input.Name); err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateName
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check plan name: %w", err)
	}

	plan := &model.MembershipPlan{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Price:       input.Price,
		Features:    input.Features,
		Color:       input.Color,
		Popular:     input.Popular,
		Active:      true,
		SortOrder:   input.SortOrder,
	}
	if plan.Features == nil {
		plan.Features = []string{}
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (s *membershipService) UpdatePlan(ctx context.Context, sess *auth.Session, id uuid.UUID, input PlanInput, active bool) (*model.MembershipPlan, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = input.Name
	plan.Description = input.Description
	plan.Duration = input.Duration
	plan.Price = input.Price
	plan.Features = input.Features
	if plan.Features == nil {
		plan.Features = []string{}
	}
	plan.Color = input.Color
	plan.Popular = input.Popular
	plan.SortOrder = input.SortOrder
	plan.Active = active

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return plan, nil
}

// DeletePlan soft-deletes a plan by clearing its active flag. Plans with
// active memberships cannot be deleted.
func (s *membershipService) DeletePlan(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.membershipRepo.CountActiveByPlan(ctx, id)
	if err != nil {
		return fmt.Errorf("count plan memberships: %w", err)
	}
	if active > 0 {
		return apperrors.ErrPlanHasMemberships
	}

	plan.Active = false
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return fmt.Errorf("deactivate plan: %w", err)
	}
	return nil
}

func (s *membershipService) GetPlan(ctx context.Context, id uuid.UUID) (*model.MembershipPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return plan, nil
}

func (s *membershipService) ListPlans(ctx context.Context, activeOnly bool) ([]model.MembershipPlan, error) {
	return s.planRepo.List(ctx, activeOnly)
}

// Assign gives a member a new membership: end date is start plus the plan
// duration, the discount is applied to the plan price, prior memberships are
// deactivated and the member becomes ACTIVE.
func (s *membershipService) Assign(ctx context.Context, sess *auth.Session, input AssignMembershipInput) (*model.Membership, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	plan, err := s.GetPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.FindByID(ctx, input.MemberID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	endDate := input.StartDate.AddDate(0, 0, plan.Duration)
	finalAmount := applyDiscount(plan.Price, input.Discount, input.DiscountType)

	if err := s.membershipRepo.DeactivateForMember(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("deactivate memberships: %w", err)
	}

	membership := &model.Membership{
		MemberID:     input.MemberID,
		PlanID:       input.PlanID,
		StartDate:    input.StartDate,
		EndDate:      endDate,
		Amount:       plan.Price,
		Discount:     input.Discount,
		DiscountType: input.DiscountType,
		FinalAmount:  finalAmount,
		Active:       true,
		Notes:        input.Notes,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	if err := s.memberRepo.UpdateStatus(ctx, input.MemberID, model.MemberActive); err != nil {
		return nil, fmt.Errorf("activate member: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "Membership", membership.ID.String(), map[string]any{
		"plan": plan.Name,
	})
	return membership, nil
}

// Renew replaces a membership with a fresh one on the same plan starting now.
func (s *membershipService) Renew(ctx context.Context, sess *auth.Session, membershipID uuid.UUID) (*model.Membership, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	current, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find membership: %w", err)
	}

	current.Active = false
	if err := s.membershipRepo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("deactivate membership: %w", err)
	}

	start := time.Now()
	renewed := &model.Membership{
		MemberID:    current.MemberID,
		PlanID:      current.PlanID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, current.Plan.Duration),
		Amount:      current.Plan.Price,
		FinalAmount: current.Plan.Price,
		Active:      true,
	}
	if err := s.membershipRepo.Create(ctx, renewed); err != nil {
		return nil, fmt.Errorf("create renewed membership: %w", err)
	}

	if err := s.memberRepo.UpdateStatus(ctx, current.MemberID, model.MemberActive); err != nil {
		return nil, fmt.Errorf("activate member: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "RENEW", "Membership", renewed.ID.String(), map[string]any{
		"plan": current.Plan.Name,
	})
	return renewed, nil
}

func (s *membershipService) ListActive(ctx context.Context) ([]model.Membership, error) {
	return s.membershipRepo.ListActive(ctx)
}

// applyDiscount deducts a percentage or fixed discount from price.
func applyDiscount(price decimal.Decimal, discount *decimal.Decimal, discountType model.DiscountType) decimal.Decimal {
	if discount == nil {
		return price
	}
	if discountType == model.DiscountPercentage {
		cut := price.Mul(*discount).Div(decimal.NewFromInt(100))
		return price.Sub(cut)
	}
	return price.Sub(*discount)
}

func requireAdmin(sess *auth.Session) error {
	if sess == nil || (sess.Role != model.RoleAdmin && sess.Role != model.RoleSuperAdmin) {
		return apperrors.ErrUnauthorized
	}
	return nil
}
