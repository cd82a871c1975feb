package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// PlanRepository defines membership plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.MembershipPlan) error
	Update(ctx context.Context, plan *model.MembershipPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MembershipPlan, error)
	FindByName(ctx context.Context, name string) (*model.MembershipPlan, error)
	List(ctx context.Context, activeOnly bool) ([]model.MembershipPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.MembershipPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Update(ctx context.Context, plan *model.MembershipPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MembershipPlan, error) {
	var plan model.MembershipPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByName(ctx context.Context, name string) (*model.MembershipPlan, error) {
	var plan model.MembershipPlan
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context, activeOnly bool) ([]model.MembershipPlan, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var plans []model.MembershipPlan
	if err := q.Order("sort_order ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// MembershipRepository defines membership assignment persistence operations.
type MembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) error
	Update(ctx context.Context, membership *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	DeactivateForMember(ctx context.Context, memberID uuid.UUID) error
	CountActiveByPlan(ctx context.Context, planID uuid.UUID) (int64, error)
	ListActive(ctx context.Context) ([]model.Membership, error)
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Membership, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]model.Membership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) Update(ctx context.Context, membership *model.Membership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

func (r *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Preload("Member").
		Where("id = ?", id).First(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// DeactivateForMember clears the active flag on all of a member's memberships.
func (r *membershipRepository) DeactivateForMember(ctx context.Context, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("member_id = ? AND active = ?", memberID, true).
		Update("active", false).Error
}

func (r *membershipRepository) CountActiveByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("plan_id = ? AND active = ?", planID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *membershipRepository) ListActive(ctx context.Context) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("active = ?", true).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListExpiringBetween returns active memberships ending inside the window,
// with member and plan loaded for notification text.
func (r *membershipRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Plan").
		Where("active = ? AND end_date BETWEEN ? AND ?", true, from, to).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListOverdue returns active memberships whose end date has passed.
func (r *membershipRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Plan").
		Where("active = ? AND end_date < ?", true, asOf).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
