package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// MemberSearch holds listing filters.
type MemberSearch struct {
	Query     string
	Status    model.MembershipStatus
	TrainerID *uuid.UUID
	Page      int
	Limit     int
}

// MemberRepository defines member persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByMembershipNumber(ctx context.Context, number string) (*model.Member, error)
	Search(ctx context.Context, params MemberSearch) ([]model.Member, int64, error)
	LastMembershipNumber(ctx context.Context) (string, error)
	CountByStatus(ctx context.Context) (map[model.MembershipStatus]int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MembershipStatus) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id).Error
}

// FindByID loads a member with trainer and current memberships.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Memberships.Plan").
		Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByMembershipNumber(ctx context.Context, number string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("membership_number = ?", number).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Search lists members with filters and pagination, newest first.
func (r *memberRepository) Search(ctx context.Context, params MemberSearch) ([]model.Member, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Member{})

	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("name LIKE ? OR phone LIKE ? OR membership_number LIKE ? OR email LIKE ?",
			like, like, like, like)
	}
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}
	if params.TrainerID != nil {
		q = q.Where("trainer_id = ?", *params.TrainerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	var members []model.Member
	if err := q.Preload("Trainer").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// LastMembershipNumber returns the newest member's membership number, or ""
// when no members exist.
func (r *memberRepository) LastMembershipNumber(ctx context.Context) (string, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Select("membership_number").
		Order("created_at DESC").
		First(&member).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.MembershipNumber, nil
}

type memberStatusCount struct {
	Status model.MembershipStatus
	Count  int64
}

func (r *memberRepository) CountByStatus(ctx context.Context) (map[model.MembershipStatus]int64, error) {
	var rows []memberStatusCount
	if err := r.db.WithContext(ctx).Model(&model.Member{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.MembershipStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MembershipStatus) error {
	return r.db.WithContext(ctx).Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", status).Error
}
