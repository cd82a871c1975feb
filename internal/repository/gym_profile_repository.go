package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// GymProfileRepository defines gym profile persistence operations.
type GymProfileRepository interface {
	Create(ctx context.Context, profile *model.GymProfile) error
	Update(ctx context.Context, profile *model.GymProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GymProfile, error)
	First(ctx context.Context) (*model.GymProfile, error)
	List(ctx context.Context) ([]model.GymProfile, error)
}

type gymProfileRepository struct {
	db *gorm.DB
}

// NewGymProfileRepository creates a new gym profile repository.
func NewGymProfileRepository(db *gorm.DB) GymProfileRepository {
	return &gymProfileRepository{db: db}
}

func (r *gymProfileRepository) Create(ctx context.Context, profile *model.GymProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *gymProfileRepository) Update(ctx context.Context, profile *model.GymProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *gymProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GymProfile{}, "id = ?", id).Error
}

func (r *gymProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GymProfile, error) {
	var profile model.GymProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// First returns the oldest profile, the one used on invoices.
func (r *gymProfileRepository) First(ctx context.Context) (*model.GymProfile, error) {
	var profile model.GymProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *gymProfileRepository) List(ctx context.Context) ([]model.GymProfile, error) {
	var profiles []model.GymProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
