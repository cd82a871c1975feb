package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// WorkoutRepository defines workout plan persistence operations.
type WorkoutRepository interface {
	Create(ctx context.Context, plan *model.WorkoutPlan) error
	Update(ctx context.Context, plan *model.WorkoutPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WorkoutPlan, error)
	List(ctx context.Context, memberID *uuid.UUID) ([]model.WorkoutPlan, error)
	CountByGoal(ctx context.Context, goalID uuid.UUID) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout plan repository.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, plan *model.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *workoutRepository) Update(ctx context.Context, plan *model.WorkoutPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WorkoutPlan{}, "id = ?", id).Error
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WorkoutPlan, error) {
	var plan model.WorkoutPlan
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Goal").
		Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutRepository) List(ctx context.Context, memberID *uuid.UUID) ([]model.WorkoutPlan, error) {
	q := r.db.WithContext(ctx).Preload("Member").Preload("Goal")
	if memberID != nil {
		q = q.Where("member_id = ?", *memberID)
	}
	var plans []model.WorkoutPlan
	if err := q.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *workoutRepository) CountByGoal(ctx context.Context, goalID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WorkoutPlan{}).
		Where("goal_id = ?", goalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DietRepository defines diet plan persistence operations.
type DietRepository interface {
	Create(ctx context.Context, plan *model.DietPlan) error
	Update(ctx context.Context, plan *model.DietPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DietPlan, error)
	List(ctx context.Context, memberID *uuid.UUID) ([]model.DietPlan, error)
	CountByDietType(ctx context.Context, dietTypeID uuid.UUID) (int64, error)
}

type dietRepository struct {
	db *gorm.DB
}

// NewDietRepository creates a new diet plan repository.
func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db: db}
}

func (r *dietRepository) Create(ctx context.Context, plan *model.DietPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *dietRepository) Update(ctx context.Context, plan *model.DietPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *dietRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DietPlan{}, "id = ?", id).Error
}

func (r *dietRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DietPlan, error) {
	var plan model.DietPlan
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("DietType").
		Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *dietRepository) List(ctx context.Context, memberID *uuid.UUID) ([]model.DietPlan, error) {
	q := r.db.WithContext(ctx).Preload("Member").Preload("DietType")
	if memberID != nil {
		q = q.Where("member_id = ?", *memberID)
	}
	var plans []model.DietPlan
	if err := q.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *dietRepository) CountByDietType(ctx context.Context, dietTypeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DietPlan{}).
		Where("diet_type_id = ?", dietTypeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
