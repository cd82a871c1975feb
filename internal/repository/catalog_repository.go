package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// FitnessGoalRepository defines fitness goal catalog persistence operations.
type FitnessGoalRepository interface {
	Create(ctx context.Context, goal *model.FitnessGoal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FitnessGoal, error)
	FindByName(ctx context.Context, name string) (*model.FitnessGoal, error)
	List(ctx context.Context) ([]model.FitnessGoal, error)
	Upsert(ctx context.Context, goal *model.FitnessGoal) error
}

type fitnessGoalRepository struct {
	db *gorm.DB
}

// NewFitnessGoalRepository creates a new fitness goal repository.
func NewFitnessGoalRepository(db *gorm.DB) FitnessGoalRepository {
	return &fitnessGoalRepository{db: db}
}

func (r *fitnessGoalRepository) Create(ctx context.Context, goal *model.FitnessGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *fitnessGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FitnessGoal{}, "id = ?", id).Error
}

func (r *fitnessGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FitnessGoal, error) {
	var goal model.FitnessGoal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *fitnessGoalRepository) FindByName(ctx context.Context, name string) (*model.FitnessGoal, error) {
	var goal model.FitnessGoal
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *fitnessGoalRepository) List(ctx context.Context) ([]model.FitnessGoal, error) {
	var goals []model.FitnessGoal
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Upsert creates the goal if no goal with its name exists. Used by seeding.
func (r *fitnessGoalRepository) Upsert(ctx context.Context, goal *model.FitnessGoal) error {
	var existing model.FitnessGoal
	err := r.db.WithContext(ctx).Where("name = ?", goal.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(goal).Error
}

// ExerciseRepository defines exercise library persistence operations.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Exercise, error)
	FindByName(ctx context.Context, name string) (*model.Exercise, error)
	List(ctx context.Context) ([]model.Exercise, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new exercise repository.
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Exercise{}, "id = ?", id).Error
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindByName(ctx context.Context, name string) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) List(ctx context.Context) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// DietTypeRepository defines diet type catalog persistence operations.
type DietTypeRepository interface {
	Create(ctx context.Context, dietType *model.DietType) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DietType, error)
	FindByName(ctx context.Context, name string) (*model.DietType, error)
	List(ctx context.Context) ([]model.DietType, error)
}

type dietTypeRepository struct {
	db *gorm.DB
}

// NewDietTypeRepository creates a new diet type repository.
func NewDietTypeRepository(db *gorm.DB) DietTypeRepository {
	return &dietTypeRepository{db: db}
}

func (r *dietTypeRepository) Create(ctx context.Context, dietType *model.DietType) error {
	return r.db.WithContext(ctx).Create(dietType).Error
}

func (r *dietTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DietType{}, "id = ?", id).Error
}

func (r *dietTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DietType, error) {
	var dietType model.DietType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dietType).Error; err != nil {
		return nil, err
	}
	return &dietType, nil
}

func (r *dietTypeRepository) FindByName(ctx context.Context, name string) (*model.DietType, error) {
	var dietType model.DietType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&dietType).Error; err != nil {
		return nil, err
	}
	return &dietType, nil
}

func (r *dietTypeRepository) List(ctx context.Context) ([]model.DietType, error) {
	var dietTypes []model.DietType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dietTypes).Error; err != nil {
		return nil, err
	}
	return dietTypes, nil
}
