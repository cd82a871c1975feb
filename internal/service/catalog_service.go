package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// CatalogService manages the fitness goal, exercise and diet type catalogs.
// Names are unique per catalog. Seeded defaults cannot be deleted, and neither
// can entries still referenced by a workout or diet plan.
type CatalogService interface {
	ListGoals(ctx context.Context) ([]model.FitnessGoal, error)
	CreateGoal(ctx context.Context, sess *auth.Session, name, description string) (*model.FitnessGoal, error)
	DeleteGoal(ctx context.Context, sess *auth.Session, id uuid.UUID) error

	ListExercises(ctx context.Context) ([]model.Exercise, error)
	CreateExercise(ctx context.Context, sess *auth.Session, name, muscleGroup, description string) (*model.Exercise, error)
	DeleteExercise(ctx context.Context, sess *auth.Session, id uuid.UUID) error

	ListDietTypes(ctx context.Context) ([]model.DietType, error)
	CreateDietType(ctx context.Context, sess *auth.Session, name, description string) (*model.DietType, error)
	DeleteDietType(ctx context.Context, sess *auth.Session, id uuid.UUID) error
}

type catalogService struct {
	goalRepo     repository.FitnessGoalRepository
	exerciseRepo repository.ExerciseRepository
	dietTypeRepo repository.DietTypeRepository
	workoutRepo  repository.WorkoutRepository
	dietRepo     repository.DietRepository
	activity     ActivityService
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	goalRepo repository.FitnessGoalRepository,
	exerciseRepo repository.ExerciseRepository,
	dietTypeRepo repository.DietTypeRepository,
	workoutRepo repository.WorkoutRepository,
	dietRepo repository.DietRepository,
	activity ActivityService,
) CatalogService {
	return &catalogService{
		goalRepo:     goalRepo,
		exerciseRepo: exerciseRepo,
		dietTypeRepo: dietTypeRepo,
		workoutRepo:  workoutRepo,
		dietRepo:     dietRepo,
		activity:     activity,
	}
}

func (s *catalogService) ListGoals(ctx context.Context) ([]model.FitnessGoal, error) {
	return s.goalRepo.List(ctx)
}

func (s *catalogService) CreateGoal(ctx context.Context, sess *auth.Session, name, description string) (*model.FitnessGoal, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.goalRepo.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	goal := &model.FitnessGoal{Name: name, Description: description}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, sess.UserID, "CREATE", "FitnessGoal", goal.ID.String(), map[string]any{"name": name})
	return goal, nil
}

func (s *catalogService) DeleteGoal(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	goal, err := s.goalRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if goal.IsDefault {
		return apperrors.ErrDefaultRecord
	}
	inUse, err := s.workoutRepo.CountByGoal(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperrors.ErrRecordInUse
	}

	if err := s.goalRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Log(ctx, sess.UserID, "DELETE", "FitnessGoal", id.String(), map[string]any{"name": goal.Name})
	return nil
}

func (s *catalogService) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

func (s *catalogService) CreateExercise(ctx context.Context, sess *auth.Session, name, muscleGroup, description string) (*model.Exercise, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.exerciseRepo.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	exercise := &model.Exercise{Name: name, MuscleGroup: muscleGroup, Description: description}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, sess.UserID, "CREATE", "Exercise", exercise.ID.String(), map[string]any{"name": name})
	return exercise, nil
}

func (s *catalogService) DeleteExercise(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if exercise.IsDefault {
		return apperrors.ErrDefaultRecord
	}

	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Log(ctx, sess.UserID, "DELETE", "Exercise", id.String(), map[string]any{"name": exercise.Name})
	return nil
}

func (s *catalogService) ListDietTypes(ctx context.Context) ([]model.DietType, error) {
	return s.dietTypeRepo.List(ctx)
}

func (s *catalogService) CreateDietType(ctx context.Context, sess *auth.Session, name, description string) (*model.DietType, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.dietTypeRepo.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	dietType := &model.DietType{Name: name, Description: description}
	if err := s.dietTypeRepo.Create(ctx, dietType); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, sess.UserID, "CREATE", "DietType", dietType.ID.String(), map[string]any{"name": name})
	return dietType, nil
}

func (s *catalogService) DeleteDietType(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	dietType, err := s.dietTypeRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	if dietType.IsDefault {
		return apperrors.ErrDefaultRecord
	}
	inUse, err := s.dietRepo.CountByDietType(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return apperrors.ErrRecordInUse
	}

	if err := s.dietTypeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Log(ctx, sess.UserID, "DELETE", "DietType", id.String(), map[string]any{"name": dietType.Name})
	return nil
}
