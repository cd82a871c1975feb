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

// WorkoutInput carries a workout plan create or update.
type WorkoutInput struct {
	MemberID    uuid.UUID
	Name        string
	Description string
	Exercises   []model.ExerciseSet
	Difficulty  string
	GoalID      *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// WorkoutService manages trainer-authored workout plans.
type WorkoutService interface {
	Create(ctx context.Context, sess *auth.Session, input WorkoutInput) (*model.WorkoutPlan, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input WorkoutInput) (*model.WorkoutPlan, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.WorkoutPlan, error)
	List(ctx context.Context, memberID *uuid.UUID) ([]model.WorkoutPlan, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	activity    ActivityService
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, activity ActivityService) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo, activity: activity}
}

func (s *workoutService) Create(ctx context.Context, sess *auth.Session, input WorkoutInput) (*model.WorkoutPlan, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermCreateWorkouts) {
		return nil, apperrors.ErrUnauthorized
	}

	plan := &model.WorkoutPlan{
		MemberID:    input.MemberID,
		Name:        input.Name,
		Description: input.Description,
		Exercises:   input.Exercises,
		Difficulty:  input.Difficulty,
		GoalID:      input.GoalID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Active:      true,
		CreatedBy:   sess.UserID,
	}
	if err := s.workoutRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "WorkoutPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return plan, nil
}

func (s *workoutService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input WorkoutInput) (*model.WorkoutPlan, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditWorkouts) {
		return nil, apperrors.ErrUnauthorized
	}

	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = input.Name
	plan.Description = input.Description
	plan.Exercises = input.Exercises
	plan.Difficulty = input.Difficulty
	plan.GoalID = input.GoalID
	plan.StartDate = input.StartDate
	plan.EndDate = input.EndDate
	if err := s.workoutRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "UPDATE", "WorkoutPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return plan, nil
}

func (s *workoutService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermDeleteWorkouts) {
		return apperrors.ErrUnauthorized
	}

	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, plan.ID); err != nil {
		return err
	}

	s.activity.Log(ctx, sess.UserID, "DELETE", "WorkoutPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return nil
}

func (s *workoutService) Get(ctx context.Context, id uuid.UUID) (*model.WorkoutPlan, error) {
	return s.findPlan(ctx, id)
}

func (s *workoutService) List(ctx context.Context, memberID *uuid.UUID) ([]model.WorkoutPlan, error) {
	return s.workoutRepo.List(ctx, memberID)
}

func (s *workoutService) findPlan(ctx context.Context, id uuid.UUID) (*model.WorkoutPlan, error) {
	plan, err := s.workoutRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}
