package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// DietInput carries a diet plan create or update.
type DietInput struct {
	MemberID       uuid.UUID
	Name           string
	DietTypeID     *uuid.UUID
	Meals          []model.Meal
	TargetCalories int
	Notes          string
}

// DietService manages member nutrition plans.
type DietService interface {
	Create(ctx context.Context, sess *auth.Session, input DietInput) (*model.DietPlan, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input DietInput) (*model.DietPlan, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.DietPlan, error)
	List(ctx context.Context, memberID *uuid.UUID) ([]model.DietPlan, error)
}

type dietService struct {
	dietRepo repository.DietRepository
	activity ActivityService
}

// NewDietService creates a new diet service.
func NewDietService(dietRepo repository.DietRepository, activity ActivityService) DietService {
	return &dietService{dietRepo: dietRepo, activity: activity}
}

func (s *dietService) Create(ctx context.Context, sess *auth.Session, input DietInput) (*model.DietPlan, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermCreateDiets) {
		return nil, apperrors.ErrUnauthorized
	}

	plan := &model.DietPlan{
		MemberID:       input.MemberID,
		Name:           input.Name,
		DietTypeID:     input.DietTypeID,
		Meals:          input.Meals,
		TargetCalories: input.TargetCalories,
		Notes:          input.Notes,
		Active:         true,
		CreatedBy:      sess.UserID,
	}
	if err := s.dietRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "DietPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return plan, nil
}

func (s *dietService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input DietInput) (*model.DietPlan, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditDiets) {
		return nil, apperrors.ErrUnauthorized
	}

	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = input.Name
	plan.DietTypeID = input.DietTypeID
	plan.Meals = input.Meals
	plan.TargetCalories = input.TargetCalories
	plan.Notes = input.Notes
	if err := s.dietRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "UPDATE", "DietPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return plan, nil
}

func (s *dietService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermDeleteDiets) {
		return apperrors.ErrUnauthorized
	}

	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return err
	}
	if err := s.dietRepo.Delete(ctx, plan.ID); err != nil {
		return err
	}

	s.activity.Log(ctx, sess.UserID, "DELETE", "DietPlan", plan.ID.String(), map[string]any{
		"name": plan.Name,
	})
	return nil
}

func (s *dietService) Get(ctx context.Context, id uuid.UUID) (*model.DietPlan, error) {
	return s.findPlan(ctx, id)
}

func (s *dietService) List(ctx context.Context, memberID *uuid.UUID) ([]model.DietPlan, error) {
	return s.dietRepo.List(ctx, memberID)
}

func (s *dietService) findPlan(ctx context.Context, id uuid.UUID) (*model.DietPlan, error) {
	plan, err := s.dietRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}
