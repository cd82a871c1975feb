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

// GymProfileInput carries the gym identity fields from the settings page.
type GymProfileInput struct {
	Name      string
	Tagline   string
	Address   string
	City      string
	State     string
	Pincode   string
	Phone     string
	Email     string
	GSTNumber string
	Logo      string
}

// GymProfileService manages the gym identity used on invoices. Reads are open
// to all staff; writes take an admin.
type GymProfileService interface {
	Current(ctx context.Context) (*model.GymProfile, error)
	Save(ctx context.Context, sess *auth.Session, input GymProfileInput) (*model.GymProfile, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
}

type gymProfileService struct {
	repo     repository.GymProfileRepository
	activity ActivityService
}

// NewGymProfileService creates a new gym profile service.
func NewGymProfileService(repo repository.GymProfileRepository, activity ActivityService) GymProfileService {
	return &gymProfileService{repo: repo, activity: activity}
}

func (s *gymProfileService) Current(ctx context.Context) (*model.GymProfile, error) {
	profile, err := s.repo.First(ctx)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save creates the profile on first write and updates it afterwards.
func (s *gymProfileService) Save(ctx context.Context, sess *auth.Session, input GymProfileInput) (*model.GymProfile, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	profile, err := s.repo.First(ctx)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	action := "UPDATE"
	if profile == nil {
		profile = &model.GymProfile{}
		action = "CREATE"
	}

	profile.Name = input.Name
	profile.Tagline = input.Tagline
	profile.Address = input.Address
	profile.City = input.City
	profile.State = input.State
	profile.Pincode = input.Pincode
	profile.Phone = input.Phone
	profile.Email = input.Email
	profile.GSTNumber = input.GSTNumber
	profile.Logo = input.Logo

	if action == "CREATE" {
		err = s.repo.Create(ctx, profile)
	} else {
		err = s.repo.Update(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, action, "GymProfile", profile.ID.String(), map[string]any{
		"name": profile.Name,
	})
	return profile, nil
}

func (s *gymProfileService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	} else if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Log(ctx, sess.UserID, "DELETE", "GymProfile", id.String(), nil)
	return nil
}
