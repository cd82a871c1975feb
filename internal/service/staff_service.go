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

// StaffInput carries a staff account create or update. Permissions are only
// honored when Role is CUSTOM.
type StaffInput struct {
	Name        string
	Email       string
	Password    string
	Role        model.UserRole
	Permissions []model.Permission
	Phone       string
	Avatar      string
}

// RoleInput carries a custom role catalog entry.
type RoleInput struct {
	Name               string
	Description        string
	DefaultPermissions []model.Permission
}

// StaffService manages staff accounts and the custom role catalog.
type StaffService interface {
	Create(ctx context.Context, sess *auth.Session, input StaffInput) (*model.User, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input StaffInput) (*model.User, error)
	Deactivate(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListTrainers(ctx context.Context) ([]model.User, error)

	CreateRole(ctx context.Context, sess *auth.Session, input RoleInput) (*model.Role, error)
	UpdateRole(ctx context.Context, sess *auth.Session, id uuid.UUID, input RoleInput) (*model.Role, error)
	DeleteRole(ctx context.Context, sess *auth.Session, id uuid.UUID) error
	ListRoles(ctx context.Context) ([]model.Role, error)
}

type staffService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	activity ActivityService
}

// NewStaffService creates a new staff service.
func NewStaffService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, activity ActivityService) StaffService {
	return &staffService{userRepo: userRepo, roleRepo: roleRepo, activity: activity}
}

// Create adds a staff account. Only SUPER_ADMIN may grant the ADMIN or
// SUPER_ADMIN roles.
func (s *staffService) Create(ctx context.Context, sess *auth.Session, input StaffInput) (*model.User, error) {
	if err := s.canManage(sess, input.Role); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.ErrEmailInUse
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Phone:        input.Phone,
		Avatar:       input.Avatar,
		Active:       true,
	}
	if input.Role == model.RoleCustom {
		user.Permissions = input.Permissions
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "User", user.ID.String(), map[string]any{
		"email": user.Email,
		"role":  string(user.Role),
	})
	return user, nil
}

func (s *staffService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input StaffInput) (*model.User, error) {
	if err := s.canManage(sess, input.Role); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	// Demoting or editing an admin also takes SUPER_ADMIN.
	if err := s.canManage(sess, user.Role); err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
			return nil, apperrors.ErrEmailInUse
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.Phone = input.Phone
	user.Avatar = input.Avatar
	if input.Role == model.RoleCustom {
		user.Permissions = input.Permissions
	} else {
		user.Permissions = nil
	}
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, sess.UserID, "UPDATE", "User", user.ID.String(), map[string]any{
		"email": user.Email,
		"role":  string(user.Role),
	})
	return user, nil
}

// Deactivate soft-deletes a staff account so its audit history survives.
func (s *staffService) Deactivate(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.canManage(sess, user.Role); err != nil {
		return err
	}
	if sess.UserID == user.ID {
		return apperrors.ErrUnauthorized
	}

	user.Active = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.activity.Log(ctx, sess.UserID, "DEACTIVATE", "User", user.ID.String(), map[string]any{
		"email": user.Email,
	})
	return nil
}

func (s *staffService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.findUser(ctx, id)
}

func (s *staffService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *staffService) ListTrainers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleTrainer, true)
}

func (s *staffService) CreateRole(ctx context.Context, sess *auth.Session, input RoleInput) (*model.Role, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.FindByName(ctx, input.Name); err == nil {
		return nil, apperrors.ErrDuplicateName
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role := &model.Role{
		Name:               input.Name,
		Description:        input.Description,
		DefaultPermissions: input.DefaultPermissions,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, sess.UserID, "CREATE", "Role", role.ID.String(), map[string]any{"name": role.Name})
	return role, nil
}

func (s *staffService) UpdateRole(ctx context.Context, sess *auth.Session, id uuid.UUID, input RoleInput) (*model.Role, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Name != role.Name {
		if _, err := s.roleRepo.FindByName(ctx, input.Name); err == nil {
			return nil, apperrors.ErrDuplicateName
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	role.Name = input.Name
	role.Description = input.Description
	role.DefaultPermissions = input.DefaultPermissions
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *staffService) DeleteRole(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if _, err := s.roleRepo.FindByID(ctx, id); err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	} else if err != nil {
		return err
	}
	return s.roleRepo.Delete(ctx, id)
}

func (s *staffService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roleRepo.List(ctx)
}

// canManage enforces the role hierarchy: staff management is admin-only, and
// only SUPER_ADMIN can touch ADMIN or SUPER_ADMIN accounts.
func (s *staffService) canManage(sess *auth.Session, target model.UserRole) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if target == model.RoleAdmin || target == model.RoleSuperAdmin {
		if sess.Role != model.RoleSuperAdmin {
			return apperrors.ErrUnauthorized
		}
	}
	return nil
}

func (s *staffService) findUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
