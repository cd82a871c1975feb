package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// StaffHandler handles staff account and custom role endpoints.
type StaffHandler struct {
	staffService service.StaffService
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(staffService service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// StaffRequest represents a staff account create or update. Password is
// required on create and optional on update.
type StaffRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"omitempty,min=6"`
	Role        string   `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN TRAINER RECEPTIONIST HELPER CUSTOM"`
	Permissions []string `json:"permissions"`
	Phone       string   `json:"phone"`
	Avatar      string   `json:"avatar"`
}

// RoleRequest represents a custom role catalog entry.
type RoleRequest struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	DefaultPermissions []string `json:"default_permissions"`
}

func (r *StaffRequest) toInput() service.StaffInput {
	perms := make([]model.Permission, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = model.Permission(p)
	}
	return service.StaffInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Role:        model.UserRole(r.Role),
		Permissions: perms,
		Phone:       r.Phone,
		Avatar:      r.Avatar,
	}
}

// Create godoc
// @Summary Create a staff account
// @Tags staff
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body StaffRequest true "Account data"
// @Success 201 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req StaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Password == "" {
		return badRequest("password is required", "VALIDATION_ERROR")
	}

	user, err := h.staffService.Create(c.Request().Context(), session(c), req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a staff account
// @Tags staff
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "User ID"
// @Param request body StaffRequest true "Account data"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /staff/{id} [put]
func (h *StaffHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req StaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.staffService.Update(c.Request().Context(), session(c), id, req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Deactivate godoc
// @Summary Deactivate a staff account
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /staff/{id} [delete]
func (h *StaffHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.staffService.Deactivate(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "staff account deactivated"})
}

// Get godoc
// @Summary Get a staff account
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.staffService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// List godoc
// @Summary List staff accounts
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.User
// @Router /staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	users, err := h.staffService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListTrainers godoc
// @Summary List active trainers
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.User
// @Router /staff/trainers [get]
func (h *StaffHandler) ListTrainers(c echo.Context) error {
	trainers, err := h.staffService.ListTrainers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, trainers)
}

// CreateRole godoc
// @Summary Create a custom role
// @Tags staff
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body RoleRequest true "Role data"
// @Success 201 {object} model.Role
// @Failure 409 {object} errors.ErrorResponse
// @Router /roles [post]
func (h *StaffHandler) CreateRole(c echo.Context) error {
	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.staffService.CreateRole(c.Request().Context(), session(c), roleInput(req))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, role)
}

// UpdateRole godoc
// @Summary Update a custom role
// @Tags staff
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Role ID"
// @Param request body RoleRequest true "Role data"
// @Success 200 {object} model.Role
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [put]
func (h *StaffHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.staffService.UpdateRole(c.Request().Context(), session(c), id, roleInput(req))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, role)
}

// DeleteRole godoc
// @Summary Delete a custom role
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [delete]
func (h *StaffHandler) DeleteRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.staffService.DeleteRole(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "role deleted"})
}

// ListRoles godoc
// @Summary List custom roles
// @Tags staff
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.Role
// @Router /roles [get]
func (h *StaffHandler) ListRoles(c echo.Context) error {
	roles, err := h.staffService.ListRoles(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, roles)
}

func roleInput(req RoleRequest) service.RoleInput {
	perms := make([]model.Permission, len(req.DefaultPermissions))
	for i, p := range req.DefaultPermissions {
		perms[i] = model.Permission(p)
	}
	return service.RoleInput{
		Name:               req.Name,
		Description:        req.Description,
		DefaultPermissions: perms,
	}
}
