package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/service"
)

// GymProfileHandler serves the settings page's gym identity endpoints.
type GymProfileHandler struct {
	gymProfileService service.GymProfileService
}

// NewGymProfileHandler creates a new gym profile handler.
func NewGymProfileHandler(gymProfileService service.GymProfileService) *GymProfileHandler {
	return &GymProfileHandler{gymProfileService: gymProfileService}
}

// GymProfileRequest is the settings form payload.
type GymProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Tagline   string `json:"tagline"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	GSTNumber string `json:"gst_number"`
	Logo      string `json:"logo"`
}

func (r *GymProfileRequest) toInput() service.GymProfileInput {
	return service.GymProfileInput{
		Name:      r.Name,
		Tagline:   r.Tagline,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		Phone:     r.Phone,
		Email:     r.Email,
		GSTNumber: r.GSTNumber,
		Logo:      r.Logo,
	}
}

// Get godoc
// @Summary Get the gym profile
// @Tags settings
// @Produce json
// @Security SessionCookie
// @Success 200 {object} model.GymProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /settings/gym-profile [get]
func (h *GymProfileHandler) Get(c echo.Context) error {
	profile, err := h.gymProfileService.Current(c.Request().Context())
	if err == apperrors.ErrNotFound {
		// Empty object keeps the settings form usable before first save.
		return c.JSON(http.StatusOK, map[string]any{})
	}
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Save godoc
// @Summary Create or update the gym profile
// @Tags settings
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param profile body GymProfileRequest true "Gym profile"
// @Success 200 {object} model.GymProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /settings/gym-profile [put]
func (h *GymProfileHandler) Save(c echo.Context) error {
	sess := session(c)

	var req GymProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.gymProfileService.Save(c.Request().Context(), sess, req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, profile)
}
