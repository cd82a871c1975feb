package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// LeadHandler handles the leads pipeline endpoints.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLeadRequest represents a new lead.
type CreateLeadRequest struct {
	Name           string     `json:"name" validate:"required"`
	Phone          string     `json:"phone" validate:"required"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Source         string     `json:"source" validate:"required,oneof=WALK_IN REFERRAL PHONE SOCIAL_MEDIA WEBSITE OTHER"`
	InterestedPlan string     `json:"interested_plan"`
	Notes          string     `json:"notes"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
}

// UpdateLeadRequest represents a lead edit; omitted fields are unchanged.
type UpdateLeadRequest struct {
	Name           *string    `json:"name"`
	Phone          *string    `json:"phone"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	InterestedPlan *string    `json:"interested_plan"`
	Notes          *string    `json:"notes"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
}

// UpdateLeadStatusRequest represents a pipeline stage move.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED FOLLOW_UP CONVERTED LOST"`
}

// ConvertLeadRequest represents the staff decision on a lead.
type ConvertLeadRequest struct {
	Confirm bool `json:"confirm"`
}

// Create godoc
// @Summary Register a new lead
// @Tags leads
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreateLeadRequest true "Lead data"
// @Success 201 {object} model.Lead
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req CreateLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lead, err := h.leadService.Create(c.Request().Context(), session(c), service.CreateLeadInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Source:         model.LeadSource(req.Source),
		InterestedPlan: req.InterestedPlan,
		Notes:          req.Notes,
		FollowUpDate:   req.FollowUpDate,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// Update godoc
// @Summary Edit a lead
// @Tags leads
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Lead ID"
// @Param request body UpdateLeadRequest true "Fields to change"
// @Success 200 {object} model.Lead
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UpdateLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lead, err := h.leadService.Update(c.Request().Context(), session(c), id, service.UpdateLeadInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		InterestedPlan: req.InterestedPlan,
		Notes:          req.Notes,
		FollowUpDate:   req.FollowUpDate,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateStatus godoc
// @Summary Move a lead through the pipeline
// @Tags leads
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Lead ID"
// @Param request body UpdateLeadStatusRequest true "New status"
// @Success 200 {object} model.Lead
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UpdateLeadStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lead, err := h.leadService.UpdateStatus(c.Request().Context(), session(c), id, model.LeadStatus(req.Status))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Convert godoc
// @Summary Convert or discard a lead
// @Description Confirming marks the lead CONVERTED and returns its contact
// @Description fields to pre-populate the member form; declining marks it LOST.
// @Tags leads
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Lead ID"
// @Param request body ConvertLeadRequest true "Decision"
// @Success 200 {object} service.ConvertedContact
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) Convert(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ConvertLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.leadService.Convert(c.Request().Context(), session(c), id, req.Confirm)
	if err != nil {
		return fail(err)
	}
	if contact == nil {
		return c.JSON(http.StatusOK, map[string]string{"message": "lead marked as lost"})
	}
	return c.JSON(http.StatusOK, contact)
}

// Get godoc
// @Summary Get a lead
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Param id path string true "Lead ID"
// @Success 200 {object} model.Lead
// @Failure 404 {object} errors.ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	lead, err := h.leadService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, lead)
}

// List godoc
// @Summary List leads grouped by pipeline stage
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string][]model.Lead
// @Router /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	grouped, err := h.leadService.GroupedByStatus(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, grouped)
}

// Stats godoc
// @Summary Lead pipeline statistics
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Success 200 {object} service.LeadStats
// @Router /leads/stats [get]
func (h *LeadHandler) Stats(c echo.Context) error {
	stats, err := h.leadService.Stats(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Delete godoc
// @Summary Delete a lead
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.leadService.Delete(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "lead deleted"})
}
