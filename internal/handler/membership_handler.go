package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// MembershipHandler handles plan and membership assignment endpoints.
type MembershipHandler struct {
	membershipService service.MembershipService
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// PlanRequest represents a membership plan create or update.
type PlanRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	Price       string   `json:"price" validate:"required"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
	Popular     bool     `json:"popular"`
	SortOrder   int      `json:"sort_order"`
	Active      *bool    `json:"active"`
}

// AssignMembershipRequest represents assigning a plan to a member.
type AssignMembershipRequest struct {
	MemberID     string     `json:"member_id" validate:"required,uuid"`
	PlanID       string     `json:"plan_id" validate:"required,uuid"`
	StartDate    *time.Time `json:"start_date"`
	Discount     string     `json:"discount"`
	DiscountType string     `json:"discount_type" validate:"omitempty,oneof=PERCENTAGE FIXED"`
	Notes        string     `json:"notes"`
}

func (r *PlanRequest) toInput() (service.PlanInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.PlanInput{}, err
	}
	return service.PlanInput{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       price,
		Features:    r.Features,
		Color:       r.Color,
		Popular:     r.Popular,
		SortOrder:   r.SortOrder,
	}, nil
}

// CreatePlan godoc
// @Summary Create a membership plan
// @Tags memberships
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PlanRequest true "Plan data"
// @Success 201 {object} model.MembershipPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /plans [post]
func (h *MembershipHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return badRequest("invalid price", "INVALID_AMOUNT")
	}

	plan, err := h.membershipService.CreatePlan(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// UpdatePlan godoc
// @Summary Update a membership plan
// @Tags memberships
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Param request body PlanRequest true "Plan data"
// @Success 200 {object} model.MembershipPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /plans/{id} [put]
func (h *MembershipHandler) UpdatePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req PlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return badRequest("invalid price", "INVALID_AMOUNT")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	plan, err := h.membershipService.UpdatePlan(c.Request().Context(), session(c), id, input, active)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary Retire a membership plan
// @Tags memberships
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /plans/{id} [delete]
func (h *MembershipHandler) DeletePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.membershipService.DeletePlan(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "plan retired"})
}

// ListPlans godoc
// @Summary List membership plans
// @Tags memberships
// @Produce json
// @Security SessionCookie
// @Param all query bool false "Include retired plans"
// @Success 200 {array} model.MembershipPlan
// @Router /plans [get]
func (h *MembershipHandler) ListPlans(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"
	plans, err := h.membershipService.ListPlans(c.Request().Context(), activeOnly)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Get a membership plan
// @Tags memberships
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} model.MembershipPlan
// @Failure 404 {object} errors.ErrorResponse
// @Router /plans/{id} [get]
func (h *MembershipHandler) GetPlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	plan, err := h.membershipService.GetPlan(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Assign godoc
// @Summary Assign a plan to a member
// @Tags memberships
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body AssignMembershipRequest true "Assignment data"
// @Success 201 {object} model.Membership
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /memberships [post]
func (h *MembershipHandler) Assign(c echo.Context) error {
	var req AssignMembershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := service.AssignMembershipInput{
		Notes:        req.Notes,
		DiscountType: model.DiscountType(req.DiscountType),
	}
	var err error
	if input.MemberID, err = parseUUID(req.MemberID, "member_id"); err != nil {
		return err
	}
	if input.PlanID, err = parseUUID(req.PlanID, "plan_id"); err != nil {
		return err
	}
	input.StartDate = time.Now()
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.Discount != "" {
		d, err := decimal.NewFromString(req.Discount)
		if err != nil {
			return badRequest("invalid discount", "INVALID_AMOUNT")
		}
		input.Discount = &d
	}

	membership, err := h.membershipService.Assign(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, membership)
}

// Renew godoc
// @Summary Renew a membership on the same plan
// @Tags memberships
// @Produce json
// @Security SessionCookie
// @Param id path string true "Membership ID"
// @Success 201 {object} model.Membership
// @Failure 404 {object} errors.ErrorResponse
// @Router /memberships/{id}/renew [post]
func (h *MembershipHandler) Renew(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	membership, err := h.membershipService.Renew(c.Request().Context(), session(c), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, membership)
}
