package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymcrm/internal/model"
	"gymcrm/internal/repository"
	"gymcrm/internal/service"
)

// MemberHandler handles member endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest represents a new member. LeadID carries the converted
// lead the form was pre-populated from, if any.
type CreateMemberRequest struct {
	Name             string     `json:"name" validate:"required"`
	Email            string     `json:"email" validate:"omitempty,email"`
	Phone            string     `json:"phone" validate:"required"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Pincode          string     `json:"pincode"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	EmergencyName    string     `json:"emergency_name"`
	EmergencyContact string     `json:"emergency_contact"`
	BloodGroup       string     `json:"blood_group"`
	MedicalNotes     string     `json:"medical_notes"`
	TrainerID        string     `json:"trainer_id" validate:"omitempty,uuid"`
	Notes            string     `json:"notes"`
	LeadID           string     `json:"lead_id" validate:"omitempty,uuid"`
}

// UpdateMemberRequest represents a member edit; omitted fields are unchanged.
type UpdateMemberRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	TrainerID *string `json:"trainer_id" validate:"omitempty,uuid"`
	Notes     *string `json:"notes"`
}

// MemberListResponse represents a page of members.
type MemberListResponse struct {
	Members []model.Member `json:"members"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// Create godoc
// @Summary Register a new member
// @Tags members
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreateMemberRequest true "Member data"
// @Success 201 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := service.CreateMemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Pincode:          req.Pincode,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		EmergencyName:    req.EmergencyName,
		EmergencyContact: req.EmergencyContact,
		BloodGroup:       req.BloodGroup,
		MedicalNotes:     req.MedicalNotes,
		Notes:            req.Notes,
	}
	if req.TrainerID != "" {
		id, err := uuid.Parse(req.TrainerID)
		if err != nil {
			return badRequest("invalid trainer_id", "INVALID_UUID")
		}
		input.TrainerID = &id
	}
	if req.LeadID != "" {
		id, err := uuid.Parse(req.LeadID)
		if err != nil {
			return badRequest("invalid lead_id", "INVALID_UUID")
		}
		input.LeadID = &id
	}

	member, err := h.memberService.Create(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// Update godoc
// @Summary Edit a member
// @Tags members
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Member ID"
// @Param request body UpdateMemberRequest true "Fields to change"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req UpdateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := service.UpdateMemberInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Notes:   req.Notes,
	}
	if req.TrainerID != nil {
		tid, err := uuid.Parse(*req.TrainerID)
		if err != nil {
			return badRequest("invalid trainer_id", "INVALID_UUID")
		}
		input.TrainerID = &tid
	}

	member, err := h.memberService.Update(c.Request().Context(), session(c), id, input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Get godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Security SessionCookie
// @Param id path string true "Member ID"
// @Success 200 {object} model.Member
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	member, err := h.memberService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

// List godoc
// @Summary Search members
// @Tags members
// @Produce json
// @Security SessionCookie
// @Param q query string false "Name, phone, email or membership number"
// @Param status query string false "Membership status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} MemberListResponse
// @Router /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	params := repository.MemberSearch{
		Query:  c.QueryParam("q"),
		Status: model.MembershipStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	}
	if trainer := c.QueryParam("trainer_id"); trainer != "" {
		tid, err := uuid.Parse(trainer)
		if err != nil {
			return badRequest("invalid trainer_id", "INVALID_UUID")
		}
		params.TrainerID = &tid
	}

	members, total, err := h.memberService.Search(c.Request().Context(), params)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MemberListResponse{
		Members: members,
		Total:   total,
		Page:    page,
		Limit:   limit,
	})
}

// Delete godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Security SessionCookie
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.memberService.Delete(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "member deleted"})
}
