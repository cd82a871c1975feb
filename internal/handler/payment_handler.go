package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// PaymentHandler handles payment and invoice endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest represents a payment to record. GST fields are
// optional; when a percentage is given the tax is added on top of amount.
type CreatePaymentRequest struct {
	MemberID      string `json:"member_id" validate:"required,uuid"`
	MembershipID  string `json:"membership_id" validate:"omitempty,uuid"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMode   string `json:"payment_mode" validate:"required,oneof=CASH CARD UPI BANK_TRANSFER OTHER"`
	GSTNumber     string `json:"gst_number"`
	GSTPercentage string `json:"gst_percentage"`
	Notes         string `json:"notes"`
}

// PaymentListResponse represents a page of payments.
type PaymentListResponse struct {
	Payments []model.Payment `json:"payments"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

// Create godoc
// @Summary Record a payment and issue an invoice
// @Tags payments
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreatePaymentRequest true "Payment data"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := service.CreatePaymentInput{
		PaymentMode: model.PaymentMode(req.PaymentMode),
		GSTNumber:   req.GSTNumber,
		Notes:       req.Notes,
	}
	var err error
	if input.MemberID, err = parseUUID(req.MemberID, "member_id"); err != nil {
		return err
	}
	if req.MembershipID != "" {
		id, err := parseUUID(req.MembershipID, "membership_id")
		if err != nil {
			return err
		}
		input.MembershipID = &id
	}
	if input.Amount, err = decimal.NewFromString(req.Amount); err != nil {
		return badRequest("invalid amount", "INVALID_AMOUNT")
	}
	if req.GSTPercentage != "" {
		pct, err := decimal.NewFromString(req.GSTPercentage)
		if err != nil {
			return badRequest("invalid gst_percentage", "INVALID_AMOUNT")
		}
		input.GSTPercentage = &pct
	}

	payment, err := h.paymentService.Create(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// Get godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Security SessionCookie
// @Param id path string true "Payment ID"
// @Success 200 {object} model.Payment
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payment, err := h.paymentService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, payment)
}

// List godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Security SessionCookie
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} PaymentListResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	payments, total, err := h.paymentService.List(c.Request().Context(), page, limit)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, PaymentListResponse{
		Payments: payments,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// ListByMember godoc
// @Summary List a member's payments
// @Tags payments
// @Produce json
// @Security SessionCookie
// @Param id path string true "Member ID"
// @Success 200 {array} model.Payment
// @Router /members/{id}/payments [get]
func (h *PaymentHandler) ListByMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	payments, err := h.paymentService.ListByMember(c.Request().Context(), id, limit)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, payments)
}
