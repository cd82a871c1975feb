package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/export"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
	"gymcrm/internal/service"
)

const exportLimit = 5000

// ExportHandler streams Excel exports and PDF invoice receipts.
type ExportHandler struct {
	memberService     service.MemberService
	paymentService    service.PaymentService
	membershipService service.MembershipService
	leadService       service.LeadService
	attendanceService service.AttendanceService
	gymProfileService service.GymProfileService
	excel             *export.ExcelWriter
	pdf               *export.InvoicePDF
}

// NewExportHandler creates a new export handler.
func NewExportHandler(
	memberService service.MemberService,
	paymentService service.PaymentService,
	membershipService service.MembershipService,
	leadService service.LeadService,
	attendanceService service.AttendanceService,
	gymProfileService service.GymProfileService,
) *ExportHandler {
	return &ExportHandler{
		memberService:     memberService,
		paymentService:    paymentService,
		membershipService: membershipService,
		leadService:       leadService,
		attendanceService: attendanceService,
		gymProfileService: gymProfileService,
		excel:             export.NewExcelWriter(),
		pdf:               export.NewInvoicePDF(),
	}
}

// Members godoc
// @Summary Download the member register as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Success 200 {file} binary
// @Router /exports/members [get]
func (h *ExportHandler) Members(c echo.Context) error {
	members, _, err := h.memberService.Search(c.Request().Context(), repository.MemberSearch{
		Page:  1,
		Limit: exportLimit,
	})
	if err != nil {
		return fail(err)
	}

	data, err := h.excel.Members(members)
	if err != nil {
		return fail(err)
	}
	return sendXLSX(c, "Members_Export", data)
}

// Payments godoc
// @Summary Download the payment register as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Success 200 {file} binary
// @Router /exports/payments [get]
func (h *ExportHandler) Payments(c echo.Context) error {
	payments, _, err := h.paymentService.List(c.Request().Context(), 1, exportLimit)
	if err != nil {
		return fail(err)
	}

	data, err := h.excel.Payments(payments)
	if err != nil {
		return fail(err)
	}
	return sendXLSX(c, "Payments_Export", data)
}

// Memberships godoc
// @Summary Download active memberships as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Success 200 {file} binary
// @Router /exports/memberships [get]
func (h *ExportHandler) Memberships(c echo.Context) error {
	memberships, err := h.membershipService.ListActive(c.Request().Context())
	if err != nil {
		return fail(err)
	}

	data, err := h.excel.Memberships(memberships)
	if err != nil {
		return fail(err)
	}
	return sendXLSX(c, "Memberships_Export", data)
}

// Leads godoc
// @Summary Download the lead pipeline as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Success 200 {file} binary
// @Router /exports/leads [get]
func (h *ExportHandler) Leads(c echo.Context) error {
	leads, err := h.leadService.List(c.Request().Context(), exportLimit)
	if err != nil {
		return fail(err)
	}

	data, err := h.excel.Leads(leads)
	if err != nil {
		return fail(err)
	}
	return sendXLSX(c, "Leads_Export", data)
}

// Attendance godoc
// @Summary Download a day's attendance as xlsx
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Param date query string false "Day (yyyy-mm-dd), defaults to today"
// @Success 200 {file} binary
// @Router /exports/attendance [get]
func (h *ExportHandler) Attendance(c echo.Context) error {
	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest("invalid date, expected yyyy-mm-dd", "INVALID_DATE")
		}
		date = parsed
	}

	records, err := h.attendanceService.ListByDate(c.Request().Context(), date)
	if err != nil {
		return fail(err)
	}

	data, err := h.excel.Attendance(records)
	if err != nil {
		return fail(err)
	}
	return sendXLSX(c, "Attendance_Export", data)
}

// Invoice godoc
// @Summary Download a payment's invoice receipt as PDF
// @Tags exports
// @Produce application/pdf
// @Security SessionCookie
// @Param id path string true "Payment ID"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id}/invoice [get]
func (h *ExportHandler) Invoice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payment, err := h.paymentService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}

	// The receipt renders without a letterhead when no profile is configured.
	var profile *model.GymProfile
	if p, err := h.gymProfileService.Current(c.Request().Context()); err == nil {
		profile = p
	}

	data, err := h.pdf.Receipt(payment, payment.Member, profile)
	if err != nil {
		return fail(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, payment.InvoiceNumber))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func sendXLSX(c echo.Context, prefix string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
