package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/service"
)

// ReportHandler handles dashboard and reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard godoc
// @Summary Landing page summary
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {object} service.DashboardSummary
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	summary, err := h.reportService.Dashboard(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// MonthlyRevenue godoc
// @Summary Revenue per month
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Param months query int false "Number of months, default 6"
// @Success 200 {array} service.MonthRevenue
// @Router /reports/revenue [get]
func (h *ReportHandler) MonthlyRevenue(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))
	revenue, err := h.reportService.MonthlyRevenue(c.Request().Context(), months)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, revenue)
}

// PaymentModes godoc
// @Summary Revenue share per payment mode
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {array} service.ModeShare
// @Router /reports/payment-modes [get]
func (h *ReportHandler) PaymentModes(c echo.Context) error {
	shares, err := h.reportService.PaymentModeDistribution(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, shares)
}

// PlanRevenue godoc
// @Summary Active revenue per membership plan
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {array} service.PlanRevenue
// @Router /reports/plans [get]
func (h *ReportHandler) PlanRevenue(c echo.Context) error {
	breakdown, err := h.reportService.PlanRevenueBreakdown(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, breakdown)
}

// MemberStatus godoc
// @Summary Member count per membership status
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]int64
// @Router /reports/member-status [get]
func (h *ReportHandler) MemberStatus(c echo.Context) error {
	distribution, err := h.reportService.MemberStatusDistribution(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, distribution)
}

// AttendanceTrend godoc
// @Summary Daily attendance counts
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Param days query int false "Number of days, default 30"
// @Success 200 {array} service.DayCount
// @Router /reports/attendance [get]
func (h *ReportHandler) AttendanceTrend(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	trend, err := h.reportService.AttendanceTrend(c.Request().Context(), days)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, trend)
}

// LeadFunnel godoc
// @Summary Lead count per pipeline stage
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]int64
// @Router /reports/lead-funnel [get]
func (h *ReportHandler) LeadFunnel(c echo.Context) error {
	funnel, err := h.reportService.LeadFunnel(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, funnel)
}

// LeadSources godoc
// @Summary Lead count per source
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]int64
// @Router /reports/lead-sources [get]
func (h *ReportHandler) LeadSources(c echo.Context) error {
	sources, err := h.reportService.LeadSources(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, sources)
}
