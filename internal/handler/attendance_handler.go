package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/service"
)

// AttendanceHandler handles check-in and check-out endpoints.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckInRequest represents a check-in by member ID.
type CheckInRequest struct {
	MemberID string `json:"member_id" validate:"required,uuid"`
}

// QuickCheckInRequest represents a front-desk check-in by membership number.
type QuickCheckInRequest struct {
	MembershipNumber string `json:"membership_number" validate:"required"`
}

// CheckIn godoc
// @Summary Check a member in
// @Tags attendance
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CheckInRequest true "Member"
// @Success 201 {object} model.Attendance
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var req CheckInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	memberID, err := parseUUID(req.MemberID, "member_id")
	if err != nil {
		return err
	}

	attendance, err := h.attendanceService.CheckIn(c.Request().Context(), session(c), memberID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, attendance)
}

// QuickCheckIn godoc
// @Summary Check a member in by membership number
// @Tags attendance
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body QuickCheckInRequest true "Membership number"
// @Success 201 {object} model.Attendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /attendance/quick-check-in [post]
func (h *AttendanceHandler) QuickCheckIn(c echo.Context) error {
	var req QuickCheckInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	attendance, err := h.attendanceService.QuickCheckIn(c.Request().Context(), session(c), req.MembershipNumber)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, attendance)
}

// CheckOut godoc
// @Summary Check a member out
// @Tags attendance
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CheckInRequest true "Member"
// @Success 200 {object} model.Attendance
// @Failure 404 {object} errors.ErrorResponse
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	var req CheckInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	memberID, err := parseUUID(req.MemberID, "member_id")
	if err != nil {
		return err
	}

	attendance, err := h.attendanceService.CheckOut(c.Request().Context(), session(c), memberID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, attendance)
}

// ListByDate godoc
// @Summary List attendance for a day
// @Tags attendance
// @Produce json
// @Security SessionCookie
// @Param date query string false "Day (yyyy-mm-dd), defaults to today"
// @Success 200 {array} model.Attendance
// @Router /attendance [get]
func (h *AttendanceHandler) ListByDate(c echo.Context) error {
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
	return c.JSON(http.StatusOK, records)
}

// MemberHistory godoc
// @Summary List a member's attendance over a date range
// @Tags attendance
// @Produce json
// @Security SessionCookie
// @Param id path string true "Member ID"
// @Param from query string false "Start day (yyyy-mm-dd)"
// @Param to query string false "End day (yyyy-mm-dd)"
// @Success 200 {array} model.Attendance
// @Router /members/{id}/attendance [get]
func (h *AttendanceHandler) MemberHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse("2006-01-02", raw); err != nil {
			return badRequest("invalid from date", "INVALID_DATE")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse("2006-01-02", raw); err != nil {
			return badRequest("invalid to date", "INVALID_DATE")
		}
	}

	records, err := h.attendanceService.MemberHistory(c.Request().Context(), id, from, to)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, records)
}
